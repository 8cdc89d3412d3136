// Package x509chain is the public façade over this module's X.509
// frame parser, extension walker, and chain verifier: the layer
// application code actually imports, the way the teacher's root
// x509chain package is the one the CLI and MCP server both import
// instead of reaching into src/internal directly.
package x509chain

import (
	"math/big"
	"time"

	"github.com/trailcert/x509chain/internal/certcache"
	"github.com/trailcert/x509chain/internal/ext"
	"github.com/trailcert/x509chain/internal/frame"
)

// Certificate wraps one parsed certificate: its DER buffer, cached
// frame, and (once requested) its parsed public key, plus the link
// to whichever certificate issued it when the caller has supplied
// one.
type Certificate struct {
	cache *certcache.Certificate
}

// New parses raw as a DER-encoded certificate using this module's own
// frame parser, eagerly (unlike the lazy detail layer underneath) so
// that a structurally invalid certificate is rejected at construction
// rather than on first use.
func New(raw []byte) (*Certificate, error) {
	cache := certcache.New(raw, frame.DefaultOptions)
	if _, err := cache.Frame(); err != nil {
		return nil, err
	}
	return &Certificate{cache: cache}, nil
}

// Raw returns the certificate's original DER bytes.
func (c *Certificate) Raw() []byte { return c.cache.Raw }

// Next returns the certificate this one's chain currently links to
// (nil if none has been set).
func (c *Certificate) Next() *Certificate {
	if c.cache.Next == nil {
		return nil
	}
	return &Certificate{cache: c.cache.Next}
}

// SetNext links next as the certificate that issued c, the supplied-
// intermediates chain Verify walks when its own root search comes up
// empty at the top. Passing nil clears the link.
func (c *Certificate) SetNext(next *Certificate) {
	if next == nil {
		c.cache.Next = nil
		return
	}
	c.cache.Next = next.cache
}

// NotAfter and NotBefore are the certificate's validity window.
func (c *Certificate) NotAfter() (time.Time, error) {
	f, err := c.cache.Frame()
	if err != nil {
		return time.Time{}, err
	}
	return f.ValidTo, nil
}

func (c *Certificate) NotBefore() (time.Time, error) {
	f, err := c.cache.Frame()
	if err != nil {
		return time.Time{}, err
	}
	return f.ValidFrom, nil
}

// SerialNumber returns the certificate's serial number.
func (c *Certificate) SerialNumber() (*big.Int, error) {
	f, err := c.cache.Frame()
	if err != nil {
		return nil, err
	}
	return f.SerialNumber, nil
}

// IsCA reports whether the BasicConstraints extension marks this
// certificate as a certificate authority.
func (c *Certificate) IsCA() (bool, error) {
	f, err := c.cache.Frame()
	if err != nil {
		return false, err
	}
	return f.CAIsTrue, nil
}

// DNSNames returns every dNSName entry of the SubjectAltName
// extension, or an empty slice if the extension is absent.
func (c *Certificate) DNSNames() ([]string, error) {
	names, err := c.cache.DNSNames()
	if err != nil {
		return nil, err
	}
	return names, nil
}

// CommonName returns the subject's commonName attribute, or "" if
// none is present.
func (c *Certificate) CommonName() (string, error) {
	cn, err := c.cache.CommonName()
	if err != nil {
		return "", err
	}
	return cn, nil
}

// ExtTypes reports which extensions this certificate carries.
func (c *Certificate) ExtTypes() (ext.Kind, error) {
	f, err := c.cache.Frame()
	if err != nil {
		return 0, err
	}
	return f.ExtTypes, nil
}
