// Package certcache implements the lazy detail layer spec.md §4.D
// describes: a Certificate owns one DER buffer and parses it once (again
// only after Flush), caching the resulting Frame and (if ever requested)
// its public key behind their own locks, and builds RDN/SAN/EKU chains
// fresh on every call rather than storing them. The pattern mirrors the
// teacher's *HTTPConfig.Client, which lazily builds and reuses an
// *http.Client behind a mutex instead of constructing it eagerly.
package certcache

import (
	"encoding/asn1"
	"sync"

	"github.com/trailcert/x509chain/internal/der"
	"github.com/trailcert/x509chain/internal/ext"
	"github.com/trailcert/x509chain/internal/frame"
	"github.com/trailcert/x509chain/internal/namecmp"
	"github.com/trailcert/x509chain/internal/pkalg"
)

// id-at-commonName, 2.5.4.3.
var oidCommonName = asn1.ObjectIdentifier{2, 5, 4, 3}

// Certificate is one node of a chain under construction or already
// verified. Next links it to the certificate that issued it (or nil at
// the root), forming the singly-linked list spec.md's original chain
// structure describes; a Go slice is used instead where chains are
// built and returned. Next is set by the caller to supply intermediates;
// the verifier reads it and never writes it.
type Certificate struct {
	Raw  []byte
	Next *Certificate

	opts frame.Options

	frameMu  sync.Mutex
	frameVal *frame.Frame
	frameErr *der.Error

	pubKeyMu  sync.Mutex
	pubKeyVal *pkalg.PublicKey
	pubKeyErr error
}

// New wraps a DER certificate buffer. The buffer is not copied; callers
// must not mutate it while the Certificate is in use.
func New(raw []byte, opts frame.Options) *Certificate {
	return &Certificate{Raw: raw, opts: opts}
}

// Frame parses the certificate on first call and returns the cached
// Frame (or cached error) on every subsequent call.
func (c *Certificate) Frame() (*frame.Frame, *der.Error) {
	c.frameMu.Lock()
	defer c.frameMu.Unlock()
	if c.frameVal == nil && c.frameErr == nil {
		c.frameVal, c.frameErr = frame.Parse(c.Raw, c.opts)
	}
	return c.frameVal, c.frameErr
}

// PublicKey parses subjectPublicKeyInfo on first call and returns the
// cached result (or cached error) thereafter. It obtains the Frame
// itself (parsing it if needed) and fails with the Frame's error when
// that parse fails.
func (c *Certificate) PublicKey() (*pkalg.PublicKey, error) {
	c.pubKeyMu.Lock()
	defer c.pubKeyMu.Unlock()
	if c.pubKeyVal != nil || c.pubKeyErr != nil {
		return c.pubKeyVal, c.pubKeyErr
	}
	f, ferr := c.Frame()
	if ferr != nil {
		c.pubKeyErr = ferr
		return nil, ferr
	}
	c.pubKeyVal, c.pubKeyErr = pkalg.ParseSPKI(der.NormalizeSPKI(c.Raw, f.PubKeyRaw))
	return c.pubKeyVal, c.pubKeyErr
}

// Flush discards the cached Frame and PublicKey, forcing the next call
// to either to reparse. Used when a certificate's raw buffer has been
// replaced out from under an existing node (re-fetched intermediate).
func (c *Certificate) Flush() {
	c.frameMu.Lock()
	c.frameVal, c.frameErr = nil, nil
	c.frameMu.Unlock()

	c.pubKeyMu.Lock()
	c.pubKeyVal, c.pubKeyErr = nil, nil
	c.pubKeyMu.Unlock()
}

// IssuerRDNs parses the issuer Name into an RDN chain. An empty span
// (malformed-but-already-validated edge case) yields an empty slice,
// not an error, matching spec.md §4.D's "absent name compares equal to
// nothing but itself" rule.
func (c *Certificate) IssuerRDNs() ([]namecmp.RDNAtom, *der.Error) {
	f, ferr := c.Frame()
	if ferr != nil {
		return nil, ferr
	}
	if f.IssuerRaw.Empty() {
		return nil, nil
	}
	return namecmp.ParseRDNs(c.Raw, f.IssuerRaw)
}

// SubjectRDNs parses the subject Name into an RDN chain.
func (c *Certificate) SubjectRDNs() ([]namecmp.RDNAtom, *der.Error) {
	f, ferr := c.Frame()
	if ferr != nil {
		return nil, ferr
	}
	if f.SubjectRaw.Empty() {
		return nil, nil
	}
	return namecmp.ParseRDNs(c.Raw, f.SubjectRaw)
}

// IsSelfIssued reports whether issuer and subject compare equal under
// EqualNames, spec.md §4.D's self-issued test used to exempt a CA from
// its own path-length count.
func (c *Certificate) IsSelfIssued() (bool, *der.Error) {
	iss, err := c.IssuerRDNs()
	if err != nil {
		return false, err
	}
	sub, err := c.SubjectRDNs()
	if err != nil {
		return false, err
	}
	return namecmp.EqualNames(c.Raw, iss, c.Raw, sub), nil
}

// IssuedBy reports whether c's issuer Name equals parent's subject
// Name, the chain-linking test spec.md §4.E.4's parent search applies
// before checking the signature itself.
func (c *Certificate) IssuedBy(parent *Certificate) (bool, *der.Error) {
	iss, err := c.IssuerRDNs()
	if err != nil {
		return false, err
	}
	sub, err := parent.SubjectRDNs()
	if err != nil {
		return false, err
	}
	return namecmp.EqualNames(c.Raw, iss, parent.Raw, sub), nil
}

// DNSNames extracts every dNSName GeneralName from the certificate's
// SubjectAltName extension, fresh on every call. It returns an empty
// slice, not an error, when the extension is absent.
func (c *Certificate) DNSNames() ([]string, *der.Error) {
	f, ferr := c.Frame()
	if ferr != nil {
		return nil, ferr
	}
	if !f.HasSubjectAltName || f.SubjectAltRaw.Empty() {
		return nil, nil
	}
	return ext.DNSNames(c.Raw, f.SubjectAltRaw)
}

// ExtKeyUsageOIDs extracts every KeyPurposeId from the certificate's
// ExtendedKeyUsage extension, fresh on every call.
func (c *Certificate) ExtKeyUsageOIDs() ([]asn1.ObjectIdentifier, *der.Error) {
	f, ferr := c.Frame()
	if ferr != nil {
		return nil, ferr
	}
	if !f.HasExtKeyUsage || f.ExtKeyUsageRaw.Empty() {
		return nil, nil
	}
	return ext.ExtKeyUsageOIDs(c.Raw, f.ExtKeyUsageRaw)
}

// CommonName extracts the last commonName attribute from the subject
// Name, the CN fallback the host-name check applies when the
// SubjectAltName extension is absent.
func (c *Certificate) CommonName() (string, *der.Error) {
	sub, err := c.SubjectRDNs()
	if err != nil {
		return "", err
	}
	var cn string
	for _, atom := range sub {
		if atom.OID.Equal(oidCommonName) {
			cn = string(atom.Value.Bytes(c.Raw))
		}
	}
	return cn, nil
}
