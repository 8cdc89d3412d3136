package verify

import (
	"time"

	"github.com/trailcert/x509chain/internal/certcache"
	"github.com/trailcert/x509chain/internal/profile"
)

// RootLookupFunc is the root-lookup callback of spec.md §6: given the
// current child, return its candidate trust anchors. When set, CRL
// checking is disabled, per contract (the caller's anchors are not a
// fixed list the CRL issuer match can be evaluated against).
type RootLookupFunc func(child *certcache.Certificate) ([]*certcache.Certificate, error)

// VerdictFunc is the per-node verdict-adjustment callback of spec.md
// §4.E.6: it may clear or add bits in flags for the certificate at
// depth. Returning a non-nil error aborts verification as fatal.
type VerdictFunc func(cert *certcache.Certificate, depth int, flags *Flags) error

// Options configures one verification call.
type Options struct {
	// MaxIntermediateCA caps the number of intermediates accepted
	// below a trust anchor; the chain array holds at most
	// MaxIntermediateCA+2 entries (EE, intermediates, root).
	MaxIntermediateCA int

	// CheckKeyUsage, if true, requires KEY_CERT_SIGN on a candidate
	// parent and CRL_SIGN on a CRL-issuing parent.
	CheckKeyUsage bool
	// CheckExtKeyUsage, if true, requires the EE's ExtendedKeyUsage
	// (when present) to include serverAuth or anyExtendedKeyUsage,
	// whether or not a Hostname is set.
	CheckExtKeyUsage bool

	Profile profile.Profile

	// Now overrides the clock used for time-validity and CRL-freshness
	// checks; the zero value means time.Now().
	Now time.Time

	// RootLookup, if set, replaces the fixed trusted-roots list.
	RootLookup RootLookupFunc
	// Verdict, if set, is consulted once per chain slot after the
	// search loop terminates.
	Verdict VerdictFunc

	Hostname string
}

// DefaultMaxIntermediateCA matches the common default of the original:
// eight intermediates below the trust anchor.
const DefaultMaxIntermediateCA = 8

// DefaultOptions returns the zero-value-safe baseline: default profile,
// default intermediate cap, key-usage checking enabled.
func DefaultOptions() Options {
	return Options{
		MaxIntermediateCA: DefaultMaxIntermediateCA,
		CheckKeyUsage:     true,
		CheckExtKeyUsage:  false,
		Profile:           profile.Default,
	}
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}
