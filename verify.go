package x509chain

import (
	"time"

	"github.com/trailcert/x509chain/crl"
	"github.com/trailcert/x509chain/internal/certcache"
	"github.com/trailcert/x509chain/internal/profile"
	"github.com/trailcert/x509chain/internal/verify"
)

// Flags is the 32-bit verification-defect word spec.md §6 defines.
// See the BadCert*/BadCRL* constants for the individual bits.
type Flags = verify.Flags

const (
	BadCertExpired      = verify.BadCertExpired
	BadCertRevoked      = verify.BadCertRevoked
	BadCertCNMismatch   = verify.BadCertCNMismatch
	BadCertNotTrusted   = verify.BadCertNotTrusted
	BadCRLNotTrusted    = verify.BadCRLNotTrusted
	BadCRLExpired       = verify.BadCRLExpired
	BadCertMissing      = verify.BadCertMissing
	BadCertSkipVerify   = verify.BadCertSkipVerify
	BadCertFuture       = verify.BadCertFuture
	BadCRLFuture        = verify.BadCRLFuture
	BadCertKeyUsage     = verify.BadCertKeyUsage
	BadCertExtKeyUsage  = verify.BadCertExtKeyUsage
	BadCertNSCertType   = verify.BadCertNSCertType
	BadCertBadMD        = verify.BadCertBadMD
	BadCertBadPK        = verify.BadCertBadPK
	BadCertBadKey       = verify.BadCertBadKey
	BadCRLBadMD         = verify.BadCRLBadMD
	BadCRLBadPK         = verify.BadCRLBadPK
	BadCRLBadKey        = verify.BadCRLBadKey
	BadCertOther        = verify.BadCertOther
)

// Status is the three-way outcome of a Verify call, independent of
// the flag word: StatusOK/StatusVerifyFailed/StatusFatal.
type Status = verify.Status

const (
	StatusOK           = verify.StatusOK
	StatusVerifyFailed = verify.StatusVerifyFailed
	StatusFatal        = verify.StatusFatal
)

// FatalError is returned in place of a Result when verification could
// not complete because of a callback failure or a parse or key failure
// on the end-entity (spec.md §7's third error stratum). A chain that
// exceeds Options.MaxIntermediateCA, or a candidate further up that does
// not parse, is reported instead with a nil error and a Result whose
// Status is StatusFatal and whose Flags are all ones.
type FatalError = verify.FatalError

// Profile is the cryptographic acceptability policy a Verify call
// checks hashes, PK algorithms, curves, and RSA key size against.
type Profile = profile.Profile

// DefaultProfile, NextProfile, and SuiteBProfile are the three
// built-in acceptability profiles.
var (
	DefaultProfile = profile.Default
	NextProfile    = profile.Next
	SuiteBProfile  = profile.SuiteB
)

// LoadProfile reads a YAML-encoded Profile from path.
func LoadProfile(path string) (Profile, error) { return profile.LoadFile(path) }

// CRL is a parsed RFC 5280 CertificateList, ready to pass to Verify.
type CRL = crl.CRL

// ParseCRL parses a DER-encoded CertificateList.
func ParseCRL(buf []byte) (*CRL, error) {
	c, err := crl.Parse(buf)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RootLookupFunc replaces a fixed trusted-roots list with a callback
// consulted once per chain hop, for callers that hold a large or
// externally indexed root store.
type RootLookupFunc func(child *Certificate) ([]*Certificate, error)

// VerdictFunc is consulted once per chain slot, top to bottom, after
// the search loop terminates; it may clear or add bits in flags.
type VerdictFunc func(cert *Certificate, depth int, flags *Flags) error

// Options configures one Verify call.
type Options struct {
	// MaxIntermediateCA caps the number of intermediates accepted
	// below a trust anchor.
	MaxIntermediateCA int
	// CheckKeyUsage requires KEY_CERT_SIGN on a candidate parent and
	// CRL_SIGN on a CRL-issuing parent.
	CheckKeyUsage bool
	// CheckExtKeyUsage requires the end-entity's ExtendedKeyUsage
	// (when present) to include serverAuth or anyExtendedKeyUsage.
	CheckExtKeyUsage bool

	Profile Profile

	// Now overrides the clock; the zero value means time.Now().
	Now time.Time

	RootLookup RootLookupFunc
	Verdict    VerdictFunc

	Hostname string
}

// DefaultOptions returns the zero-value-safe baseline.
func DefaultOptions() Options {
	return Options{
		MaxIntermediateCA: verify.DefaultMaxIntermediateCA,
		CheckKeyUsage:     true,
		Profile:           profile.Default,
	}
}

func (o Options) toInternal() verify.Options {
	vo := verify.Options{
		MaxIntermediateCA: o.MaxIntermediateCA,
		CheckKeyUsage:     o.CheckKeyUsage,
		CheckExtKeyUsage:  o.CheckExtKeyUsage,
		Profile:           o.Profile,
		Now:               o.Now,
		Hostname:          o.Hostname,
	}
	if o.RootLookup != nil {
		vo.RootLookup = func(child *certcache.Certificate) ([]*certcache.Certificate, error) {
			roots, err := o.RootLookup(&Certificate{cache: child})
			if err != nil {
				return nil, err
			}
			out := make([]*certcache.Certificate, len(roots))
			for i, r := range roots {
				out[i] = r.cache
			}
			return out, nil
		}
	}
	if o.Verdict != nil {
		vo.Verdict = func(cert *certcache.Certificate, depth int, flags *verify.Flags) error {
			return o.Verdict(&Certificate{cache: cert}, depth, flags)
		}
	}
	return vo
}

// Slot is one built chain link: the certificate found at that depth
// and the defects attributed to it.
type Slot struct {
	Cert  *Certificate
	Flags Flags
}

// Result is everything Verify returns.
type Result struct {
	Status Status
	Flags  Flags
	Chain  []Slot
}

// Verify builds and checks a certificate chain from ee up to a trust
// anchor in roots (or reachable through opts.RootLookup), per
// spec.md §4.E. crls, if non-empty, is consulted for every hop whose
// issuer matches a CRL's issuer, unless opts.RootLookup is set.
func Verify(ee *Certificate, roots []*Certificate, crls []*CRL, opts Options) (Result, error) {
	vroots := make([]*certcache.Certificate, len(roots))
	for i, r := range roots {
		vroots[i] = r.cache
	}

	vres, err := verify.Verify(ee.cache, vroots, crls, opts.toInternal())
	if err != nil {
		return Result{}, err
	}

	chain := make([]Slot, len(vres.Chain))
	for i, s := range vres.Chain {
		chain[i] = Slot{Cert: &Certificate{cache: s.Cert}, Flags: s.Flags}
	}
	return Result{Status: vres.Status, Flags: vres.Flags, Chain: chain}, nil
}

// VerifyRestartable behaves exactly like Verify: this implementation's
// cryptographic backends (the Go standard library's rsa/ecdsa/ed25519
// packages) always complete a chain search synchronously, so there is
// never an in-progress RestartState to hand back. The method exists so
// callers written against spec.md §4.E.7's restartable contract have
// somewhere to call; it always returns a RestartNone state.
func VerifyRestartable(ee *Certificate, roots []*Certificate, crls []*CRL, opts Options, _ *verify.RestartState) (Result, *verify.RestartState, error) {
	res, err := Verify(ee, roots, crls, opts)
	return res, &verify.RestartState{Kind: verify.RestartNone}, err
}
