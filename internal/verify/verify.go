// Package verify implements the chain-building and verification engine
// of spec.md §4.E: an iterative, bounded search from an end-entity
// certificate up to a trust anchor, accumulating a 32-bit defect word
// per spec.md §6 while it goes.
package verify

import (
	"fmt"
	"time"

	"github.com/trailcert/x509chain/internal/certcache"
	"github.com/trailcert/x509chain/crl"
	"github.com/trailcert/x509chain/internal/der"
	"github.com/trailcert/x509chain/internal/ext"
	"github.com/trailcert/x509chain/internal/namecmp"
	"github.com/trailcert/x509chain/internal/pkalg"
	"github.com/trailcert/x509chain/internal/profile"
)

// Slot is one built link: the certificate found at that depth and the
// defects attributed to it.
type Slot struct {
	Cert  *certcache.Certificate
	Flags Flags
}

// Result is everything Verify returns: the overall status, the folded
// flag word, and the chain actually built (EE first, trust anchor
// last if one was reached).
type Result struct {
	Status Status
	Flags  Flags
	Chain  []Slot
}

// FatalError wraps the internal-error stratum of spec.md §7: hashing
// failure, callback failure, or an inconsistency parse-time checks
// should have prevented. It is returned instead of a Result. Failures met
// while building the chain itself (a candidate that does not parse, a
// chain longer than MaxIntermediateCA) are reported instead as a Result
// with StatusFatal and a nil error.
type FatalError struct {
	Cause error
}

func (e *FatalError) Error() string { return fmt.Sprintf("verify: fatal: %v", e.Cause) }
func (e *FatalError) Unwrap() error { return e.Cause }

// sigInfo is the bundle spec.md §4.E.3 step 2 computes once per child:
// enough to check a candidate parent's signature without re-touching
// the child's frame.
type sigInfo struct {
	tbs      []byte
	sigAlg   pkalg.AlgorithmIdentifier
	sigValue []byte
}

// Verify walks from ee upward through ee.Next-linked intermediates,
// searching roots (or querying opts.RootLookup) for a trust anchor at
// each hop, per spec.md §4.E.
func Verify(ee *certcache.Certificate, roots []*certcache.Certificate, crls []*crl.CRL, opts Options) (Result, error) {
	if opts.MaxIntermediateCA < 0 {
		opts.MaxIntermediateCA = DefaultMaxIntermediateCA
	}

	var total Flags

	hostFlags, herr := checkHostname(ee, opts)
	if herr != nil {
		return Result{}, &FatalError{Cause: herr}
	}
	total |= hostFlags

	ekuFlags, eerr := checkExtKeyUsage(ee, opts)
	if eerr != nil {
		return Result{}, &FatalError{Cause: eerr}
	}
	total |= ekuFlags

	eePub, perr := ee.PublicKey()
	if perr != nil {
		return Result{}, &FatalError{Cause: perr}
	}
	total |= checkKeyStrength(eePub, opts.Profile)

	chain, status, err := buildChain(ee, roots, crls, opts)
	if err != nil {
		return Result{}, err
	}
	if status == StatusFatal {
		return Result{Status: StatusFatal, Flags: 0xFFFFFFFF}, nil
	}

	// Apply the verdict callback top-to-bottom, per spec.md §4.E.6,
	// then fold every slot's flags (including the host-name/EE-key
	// checks computed above, attributed to the EE slot) into the
	// final word.
	if len(chain) > 0 {
		chain[0].Flags |= total
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if opts.Verdict != nil {
			if verr := opts.Verdict(chain[i].Cert, i, &chain[i].Flags); verr != nil {
				return Result{}, &FatalError{Cause: verr}
			}
		}
	}

	var final Flags
	for _, slot := range chain {
		final |= slot.Flags
	}

	if final != 0 {
		status = StatusVerifyFailed
	}
	return Result{Status: status, Flags: final, Chain: chain}, nil
}

// buildChain runs spec.md §4.E.3's iterative loop.
func buildChain(ee *certcache.Certificate, roots []*certcache.Certificate, crls []*crl.CRL, opts Options) ([]Slot, Status, error) {
	now := opts.now()

	var chain []Slot
	child := ee
	childIsTrusted := false
	pathCnt := 0
	selfCnt := 0

	for {
		chain = append(chain, Slot{Cert: child})
		if len(chain) > opts.MaxIntermediateCA+1 {
			return nil, StatusFatal, nil
		}
		slot := &chain[len(chain)-1]

		f, ferr := child.Frame()
		if ferr != nil {
			return nil, StatusFatal, nil
		}

		if now.After(f.ValidTo) {
			slot.Flags |= BadCertExpired
		}
		if now.Before(f.ValidFrom) {
			slot.Flags |= BadCertFuture
		}

		if childIsTrusted {
			return chain, StatusOK, nil
		}

		selfIssued, serr := child.IsSelfIssued()
		if serr != nil {
			return nil, StatusFatal, nil
		}

		slot.Flags |= checkSigAlg(f.SigAlgorithm, opts.Profile)

		if len(chain) == 1 && selfIssued {
			for _, r := range roots {
				if r != child && bytesEqual(r.Raw, child.Raw) {
					return chain, StatusOK, nil
				}
			}
		}

		sig := sigInfo{
			tbs:      f.TBS.Bytes(child.Raw),
			sigAlg:   f.SigAlgorithm,
			sigValue: f.SigValue.Bytes(child.Raw),
		}

		candidates := roots
		if opts.RootLookup != nil {
			var err error
			candidates, err = opts.RootLookup(child)
			if err != nil {
				return nil, 0, &FatalError{Cause: err}
			}
		}

		parent, sigOK, parentTrusted, ferr2 := findParent(child, sig, candidates, true, pathCnt, selfCnt, now, opts)
		if ferr2 != nil {
			return nil, StatusFatal, nil
		}
		if parent == nil {
			parent, sigOK, parentTrusted, ferr2 = findParent(child, sig, childIntermediates(child), false, pathCnt, selfCnt, now, opts)
			if ferr2 != nil {
				return nil, StatusFatal, nil
			}
		}

		if parent == nil {
			slot.Flags |= BadCertNotTrusted
			return chain, StatusVerifyFailed, nil
		}

		if !parentTrusted && len(chain) > opts.MaxIntermediateCA {
			return nil, StatusFatal, nil
		}
		if !sigOK {
			slot.Flags |= BadCertNotTrusted
		}

		parentPub, pkerr := parent.PublicKey()
		if pkerr != nil {
			return nil, StatusFatal, nil
		}
		slot.Flags |= checkKeyStrength(parentPub, opts.Profile)

		if opts.RootLookup == nil {
			slot.Flags |= checkCRLs(child, parent, crls, opts)
		}

		if len(chain) >= 2 && selfIssued {
			selfCnt++
		}

		child = parent
		childIsTrusted = parentTrusted
		pathCnt++
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// childIntermediates walks the Next chain starting just below child,
// the "supplied intermediates" list of spec.md §4.E.
func childIntermediates(child *certcache.Certificate) []*certcache.Certificate {
	var out []*certcache.Certificate
	for c := child.Next; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}

// findParent implements spec.md §4.E.4.
func findParent(child *certcache.Certificate, sig sigInfo, list []*certcache.Certificate, top bool, pathCnt, selfCnt int, now time.Time, opts Options) (parent *certcache.Certificate, sigOK bool, trusted bool, err error) {
	var fallback *certcache.Certificate
	var fallbackSigOK bool
	haveFallback := false

	for _, cand := range list {
		cf, cerr := cand.Frame()
		if cerr != nil {
			return nil, false, false, &FatalError{Cause: cerr}
		}

		parentValid := !now.Before(cf.ValidFrom) && !now.After(cf.ValidTo)

		subjectMatches := namecmp.EqualNames(cand.Raw, rdnsOrNil(cand, subjectKind), child.Raw, rdnsOrNil(child, issuerKind))
		caOK := (top && cf.Version < 3) || cf.CAIsTrue
		keyUsageOK := true
		if opts.CheckKeyUsage && cf.HasKeyUsage {
			keyUsageOK = cf.KeyUsage.Has(ext.KeyUsageKeyCertSign)
		}
		parentMatch := subjectMatches && caOK && keyUsageOK

		pathLenOK := !(cf.MaxPathLen > 0 && cf.MaxPathLen < 1+pathCnt-selfCnt)

		if !parentMatch || !pathLenOK {
			continue
		}

		pub, pkerr := cand.PublicKey()
		if pkerr != nil {
			return nil, false, false, &FatalError{Cause: pkerr}
		}
		sigGood := pub.Verify(sig.sigAlg, sig.tbs, sig.sigValue) == nil

		if top && !sigGood {
			continue
		}

		if parentValid {
			return cand, sigGood, top, nil
		}
		if !haveFallback {
			fallback, fallbackSigOK, haveFallback = cand, sigGood, true
		}
	}

	if haveFallback {
		return fallback, fallbackSigOK, top, nil
	}
	return nil, false, false, nil
}

type nameKind int

const (
	subjectKind nameKind = iota
	issuerKind
)

func rdnsOrNil(c *certcache.Certificate, kind nameKind) []namecmp.RDNAtom {
	var atoms []namecmp.RDNAtom
	var derr *der.Error
	if kind == subjectKind {
		atoms, derr = c.SubjectRDNs()
	} else {
		atoms, derr = c.IssuerRDNs()
	}
	if derr != nil {
		return nil
	}
	return atoms
}

// checkSigAlg reports a BadCertBadMD/BadCertBadPK defect for a
// certificate's own signature algorithm, per spec.md §4.E.3's "profile
// checks on the child's sig_md, sig_pk".
func checkSigAlg(alg pkalg.AlgorithmIdentifier, p profile.Profile) Flags {
	var f Flags
	if alg.Hash != pkalg.HashNone && !p.AllowsHash(alg.Hash) {
		f |= BadCertBadMD
	}
	if alg.PK != pkalg.PKNone && !p.AllowsPK(alg.PK) {
		f |= BadCertBadPK
	}
	return f
}

// checkKeyStrength applies the profile's PK-algorithm, curve, and
// minimum-RSA-size filters to a parsed public key.
func checkKeyStrength(pub *pkalg.PublicKey, p profile.Profile) Flags {
	var f Flags
	if !p.AllowsPK(pub.PK) {
		f |= BadCertBadPK
	}
	switch pub.PK {
	case pkalg.ECDSA:
		if !p.AllowsCurve(pub.Curve) {
			f |= BadCertBadKey
		}
	case pkalg.RSA, pkalg.RSAPSS:
		if p.MinRSABits > 0 && pub.Bits < p.MinRSABits {
			f |= BadCertBadKey
		}
	}
	return f
}
