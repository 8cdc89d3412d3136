package verify

import (
	"github.com/trailcert/x509chain/internal/certcache"
	"github.com/trailcert/x509chain/crl"
	"github.com/trailcert/x509chain/internal/ext"
	"github.com/trailcert/x509chain/internal/namecmp"
	"github.com/trailcert/x509chain/internal/pkalg"
)

// checkCRLs implements spec.md §4.E.5 for every CRL whose issuer
// equals parent's subject. child's Frame has already been acquired by
// the caller's loop iteration, so serial/validity come straight off it.
func checkCRLs(child, parent *certcache.Certificate, crls []*crl.CRL, opts Options) Flags {
	if len(crls) == 0 {
		return 0
	}

	cf, cferr := child.Frame()
	if cferr != nil {
		return 0
	}
	pf, pferr := parent.Frame()
	if pferr != nil {
		return 0
	}
	parentSub, perr := parent.SubjectRDNs()
	if perr != nil {
		return 0
	}

	var flags Flags
	now := opts.now()

	for _, c := range crls {
		issuer, ierr := namecmp.ParseRDNs(c.Raw, c.IssuerRaw)
		if ierr != nil {
			continue
		}
		if !namecmp.EqualNames(c.Raw, issuer, parent.Raw, parentSub) {
			continue
		}

		if c.SigAlg.Hash != pkalg.HashNone && !opts.Profile.AllowsHash(c.SigAlg.Hash) {
			flags |= BadCRLBadMD
		}
		if c.SigAlg.PK != pkalg.PKNone && !opts.Profile.AllowsPK(c.SigAlg.PK) {
			flags |= BadCRLBadPK
		}

		if opts.CheckKeyUsage && pf.HasKeyUsage && !pf.KeyUsage.Has(ext.KeyUsageCRLSign) {
			flags |= BadCRLNotTrusted
		}

		parentPub, pkerr := parent.PublicKey()
		if pkerr != nil {
			flags |= BadCRLNotTrusted
			continue
		}
		if parentPub.Verify(c.SigAlg, c.TBS.Bytes(c.Raw), c.SigValue.Bytes(c.Raw)) != nil {
			flags |= BadCRLNotTrusted
		}
		flags |= crlKeyFlags(checkKeyStrength(parentPub, opts.Profile))

		if now.After(c.NextUpdate) && !c.NextUpdate.IsZero() {
			flags |= BadCRLExpired
		}
		if now.Before(c.ThisUpdate) {
			flags |= BadCRLFuture
		}

		if c.Revokes(cf.SerialNumber, now) {
			flags |= BadCertRevoked
			return flags
		}
	}

	return flags
}

// crlKeyFlags maps BadCertBadPK/BadCertBadKey bits produced by
// checkKeyStrength (reused here for the parent's key, per spec.md
// §4.E.5's "profile-check parent key strength") onto BADCERT_BAD_KEY,
// the bit spec.md's table assigns the CRL-path key-strength failure.
func crlKeyFlags(f Flags) Flags {
	if f.Has(BadCertBadPK) || f.Has(BadCertBadKey) {
		return BadCertBadKey
	}
	return 0
}
