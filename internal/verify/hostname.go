package verify

import (
	"github.com/trailcert/x509chain/internal/certcache"
	"github.com/trailcert/x509chain/internal/namecmp"
)

// checkHostname implements spec.md §4.E.1: if a host name was
// requested, the end-entity's SubjectAltName dNSName entries are tried
// first; if SAN is absent entirely, the subject CN is tried instead.
// SAN present but empty of dNSName entries, with no CN either, is
// CN_MISMATCH per SPEC_FULL.md's resolution of spec.md's open question.
func checkHostname(ee *certcache.Certificate, opts Options) (Flags, error) {
	if opts.Hostname == "" {
		return 0, nil
	}

	f, ferr := ee.Frame()
	if ferr != nil {
		return 0, ferr
	}

	if f.HasSubjectAltName {
		names, derr := ee.DNSNames()
		if derr != nil {
			return 0, derr
		}
		for _, n := range names {
			if namecmp.MatchDNS(n, opts.Hostname) {
				return 0, nil
			}
		}
		return BadCertCNMismatch, nil
	}

	cn, derr := ee.CommonName()
	if derr != nil {
		return 0, derr
	}
	if cn != "" && namecmp.MatchDNS(cn, opts.Hostname) {
		return 0, nil
	}
	return BadCertCNMismatch, nil
}
