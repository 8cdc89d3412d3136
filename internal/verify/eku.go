package verify

import (
	"encoding/asn1"

	"github.com/trailcert/x509chain/internal/certcache"
)

// id-kp-serverAuth, 1.3.6.1.5.5.7.3.1.
var oidExtKeyUsageServerAuth = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 1}

// id-kp-anyExtendedKeyUsage, 2.5.29.37.0.
var oidExtKeyUsageAny = asn1.ObjectIdentifier{2, 5, 29, 37, 0}

// checkExtKeyUsage implements the extended-key-usage check spec.md §6
// lists as independently enableable: when the end-entity carries an
// ExtendedKeyUsage extension, it must name id-kp-serverAuth or
// id-kp-anyExtendedKeyUsage to be accepted for TLS server
// authentication. Absence of the extension imposes no restriction.
func checkExtKeyUsage(ee *certcache.Certificate, opts Options) (Flags, error) {
	if !opts.CheckExtKeyUsage {
		return 0, nil
	}
	f, err := ee.Frame()
	if err != nil {
		return 0, err
	}
	if !f.HasExtKeyUsage {
		return 0, nil
	}
	oids, derr := ee.ExtKeyUsageOIDs()
	if derr != nil {
		return 0, derr
	}
	for _, oid := range oids {
		if oid.Equal(oidExtKeyUsageServerAuth) || oid.Equal(oidExtKeyUsageAny) {
			return 0, nil
		}
	}
	return BadCertExtKeyUsage, nil
}
