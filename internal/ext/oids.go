package ext

import "encoding/asn1"

// Extension OIDs, following the (OID, kind, decoder_fn) static-table
// design note rather than a branching if/else chain — grounded on the
// same package-level-OID-variable style as the pack's
// letsencrypt-boulder/policyasn1 package.
var (
	oidBasicConstraints    = asn1.ObjectIdentifier{2, 5, 29, 19}
	oidKeyUsage            = asn1.ObjectIdentifier{2, 5, 29, 15}
	oidSubjectAltName      = asn1.ObjectIdentifier{2, 5, 29, 17}
	oidExtKeyUsage         = asn1.ObjectIdentifier{2, 5, 29, 37}
	oidCertificatePolicies = asn1.ObjectIdentifier{2, 5, 29, 32}
	oidAuthorityKeyID      = asn1.ObjectIdentifier{2, 5, 29, 35}
	oidSubjectKeyID        = asn1.ObjectIdentifier{2, 5, 29, 14}
	// Netscape Certificate Type: 2.16.840.1.113730.1.1.
	oidNetscapeCertType = asn1.ObjectIdentifier{2, 16, 840, 1, 113730, 1, 1}
)

// table maps a recognized OID to its Kind. Unlisted OIDs are "unknown" in
// spec.md §4.C's terms.
var table = map[string]Kind{
	oidBasicConstraints.String():    BasicConstraints,
	oidKeyUsage.String():            KeyUsage,
	oidSubjectAltName.String():      SubjectAltName,
	oidExtKeyUsage.String():         ExtendedKeyUsage,
	oidCertificatePolicies.String(): CertificatePolicies,
	oidNetscapeCertType.String():    NetscapeCertType,
	oidAuthorityKeyID.String():      AuthorityKeyID,
	oidSubjectKeyID.String():        SubjectKeyID,
}

func lookup(oid asn1.ObjectIdentifier) (Kind, bool) {
	k, ok := table[oid.String()]
	return k, ok
}
