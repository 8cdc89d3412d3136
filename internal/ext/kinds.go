// Package ext implements the extension walker (spec.md §4.C): it iterates
// the v3 Extensions SEQUENCE, dispatches each entry by OID through a
// static table, and populates the flags and sub-spans the chain verifier
// later consumes. It never materializes per-entry linked structures —
// those belong to the lazy detail layer (internal/certcache).
package ext

import "github.com/trailcert/x509chain/internal/der"

// Kind is one bit in spec.md's ext_types bitset: exactly one enumeration
// for "is this extension present" and "which extension is this," so the
// OID/bit conflation spec.md's Open Questions flags in the original never
// has an analogue here.
type Kind uint16

const (
	BasicConstraints Kind = 1 << iota
	KeyUsage
	SubjectAltName
	ExtendedKeyUsage
	CertificatePolicies
	NetscapeCertType
	AuthorityKeyID
	SubjectKeyID
)

// Has reports whether kind's bit is set in the receiver bitset.
func (set Kind) Has(kind Kind) bool { return set&kind != 0 }

// KeyUsageBits is spec.md's key_usage packed little-endian integer: bit i
// is ASN.1 NamedBitList bit i directly, counting from the KeyUsage BIT
// STRING's first (most significant) bit.
type KeyUsageBits uint16

const (
	KeyUsageDigitalSignature KeyUsageBits = 1 << 0
	KeyUsageNonRepudiation   KeyUsageBits = 1 << 1
	KeyUsageKeyEncipherment  KeyUsageBits = 1 << 2
	KeyUsageDataEncipherment KeyUsageBits = 1 << 3
	KeyUsageKeyAgreement     KeyUsageBits = 1 << 4
	KeyUsageKeyCertSign      KeyUsageBits = 1 << 5
	KeyUsageCRLSign          KeyUsageBits = 1 << 6
	KeyUsageEncipherOnly     KeyUsageBits = 1 << 7
	KeyUsageDecipherOnly     KeyUsageBits = 1 << 8
)

func (b KeyUsageBits) Has(bit KeyUsageBits) bool { return b&bit != 0 }

// NSCertTypeBits decodes the Netscape cert-type extension's named bits,
// supplementing spec.md §3 (which leaves ns_cert_type an opaque byte) per
// SPEC_FULL.md.
type NSCertTypeBits byte

const (
	NSCertSSLClient       NSCertTypeBits = 1 << 0
	NSCertSSLServer       NSCertTypeBits = 1 << 1
	NSCertSMIME           NSCertTypeBits = 1 << 2
	NSCertObjectSigning   NSCertTypeBits = 1 << 3
	NSCertReserved        NSCertTypeBits = 1 << 4
	NSCertSSLCA           NSCertTypeBits = 1 << 5
	NSCertSMIMECA         NSCertTypeBits = 1 << 6
	NSCertObjectSigningCA NSCertTypeBits = 1 << 7
)

func (b NSCertTypeBits) Has(bit NSCertTypeBits) bool { return b&bit != 0 }

// Fields holds every value the walker can populate. Frame embeds it
// directly; Walk is the only thing that writes to it.
type Fields struct {
	ExtTypes Kind

	CAIsTrue   bool
	MaxPathLen int // stored = real + 1; 0 means unset, per spec.md §3.

	HasKeyUsage bool
	KeyUsage    KeyUsageBits

	HasSubjectAltName bool
	SubjectAltRaw     der.Span

	HasExtKeyUsage bool
	ExtKeyUsageRaw der.Span

	HasCertPolicies bool
	CertPoliciesRaw der.Span

	HasNSCertType bool
	NSCertType    NSCertTypeBits

	HasAuthorityKeyID bool
	AuthorityKeyID    der.Span

	HasSubjectKeyID bool
	SubjectKeyID    der.Span
}
