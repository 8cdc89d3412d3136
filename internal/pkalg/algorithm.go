// Package pkalg classifies AlgorithmIdentifier OIDs into the hash/PK-algorithm
// identifiers the frame and verify packages reason about, and wraps the
// actual cryptographic primitives (hashing, signature verification,
// public-key parsing) behind the small capability surface spec.md's design
// notes describe. Those primitives are explicitly out of this module's
// scope (spec.md §1) and are provided by the Go standard library, the same
// way the teacher treats crypto/x509/crypto/ecdsa/crypto/rsa as given.
package pkalg

import (
	"crypto"
	"crypto/elliptic"
	"encoding/asn1"
	"fmt"

	"github.com/trailcert/x509chain/internal/der"
)

// Hash identifies a digest algorithm.
type Hash int

const (
	HashNone Hash = iota
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
)

// PK identifies a public-key algorithm family.
type PK int

const (
	PKNone PK = iota
	RSA
	RSAPSS
	ECDSA
	Ed25519
)

// Curve identifies an elliptic curve for ECDSA keys.
type Curve int

const (
	CurveNone Curve = iota
	P224
	P256
	P384
	P521
)

// SigOpts carries the parameters of a parameterized signature algorithm
// (RSASSA-PSS is the only one RFC 5280 certificates use in practice). For
// non-parameterized algorithms it is the zero value.
type SigOpts struct {
	IsPSS      bool
	Hash       Hash // PSS hash, independent of the outer OID's implied hash
	SaltLength int
	MGF1Hash   Hash
}

// AlgorithmIdentifier is the classified form of a DER AlgorithmIdentifier:
// spec.md's (sig_md, sig_pk, sig_opts) triple.
type AlgorithmIdentifier struct {
	OID  asn1.ObjectIdentifier
	Hash Hash
	PK   PK
	Opts SigOpts
}

var (
	oidSHA1WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 5}
	oidSHA256WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	oidSHA384WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 12}
	oidSHA512WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 13}
	oidMD5WithRSA    = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 4}
	oidRSAPSS        = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}

	oidECDSAWithSHA1   = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 1}
	oidECDSAWithSHA224 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 1}
	oidECDSAWithSHA256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	oidECDSAWithSHA384 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	oidECDSAWithSHA512 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}

	oidEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}

	oidSHA224 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 4}
	oidSHA256 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	oidSHA384 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 2}
	oidSHA512 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}
	oidSHA1   = asn1.ObjectIdentifier{1, 3, 14, 3, 2, 26}

	oidMGF1 = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 8}

	// PublicKeyAlgorithm OIDs, exported for SPKI classification.
	OIDPublicKeyRSA     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	OIDPublicKeyECDSA   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	OIDPublicKeyEd25519 = oidEd25519

	OIDCurveP224 = asn1.ObjectIdentifier{1, 3, 132, 0, 33}
	OIDCurveP256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	OIDCurveP384 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	OIDCurveP521 = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
)

var simpleTable = map[string]AlgorithmIdentifier{
	oidMD5WithRSA.String():      {OID: oidMD5WithRSA, Hash: MD5, PK: RSA},
	oidSHA1WithRSA.String():     {OID: oidSHA1WithRSA, Hash: SHA1, PK: RSA},
	oidSHA256WithRSA.String():   {OID: oidSHA256WithRSA, Hash: SHA256, PK: RSA},
	oidSHA384WithRSA.String():   {OID: oidSHA384WithRSA, Hash: SHA384, PK: RSA},
	oidSHA512WithRSA.String():   {OID: oidSHA512WithRSA, Hash: SHA512, PK: RSA},
	oidECDSAWithSHA1.String():   {OID: oidECDSAWithSHA1, Hash: SHA1, PK: ECDSA},
	oidECDSAWithSHA224.String(): {OID: oidECDSAWithSHA224, Hash: SHA224, PK: ECDSA},
	oidECDSAWithSHA256.String(): {OID: oidECDSAWithSHA256, Hash: SHA256, PK: ECDSA},
	oidECDSAWithSHA384.String(): {OID: oidECDSAWithSHA384, Hash: SHA384, PK: ECDSA},
	oidECDSAWithSHA512.String(): {OID: oidECDSAWithSHA512, Hash: SHA512, PK: ECDSA},
	oidEd25519.String():         {OID: oidEd25519, Hash: HashNone, PK: Ed25519},
}

// Classify decodes a DER AlgorithmIdentifier's OID and, for id-RSASSA-PSS,
// its parameters, into sig_md/sig_pk/sig_opts. params is the raw bytes of
// the AlgorithmIdentifier.parameters field (empty if absent).
func Classify(oid asn1.ObjectIdentifier, params []byte) (AlgorithmIdentifier, error) {
	if ai, ok := simpleTable[oid.String()]; ok {
		return ai, nil
	}
	if oid.Equal(oidRSAPSS) {
		return classifyPSS(params)
	}
	return AlgorithmIdentifier{}, fmt.Errorf("pkalg: unsupported signature algorithm OID %v", oid)
}

// classifyPSS decodes RSASSA-PSS-params ::= SEQUENCE {
//   hashAlgorithm    [0] HashAlgorithm    DEFAULT sha1,
//   maskGenAlgorithm [1] MaskGenAlgorithm DEFAULT mgf1SHA1,
//   saltLength       [2] INTEGER          DEFAULT 20,
//   trailerField     [3] INTEGER          DEFAULT 1 }
func classifyPSS(params []byte) (AlgorithmIdentifier, error) {
	ai := AlgorithmIdentifier{OID: oidRSAPSS, Hash: SHA1, PK: RSAPSS, Opts: SigOpts{IsPSS: true, Hash: SHA1, SaltLength: 20, MGF1Hash: SHA1}}
	if len(params) == 0 {
		ai.Hash = SHA1
		return ai, nil
	}

	valStart, valEnd, derr := der.TagLen(params, 0, len(params), der.Sequence)
	if derr != nil {
		return AlgorithmIdentifier{}, derr
	}
	pos := valStart
	for pos < valEnd {
		tag, perr := der.PeekTag(params, pos, valEnd)
		if perr != nil {
			return AlgorithmIdentifier{}, perr
		}
		switch tag {
		case der.ContextTag(0): // hashAlgorithm
			inStart, inEnd, e := der.TagLen(params, pos, valEnd, der.ContextTag(0))
			if e != nil {
				return AlgorithmIdentifier{}, e
			}
			algStart, algEnd, e1 := der.TagLen(params, inStart, inEnd, der.Sequence)
			if e1 != nil {
				return AlgorithmIdentifier{}, e1
			}
			hashOID, _, e2 := der.OID(params, algStart, algEnd)
			if e2 != nil {
				return AlgorithmIdentifier{}, e2
			}
			ai.Hash = hashOIDToHash(hashOID)
			ai.Opts.Hash = ai.Hash
			pos = inEnd
		case der.ContextTag(1): // maskGenAlgorithm
			inStart, inEnd, e := der.TagLen(params, pos, valEnd, der.ContextTag(1))
			if e != nil {
				return AlgorithmIdentifier{}, e
			}
			mgfStart, mgfEnd, e1 := der.TagLen(params, inStart, inEnd, der.Sequence)
			if e1 != nil {
				return AlgorithmIdentifier{}, e1
			}
			mgfOID, next, e2 := der.OID(params, mgfStart, mgfEnd)
			if e2 != nil {
				return AlgorithmIdentifier{}, e2
			}
			if mgfOID.Equal(oidMGF1) && next < mgfEnd {
				if hStart, hEnd, e3 := der.TagLen(params, next, mgfEnd, der.Sequence); e3 == nil {
					if mgfHashOID, _, e4 := der.OID(params, hStart, hEnd); e4 == nil {
						ai.Opts.MGF1Hash = hashOIDToHash(mgfHashOID)
					}
				}
			}
			pos = inEnd
		case der.ContextTag(2): // saltLength
			inStart, inEnd, e := der.TagLen(params, pos, valEnd, der.ContextTag(2))
			if e != nil {
				return AlgorithmIdentifier{}, e
			}
			salt, _, e2 := der.Int64(params, inStart, inEnd)
			if e2 != nil {
				return AlgorithmIdentifier{}, e2
			}
			ai.Opts.SaltLength = int(salt)
			pos = inEnd
		case der.ContextTag(3): // trailerField, ignored
			_, inEnd, e := der.TagLen(params, pos, valEnd, der.ContextTag(3))
			if e != nil {
				return AlgorithmIdentifier{}, e
			}
			pos = inEnd
		default:
			return AlgorithmIdentifier{}, fmt.Errorf("pkalg: unexpected field in RSASSA-PSS-params")
		}
	}
	return ai, nil
}

func hashOIDToHash(oid asn1.ObjectIdentifier) Hash {
	switch {
	case oid.Equal(oidSHA1):
		return SHA1
	case oid.Equal(oidSHA224):
		return SHA224
	case oid.Equal(oidSHA256):
		return SHA256
	case oid.Equal(oidSHA384):
		return SHA384
	case oid.Equal(oidSHA512):
		return SHA512
	default:
		return HashNone
	}
}

// CryptoHash maps Hash to the stdlib crypto.Hash that actually implements
// the digest, per spec.md's treatment of hash functions as an external
// capability.
func (h Hash) CryptoHash() crypto.Hash {
	switch h {
	case MD5:
		return crypto.MD5
	case SHA1:
		return crypto.SHA1
	case SHA224:
		return crypto.SHA224
	case SHA256:
		return crypto.SHA256
	case SHA384:
		return crypto.SHA384
	case SHA512:
		return crypto.SHA512
	default:
		return 0
	}
}

func (h Hash) String() string {
	switch h {
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA1"
	case SHA224:
		return "SHA224"
	case SHA256:
		return "SHA256"
	case SHA384:
		return "SHA384"
	case SHA512:
		return "SHA512"
	default:
		return "none"
	}
}

func (pk PK) String() string {
	switch pk {
	case RSA:
		return "RSA"
	case RSAPSS:
		return "RSA-PSS"
	case ECDSA:
		return "ECDSA"
	case Ed25519:
		return "Ed25519"
	default:
		return "none"
	}
}

// CurveFromOID classifies an EC named-curve OID from SPKI parameters.
func CurveFromOID(oid asn1.ObjectIdentifier) Curve {
	switch {
	case oid.Equal(OIDCurveP224):
		return P224
	case oid.Equal(OIDCurveP256):
		return P256
	case oid.Equal(OIDCurveP384):
		return P384
	case oid.Equal(OIDCurveP521):
		return P521
	default:
		return CurveNone
	}
}

// EllipticCurve returns the stdlib curve implementation for c, or nil.
func (c Curve) EllipticCurve() elliptic.Curve {
	switch c {
	case P224:
		return elliptic.P224()
	case P256:
		return elliptic.P256()
	case P384:
		return elliptic.P384()
	case P521:
		return elliptic.P521()
	default:
		return nil
	}
}
