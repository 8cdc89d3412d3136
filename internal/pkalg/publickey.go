package pkalg

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/md5"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"errors"
	"fmt"
)

// PublicKey is the capability trait spec.md's design notes call for:
// Verify/CanDo plus the Bits and Curve fields over whatever concrete key
// type the SPKI actually held. Parsing itself is delegated to crypto/x509, an explicit
// external collaborator per spec.md §1 ("public-key parsing" is out of
// scope for the core).
type PublicKey struct {
	Raw   any // *rsa.PublicKey, *ecdsa.PublicKey, or ed25519.PublicKey
	PK    PK
	Bits  int
	Curve Curve
}

// ErrBadSignature is returned by Verify when the signature does not
// validate; it carries no further detail, matching the original's
// treatment of a failed signature check as a boolean outcome.
var ErrBadSignature = errors.New("pkalg: signature verification failed")

// ParseSPKI decodes a DER SubjectPublicKeyInfo into a PublicKey.
func ParseSPKI(spki []byte) (*PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(spki)
	if err != nil {
		return nil, fmt.Errorf("pkalg: parse SPKI: %w", err)
	}

	switch k := pub.(type) {
	case *rsa.PublicKey:
		return &PublicKey{Raw: k, PK: RSA, Bits: k.N.BitLen()}, nil
	case *ecdsa.PublicKey:
		curve := curveFromStd(k.Curve)
		return &PublicKey{Raw: k, PK: ECDSA, Bits: k.Curve.Params().BitSize, Curve: curve}, nil
	case ed25519.PublicKey:
		return &PublicKey{Raw: k, PK: Ed25519, Bits: len(k) * 8}, nil
	default:
		return nil, fmt.Errorf("pkalg: unsupported public key type %T", pub)
	}
}

func curveFromStd(c elliptic.Curve) Curve {
	switch c {
	case elliptic.P224():
		return P224
	case elliptic.P256():
		return P256
	case elliptic.P384():
		return P384
	case elliptic.P521():
		return P521
	default:
		return CurveNone
	}
}

// hashBytes digests msg under h using the stdlib implementation, the
// "external" hashing primitive spec.md §1 delegates away from the core.
func hashBytes(h Hash, msg []byte) []byte {
	switch h {
	case MD5:
		sum := md5.Sum(msg)
		return sum[:]
	case SHA1:
		sum := sha1.Sum(msg)
		return sum[:]
	case SHA224:
		sum := sha256.Sum224(msg)
		return sum[:]
	case SHA256:
		sum := sha256.Sum256(msg)
		return sum[:]
	case SHA384:
		sum := sha512.Sum384(msg)
		return sum[:]
	case SHA512:
		sum := sha512.Sum512(msg)
		return sum[:]
	default:
		return nil
	}
}

// CanDo reports whether this key is of the family a signature algorithm
// requires (RSA keys serve both plain RSA and RSA-PSS signatures).
func (k *PublicKey) CanDo(pk PK) bool {
	if k.PK == RSA && pk == RSAPSS {
		return true
	}
	return k.PK == pk
}

// Verify checks sig over tbs under the classified algorithm alg, using
// this key. For RSA/ECDSA it hashes tbs itself under alg.Hash; Ed25519
// signs the message directly and is passed tbs unhashed.
func (k *PublicKey) Verify(alg AlgorithmIdentifier, tbs, sig []byte) error {
	switch alg.PK {
	case RSA:
		pub, ok := k.Raw.(*rsa.PublicKey)
		if !ok {
			return fmt.Errorf("pkalg: key is not RSA")
		}
		digest := hashBytes(alg.Hash, tbs)
		if err := rsa.VerifyPKCS1v15(pub, alg.Hash.CryptoHash(), digest, sig); err != nil {
			return ErrBadSignature
		}
		return nil
	case RSAPSS:
		pub, ok := k.Raw.(*rsa.PublicKey)
		if !ok {
			return fmt.Errorf("pkalg: key is not RSA")
		}
		h := alg.Opts.Hash
		digest := hashBytes(h, tbs)
		opts := &rsa.PSSOptions{SaltLength: alg.Opts.SaltLength, Hash: h.CryptoHash()}
		if err := rsa.VerifyPSS(pub, h.CryptoHash(), digest, sig, opts); err != nil {
			return ErrBadSignature
		}
		return nil
	case ECDSA:
		pub, ok := k.Raw.(*ecdsa.PublicKey)
		if !ok {
			return fmt.Errorf("pkalg: key is not ECDSA")
		}
		digest := hashBytes(alg.Hash, tbs)
		if !ecdsa.VerifyASN1(pub, digest, sig) {
			return ErrBadSignature
		}
		return nil
	case Ed25519:
		pub, ok := k.Raw.(ed25519.PublicKey)
		if !ok {
			return fmt.Errorf("pkalg: key is not Ed25519")
		}
		if !ed25519.Verify(pub, tbs, sig) {
			return ErrBadSignature
		}
		return nil
	default:
		return fmt.Errorf("pkalg: unsupported signature PK algorithm")
	}
}
