// Package profile implements the cryptographic acceptability policy
// spec.md §3/§6 calls for: which hashes, PK algorithms, and curves a
// verification accepts, and the minimum acceptable RSA modulus size.
// Loading a custom profile from YAML follows the teacher's style of
// flat configuration structs decoded straight off disk.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trailcert/x509chain/internal/pkalg"
)

// Profile is the four-field acceptability record of spec.md §3.
type Profile struct {
	Hashes     map[pkalg.Hash]bool
	PKAlgs     map[pkalg.PK]bool
	Curves     map[pkalg.Curve]bool
	MinRSABits int
}

// AllowsHash reports whether h is acceptable under this profile.
func (p Profile) AllowsHash(h pkalg.Hash) bool { return p.Hashes[h] }

// AllowsPK reports whether pk is acceptable under this profile.
func (p Profile) AllowsPK(pk pkalg.PK) bool { return p.PKAlgs[pk] }

// AllowsCurve reports whether c is acceptable under this profile. A
// zero Curve (non-EC key) is always allowed by this check; callers gate
// it behind AllowsPK(ECDSA) first.
func (p Profile) AllowsCurve(c pkalg.Curve) bool {
	if c == pkalg.CurveNone {
		return true
	}
	return p.Curves[c]
}

// Default matches the widely deployed baseline: SHA-224 and up, RSA
// (PKCS#1 v1.5 and PSS), ECDSA and Ed25519, the NIST P-curves, 2048-bit
// minimum RSA.
var Default = Profile{
	Hashes:     set(pkalg.SHA224, pkalg.SHA256, pkalg.SHA384, pkalg.SHA512),
	PKAlgs:     setPK(pkalg.RSA, pkalg.RSAPSS, pkalg.ECDSA, pkalg.Ed25519),
	Curves:     setCurve(pkalg.P224, pkalg.P256, pkalg.P384, pkalg.P521),
	MinRSABits: 2048,
}

// Next is a stricter, forward-looking profile: SHA-256 and up only, no
// SHA-224, 3072-bit minimum RSA, P-256 and above.
var Next = Profile{
	Hashes:     set(pkalg.SHA256, pkalg.SHA384, pkalg.SHA512),
	PKAlgs:     setPK(pkalg.RSA, pkalg.RSAPSS, pkalg.ECDSA, pkalg.Ed25519),
	Curves:     setCurve(pkalg.P256, pkalg.P384, pkalg.P521),
	MinRSABits: 3072,
}

// SuiteB matches NSA Suite B: SHA-256/SHA-384, ECDSA only, P-256/P-384.
var SuiteB = Profile{
	Hashes:     set(pkalg.SHA256, pkalg.SHA384),
	PKAlgs:     setPK(pkalg.ECDSA),
	Curves:     setCurve(pkalg.P256, pkalg.P384),
	MinRSABits: 0,
}

func set(hs ...pkalg.Hash) map[pkalg.Hash]bool {
	m := make(map[pkalg.Hash]bool, len(hs))
	for _, h := range hs {
		m[h] = true
	}
	return m
}

func setPK(pks ...pkalg.PK) map[pkalg.PK]bool {
	m := make(map[pkalg.PK]bool, len(pks))
	for _, pk := range pks {
		m[pk] = true
	}
	return m
}

func setCurve(cs ...pkalg.Curve) map[pkalg.Curve]bool {
	m := make(map[pkalg.Curve]bool, len(cs))
	for _, c := range cs {
		m[c] = true
	}
	return m
}

// fileProfile is the YAML-decodable shape; Profile's map fields are
// awkward to author by hand in a config file, so the file format is
// name lists rather than the internal maps.
type fileProfile struct {
	Hashes     []string `yaml:"hashes"`
	PKAlgs     []string `yaml:"pk_algorithms"`
	Curves     []string `yaml:"curves"`
	MinRSABits int      `yaml:"min_rsa_bits"`
}

// LoadFile reads a YAML-encoded profile from path.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: read %s: %w", path, err)
	}
	var fp fileProfile
	if err := yaml.Unmarshal(data, &fp); err != nil {
		return Profile{}, fmt.Errorf("profile: parse %s: %w", path, err)
	}

	p := Profile{
		Hashes:     make(map[pkalg.Hash]bool),
		PKAlgs:     make(map[pkalg.PK]bool),
		Curves:     make(map[pkalg.Curve]bool),
		MinRSABits: fp.MinRSABits,
	}
	for _, name := range fp.Hashes {
		h, err := parseHash(name)
		if err != nil {
			return Profile{}, err
		}
		p.Hashes[h] = true
	}
	for _, name := range fp.PKAlgs {
		pk, err := parsePK(name)
		if err != nil {
			return Profile{}, err
		}
		p.PKAlgs[pk] = true
	}
	for _, name := range fp.Curves {
		c, err := parseCurve(name)
		if err != nil {
			return Profile{}, err
		}
		p.Curves[c] = true
	}
	return p, nil
}

func parseHash(name string) (pkalg.Hash, error) {
	switch name {
	case "md5":
		return pkalg.MD5, nil
	case "sha1":
		return pkalg.SHA1, nil
	case "sha224":
		return pkalg.SHA224, nil
	case "sha256":
		return pkalg.SHA256, nil
	case "sha384":
		return pkalg.SHA384, nil
	case "sha512":
		return pkalg.SHA512, nil
	default:
		return pkalg.HashNone, fmt.Errorf("profile: unknown hash %q", name)
	}
}

func parsePK(name string) (pkalg.PK, error) {
	switch name {
	case "rsa":
		return pkalg.RSA, nil
	case "rsa-pss":
		return pkalg.RSAPSS, nil
	case "ecdsa":
		return pkalg.ECDSA, nil
	case "ed25519":
		return pkalg.Ed25519, nil
	default:
		return pkalg.PKNone, fmt.Errorf("profile: unknown PK algorithm %q", name)
	}
}

func parseCurve(name string) (pkalg.Curve, error) {
	switch name {
	case "p224":
		return pkalg.P224, nil
	case "p256":
		return pkalg.P256, nil
	case "p384":
		return pkalg.P384, nil
	case "p521":
		return pkalg.P521, nil
	default:
		return pkalg.CurveNone, fmt.Errorf("profile: unknown curve %q", name)
	}
}
