package frame

import (
	"math/big"
	"time"

	"github.com/trailcert/x509chain/internal/der"
	"github.com/trailcert/x509chain/internal/ext"
	"github.com/trailcert/x509chain/internal/pkalg"
)

// Frame is the flat record spec.md §3 describes: spans into the
// certificate's own DER buffer plus scalar fields, produced by one
// breadth-first pass and never copying the payload.
type Frame struct {
	// Raw is the whole Certificate SEQUENCE TLV actually parsed. Trailing
	// bytes past it (multi-cert concatenations) are not included.
	Raw der.Span
	// TBS is the tbsCertificate SEQUENCE TLV: exactly the bytes the
	// issuer's signature covers.
	TBS der.Span

	Serial       der.Span
	SerialNumber *big.Int

	IssuerRaw  der.Span
	SubjectRaw der.Span

	// PubKeyRaw is the SubjectPublicKeyInfo SEQUENCE TLV, handed to
	// pkalg.ParseSPKI on demand by the lazy detail layer.
	PubKeyRaw der.Span

	// SigAlg is the signatureAlgorithm SEQUENCE TLV (outer and inner
	// copies are required to be byte-identical; this is that shared
	// value once the equality check has passed).
	SigAlg der.Span
	// SigValue is the signatureValue BIT STRING's payload (content
	// bytes only, unused-bits count octet excluded) — the actual
	// signature bytes a pkalg.PublicKey.Verify call consumes.
	SigValue der.Span

	// V3Ext is the Extensions SEQUENCE TLV (tag included), or the zero
	// span if absent.
	V3Ext der.Span

	IssuerID  der.Span
	SubjectID der.Span

	Version int // 1, 2, or 3

	SigAlgorithm pkalg.AlgorithmIdentifier

	ValidFrom time.Time
	ValidTo   time.Time

	ext.Fields
}

// Options configures lenient/strict behavior spec.md §6 calls out as
// configuration surface.
type Options struct {
	// StrictCriticalExtensions, if true, rejects unrecognized critical
	// extensions instead of skipping them.
	StrictCriticalExtensions bool
	// AcceptExtensionsPreV3, if true, parses a [3] Extensions field even
	// on a version 1 or 2 certificate instead of treating it as an error.
	AcceptExtensionsPreV3 bool
}

// DefaultOptions matches the original's default behavior: unknown
// critical extensions are rejected, and extensions are only expected on
// v3 certificates.
var DefaultOptions = Options{StrictCriticalExtensions: true, AcceptExtensionsPreV3: false}
