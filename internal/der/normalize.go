package der

import "github.com/trailcert/x509chain/internal/bufpool"

// NormalizeSPKI returns spki's bytes with any garbage in the
// subjectPublicKey BIT STRING's unused-bit padding masked to zero.
// SPKI content is always byte-aligned (unused == 0) in every
// certificate this module expects to see, but nothing in DER forbids
// an encoder leaving non-zero padding bits there. The lazy detail
// layer hands this normalized form, not the raw span, to
// pkalg.ParseSPKI. Returns the original slice unchanged (no copy) when
// there is nothing to normalize.
func NormalizeSPKI(buf []byte, spki Span) []byte {
	raw := spki.Bytes(buf)

	seqStart, seqEnd, err := TagLen(raw, 0, len(raw), Sequence)
	if err != nil {
		return raw
	}
	algEnd, err2 := SkipTag(raw, seqStart, seqEnd)
	if err2 != nil {
		return raw
	}
	unused, valStart, valEnd, _, err3 := BitString(raw, algEnd, seqEnd)
	if err3 != nil || unused == 0 || valEnd == valStart {
		return raw
	}
	mask := byte(0xFF << unused)
	if raw[valEnd-1]&^mask == 0 {
		return raw
	}

	scratch := bufpool.Get()
	defer bufpool.Put(scratch)
	scratch.Write(raw)
	normalized := append([]byte(nil), scratch.Bytes()...)
	normalized[valEnd-1] &= mask
	return normalized
}
