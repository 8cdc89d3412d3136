package ext

import (
	"encoding/asn1"

	"github.com/trailcert/x509chain/internal/der"
)

var ekuOIDFilter = der.TagFilter{
	ClassMask:  der.ClassMask | der.ConstructedMask,
	ClassValue: der.ClassUniversal,
	ValueMask:  der.TagNumberMask,
	ValueValue: der.TagOID,
}

// ExtKeyUsageOIDs extracts every KeyPurposeId from an ExtendedKeyUsage
// extension's raw span (the full TLV, tag included).
func ExtKeyUsageOIDs(buf []byte, extKeyUsageRaw der.Span) ([]asn1.ObjectIdentifier, *der.Error) {
	seqStart, seqEnd, err := der.TagLen(buf, extKeyUsageRaw.Off, extKeyUsageRaw.End(), der.Sequence)
	if err != nil {
		return nil, err
	}
	var oids []asn1.ObjectIdentifier
	err = der.ForEach(buf, seqStart, seqEnd, ekuOIDFilter, func(_ byte, valStart, valEnd int) *der.Error {
		oids = append(oids, decodeOIDPayload(buf[valStart:valEnd]))
		return nil
	})
	return oids, err
}

// decodeOIDPayload decodes an OBJECT IDENTIFIER's content octets
// (everything after its own tag and length) into component form. The
// tag/length have already been validated by der.ForEach's filter, so
// this only repeats der.OID's base-128 decode over the bare payload.
func decodeOIDPayload(payload []byte) asn1.ObjectIdentifier {
	components := make([]int, 0, 8)
	value := 0
	first := true
	for _, b := range payload {
		value = value<<7 | int(b&0x7F)
		if b&0x80 == 0 {
			if first {
				components = append(components, value/40, value%40)
				first = false
			} else {
				components = append(components, value)
			}
			value = 0
		}
	}
	return asn1.ObjectIdentifier(components)
}
