package ext

import "github.com/trailcert/x509chain/internal/der"

// tagDNSName is GeneralName's dNSName alternative: [2] IA5String,
// implicitly tagged (primitive, context class).
const tagDNSName = der.ClassContext | 2

// DNSNames extracts every dNSName GeneralName from a SubjectAltName
// extension's raw span (the full TLV, tag included), ignoring every
// other GeneralName alternative. It is the lazy, on-demand counterpart
// to decodeSubjectAltName's structural validation.
func DNSNames(buf []byte, subjectAltRaw der.Span) ([]string, *der.Error) {
	seqStart, seqEnd, err := der.TagLen(buf, subjectAltRaw.Off, subjectAltRaw.End(), der.Sequence)
	if err != nil {
		return nil, err
	}

	var names []string
	err = der.ForEach(buf, seqStart, seqEnd, der.TagFilter{ClassMask: der.ClassMask, ClassValue: der.ClassContext},
		func(tag byte, valStart, valEnd int) *der.Error {
			if tag == tagDNSName {
				names = append(names, string(buf[valStart:valEnd]))
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return names, nil
}
