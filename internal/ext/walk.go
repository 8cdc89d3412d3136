package ext

import "github.com/trailcert/x509chain/internal/der"

var extensionFilter = der.TagFilter{
	ClassMask:  der.ClassMask | der.ConstructedMask,
	ClassValue: der.ClassUniversal | der.ConstructedMask,
	ValueMask:  der.TagNumberMask,
	ValueValue: der.TagSequence,
}

// Walk traverses the v3 Extensions SEQUENCE spanning v3ext (the full TLV,
// tag included) and returns the populated Fields. An empty span yields the
// zero Fields and no error (version 1/2 certificates have no extensions).
func Walk(buf []byte, v3ext der.Span, strict bool) (Fields, *der.Error) {
	var f Fields
	if v3ext.Empty() {
		return f, nil
	}

	seqStart, seqEnd, err := der.TagLen(buf, v3ext.Off, v3ext.End(), der.Sequence)
	if err != nil {
		return f, err
	}

	walkErr := der.ForEach(buf, seqStart, seqEnd, extensionFilter, func(_ byte, valStart, valEnd int) *der.Error {
		return walkOne(buf, valStart, valEnd, strict, &f)
	})
	if walkErr != nil {
		return f, walkErr
	}
	return f, nil
}

func walkOne(buf []byte, start, end int, strict bool, f *Fields) *der.Error {
	oid, pos, err := der.OID(buf, start, end)
	if err != nil {
		return err
	}

	critical := false
	if tag, perr := der.PeekTag(buf, pos, end); perr == nil && tag == der.ClassUniversal|der.TagBoolean {
		var b bool
		var next int
		if b, next, err = der.Bool(buf, pos, end); err != nil {
			return err
		}
		critical = b
		pos = next
	}

	valStart, valEnd, err := der.TagLen(buf, pos, end, der.ClassUniversal|der.TagOctetString)
	if err != nil {
		return err
	}
	if valEnd != end {
		return &der.Error{Code: der.InvalidExtensions, Offset: valEnd, Msg: "trailing bytes in Extension"}
	}

	kind, known := lookup(oid)
	if !known {
		if critical && strict {
			return &der.Error{Code: der.FeatureUnavailable, Offset: start, Msg: "unknown critical extension"}
		}
		return nil
	}
	if f.ExtTypes.Has(kind) {
		return &der.Error{Code: der.InvalidExtensions, Offset: start, Msg: "duplicate extension"}
	}
	f.ExtTypes |= kind

	switch kind {
	case BasicConstraints:
		return decodeBasicConstraints(buf, valStart, valEnd, f)
	case KeyUsage:
		return decodeKeyUsage(buf, valStart, valEnd, f)
	case SubjectAltName:
		return decodeSubjectAltName(buf, valStart, valEnd, f)
	case ExtendedKeyUsage:
		return decodeExtKeyUsage(buf, valStart, valEnd, f)
	case CertificatePolicies:
		return decodeCertPolicies(buf, valStart, valEnd, f)
	case NetscapeCertType:
		return decodeNSCertType(buf, valStart, valEnd, f)
	case AuthorityKeyID:
		f.HasAuthorityKeyID = true
		f.AuthorityKeyID = der.SpanOf(valStart, valEnd)
	case SubjectKeyID:
		f.HasSubjectKeyID = true
		f.SubjectKeyID = der.SpanOf(valStart, valEnd)
	}
	return nil
}
