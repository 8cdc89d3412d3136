package ext

import "github.com/trailcert/x509chain/internal/der"

// decodeBasicConstraints parses BasicConstraints ::= SEQUENCE {
//   cA                BOOLEAN DEFAULT FALSE,
//   pathLenConstraint  INTEGER OPTIONAL }
func decodeBasicConstraints(buf []byte, start, end int, f *Fields) *der.Error {
	innerStart, innerEnd, err := der.TagLen(buf, start, end, der.Sequence)
	if err != nil {
		return err
	}
	pos := innerStart

	if pos < innerEnd {
		if tag, perr := der.PeekTag(buf, pos, innerEnd); perr == nil && tag == der.ClassUniversal|der.TagBoolean {
			ca, next, berr := der.Bool(buf, pos, innerEnd)
			if berr != nil {
				return berr
			}
			f.CAIsTrue = ca
			pos = next
		}
	}
	if pos < innerEnd {
		pathLen, next, ierr := der.Int64(buf, pos, innerEnd)
		if ierr != nil {
			return ierr
		}
		if pathLen < 0 {
			return &der.Error{Code: der.InvalidExtensions, Offset: pos, Msg: "negative pathLenConstraint"}
		}
		f.MaxPathLen = int(pathLen) + 1
		pos = next
	}
	if pos != innerEnd {
		return &der.Error{Code: der.InvalidExtensions, Offset: pos, Msg: "trailing bytes in BasicConstraints"}
	}
	return nil
}

// decodeKeyUsage parses the KeyUsage BIT STRING.
func decodeKeyUsage(buf []byte, start, end int, f *Fields) *der.Error {
	unused, valStart, valEnd, next, err := der.BitString(buf, start, end)
	if err != nil {
		return err
	}
	if next != end {
		return &der.Error{Code: der.InvalidExtensions, Offset: next, Msg: "trailing bytes in KeyUsage"}
	}
	f.HasKeyUsage = true
	f.KeyUsage = KeyUsageBits(packBits(buf[valStart:valEnd], unused))
	return nil
}

// decodeSubjectAltName validates SubjectAltName ::= SEQUENCE OF GeneralName,
// where GeneralName is a CHOICE of context-tagged alternatives, and
// records the whole extension value's span for lazy parsing later.
func decodeSubjectAltName(buf []byte, start, end int, f *Fields) *der.Error {
	innerStart, innerEnd, err := der.TagLen(buf, start, end, der.Sequence)
	if err != nil {
		return err
	}
	generalNameFilter := der.TagFilter{ClassMask: der.ClassMask, ClassValue: der.ClassContext}
	if werr := der.ForEach(buf, innerStart, innerEnd, generalNameFilter, func(byte, int, int) *der.Error { return nil }); werr != nil {
		return werr
	}
	f.HasSubjectAltName = true
	f.SubjectAltRaw = der.SpanOf(start, end)
	return nil
}

// decodeExtKeyUsage validates ExtKeyUsageSyntax ::= SEQUENCE OF KeyPurposeId
// (KeyPurposeId ::= OBJECT IDENTIFIER) and rejects an empty sequence.
func decodeExtKeyUsage(buf []byte, start, end int, f *Fields) *der.Error {
	innerStart, innerEnd, err := der.TagLen(buf, start, end, der.Sequence)
	if err != nil {
		return err
	}
	if innerStart == innerEnd {
		return &der.Error{Code: der.InvalidLength, Offset: innerStart, Msg: "empty ExtendedKeyUsage"}
	}
	oidFilter := der.TagFilter{ClassMask: der.ClassMask | der.ConstructedMask, ClassValue: der.ClassUniversal, ValueMask: der.TagNumberMask, ValueValue: der.TagOID}
	if werr := der.ForEach(buf, innerStart, innerEnd, oidFilter, func(byte, int, int) *der.Error { return nil }); werr != nil {
		return werr
	}
	f.HasExtKeyUsage = true
	f.ExtKeyUsageRaw = der.SpanOf(start, end)
	return nil
}

// decodeCertPolicies validates CertificatePolicies ::= SEQUENCE OF
// PolicyInformation, where PolicyInformation ::= SEQUENCE { policyIdentifier
// CertPolicyId, ... }.
func decodeCertPolicies(buf []byte, start, end int, f *Fields) *der.Error {
	innerStart, innerEnd, err := der.TagLen(buf, start, end, der.Sequence)
	if err != nil {
		return err
	}
	werr := der.ForEach(buf, innerStart, innerEnd, der.TagFilter{ClassMask: der.ClassMask | der.ConstructedMask, ClassValue: der.ClassUniversal | der.ConstructedMask, ValueMask: der.TagNumberMask, ValueValue: der.TagSequence},
		func(_ byte, entryStart, entryEnd int) *der.Error {
			if entryStart == entryEnd {
				return &der.Error{Code: der.InvalidExtensions, Offset: entryStart, Msg: "empty PolicyInformation"}
			}
			_, _, oerr := der.OID(buf, entryStart, entryEnd)
			return oerr
		})
	if werr != nil {
		return werr
	}
	f.HasCertPolicies = true
	f.CertPoliciesRaw = der.SpanOf(start, end)
	return nil
}

// decodeNSCertType parses the legacy Netscape Certificate Type BIT STRING.
func decodeNSCertType(buf []byte, start, end int, f *Fields) *der.Error {
	unused, valStart, valEnd, next, err := der.BitString(buf, start, end)
	if err != nil {
		return err
	}
	if next != end {
		return &der.Error{Code: der.InvalidExtensions, Offset: next, Msg: "trailing bytes in NetscapeCertType"}
	}
	f.HasNSCertType = true
	f.NSCertType = NSCertTypeBits(packBits(buf[valStart:valEnd], unused))
	return nil
}
