package frame

import (
	"bytes"

	"github.com/trailcert/x509chain/internal/der"
	"github.com/trailcert/x509chain/internal/ext"
	"github.com/trailcert/x509chain/internal/pkalg"
)

// Parse runs the breadth-first pass of spec.md §4.B over a non-empty DER
// buffer, producing a fully populated Frame or a typed failure. It does
// not allocate beyond the handful of values (SerialNumber, SigAlgorithm)
// that cannot be represented as a span.
func Parse(buf []byte, opts Options) (*Frame, *der.Error) {
	if len(buf) == 0 {
		return nil, &der.Error{Code: der.OutOfData, Offset: 0, Msg: "empty certificate"}
	}

	// Step 1: peel outer SEQUENCE { tbsCertificate, signatureAlgorithm, signatureValue }.
	outerStart, outerEnd, err := der.TagLen(buf, 0, len(buf), der.Sequence)
	if err != nil {
		return nil, err
	}
	f := &Frame{Raw: der.SpanOf(0, outerEnd)}
	pos := outerStart

	// Step 2: tbsCertificate, outer signatureAlgorithm, signatureValue.
	tbsStart := pos
	tbsEnd, err := der.SkipTag(buf, pos, outerEnd)
	if err != nil {
		return nil, err
	}
	f.TBS = der.SpanOf(tbsStart, tbsEnd)
	pos = tbsEnd

	sigAlgOuterStart := pos
	sigAlgOuterEnd, err := der.SkipTag(buf, pos, outerEnd)
	if err != nil {
		return nil, err
	}
	sigAlgOuter := der.SpanOf(sigAlgOuterStart, sigAlgOuterEnd)
	pos = sigAlgOuterEnd

	_, sigValStart, sigValEnd, next, err := der.BitString(buf, pos, outerEnd)
	if err != nil {
		return nil, err
	}
	f.SigValue = der.SpanOf(sigValStart, sigValEnd)
	pos = next

	// Step 3: outer sequence exactly consumed.
	if pos != outerEnd {
		return nil, &der.Error{Code: der.InvalidLength, Offset: pos, Msg: "trailing bytes in Certificate"}
	}

	// Step 4: re-enter tbs, optional explicit [0] Version.
	tbsContentStart, tbsContentEnd, err := der.TagLen(buf, f.TBS.Off, f.TBS.End(), der.Sequence)
	if err != nil {
		return nil, err
	}
	pos = tbsContentStart

	f.Version = 1
	if tag, perr := der.PeekTag(buf, pos, tbsContentEnd); perr == nil && tag == der.ContextTag(0) {
		innerStart, innerEnd, verr := der.TagLen(buf, pos, tbsContentEnd, der.ContextTag(0))
		if verr != nil {
			return nil, verr
		}
		raw, _, ierr := der.Int64(buf, innerStart, innerEnd)
		if ierr != nil {
			return nil, ierr
		}
		f.Version = int(raw) + 1
		pos = innerEnd
	}
	if f.Version < 1 || f.Version > 3 {
		return nil, &der.Error{Code: der.UnknownVersion, Offset: pos, Msg: "version must be 1, 2, or 3"}
	}

	// Step 5: serialNumber.
	serialStart := pos
	serialNum, _, _, serialEnd, serr := der.BigInt(buf, pos, tbsContentEnd)
	if serr != nil {
		return nil, serr
	}
	f.Serial = der.SpanOf(serialStart, serialEnd)
	f.SerialNumber = serialNum
	pos = serialEnd

	// Step 6: inner signatureAlgorithm; verify byte-equality with outer.
	innerSigAlgStart := pos
	oid, params, innerSigAlgEnd, aerr := readAlgID(buf, pos, tbsContentEnd)
	if aerr != nil {
		return nil, aerr
	}
	sigAlgInner := der.SpanOf(innerSigAlgStart, innerSigAlgEnd)
	pos = innerSigAlgEnd

	if !bytes.Equal(sigAlgInner.Bytes(buf), sigAlgOuter.Bytes(buf)) {
		return nil, &der.Error{Code: der.SigMismatch, Offset: innerSigAlgStart, Msg: "inner/outer signatureAlgorithm differ"}
	}
	f.SigAlg = sigAlgInner

	classified, cerr := pkalg.Classify(oid, params)
	if cerr != nil {
		return nil, &der.Error{Code: der.InvalidAlg, Offset: innerSigAlgStart, Msg: cerr.Error()}
	}
	f.SigAlgorithm = classified

	// Step 7: issuer.
	issuerStart := pos
	issuerEnd, err := der.SkipTag(buf, pos, tbsContentEnd)
	if err != nil {
		return nil, err
	}
	f.IssuerRaw = der.SpanOf(issuerStart, issuerEnd)
	if nerr := validateNameStructure(buf, f.IssuerRaw); nerr != nil {
		return nil, nerr
	}
	pos = issuerEnd

	// Step 8: validity.
	validityStart, validityEnd, err := der.TagLen(buf, pos, tbsContentEnd, der.Sequence)
	if err != nil {
		return nil, err
	}
	from, next2, terr := der.Time(buf, validityStart, validityEnd)
	if terr != nil {
		return nil, terr
	}
	to, next3, terr2 := der.Time(buf, next2, validityEnd)
	if terr2 != nil {
		return nil, terr2
	}
	if next3 != validityEnd {
		return nil, &der.Error{Code: der.InvalidLength, Offset: next3, Msg: "trailing bytes in Validity"}
	}
	f.ValidFrom, f.ValidTo = from, to
	pos = validityEnd

	// Step 9: subject.
	subjectStart := pos
	subjectEnd, err := der.SkipTag(buf, pos, tbsContentEnd)
	if err != nil {
		return nil, err
	}
	f.SubjectRaw = der.SpanOf(subjectStart, subjectEnd)
	if nerr := validateNameStructure(buf, f.SubjectRaw); nerr != nil {
		return nil, nerr
	}
	pos = subjectEnd

	// Step 10: subjectPublicKeyInfo (no key parsing here).
	pubKeyStart := pos
	pubKeyEnd, err := der.SkipTag(buf, pos, tbsContentEnd)
	if err != nil {
		return nil, err
	}
	f.PubKeyRaw = der.SpanOf(pubKeyStart, pubKeyEnd)
	pos = pubKeyEnd

	// Step 11: optional issuerUniqueID [1] / subjectUniqueID [2] (v2/v3 only).
	if f.Version >= 2 {
		if tag, perr := der.PeekTag(buf, pos, tbsContentEnd); perr == nil && tag == der.ContextPrimitive(1) {
			idEnd, ierr := der.SkipTag(buf, pos, tbsContentEnd)
			if ierr != nil {
				return nil, ierr
			}
			f.IssuerID = der.SpanOf(pos, idEnd)
			pos = idEnd
		}
		if tag, perr := der.PeekTag(buf, pos, tbsContentEnd); perr == nil && tag == der.ContextPrimitive(2) {
			idEnd, ierr := der.SkipTag(buf, pos, tbsContentEnd)
			if ierr != nil {
				return nil, ierr
			}
			f.SubjectID = der.SpanOf(pos, idEnd)
			pos = idEnd
		}
	}

	// Step 12: explicit [3] Extensions, v3 only unless configured lenient.
	if tag, perr := der.PeekTag(buf, pos, tbsContentEnd); perr == nil && tag == der.ContextTag(3) {
		if f.Version != 3 && !opts.AcceptExtensionsPreV3 {
			return nil, &der.Error{Code: der.InvalidExtensions, Offset: pos, Msg: "extensions present on non-v3 certificate"}
		}
		innerStart, innerEnd, verr := der.TagLen(buf, pos, tbsContentEnd, der.ContextTag(3))
		if verr != nil {
			return nil, verr
		}
		f.V3Ext = der.SpanOf(innerStart, innerEnd)
		pos = innerEnd

		fields, werr := ext.Walk(buf, f.V3Ext, opts.StrictCriticalExtensions)
		if werr != nil {
			return nil, werr
		}
		f.Fields = fields
	}

	// Step 13: tbs exactly consumed.
	if pos != tbsContentEnd {
		return nil, &der.Error{Code: der.InvalidLength, Offset: pos, Msg: "trailing bytes in tbsCertificate"}
	}

	return f, nil
}
