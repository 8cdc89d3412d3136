package frame

import "github.com/trailcert/x509chain/internal/der"

var rdnSetFilter = der.TagFilter{
	ClassMask:  der.ClassMask | der.ConstructedMask,
	ClassValue: der.ClassUniversal | der.ConstructedMask,
	ValueMask:  der.TagNumberMask,
	ValueValue: der.TagSet,
}

var atvSeqFilter = der.TagFilter{
	ClassMask:  der.ClassMask | der.ConstructedMask,
	ClassValue: der.ClassUniversal | der.ConstructedMask,
	ValueMask:  der.TagNumberMask,
	ValueValue: der.TagSequence,
}

// validateNameStructure is spec.md §3's "self-compare" check on
// issuer_raw/subject_raw: it walks Name ::= SEQUENCE OF
// RelativeDistinguishedName (RelativeDistinguishedName ::= SET OF
// AttributeTypeAndValue, AttributeTypeAndValue ::= SEQUENCE { type OID,
// value ANY }) once, rejecting anything that does not have that shape. It
// does not build the RDN chain — that is internal/namecmp's job, done
// lazily — it only confirms the bytes are well-formed enough to trust for
// later signature/issuer-subject matching.
func validateNameStructure(buf []byte, span der.Span) *der.Error {
	seqStart, seqEnd, err := der.TagLen(buf, span.Off, span.End(), der.Sequence)
	if err != nil {
		return err
	}
	return der.ForEach(buf, seqStart, seqEnd, rdnSetFilter, func(_ byte, rdnStart, rdnEnd int) *der.Error {
		return der.ForEach(buf, rdnStart, rdnEnd, atvSeqFilter, func(_ byte, atvStart, atvEnd int) *der.Error {
			_, next, oerr := der.OID(buf, atvStart, atvEnd)
			if oerr != nil {
				return oerr
			}
			if next >= atvEnd {
				return &der.Error{Code: der.InvalidFormat, Offset: next, Msg: "AttributeTypeAndValue missing value"}
			}
			return nil
		})
	})
}
