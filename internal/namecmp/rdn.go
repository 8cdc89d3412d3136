package namecmp

import (
	"bytes"
	"encoding/asn1"

	"github.com/trailcert/x509chain/internal/der"
)

// RDNAtom is one AttributeTypeAndValue lifted out of a Name, in the order
// it appears on the wire. NewRDN is set on the first atom of each
// RelativeDistinguishedName, so the atoms of a multi-valued RDN (a SET OF
// with more than one element) can be regrouped and compared as a single
// unit, position by position, rather than by set membership. Value spans
// the attribute value's content octets (its tag and length excluded);
// TagByte is that value's tag number.
type RDNAtom struct {
	OID     asn1.ObjectIdentifier
	TagByte byte
	Value   der.Span
	NewRDN  bool // true for the first atom of each RelativeDistinguishedName
}

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

// ParseRDNs walks a Name's full TLV span into an ordered slice of atoms.
// A Go slice stands in for the original's linked RDN chain; NewRDN marks
// where one RelativeDistinguishedName ends and the next begins, which is
// all EqualNames needs to recover the grouping.
func ParseRDNs(buf []byte, nameSpan der.Span) ([]RDNAtom, *der.Error) {
	seqStart, seqEnd, err := der.TagLen(buf, nameSpan.Off, nameSpan.End(), der.Sequence)
	if err != nil {
		return nil, err
	}

	var atoms []RDNAtom
	err = der.ForEach(buf, seqStart, seqEnd, rdnSetFilter, func(_ byte, rdnStart, rdnEnd int) *der.Error {
		first := true
		return der.ForEach(buf, rdnStart, rdnEnd, atvSeqFilter, func(_ byte, atvStart, atvEnd int) *der.Error {
			oid, next, oerr := der.OID(buf, atvStart, atvEnd)
			if oerr != nil {
				return oerr
			}
			if next >= atvEnd {
				return &der.Error{Code: der.InvalidFormat, Offset: next, Msg: "AttributeTypeAndValue missing value"}
			}
			valTag, perr := der.PeekTag(buf, next, atvEnd)
			if perr != nil {
				return perr
			}
			valStart, valEnd, verr := der.TagLen(buf, next, atvEnd, valTag)
			if verr != nil {
				return verr
			}
			atoms = append(atoms, RDNAtom{
				OID:     oid,
				TagByte: valTag & der.TagNumberMask,
				Value:   der.SpanOf(valStart, valEnd),
				NewRDN:  first,
			})
			first = false
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return atoms, nil
}

// EqualNames implements spec.md §4.D's RDN-sequence comparator: the same
// number of top-level RDNs, the same number of atoms within each, and for
// each atom position a byte-equal OID plus a value comparison dictated by
// the attribute's string type. It is used both for issuer/subject chain
// linking and, via identical-buffer byte spans, for the self-issued check.
func EqualNames(bufA []byte, a []RDNAtom, bufB []byte, b []RDNAtom) bool {
	groupsA := groupByRDN(a)
	groupsB := groupByRDN(b)
	if len(groupsA) != len(groupsB) {
		return false
	}
	for i := range groupsA {
		ga, gb := groupsA[i], groupsB[i]
		if len(ga) != len(gb) {
			return false
		}
		for j := range ga {
			if !ga[j].OID.Equal(gb[j].OID) {
				return false
			}
			if !valuesEqual(bufA, ga[j], bufB, gb[j]) {
				return false
			}
		}
	}
	return true
}

func groupByRDN(atoms []RDNAtom) [][]RDNAtom {
	var groups [][]RDNAtom
	for _, a := range atoms {
		if a.NewRDN || len(groups) == 0 {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], a)
	}
	return groups
}

func valuesEqual(bufA []byte, a RDNAtom, bufB []byte, b RDNAtom) bool {
	rawA, rawB := a.Value.Bytes(bufA), b.Value.Bytes(bufB)
	if der.IsStringType(a.TagByte) && der.IsStringType(b.TagByte) {
		return foldString(string(rawA)) == foldString(string(rawB))
	}
	if a.TagByte != b.TagByte {
		return false
	}
	return bytes.Equal(rawA, rawB)
}
