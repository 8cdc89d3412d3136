// Package crl implements the RFC 5280 §5.1 CertificateList decoder. A
// CRL is treated exactly like a certificate's tbsCertificate/signature
// pair — same AlgorithmIdentifier classification, same span-based,
// no-copy frame — since the wire shapes are siblings.
package crl

import (
	"bytes"
	"math/big"
	"time"

	"github.com/trailcert/x509chain/internal/der"
	"github.com/trailcert/x509chain/internal/pkalg"
)

// RevokedEntry is one entry of TBSCertList.revokedCertificates.
type RevokedEntry struct {
	Serial         *big.Int
	RevocationDate time.Time
}

// CRL is the opaque per-CRL capability bundle spec.md §6 describes:
// (issuer_raw, this_update, next_update, tbs, sig, sig_md, sig_pk,
// sig_opts, revoked_entries).
type CRL struct {
	Raw []byte

	IssuerRaw  der.Span
	TBS        der.Span
	SigValue   der.Span
	SigAlg     pkalg.AlgorithmIdentifier
	ThisUpdate time.Time
	NextUpdate time.Time // zero value if absent

	Revoked []RevokedEntry
}

// Revokes reports whether serial appears in the revoked list with a
// revocation date at or before now.
func (c *CRL) Revokes(serial *big.Int, now time.Time) bool {
	for _, e := range c.Revoked {
		if e.Serial.Cmp(serial) == 0 && !e.RevocationDate.After(now) {
			return true
		}
	}
	return false
}

var rdnSetFilter = der.TagFilter{
	ClassMask:  der.ClassMask | der.ConstructedMask,
	ClassValue: der.ClassUniversal | der.ConstructedMask,
	ValueMask:  der.TagNumberMask,
	ValueValue: der.TagSet,
}

// Parse decodes one DER-encoded CertificateList.
func Parse(buf []byte) (*CRL, *der.Error) {
	outerStart, outerEnd, err := der.TagLen(buf, 0, len(buf), der.Sequence)
	if err != nil {
		return nil, err
	}
	c := &CRL{Raw: buf[:outerEnd]}
	pos := outerStart

	tbsStart := pos
	tbsEnd, err := der.SkipTag(buf, pos, outerEnd)
	if err != nil {
		return nil, err
	}
	c.TBS = der.SpanOf(tbsStart, tbsEnd)
	pos = tbsEnd

	sigAlgOuterStart := pos
	sigAlgOuterEnd, err := der.SkipTag(buf, pos, outerEnd)
	if err != nil {
		return nil, err
	}
	sigAlgOuter := der.SpanOf(sigAlgOuterStart, sigAlgOuterEnd)
	pos = sigAlgOuterEnd

	_, sigStart, sigEnd, next, err := der.BitString(buf, pos, outerEnd)
	if err != nil {
		return nil, err
	}
	c.SigValue = der.SpanOf(sigStart, sigEnd)
	pos = next

	if pos != outerEnd {
		return nil, &der.Error{Code: der.InvalidLength, Offset: pos, Msg: "trailing bytes in CertificateList"}
	}

	tbsContentStart, tbsContentEnd, err := der.TagLen(buf, c.TBS.Off, c.TBS.End(), der.Sequence)
	if err != nil {
		return nil, err
	}
	pos = tbsContentStart

	if tag, perr := der.PeekTag(buf, pos, tbsContentEnd); perr == nil && tag == der.ClassUniversal|der.TagInteger {
		_, next, verr := der.Int64(buf, pos, tbsContentEnd)
		if verr != nil {
			return nil, verr
		}
		pos = next
	}

	sigAlgInnerStart := pos
	contentStart, contentEnd, e := der.TagLen(buf, pos, tbsContentEnd, der.Sequence)
	if e != nil {
		return nil, e
	}
	oid, onext, e2 := der.OID(buf, contentStart, contentEnd)
	if e2 != nil {
		return nil, e2
	}
	var params []byte
	if onext < contentEnd {
		params = buf[onext:contentEnd]
	}
	sigAlgInnerEnd := contentEnd
	pos = sigAlgInnerEnd
	sigAlgInner := der.SpanOf(sigAlgInnerStart, sigAlgInnerEnd)
	if !bytes.Equal(sigAlgInner.Bytes(buf), sigAlgOuter.Bytes(buf)) {
		return nil, &der.Error{Code: der.SigMismatch, Offset: sigAlgInnerStart, Msg: "inner/outer signatureAlgorithm differ"}
	}
	classified, cerr := pkalg.Classify(oid, params)
	if cerr != nil {
		return nil, &der.Error{Code: der.InvalidAlg, Offset: sigAlgInnerStart, Msg: cerr.Error()}
	}
	c.SigAlg = classified

	issuerStart := pos
	issuerEnd, err := der.SkipTag(buf, pos, tbsContentEnd)
	if err != nil {
		return nil, err
	}
	c.IssuerRaw = der.SpanOf(issuerStart, issuerEnd)
	pos = issuerEnd

	thisUpdate, next2, terr := der.Time(buf, pos, tbsContentEnd)
	if terr != nil {
		return nil, terr
	}
	c.ThisUpdate = thisUpdate
	pos = next2

	if tag, perr := der.PeekTag(buf, pos, tbsContentEnd); perr == nil &&
		(tag == der.ClassUniversal|der.TagUTCTime || tag == der.ClassUniversal|der.TagGeneralizedTime) {
		nextUpdate, next3, terr2 := der.Time(buf, pos, tbsContentEnd)
		if terr2 != nil {
			return nil, terr2
		}
		c.NextUpdate = nextUpdate
		pos = next3
	}

	if tag, perr := der.PeekTag(buf, pos, tbsContentEnd); perr == nil && tag == der.Sequence {
		listStart, listEnd, lerr := der.TagLen(buf, pos, tbsContentEnd, der.Sequence)
		if lerr != nil {
			return nil, lerr
		}
		revokedFilter := der.TagFilter{
			ClassMask:  der.ClassMask | der.ConstructedMask,
			ClassValue: der.ClassUniversal | der.ConstructedMask,
			ValueMask:  der.TagNumberMask,
			ValueValue: der.TagSequence,
		}
		werr := der.ForEach(buf, listStart, listEnd, revokedFilter, func(_ byte, entryStart, entryEnd int) *der.Error {
			serial, _, _, snext, serr := der.BigInt(buf, entryStart, entryEnd)
			if serr != nil {
				return serr
			}
			revDate, _, rerr := der.Time(buf, snext, entryEnd)
			if rerr != nil {
				return rerr
			}
			c.Revoked = append(c.Revoked, RevokedEntry{Serial: serial, RevocationDate: revDate})
			return nil
		})
		if werr != nil {
			return nil, werr
		}
		pos = listEnd
	}

	if tag, perr := der.PeekTag(buf, pos, tbsContentEnd); perr == nil && tag == der.ContextTag(0) {
		_, crlExtEnd, cerr2 := der.TagLen(buf, pos, tbsContentEnd, der.ContextTag(0))
		if cerr2 != nil {
			return nil, cerr2
		}
		pos = crlExtEnd
	}

	if pos != tbsContentEnd {
		return nil, &der.Error{Code: der.InvalidLength, Offset: pos, Msg: "trailing bytes in TBSCertList"}
	}

	return c, nil
}
