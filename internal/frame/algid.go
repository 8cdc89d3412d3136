package frame

import (
	"encoding/asn1"

	"github.com/trailcert/x509chain/internal/der"
)

// readAlgID peels one AlgorithmIdentifier SEQUENCE { algorithm OID,
// parameters ANY OPTIONAL } and returns its OID, the raw bytes of
// whatever follows the OID (the parameters field, or nil if absent), and
// the position just past the whole TLV.
func readAlgID(buf []byte, pos, end int) (oid asn1.ObjectIdentifier, params []byte, tlvEnd int, err *der.Error) {
	contentStart, contentEnd, e := der.TagLen(buf, pos, end, der.Sequence)
	if e != nil {
		return nil, nil, pos, e
	}
	o, next, e2 := der.OID(buf, contentStart, contentEnd)
	if e2 != nil {
		return nil, nil, pos, e2
	}
	if next < contentEnd {
		params = buf[next:contentEnd]
	}
	return o, params, contentEnd, nil
}
