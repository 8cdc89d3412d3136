package ext

// packBits converts a DER BIT STRING payload (the octets after the
// unused-bits count) into spec.md's "packed little-endian integer": our
// bit i is set iff ASN.1 NamedBitList bit i (the i-th most significant bit
// of the payload, counting from the start of the first octet) is set.
func packBits(payload []byte, unusedInLast byte) uint32 {
	var v uint32
	for o, octet := range payload {
		bitsInOctet := 8
		if o == len(payload)-1 {
			bitsInOctet = 8 - int(unusedInLast)
		}
		for p := 0; p < bitsInOctet; p++ {
			if octet&(0x80>>uint(p)) != 0 {
				v |= 1 << uint(o*8+p)
			}
		}
	}
	return v
}
