package der

// Span is a byte range inside a certificate's or CRL's owned or borrowed
// DER buffer: spec.md §3's RawSpan. Spans never own memory and are only
// meaningful together with the buffer that produced them.
type Span struct {
	Off int
	Len int
}

// Bytes returns the slice of buf this span denotes.
func (s Span) Bytes(buf []byte) []byte {
	if s.Len == 0 {
		return nil
	}
	return buf[s.Off : s.Off+s.Len]
}

// End returns the offset just past the span.
func (s Span) End() int { return s.Off + s.Len }

// Empty reports whether the span has zero length (absent field).
func (s Span) Empty() bool { return s.Len == 0 }

// SpanOf builds a Span from a [start, end) byte range.
func SpanOf(start, end int) Span { return Span{Off: start, Len: end - start} }

// Within reports whether s lies entirely inside outer, the invariant
// spec.md §3 requires of every span in a frame relative to raw.
func (s Span) Within(outer Span) bool {
	return s.Off >= outer.Off && s.End() <= outer.End()
}

// Disjoint reports whether s and other do not overlap.
func (s Span) Disjoint(other Span) bool {
	return s.End() <= other.Off || other.End() <= s.Off
}
