package cold

import (
	"bytes"
	"hash/maphash"
)

// Equal reports whether s and o decode to identical content. Two inline
// strings compare by word: equal content always packs to equal words because
// short padding is canonically zero and the construction boundary makes the
// three modes cover disjoint length ranges. Mixed inline/heap pairs can
// never be equal for the same reason, so only the heap/heap case reads block
// content.
func (s *String) Equal(o *String) bool {
	si, oi := s.IsInline(), o.IsInline()
	switch {
	case si && oi:
		return s.w == o.w
	case si != oi:
		return false
	default:
		return bytes.Equal(s.Bytes(), o.Bytes())
	}
}

// EqualString reports whether s decodes to exactly x.
func (s *String) EqualString(x string) bool {
	return bytes.Equal(s.Bytes(), bytesOf(x))
}

// Compare orders s against o byte-lexicographically over the decoded
// content, independent of which modes encode them. The result follows
// bytes.Compare conventions.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// Hash hashes the decoded content with seed. Equal content hashes
// identically regardless of mode, so Hash is consistent with Equal.
func (s *String) Hash(seed maphash.Seed) uint64 {
	return maphash.Bytes(seed, s.Bytes())
}
