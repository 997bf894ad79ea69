package cold

import (
	"unicode/utf8"
	"unsafe"

	"github.com/coldbyte/coldstring/cold/arena"
	"github.com/coldbyte/coldstring/internal/word"
)

// Width is the packed word size in bytes: the native pointer width.
const Width = word.Width

// MaxInline is the largest content length that avoids a heap allocation.
const MaxInline = word.Width

// String is a one-word immutable UTF-8 string. See the package documentation
// for the encoding. The zero value decodes as Width NUL bytes; use New("")
// for the empty string.
type String struct {
	w word.Word
}

// defaultArena backs every constructor that does not take an explicit arena.
var defaultArena = arena.New()

// New packs s into a String, allocating a heap block when s is longer than
// MaxInline bytes. s must be valid UTF-8 (Go string literals and anything
// produced by the standard library are); use FromBytes to validate untrusted
// input. New panics only on allocator exhaustion.
func New(s string) String {
	c, err := NewIn(defaultArena, s)
	if err != nil {
		panic(err)
	}
	return c
}

// NewIn is New against an explicit arena. Strings built in a private arena
// are released back to it by the same Release call; the arena's Stats make
// allocation accounting observable in isolation.
func NewIn(a *arena.Arena, s string) (String, error) {
	return pack(a, bytesOf(s))
}

// FromBytes validates b as UTF-8 and packs it. The content is copied; b is
// not retained. Fails with ErrInvalidUTF8 on malformed input, or with an
// allocation error for heap-mode lengths.
func FromBytes(b []byte) (String, error) {
	if !utf8.Valid(b) {
		return String{}, ErrInvalidUTF8
	}
	return pack(defaultArena, b)
}

// pack applies the construction policy: 0..Width-1 bytes inline-short,
// exactly Width bytes inline-full, more than MaxInline bytes heap. The inline
// boundary must match what the classifier derives from the tag byte; the
// directed tests at Width-1, Width and Width+1 pin it.
func pack(a allocator, b []byte) (String, error) {
	switch n := len(b); {
	case n <= word.MaxShort:
		return String{w: word.PackShort(b)}, nil
	case n == word.Width:
		return String{w: word.PackFull(b)}, nil
	default:
		return newHeap(a, b)
	}
}

// Bytes returns the decoded content as a read-only view. For inline modes
// the view aliases the word inside *s; for heap mode it aliases the arena
// block. Either way it is valid until Release.
func (s *String) Bytes() []byte {
	switch m, _ := word.Classify(&s.w); m {
	case word.InlineShort:
		return word.Short(&s.w)
	case word.InlineFull:
		return word.Full(&s.w)
	default:
		return heapBytes(&s.w)
	}
}

// String returns the content as a string view without copying. The same
// lifetime rule as Bytes applies. String implements fmt.Stringer.
func (s *String) String() string {
	b := s.Bytes()
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Len returns the content length in bytes. O(1) for inline modes; one block
// read (varint decode) for heap mode.
func (s *String) Len() int {
	switch m, n := word.Classify(&s.w); m {
	case word.InlineShort, word.InlineFull:
		return n
	default:
		return heapLen(&s.w)
	}
}

// IsEmpty reports whether the string has length zero.
func (s *String) IsEmpty() bool {
	return s.Len() == 0
}

// IsInline reports whether the content lives inside the word itself.
func (s *String) IsInline() bool {
	m, _ := word.Classify(&s.w)
	return m != word.Heap
}

// Clone returns an independently owned copy. Inline strings copy the word;
// heap strings get a fresh block in the default arena. Panics only on
// allocator exhaustion.
func (s *String) Clone() String {
	if s.IsInline() {
		return *s
	}
	c, err := pack(defaultArena, s.Bytes())
	if err != nil {
		panic(err)
	}
	return c
}

// CloneIn is Clone with the copy's block allocated in a.
func (s *String) CloneIn(a *arena.Arena) (String, error) {
	if s.IsInline() {
		return *s, nil
	}
	return pack(a, s.Bytes())
}

// Release frees the heap block, if any, and resets *s to the empty string.
// The block is freed exactly once: a second Release sees an inline word and
// does nothing. Views obtained before Release become invalid.
func (s *String) Release() {
	if m, _ := word.Classify(&s.w); m == word.Heap {
		releaseHeap(&s.w)
	}
	s.w = word.PackShort(nil)
}

// bytesOf reinterprets s as a byte slice without copying. The result is
// read-only and must not outlive s.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
