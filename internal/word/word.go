// Package word implements the packed one-word string representation: the
// width constant, the mode classifier, the two inline codecs, and the pointer
// tag transform.
//
// A Word is a closed tagged union over three encodings, discriminated by the
// bit pattern of byte 0:
//
//	10xxxxxx  heap: the remaining bits detag to a 4-aligned block address
//	11111xxx  inline-short: xxx is the content length 0..Width-1,
//	          bytes 1..1+len hold the content
//	anything else  inline-full: all Width bytes are content
//
// The patterns are disjoint for UTF-8 input because 10xxxxxx is a
// continuation byte (never the first byte of a valid string) and 11111xxx is
// not a legal UTF-8 lead byte. Classification from byte 0 alone is therefore
// total and unambiguous.
package word

import "math/bits"

// Width is the packed word size in bytes: the native pointer width.
const Width = bits.UintSize / 8

// MaxShort is the largest content length representable inline-short.
const MaxShort = Width - 1

// BlockAlign is the minimum alignment of heap block addresses. The two zero
// low bits it guarantees are what the tag transform relies on.
const BlockAlign = 4

const (
	heapTag     = 0x80 // 10xxxxxx
	heapTagMask = 0xC0
	shortTag    = 0xF8 // 11111xxx
	lenMask     = 0x07
)

// Word is the packed value. Alignment 1, size Width.
type Word [Width]byte

// Mode identifies which of the three encodings a Word carries.
type Mode uint8

const (
	InlineShort Mode = iota
	InlineFull
	Heap
)

// Classify inspects byte 0 of w and returns its mode together with the
// inline content length (Width for inline-full, 0 for heap). It is the single
// decision point for every accessor; callers must not re-derive the mode from
// raw tag bits.
func Classify(w *Word) (Mode, int) {
	switch b := w[0]; {
	case b&heapTagMask == heapTag:
		return Heap, 0
	case b&shortTag == shortTag:
		return InlineShort, int(b & lenMask)
	default:
		return InlineFull, Width
	}
}

// PackShort encodes content of length 0..MaxShort into a Word. Unused
// trailing bytes are left zero; they are never read back.
func PackShort(b []byte) Word {
	var w Word
	w[0] = shortTag | byte(len(b))
	copy(w[1:], b)
	return w
}

// PackFull encodes content of length exactly Width into a Word verbatim.
// The caller guarantees b is valid UTF-8, which is what keeps its first byte
// out of the heap and inline-short tag spaces.
func PackFull(b []byte) Word {
	var w Word
	copy(w[:], b)
	return w
}

// Short returns the inline-short content as a view into w.
func Short(w *Word) []byte {
	return w[1 : 1+int(w[0]&lenMask)]
}

// Full returns the inline-full content as a view into w.
func Full(w *Word) []byte {
	return w[:]
}

// Tag converts a heap block address into its tagged Word. addr must be
// BlockAlign-aligned; the two guaranteed-zero low bits rotate to the top of
// byte 0 where the heap discriminant is written over them.
//
// The word stores the rotated value in little-endian byte order on every
// host, so byte 0 always carries the tag and the layout is
// endian-independent.
func Tag(addr uintptr) Word {
	v := bits.RotateLeft(uint(addr), 6) | heapTag
	var w Word
	for i := range w {
		w[i] = byte(v >> (8 * i))
	}
	return w
}

// Untag recovers the block address from a heap-mode Word. It is the exact
// inverse of Tag for every BlockAlign-aligned address.
func Untag(w *Word) uintptr {
	var v uint
	for i := range w {
		v |= uint(w[i]) << (8 * i)
	}
	return uintptr(bits.RotateLeft(v^heapTag, -6))
}
