// Package vint implements the variable-length integer prefix used by heap
// blocks. The encoding is the base-128 continuation-bit scheme: the low 7
// bits of every byte carry value bits (least significant group first) and the
// high bit marks that another byte follows. Values 0..127 take one byte,
// 128..16383 two, and so on up to MaxLen bytes for the full uint64 range.
package vint

import "math/bits"

// MaxLen is the largest number of bytes Put can write for a uint64.
const MaxLen = 10

// Len returns the encoded size of v in bytes, in 1..MaxLen.
func Len(v uint64) int {
	return (bits.Len64(v|1) + 6) / 7
}

// Put encodes v into dst and returns the number of bytes written.
// dst must have room for Len(v) bytes.
func Put(dst []byte, v uint64) int {
	i := 0
	for v >= 0x80 {
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	dst[i] = byte(v)
	return i + 1
}

// Read decodes the integer at the start of b and returns it with the number
// of bytes consumed.
//
// The only producer of encoded data is Put, so a missing terminator is a
// codec bug, not a runtime condition; Read panics rather than returning an
// error when b ends inside a continuation sequence.
func Read(b []byte) (uint64, int) {
	var v uint64
	var shift uint
	for i, c := range b {
		if i == MaxLen {
			break
		}
		if c < 0x80 {
			return v | uint64(c)<<shift, i + 1
		}
		v |= uint64(c&0x7F) << shift
		shift += 7
	}
	panic("vint: truncated varint")
}
