// Package cold implements a one-word, immutable, UTF-8 string value.
//
// # Overview
//
// A String occupies exactly one machine word (unsafe.Sizeof == pointer
// width, alignment 1) and overlays three mutually exclusive encodings on
// that word, discriminated by its first byte:
//
//   - Inline-short: content of 0 to Width-1 bytes stored directly in the
//     word behind a 11111xxx tag byte carrying the length.
//   - Inline-full: content of exactly Width bytes stored verbatim; possible
//     because a valid UTF-8 string never begins with the other two tags.
//   - Heap: a tagged address (first byte 10xxxxxx) of an arena block laid
//     out as <varint length><content>. The word carries no length; Len on a
//     heap string costs one block read, which is the trade the type makes
//     for a one-word resident footprint.
//
// Heap blocks come from the arena package and live outside the garbage
// collector's view, so a String that reaches heap mode owns its block
// outright and must be handed to Release when it is no longer needed.
// Inline strings need no release, and calling Release on one is a no-op
// beyond resetting the value to the empty string.
//
// # Ownership
//
// A String owns at most one block and never shares it: there is no reference
// count, and Clone performs a fresh allocation. Passing a String between
// goroutines transfers ownership; concurrent reads of one instance are safe
// because the type is immutable after construction.
//
// Bytes and String return views of the instance's storage. A view stays
// valid until the instance is released, and must not be written through.
//
// # Zero value
//
// The zero value is a word of Width NUL bytes, which classifies as an
// inline-full string of Width NULs rather than the empty string. Use
// New("") for the canonical empty string.
package cold
