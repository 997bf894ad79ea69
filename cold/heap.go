package cold

import (
	"fmt"

	"github.com/coldbyte/coldstring/cold/arena"
	"github.com/coldbyte/coldstring/internal/vint"
	"github.com/coldbyte/coldstring/internal/word"
)

// allocator is the slice of the arena API the heap codec needs. It exists so
// tests can observe and fail allocations without a real arena.
type allocator interface {
	Alloc(size int) (uintptr, []byte, error)
}

// newHeap writes <varint length><content> into a fresh block and returns the
// tagged word. The block is sized exactly to the encoded header plus the
// content; the arena guarantees the 4-byte address alignment the tag
// transform requires. On allocation failure nothing is retained.
func newHeap(a allocator, b []byte) (String, error) {
	var hdr [vint.MaxLen]byte
	hn := vint.Put(hdr[:], uint64(len(b)))

	addr, block, err := a.Alloc(hn + len(b))
	if err != nil {
		return String{}, fmt.Errorf("cold: heap string of %d bytes: %w", len(b), err)
	}
	copy(block, hdr[:hn])
	copy(block[hn:], b)
	return String{w: word.Tag(addr)}, nil
}

// heapBlock detags w and resolves the block through the arena address index.
// A heap word that resolves nowhere means the block was freed while views
// were still live, or the word was corrupted; both are invariant violations.
func heapBlock(w *word.Word) []byte {
	block, ok := arena.View(word.Untag(w))
	if !ok {
		panic("cold: heap string does not resolve to an arena block")
	}
	return block
}

func heapBytes(w *word.Word) []byte {
	block := heapBlock(w)
	n, hn := vint.Read(block)
	return block[hn : hn+int(n)]
}

func heapLen(w *word.Word) int {
	n, _ := vint.Read(heapBlock(w))
	return int(n)
}

// releaseHeap frees the block w points at, recomputing the allocation size
// from the length prefix the same way it was computed at construction.
func releaseHeap(w *word.Word) {
	addr := word.Untag(w)
	block, ok := arena.View(addr)
	if !ok {
		panic("cold: heap string does not resolve to an arena block")
	}
	n, hn := vint.Read(block)
	arena.Release(addr, hn+int(n))
}
