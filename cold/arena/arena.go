// Package arena provides the manually managed allocator backing heap-mode
// strings. Blocks live outside the Go heap (anonymous memory mappings on
// unix, registry-pinned slices elsewhere), so a tagged address stored in a
// packed word is invisible to the garbage collector and stays valid until it
// is explicitly freed.
//
// Allocation is bump-pointer within fixed-size chunks, with an exact-size
// free list so released blocks are reused before the bump pointer advances.
// Every chunk is registered in a process-wide address index; View resolves an
// address back to a sub-slice of the original mapping, which keeps all reads
// ordinary slice derivations rather than integer-to-pointer conversions.
package arena

import (
	"fmt"
	"sync"
	"unsafe"
)

// BlockAlign is the alignment of every address returned by Alloc. The two
// guaranteed-zero low bits are claimed by the pointer tag transform.
const BlockAlign = 4

const (
	defaultChunkSize = 64 << 10
	pageSize         = 4 << 10
)

// Arena hands out BlockAlign-aligned blocks carved from mapped chunks.
// All methods are safe for concurrent use.
type Arena struct {
	mu        sync.Mutex
	chunkSize int
	chunks    []chunk
	free      map[int][]uintptr // rounded size -> reusable block addresses
	stats     Stats
	closed    bool
}

type chunk struct {
	data []byte
	base uintptr // address of data[0], used only as an index key
	off  int     // bump pointer, BlockAlign-aligned
}

// Stats is a point-in-time snapshot of an arena's accounting.
type Stats struct {
	Allocs    uint64 // blocks handed out
	Frees     uint64 // blocks returned
	Live      int    // Allocs - Frees
	LiveBytes int    // rounded bytes currently handed out
	Chunks    int    // mapped chunks
}

// New returns an arena with the default chunk size.
func New() *Arena {
	return NewChunkSize(defaultChunkSize)
}

// NewChunkSize returns an arena that maps chunks of at least size bytes.
// Blocks larger than the chunk size get a dedicated chunk.
func NewChunkSize(size int) *Arena {
	if size < pageSize {
		size = pageSize
	}
	return &Arena{
		chunkSize: alignUp(size, pageSize),
		free:      make(map[int][]uintptr),
	}
}

// Alloc returns a BlockAlign-aligned address and a writable view of size
// bytes. The block stays valid until Free (or Close) releases it.
func (a *Arena) Alloc(size int) (uintptr, []byte, error) {
	if size <= 0 {
		return 0, nil, ErrBadSize
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return 0, nil, ErrClosed
	}

	round := alignUp(size, BlockAlign)

	// Reuse an exact-size block before advancing any bump pointer.
	if bucket := a.free[round]; len(bucket) > 0 {
		addr := bucket[len(bucket)-1]
		a.free[round] = bucket[:len(bucket)-1]
		data, ok := View(addr)
		if !ok {
			panic("arena: free list entry outside registered chunks")
		}
		a.stats.Allocs++
		a.stats.LiveBytes += round
		return addr, data[:size:round], nil
	}

	cur := a.current()
	if cur == nil || cur.off+round > len(cur.data) {
		c, err := a.grow(round)
		if err != nil {
			return 0, nil, err
		}
		cur = c
	}

	addr := cur.base + uintptr(cur.off)
	data := cur.data[cur.off : cur.off+size : cur.off+round]
	cur.off += round

	a.stats.Allocs++
	a.stats.LiveBytes += round
	return addr, data, nil
}

// Free returns the block at addr to the arena. size must be the value passed
// to the Alloc that produced addr; the pairing is the caller's contract, the
// arena keeps no per-block header.
func (a *Arena) Free(addr uintptr, size int) {
	if size <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	round := alignUp(size, BlockAlign)
	a.free[round] = append(a.free[round], addr)
	a.stats.Frees++
	a.stats.LiveBytes -= round
}

// Stats returns a snapshot of the arena's accounting.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.stats
	s.Live = int(s.Allocs - s.Frees)
	s.Chunks = len(a.chunks)
	return s
}

// Close unmaps every chunk and removes the arena from the address index.
// All blocks handed out by the arena become invalid. Close is idempotent.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	var first error
	for _, c := range a.chunks {
		unregister(c.base)
		if err := unmapChunk(c.data); err != nil && first == nil {
			first = err
		}
	}
	a.chunks = nil
	a.free = nil
	return first
}

func (a *Arena) current() *chunk {
	if len(a.chunks) == 0 {
		return nil
	}
	return &a.chunks[len(a.chunks)-1]
}

// grow maps a fresh chunk big enough for a block of round bytes and appends
// it as the current chunk.
func (a *Arena) grow(round int) (*chunk, error) {
	csize := a.chunkSize
	if round > csize-BlockAlign {
		csize = alignUp(round+BlockAlign, pageSize)
	}
	data, err := mapChunk(csize)
	if err != nil {
		return nil, fmt.Errorf("arena: map chunk: %w", err)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(data)))

	// Mapped chunks are page-aligned; the fallback path only guarantees the
	// slice allocator's alignment, so skew the bump pointer if needed.
	off := int((BlockAlign - base%BlockAlign) % BlockAlign)

	a.chunks = append(a.chunks, chunk{data: data, base: base, off: off})
	c := &a.chunks[len(a.chunks)-1]
	register(span{base: base, end: base + uintptr(len(data)), data: data, owner: a})
	return c, nil
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
