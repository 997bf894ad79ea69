package arena

import (
	"sort"
	"sync"
)

// The address index maps every registered chunk's address range back to its
// mapping. Views are produced by slicing the original chunk data, so a block
// address never has to be converted back into a pointer; it is purely a key.
// The index is process-wide because a packed word does not record which
// arena produced it.

type span struct {
	base, end uintptr
	data      []byte // also pins fallback chunks against collection
	owner     *Arena
}

var reg struct {
	sync.RWMutex
	spans []span // sorted by base; ranges never overlap
}

func register(s span) {
	reg.Lock()
	defer reg.Unlock()
	i := sort.Search(len(reg.spans), func(i int) bool { return reg.spans[i].base > s.base })
	reg.spans = append(reg.spans, span{})
	copy(reg.spans[i+1:], reg.spans[i:])
	reg.spans[i] = s
}

func unregister(base uintptr) {
	reg.Lock()
	defer reg.Unlock()
	for i, s := range reg.spans {
		if s.base == base {
			reg.spans = append(reg.spans[:i], reg.spans[i+1:]...)
			return
		}
	}
}

func lookup(addr uintptr) (span, bool) {
	reg.RLock()
	defer reg.RUnlock()
	i := sort.Search(len(reg.spans), func(i int) bool { return reg.spans[i].base > addr })
	if i == 0 {
		return span{}, false
	}
	s := reg.spans[i-1]
	if addr >= s.end {
		return span{}, false
	}
	return s, true
}

// View resolves addr to a byte view starting at addr and running to the end
// of its chunk. The second result is false when addr is not inside any
// registered chunk.
func View(addr uintptr) ([]byte, bool) {
	s, ok := lookup(addr)
	if !ok {
		return nil, false
	}
	return s.data[addr-s.base:], true
}

// Release routes a Free to whichever arena owns addr. It reports whether an
// owner was found; size carries the same pairing contract as Arena.Free.
func Release(addr uintptr, size int) bool {
	s, ok := lookup(addr)
	if !ok {
		return false
	}
	s.owner.Free(addr, size)
	return true
}
