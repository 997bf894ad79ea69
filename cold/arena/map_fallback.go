//go:build !unix

package arena

// Without an mmap facility, chunks are ordinary byte slices. The address
// index holds a reference to each chunk, which keeps the backing array alive
// for as long as the arena is registered; the runtime does not move heap
// objects, so the recorded base address stays valid.
func mapChunk(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unmapChunk([]byte) error {
	return nil
}
