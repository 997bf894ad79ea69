//go:build unix

package arena

import "golang.org/x/sys/unix"

// mapChunk reserves size bytes of anonymous memory outside the Go heap.
func mapChunk(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
}

func unmapChunk(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
