package arena

import "errors"

var (
	// ErrBadSize indicates an Alloc request for zero or negative bytes.
	ErrBadSize = errors.New("arena: block size must be positive")

	// ErrClosed indicates the arena has been closed and can no longer
	// hand out blocks.
	ErrClosed = errors.New("arena: closed")
)
