// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-size byte-slice recycling; interp.Runtime holds one as its Pool.
// The value package's string building and to_string coercions do not use
// it. The teacher's BytePool delegated to a
// NUMA-aware pool when enabled, falling back to sync.Pool otherwise; the
// NUMA path served websocket frame buffers and is out of scope here (see
// DESIGN.md), so this keeps only the sync.Pool fallback path.

package pool

import "sync"

// BytePool recycles fixed-size byte slices.
type BytePool struct {
	pool *sync.Pool
	size int
}

// NewBytePool creates a pool of slices of the given size.
func NewBytePool(size int) *BytePool {
	return &BytePool{
		size: size,
		pool: &sync.Pool{New: func() any {
			return make([]byte, size)
		}},
	}
}

// GetBuffer returns a buffer from the pool.
func (b *BytePool) GetBuffer() []byte {
	return b.pool.Get().([]byte)
}

// PutBuffer returns a buffer to the pool.
func (b *BytePool) PutBuffer(buf []byte) {
	if cap(buf) < b.size {
		return
	}
	b.pool.Put(buf[:b.size])
}
