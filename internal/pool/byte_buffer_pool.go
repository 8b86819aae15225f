// Package pool reuses the encoder's output staging buffer across Write
// calls. A FIT file is written as one segment, so unlike the teacher
// this package needs neither multiple size tiers nor a constructible
// pool type — there is exactly one pool, sized for one segment's body.
package pool

import "sync"

// FileBufferDefaultSize and FileBufferMaxThreshold size the buffer pool
// for encoded FIT output: an initial allocation generous enough to avoid
// reallocating during a typical encode, and a ceiling past which an
// oversized buffer is discarded instead of retained.
const (
	FileBufferDefaultSize  = 1024 * 16  // 16KiB
	FileBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a reusable byte slice for the encoder's output staging.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it via append's own
// doubling strategy.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var pool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, FileBufferDefaultSize)}
	},
}

// GetFileBuffer retrieves a ByteBuffer from the pool, for an encoder to
// stage one segment's output into before the final data_size/CRC
// backfill.
func GetFileBuffer() *ByteBuffer {
	return pool.Get().(*ByteBuffer)
}

// PutFileBuffer returns a ByteBuffer to the pool for reuse. Buffers that
// grew past FileBufferMaxThreshold are discarded instead, so one
// oversized encode doesn't bloat the pool for every encode after it.
func PutFileBuffer(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if cap(bb.B) > FileBufferMaxThreshold {
		return
	}

	bb.Reset()
	pool.Put(bb)
}
