package lineio

import (
	"fmt"

	"github.com/hupe1980/textscan/internal/overflow"
)

// DefaultCapacity is the initial buffer capacity allocated when a Reader is
// handed an empty Buffer.
const DefaultCapacity = 200

// Buffer is caller-owned growable byte storage reused across repeated record
// reads. The zero value is ready to use.
//
// Capacity only grows within a reader's lifetime and the length is always
// strictly below the capacity after a successful operation, so a NUL
// terminator fits at the current length without reallocation. Content beyond
// the length is unspecified.
type Buffer struct {
	buf []byte
	n   int
}

// Bytes returns the current record content. The slice is valid until the
// next ReadRecord call that grows or resets the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

// String returns the current record content as a string.
func (b *Buffer) String() string {
	return string(b.buf[:b.n])
}

// Len returns the current record length.
func (b *Buffer) Len() int { return b.n }

// Cap returns the current buffer capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Reset drops the current content. Capacity is retained.
func (b *Buffer) Reset() { b.n = 0 }

// ensure allocates the initial storage for an empty buffer.
func (b *Buffer) ensure(initial int) {
	if len(b.buf) > 0 {
		return
	}
	if initial < 2 {
		initial = DefaultCapacity
	}
	b.buf = make([]byte, initial)
}

// append writes one byte, growing the buffer first when the write would
// leave no room for the terminator. It returns the capacity before and after
// the call; they differ exactly when a grow happened.
func (b *Buffer) append(c byte, limit int) (from, to int, err error) {
	from, to = len(b.buf), len(b.buf)

	if b.n+1 >= len(b.buf) {
		grown, err := overflow.Grow(b.n)
		if err != nil {
			return from, to, fmt.Errorf("%w: %w", ErrBufferLimit, err)
		}
		if limit > 0 && grown > limit {
			// The policy capacity exceeds the ceiling; the ceiling
			// itself may still hold this byte plus a terminator.
			if b.n+2 > limit {
				return from, to, ErrBufferLimit
			}
			grown = limit
		}
		nb := make([]byte, grown)
		copy(nb, b.buf[:b.n])
		b.buf = nb
		to = grown
	}

	b.buf[b.n] = c
	b.n++

	return from, to, nil
}

// terminate writes the NUL sentinel at the current length. The length stays
// strictly below the capacity, so this never reallocates.
func (b *Buffer) terminate() {
	if len(b.buf) > 0 {
		b.buf[b.n] = 0
	}
}
