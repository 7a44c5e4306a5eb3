package lineio

import (
	"bufio"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// NewSource turns r into a byte source for a Reader. Readers that already
// deliver single bytes (bufio.Reader, bytes.Reader, strings.Reader) are used
// directly; anything else is wrapped in a bufio.Reader.
func NewSource(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// NewZstdSource returns a byte source that transparently decompresses a
// zstd-compressed stream.
func NewZstdSource(r io.Reader) (io.ByteReader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return bufio.NewReader(dec), nil
}

// NewLZ4Source returns a byte source that transparently decompresses an
// lz4-framed stream.
func NewLZ4Source(r io.Reader) io.ByteReader {
	return bufio.NewReader(lz4.NewReader(r))
}

// LockableSource pairs a byte source with a mutex. A Reader detects the
// sync.Locker implementation and holds the lock for the span of one record
// read, so multiple readers sharing the source cannot interleave within a
// record.
type LockableSource struct {
	mu  sync.Mutex
	src io.ByteReader
}

// NewLockableSource wraps src for shared use across multiple readers.
func NewLockableSource(src io.ByteReader) *LockableSource {
	return &LockableSource{src: src}
}

// ReadByte reads the next byte from the underlying source. Callers other
// than a locking Reader must hold the lock themselves.
func (s *LockableSource) ReadByte() (byte, error) {
	return s.src.ReadByte()
}

// Lock acquires exclusive access to the source.
func (s *LockableSource) Lock() { s.mu.Lock() }

// Unlock releases exclusive access to the source.
func (s *LockableSource) Unlock() { s.mu.Unlock() }
