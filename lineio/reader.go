// Package lineio reads delimiter-terminated records of arbitrary length from
// a byte stream into a caller-owned growable buffer.
//
// The reader pulls one byte at a time and grows the destination buffer with
// an at-least-1.5x policy whose size arithmetic is overflow-checked, so
// memory growth is bounded and never wraps. Records keep their terminating
// delimiter; the buffer additionally carries a NUL sentinel just past the
// record for callers that hand the bytes to NUL-terminated consumers.
//
// Features:
//   - Caller-owned Buffer reused across reads (capacity is monotonic)
//   - Optional maximum record length, reported distinctly from buffer limits
//   - End-of-stream before the first byte reported as io.EOF, after at least
//     one byte as a successful final record
//   - Exclusive locking of shared sources for the span of one record read
//   - Transparent zstd and lz4 decompression sources
package lineio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

var (
	// ErrTooLong is returned when a record reaches the configured
	// MaxLength without a delimiter. The bytes read so far remain in the
	// buffer.
	ErrTooLong = errors.New("lineio: record exceeds maximum length")

	// ErrBufferLimit is returned when the buffer cannot grow further,
	// either because the size arithmetic would overflow or because the
	// configured MaxCapacity is exhausted. Distinct from ErrTooLong.
	ErrBufferLimit = errors.New("lineio: buffer capacity limit reached")
)

// Reader reads delimited records from a byte source.
//
// A Reader is stateless between calls apart from the source's own position;
// the record content lives in the caller-owned Buffer passed to ReadRecord.
type Reader struct {
	src    io.ByteReader
	locker sync.Locker
	opts   Options
}

// NewReader creates a Reader for src.
//
// If src also implements sync.Locker (see NewLockableSource), ReadRecord
// holds the lock for the duration of the per-byte read loop so interleaved
// readers of a shared stream cannot split a record.
func NewReader(src io.ByteReader, optFns ...func(o *Options)) *Reader {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxCapacity > 0 && opts.InitialCapacity > opts.MaxCapacity {
		opts.InitialCapacity = opts.MaxCapacity
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	r := &Reader{src: src, opts: opts}
	if l, ok := src.(sync.Locker); ok {
		r.locker = l
	}

	return r
}

// ReadRecord reads the next record into buf, replacing its previous content.
//
// Outcomes:
//   - nil: a record was read; it ends with the delimiter unless the stream
//     ended first.
//   - io.EOF: the stream was exhausted before the first byte of this call;
//     buf is empty. This is the normal end-of-loop signal, not a failure.
//   - ErrTooLong: the configured MaxLength was reached without a delimiter.
//   - ErrBufferLimit: the buffer could not grow to hold the next byte.
//   - any other error wraps a genuine read failure of the underlying source.
//
// On every outcome buf is NUL-terminated at its current length.
func (r *Reader) ReadRecord(buf *Buffer) error {
	if r.locker != nil {
		r.locker.Lock()
		defer r.locker.Unlock()
	}

	start := time.Now()
	err := r.readRecord(buf)
	r.opts.Metrics.RecordRead(buf.Len(), time.Since(start), err)

	return err
}

func (r *Reader) readRecord(buf *Buffer) error {
	buf.ensure(r.opts.InitialCapacity)
	buf.Reset()

	for {
		c, err := r.src.ReadByte()
		if errors.Is(err, io.EOF) {
			buf.terminate()
			if buf.Len() == 0 {
				return io.EOF
			}
			// The stream ended mid-record: the partial record is a
			// successful final read.
			return nil
		}
		if err != nil {
			buf.terminate()
			return fmt.Errorf("lineio: read: %w", err)
		}

		from, to, err := buf.append(c, r.opts.MaxCapacity)
		if err != nil {
			buf.terminate()
			return err
		}
		if from != to {
			if r.opts.Logger != nil {
				r.opts.Logger.Debug("buffer grown", "from", from, "to", to)
			}
			r.opts.Metrics.RecordGrow(from, to)
		}

		if c == r.opts.Delimiter {
			buf.terminate()
			return nil
		}
		if r.opts.MaxLength > 0 && buf.Len() >= r.opts.MaxLength {
			buf.terminate()
			return ErrTooLong
		}
	}
}
