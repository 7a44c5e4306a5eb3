package lineio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSource yields its bytes, then a non-EOF error.
type failingSource struct {
	data []byte
	err  error
}

func (s *failingSource) ReadByte() (byte, error) {
	if len(s.data) == 0 {
		return 0, s.err
	}
	c := s.data[0]
	s.data = s.data[1:]
	return c, nil
}

func TestReadRecord(t *testing.T) {
	t.Run("records keep their delimiter", func(t *testing.T) {
		r := NewReader(strings.NewReader("abc\ndef"))
		var buf Buffer

		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "abc\n", buf.String())
		assert.Equal(t, 4, buf.Len())

		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "def", buf.String())

		assert.Equal(t, io.EOF, r.ReadRecord(&buf))
		assert.Equal(t, 0, buf.Len())
	})

	t.Run("empty stream", func(t *testing.T) {
		r := NewReader(strings.NewReader(""))
		var buf Buffer
		assert.Equal(t, io.EOF, r.ReadRecord(&buf))
	})

	t.Run("empty record between delimiters", func(t *testing.T) {
		r := NewReader(strings.NewReader("\n\n"))
		var buf Buffer

		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "\n", buf.String())
		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "\n", buf.String())
		assert.Equal(t, io.EOF, r.ReadRecord(&buf))
	})

	t.Run("custom delimiter", func(t *testing.T) {
		r := NewReader(strings.NewReader("a|b|"), func(o *Options) {
			o.Delimiter = '|'
		})
		var buf Buffer

		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "a|", buf.String())
		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "b|", buf.String())
	})

	t.Run("max length reached", func(t *testing.T) {
		r := NewReader(strings.NewReader("abcdef\n"), func(o *Options) {
			o.MaxLength = 2
		})
		var buf Buffer

		err := r.ReadRecord(&buf)
		assert.ErrorIs(t, err, ErrTooLong)
		assert.Equal(t, "ab", buf.String())

		// The remainder of the stream is still there for the caller.
		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "cdef\n", buf.String())
	})

	t.Run("delimiter on the length bound wins", func(t *testing.T) {
		r := NewReader(strings.NewReader("a\n"), func(o *Options) {
			o.MaxLength = 2
		})
		var buf Buffer
		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "a\n", buf.String())
	})

	t.Run("read error is surfaced", func(t *testing.T) {
		cause := errors.New("device gone")
		r := NewReader(&failingSource{data: []byte("ab"), err: cause})
		var buf Buffer

		err := r.ReadRecord(&buf)
		assert.ErrorIs(t, err, cause)
		assert.NotEqual(t, io.EOF, err)
		assert.Equal(t, "ab", buf.String())
	})

	t.Run("capacity ceiling", func(t *testing.T) {
		r := NewReader(strings.NewReader(strings.Repeat("x", 100)), func(o *Options) {
			o.InitialCapacity = 4
			o.MaxCapacity = 8
		})
		var buf Buffer

		err := r.ReadRecord(&buf)
		assert.ErrorIs(t, err, ErrBufferLimit)
		assert.NotErrorIs(t, err, ErrTooLong)
		// Up to capacity-1 bytes fit before growth past the ceiling fails.
		assert.Equal(t, 7, buf.Len())
	})

	t.Run("long record grows across many steps", func(t *testing.T) {
		payload := strings.Repeat("z", 10_000)
		r := NewReader(strings.NewReader(payload+"\n"), func(o *Options) {
			o.InitialCapacity = 2
		})
		var buf Buffer

		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, payload+"\n", buf.String())
		assert.Greater(t, buf.Cap(), buf.Len())
	})

	t.Run("buffer reuse keeps capacity", func(t *testing.T) {
		r := NewReader(strings.NewReader(strings.Repeat("a", 500) + "\nb\n"))
		var buf Buffer

		require.NoError(t, r.ReadRecord(&buf))
		grown := buf.Cap()
		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, "b\n", buf.String())
		assert.Equal(t, grown, buf.Cap())
	})

	t.Run("metrics are recorded", func(t *testing.T) {
		var m BasicMetricsCollector
		r := NewReader(strings.NewReader("hello world\n"), func(o *Options) {
			o.InitialCapacity = 2
			o.Metrics = &m
		})
		var buf Buffer

		require.NoError(t, r.ReadRecord(&buf))
		assert.Equal(t, io.EOF, r.ReadRecord(&buf))

		stats := m.Stats()
		assert.Equal(t, int64(2), stats.ReadCount)
		assert.Equal(t, int64(1), stats.ReadErrors)
		assert.Equal(t, int64(12), stats.ReadBytes)
		assert.Greater(t, stats.GrowCount, int64(0))
	})
}

func TestReadRecordLocksSharedSource(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789\n"), 200)
	src := NewLockableSource(bytes.NewReader(payload))

	done := make(chan []string, 2)
	for w := 0; w < 2; w++ {
		r := NewReader(src)
		go func() {
			var records []string
			var buf Buffer
			for {
				err := r.ReadRecord(&buf)
				if err == io.EOF {
					break
				}
				if err != nil {
					break
				}
				records = append(records, buf.String())
			}
			done <- records
		}()
	}

	var total int
	for w := 0; w < 2; w++ {
		records := <-done
		total += len(records)
		// No record may be split or merged by the competing reader.
		for _, rec := range records {
			assert.Equal(t, "0123456789\n", rec)
		}
	}
	assert.Equal(t, 200, total)
}
