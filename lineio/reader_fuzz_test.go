package lineio

import (
	"bytes"
	"io"
	"testing"
)

// FuzzReadRecord checks that splitting any stream into delimited records and
// concatenating them reproduces the stream, with the invariants on delimiter
// placement and buffer capacity holding throughout.
func FuzzReadRecord(f *testing.F) {
	f.Add([]byte("abc\ndef"), byte('\n'))
	f.Add([]byte(""), byte('\n'))
	f.Add([]byte("\x00\x00"), byte(0))
	f.Add([]byte("no delimiter at all"), byte(';'))
	f.Add(bytes.Repeat([]byte("x"), 1000), byte('x'))

	f.Fuzz(func(t *testing.T, data []byte, delim byte) {
		if len(data) > 1<<16 {
			t.Skip()
		}

		r := NewReader(bytes.NewReader(data), func(o *Options) {
			o.Delimiter = delim
			o.InitialCapacity = 2
		})

		var joined []byte
		var buf Buffer
		for {
			err := r.ReadRecord(&buf)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			rec := buf.Bytes()
			if len(rec) == 0 {
				t.Fatal("successful read produced an empty record")
			}
			if i := bytes.IndexByte(rec, delim); i >= 0 && i != len(rec)-1 {
				t.Fatalf("delimiter inside record %q", rec)
			}
			if buf.Len() >= buf.Cap() {
				t.Fatalf("length %d reached capacity %d", buf.Len(), buf.Cap())
			}
			joined = append(joined, rec...)
		}

		if !bytes.Equal(joined, data) {
			t.Fatalf("records do not reassemble the stream: %q != %q", joined, data)
		}
	})
}
