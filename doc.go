// Package textscan provides portable, resumable string-to-number conversion
// primitives and a growable delimited-record reader.
//
// The parsers replace inconsistent platform library behavior with a single,
// fully specified contract: explicit overflow detection with saturation,
// deterministic handling of signs and leading zeros, and a resume offset that
// always identifies the first unconsumed byte so a caller can tokenize a
// sequence of numbers out of one buffer.
//
// # Quick Start
//
// Parsing:
//
//	v, n, err := textscan.ParseInt([]byte("  -42 rest"))
//	// v == -42, n == 5, err == nil; input[n:] is " rest"
//
//	v, n, err = textscan.ParseUint([]byte("18446744073709551616"))
//	// errors.Is(err, textscan.ErrRange), v == math.MaxUint64, n == 20
//
// Reading delimited records:
//
//	r := lineio.NewReader(lineio.NewSource(f))
//	var buf lineio.Buffer
//	for {
//	    err := r.ReadRecord(&buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    handle(buf.Bytes())
//	}
//
// # Result Convention
//
// Every parser returns (value, next, err). On success err is nil and next is
// the offset just past the consumed numeral. When no numeral is present the
// error is ErrNoConversion and next is 0: nothing was consumed, not even a
// sign. When the numeral is present but out of range the error is ErrRange,
// the value is saturated to the type's maximum magnitude with the correct
// sign, and next still points past the whole numeral.
//
// # Concurrency
//
// All parse functions are pure and safe for concurrent use. lineio.Reader
// serializes access to a shared source for the duration of one record read
// when the source implements sync.Locker; see the lineio package docs.
package textscan
