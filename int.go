package textscan

import "math"

// isSpace reports whether c is an ASCII space-class character.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// numScan is the outcome of one decimal or hex scan. The sign is reported
// separately from the magnitude and is never folded into the unsigned value;
// entry points decide what a negative numeral means for their target type.
type numScan struct {
	val      uint64
	neg      bool
	next     int
	sawDigit bool
	overflow bool
}

// scanDecimal consumes "ws* [sign] digit*" from b, accumulating the magnitude
// against max. When no digit is present next stays 0, so a consumed sign is
// not reflected in the reported resume position.
func scanDecimal(b []byte, max uint64) numScan {
	var s numScan

	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		s.neg = b[i] == '-'
		i++
	}

	acc := newDigitAccumulator(10, max)
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		acc.add(uint64(b[i] - '0'))
		s.sawDigit = true
		i++
	}

	s.val = acc.val
	s.overflow = acc.overflowed
	if s.sawDigit {
		s.next = i
	}

	return s
}

// ParseUint converts the leading decimal numeral of b to a uint64.
//
// It consumes optional whitespace and a single optional sign; leading zeros
// count as a successful conversion. A negative nonzero numeral is out of
// range for an unsigned result and yields ErrRange with value 0. On overflow
// the value saturates at math.MaxUint64; next always points past the full
// numeral.
func ParseUint(b []byte) (uint64, int, error) {
	s := scanDecimal(b, math.MaxUint64)
	if !s.sawDigit {
		return 0, 0, noConversionError("ParseUint", b)
	}
	if s.overflow {
		return math.MaxUint64, s.next, rangeError("ParseUint", b)
	}
	if s.neg && s.val != 0 {
		return 0, s.next, rangeError("ParseUint", b)
	}
	return s.val, s.next, nil
}

// ParseInt converts the leading decimal numeral of b to an int64.
//
// Overflow bounds are asymmetric: a positive numeral overflows above
// math.MaxInt64, a negative one below math.MinInt64. The saturated bound is
// returned with ErrRange and next still covers the whole numeral.
func ParseInt(b []byte) (int64, int, error) {
	s := scanDecimal(b, math.MaxUint64)
	if !s.sawDigit {
		return 0, 0, noConversionError("ParseInt", b)
	}

	const limit = uint64(math.MaxInt64)
	switch {
	case s.overflow, !s.neg && s.val > limit:
		if s.neg {
			return math.MinInt64, s.next, rangeError("ParseInt", b)
		}
		return math.MaxInt64, s.next, rangeError("ParseInt", b)
	case s.neg && s.val > limit+1:
		return math.MinInt64, s.next, rangeError("ParseInt", b)
	case s.neg && s.val == limit+1:
		return math.MinInt64, s.next, nil
	case s.neg:
		return -int64(s.val), s.next, nil
	}
	return int64(s.val), s.next, nil
}

// hexDigit returns the value of c as a base-16 digit, or 16 if c is not one.
func hexDigit(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10
	}
	return 16
}

// ParseHexUint converts the leading hexadecimal numeral of b to a uint64.
//
// An optional "0x" or "0X" prefix is accepted immediately after whitespace.
// Hex conversion is unsigned only; no sign character is consumed. A prefix
// not followed by a hex digit is not a prefix: "0x" alone converts the
// leading zero and resumes at the 'x'. On overflow the value saturates at
// math.MaxUint64.
func ParseHexUint(b []byte) (uint64, int, error) {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	if i+2 < len(b) && b[i] == '0' && (b[i+1] == 'x' || b[i+1] == 'X') && hexDigit(b[i+2]) < 16 {
		i += 2
	}

	acc := newDigitAccumulator(16, math.MaxUint64)
	sawDigit := false
	for i < len(b) {
		d := hexDigit(b[i])
		if d >= 16 {
			break
		}
		acc.add(d)
		sawDigit = true
		i++
	}

	if !sawDigit {
		return 0, 0, noConversionError("ParseHexUint", b)
	}
	if acc.overflowed {
		return math.MaxUint64, i, rangeError("ParseHexUint", b)
	}
	return acc.val, i, nil
}
