package textscan

import (
	"errors"
	"math"
	"strconv"
)

// ParseFloat converts the leading decimal numeral of b to a float64 using the
// fast path: no exponent, no locale, O(n) with a single division.
//
// Grammar: "ws* [sign] digit* ['.' digit*]". All digits are accumulated into
// one float64 and the fractional scale is divided out once at the end, which
// avoids compounding binary rounding error from repeated multiplication by
// 0.1. A bare sign or a bare '.' is not a conversion.
//
// This path performs no overflow detection; callers needing exponent support
// or range fidelity must use ParseFloatExact.
func ParseFloat(b []byte) (float64, int, error) {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	var d float64
	sawDigit := false
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		d = d*10 + float64(b[i]-'0')
		sawDigit = true
		i++
	}

	if i < len(b) && b[i] == '.' {
		i++
		div := 1.0
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			d = d*10 + float64(b[i]-'0')
			div *= 10
			sawDigit = true
			i++
		}
		d /= div
	}

	if !sawDigit {
		return 0, 0, noConversionError("ParseFloat", b)
	}
	if neg {
		d = -d
	}
	return d, i, nil
}

// ParseFloatExact converts the leading decimal numeral of b to a float64 with
// full precision and exponent support, delegating the conversion itself to
// strconv.ParseFloat.
//
// The wrapper locates the numeral extent ("ws* [sign] digit* ['.' digit*]
// [eE [sign] digit+]", with at least one mantissa digit), hands exactly that
// slice to strconv, and normalizes the result: nothing consumed yields
// ErrNoConversion, a finite value is returned as is, and an infinite result
// with a range signal becomes ErrRange with the infinity sentinel as the
// saturated value. Underflow to zero is a successful conversion.
func ParseFloatExact(b []byte) (float64, int, error) {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	start := i

	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}

	sawDigit := false
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		sawDigit = true
		i++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			sawDigit = true
			i++
		}
	}
	if !sawDigit {
		return 0, 0, noConversionError("ParseFloatExact", b)
	}

	// The exponent is consumed only when at least one exponent digit
	// follows; otherwise the numeral ends at the mantissa and a trailing
	// "e" or "E" stays unconsumed.
	end := i
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		expDigits := false
		for j < len(b) && b[j] >= '0' && b[j] <= '9' {
			expDigits = true
			j++
		}
		if expDigits {
			end = j
		}
	}

	f, err := strconv.ParseFloat(string(b[start:end]), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if math.IsInf(f, 0) {
				return f, end, rangeError("ParseFloatExact", b)
			}
			// Underflow: the nearest representable value is zero or
			// a denormal, which is a valid conversion result.
			return f, end, nil
		}
		return 0, 0, noConversionError("ParseFloatExact", b)
	}
	return f, end, nil
}
