package textscan

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConversion is returned when the input contains no recognizable
	// numeral after optional whitespace and sign. The resume offset is 0.
	ErrNoConversion = errors.New("no conversion")

	// ErrRange is returned when a numeral is present but its magnitude
	// exceeds the representable range of the target type. The returned
	// value is saturated and the resume offset still covers the full
	// numeral.
	ErrRange = errors.New("value out of range")
)

// NumError records a failed conversion with the function and input that
// produced it.
//
// The underlying reason (ErrNoConversion or ErrRange) can be accessed via
// errors.Unwrap and matched with errors.Is.
type NumError struct {
	Func  string // the failing function (ParseUint, ParseInt, ...)
	Input string // the input text
	cause error
}

func (e *NumError) Error() string {
	return fmt.Sprintf("textscan.%s: parsing %q: %v", e.Func, e.Input, e.cause)
}

func (e *NumError) Unwrap() error { return e.cause }

func noConversionError(fn string, b []byte) *NumError {
	return &NumError{Func: fn, Input: string(b), cause: ErrNoConversion}
}

func rangeError(fn string, b []byte) *NumError {
	return &NumError{Func: fn, Input: string(b), cause: ErrRange}
}
