package textscan

// digitAccumulator folds scanned digits into a bounded unsigned value.
//
// Overflow is detected before the multiply using the precomputed cutoff pair,
// so the accumulator never wraps. Once overflow is hit the value freezes at
// max while callers keep consuming digits, which keeps the resume offset at
// the end of the full numeral.
type digitAccumulator struct {
	base       uint64
	max        uint64
	cutoff     uint64
	cutlim     uint64
	val        uint64
	overflowed bool
}

func newDigitAccumulator(base, max uint64) digitAccumulator {
	return digitAccumulator{
		base:   base,
		max:    max,
		cutoff: max / base,
		cutlim: max % base,
	}
}

// add folds one digit d in [0, base) into the accumulated value.
func (a *digitAccumulator) add(d uint64) {
	if a.overflowed {
		return
	}
	if a.val > a.cutoff || (a.val == a.cutoff && d > a.cutlim) {
		a.val = a.max
		a.overflowed = true
		return
	}
	a.val = a.val*a.base + d
}
