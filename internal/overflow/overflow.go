// Package overflow provides overflow-checked integer arithmetic for buffer
// size computations.
package overflow

import (
	"fmt"
	"math"
)

// Add computes a + b, detecting overflow instead of wrapping.
func Add(a, b int) (int, error) {
	if b > 0 && a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds max int", a, b)
	}
	if b < 0 && a < math.MinInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds min int", a, b)
	}
	return a + b, nil
}

// Mul computes a * b for non-negative operands, detecting overflow instead
// of wrapping.
func Mul(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: negative operand in %d * %d", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds max int", a, b)
	}
	return a * b, nil
}

// Grow computes the grown capacity for a buffer currently holding n bytes:
// (n+1) + ceil((n+2)/2), which is at least 1.5x growth and always leaves one
// spare slot past the new length.
func Grow(n int) (int, error) {
	need, err := Add(n, 1)
	if err != nil {
		return 0, err
	}
	half, err := Add(n, 3)
	if err != nil {
		return 0, err
	}
	return Add(need, half/2)
}
