// Package bounds provides overflow-safe arithmetic for capacity and offset
// calculations. All helpers operate on int64 because pool capacities are
// tracked in bytes and element sizes come from reflect.
package bounds

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int64.
func AddOverflowSafe(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would
// overflow int64. This is essential for slotCount * elementSize calculations.
func MulOverflowSafe(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt64/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt64/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt64/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt64/b {
			return 0, false
		}
	}
	return a * b, true
}

// NextPow2 returns the smallest power of two >= v. A power of two maps to
// itself. Returns ok = false when the result would exceed int64 range or
// v is not positive.
func NextPow2(v int64) (int64, bool) {
	if v <= 0 {
		return 0, false
	}
	// Largest representable power of two is 1<<62.
	if v > 1<<62 {
		return 0, false
	}
	p := int64(1)
	for p < v {
		p <<= 1
	}
	return p, true
}

// FitsInt32 reports whether v is representable as an int32. Slot offsets are
// stored as int32, so any offset or capacity that feeds offset math must pass
// this check first.
func FitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
