package temporal

import "math"

// addInt64 attempts to add v1 to v2 but reports if the operation would underflow or overflow int64.
func addInt64(v1, v2 int64) (sum int64, underflows, overflows bool) {
	// math.MaxInt64-v2 and math.MinInt64-v2 cannot themselves wrap, since
	// v2's sign is known on each branch.
	if v2 > 0 && v1 > math.MaxInt64-v2 {
		return 0, false, true
	}
	if v2 < 0 && v1 < math.MinInt64-v2 {
		return 0, true, false
	}
	return v1 + v2, false, false
}

// mulInt64 attempts to multiply v1 by v2 but reports if the operation would underflow or overflow int64.
func mulInt64(v1, v2 int64) (product int64, underflows, overflows bool) {
	if v1 == 0 || v2 == 0 {
		return 0, false, false
	}
	p := v1 * v2
	if p/v2 != v1 {
		if (v1 > 0) == (v2 > 0) {
			return 0, false, true
		}
		return 0, true, false
	}
	return p, false, false
}

// sign returns -1, 0 or 1 according to the sign of v.
func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// roundQuantity rounds the exact rational quantity num/den (den > 0) to the
// nearest multiple of increment according to mode. isNegative
// indicates the true sign of the represented duration, since num/den here
// are always treated as non-negative magnitudes by the caller.
func roundQuantity(num, den int64, increment int64, mode RoundingMode, isNegative bool) int64 {
	if increment <= 0 {
		increment = 1
	}

	q := num / (den * increment)
	r := num - q*den*increment

	switch mode {
	case Trunc:
		// q already truncated toward zero.
	case Ceil:
		if r > 0 && !isNegative {
			q++
		}
	case Floor:
		if r > 0 && isNegative {
			q++
		}
	default: // HalfExpand
		if 2*r >= den*increment {
			q++
		}
	}

	return q * increment
}
