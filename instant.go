package temporal

import "math"

// MinInstant and MaxInstant bound the representable range: the full span of
// a signed 64-bit nanosecond count, roughly 292 years either side of the
// epoch. Callers needing dates outside that window use PlainDate, whose
// epoch-day range is far wider.
var (
	MinInstant = Instant{nsec: math.MinInt64}
	MaxInstant = Instant{nsec: math.MaxInt64}
)

// Instant is an exact point on the time axis, represented as a signed count
// of nanoseconds since the Unix epoch, with no calendar or time zone
// attached. Clock-reading factories live in now.go; an Instant itself has no
// side effects.
type Instant struct {
	nsec int64
}

// InstantFromEpochNanoseconds returns the Instant for the given nanosecond
// count since the epoch. Every int64 value is a valid Instant.
func InstantFromEpochNanoseconds(nsec int64) Instant {
	return Instant{nsec: nsec}
}

// InstantFromEpochSeconds returns the Instant for the given whole count of
// seconds since the epoch. It errors if the nanosecond equivalent overflows.
func InstantFromEpochSeconds(sec int64) (Instant, error) {
	nsec, under, over := mulInt64(sec, int64(ExtentSecond))
	if under || over {
		return Instant{}, newError(ErrKindRange, "epoch seconds %d is outside the representable range", sec)
	}
	return Instant{nsec: nsec}, nil
}

// EpochNanoseconds returns the exact nanosecond count since the epoch.
func (i Instant) EpochNanoseconds() int64 { return i.nsec }

// EpochMicroseconds returns the number of whole microseconds since the
// epoch, rounded toward negative infinity.
func (i Instant) EpochMicroseconds() int64 { return floorDiv(i.nsec, int64(ExtentMicrosecond)) }

// EpochMilliseconds returns the number of whole milliseconds since the
// epoch, rounded toward negative infinity.
func (i Instant) EpochMilliseconds() int64 { return floorDiv(i.nsec, int64(ExtentMillisecond)) }

// EpochSeconds returns the number of whole seconds since the epoch, rounded
// toward negative infinity.
func (i Instant) EpochSeconds() int64 { return floorDiv(i.nsec, int64(ExtentSecond)) }

// Compare returns -1, 0 or 1 according to whether i is before, equal to, or after i2.
func (i Instant) Compare(i2 Instant) int { return sign(i.nsec - i2.nsec) }

// Equal reports whether i and i2 identify the same instant.
func (i Instant) Equal(i2 Instant) bool { return i.nsec == i2.nsec }

// Add returns i plus dur. dur must have zero year/month/week/day components,
// since an Instant carries no calendar context to resolve them against.
func (i Instant) Add(dur Duration) (Instant, error) {
	if dur.Years != 0 || dur.Months != 0 || dur.Weeks != 0 || dur.Days != 0 {
		return Instant{}, newError(ErrKindInvalidDuration, "Instant.Add does not accept calendar components")
	}
	delta, err := dur.timePartNanoseconds()
	if err != nil {
		return Instant{}, err
	}
	sum, under, over := addInt64(i.nsec, delta)
	if under || over {
		return Instant{}, newError(ErrKindArithmetic, "result is outside the representable range")
	}
	return Instant{nsec: sum}, nil
}

// CanAdd returns false if Add would return an error if passed the same argument.
func (i Instant) CanAdd(dur Duration) bool {
	_, err := i.Add(dur)
	return err == nil
}

// Subtract returns i minus dur, i.e. i.Add(dur.Negated()).
func (i Instant) Subtract(dur Duration) (Instant, error) {
	neg, err := dur.Negated()
	if err != nil {
		return Instant{}, err
	}
	return i.Add(neg)
}

// Until returns the exact time-only Duration from i to other.
func (i Instant) Until(other Instant, largestUnit Unit) (Duration, error) {
	if largestUnit.isCalendarUnit() {
		return Duration{}, newError(ErrKindInvalidOption, "largestUnit for Instant.Until must be hour or smaller")
	}
	h, mi, s, ms, us, ns := balanceNanoseconds(other.nsec-i.nsec, largestUnit)
	return NewDuration(0, 0, 0, 0, h, mi, s, ms, us, ns)
}

// Since returns the duration from other to i, i.e. other.Until(i).
func (i Instant) Since(other Instant, largestUnit Unit) (Duration, error) {
	return other.Until(i, largestUnit)
}

// Round rounds i to the nearest multiple of increment smallestUnit, using mode.
func (i Instant) Round(smallestUnit Unit, increment int, mode RoundingMode) (Instant, error) {
	if smallestUnit.isCalendarUnit() {
		return Instant{}, newError(ErrKindInvalidOption, "smallestUnit for Instant.Round must be hour or smaller")
	}
	if increment <= 0 {
		return Instant{}, newError(ErrKindInvalidOption, "roundingIncrement must be a positive integer")
	}
	size := nanosecondsPerUnit(smallestUnit)
	neg := i.nsec < 0
	mag := i.nsec
	if neg {
		mag = -mag
	}
	rounded := roundQuantity(mag, size, int64(increment), mode, neg)
	if neg {
		rounded = -rounded
	}
	out, under, over := mulInt64(rounded, size)
	if under || over {
		return Instant{}, newError(ErrKindArithmetic, "result is outside the representable range")
	}
	return Instant{nsec: out}, nil
}

func (i Instant) String() string {
	return FormatInstant(i)
}
