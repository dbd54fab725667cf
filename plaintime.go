package temporal

import "fmt"

// PlainTime is a wall-clock time without a date or time-zone component,
// with nanosecond resolution. The millisecond/microsecond/nanosecond
// accessors decompose the sub-second part into separate components rather
// than a single cumulative fraction.
type PlainTime struct {
	nsec int64 // nanoseconds since 00:00:00, in [0, 86_400_000_000_000).
}

const nanosecondsPerDay = int64(24) * int64(ExtentHour)

// PlainTimeOf returns the PlainTime for the given hour, minute, second and
// the three sub-second components. It panics if any field is out of range.
func PlainTimeOf(hour, minute, second, millisecond, microsecond, nanosecond int) PlainTime {
	t, err := TryPlainTimeOf(hour, minute, second, millisecond, microsecond, nanosecond)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// TryPlainTimeOf is the non-panicking form of PlainTimeOf.
func TryPlainTimeOf(hour, minute, second, millisecond, microsecond, nanosecond int) (PlainTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 ||
		millisecond < 0 || millisecond > 999 || microsecond < 0 || microsecond > 999 || nanosecond < 0 || nanosecond > 999 {
		return PlainTime{}, newError(ErrKindRange, "time field out of range")
	}
	nsec := int64(hour)*int64(ExtentHour) + int64(minute)*int64(ExtentMinute) + int64(second)*int64(ExtentSecond) +
		int64(millisecond)*int64(ExtentMillisecond) + int64(microsecond)*int64(ExtentMicrosecond) + int64(nanosecond)
	return PlainTime{nsec: nsec}, nil
}

// Hour, Minute, Second, Millisecond, Microsecond and Nanosecond return the
// respective component of t. The sub-second fields are independent
// components, not cumulative: .001002003 decomposes to (1, 2, 3).
func (t PlainTime) Hour() int        { return int(t.nsec / int64(ExtentHour)) }
func (t PlainTime) Minute() int      { return int((t.nsec / int64(ExtentMinute)) % 60) }
func (t PlainTime) Second() int      { return int((t.nsec / int64(ExtentSecond)) % 60) }
func (t PlainTime) Millisecond() int { return int((t.nsec / int64(ExtentMillisecond)) % 1000) }
func (t PlainTime) Microsecond() int { return int((t.nsec / int64(ExtentMicrosecond)) % 1000) }
func (t PlainTime) Nanosecond() int  { return int(t.nsec % 1000) }

// nanosecondOfDay returns the exact nanosecond offset since midnight.
func (t PlainTime) nanosecondOfDay() int64 { return t.nsec }

// Compare returns -1, 0 or 1 according to whether t is before, equal to, or after t2.
func (t PlainTime) Compare(t2 PlainTime) int {
	return sign(t.nsec - t2.nsec)
}

// Equal reports whether t and t2 represent the same time of day.
func (t PlainTime) Equal(t2 PlainTime) bool { return t.nsec == t2.nsec }

// With returns a copy of t with the given fields replaced; a nil pointer
// leaves that field unchanged.
func (t PlainTime) With(hour, minute, second, millisecond, microsecond, nanosecond *int) (PlainTime, error) {
	h, mi, s, ms, us, ns := t.Hour(), t.Minute(), t.Second(), t.Millisecond(), t.Microsecond(), t.Nanosecond()
	if hour != nil {
		h = *hour
	}
	if minute != nil {
		mi = *minute
	}
	if second != nil {
		s = *second
	}
	if millisecond != nil {
		ms = *millisecond
	}
	if microsecond != nil {
		us = *microsecond
	}
	if nanosecond != nil {
		ns = *nanosecond
	}
	return TryPlainTimeOf(h, mi, s, ms, us, ns)
}

// Add returns t plus the given duration's time-part, reduced modulo 24h;
// it wraps silently and ignores any calendar-part components.
func (t PlainTime) Add(dur Duration) (PlainTime, error) {
	delta, err := dur.timePartNanoseconds()
	if err != nil {
		return PlainTime{}, err
	}
	return PlainTime{nsec: floorMod(t.nsec+delta, nanosecondsPerDay)}, nil
}

// CanAdd returns false if Add would return an error if passed the same argument.
func (t PlainTime) CanAdd(dur Duration) bool {
	_, err := t.Add(dur)
	return err == nil
}

// Subtract returns t minus the given duration's time-part, i.e. t.Add(dur.Negated()).
func (t PlainTime) Subtract(dur Duration) (PlainTime, error) {
	neg, err := dur.Negated()
	if err != nil {
		return PlainTime{}, err
	}
	return t.Add(neg)
}

// Until returns the Duration, expressed purely in time-part components, from
// t to other, in the range (-24h, 24h).
func (t PlainTime) Until(other PlainTime, largestUnit Unit) (Duration, error) {
	if largestUnit.isCalendarUnit() {
		return Duration{}, newError(ErrKindInvalidOption, "largestUnit for PlainTime.Until must be hour or smaller")
	}
	h, mi, s, ms, us, ns := balanceNanoseconds(other.nsec-t.nsec, largestUnit)
	return NewDuration(0, 0, 0, 0, h, mi, s, ms, us, ns)
}

// Since returns the duration from other to t, i.e. other.Until(t).
func (t PlainTime) Since(other PlainTime, largestUnit Unit) (Duration, error) {
	return other.Until(t, largestUnit)
}

// Round rounds t to the nearest multiple of increment smallestUnit, using
// mode. The result is reduced modulo 24h, so rounding up past the end of the
// day wraps to midnight.
func (t PlainTime) Round(smallestUnit Unit, increment int, mode RoundingMode) (PlainTime, error) {
	if smallestUnit.isCalendarUnit() {
		return PlainTime{}, newError(ErrKindInvalidOption, "smallestUnit for PlainTime.Round must be hour or smaller")
	}
	if increment <= 0 {
		return PlainTime{}, newError(ErrKindInvalidOption, "roundingIncrement must be a positive integer")
	}
	size := nanosecondsPerUnit(smallestUnit)
	rounded := roundQuantity(t.nsec, size, int64(increment), mode, false)
	return PlainTime{nsec: floorMod(rounded*size, nanosecondsPerDay)}, nil
}

func (t PlainTime) String() string {
	out := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if frac := t.nsec % int64(ExtentSecond); frac != 0 {
		out += formatFraction(frac)
	}
	return out
}

// MidnightPlainTime returns 00:00:00.
func MidnightPlainTime() PlainTime { return PlainTime{} }

// NoonPlainTime returns 12:00:00.
func NoonPlainTime() PlainTime { return PlainTime{nsec: 12 * int64(ExtentHour)} }
