package temporal

// PlainDateTime is the product of a PlainDate and a PlainTime. The two parts
// stay separate rather than being packed into one tick count, because
// arithmetic treats them differently: the overflow policy applies to the
// date part while the time part carries whole days across.
type PlainDateTime struct {
	date PlainDate
	time PlainTime
}

// PlainDateTimeOf combines a year/month/day and an hour/minute/second/sub-second
// into a PlainDateTime. It panics if either part is invalid.
func PlainDateTimeOf(year int, month Month, day, hour, minute, second, millisecond, microsecond, nanosecond int) PlainDateTime {
	return OfDateAndTime(PlainDateOf(year, month, day), PlainTimeOf(hour, minute, second, millisecond, microsecond, nanosecond))
}

// OfDateAndTime combines an existing PlainDate and PlainTime.
func OfDateAndTime(date PlainDate, time PlainTime) PlainDateTime {
	return PlainDateTime{date: date, time: time}
}

// Date returns the date part of dt.
func (dt PlainDateTime) Date() PlainDate { return dt.date }

// Time returns the time part of dt.
func (dt PlainDateTime) Time() PlainTime { return dt.time }

// WithDate returns a copy of dt with the date part replaced.
func (dt PlainDateTime) WithDate(date PlainDate) PlainDateTime {
	return PlainDateTime{date: date, time: dt.time}
}

// WithTime returns a copy of dt with the time-of-day part replaced.
func (dt PlainDateTime) WithTime(time PlainTime) PlainDateTime {
	return PlainDateTime{date: dt.date, time: time}
}

// Round rounds dt's time-of-day to the nearest multiple of increment
// smallestUnit, carrying a round-up past midnight into the date.
// smallestUnit may be UnitDay, rounding to the nearest local midnight.
func (dt PlainDateTime) Round(smallestUnit Unit, increment int, mode RoundingMode) (PlainDateTime, error) {
	if smallestUnit.isCalendarUnit() && smallestUnit != UnitDay {
		return PlainDateTime{}, newError(ErrKindInvalidOption, "smallestUnit for PlainDateTime.Round must be day or smaller")
	}
	if increment <= 0 {
		return PlainDateTime{}, newError(ErrKindInvalidOption, "roundingIncrement must be a positive integer")
	}

	size := nanosecondsPerDay
	if smallestUnit != UnitDay {
		size = nanosecondsPerUnit(smallestUnit)
	}
	rounded := roundQuantity(dt.time.nsec, size, int64(increment), mode, false) * size

	date := dt.date
	if days := rounded / nanosecondsPerDay; days != 0 {
		var err error
		if date, err = dt.date.Add(Duration{Days: days}, Constrain); err != nil {
			return PlainDateTime{}, err
		}
	}
	return PlainDateTime{date: date, time: PlainTime{nsec: rounded % nanosecondsPerDay}}, nil
}

// Compare returns -1, 0 or 1 according to whether dt is before, equal to, or after dt2.
func (dt PlainDateTime) Compare(dt2 PlainDateTime) int {
	if c := dt.date.Compare(dt2.date); c != 0 {
		return c
	}
	return dt.time.Compare(dt2.time)
}

// Equal reports whether dt and dt2 represent the same date and time.
func (dt PlainDateTime) Equal(dt2 PlainDateTime) bool { return dt.Compare(dt2) == 0 }

// Add applies the date-part of dur first, then adds the time-part
// nanoseconds to a nanoseconds-of-day scalar, carrying whole days into the
// date; the time of day never wraps silently here.
func (dt PlainDateTime) Add(dur Duration, overflow Overflow) (PlainDateTime, error) {
	if err := overflow.validate(); err != nil {
		return PlainDateTime{}, err
	}

	newDate, err := dt.date.Add(Duration{Years: dur.Years, Months: dur.Months, Weeks: dur.Weeks, Days: dur.Days}, overflow)
	if err != nil {
		return PlainDateTime{}, err
	}

	timeNsec, err := dur.timePartNanoseconds()
	if err != nil {
		return PlainDateTime{}, err
	}

	total := dt.time.nsec + timeNsec
	wholeDays := floorDiv(total, nanosecondsPerDay)
	remainder := floorMod(total, nanosecondsPerDay)

	if wholeDays != 0 {
		newDate, err = newDate.Add(Duration{Days: wholeDays}, overflow)
		if err != nil {
			return PlainDateTime{}, err
		}
	}

	return PlainDateTime{date: newDate, time: PlainTime{nsec: remainder}}, nil
}

// CanAdd returns false if Add would return an error if passed the same arguments.
func (dt PlainDateTime) CanAdd(dur Duration, overflow Overflow) bool {
	_, err := dt.Add(dur, overflow)
	return err == nil
}

// Subtract returns dt minus dur, i.e. dt.Add(dur.Negated(), overflow).
func (dt PlainDateTime) Subtract(dur Duration, overflow Overflow) (PlainDateTime, error) {
	neg, err := dur.Negated()
	if err != nil {
		return PlainDateTime{}, err
	}
	return dt.Add(neg, overflow)
}

// Until returns the calendar-aware Duration from dt to other: whole
// years/months/weeks/days per largestUnit, then the remaining sub-day
// component by nanosecond difference. A time-only largestUnit folds the
// whole-day span into that unit instead.
func (dt PlainDateTime) Until(other PlainDateTime, largestUnit Unit) (Duration, error) {
	if err := largestUnit.validate(); err != nil {
		return Duration{}, err
	}

	if !largestUnit.isCalendarUnit() {
		dayNsec, under, over := mulInt64(other.date.epochDay()-dt.date.epochDay(), nanosecondsPerDay)
		if under || over {
			return Duration{}, newError(ErrKindArithmetic, "interval is too large for a time-only largestUnit")
		}
		total, under, over := addInt64(dayNsec, other.time.nsec-dt.time.nsec)
		if under || over {
			return Duration{}, newError(ErrKindArithmetic, "interval is too large for a time-only largestUnit")
		}
		h, mi, s, ms, us, ns := balanceNanoseconds(total, largestUnit)
		return NewDuration(0, 0, 0, 0, h, mi, s, ms, us, ns)
	}

	// Borrow a day in the direction of travel so the date-part difference is
	// computed against a same-time anchor, keeping the sub-day remainder's
	// sign consistent with the whole.
	endDate, timeNsec := other.date, other.time.nsec-dt.time.nsec
	if dt.Compare(other) <= 0 {
		if timeNsec < 0 {
			endDate, _ = other.date.Add(Duration{Days: -1}, Constrain)
			timeNsec += nanosecondsPerDay
		}
	} else if timeNsec > 0 {
		endDate, _ = other.date.Add(Duration{Days: 1}, Constrain)
		timeNsec -= nanosecondsPerDay
	}

	years, months, weeks, days := calendarUntil(dt.date, endDate, largestUnit)
	h, mi, s, ms, us, ns := balanceNanoseconds(timeNsec, UnitHour)
	return NewDuration(years, months, weeks, days, h, mi, s, ms, us, ns)
}

// Since returns the duration from other to dt, i.e. other.Until(dt).
func (dt PlainDateTime) Since(other PlainDateTime, largestUnit Unit) (Duration, error) {
	return other.Until(dt, largestUnit)
}

func (dt PlainDateTime) String() string {
	return dt.date.dateOnlyString() + "T" + dt.time.String() + calendarAnnotation(dt.date.cal)
}
