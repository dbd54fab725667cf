package temporal

// This file holds the calendar-relative arithmetic shared by
// PlainDate.Until/Since and Duration.Balance/Round/Total: both reduce to
// "how many whole years/months elapse between two dates, and what's left
// over in days". Whole units are found by incrementing until the next step
// would overshoot, which guarantees d.Add(d.Until(e)) == e exactly.

// applyDatePart adds years, months, weeks and days to a (year, month, day)
// in that order: years and months first with the carry rule, overflow
// policy applied to the resulting day, then weeks*7+days in epoch-day
// space. Returns the resulting epoch day.
func applyDatePart(year int, month Month, day int, years, months, weeks, days int64, overflow Overflow) (int64, error) {
	y2, m2 := normalizeYearMonth(year, month, years*12+months)

	d2 := day
	if overflow == Reject {
		if !isDateValid(y2, m2, day) {
			return 0, newError(ErrKindArithmetic, "day %d is out of range for %04d-%02d", day, y2, int(m2))
		}
	} else {
		d2 = constrainDay(y2, m2, day)
	}

	epoch := encodeEpochDay(y2, int(m2), d2)
	epoch += weeks*7 + days

	if !epochDayInRange(epoch) {
		return 0, newError(ErrKindArithmetic, "result is out of range")
	}
	return epoch, nil
}

// calendarAdvance advances (year, month, day) by exactly n whole units (Year
// or Month), using overflow=constrain, and returns the resulting epoch day.
func calendarAdvance(year int, month Month, day int, n int64, unit Unit) int64 {
	switch unit {
	case UnitYear:
		y2, m2 := normalizeYearMonth(year, month, n*12)
		return encodeEpochDay(y2, int(m2), constrainDay(y2, m2, day))
	case UnitMonth:
		y2, m2 := normalizeYearMonth(year, month, n)
		return encodeEpochDay(y2, int(m2), constrainDay(y2, m2, day))
	default:
		panic("calendarAdvance: unit must be UnitYear or UnitMonth")
	}
}

// calendarWholeUnits returns the largest n such that advancing start by n
// whole units (Year or Month) does not pass end, along with the epoch day
// reached after advancing by exactly that many units. start must be <= end.
func calendarWholeUnits(start PlainDate, end PlainDate, unit Unit) (n int64, reached int64) {
	startEpoch := start.epochDay()
	endEpoch := end.epochDay()
	if startEpoch > endEpoch {
		panic("calendarWholeUnits: start must not be after end")
	}

	reached = startEpoch
	for {
		candidate := calendarAdvance(start.year, start.month, start.day, n+1, unit)
		if candidate > endEpoch {
			return n, reached
		}
		n++
		reached = candidate
	}
}

// calendarUntil computes the calendar-aware difference from start to end:
// whole years first (if largestUnit permits), then whole months, then the
// remaining days (optionally split into weeks). It guarantees
// start.add({years,months,weeks,days}, constrain) == end when end >= start
// and largestUnit has no sub-day components remaining unaccounted for.
func calendarUntil(start, end PlainDate, largestUnit Unit) (years, months, weeks, days int64) {
	if start.Compare(end) == 0 {
		return 0, 0, 0, 0
	}

	neg := start.Compare(end) > 0
	a, b := start, end
	if neg {
		a, b = end, start
	}

	if largestUnit == UnitYear {
		years, _ = calendarWholeUnits(a, b, UnitYear)
		a = PlainDateOf(calendarAdvanceDecode(a.year, a.month, a.day, years, UnitYear))
	}

	if largestUnit == UnitYear || largestUnit == UnitMonth {
		months, _ = calendarWholeUnits(a, b, UnitMonth)
		a = PlainDateOf(calendarAdvanceDecode(a.year, a.month, a.day, months, UnitMonth))
	}

	remDays := b.epochDay() - a.epochDay()
	switch largestUnit {
	case UnitWeek:
		weeks = remDays / 7
		days = remDays % 7
	case UnitYear, UnitMonth, UnitDay:
		days = remDays
	}

	if neg {
		years, months, weeks, days = -years, -months, -weeks, -days
	}
	return
}

func calendarAdvanceDecode(year int, month Month, day int, n int64, unit Unit) (int, Month, int) {
	epoch := calendarAdvance(year, month, day, n, unit)
	y, m, d := decodeEpochDay(epoch)
	return y, Month(m), d
}
