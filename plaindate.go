package temporal

import "fmt"

// PlainDate is a calendar date without a time-of-day or time-zone
// component, in the proleptic Gregorian (ISO 8601) calendar. The calendar
// tag only affects era/year projection and formatting; the stored
// (year, month, day) triple is always ISO.
type PlainDate struct {
	year  int
	month Month
	day   int
	cal   Calendar
}

// PlainDateOf returns the PlainDate for the given year, month and day in the
// ISO 8601 calendar. It panics if the date is structurally invalid or falls
// outside [MinEpochDay, MaxEpochDay].
func PlainDateOf(year int, month Month, day int) PlainDate {
	d, err := TryPlainDateOf(year, month, day)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// TryPlainDateOf is the non-panicking form of PlainDateOf.
func TryPlainDateOf(year int, month Month, day int) (PlainDate, error) {
	if !isDateValid(year, month, day) {
		return PlainDate{}, newError(ErrKindRange, "%04d-%02d-%02d is not a valid calendar date", year, int(month), day)
	}
	if !epochDayInRange(encodeEpochDay(year, int(month), day)) {
		return PlainDate{}, newError(ErrKindRange, "%04d-%02d-%02d is outside the representable range", year, int(month), day)
	}
	return PlainDate{year: year, month: month, day: day, cal: ISO8601}, nil
}

// PlainDateOfDayOfYear returns the date for the n-th day of year, 1-indexed.
func PlainDateOfDayOfYear(year, day int) PlainDate {
	if day < 1 || day > daysInYear(year) {
		panic(newError(ErrKindRange, "day-of-year %d is out of range for %04d", day, year).Error())
	}

	var month Month = January
	remaining := day
	for remaining > daysInMonth(year, month) {
		remaining -= daysInMonth(year, month)
		month++
	}
	return PlainDateOf(year, month, remaining)
}

// PlainDateOfISOWeek returns the date for the given ISO week-based year,
// week number and weekday. See PlainDate.WeekOfYear for the definition of
// ISO week numbers.
func PlainDateOfISOWeek(yearOfWeek, week int, weekday Weekday) (PlainDate, error) {
	if week < 1 || week > 53 {
		return PlainDate{}, newError(ErrKindRange, "week %d is out of range", week)
	}

	jan4 := encodeEpochDay(yearOfWeek, 1, 4)
	mondayOfWeek1 := jan4 - int64(isoWeekday(jan4)-1)
	epoch := mondayOfWeek1 + int64(week-1)*7 + int64(weekday-1)

	if !epochDayInRange(epoch) {
		return PlainDate{}, newError(ErrKindRange, "result is outside the representable range")
	}
	y, m, d := decodeEpochDay(epoch)
	return TryPlainDateOf(y, Month(m), d)
}

// PlainDateOfFirstWeekday returns the first occurrence of weekday on or
// after the first of month in year.
func PlainDateOfFirstWeekday(year int, month Month, weekday Weekday) PlainDate {
	first := PlainDateOf(year, month, 1)
	delta := int64(weekday) - int64(first.Weekday())
	if delta < 0 {
		delta += 7
	}
	y, m, d := decodeEpochDay(first.epochDay() + delta)
	return PlainDateOf(y, Month(m), d)
}

func (d PlainDate) epochDay() int64 {
	return encodeEpochDay(d.year, int(d.month), d.day)
}

// Year returns the ISO 8601 year.
func (d PlainDate) Year() int { return d.year }

// Month returns the month, 1-12.
func (d PlainDate) Month() Month { return d.month }

// Day returns the day of the month.
func (d PlainDate) Day() int { return d.day }

// Calendar returns the calendar this date is expressed in.
func (d PlainDate) Calendar() Calendar { return d.cal }

// WithCalendar returns a copy of d reinterpreted in the given calendar.
// Since every supported calendar shares ISO month/day structure, the
// underlying (year, month, day) triple is unchanged - only era/eraYear
// projection differs.
func (d PlainDate) WithCalendar(cal Calendar) (PlainDate, error) {
	if !cal.valid() {
		return PlainDate{}, newError(ErrKindUnsupportedCalendar, "calendar %q is not supported", cal)
	}
	d.cal = cal
	return d, nil
}

// MonthCode returns the year-independent month identifier, "M01" through "M12".
func (d PlainDate) MonthCode() string { return monthCode(d.month) }

// Era returns the era identifier d's year falls in under its calendar, and
// false if that calendar has no era concept.
func (d PlainDate) Era() (string, bool) { return d.cal.Era(d) }

// EraYear returns d's year numbered within its era, and false if d's
// calendar has no era concept.
func (d PlainDate) EraYear() (int, bool) { return d.cal.EraYear(d) }

// IsLeapYear reports whether d's year is a leap year.
func (d PlainDate) IsLeapYear() bool { return isLeapYear(d.year) }

// DaysInMonth returns the number of days in d's month.
func (d PlainDate) DaysInMonth() int { return daysInMonth(d.year, d.month) }

// DaysInYear returns 366 or 365 according to whether d's year is a leap year.
func (d PlainDate) DaysInYear() int { return daysInYear(d.year) }

// Weekday returns the ISO 8601 day of the week.
func (d PlainDate) Weekday() Weekday {
	return Weekday(isoWeekday(d.epochDay()))
}

// DayOfYear returns the 1-based ordinal day of the year.
func (d PlainDate) DayOfYear() int {
	return dayOfYear(d.year, d.month, d.day)
}

// WeekOfYear and YearOfWeek return the ISO 8601 week number (1-53) and the
// (possibly adjacent) year that week belongs to.
func (d PlainDate) WeekOfYear() int {
	_, week := isoWeekOfYear(d.epochDay())
	return week
}

func (d PlainDate) YearOfWeek() int {
	yow, _ := isoWeekOfYear(d.epochDay())
	return yow
}

// Compare returns -1, 0 or 1 according to whether d is before, equal to, or after d2.
func (d PlainDate) Compare(d2 PlainDate) int {
	switch {
	case d.year != d2.year:
		return sign(int64(d.year - d2.year))
	case d.month != d2.month:
		return sign(int64(d.month - d2.month))
	default:
		return sign(int64(d.day - d2.day))
	}
}

// Equal reports whether d and d2 represent the same calendar date.
func (d PlainDate) Equal(d2 PlainDate) bool { return d.Compare(d2) == 0 }

// With returns a copy of d with the given fields replaced; a nil pointer
// leaves that field unchanged. Overflow controls how an out-of-range
// resulting day (e.g. with(month=February) on the 31st) is handled.
func (d PlainDate) With(year, month, day *int, overflow Overflow) (PlainDate, error) {
	if err := overflow.validate(); err != nil {
		return PlainDate{}, err
	}

	y, m, dd := d.year, d.month, d.day
	if year != nil {
		y = *year
	}
	if month != nil {
		m = Month(*month)
	}
	if day != nil {
		dd = *day
	}

	if overflow == Reject {
		if !isDateValid(y, m, dd) {
			return PlainDate{}, newError(ErrKindArithmetic, "%04d-%02d-%02d is not a valid calendar date", y, int(m), dd)
		}
	} else {
		dd = constrainDay(y, m, dd)
	}

	out, err := TryPlainDateOf(y, m, dd)
	if err != nil {
		return PlainDate{}, err
	}
	out.cal = d.cal
	return out, nil
}

// Add returns d plus the given duration's date-part (years, months, weeks,
// days); any time-part components are ignored.
func (d PlainDate) Add(dur Duration, overflow Overflow) (PlainDate, error) {
	if err := overflow.validate(); err != nil {
		return PlainDate{}, err
	}
	epoch, err := applyDatePart(d.year, d.month, d.day, dur.Years, dur.Months, dur.Weeks, dur.Days, overflow)
	if err != nil {
		return PlainDate{}, err
	}
	y, m, dd := decodeEpochDay(epoch)
	out, err := TryPlainDateOf(y, Month(m), dd)
	if err != nil {
		return PlainDate{}, err
	}
	out.cal = d.cal
	return out, nil
}

// CanAdd returns false if Add would return an error if passed the same arguments.
func (d PlainDate) CanAdd(dur Duration, overflow Overflow) bool {
	_, err := d.Add(dur, overflow)
	return err == nil
}

// Subtract returns d minus the given duration's date-part, i.e. d.Add(dur.Negated(), overflow).
func (d PlainDate) Subtract(dur Duration, overflow Overflow) (PlainDate, error) {
	neg, err := dur.Negated()
	if err != nil {
		return PlainDate{}, err
	}
	return d.Add(neg, overflow)
}

// Until returns the signed Duration such that d.Add(result, Constrain) == other.
func (d PlainDate) Until(other PlainDate, largestUnit Unit) (Duration, error) {
	if !largestUnit.isCalendarUnit() {
		return Duration{}, newError(ErrKindInvalidOption, "largestUnit for PlainDate.Until must be day, week, month or year")
	}
	years, months, weeks, days := calendarUntil(d, other, largestUnit)
	return NewDuration(years, months, weeks, days, 0, 0, 0, 0, 0, 0)
}

// Since returns the duration from other to d, i.e. other.Until(d): positive
// when d is the later date.
func (d PlainDate) Since(other PlainDate, largestUnit Unit) (Duration, error) {
	return other.Until(d, largestUnit)
}

func (d PlainDate) String() string {
	return d.dateOnlyString() + calendarAnnotation(d.cal)
}

// dateOnlyString formats the YYYY-MM-DD portion with no calendar annotation,
// for embedding inside a larger grammar (PlainDateTime, Instant, ZonedDateTime)
// whose annotation belongs at the very end of the string instead.
func (d PlainDate) dateOnlyString() string {
	if d.year >= 0 && d.year <= 9999 {
		return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
	}
	sign := "+"
	if d.year < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%06d-%02d-%02d", sign, abs(d.year), int(d.month), d.day)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MinPlainDate returns the earliest representable date.
func MinPlainDate() PlainDate {
	y, m, d := decodeEpochDay(MinEpochDay)
	return PlainDateOf(y, Month(m), d)
}

// MaxPlainDate returns the latest representable date.
func MaxPlainDate() PlainDate {
	y, m, d := decodeEpochDay(MaxEpochDay)
	return PlainDateOf(y, Month(m), d)
}
