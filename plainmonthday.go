package temporal

import "fmt"

// referenceLeapYear is the ISO reference year used to anchor a
// PlainMonthDay's validation and ordering; 1972 is a leap year, so
// February 29 is always representable until re-projected onto a concrete
// year via ToPlainDate.
const referenceLeapYear = 1972

// PlainMonthDay identifies a recurring month-and-day, e.g. a birthday or
// anniversary, independent of year.
type PlainMonthDay struct {
	month Month
	day   int
	cal   Calendar
}

// PlainMonthDayOf returns the PlainMonthDay for the given month and day. It
// panics if the day does not exist in that month in any year (i.e. day > 29
// for February, or day exceeds the month's 30/31-day maximum).
func PlainMonthDayOf(month Month, day int) PlainMonthDay {
	md, err := TryPlainMonthDayOf(month, day)
	if err != nil {
		panic(err.Error())
	}
	return md
}

// TryPlainMonthDayOf is the non-panicking form of PlainMonthDayOf.
func TryPlainMonthDayOf(month Month, day int) (PlainMonthDay, error) {
	if month < January || month > December {
		return PlainMonthDay{}, newError(ErrKindRange, "month %d is out of range", int(month))
	}
	if day < 1 || day > daysInMonth(referenceLeapYear, month) {
		return PlainMonthDay{}, newError(ErrKindRange, "day %d is out of range for month %d", day, int(month))
	}
	return PlainMonthDay{month: month, day: day, cal: ISO8601}, nil
}

// Month returns the month, 1-12.
func (md PlainMonthDay) Month() Month { return md.month }

// Day returns the day of the month.
func (md PlainMonthDay) Day() int { return md.day }

// MonthCode returns the year-independent month identifier, "M01" through "M12".
func (md PlainMonthDay) MonthCode() string { return monthCode(md.month) }

// Calendar returns the calendar this value is expressed in.
func (md PlainMonthDay) Calendar() Calendar { return md.cal }

// ToPlainDate projects md onto a concrete year, re-validating the day
// against that year (so February 29 fails for a non-leap target year).
func (md PlainMonthDay) ToPlainDate(year int) (PlainDate, error) {
	return TryPlainDateOf(year, md.month, md.day)
}

// Compare returns -1, 0 or 1 according to whether md is before, equal to, or
// after md2, both projected onto the reference leap year.
func (md PlainMonthDay) Compare(md2 PlainMonthDay) int {
	a, _ := md.ToPlainDate(referenceLeapYear)
	b, _ := md2.ToPlainDate(referenceLeapYear)
	return a.Compare(b)
}

// Equal reports whether md and md2 identify the same month and day.
func (md PlainMonthDay) Equal(md2 PlainMonthDay) bool {
	return md.month == md2.month && md.day == md2.day
}

func (md PlainMonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d%s", int(md.month), md.day, calendarAnnotation(md.cal))
}
