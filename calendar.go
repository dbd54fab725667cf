package temporal

import "fmt"

// Calendar identifies the calendar system a date's year field is measured
// in. Every supported calendar shares ISO month/day structure
// (isocalendar.go) - only year numbering, era assignment and era-year
// computation differ - so era mapping is a pure function of
// (Calendar, PlainDate) rather than a per-calendar arithmetic engine.
type Calendar string

// The supported calendar identifiers.
const (
	ISO8601  Calendar = "iso8601"
	Gregory  Calendar = "gregory"
	Buddhist Calendar = "buddhist"
	ROC      Calendar = "roc"
	Japanese Calendar = "japanese"
)

func (c Calendar) valid() bool {
	switch c {
	case ISO8601, Gregory, Buddhist, ROC, Japanese:
		return true
	default:
		return false
	}
}

// String returns the calendar's identifier.
func (c Calendar) String() string { return string(c) }

// Equals reports whether c and c2 identify the same calendar system.
func (c Calendar) Equals(c2 Calendar) bool { return c == c2 }

// ParseCalendar validates an identifier string (as found in a [u-ca=<id>] annotation).
func ParseCalendar(id string) (Calendar, error) {
	c := Calendar(id)
	if !c.valid() {
		return "", newError(ErrKindUnsupportedCalendar, "calendar %q is not supported", id)
	}
	return c, nil
}

// MonthsInYear returns the number of months in any year of c. Every
// supported calendar uses the ISO twelve-month structure.
func (c Calendar) MonthsInYear() int { return 12 }

// MonthCode returns the year-independent month identifier for d, "M01"
// through "M12".
func (c Calendar) MonthCode(d PlainDate) string { return monthCode(d.month) }

func monthCode(m Month) string { return fmt.Sprintf("M%02d", int(m)) }

// Era returns the era identifier for d under c, and false if c has no era concept (iso8601).
func (c Calendar) Era(d PlainDate) (string, bool) {
	switch c {
	case Gregory:
		if d.year >= 1 {
			return "ce", true
		}
		return "bce", true
	case Buddhist:
		return "be", true
	case ROC:
		if d.year >= 1912 {
			return "roc", true
		}
		return "before-roc", true
	case Japanese:
		return japaneseEraName(d), true
	default:
		return "", false
	}
}

// EraYear returns the year numbered within c's era for d, and false if c has no era concept.
func (c Calendar) EraYear(d PlainDate) (int, bool) {
	switch c {
	case Gregory:
		if d.year >= 1 {
			return d.year, true
		}
		return 1 - d.year, true
	case Buddhist:
		return d.year + 543, true
	case ROC:
		if d.year >= 1912 {
			return d.year - 1911, true
		}
		return 1912 - d.year, true
	case Japanese:
		return japaneseEraYear(d), true
	default:
		return 0, false
	}
}

// DisplayYear returns the year as it would be displayed in c. Unlike
// EraYear this never counts backwards from an era boundary: before-ROC
// years display as zero or negative ROC years, not as a separate
// ascending count.
func (c Calendar) DisplayYear(d PlainDate) int {
	switch c {
	case Buddhist:
		return d.year + 543
	case ROC:
		return d.year - 1911
	case Japanese:
		return japaneseEraYear(d)
	default:
		return d.year
	}
}

// calendarFieldNames is the closed set of field names recognized by
// Fields and the FromFields constructors.
var calendarFieldNames = map[string]bool{
	"year": true, "month": true, "day": true,
	"hour": true, "minute": true, "second": true,
	"millisecond": true, "microsecond": true, "nanosecond": true,
	"era": true, "eraYear": true, "monthCode": true,
}

// Fields validates names against the recognized field set and returns
// them, with "era" and "eraYear" appended whenever "year" is requested of
// an era-bearing calendar.
func (c Calendar) Fields(names []string) ([]string, error) {
	out := make([]string, 0, len(names)+2)
	sawYear := false
	for _, n := range names {
		if !calendarFieldNames[n] {
			return nil, newError(ErrKindInvalidOption, "unrecognized field name %q", n)
		}
		if n == "year" {
			sawYear = true
		}
		out = append(out, n)
	}
	if sawYear && c != ISO8601 {
		out = append(out, "era", "eraYear")
	}
	return out, nil
}

// MergeFields returns a copy of base with additional's entries written
// over it. Neither input map is modified.
func (c Calendar) MergeFields(base, additional map[string]int) map[string]int {
	out := make(map[string]int, len(base)+len(additional))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range additional {
		out[k] = v
	}
	return out
}

// DateFromFields builds a PlainDate in c from a field record. The year,
// month and day fields are required; overflow controls how an out-of-range
// day is handled.
func (c Calendar) DateFromFields(fields map[string]int, overflow Overflow) (PlainDate, error) {
	if err := overflow.validate(); err != nil {
		return PlainDate{}, err
	}
	year, month, err := requireFields(fields, "year", "month")
	if err != nil {
		return PlainDate{}, err
	}
	day, ok := fields["day"]
	if !ok {
		return PlainDate{}, newError(ErrKindMissingField, "field %q is required", "day")
	}

	if overflow == Constrain {
		if month < 1 {
			month = 1
		} else if month > 12 {
			month = 12
		}
		day = constrainDay(year, Month(month), day)
	}
	d, err := TryPlainDateOf(year, Month(month), day)
	if err != nil {
		return PlainDate{}, err
	}
	return d.WithCalendar(c)
}

// YearMonthFromFields builds a PlainYearMonth in c from a field record
// carrying year and month.
func (c Calendar) YearMonthFromFields(fields map[string]int) (PlainYearMonth, error) {
	year, month, err := requireFields(fields, "year", "month")
	if err != nil {
		return PlainYearMonth{}, err
	}
	ym, err := TryPlainYearMonthOf(year, Month(month))
	if err != nil {
		return PlainYearMonth{}, err
	}
	if !c.valid() {
		return PlainYearMonth{}, newError(ErrKindUnsupportedCalendar, "calendar %q is not supported", c)
	}
	ym.cal = c
	return ym, nil
}

// MonthDayFromFields builds a PlainMonthDay in c from a field record
// carrying month and day.
func (c Calendar) MonthDayFromFields(fields map[string]int) (PlainMonthDay, error) {
	month, day, err := requireFields(fields, "month", "day")
	if err != nil {
		return PlainMonthDay{}, err
	}
	md, err := TryPlainMonthDayOf(Month(month), day)
	if err != nil {
		return PlainMonthDay{}, err
	}
	if !c.valid() {
		return PlainMonthDay{}, newError(ErrKindUnsupportedCalendar, "calendar %q is not supported", c)
	}
	md.cal = c
	return md, nil
}

func requireFields(fields map[string]int, a, b string) (int, int, error) {
	for _, name := range []string{a, b} {
		if _, ok := fields[name]; !ok {
			return 0, 0, newError(ErrKindMissingField, "field %q is required", name)
		}
	}
	return fields[a], fields[b], nil
}

// DateAdd applies dur's date-part to d under c.
func (c Calendar) DateAdd(d PlainDate, dur Duration, overflow Overflow) (PlainDate, error) {
	withCal, err := d.WithCalendar(c)
	if err != nil {
		return PlainDate{}, err
	}
	return withCal.Add(dur, overflow)
}

// DateUntil returns the calendar-aware difference from a to b under c.
func (c Calendar) DateUntil(a, b PlainDate, largestUnit Unit) (Duration, error) {
	if !c.valid() {
		return Duration{}, newError(ErrKindUnsupportedCalendar, "calendar %q is not supported", c)
	}
	return a.Until(b, largestUnit)
}

// japaneseEra is one entry of the fixed emperor-reign reference table.
type japaneseEra struct {
	name  string
	start int64 // epoch day the era begins on
}

var japaneseEras = []japaneseEra{
	{"meiji", encodeEpochDay(1868, 10, 23)},
	{"taisho", encodeEpochDay(1912, 7, 30)},
	{"showa", encodeEpochDay(1926, 12, 25)},
	{"heisei", encodeEpochDay(1989, 1, 8)},
	{"reiwa", encodeEpochDay(2019, 5, 1)},
}

func japaneseEraName(d PlainDate) string {
	epoch := d.epochDay()
	for i := len(japaneseEras) - 1; i >= 0; i-- {
		if epoch >= japaneseEras[i].start {
			return japaneseEras[i].name
		}
	}
	return "japanese" // before Meiji 1: absolute year, no named era.
}

func japaneseEraYear(d PlainDate) int {
	epoch := d.epochDay()
	for i := len(japaneseEras) - 1; i >= 0; i-- {
		if epoch >= japaneseEras[i].start {
			startYear, _, _ := decodeEpochDay(japaneseEras[i].start)
			return d.year - startYear + 1
		}
	}
	return d.year
}
