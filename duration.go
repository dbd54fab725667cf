package temporal

// Duration is a ten-component signed quantity of calendar and clock units,
// with the invariant that every non-zero component shares a common sign.
// Years and months have no fixed nanosecond length, so operations involving
// them take a relativeTo anchor; Balance, Round and Total treat weeks and
// days as fixed 168h/24h spans, while CompareDurations takes relativeTo
// whenever any of years through days is non-zero. Clock components (hours
// and below) are exact.
type Duration struct {
	Years, Months, Weeks, Days                                       int64
	Hours, Minutes, Seconds, Milliseconds, Microseconds, Nanoseconds int64
}

// NewDuration constructs a Duration, validating the sign invariant: every
// non-zero component must share the same sign as every other non-zero component.
func NewDuration(years, months, weeks, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds int64) (Duration, error) {
	d := Duration{
		Years: years, Months: months, Weeks: weeks, Days: days,
		Hours: hours, Minutes: minutes, Seconds: seconds,
		Milliseconds: milliseconds, Microseconds: microseconds, Nanoseconds: nanoseconds,
	}
	if err := d.checkSign(); err != nil {
		return Duration{}, err
	}
	return d, nil
}

// DurationOf is the panicking form of NewDuration.
func DurationOf(years, months, weeks, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds int64) Duration {
	d, err := NewDuration(years, months, weeks, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d Duration) components() [10]int64 {
	return [10]int64{d.Years, d.Months, d.Weeks, d.Days, d.Hours, d.Minutes, d.Seconds, d.Milliseconds, d.Microseconds, d.Nanoseconds}
}

func (d Duration) checkSign() error {
	s := 0
	for _, c := range d.components() {
		if c == 0 {
			continue
		}
		cs := sign(c)
		if s == 0 {
			s = cs
		} else if cs != s {
			return newError(ErrKindInvalidDuration, "duration components must share a common sign")
		}
	}
	return nil
}

// Sign returns -1, 0 or +1 according to the sign shared by d's non-zero
// components (they are guaranteed to agree, per the type's invariant).
func (d Duration) Sign() int {
	for _, c := range d.components() {
		if c != 0 {
			return sign(c)
		}
	}
	return 0
}

// IsBlank reports whether every component of d is zero.
func (d Duration) IsBlank() bool {
	return d.Sign() == 0
}

// Negated returns a Duration with every component negated.
func (d Duration) Negated() (Duration, error) {
	return NewDuration(-d.Years, -d.Months, -d.Weeks, -d.Days, -d.Hours, -d.Minutes, -d.Seconds, -d.Milliseconds, -d.Microseconds, -d.Nanoseconds)
}

// Equal reports whether d and d2 have identical components.
func (d Duration) Equal(d2 Duration) bool {
	return d == d2
}

// timePartNanoseconds returns the exact nanosecond value of d's time
// components (hours and below), detecting int64 overflow.
func (d Duration) timePartNanoseconds() (int64, error) {
	var total int64
	var under, over bool
	for _, term := range []int64{
		d.Hours * int64(ExtentHour),
		d.Minutes * int64(ExtentMinute),
		d.Seconds * int64(ExtentSecond),
		d.Milliseconds * int64(ExtentMillisecond),
		d.Microseconds * int64(ExtentMicrosecond),
		d.Nanoseconds,
	} {
		if total, under, over = addInt64(total, term); under || over {
			return 0, newError(ErrKindArithmetic, "time components overflow")
		}
	}
	return total, nil
}

// balanceNanoseconds redistributes an exact nanosecond quantity (which may be
// negative) into hours-and-below components, with overflow promoted up to
// largestUnit. largestUnit must not be a calendar unit.
func balanceNanoseconds(total int64, largestUnit Unit) (hours, minutes, seconds, millis, micros, nanos int64) {
	neg := total < 0
	mag := total
	if neg {
		mag = -mag
	}

	units := []struct {
		unit Unit
		size int64
		dst  *int64
	}{
		{UnitHour, int64(ExtentHour), &hours},
		{UnitMinute, int64(ExtentMinute), &minutes},
		{UnitSecond, int64(ExtentSecond), &seconds},
		{UnitMillisecond, int64(ExtentMillisecond), &millis},
		{UnitMicrosecond, int64(ExtentMicrosecond), &micros},
		{UnitNanosecond, 1, &nanos},
	}

	for _, u := range units {
		if u.unit == largestUnit {
			*u.dst = mag / u.size
			mag %= u.size
			continue
		}
		if u.unit > largestUnit {
			continue // coarser than largestUnit, folds into its bucket above.
		}
		*u.dst = mag / u.size
		mag %= u.size
	}

	if neg {
		hours, minutes, seconds, millis, micros, nanos = -hours, -minutes, -seconds, -millis, -micros, -nanos
	}
	return
}

// fixedLengthNanoseconds totals weeks, days and a time-part nanosecond
// count at the fixed 24h day length, detecting int64 overflow. Callers
// must have ruled out month and year components first.
func fixedLengthNanoseconds(weeks, days, timeNsec int64) (int64, error) {
	wholeDays, under, over := mulInt64(weeks, 7)
	if !under && !over {
		if wholeDays, under, over = addInt64(wholeDays, days); !under && !over {
			var daysNsec int64
			if daysNsec, under, over = mulInt64(wholeDays, nanosecondsPerDay); !under && !over {
				var total int64
				if total, under, over = addInt64(daysNsec, timeNsec); !under && !over {
					return total, nil
				}
			}
		}
	}
	return 0, newError(ErrKindArithmetic, "duration components overflow")
}

// Balance rewrites d so each component respects its natural carry threshold,
// promoting overflow upward up to largestUnit. A relativeTo anchor is
// required only when a unit with no fixed length is involved: either d
// carries a Year/Month component, or largestUnit names Month or Year. Day
// and Week have a fixed 24h/168h length here and need no anchor.
func (d Duration) Balance(largestUnit Unit, relativeTo *PlainDate) (Duration, error) {
	if err := largestUnit.validate(); err != nil {
		return Duration{}, err
	}

	timeNsec, err := d.timePartNanoseconds()
	if err != nil {
		return Duration{}, err
	}

	needsAnchor := d.Years != 0 || d.Months != 0 || largestUnit == UnitMonth || largestUnit == UnitYear
	if !needsAnchor {
		total, err := fixedLengthNanoseconds(d.Weeks, d.Days, timeNsec)
		if err != nil {
			return Duration{}, err
		}
		if largestUnit == UnitDay || largestUnit == UnitWeek {
			// Truncated division keeps every component on the side of zero
			// the whole duration is on.
			wholeDays := total / nanosecondsPerDay
			remainderNsec := total % nanosecondsPerDay
			var weeks, days int64
			if largestUnit == UnitWeek {
				weeks, days = wholeDays/7, wholeDays%7
			} else {
				days = wholeDays
			}
			h, mi, s, ms, us, ns := balanceNanoseconds(remainderNsec, UnitHour)
			return NewDuration(0, 0, weeks, days, h, mi, s, ms, us, ns)
		}
		h, mi, s, ms, us, ns := balanceNanoseconds(total, largestUnit)
		return NewDuration(0, 0, 0, 0, h, mi, s, ms, us, ns)
	}
	if relativeTo == nil {
		return Duration{}, newError(ErrKindInvalidDuration, "balancing a month- or year-unit duration requires relativeTo")
	}

	midEpoch, err := applyDatePart(relativeTo.year, relativeTo.month, relativeTo.day, d.Years, d.Months, d.Weeks, d.Days, Constrain)
	if err != nil {
		return Duration{}, err
	}

	wholeDays := timeNsec / nanosecondsPerDay
	remainderNsec := timeNsec % nanosecondsPerDay
	finalEpoch := midEpoch + wholeDays
	if !epochDayInRange(finalEpoch) {
		return Duration{}, newError(ErrKindArithmetic, "result is out of range")
	}

	fy, fm, fd := decodeEpochDay(finalEpoch)
	finalDate, err := TryPlainDateOf(fy, Month(fm), fd)
	if err != nil {
		return Duration{}, err
	}

	var years, months, weeks, days int64
	if largestUnit.isCalendarUnit() {
		years, months, weeks, days = calendarUntil(*relativeTo, finalDate, largestUnit)
	} else {
		days = finalEpoch - relativeTo.epochDay()
		remainderNsec += days * nanosecondsPerDay
		days = 0
	}

	h, mi, s, ms, us, ns := balanceNanoseconds(remainderNsec, minUnit(largestUnit, UnitHour))
	return NewDuration(years, months, weeks, days, h, mi, s, ms, us, ns)
}

func (d Duration) String() string {
	return FormatDuration(d)
}

func minUnit(a, b Unit) Unit {
	if a < b {
		return a
	}
	return b
}

// Round rounds d to the nearest multiple of opts.RoundingIncrement smallest
// units, using opts.RoundingMode, then rebalances up to opts.LargestUnit (or,
// if unset, the larger of opts.SmallestUnit and the largest unit already
// present in d).
func (d Duration) Round(opts RoundOptions) (Duration, error) {
	if err := opts.validate(); err != nil {
		return Duration{}, err
	}

	largest := opts.LargestUnit
	if !opts.HasLargestUnit {
		largest = d.largestNonZeroUnit()
		if largest < opts.SmallestUnit {
			largest = opts.SmallestUnit
		}
	}

	balanced, err := d.Balance(largest, opts.RelativeTo)
	if err != nil {
		return Duration{}, err
	}

	num, den, err := balanced.rationalIn(opts.SmallestUnit, opts.RelativeTo)
	if err != nil {
		return Duration{}, err
	}

	neg := num < 0
	mag := num
	if neg {
		mag = -mag
	}
	rounded := roundQuantity(mag, den, int64(opts.RoundingIncrement), opts.RoundingMode, neg)
	if neg {
		rounded = -rounded
	}

	rebuilt, err := balanced.fromSmallestUnitCount(rounded, opts.SmallestUnit)
	if err != nil {
		return Duration{}, err
	}
	return rebuilt.Balance(largest, opts.RelativeTo)
}

func (d Duration) largestNonZeroUnit() Unit {
	order := []struct {
		unit Unit
		val  int64
	}{
		{UnitYear, d.Years}, {UnitMonth, d.Months}, {UnitWeek, d.Weeks}, {UnitDay, d.Days},
		{UnitHour, d.Hours}, {UnitMinute, d.Minutes}, {UnitSecond, d.Seconds},
		{UnitMillisecond, d.Milliseconds}, {UnitMicrosecond, d.Microseconds}, {UnitNanosecond, d.Nanoseconds},
	}
	for _, o := range order {
		if o.val != 0 {
			return o.unit
		}
	}
	return UnitNanosecond
}

// rationalIn expresses d as an exact numerator/denominator count of unit,
// requiring relativeTo whenever unit is month or year or d has non-zero years
// or months.
func (d Duration) rationalIn(unit Unit, relativeTo *PlainDate) (num, den int64, err error) {
	if err := unit.validate(); err != nil {
		return 0, 0, err
	}

	timeNsec, err := d.timePartNanoseconds()
	if err != nil {
		return 0, 0, err
	}

	// Same anchor policy as Balance: Day and Week are fixed-length, so only
	// month or year involvement on either side forces a relativeTo.
	if d.Years == 0 && d.Months == 0 && unit != UnitMonth && unit != UnitYear {
		total, err := fixedLengthNanoseconds(d.Weeks, d.Days, timeNsec)
		if err != nil {
			return 0, 0, err
		}
		switch unit {
		case UnitDay:
			return total, nanosecondsPerDay, nil
		case UnitWeek:
			return total, 7 * nanosecondsPerDay, nil
		default:
			return total, nanosecondsPerUnit(unit), nil
		}
	}

	if relativeTo == nil {
		return 0, 0, newError(ErrKindInvalidDuration, "expressing a month- or year-unit duration in %v requires relativeTo", unit)
	}

	midEpoch, err := applyDatePart(relativeTo.year, relativeTo.month, relativeTo.day, d.Years, d.Months, d.Weeks, d.Days, Constrain)
	if err != nil {
		return 0, 0, err
	}
	relEpoch := relativeTo.epochDay()

	switch unit {
	case UnitDay, UnitWeek:
		totalNsec := (midEpoch-relEpoch)*nanosecondsPerDay + timeNsec
		return totalNsec, nanosecondsPerUnit(UnitHour) * 24 * (map[Unit]int64{UnitDay: 1, UnitWeek: 7}[unit]), nil
	case UnitHour, UnitMinute, UnitSecond, UnitMillisecond, UnitMicrosecond, UnitNanosecond:
		totalNsec := (midEpoch-relEpoch)*nanosecondsPerDay + timeNsec
		return totalNsec, nanosecondsPerUnit(unit), nil
	default: // UnitMonth, UnitYear
		fy, fm, fd := decodeEpochDay(midEpoch)
		finalDate, err := TryPlainDateOf(fy, Month(fm), fd)
		if err != nil {
			return 0, 0, err
		}
		whole, reached := calendarWholeUnits(*minPD(relativeTo, &finalDate), *maxPD(relativeTo, &finalDate), unit)
		neg := relativeTo.Compare(finalDate) > 0
		ry, rm, rd := yearMonthDayOf(reached)
		nextEpoch := calendarAdvance(ry, rm, rd, 1, unit)
		spanDen := nextEpoch - reached
		spanNum := finalDate.epochDay() - reached
		if neg {
			spanNum = reached - finalDate.epochDay()
		}
		num = whole*spanDen + spanNum
		if neg {
			num = -num
		}
		den = spanDen
		return num, den, nil
	}
}

func yearMonthDayOf(epoch int64) (int, Month, int) {
	y, m, d := decodeEpochDay(epoch)
	return y, Month(m), d
}

func minPD(a, b *PlainDate) *PlainDate {
	if a.Compare(*b) <= 0 {
		return a
	}
	return b
}

func maxPD(a, b *PlainDate) *PlainDate {
	if a.Compare(*b) >= 0 {
		return a
	}
	return b
}

// fromSmallestUnitCount rebuilds a Duration carrying exactly count whole
// units of unit (plus d's existing components above unit are discarded,
// since Round's caller always rebalances afterward).
func (d Duration) fromSmallestUnitCount(count int64, unit Unit) (Duration, error) {
	switch unit {
	case UnitYear:
		return NewDuration(count, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	case UnitMonth:
		return NewDuration(0, count, 0, 0, 0, 0, 0, 0, 0, 0)
	case UnitWeek:
		return NewDuration(0, 0, count, 0, 0, 0, 0, 0, 0, 0)
	case UnitDay:
		return NewDuration(0, 0, 0, count, 0, 0, 0, 0, 0, 0)
	default:
		nsec := count * nanosecondsPerUnit(unit)
		return NewDuration(0, 0, 0, 0, 0, 0, 0, 0, 0, nsec)
	}
}

// Total returns d expressed as a single floating point quantity in unit,
// requiring relativeTo whenever month or year units are involved.
func (d Duration) Total(opts TotalOptions) (float64, error) {
	num, den, err := d.rationalIn(opts.Unit, opts.RelativeTo)
	if err != nil {
		return 0, err
	}
	return float64(num) / float64(den), nil
}

// CompareDurations compares a and b. Calendar-free durations compare by
// exact nanosecond value; if either contains a calendar unit, relativeTo is
// required and comparison is by the point each lands on when applied to
// relativeTo.
func CompareDurations(a, b Duration, relativeTo *PlainDate) (int, error) {
	aCal := a.Years != 0 || a.Months != 0 || a.Weeks != 0 || a.Days != 0
	bCal := b.Years != 0 || b.Months != 0 || b.Weeks != 0 || b.Days != 0

	if !aCal && !bCal {
		an, err := a.timePartNanoseconds()
		if err != nil {
			return 0, err
		}
		bn, err := b.timePartNanoseconds()
		if err != nil {
			return 0, err
		}
		return sign(an - bn), nil
	}

	if relativeTo == nil {
		return 0, newError(ErrKindInvalidDuration, "comparing calendar-unit durations requires relativeTo")
	}

	ea, err := a.epochNanosecondsFrom(*relativeTo)
	if err != nil {
		return 0, err
	}
	eb, err := b.epochNanosecondsFrom(*relativeTo)
	if err != nil {
		return 0, err
	}
	return sign(ea - eb), nil
}

// epochNanosecondsFrom applies d to relativeTo and returns the resulting
// offset, in nanoseconds, from relativeTo's own midnight.
func (d Duration) epochNanosecondsFrom(relativeTo PlainDate) (int64, error) {
	timeNsec, err := d.timePartNanoseconds()
	if err != nil {
		return 0, err
	}
	midEpoch, err := applyDatePart(relativeTo.year, relativeTo.month, relativeTo.day, d.Years, d.Months, d.Weeks, d.Days, Constrain)
	if err != nil {
		return 0, err
	}
	return (midEpoch-relativeTo.epochDay())*nanosecondsPerDay + timeNsec, nil
}
