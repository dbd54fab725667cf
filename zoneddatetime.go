package temporal

// ZonedDateTime is the tuple of an exact Instant, a TimeZone and a Calendar:
// the only type in the package that can answer "what time is it right now,
// here". Local fields are derived on demand, never stored, so arithmetic can
// re-resolve the offset across DST transitions rather than carrying a stale
// one.
type ZonedDateTime struct {
	instant Instant
	zone    TimeZone
	cal     Calendar
}

// ZonedDateTimeFromInstant pairs an Instant with a zone and calendar.
func ZonedDateTimeFromInstant(i Instant, zone TimeZone, cal Calendar) (ZonedDateTime, error) {
	if !cal.valid() {
		return ZonedDateTime{}, newError(ErrKindUnsupportedCalendar, "calendar %q is not supported", cal)
	}
	return ZonedDateTime{instant: i, zone: zone, cal: cal}, nil
}

// ZonedDateTimeFromPlainDateTime resolves a local wall-clock reading against
// zone, using disambiguation to pick among zero, one or two candidate
// instants.
func ZonedDateTimeFromPlainDateTime(dt PlainDateTime, zone TimeZone, cal Calendar, disambiguation Disambiguation) (ZonedDateTime, error) {
	if !cal.valid() {
		return ZonedDateTime{}, newError(ErrKindUnsupportedCalendar, "calendar %q is not supported", cal)
	}
	inst, err := zone.GetInstantFor(dt, disambiguation)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{instant: inst, zone: zone, cal: cal}, nil
}

// Instant returns the exact instant zdt represents.
func (zdt ZonedDateTime) Instant() Instant { return zdt.instant }

// TimeZone returns zdt's time zone.
func (zdt ZonedDateTime) TimeZone() TimeZone { return zdt.zone }

// Calendar returns zdt's calendar.
func (zdt ZonedDateTime) Calendar() Calendar { return zdt.cal }

// offsetNanoseconds returns the UTC offset in effect for zdt.
func (zdt ZonedDateTime) offsetNanoseconds() int64 {
	return zdt.zone.GetOffsetNanosecondsFor(zdt.instant)
}

// PlainDateTime projects zdt onto the local wall-clock reading in its zone.
func (zdt ZonedDateTime) PlainDateTime() PlainDateTime {
	localNsec := zdt.instant.nsec + zdt.offsetNanoseconds()
	epochDay := floorDiv(localNsec, nanosecondsPerDay)
	nsecOfDay := floorMod(localNsec, nanosecondsPerDay)
	y, m, d := decodeEpochDay(epochDay)
	date, err := TryPlainDateOf(y, Month(m), d)
	if err != nil {
		panic(err.Error())
	}
	date.cal = zdt.cal
	return PlainDateTime{date: date, time: PlainTime{nsec: nsecOfDay}}
}

// PlainDate returns the local date component of zdt.
func (zdt ZonedDateTime) PlainDate() PlainDate { return zdt.PlainDateTime().date }

// PlainTime returns the local time-of-day component of zdt.
func (zdt ZonedDateTime) PlainTime() PlainTime { return zdt.PlainDateTime().time }

// Compare returns -1, 0 or 1 according to whether zdt is before, equal to, or after zdt2.
func (zdt ZonedDateTime) Compare(zdt2 ZonedDateTime) int { return zdt.instant.Compare(zdt2.instant) }

// Equal reports whether zdt and zdt2 identify the same instant, zone and calendar.
func (zdt ZonedDateTime) Equal(zdt2 ZonedDateTime) bool {
	return zdt.instant.Equal(zdt2.instant) && zdt.zone.ID() == zdt2.zone.ID() && zdt.cal == zdt2.cal
}

// WithTimeZone returns a copy of zdt reinterpreted in a different zone,
// keeping the same Instant (so the same absolute moment, a different wall clock).
func (zdt ZonedDateTime) WithTimeZone(zone TimeZone) ZonedDateTime {
	zdt.zone = zone
	return zdt
}

// Add applies dur to zdt in two phases: the calendar part
// (years/months/weeks/days) is applied first to the PlainDateTime projection
// and re-resolved through the time zone with disambiguation; only then is
// the time part added to the re-resolved instant. This order means adding
// "1 day" across a DST transition produces a result 23 or 25 real hours
// later, not a fixed 24. A time-only duration skips the projection entirely
// and shifts the instant directly, so the local hour may change across DST.
func (zdt ZonedDateTime) Add(dur Duration, overflow Overflow, disambiguation Disambiguation) (ZonedDateTime, error) {
	if err := overflow.validate(); err != nil {
		return ZonedDateTime{}, err
	}
	if err := disambiguation.validate(); err != nil {
		return ZonedDateTime{}, err
	}

	timeNsec, err := dur.timePartNanoseconds()
	if err != nil {
		return ZonedDateTime{}, err
	}

	base := zdt.instant
	if dur.Years != 0 || dur.Months != 0 || dur.Weeks != 0 || dur.Days != 0 {
		local := zdt.PlainDateTime()
		calOnly := Duration{Years: dur.Years, Months: dur.Months, Weeks: dur.Weeks, Days: dur.Days}
		shiftedDate, err := local.date.Add(calOnly, overflow)
		if err != nil {
			return ZonedDateTime{}, err
		}
		base, err = zdt.zone.GetInstantFor(OfDateAndTime(shiftedDate, local.time), disambiguation)
		if err != nil {
			return ZonedDateTime{}, err
		}
	}

	newInstant, err := base.Add(Duration{Nanoseconds: timeNsec})
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{instant: newInstant, zone: zdt.zone, cal: zdt.cal}, nil
}

// Subtract returns zdt minus dur, i.e. zdt.Add(dur.Negated(), ...).
func (zdt ZonedDateTime) Subtract(dur Duration, overflow Overflow, disambiguation Disambiguation) (ZonedDateTime, error) {
	neg, err := dur.Negated()
	if err != nil {
		return ZonedDateTime{}, err
	}
	return zdt.Add(neg, overflow, disambiguation)
}

// Until returns the Duration from zdt to other. A time-only largestUnit
// differences the instants exactly; a calendar largestUnit differences the
// local PlainDateTime projections in zdt's zone.
func (zdt ZonedDateTime) Until(other ZonedDateTime, largestUnit Unit) (Duration, error) {
	if err := largestUnit.validate(); err != nil {
		return Duration{}, err
	}
	if !largestUnit.isCalendarUnit() {
		h, mi, s, ms, us, ns := balanceNanoseconds(other.instant.nsec-zdt.instant.nsec, largestUnit)
		return NewDuration(0, 0, 0, 0, h, mi, s, ms, us, ns)
	}

	a, b := zdt.PlainDateTime(), other.PlainDateTime()
	return a.Until(b, largestUnit)
}

// Since returns the duration from other to zdt, i.e. other.Until(zdt).
func (zdt ZonedDateTime) Since(other ZonedDateTime, largestUnit Unit) (Duration, error) {
	return other.Until(zdt, largestUnit)
}

// Round rounds zdt's Instant to the nearest multiple of increment smallestUnit.
func (zdt ZonedDateTime) Round(smallestUnit Unit, increment int, mode RoundingMode) (ZonedDateTime, error) {
	rounded, err := zdt.instant.Round(smallestUnit, increment, mode)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{instant: rounded, zone: zdt.zone, cal: zdt.cal}, nil
}

// StartOfDay returns the ZonedDateTime for local midnight on zdt's calendar
// date, resolved with Compatible disambiguation (relevant when local
// midnight itself falls in a DST gap, as it does in some zones).
func (zdt ZonedDateTime) StartOfDay() (ZonedDateTime, error) {
	midnight := OfDateAndTime(zdt.PlainDate(), MidnightPlainTime())
	return ZonedDateTimeFromPlainDateTime(midnight, zdt.zone, zdt.cal, Compatible)
}

// HoursInDay returns the length of zdt's local calendar day in hours,
// accounting for a DST transition occurring that day (23 or 25 in zones that
// observe DST, 24 otherwise).
func (zdt ZonedDateTime) HoursInDay() (float64, error) {
	today, err := zdt.StartOfDay()
	if err != nil {
		return 0, err
	}
	nextMidnight := OfDateAndTime(mustAddDays(zdt.PlainDate(), 1), MidnightPlainTime())
	tomorrow, err := ZonedDateTimeFromPlainDateTime(nextMidnight, zdt.zone, zdt.cal, Compatible)
	if err != nil {
		return 0, err
	}
	return float64(tomorrow.instant.nsec-today.instant.nsec) / float64(ExtentHour), nil
}

func mustAddDays(d PlainDate, days int64) PlainDate {
	out, err := d.Add(Duration{Days: days}, Constrain)
	if err != nil {
		panic(err.Error())
	}
	return out
}

func (zdt ZonedDateTime) String() string {
	return FormatZonedDateTime(zdt)
}
