package temporal

import (
	"regexp"
	"strconv"
	"strings"
)

// ISO 8601 parsing. Each type's grammar has exactly one shape, so each
// gets one anchored pattern with named capture groups rather than a
// layout-driven scanner. Structural mismatches raise ErrParse; range
// violations propagate from the validating constructors unchanged.

var (
	plainDateRe = regexp.MustCompile(`^(?P<sign>[+-])?(?P<year>\d{4}|\d{6})-(?P<month>\d{2})-(?P<day>\d{2})(?:\[u-ca=(?P<cal>[a-z0-9]+)\])?$`)
	plainTimeRe = regexp.MustCompile(`^(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?:\.(?P<frac>\d{1,9}))?$`)
	yearMonthRe = regexp.MustCompile(`^(?P<sign>[+-])?(?P<year>\d{4}|\d{6})-(?P<month>\d{2})(?:\[u-ca=(?P<cal>[a-z0-9]+)\])?$`)
	monthDayRe  = regexp.MustCompile(`^--(?P<month>\d{2})-(?P<day>\d{2})(?:\[u-ca=(?P<cal>[a-z0-9]+)\])?$`)
	durationRe  = regexp.MustCompile(`^(?P<sign>-)?P(?:(?P<years>\d+)Y)?(?:(?P<months>\d+)M)?(?:(?P<weeks>\d+)W)?(?:(?P<days>\d+)D)?(?:T(?:(?P<hours>\d+)H)?(?:(?P<minutes>\d+)M)?(?:(?P<seconds>\d+)(?:\.(?P<secfrac>\d{1,9}))?S)?)?$`)

	dateTimePrefix = `(?P<sign>[+-])?(?P<year>\d{4}|\d{6})-(?P<month>\d{2})-(?P<day>\d{2})T(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?:\.(?P<frac>\d{1,9}))?`
	instantRe      = regexp.MustCompile(`^` + dateTimePrefix + `(?P<offset>Z|[+-]\d{2}:\d{2})$`)
	zonedRe        = regexp.MustCompile(`^` + dateTimePrefix + `(?P<offset>Z|[+-]\d{2}:\d{2})\[(?P<zone>[^\]]+)\](?:\[u-ca=(?P<cal>[a-z0-9]+)\])?$`)

	calAnnotationRe = regexp.MustCompile(`^\[u-ca=(?P<cal>[a-z0-9]+)\]$`)
)

func namedGroups(re *regexp.Regexp, s string) (map[string]string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out, true
}

// ParsePlainDate parses a string of the form (+|-)?YYYY(YY)?-MM-DD, with an
// optional trailing [u-ca=<id>] annotation.
func ParsePlainDate(s string) (PlainDate, error) {
	g, ok := namedGroups(plainDateRe, s)
	if !ok {
		return PlainDate{}, newError(ErrKindParse, "%q is not a valid PlainDate", s)
	}
	year, err := parseSignedYear(g["sign"], g["year"])
	if err != nil {
		return PlainDate{}, err
	}
	month, _ := strconv.Atoi(g["month"])
	day, _ := strconv.Atoi(g["day"])
	d, err := TryPlainDateOf(year, Month(month), day)
	if err != nil {
		return PlainDate{}, err
	}
	if cal, ok := g["cal"]; ok && cal != "" {
		d, err = d.WithCalendar(Calendar(cal))
		if err != nil {
			return PlainDate{}, err
		}
	}
	return d, nil
}

// ParsePlainTime parses a string of the form HH:MM:SS(.fraction)?.
func ParsePlainTime(s string) (PlainTime, error) {
	g, ok := namedGroups(plainTimeRe, s)
	if !ok {
		return PlainTime{}, newError(ErrKindParse, "%q is not a valid PlainTime", s)
	}
	hour, _ := strconv.Atoi(g["hour"])
	minute, _ := strconv.Atoi(g["minute"])
	second, _ := strconv.Atoi(g["second"])
	ms, us, ns := parseFractionDigits(g["frac"])
	return TryPlainTimeOf(hour, minute, second, ms, us, ns)
}

// ParsePlainDateTime parses a string of the form <PlainDate>T<PlainTime>
// with an optional trailing [u-ca=<id>] annotation.
func ParsePlainDateTime(s string) (PlainDateTime, error) {
	datePart, timePart, ok := strings.Cut(s, "T")
	if !ok {
		return PlainDateTime{}, newError(ErrKindParse, "%q is not a valid PlainDateTime", s)
	}

	cal := ""
	if i := strings.LastIndex(timePart, "["); i >= 0 {
		annotation := timePart[i:]
		timePart = timePart[:i]
		g, ok := namedGroups(calAnnotationRe, annotation)
		if !ok {
			return PlainDateTime{}, newError(ErrKindParse, "%q is not a valid PlainDateTime", s)
		}
		cal = g["cal"]
	}

	date, err := ParsePlainDate(datePart)
	if err != nil {
		return PlainDateTime{}, err
	}
	time, err := ParsePlainTime(timePart)
	if err != nil {
		return PlainDateTime{}, err
	}
	if cal != "" {
		date, err = date.WithCalendar(Calendar(cal))
		if err != nil {
			return PlainDateTime{}, err
		}
	}
	return OfDateAndTime(date, time), nil
}

// ParsePlainYearMonth parses a string of the form YYYY-MM.
func ParsePlainYearMonth(s string) (PlainYearMonth, error) {
	g, ok := namedGroups(yearMonthRe, s)
	if !ok {
		return PlainYearMonth{}, newError(ErrKindParse, "%q is not a valid PlainYearMonth", s)
	}
	year, err := parseSignedYear(g["sign"], g["year"])
	if err != nil {
		return PlainYearMonth{}, err
	}
	month, _ := strconv.Atoi(g["month"])
	ym, err := TryPlainYearMonthOf(year, Month(month))
	if err != nil {
		return PlainYearMonth{}, err
	}
	if id, ok := g["cal"]; ok && id != "" {
		cal, err := ParseCalendar(id)
		if err != nil {
			return PlainYearMonth{}, err
		}
		ym.cal = cal
	}
	return ym, nil
}

// ParsePlainMonthDay parses a string of the form --MM-DD.
func ParsePlainMonthDay(s string) (PlainMonthDay, error) {
	g, ok := namedGroups(monthDayRe, s)
	if !ok {
		return PlainMonthDay{}, newError(ErrKindParse, "%q is not a valid PlainMonthDay", s)
	}
	month, _ := strconv.Atoi(g["month"])
	day, _ := strconv.Atoi(g["day"])
	md, err := TryPlainMonthDayOf(Month(month), day)
	if err != nil {
		return PlainMonthDay{}, err
	}
	if id, ok := g["cal"]; ok && id != "" {
		cal, err := ParseCalendar(id)
		if err != nil {
			return PlainMonthDay{}, err
		}
		md.cal = cal
	}
	return md, nil
}

// dateTimeFromGroups rebuilds the PlainDateTime encoded by the named groups
// shared by instantRe and zonedRe.
func dateTimeFromGroups(g map[string]string) (PlainDateTime, error) {
	year, err := parseSignedYear(g["sign"], g["year"])
	if err != nil {
		return PlainDateTime{}, err
	}
	month, _ := strconv.Atoi(g["month"])
	day, _ := strconv.Atoi(g["day"])
	hour, _ := strconv.Atoi(g["hour"])
	minute, _ := strconv.Atoi(g["minute"])
	second, _ := strconv.Atoi(g["second"])
	ms, us, ns := parseFractionDigits(g["frac"])

	date, err := TryPlainDateOf(year, Month(month), day)
	if err != nil {
		return PlainDateTime{}, err
	}
	time, err := TryPlainTimeOf(hour, minute, second, ms, us, ns)
	if err != nil {
		return PlainDateTime{}, err
	}
	return OfDateAndTime(date, time), nil
}

// ParseInstant parses a string of the form <PlainDateTime>(Z|±HH:MM).
func ParseInstant(s string) (Instant, error) {
	g, ok := namedGroups(instantRe, s)
	if !ok {
		return Instant{}, newError(ErrKindParse, "%q is not a valid Instant", s)
	}

	dt, err := dateTimeFromGroups(g)
	if err != nil {
		return Instant{}, err
	}
	offsetNsec, err := parseOffset(g["offset"])
	if err != nil {
		return Instant{}, err
	}

	naive, err := naiveEpochNanoseconds(dt)
	if err != nil {
		return Instant{}, err
	}
	return InstantFromEpochNanoseconds(naive - offsetNsec), nil
}

// ParseZonedDateTime parses a string of the form
// <PlainDateTime>±HH:MM[<IANA/Zone>](\[u-ca=<id>\])?, or the Z[UTC] form.
func ParseZonedDateTime(s string) (ZonedDateTime, error) {
	g, ok := namedGroups(zonedRe, s)
	if !ok {
		return ZonedDateTime{}, newError(ErrKindParse, "%q is not a valid ZonedDateTime", s)
	}

	dt, err := dateTimeFromGroups(g)
	if err != nil {
		return ZonedDateTime{}, err
	}

	zone, err := resolveZoneToken(g["zone"])
	if err != nil {
		return ZonedDateTime{}, err
	}

	cal := ISO8601
	if c := g["cal"]; c != "" {
		cal = Calendar(c)
	}

	offsetNsec, err := parseOffset(g["offset"])
	if err != nil {
		return ZonedDateTime{}, err
	}

	naive, err := naiveEpochNanoseconds(dt)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTimeFromInstant(InstantFromEpochNanoseconds(naive-offsetNsec), zone, cal)
}

func resolveZoneToken(token string) (TimeZone, error) {
	if token == "UTC" {
		return UTCTimeZone(), nil
	}
	if len(token) > 0 && (token[0] == '+' || token[0] == '-') {
		nsec, err := parseOffset(token)
		if err != nil {
			return TimeZone{}, err
		}
		return FixedTimeZone(nsec), nil
	}
	return LoadTimeZone(token)
}

// parseOffset parses "Z", "+HH:MM" or "-HH:MM" into signed nanoseconds.
func parseOffset(s string) (int64, error) {
	if s == "Z" {
		return 0, nil
	}
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return 0, newError(ErrKindParse, "%q is not a valid UTC offset", s)
	}
	h, err1 := strconv.Atoi(s[1:3])
	m, err2 := strconv.Atoi(s[4:6])
	if err1 != nil || err2 != nil || h > 23 || m > 59 {
		return 0, newError(ErrKindParse, "%q is not a valid UTC offset", s)
	}
	nsec := (int64(h)*3600 + int64(m)*60) * int64(ExtentSecond)
	if s[0] == '-' {
		nsec = -nsec
	}
	return nsec, nil
}

// ParseDuration parses the ISO 8601 duration grammar
// -?P(nY)?(nM)?(nW)?(nD)?(T(nH)?(nM)?(n(.n)?S)?)?.
func ParseDuration(s string) (Duration, error) {
	g, ok := namedGroups(durationRe, s)
	if !ok || s == "P" || s == "-P" {
		return Duration{}, newError(ErrKindParse, "%q is not a valid Duration", s)
	}

	neg := g["sign"] == "-"
	years := parseIntOrZero(g["years"])
	months := parseIntOrZero(g["months"])
	weeks := parseIntOrZero(g["weeks"])
	days := parseIntOrZero(g["days"])
	hours := parseIntOrZero(g["hours"])
	minutes := parseIntOrZero(g["minutes"])
	seconds := parseIntOrZero(g["seconds"])
	ms, us, ns := parseFractionDigits(g["secfrac"])

	if neg {
		years, months, weeks, days = -years, -months, -weeks, -days
		hours, minutes, seconds = -hours, -minutes, -seconds
		ms, us, ns = -ms, -us, -ns
	}

	return NewDuration(years, months, weeks, days, hours, minutes, seconds, int64(ms), int64(us), int64(ns))
}

func parseIntOrZero(s string) int64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func parseSignedYear(signStr, digits string) (int, error) {
	if len(digits) == 4 && signStr != "" {
		return 0, newError(ErrKindParse, "extended years require at least 6 digits")
	}
	y, err := strconv.Atoi(digits)
	if err != nil {
		return 0, newError(ErrKindParse, "%q is not a valid year", digits)
	}
	if signStr == "-" {
		y = -y
	}
	return y, nil
}

// parseFractionDigits expands a 1-9 digit fraction string into millisecond,
// microsecond and nanosecond components.
func parseFractionDigits(digits string) (ms, us, ns int) {
	if digits == "" {
		return 0, 0, 0
	}
	padded := (digits + "000000000")[:9]
	v, _ := strconv.Atoi(padded)
	return v / 1_000_000, (v / 1_000) % 1000, v % 1000
}
