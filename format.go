package temporal

import (
	"fmt"
	"strings"
)

// ISO 8601 rendering for every value type. Each grammar has exactly one
// textual shape, so formatting is direct composition rather than a layout
// language.

// calendarAnnotation returns the "[u-ca=<id>]" suffix for a non-ISO
// calendar, or "" for iso8601 (a bare ISO calendar is never annotated).
func calendarAnnotation(cal Calendar) string {
	if cal == "" || cal == ISO8601 {
		return ""
	}
	return "[u-ca=" + string(cal) + "]"
}

// formatFraction renders a sub-second nanosecond remainder (0 < frac <
// 1e9) as ".nnn...", trimmed of trailing zeros; a zero sub-second part
// omits the decimal point entirely.
func formatFraction(frac int64) string {
	if frac == 0 {
		return ""
	}
	digits := fmt.Sprintf("%09d", frac)
	digits = strings.TrimRight(digits, "0")
	return "." + digits
}

// FormatInstant renders i per the Instant grammar: a PlainDateTime in UTC
// followed by the literal Z, since an Instant carries no zone of its own and
// is always normalised to UTC for display.
func FormatInstant(i Instant) string {
	epochDay := floorDiv(i.nsec, nanosecondsPerDay)
	nsecOfDay := floorMod(i.nsec, nanosecondsPerDay)
	y, m, d := decodeEpochDay(epochDay)
	date, err := TryPlainDateOf(y, Month(m), d)
	if err != nil {
		panic(err.Error())
	}
	return date.dateOnlyString() + "T" + (PlainTime{nsec: nsecOfDay}).String() + "Z"
}

// FormatZonedDateTime renders zdt per the ZonedDateTime grammar: the local
// PlainDateTime, the offset in effect (or "Z" when the zone is UTC and the
// offset is exactly zero), the zone's bracketed IANA identifier, and a
// calendar annotation when non-ISO.
func FormatZonedDateTime(zdt ZonedDateTime) string {
	local := zdt.PlainDateTime()
	offsetNsec := zdt.offsetNanoseconds()

	offsetPart := formatOffset(offsetNsec)
	if offsetNsec == 0 && zdt.zone.ID() == "UTC" {
		offsetPart = "Z"
	}

	return fmt.Sprintf("%sT%s%s[%s]%s",
		local.date.dateOnlyString(), local.time.String(), offsetPart, zdt.zone.ID(), calendarAnnotation(zdt.cal))
}

// FormatDuration renders d per the Duration grammar:
// -?P(nY)?(nM)?(nW)?(nD)?(T(nH)?(nM)?(n(.n)?S)?)?, with a blank duration
// formatted as PT0S.
func FormatDuration(d Duration) string {
	if d.IsBlank() {
		return "PT0S"
	}

	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteByte('P')

	writeComponent(&b, d.Years, 'Y')
	writeComponent(&b, d.Months, 'M')
	writeComponent(&b, d.Weeks, 'W')
	writeComponent(&b, d.Days, 'D')

	hasTimePart := d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 ||
		d.Milliseconds != 0 || d.Microseconds != 0 || d.Nanoseconds != 0
	if !hasTimePart {
		return b.String()
	}

	b.WriteByte('T')
	writeComponent(&b, d.Hours, 'H')
	writeComponent(&b, d.Minutes, 'M')

	subSecondNsec := d.Milliseconds*int64(ExtentMillisecond) + d.Microseconds*int64(ExtentMicrosecond) + d.Nanoseconds
	if d.Seconds != 0 || subSecondNsec != 0 {
		sec := abs64(d.Seconds)
		fmt.Fprintf(&b, "%d", sec)
		if frac := abs64(subSecondNsec); frac != 0 {
			b.WriteString(formatFraction(frac))
		}
		b.WriteByte('S')
	}
	return b.String()
}

func writeComponent(b *strings.Builder, v int64, unit byte) {
	if v == 0 {
		return
	}
	fmt.Fprintf(b, "%d%c", abs64(v), unit)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
