package temporal

import (
	"os"
	"time"
)

// SystemClockNow returns the Instant for the current wall-clock time,
// truncated to microsecond precision (the wall clock's own resolution on
// most platforms is no finer than this in practice).
func SystemClockNow() Instant {
	now := time.Now()
	nsec := now.Unix()*int64(ExtentSecond) + int64(now.Nanosecond())
	nsec -= nsec % int64(ExtentMicrosecond)
	return InstantFromEpochNanoseconds(nsec)
}

// SystemTimeZone returns the zone named by the TZ environment variable, or
// the OS-detected local zone if TZ is unset or empty.
func SystemTimeZone() (TimeZone, error) {
	if name := os.Getenv("TZ"); name != "" {
		return LoadTimeZone(name)
	}
	loc := time.Local
	return TimeZone{id: loc.String(), loc: loc}, nil
}

// NowIn returns the current ZonedDateTime in zone.
func NowIn(zone TimeZone, cal Calendar) (ZonedDateTime, error) {
	return ZonedDateTimeFromInstant(SystemClockNow(), zone, cal)
}

// NowPlainDate and NowPlainDateTime convenience constructors project
// SystemClockNow onto the system's time zone.
func NowPlainDateTime() (PlainDateTime, error) {
	zone, err := SystemTimeZone()
	if err != nil {
		return PlainDateTime{}, err
	}
	zdt, err := NowIn(zone, ISO8601)
	if err != nil {
		return PlainDateTime{}, err
	}
	return zdt.PlainDateTime(), nil
}

func NowPlainDate() (PlainDate, error) {
	dt, err := NowPlainDateTime()
	if err != nil {
		return PlainDate{}, err
	}
	return dt.Date(), nil
}
