package temporal

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// TimeZone maps between a PlainDateTime wall-clock reading and an Instant,
// possibly ambiguously across a DST fold or gap. A named zone is backed by
// the OS zoneinfo database via time.LoadLocation; transition lookups
// delegate to time.Time.ZoneBounds, which binary-searches the location's
// transition table. A fixed-offset zone has no transitions at all.
type TimeZone struct {
	id  string // IANA identifier, or "" for a fixed-offset zone.
	loc *time.Location
	// fixedNsec is used instead of loc when the zone is a fixed UTC offset
	// rather than a named IANA zone (e.g. "+05:30").
	fixedNsec int64
	isFixed   bool
}

var (
	zoneCache   = map[string]*time.Location{}
	zoneCacheMu sync.Mutex
)

// UTCTimeZone returns the fixed +00:00 zone.
func UTCTimeZone() TimeZone {
	return TimeZone{id: "UTC", loc: time.UTC}
}

// FixedTimeZone returns a zone with a constant offset of offsetNanoseconds
// from UTC, never subject to DST transitions.
func FixedTimeZone(offsetNanoseconds int64) TimeZone {
	return TimeZone{isFixed: true, fixedNsec: offsetNanoseconds}
}

// LoadTimeZone resolves an IANA identifier (e.g. "America/New_York") against
// the system zoneinfo database, caching the result for the life of the
// process.
func LoadTimeZone(name string) (TimeZone, error) {
	zoneCacheMu.Lock()
	loc, ok := zoneCache[name]
	zoneCacheMu.Unlock()
	if ok {
		return TimeZone{id: name, loc: loc}, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return TimeZone{}, newError(ErrKindUnknownTimeZone, "unknown time zone %q", name)
	}

	zoneCacheMu.Lock()
	zoneCache[name] = loc
	zoneCacheMu.Unlock()
	return TimeZone{id: name, loc: loc}, nil
}

// ID returns the zone's IANA identifier, or the formatted fixed offset if
// this zone was constructed with FixedTimeZone.
func (z TimeZone) ID() string {
	if z.isFixed {
		return formatOffset(z.fixedNsec)
	}
	return z.id
}

// GetOffsetNanosecondsFor returns the UTC offset in effect at instant i.
func (z TimeZone) GetOffsetNanosecondsFor(i Instant) int64 {
	if z.isFixed {
		return z.fixedNsec
	}
	return z.offsetSecondsAt(i.nsec) * int64(ExtentSecond)
}

func (z TimeZone) offsetSecondsAt(nsec int64) int64 {
	_, offsetSec := z.timeAt(nsec).Zone()
	return int64(offsetSec)
}

// GetPossibleInstantsFor returns the Instants that correspond to the local
// wall-clock reading dt in this zone: zero during a DST gap, one for an
// unambiguous reading, and two (earlier first) during a DST fold.
//
// The candidate offsets are the zone's offsets two days before and two days
// after the wall-clock value read as if it were UTC; a candidate offset o
// maps dt to the instant naive-o exactly when the zone's offset at naive-o
// is o itself. Probing either side of the widest real transition keeps both
// offsets of a fold (and neither offset of a gap) in play.
func (z TimeZone) GetPossibleInstantsFor(dt PlainDateTime) ([]Instant, error) {
	naiveNsec, err := naiveEpochNanoseconds(dt)
	if err != nil {
		return nil, err
	}
	if z.isFixed {
		return []Instant{{nsec: naiveNsec - z.fixedNsec}}, nil
	}

	offsets := []int64{
		z.offsetSecondsAt(clampAddInt64(naiveNsec, -2*nanosecondsPerDay)),
		z.offsetSecondsAt(clampAddInt64(naiveNsec, 2*nanosecondsPerDay)),
	}

	var out []Instant
	for _, off := range offsets {
		candidate := naiveNsec - off*int64(ExtentSecond)
		if z.offsetSecondsAt(candidate) != off {
			continue
		}
		if len(out) > 0 && out[len(out)-1].nsec == candidate {
			continue
		}
		out = append(out, Instant{nsec: candidate})
	}
	return out, nil
}

// naiveEpochNanoseconds reads dt as if it were UTC. Errors when the local
// date-time is too far from the epoch for a nanosecond count to represent,
// in which case no instant can represent it either.
func naiveEpochNanoseconds(dt PlainDateTime) (int64, error) {
	dayNsec, under, over := mulInt64(dt.date.epochDay(), nanosecondsPerDay)
	if !under && !over {
		var sum int64
		if sum, under, over = addInt64(dayNsec, dt.time.nsec); !under && !over {
			return sum, nil
		}
	}
	return 0, newError(ErrKindRange, "%v is outside the instant-representable range", dt)
}

func clampAddInt64(a, b int64) int64 {
	sum, under, over := addInt64(a, b)
	if under {
		return math.MinInt64
	}
	if over {
		return math.MaxInt64
	}
	return sum
}

func timeToEpochNanoseconds(t time.Time) int64 {
	return t.Unix()*int64(ExtentSecond) + int64(t.Nanosecond())
}

// timeAt returns the stdlib time.Time in z's location corresponding to the
// given nanosecond-since-epoch value, for delegating offset and transition
// lookups to time.Time.Zone/ZoneBounds.
func (z TimeZone) timeAt(nsec int64) time.Time {
	return time.Unix(0, 0).In(z.loc).Add(time.Duration(nsec))
}

// GetInstantFor resolves dt to a single Instant, applying disambiguation
// when GetPossibleInstantsFor returns zero or two candidates.
func (z TimeZone) GetInstantFor(dt PlainDateTime, disambiguation Disambiguation) (Instant, error) {
	if err := disambiguation.validate(); err != nil {
		return Instant{}, err
	}

	candidates, err := z.GetPossibleInstantsFor(dt)
	if err != nil {
		return Instant{}, err
	}

	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 2:
		switch disambiguation {
		case Earlier, Compatible:
			return candidates[0], nil
		case Later:
			return candidates[1], nil
		default:
			return Instant{}, newError(ErrKindAmbiguousTime, "%v is ambiguous in zone %s", dt, z.ID())
		}
	default: // gap
		if disambiguation == RejectAmbiguity {
			return Instant{}, newError(ErrKindAmbiguousTime, "%v falls in a DST gap in zone %s", dt, z.ID())
		}
		return z.resolveGap(dt, disambiguation)
	}
}

// resolveGap handles a DST gap: Earlier returns the instant just before the
// gap begins; Compatible and Later shift the local time forward by the gap
// length and resolve with the offset after the transition.
func (z TimeZone) resolveGap(dt PlainDateTime, disambiguation Disambiguation) (Instant, error) {
	naiveNsec, err := naiveEpochNanoseconds(dt)
	if err != nil {
		return Instant{}, err
	}

	// Resolving with the pre-transition offset overshoots into the era after
	// the gap; that instant's era start is the moment the gap began, and the
	// instant itself is the wall time shifted forward by exactly the gap
	// length under the post-transition offset.
	offBefore := z.offsetSecondsAt(clampAddInt64(naiveNsec, -2*nanosecondsPerDay))
	afterNsec := naiveNsec - offBefore*int64(ExtentSecond)

	if disambiguation == Earlier {
		start, _ := z.timeAt(afterNsec).ZoneBounds()
		if start.IsZero() {
			return Instant{}, newError(ErrKindArithmetic, "could not locate the DST transition")
		}
		return Instant{nsec: timeToEpochNanoseconds(start) - 1}, nil
	}
	return Instant{nsec: afterNsec}, nil
}

// GetNextTransition and GetPreviousTransition return the next/previous DST
// transition instant strictly after/before i, or (Instant{}, false) if none
// exists (a fixed-offset zone, or UTC).
func (z TimeZone) GetNextTransition(i Instant) (Instant, bool) {
	if z.isFixed {
		return Instant{}, false
	}
	_, end := z.timeAt(i.nsec).ZoneBounds()
	if end.IsZero() {
		return Instant{}, false
	}
	return Instant{nsec: timeToEpochNanoseconds(end)}, true
}

func (z TimeZone) GetPreviousTransition(i Instant) (Instant, bool) {
	if z.isFixed {
		return Instant{}, false
	}
	start, _ := z.timeAt(i.nsec).ZoneBounds()
	if !start.IsZero() && timeToEpochNanoseconds(start) >= i.nsec {
		// i lies exactly on a transition; use the era that ends at i.
		start, _ = z.timeAt(i.nsec - 1).ZoneBounds()
	}
	if start.IsZero() {
		return Instant{}, false
	}
	return Instant{nsec: timeToEpochNanoseconds(start)}, true
}

func formatOffset(nsec int64) string {
	sign := "+"
	if nsec < 0 {
		sign = "-"
		nsec = -nsec
	}
	totalSec := nsec / int64(ExtentSecond)
	h := totalSec / 3600
	m := (totalSec % 3600) / 60
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
