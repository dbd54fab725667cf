package temporal

import (
	"strconv"
	"strings"
)

// Interval represents the intervening time between two ZonedDateTime
// points, given as an explicit start/end pair, a start plus a Duration, or
// a Duration plus an end, optionally repeating.
type Interval struct {
	start *ZonedDateTime
	end   *ZonedDateTime
	dur   *Duration
	reps  int
}

// IntervalOfStartEnd builds an Interval from explicit start and end points.
func IntervalOfStartEnd(start, end ZonedDateTime, repetitions int) Interval {
	return Interval{start: &start, end: &end, reps: repetitions}
}

// IntervalOfStartDuration builds an Interval from a start point and a duration.
func IntervalOfStartDuration(start ZonedDateTime, dur Duration, repetitions int) Interval {
	return Interval{start: &start, dur: &dur, reps: repetitions}
}

// IntervalOfDurationEnd builds an Interval from a duration and an end point.
func IntervalOfDurationEnd(dur Duration, end ZonedDateTime, repetitions int) Interval {
	return Interval{end: &end, dur: &dur, reps: repetitions}
}

// Repetitions returns the repetition count; any negative value normalizes to
// -1, meaning unbounded.
func (iv Interval) Repetitions() int {
	if iv.reps <= -1 {
		return -1
	}
	return iv.reps
}

// Start returns the interval's start point, computing it from End and
// Duration if the start was not given explicitly.
func (iv Interval) Start() (ZonedDateTime, error) {
	switch {
	case iv.start != nil:
		return *iv.start, nil
	case iv.end != nil && iv.dur != nil:
		neg, err := iv.dur.Negated()
		if err != nil {
			return ZonedDateTime{}, err
		}
		return iv.end.Add(neg, Constrain, Compatible)
	default:
		return ZonedDateTime{}, newError(ErrKindMissingField, "interval has no start, and cannot be derived")
	}
}

// End returns the interval's end point, computing it from Start and Duration
// if the end was not given explicitly.
func (iv Interval) End() (ZonedDateTime, error) {
	switch {
	case iv.end != nil:
		return *iv.end, nil
	case iv.start != nil && iv.dur != nil:
		return iv.start.Add(*iv.dur, Constrain, Compatible)
	default:
		return ZonedDateTime{}, newError(ErrKindMissingField, "interval has no end, and cannot be derived")
	}
}

// Duration returns the interval's duration, computing it as End minus Start
// (with largestUnit day) if it was not given explicitly.
func (iv Interval) Duration() (Duration, error) {
	switch {
	case iv.dur != nil:
		return *iv.dur, nil
	case iv.start != nil && iv.end != nil:
		return iv.start.Until(*iv.end, UnitDay)
	default:
		return Duration{}, newError(ErrKindMissingField, "interval has no duration, and cannot be derived")
	}
}

func (iv Interval) String() string {
	return iv.formatWith("/")
}

func (iv Interval) formatWith(sep string) string {
	var prefix string
	switch r := iv.Repetitions(); r {
	case 0:
		// omit the R-prefix entirely.
	case -1:
		prefix = "R" + sep
	default:
		prefix = "R" + strconv.Itoa(r) + sep
	}

	switch {
	case iv.start != nil && iv.end != nil:
		return prefix + iv.start.String() + sep + iv.end.String()
	case iv.start != nil && iv.dur != nil:
		return prefix + iv.start.String() + sep + iv.dur.String()
	case iv.dur != nil && iv.end != nil:
		return prefix + iv.dur.String() + sep + iv.end.String()
	case iv.dur != nil:
		return prefix + iv.dur.String()
	default:
		return prefix
	}
}

// ParseInterval parses an ISO 8601 time interval in one of the forms
// <start>/<end>, <start>/<duration>, <duration>/<end> or <duration>, with an
// optional leading repeating-interval prefix Rn/ or R/ (unbounded).
func ParseInterval(s string) (Interval, error) {
	if s == "" {
		return Interval{}, newError(ErrKindParse, "empty interval string")
	}

	reps := 0
	if strings.HasPrefix(s, "R") {
		rest := s[1:]
		slash := strings.IndexByte(rest, '/')
		if slash < 0 {
			return Interval{}, newError(ErrKindParse, "%q is missing the repeating-interval separator", s)
		}
		repStr, tail := rest[:slash], rest[slash+1:]
		if repStr == "" {
			reps = -1
		} else {
			n, err := strconv.Atoi(repStr)
			if err != nil {
				return Interval{}, newError(ErrKindParse, "%q has an invalid repeat count", s)
			}
			reps = n
		}
		s = tail
	}

	left, right, ok := strings.Cut(s, "/")
	if !ok {
		dur, err := ParseDuration(s)
		if err != nil {
			return Interval{}, err
		}
		return Interval{dur: &dur, reps: reps}, nil
	}

	var start, end *ZonedDateTime
	var dur *Duration

	if isDigitPrefixed(left) {
		zdt, err := ParseZonedDateTime(left)
		if err != nil {
			return Interval{}, err
		}
		start = &zdt
	} else {
		d, err := ParseDuration(left)
		if err != nil {
			return Interval{}, err
		}
		dur = &d
	}

	if isDigitPrefixed(right) {
		zdt, err := ParseZonedDateTime(right)
		if err != nil {
			return Interval{}, err
		}
		end = &zdt
	} else {
		d, err := ParseDuration(right)
		if err != nil {
			return Interval{}, err
		}
		dur = &d
	}

	return Interval{start: start, end: end, dur: dur, reps: reps}, nil
}

func isDigitPrefixed(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
