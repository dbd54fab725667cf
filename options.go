package temporal

// The option enumerations are closed sets: every option value outside the
// declared constants is rejected with ErrInvalidOption rather than treated
// as a default.

// Overflow controls how an out-of-range field produced by arithmetic or
// with() is handled.
type Overflow int

const (
	// Constrain clamps the offending field to the nearest in-range value (the default).
	Constrain Overflow = iota
	// Reject fails the operation with ErrArithmetic instead of clamping.
	Reject
)

func (o Overflow) validate() error {
	if o != Constrain && o != Reject {
		return newError(ErrKindInvalidOption, "overflow: unrecognized value %d", int(o))
	}
	return nil
}

// Disambiguation selects among zero, one, or two candidate instants when
// resolving a local date-time against a time zone.
type Disambiguation int

const (
	// Compatible resolves a fold to the earlier instant and a gap to the
	// local time shifted forward by the gap length, resolved with the
	// later offset (the default).
	Compatible Disambiguation = iota
	// Earlier resolves a fold to the earlier instant and a gap to the
	// instant just before the gap begins.
	Earlier
	// Later resolves a fold to the later instant and a gap the same way as Compatible.
	Later
	// RejectAmbiguity fails with ErrAmbiguousTime on a fold or a gap.
	RejectAmbiguity
)

func (d Disambiguation) validate() error {
	if d < Compatible || d > RejectAmbiguity {
		return newError(ErrKindInvalidOption, "disambiguation: unrecognized value %d", int(d))
	}
	return nil
}

// RoundingMode controls how a rounded quantity's remainder is handled.
type RoundingMode int

const (
	// HalfExpand rounds ties away from zero (the default).
	HalfExpand RoundingMode = iota
	// Ceil rounds toward positive infinity.
	Ceil
	// Floor rounds toward negative infinity.
	Floor
	// Trunc rounds toward zero.
	Trunc
)

func (m RoundingMode) validate() error {
	if m < HalfExpand || m > Trunc {
		return newError(ErrKindInvalidOption, "roundingMode: unrecognized value %d", int(m))
	}
	return nil
}

// Unit identifies a calendar or clock granularity, used by round/total/balance/until/since.
type Unit int

const (
	UnitNanosecond Unit = iota
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

func (u Unit) validate() error {
	if u < UnitNanosecond || u > UnitYear {
		return newError(ErrKindInvalidOption, "unit: unrecognized value %d", int(u))
	}
	return nil
}

// isCalendarUnit reports whether u is day or coarser, i.e. counted on the
// calendar rather than the clock. Day and Week still have a fixed
// 24-hour/168-hour length in duration arithmetic; only Month and Year vary
// and force a relativeTo anchor wherever they appear.
func (u Unit) isCalendarUnit() bool {
	return u == UnitDay || u == UnitWeek || u == UnitMonth || u == UnitYear
}

// nanosecondsPerUnit returns the exact nanosecond length of a non-calendar unit.
func nanosecondsPerUnit(u Unit) int64 {
	switch u {
	case UnitNanosecond:
		return 1
	case UnitMicrosecond:
		return 1_000
	case UnitMillisecond:
		return 1_000_000
	case UnitSecond:
		return 1_000_000_000
	case UnitMinute:
		return 60 * 1_000_000_000
	case UnitHour:
		return 3600 * 1_000_000_000
	default:
		panic("nanosecondsPerUnit: calendar unit has no fixed length")
	}
}

// RoundOptions configures Duration.Round and the round() operation on plain types.
type RoundOptions struct {
	SmallestUnit      Unit
	LargestUnit       Unit
	HasLargestUnit    bool
	RoundingIncrement int
	RoundingMode      RoundingMode
	RelativeTo        *PlainDate
}

func (o RoundOptions) validate() error {
	if err := o.SmallestUnit.validate(); err != nil {
		return err
	}
	if o.HasLargestUnit {
		if err := o.LargestUnit.validate(); err != nil {
			return err
		}
		if o.LargestUnit < o.SmallestUnit {
			return newError(ErrKindInvalidOption, "largestUnit must not be smaller than smallestUnit")
		}
	}
	if err := o.RoundingMode.validate(); err != nil {
		return err
	}
	if o.RoundingIncrement <= 0 {
		return newError(ErrKindInvalidOption, "roundingIncrement must be a positive integer")
	}
	return nil
}

// TotalOptions configures Duration.Total.
type TotalOptions struct {
	Unit       Unit
	RelativeTo *PlainDate
}
