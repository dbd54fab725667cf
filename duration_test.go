package temporal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-temporal/temporal"
)

func TestNewDurationRejectsMixedSign(t *testing.T) {
	_, err := temporal.NewDuration(1, -1, 0, 0, 0, 0, 0, 0, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, temporal.ErrInvalidDuration))
}

func TestDurationSignAndIsBlank(t *testing.T) {
	assert.Equal(t, 0, temporal.Duration{}.Sign())
	assert.True(t, temporal.Duration{}.IsBlank())

	pos := temporal.DurationOf(1, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, 1, pos.Sign())
	assert.False(t, pos.IsBlank())

	neg := temporal.DurationOf(0, 0, 0, -5, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, -1, neg.Sign())
}

func TestDurationNegated(t *testing.T) {
	d := temporal.DurationOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	neg, err := d.Negated()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), neg.Years)
	assert.Equal(t, int64(-10), neg.Nanoseconds)

	back, err := neg.Negated()
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestDurationBalanceTimeOnly(t *testing.T) {
	d := temporal.DurationOf(0, 0, 0, 0, 0, 0, 3661, 0, 0, 0)
	balanced, err := d.Balance(temporal.UnitHour, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), balanced.Hours)
	assert.Equal(t, int64(1), balanced.Minutes)
	assert.Equal(t, int64(1), balanced.Seconds)
}

func TestDurationBalanceRequiresRelativeToForCalendarUnits(t *testing.T) {
	d := temporal.DurationOf(0, 1, 0, 0, 0, 0, 0, 0, 0, 0)
	_, err := d.Balance(temporal.UnitMonth, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, temporal.ErrInvalidDuration))

	anchor := temporal.PlainDateOf(2023, temporal.January, 15)
	balanced, err := d.Balance(temporal.UnitMonth, &anchor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), balanced.Months)
}

func TestDurationBalanceCarriesTimeIntoDays(t *testing.T) {
	d := temporal.DurationOf(0, 0, 0, 1, 30, 0, 0, 0, 0, 0)
	anchor := temporal.PlainDateOf(2023, temporal.January, 1)
	balanced, err := d.Balance(temporal.UnitDay, &anchor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), balanced.Days)
	assert.Equal(t, int64(6), balanced.Hours)
}

func TestDurationRoundHalfExpand(t *testing.T) {
	// 90s = 1.5 minutes is an exact tie; halfExpand rounds ties away from
	// zero, so the nearest minute is 2, i.e. 120s.
	d := temporal.DurationOf(0, 0, 0, 0, 0, 0, 90, 0, 0, 0)
	rounded, err := d.Round(temporal.RoundOptions{
		SmallestUnit:      temporal.UnitMinute,
		RoundingIncrement: 1,
		RoundingMode:      temporal.HalfExpand,
	})
	require.NoError(t, err)
	total, err := rounded.Total(temporal.TotalOptions{Unit: temporal.UnitSecond})
	require.NoError(t, err)
	assert.Equal(t, 120.0, total)
}

func TestDurationRoundHalfExpandNegative(t *testing.T) {
	// -100min = -1h40m; halfExpand rounds to the nearest hour (ties away
	// from zero), and -1h40m is nearer -2h than -1h.
	d := temporal.DurationOf(0, 0, 0, 0, 0, -100, 0, 0, 0, 0)
	rounded, err := d.Round(temporal.RoundOptions{
		SmallestUnit:      temporal.UnitHour,
		RoundingIncrement: 1,
		RoundingMode:      temporal.HalfExpand,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-2), rounded.Hours)
}

func TestDurationTotalRequiresRelativeToForCalendarUnits(t *testing.T) {
	d := temporal.DurationOf(0, 1, 0, 0, 0, 0, 0, 0, 0, 0)
	_, err := d.Total(temporal.TotalOptions{Unit: temporal.UnitDay})
	assert.Error(t, err)

	anchor := temporal.PlainDateOf(2023, temporal.January, 1)
	total, err := d.Total(temporal.TotalOptions{Unit: temporal.UnitDay, RelativeTo: &anchor})
	require.NoError(t, err)
	assert.Equal(t, 31.0, total)
}

func TestCompareDurationsTimeOnly(t *testing.T) {
	a := temporal.DurationOf(0, 0, 0, 0, 1, 0, 0, 0, 0, 0)
	b := temporal.DurationOf(0, 0, 0, 0, 2, 0, 0, 0, 0, 0)
	cmp, err := temporal.CompareDurations(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)
}

func TestCompareDurationsCalendarRequiresRelativeTo(t *testing.T) {
	a := temporal.DurationOf(0, 1, 0, 0, 0, 0, 0, 0, 0, 0)
	b := temporal.DurationOf(0, 0, 0, 31, 0, 0, 0, 0, 0, 0)
	_, err := temporal.CompareDurations(a, b, nil)
	assert.Error(t, err)

	anchor := temporal.PlainDateOf(2023, temporal.January, 1)
	cmp, err := temporal.CompareDurations(a, b, &anchor)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)
}

func TestDurationString(t *testing.T) {
	assert.Equal(t, "PT0S", temporal.Duration{}.String())
	assert.Equal(t, "P1Y2M3W4D", temporal.DurationOf(1, 2, 3, 4, 0, 0, 0, 0, 0, 0).String())
	assert.Equal(t, "PT1H30M", temporal.DurationOf(0, 0, 0, 0, 1, 30, 0, 0, 0, 0).String())
	assert.Equal(t, "-P1DT1H", temporal.DurationOf(0, 0, 0, -1, -1, 0, 0, 0, 0, 0).String())
	assert.Equal(t, "PT1.5S", temporal.DurationOf(0, 0, 0, 0, 0, 0, 1, 500, 0, 0).String())
}

func TestDurationBalanceHoursIntoDays(t *testing.T) {
	d := temporal.DurationOf(0, 0, 0, 0, 25, 0, 0, 0, 0, 0)
	balanced, err := d.Balance(temporal.UnitDay, nil)
	require.NoError(t, err)
	assert.Equal(t, "P1DT1H", balanced.String())

	neg, err := d.Negated()
	require.NoError(t, err)
	balanced, err = neg.Balance(temporal.UnitDay, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), balanced.Days)
	assert.Equal(t, int64(-1), balanced.Hours)
}

func TestDurationRoundMinutesIntoHours(t *testing.T) {
	d := temporal.DurationOf(0, 0, 0, 0, 0, 90, 0, 0, 0, 0)
	rounded, err := d.Round(temporal.RoundOptions{
		SmallestUnit:      temporal.UnitMinute,
		LargestUnit:       temporal.UnitHour,
		HasLargestUnit:    true,
		RoundingIncrement: 1,
		RoundingMode:      temporal.HalfExpand,
	})
	require.NoError(t, err)
	assert.Equal(t, "PT1H30M", rounded.String())
}

func TestDurationTotalFixedLengthDayWeekWithoutRelativeTo(t *testing.T) {
	d := temporal.DurationOf(0, 0, 0, 0, 30, 0, 0, 0, 0, 0)
	total, err := d.Total(temporal.TotalOptions{Unit: temporal.UnitDay})
	require.NoError(t, err)
	assert.Equal(t, 1.25, total)

	halfWeek := temporal.DurationOf(0, 0, 0, 0, 84, 0, 0, 0, 0, 0)
	total, err = halfWeek.Total(temporal.TotalOptions{Unit: temporal.UnitWeek})
	require.NoError(t, err)
	assert.Equal(t, 0.5, total)

	mixed := temporal.DurationOf(0, 0, 1, 2, 12, 0, 0, 0, 0, 0)
	total, err = mixed.Total(temporal.TotalOptions{Unit: temporal.UnitDay})
	require.NoError(t, err)
	assert.Equal(t, 9.5, total)
}

func TestDurationRoundToDaysWithoutRelativeTo(t *testing.T) {
	d := temporal.DurationOf(0, 0, 0, 0, 30, 0, 0, 0, 0, 0)
	rounded, err := d.Round(temporal.RoundOptions{
		SmallestUnit:      temporal.UnitDay,
		RoundingIncrement: 1,
		RoundingMode:      temporal.HalfExpand,
	})
	require.NoError(t, err)
	assert.Equal(t, "P1D", rounded.String())
}

func TestDurationBalanceDaysWithoutRelativeTo(t *testing.T) {
	d := temporal.DurationOf(0, 0, 0, 1, 30, 0, 0, 0, 0, 0)
	balanced, err := d.Balance(temporal.UnitDay, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), balanced.Days)
	assert.Equal(t, int64(6), balanced.Hours)
}
