package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-temporal/temporal"
)

func TestPlainDateTimeDateAndTime(t *testing.T) {
	dt := temporal.PlainDateTimeOf(2023, temporal.June, 1, 10, 30, 0, 0, 0, 0)
	assert.True(t, dt.Date().Equal(temporal.PlainDateOf(2023, temporal.June, 1)))
	assert.True(t, dt.Time().Equal(temporal.PlainTimeOf(10, 30, 0, 0, 0, 0)))
}

func TestPlainDateTimeCompare(t *testing.T) {
	a := temporal.PlainDateTimeOf(2023, temporal.June, 1, 10, 0, 0, 0, 0, 0)
	b := temporal.PlainDateTimeOf(2023, temporal.June, 1, 11, 0, 0, 0, 0, 0)
	c := temporal.PlainDateTimeOf(2023, temporal.June, 2, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(c))
	assert.True(t, a.Equal(a))
}

func TestPlainDateTimeAddWholeDayCarry(t *testing.T) {
	dt := temporal.PlainDateTimeOf(2023, temporal.January, 31, 23, 0, 0, 0, 0, 0)
	dur := temporal.DurationOf(0, 0, 0, 0, 2, 0, 0, 0, 0, 0)

	added, err := dt.Add(dur, temporal.Constrain)
	require.NoError(t, err)
	assert.True(t, added.Date().Equal(temporal.PlainDateOf(2023, temporal.February, 1)))
	assert.Equal(t, 1, added.Time().Hour())

	back, err := added.Subtract(dur, temporal.Constrain)
	require.NoError(t, err)
	assert.True(t, back.Equal(dt))
}

func TestPlainDateTimeCanAdd(t *testing.T) {
	dt := temporal.PlainDateTimeOf(2023, temporal.January, 31, 23, 0, 0, 0, 0, 0)
	months := temporal.DurationOf(0, 1, 0, 0, 0, 0, 0, 0, 0, 0)

	assert.True(t, dt.CanAdd(months, temporal.Constrain))
	assert.False(t, dt.CanAdd(months, temporal.Reject))
}

func TestPlainDateTimeUntilBorrowsDay(t *testing.T) {
	a := temporal.PlainDateTimeOf(2023, temporal.January, 1, 23, 0, 0, 0, 0, 0)
	b := temporal.PlainDateTimeOf(2023, temporal.January, 3, 1, 0, 0, 0, 0, 0)

	dur, err := a.Until(b, temporal.UnitDay)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dur.Days)
	assert.Equal(t, int64(2), dur.Hours)

	roundTrip, err := a.Add(dur, temporal.Constrain)
	require.NoError(t, err)
	assert.True(t, roundTrip.Equal(b))

	since, err := b.Since(a, temporal.UnitDay)
	require.NoError(t, err)
	assert.Equal(t, dur, since)
}

func TestPlainDateTimeString(t *testing.T) {
	dt := temporal.PlainDateTimeOf(2023, temporal.June, 1, 10, 30, 0, 0, 0, 0)
	assert.Equal(t, "2023-06-01T10:30:00", dt.String())

	date, err := temporal.PlainDateOf(2023, temporal.June, 1).WithCalendar(temporal.Gregory)
	require.NoError(t, err)
	dt = temporal.OfDateAndTime(date, temporal.PlainTimeOf(10, 30, 0, 0, 0, 0))
	assert.Equal(t, "2023-06-01T10:30:00[u-ca=gregory]", dt.String())
}

func TestPlainDateTimeUntilBackward(t *testing.T) {
	a := temporal.PlainDateTimeOf(2023, temporal.January, 2, 10, 0, 0, 0, 0, 0)
	b := temporal.PlainDateTimeOf(2023, temporal.January, 1, 12, 0, 0, 0, 0, 0)

	dur, err := a.Until(b, temporal.UnitDay)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dur.Days)
	assert.Equal(t, int64(-22), dur.Hours)

	roundTrip, err := a.Add(dur, temporal.Constrain)
	require.NoError(t, err)
	assert.True(t, roundTrip.Equal(b))
}

func TestPlainDateTimeUntilTimeOnlyLargestUnit(t *testing.T) {
	a := temporal.PlainDateTimeOf(2023, temporal.January, 1, 0, 0, 0, 0, 0, 0)
	b := temporal.PlainDateTimeOf(2023, temporal.January, 3, 6, 0, 0, 0, 0, 0)

	dur, err := a.Until(b, temporal.UnitHour)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dur.Days)
	assert.Equal(t, int64(54), dur.Hours)
}

func TestPlainDateTimeWithDateWithTime(t *testing.T) {
	dt := temporal.PlainDateTimeOf(2023, temporal.June, 1, 10, 30, 0, 0, 0, 0)

	moved := dt.WithDate(temporal.PlainDateOf(2024, temporal.January, 15))
	assert.True(t, moved.Date().Equal(temporal.PlainDateOf(2024, temporal.January, 15)))
	assert.True(t, moved.Time().Equal(dt.Time()))

	retimed := dt.WithTime(temporal.NoonPlainTime())
	assert.True(t, retimed.Date().Equal(dt.Date()))
	assert.Equal(t, 12, retimed.Time().Hour())
}

func TestPlainDateTimeRound(t *testing.T) {
	dt := temporal.PlainDateTimeOf(2023, temporal.June, 1, 10, 30, 31, 0, 0, 0)
	rounded, err := dt.Round(temporal.UnitMinute, 1, temporal.HalfExpand)
	require.NoError(t, err)
	assert.Equal(t, 31, rounded.Time().Minute())
	assert.Equal(t, 0, rounded.Time().Second())

	// Rounding up past midnight carries into the date.
	late := temporal.PlainDateTimeOf(2023, temporal.June, 1, 23, 59, 59, 0, 0, 0)
	rounded, err = late.Round(temporal.UnitMinute, 1, temporal.HalfExpand)
	require.NoError(t, err)
	assert.True(t, rounded.Date().Equal(temporal.PlainDateOf(2023, temporal.June, 2)))
	assert.Equal(t, 0, rounded.Time().Hour())

	// smallestUnit day rounds to the nearest local midnight.
	afternoon := temporal.PlainDateTimeOf(2023, temporal.June, 1, 15, 0, 0, 0, 0, 0)
	rounded, err = afternoon.Round(temporal.UnitDay, 1, temporal.HalfExpand)
	require.NoError(t, err)
	assert.True(t, rounded.Date().Equal(temporal.PlainDateOf(2023, temporal.June, 2)))

	_, err = dt.Round(temporal.UnitMonth, 1, temporal.HalfExpand)
	assert.Error(t, err)
}
