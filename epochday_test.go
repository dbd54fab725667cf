package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochDayRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		year, month, day int
		epochDay         int64
	}{
		{1970, 1, 1, 0},
		{1969, 12, 31, -1},
		{2000, 2, 29, 11_016},
		{1, 1, 1, -719_162},
		{-1, 1, 1, -719_893},
		{2024, 1, 1, 19_723},
		{1582, 10, 15, -141_427},
	} {
		got := encodeEpochDay(tt.year, tt.month, tt.day)
		assert.Equal(t, tt.epochDay, got, "encodeEpochDay(%d, %d, %d)", tt.year, tt.month, tt.day)

		y, m, d := decodeEpochDay(tt.epochDay)
		assert.Equal(t, tt.year, y)
		assert.Equal(t, tt.month, m)
		assert.Equal(t, tt.day, d)
	}
}

func TestEpochDayRange(t *testing.T) {
	require.True(t, epochDayInRange(0))
	require.True(t, epochDayInRange(MinEpochDay))
	require.True(t, epochDayInRange(MaxEpochDay))
	require.False(t, epochDayInRange(MinEpochDay-1))
	require.False(t, epochDayInRange(MaxEpochDay+1))
}

func TestIsoWeekday(t *testing.T) {
	// 1970-01-01 was a Thursday.
	assert.Equal(t, 4, isoWeekday(0))
	assert.Equal(t, 5, isoWeekday(1))
	assert.Equal(t, 3, isoWeekday(-1))
}

func TestIsoWeekOfYear(t *testing.T) {
	for _, tt := range []struct {
		epoch        int64
		yearOfWeek   int
		week         int
	}{
		{encodeEpochDay(1970, 1, 1), 1970, 1},
		{encodeEpochDay(1950, 1, 1), 1949, 52},
		{encodeEpochDay(2021, 1, 1), 2020, 53},
		{encodeEpochDay(2020, 12, 31), 2020, 53},
	} {
		yow, week := isoWeekOfYear(tt.epoch)
		assert.Equal(t, tt.yearOfWeek, yow)
		assert.Equal(t, tt.week, week)
	}
}
