package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-temporal/temporal"
)

func TestPlainMonthDayFields(t *testing.T) {
	md := temporal.PlainMonthDayOf(temporal.February, 29)
	assert.Equal(t, temporal.February, md.Month())
	assert.Equal(t, 29, md.Day())
}

func TestPlainMonthDayOfRejectsNonexistentDay(t *testing.T) {
	assert.Panics(t, func() { temporal.PlainMonthDayOf(temporal.April, 31) })
	_, err := temporal.TryPlainMonthDayOf(temporal.April, 31)
	assert.Error(t, err)
}

func TestPlainMonthDayToPlainDate(t *testing.T) {
	md := temporal.PlainMonthDayOf(temporal.February, 29)

	d, err := md.ToPlainDate(2024)
	require.NoError(t, err)
	assert.True(t, d.Equal(temporal.PlainDateOf(2024, temporal.February, 29)))

	_, err = md.ToPlainDate(2023)
	assert.Error(t, err)
}

func TestPlainMonthDayCompareEqual(t *testing.T) {
	a := temporal.PlainMonthDayOf(temporal.January, 1)
	b := temporal.PlainMonthDayOf(temporal.March, 1)
	assert.Equal(t, -1, a.Compare(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

func TestPlainMonthDayString(t *testing.T) {
	assert.Equal(t, "--02-29", temporal.PlainMonthDayOf(temporal.February, 29).String())
}
