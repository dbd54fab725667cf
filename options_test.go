package temporal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-temporal/temporal"
)

func TestPlainTimeRoundRejectsCalendarUnit(t *testing.T) {
	noon := temporal.NoonPlainTime()
	_, err := noon.Round(temporal.UnitDay, 1, temporal.HalfExpand)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, temporal.ErrInvalidOption))
}

func TestDurationRoundRejectsUnknownOptions(t *testing.T) {
	d := temporal.DurationOf(0, 0, 0, 0, 1, 0, 0, 0, 0, 0)
	_, err := d.Round(temporal.RoundOptions{
		SmallestUnit:      temporal.Unit(99),
		RoundingIncrement: 1,
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, temporal.ErrInvalidOption))

	_, err = d.Round(temporal.RoundOptions{
		SmallestUnit:      temporal.UnitMinute,
		RoundingIncrement: 0,
	})
	assert.Error(t, err)
}
