package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-temporal/temporal"
)

func TestExtentConversions(t *testing.T) {
	e := 90 * temporal.ExtentMinute
	assert.Equal(t, int64(90*60*1_000_000_000), e.Nanoseconds())
	assert.Equal(t, 1.5, e.Hours())
	assert.Equal(t, 90.0, e.Minutes())
	assert.Equal(t, 5400.0, e.Seconds())
}

func TestExtentTruncate(t *testing.T) {
	e := 95 * temporal.ExtentMinute
	truncated := e.Truncate(temporal.ExtentHour)
	assert.Equal(t, temporal.ExtentHour, truncated)

	assert.Equal(t, e, e.Truncate(0))
	assert.Equal(t, e, e.Truncate(-1))
}
