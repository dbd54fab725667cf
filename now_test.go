package temporal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-temporal/temporal"
)

func TestSystemClockNowIsCloseToWallClock(t *testing.T) {
	before := time.Now().UnixNano()
	inst := temporal.SystemClockNow()
	after := time.Now().UnixNano()

	assert.GreaterOrEqual(t, inst.EpochNanoseconds(), before-int64(time.Second))
	assert.LessOrEqual(t, inst.EpochNanoseconds(), after+int64(time.Second))
}

func TestSystemTimeZoneResolves(t *testing.T) {
	zone, err := temporal.SystemTimeZone()
	require.NoError(t, err)
	assert.NotEmpty(t, zone.ID())
}

func TestNowInReturnsConsistentProjection(t *testing.T) {
	zdt, err := temporal.NowIn(temporal.UTCTimeZone(), temporal.ISO8601)
	require.NoError(t, err)
	assert.Equal(t, "UTC", zdt.TimeZone().ID())
	assert.Equal(t, temporal.ISO8601, zdt.Calendar())
}

func TestNowPlainDateTimeAndNowPlainDateAgree(t *testing.T) {
	dt, err := temporal.NowPlainDateTime()
	require.NoError(t, err)
	date, err := temporal.NowPlainDate()
	require.NoError(t, err)

	// Both derive from the same wall clock moment; the date projection
	// should match the date component of the datetime projection, modulo
	// the (vanishingly unlikely) case of a midnight rollover between calls.
	assert.True(t, date.Equal(dt.Date()) || date.Equal(mustAddOneDay(t, dt.Date())))
}

func mustAddOneDay(t *testing.T, d temporal.PlainDate) temporal.PlainDate {
	t.Helper()
	out, err := d.Add(temporal.Duration{Days: 1}, temporal.Constrain)
	require.NoError(t, err)
	return out
}
