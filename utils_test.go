package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddInt64(t *testing.T) {
	sum, under, over := addInt64(5, 3)
	assert.Equal(t, int64(8), sum)
	assert.False(t, under)
	assert.False(t, over)

	_, under, over = addInt64(math.MaxInt64, 1)
	assert.False(t, under)
	assert.True(t, over)

	_, under, over = addInt64(math.MinInt64, -1)
	assert.True(t, under)
	assert.False(t, over)

	// A negative v1 with positive v2 cannot overflow, all the way down to
	// the int64 boundary itself.
	sum, under, over = addInt64(math.MinInt64, 5)
	assert.Equal(t, int64(math.MinInt64+5), sum)
	assert.False(t, under)
	assert.False(t, over)

	sum, under, over = addInt64(-1, 5)
	assert.Equal(t, int64(4), sum)
	assert.False(t, under)
	assert.False(t, over)

	sum, under, over = addInt64(math.MaxInt64, -5)
	assert.Equal(t, int64(math.MaxInt64-5), sum)
	assert.False(t, under)
	assert.False(t, over)
}

func TestMulInt64(t *testing.T) {
	product, under, over := mulInt64(0, 12345)
	assert.Equal(t, int64(0), product)
	assert.False(t, under || over)

	product, under, over = mulInt64(6, 7)
	assert.Equal(t, int64(42), product)
	assert.False(t, under || over)

	_, under, over = mulInt64(math.MaxInt64, 2)
	assert.False(t, under)
	assert.True(t, over)

	_, under, over = mulInt64(math.MinInt64, 2)
	assert.True(t, under)
	assert.False(t, over)
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, sign(-5))
	assert.Equal(t, 0, sign(0))
	assert.Equal(t, 1, sign(5))
}

func TestRoundQuantity(t *testing.T) {
	// 7/2 rounded HalfExpand -> 4 (ties away from zero).
	assert.Equal(t, int64(4), roundQuantity(7, 2, 1, HalfExpand, false))
	// 5/2 rounded Trunc -> 2.
	assert.Equal(t, int64(2), roundQuantity(5, 2, 1, Trunc, false))
	// 5/2 rounded Ceil (positive) -> 3.
	assert.Equal(t, int64(3), roundQuantity(5, 2, 1, Ceil, false))
	// 5/2 rounded Floor (positive) -> 2.
	assert.Equal(t, int64(2), roundQuantity(5, 2, 1, Floor, false))
	// Magnitude 5, denominator 2, negative value rounded Floor -> rounds the
	// magnitude up (away from zero), matching "toward negative infinity" once
	// the caller reapplies the sign.
	assert.Equal(t, int64(3), roundQuantity(5, 2, 1, Floor, true))
	// Increment of 5 groups the quantity before rounding.
	assert.Equal(t, int64(10), roundQuantity(12, 1, 5, HalfExpand, false))
}
