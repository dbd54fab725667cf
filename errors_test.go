package temporal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-temporal/temporal"
)

func TestErrorIsBySentinelKind(t *testing.T) {
	_, err := temporal.TryPlainDateOf(2023, temporal.February, 30)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, temporal.ErrRange))
	assert.False(t, errors.Is(err, temporal.ErrParse))
}

func TestErrorMessageMentionsKind(t *testing.T) {
	_, err := temporal.ParsePlainDate("not-a-date")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, temporal.ErrParse))
	assert.Contains(t, err.Error(), "parse")
}
