package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.555))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 20.0, Round2(20))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(2000), ToMinorUnits(20.00))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	// Rounds, never truncates
	assert.Equal(t, int64(1056), ToMinorUnits(10.555))
	assert.Equal(t, int64(0), ToMinorUnits(0))
}
