package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	nycLat, nycLon := 40.7128, -74.0060
	laLat, laLon := 34.0522, -118.2437

	t.Run("same point is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateDistance(nycLat, nycLon, nycLat, nycLon))
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := CalculateDistance(nycLat, nycLon, laLat, laLon)
		ba := CalculateDistance(laLat, laLon, nycLat, nycLon)
		assert.Equal(t, ab, ba)
	})

	t.Run("NYC to LA", func(t *testing.T) {
		d := CalculateDistance(nycLat, nycLon, laLat, laLon)
		assert.InDelta(t, 3935.75, d, 1.0)
	})

	t.Run("short hop stays stable", func(t *testing.T) {
		// Two points ~111m apart; the asin form must not collapse to zero
		d := CalculateDistance(40.0, -74.0, 40.001, -74.0)
		assert.Greater(t, d, 0.0)
		assert.Less(t, d, 1.0)
	})
}

func TestCalculateFare(t *testing.T) {
	t.Run("zero distance pays base fare", func(t *testing.T) {
		assert.Equal(t, 5.0, CalculateFare(0))
	})

	t.Run("base plus per-km rate", func(t *testing.T) {
		assert.Equal(t, 30.0, CalculateFare(10))
		assert.Equal(t, 13.33, CalculateFare(3.333))
	})

	t.Run("consistent with computed distance", func(t *testing.T) {
		d := CalculateDistance(40.7128, -74.0060, 34.0522, -118.2437)
		assert.Equal(t, Round2(BaseFare+PerKmRate*d), CalculateFare(d))
	})
}
