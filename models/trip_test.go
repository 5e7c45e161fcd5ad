package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"requested can be cancelled", TripStatusRequested, TripStatusCancelled, true},
		{"requested can be accepted", TripStatusRequested, TripStatusAccepted, true},
		{"requested can be started", TripStatusRequested, TripStatusStarted, true},
		{"requested cannot complete directly", TripStatusRequested, TripStatusCompleted, false},
		{"accepted can be started", TripStatusAccepted, TripStatusStarted, true},
		{"accepted can be cancelled", TripStatusAccepted, TripStatusCancelled, true},
		{"started can complete", TripStatusStarted, TripStatusCompleted, true},
		{"started can be cancelled", TripStatusStarted, TripStatusCancelled, true},
		{"completed is terminal", TripStatusCompleted, TripStatusCancelled, false},
		{"cancelled is terminal", TripStatusCancelled, TripStatusStarted, false},
		{"cancelled cannot re-cancel", TripStatusCancelled, TripStatusCancelled, false},
		{"unknown status has no transitions", "unknown", TripStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(TripStatusCompleted))
	assert.True(t, IsTerminalStatus(TripStatusCancelled))
	assert.False(t, IsTerminalStatus(TripStatusRequested))
	assert.False(t, IsTerminalStatus(TripStatusAccepted))
	assert.False(t, IsTerminalStatus(TripStatusStarted))
}
