package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunState_String(t *testing.T) {
	tests := []struct {
		state    RunState
		expected string
	}{
		{StateLoading, "Loading"},
		{StateRunning, "Running"},
		{StateFailed, "Failed"},
		{RunState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestRunStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, RunState(0), StateLoading)
	assert.Equal(t, RunState(1), StateRunning)
	assert.Equal(t, RunState(2), StateFailed)
}
