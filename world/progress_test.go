package world

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTransition(t *testing.T) {
	deep := Signals{FallProgress: 2.1, FallDepth: 2}
	tests := []struct {
		name     string
		from     State
		signals  Signals
		expected State
	}{
		{"playing stays", Playing, Signals{}, Playing},
		{"playing falls", Playing, Signals{Falling: true}, Falling},
		{"falling continues", Falling, Signals{FallProgress: 1, FallDepth: 2},
			Falling},
		{"falling at exact depth continues", Falling,
			Signals{FallProgress: 2, FallDepth: 2}, Falling},
		{"falling fails", Falling, deep, LevelFailed},
		{"falling clears", Falling, Signals{Win: true, FallProgress: 2.1,
			FallDepth: 2}, LevelCleared},
		{"cleared moves on", LevelCleared, Signals{}, Playing},
		{"cleared last level", LevelCleared, Signals{LastLevel: true},
			GameCompleted},
		{"failed is final", LevelFailed, Signals{Falling: true}, LevelFailed},
		{"completed is final", GameCompleted, deep, GameCompleted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Transition(tc.from, tc.signals))
		})
	}
}

func TestState_Terminal(t *testing.T) {
	assert.False(t, Playing.Terminal())
	assert.False(t, Falling.Terminal())
	assert.False(t, LevelCleared.Terminal())
	assert.True(t, LevelFailed.Terminal())
	assert.True(t, GameCompleted.Terminal())
}

func TestOutcome_Report(t *testing.T) {
	assert.Contains(t, OutcomeWon.Report(), "CONGRATULATIONS")
	assert.Contains(t, OutcomeLost.Report(), "GAME OVER")
	assert.Equal(t, OutcomeLost.Report(), OutcomeNone.Report())
}
