package world

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// fallTicks is how many ticks the default descent takes: the first tick at
// which FallProgress goes past FallDepth.
const fallTicks = 87

func newWorld(t *testing.T, levels ...string) World {
	w, err := NewWorld(LevelTexts(levels), DefaultParams())
	require.NoError(t, err)
	return w
}

func step(t *testing.T, w *World, intents ...Intent) {
	for _, intent := range intents {
		require.NoError(t, w.Step(intent))
	}
}

// settle runs idle ticks until the block stops falling and returns how many
// ticks it took.
func settle(t *testing.T, w *World) int {
	ticks := 0
	for w.State == Falling {
		step(t, w, IntentNone)
		ticks++
		require.Less(t, ticks, 10000, "the block never landed")
	}
	return ticks
}

func TestNewWorld(t *testing.T) {
	w := newWorld(t, "-o\nSo\n")
	assert.Equal(t, Playing, w.State)
	assert.Equal(t, Block{Pos: Pt{0, 0}, Orientation: Standing}, w.Block)
	assert.Equal(t, Progress{}, w.Progress)
	assert.False(t, w.SwitchOn)
	assert.Equal(t, Pt{2, 2}, w.Grid.Size())
}

func TestNewWorld_NoLevels(t *testing.T) {
	_, err := NewWorld(LevelTexts{}, DefaultParams())
	assert.ErrorIs(t, err, ErrLevelNotFound)

	_, err = NewWorld(LevelTexts{"oo"}, DefaultParams())
	assert.ErrorIs(t, err, ErrEmptyLevel)
}

func TestWorld_RollOffTheEdge(t *testing.T) {
	w := newWorld(t, "So\n")

	step(t, &w, MoveRight)
	assert.Equal(t, Pt{1, 0}, w.Block.Pos)
	assert.Equal(t, HorizontalX, w.Block.Orientation)
	assert.True(t, w.Block.Falling)
	assert.Equal(t, Falling, w.State)
	assert.Equal(t, 1, w.Moves)

	// Moves are ignored while falling.
	step(t, &w, MoveLeft, MoveUp)
	assert.Equal(t, Pt{1, 0}, w.Block.Pos)
	assert.Equal(t, 1, w.Moves)
	assert.Equal(t, 1, w.TotalMoves)
	assert.InDelta(t, 2*w.FallRate, w.Block.FallProgress, 1e-9)

	ticks := settle(t, &w) + 2
	assert.Equal(t, fallTicks, ticks)
	assert.Equal(t, LevelFailed, w.State)
	assert.Equal(t, OutcomeLost, w.Outcome)
	assert.Equal(t, OutcomeLost, w.FinalOutcome())

	// Nothing happens after the run ended.
	before := w.StateBytes()
	step(t, &w, MoveRight, IntentNone)
	assert.Equal(t, before, w.StateBytes())
}

func TestWorld_OnlyMovesCount(t *testing.T) {
	w := newWorld(t, "Sooooo\n")
	step(t, &w, IntentNone, ToggleView, IntentNone)
	assert.Equal(t, 0, w.Moves)
	assert.Equal(t, Pt{0, 0}, w.Block.Pos)

	step(t, &w, MoveRight, ToggleView, MoveRight, MoveLeft)
	assert.Equal(t, 3, w.Moves)
	assert.Equal(t, 3, w.TotalMoves)
	assert.Equal(t, Playing, w.State)
}

func TestWorld_InvalidIntent(t *testing.T) {
	w := newWorld(t, "Soo\n")
	before := w.StateBytes()
	err := w.Step(Intent(42))
	assert.ErrorIs(t, err, ErrInvalidIntent)
	assert.Equal(t, before, w.StateBytes())
}

func TestWorld_Quit(t *testing.T) {
	w := newWorld(t, "Soo\n")
	step(t, &w, MoveRight)
	before := w.StateBytes()

	step(t, &w, Quit)
	assert.True(t, w.QuitRequested)
	assert.Equal(t, before, w.StateBytes())
	assert.Equal(t, OutcomeLost, w.FinalOutcome())
}

func TestWorld_SwitchBridge(t *testing.T) {
	// Lying on the switch turns the bridge on, the block then stands on it.
	w := newWorld(t, "SosBo\n")
	step(t, &w, MoveRight)
	assert.True(t, w.SwitchOn)
	assert.True(t, w.JustToggled)
	step(t, &w, MoveRight)
	assert.False(t, w.JustToggled)
	assert.Equal(t, Pt{3, 0}, w.Block.Pos)
	assert.Equal(t, Playing, w.State)

	// Without the switch the same bridge does not hold.
	w = newWorld(t, "SooBo\n")
	step(t, &w, MoveRight, MoveRight)
	assert.Equal(t, Falling, w.State)
}

func TestWorld_SwitchOffUnderBlock(t *testing.T) {
	// Standing on the switch twice turns the bridge on and off again.
	w := newWorld(t, "SoosBo\n")
	step(t, &w, MoveRight, MoveRight)
	assert.True(t, w.SwitchOn)
	step(t, &w, MoveLeft, MoveRight)
	assert.False(t, w.SwitchOn)
	step(t, &w, MoveRight)
	assert.Equal(t, Falling, w.State)
}

func TestWorld_NextLevel(t *testing.T) {
	w := newWorld(t, "SsoT\n", "oo\nSooT\n")
	step(t, &w, MoveRight)
	assert.True(t, w.SwitchOn)
	step(t, &w, MoveRight)
	assert.True(t, w.Win)
	assert.Equal(t, Falling, w.State)

	settle(t, &w)
	assert.Equal(t, LevelCleared, w.State)
	assert.Equal(t, 0, w.Progress.Level)

	// The tick after a cleared level starts the next one, whatever the
	// intent.
	step(t, &w, MoveRight)
	assert.Equal(t, Playing, w.State)
	assert.Equal(t, 1, w.Progress.Level)
	assert.Equal(t, 0, w.Moves)
	assert.Equal(t, 2, w.TotalMoves)
	assert.False(t, w.SwitchOn)
	assert.False(t, w.Win)
	assert.Equal(t, Block{Pos: Pt{0, 0}}, w.Block)

	step(t, &w, MoveRight, MoveRight)
	settle(t, &w)
	assert.Equal(t, LevelCleared, w.State)
	assert.Equal(t, OutcomeNone, w.Outcome)
	step(t, &w, IntentNone)
	assert.Equal(t, GameCompleted, w.State)
	assert.Equal(t, OutcomeWon, w.Outcome)
	assert.Equal(t, OutcomeWon, w.FinalOutcome())
	assert.Equal(t, 4, w.TotalMoves)
}

func TestWorld_ShippedLevelsAreSolvable(t *testing.T) {
	w, err := NewWorld(shippedLevelFiles(), DefaultParams())
	require.NoError(t, err)

	for i, l := range shippedLevels {
		require.Equal(t, i, w.Progress.Level)
		for _, intent := range l.solution {
			require.Equal(t, Playing, w.State, l.file)
			step(t, &w, intent)
		}
		assert.Equal(t, len(l.solution), w.Moves, l.file)
		require.True(t, w.Win, l.file)
		settle(t, &w)
		require.Equal(t, LevelCleared, w.State, l.file)
		step(t, &w, IntentNone)
	}
	assert.Equal(t, GameCompleted, w.State)
	assert.Equal(t, OutcomeWon, w.Outcome)
}
