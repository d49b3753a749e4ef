package world

import (
	"fmt"
)

// World rules
// - The block rolls one step per accepted move, following the roll table.
// - Moves are only accepted while Playing. While the block falls, intents
// are ignored and do not count as moves.
// - After every move (and once right after a level is loaded) the block is
// checked against the grid: switches are pressed first, then support is
// checked with the resulting switch state.
// - A block that loses support, or stands on the goal, falls. Once it fell
// deep enough the level is either cleared (goal) or failed (anything else).
// - A cleared level is followed by the next one. A failed level ends the run.

// World is one play session. It owns the grid and the block of the level
// being played and the progress carried over from one level to the next.
// All fields are public so the renderer, tools and tests can inspect them,
// but only the World changes them.
type World struct {
	Params
	Progress
	Levels   LevelSource
	Grid     Grid
	Block    Block
	SwitchOn bool
	Win      bool
	State    State
	// QuitRequested is set by a Quit intent. Whoever runs the World decides
	// what to do about it, between ticks.
	QuitRequested bool
	// JustToggled says the switch flipped during the last Step.
	JustToggled bool
}

// NewWorld starts a session at the first level of levels.
func NewWorld(levels LevelSource, params Params) (w World, err error) {
	w.Params = params
	w.Levels = levels
	err = w.LoadLevel(0)
	return
}

// LoadLevel replaces the grid and block with those of level idx. Moves, the
// win flag and the switch are reset. Total moves and the outcome are kept.
func (w *World) LoadLevel(idx int) error {
	l, err := w.Levels.Level(idx)
	if err != nil {
		return err
	}
	w.Grid = l.Grid
	w.Block = Block{Pos: l.Start, Orientation: Standing}
	w.Progress.Level = idx
	w.Moves = 0
	w.Win = false
	w.SwitchOn = false
	w.State = Playing

	// A level may start the block on a switch or over nothing.
	w.evaluate()
	return nil
}

// Step advances the simulation by one tick.
func (w *World) Step(intent Intent) error {
	if !intent.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidIntent, uint8(intent))
	}
	w.JustToggled = false

	if intent == Quit {
		w.QuitRequested = true
		return nil
	}

	switch w.State {
	case Playing:
		if d, ok := intent.Direction(); ok {
			w.move(d)
		}
	case Falling:
		w.Block.FallProgress = integrateFall(w.Block.FallProgress, w.FallRate)
		w.State = Transition(w.State, Signals{
			Win:          w.Win,
			FallProgress: w.Block.FallProgress,
			FallDepth:    w.FallDepth,
		})
		if w.State == LevelFailed {
			w.Outcome = OutcomeLost
		}
	case LevelCleared:
		last := w.Progress.Level+1 >= w.Levels.NumLevels()
		w.State = Transition(w.State, Signals{LastLevel: last})
		if w.State == GameCompleted {
			w.Outcome = OutcomeWon
			return nil
		}
		return w.LoadLevel(w.Progress.Level + 1)
	}
	return nil
}

func (w *World) move(d Direction) {
	w.Block.Pos, w.Block.Orientation = Roll(w.Block.Pos, w.Block.Orientation, d)
	w.Moves++
	w.TotalMoves++
	w.evaluate()
}

func (w *World) evaluate() {
	e := Evaluate(&w.Grid, w.Block, w.SwitchOn, w.Params)
	w.SwitchOn = e.SwitchOn
	w.JustToggled = w.JustToggled || e.Toggled
	w.Win = e.Win
	w.Block.Falling = e.Falling
	w.State = Transition(w.State, Signals{Falling: e.Falling})
}

// FinalOutcome is the outcome to report when the run stops. Quitting before
// the game is completed counts as a loss.
func (w *World) FinalOutcome() Outcome {
	if w.Outcome == OutcomeWon {
		return OutcomeWon
	}
	return OutcomeLost
}
