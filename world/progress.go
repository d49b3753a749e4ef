package world

// State is the stage a level session is in.
type State uint8

const (
	// Playing accepts moves.
	Playing State = iota
	// Falling runs the descent, no input is accepted.
	Falling
	// LevelCleared lasts one tick, after which the next level is loaded.
	LevelCleared
	// LevelFailed ends the run. There is no retry.
	LevelFailed
	// GameCompleted ends the run after the last level was cleared.
	GameCompleted
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Falling:
		return "falling"
	case LevelCleared:
		return "level-cleared"
	case LevelFailed:
		return "level-failed"
	case GameCompleted:
		return "game-completed"
	default:
		return "unknown"
	}
}

// Terminal is true for the states that end the run.
func (s State) Terminal() bool {
	return s == LevelFailed || s == GameCompleted
}

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Report is the message shown to the player when the run ends.
func (o Outcome) Report() string {
	if o == OutcomeWon {
		return "CONGRATULATIONS! YOU HAVE COMPLETED THE GAME"
	}
	return "GAME OVER! BETTER LUCK NEXT TIME :p"
}

// Progress is what survives from one level to the next.
type Progress struct {
	Level      int
	Moves      int
	TotalMoves int
	Outcome    Outcome
}

// Signals are the facts the state machine looks at.
type Signals struct {
	Falling      bool
	Win          bool
	FallProgress float64
	FallDepth    float64
	LastLevel    bool
}

// Transition returns the state that follows s. It is a pure function. The
// descent itself is integrated elsewhere and only enters here through
// FallProgress.
func Transition(s State, sig Signals) State {
	switch s {
	case Playing:
		if sig.Falling {
			return Falling
		}
	case Falling:
		if sig.FallProgress > sig.FallDepth {
			if sig.Win {
				return LevelCleared
			}
			return LevelFailed
		}
	case LevelCleared:
		if sig.LastLevel {
			return GameCompleted
		}
		return Playing
	}
	return s
}

// integrateFall advances the descent by one tick.
func integrateFall(progress float64, rate float64) float64 {
	return progress + rate
}
