package world

import "fmt"

// Intent is what the player asks the simulation to do in one tick.
type Intent uint8

const (
	IntentNone Intent = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	// ToggleView is for the renderer. The simulation ignores it.
	ToggleView
	Quit
	nIntents
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case ToggleView:
		return "toggle-view"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("intent(%d)", uint8(i))
	}
}

func (i Intent) Valid() bool {
	return i < nIntents
}

// Direction returns the direction of a move intent.
func (i Intent) Direction() (Direction, bool) {
	switch i {
	case MoveUp:
		return Up, true
	case MoveDown:
		return Down, true
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	default:
		return 0, false
	}
}

// PlayerInput is the set of controls that were triggered in one frame.
type PlayerInput struct {
	Up         bool
	Down       bool
	Left       bool
	Right      bool
	ToggleView bool
	Quit       bool
}

// Intent reduces the input of a frame to the single intent the simulation
// gets. Quit beats everything. Between directions the order is Up, Down,
// Left, Right.
func (p PlayerInput) Intent() Intent {
	switch {
	case p.Quit:
		return Quit
	case p.Up:
		return MoveUp
	case p.Down:
		return MoveDown
	case p.Left:
		return MoveLeft
	case p.Right:
		return MoveRight
	case p.ToggleView:
		return ToggleView
	default:
		return IntentNone
	}
}
