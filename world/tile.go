package world

// TileKind is the kind of ground in one cell of the grid.
type TileKind uint8

const (
	Empty        TileKind = iota // No ground, the block falls through.
	Solid                        // Permanent ground.
	Fragile                      // Ground that may give way, see Params.FragileBreaks.
	SwitchFloor                  // Pressing it toggles the switch flag.
	SwitchBridge                 // Solid while the switch is on, Empty otherwise.
	Goal                         // Standing on it clears the level.
)

func (k TileKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Solid:
		return "solid"
	case Fragile:
		return "fragile"
	case SwitchFloor:
		return "switch"
	case SwitchBridge:
		return "bridge"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

// tileKindFromChar maps a level file character to a tile kind. Anything that
// is not recognized, stray whitespace included, is Empty.
func tileKindFromChar(c byte) TileKind {
	switch c {
	case 'o', 'S':
		return Solid
	case '.':
		return Fragile
	case 'h', 's':
		return SwitchFloor
	case 'H', 'B':
		return SwitchBridge
	case 'T':
		return Goal
	default:
		return Empty
	}
}

// Effective resolves a SwitchBridge against the switch flag. Every other kind
// is returned unchanged.
func (k TileKind) Effective(switchOn bool) TileKind {
	if k != SwitchBridge {
		return k
	}
	if switchOn {
		return Solid
	}
	return Empty
}

// Supports says whether a cell of this kind bears the block, for a block in
// orientation o, given the current switch flag. A Goal only bears a standing
// block.
func (k TileKind) Supports(o Orientation, switchOn bool) bool {
	switch k.Effective(switchOn) {
	case Solid, Fragile, SwitchFloor:
		return true
	case Goal:
		return o == Standing
	default:
		return false
	}
}
