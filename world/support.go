package world

// Params are the tunable constants of the simulation. They are part of a
// Playthrough, so a recording replays with the rules it was played with.
type Params struct {
	// FallRate is how far the block descends per tick while falling.
	FallRate float64 `yaml:"FallRate"`
	// FallDepth is how far the block has to descend before the level ends.
	FallDepth float64 `yaml:"FallDepth"`
	// FragileBreaks makes a Fragile tile give way under a standing block.
	FragileBreaks bool `yaml:"FragileBreaks"`
}

func DefaultParams() Params {
	return Params{
		FallRate:  0.023,
		FallDepth: 2,
	}
}

// Evaluation is the outcome of checking the block against the grid.
type Evaluation struct {
	SwitchOn bool
	Toggled  bool
	Falling  bool
	Win      bool
	// Presses is the number of SwitchFloor cells under the footprint.
	Presses int
}

// Evaluate decides what happens to a block that just arrived at its current
// position. It does not change the grid or the block.
//
// The order matters and is:
// 1. Count the SwitchFloor cells under the footprint. An odd count flips the
// switch, an even count leaves it as it was.
// 2. Check support using the switch flag from step 1. A bridge that was just
// switched on already holds the block, one that was just switched off
// doesn't.
// 3. A standing block on the goal wins and falls through the goal.
func Evaluate(g *Grid, b Block, switchOn bool, params Params) (e Evaluation) {
	footprint := b.Footprint()

	for _, pt := range footprint {
		if kind, _ := g.At(pt); kind == SwitchFloor {
			e.Presses++
		}
	}
	e.SwitchOn = switchOn
	if e.Presses%2 == 1 {
		e.SwitchOn = !e.SwitchOn
		e.Toggled = true
	}

	for _, pt := range footprint {
		kind, inBounds := g.At(pt)
		if !inBounds || !kind.Supports(b.Orientation, e.SwitchOn) {
			e.Falling = true
		}
		if b.Orientation == Standing && kind == Fragile && params.FragileBreaks {
			e.Falling = true
		}
	}

	if b.Orientation == Standing {
		if kind, _ := g.At(b.Pos); kind == Goal {
			e.Win = true
			e.Falling = true
		}
	}
	return
}
