package world

import "fmt"

// Orientation says how the block lies on the grid.
type Orientation uint8

const (
	Standing    Orientation = iota // Upright, on a single cell.
	HorizontalX                    // Lying along X, on Pos and Pos+(1,0).
	HorizontalY                    // Lying along Y, on Pos and Pos+(0,1).
)

func (o Orientation) String() string {
	switch o {
	case Standing:
		return "standing"
	case HorizontalX:
		return "horizontal-x"
	case HorizontalY:
		return "horizontal-y"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// Block is the 1x1x2 prism the player rolls around.
// Pos is always a whole grid cell. Only FallProgress changes while the block
// is falling, it is how far the block went down and it is what the renderer
// uses to animate the descent.
type Block struct {
	Pos          Pt
	Orientation  Orientation
	FallProgress float64
	Falling      bool
}

// Footprint returns the cells the block rests on. The first cell is always
// Pos.
func (b Block) Footprint() []Pt {
	switch b.Orientation {
	case Standing:
		return []Pt{b.Pos}
	case HorizontalX:
		return []Pt{b.Pos, b.Pos.Plus(Pt{1, 0})}
	case HorizontalY:
		return []Pt{b.Pos, b.Pos.Plus(Pt{0, 1})}
	default:
		Assert(false)
		return nil
	}
}
