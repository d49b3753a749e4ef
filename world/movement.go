package world

import "fmt"

// Direction is the direction the block is rolled towards.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

type roll struct {
	delta       Pt
	orientation Orientation
}

// rolls is indexed by [orientation][direction].
// Rolling over a long side moves the block by 1 cell and keeps its
// orientation. Tipping it over a short side moves the reference cell by 1 or
// 2 cells, depending on which end ends up at Pos.
var rolls = [3][4]roll{
	Standing: {
		Up:    {Pt{0, 1}, HorizontalY},
		Down:  {Pt{0, -2}, HorizontalY},
		Left:  {Pt{-2, 0}, HorizontalX},
		Right: {Pt{1, 0}, HorizontalX},
	},
	HorizontalX: {
		Up:    {Pt{0, 1}, HorizontalX},
		Down:  {Pt{0, -1}, HorizontalX},
		Left:  {Pt{-1, 0}, Standing},
		Right: {Pt{2, 0}, Standing},
	},
	HorizontalY: {
		Up:    {Pt{0, 2}, Standing},
		Down:  {Pt{0, -1}, Standing},
		Left:  {Pt{-1, 0}, HorizontalY},
		Right: {Pt{1, 0}, HorizontalY},
	},
}

// Roll returns where the block ends up after rolling once in direction d.
func Roll(pos Pt, o Orientation, d Direction) (Pt, Orientation) {
	Assert(int(o) < len(rolls))
	Assert(int(d) < len(rolls[o]))
	r := rolls[o][d]
	return pos.Plus(r.delta), r.orientation
}
