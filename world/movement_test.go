package world

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRoll_AllOrientationsAndDirections(t *testing.T) {
	start := Pt{5, 7}
	type result struct {
		pos Pt
		o   Orientation
	}
	expected := map[Orientation]map[Direction]result{
		Standing: {
			Up:    {Pt{5, 8}, HorizontalY},
			Down:  {Pt{5, 5}, HorizontalY},
			Left:  {Pt{3, 7}, HorizontalX},
			Right: {Pt{6, 7}, HorizontalX},
		},
		HorizontalX: {
			Up:    {Pt{5, 8}, HorizontalX},
			Down:  {Pt{5, 6}, HorizontalX},
			Left:  {Pt{4, 7}, Standing},
			Right: {Pt{7, 7}, Standing},
		},
		HorizontalY: {
			Up:    {Pt{5, 9}, Standing},
			Down:  {Pt{5, 6}, Standing},
			Left:  {Pt{4, 7}, HorizontalY},
			Right: {Pt{6, 7}, HorizontalY},
		},
	}

	n := 0
	for _, o := range []Orientation{Standing, HorizontalX, HorizontalY} {
		for _, d := range []Direction{Up, Down, Left, Right} {
			pos, newO := Roll(start, o, d)
			assert.Equal(t, expected[o][d].pos, pos, "%v %v", o, d)
			assert.Equal(t, expected[o][d].o, newO, "%v %v", o, d)
			n++
		}
	}
	assert.Equal(t, 12, n)
}

// Rolling one way and then back puts the block where it was. This is what
// makes the table a roll and not an arbitrary set of jumps.
func TestRoll_OppositeDirectionsUndo(t *testing.T) {
	opposite := map[Direction]Direction{Up: Down, Down: Up, Left: Right,
		Right: Left}
	start := Pt{10, 10}
	for _, o := range []Orientation{Standing, HorizontalX, HorizontalY} {
		for d, back := range opposite {
			pos, newO := Roll(start, o, d)
			pos, newO = Roll(pos, newO, back)
			assert.Equal(t, start, pos, "%v %v", o, d)
			assert.Equal(t, o, newO, "%v %v", o, d)
		}
	}
}

func TestBlock_Footprint(t *testing.T) {
	b := Block{Pos: Pt{2, 3}}
	assert.Equal(t, []Pt{{2, 3}}, b.Footprint())

	b.Orientation = HorizontalX
	assert.Equal(t, []Pt{{2, 3}, {3, 3}}, b.Footprint())

	b.Orientation = HorizontalY
	assert.Equal(t, []Pt{{2, 3}, {2, 4}}, b.Footprint())

	// Asking twice gives the same cells.
	assert.Equal(t, b.Footprint(), b.Footprint())
}
