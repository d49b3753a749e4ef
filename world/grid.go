package world

// Grid holds the tiles of the level currently being played. It is rebuilt
// every time a level is loaded.
// Coordinates outside of the grid are not an error. They read as Empty and
// report that they are out of bounds, which the support check treats as
// "nothing underneath".
type Grid struct {
	cells []TileKind
	size  Pt
}

func NewGrid(size Pt) Grid {
	g := Grid{}
	g.size = size
	g.cells = make([]TileKind, size.X*size.Y)
	return g
}

func (g *Grid) Size() Pt {
	return g.size
}

func (g *Grid) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < g.size.Y &&
		pt.X < g.size.X
}

// Set changes the kind of an in-bounds cell. Setting a cell outside the grid
// does nothing.
func (g *Grid) Set(pos Pt, kind TileKind) {
	if !g.InBounds(pos) {
		return
	}
	g.cells[pos.Y*g.size.X+pos.X] = kind
}

// At returns the kind of the cell at pos and whether pos is inside the grid.
func (g *Grid) At(pos Pt) (TileKind, bool) {
	if !g.InBounds(pos) {
		return Empty, false
	}
	return g.cells[pos.Y*g.size.X+pos.X], true
}

// Get is At without the bounds flag.
func (g *Grid) Get(pos Pt) TileKind {
	k, _ := g.At(pos)
	return k
}
