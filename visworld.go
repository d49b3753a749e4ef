package main

import (
	"github.com/marisvali/bloxorz/world"
	"image"
)

// ViewMode is how the board is looked at. The space key cycles through them.
type ViewMode int64

const (
	// ViewOverview fits the whole level on the board.
	ViewOverview ViewMode = iota
	// ViewFollow keeps the block in the center, at a fixed zoom.
	ViewFollow
	// ViewCoordinates is the overview with the coordinates of every cell.
	ViewCoordinates
	nViewModes
)

func (v ViewMode) String() string {
	switch v {
	case ViewOverview:
		return "overview"
	case ViewFollow:
		return "follow"
	case ViewCoordinates:
		return "coordinates"
	default:
		return "unknown"
	}
}

// FlashNFrames is how long the bridges light up after the switch flips.
const FlashNFrames = 30

// Flash highlights some cells for a while, then it goes away. It is a visual
// effect only, nothing in the World corresponds to it.
type Flash struct {
	Cells       []world.Pt
	NFramesLeft int64
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects and for the view
// mode. Draw() relies on the information in VisWorld to draw things, just like
// it relies on World.
//
// VisWorld runs parallel to World and is meant to be updated alongside World,
// in the Update() function, with the same intent.
type VisWorld struct {
	View    ViewMode
	Flashes []*Flash
}

func NewVisWorld() (v VisWorld) {
	v.View = ViewOverview
	return v
}

func (v *VisWorld) Step(w *world.World, intent world.Intent) {
	if intent == world.ToggleView {
		v.View = (v.View + 1) % nViewModes
	}

	// Step existing flashes.
	for _, f := range v.Flashes {
		f.NFramesLeft--
	}

	// Filter out obsolete flashes.
	n := 0
	for i := range v.Flashes {
		if v.Flashes[i].NFramesLeft > 0 {
			v.Flashes[n] = v.Flashes[i]
			n++
		}
	}
	v.Flashes = v.Flashes[:n]

	// Create a new flash if the bridges just changed.
	if w.JustToggled {
		f := Flash{NFramesLeft: FlashNFrames}
		size := w.Grid.Size()
		for y := range size.Y {
			for x := range size.X {
				pt := world.Pt{X: x, Y: y}
				if w.Grid.Get(pt) == world.SwitchBridge {
					f.Cells = append(f.Cells, pt)
				}
			}
		}
		v.Flashes = append(v.Flashes, &f)
	}
}

// BoardView maps cells of the grid to pixels on the board.
// Cell Y grows up while pixel Y grows down, so the top row of the grid is
// drawn at the top of the board.
type BoardView struct {
	OriginX  float64
	OriginY  float64
	TileSize float64
	NRows    int
}

// NewBoardView computes where the grid goes on a board of the given size.
func NewBoardView(mode ViewMode, gridSize world.Pt, block world.Block,
	board image.Point, followTileSize float64) (b BoardView) {
	b.NRows = gridSize.Y
	if mode == ViewFollow {
		b.TileSize = followTileSize
		// Center the block.
		minX, minY, maxX, maxY := b.FootprintRect(block)
		b.OriginX = float64(board.X)/2 - (minX+maxX)/2
		b.OriginY = float64(board.Y)/2 - (minY+maxY)/2
		return
	}

	if gridSize.X == 0 || gridSize.Y == 0 {
		return
	}
	b.TileSize = min(float64(board.X)/float64(gridSize.X),
		float64(board.Y)/float64(gridSize.Y))
	b.OriginX = (float64(board.X) - b.TileSize*float64(gridSize.X)) / 2
	b.OriginY = (float64(board.Y) - b.TileSize*float64(gridSize.Y)) / 2
	return
}

// Cell returns the top-left pixel of a cell.
func (b BoardView) Cell(pt world.Pt) (x, y float64) {
	x = b.OriginX + float64(pt.X)*b.TileSize
	y = b.OriginY + float64(b.NRows-1-pt.Y)*b.TileSize
	return
}

// FootprintRect returns the pixel rectangle covered by the block.
func (b BoardView) FootprintRect(block world.Block) (minX, minY, maxX, maxY float64) {
	for i, pt := range block.Footprint() {
		x, y := b.Cell(pt)
		if i == 0 {
			minX, minY, maxX, maxY = x, y, x, y
		}
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}
	maxX += b.TileSize
	maxY += b.TileSize
	return
}

// FallScale is how big the block looks while it falls. It shrinks from 1 to 0
// as it goes down.
func FallScale(progress float64, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return min(max(1-progress/depth, 0), 1)
}
