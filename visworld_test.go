package main

import (
	"github.com/marisvali/bloxorz/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"testing"
)

func TestVisWorld_ToggleViewCycles(t *testing.T) {
	w, err := world.NewWorld(world.LevelTexts{"Soo"}, world.DefaultParams())
	require.NoError(t, err)
	v := NewVisWorld()

	seen := []ViewMode{v.View}
	for range nViewModes {
		v.Step(&w, world.ToggleView)
		seen = append(seen, v.View)
	}
	assert.Equal(t, []ViewMode{ViewOverview, ViewFollow, ViewCoordinates,
		ViewOverview}, seen)

	v.Step(&w, world.MoveRight)
	assert.Equal(t, ViewOverview, v.View)
}

func TestVisWorld_FlashOnToggle(t *testing.T) {
	w, err := world.NewWorld(world.LevelTexts{"SosBB"}, world.DefaultParams())
	require.NoError(t, err)
	v := NewVisWorld()

	require.NoError(t, w.Step(world.MoveRight))
	v.Step(&w, world.MoveRight)
	require.Len(t, v.Flashes, 1)
	assert.Equal(t, []world.Pt{{X: 3, Y: 0}, {X: 4, Y: 0}}, v.Flashes[0].Cells)

	for range FlashNFrames - 1 {
		require.NoError(t, w.Step(world.IntentNone))
		v.Step(&w, world.IntentNone)
	}
	assert.Len(t, v.Flashes, 1)
	require.NoError(t, w.Step(world.IntentNone))
	v.Step(&w, world.IntentNone)
	assert.Empty(t, v.Flashes)
}

func TestBoardView_Overview(t *testing.T) {
	grid := world.Pt{X: 4, Y: 2}
	b := NewBoardView(ViewOverview, grid, world.Block{}, image.Pt(800, 600), 50)
	assert.Equal(t, 200.0, b.TileSize)
	assert.Equal(t, 0.0, b.OriginX)
	assert.Equal(t, 100.0, b.OriginY)

	// The top row of the grid is at the top of the board.
	x, y := b.Cell(world.Pt{X: 0, Y: 1})
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 100.0, y)
	x, y = b.Cell(world.Pt{X: 3, Y: 0})
	assert.Equal(t, 600.0, x)
	assert.Equal(t, 300.0, y)
}

func TestBoardView_FollowCentersBlock(t *testing.T) {
	grid := world.Pt{X: 10, Y: 10}
	board := image.Pt(800, 600)
	for _, o := range []world.Orientation{world.Standing, world.HorizontalX,
		world.HorizontalY} {
		block := world.Block{Pos: world.Pt{X: 7, Y: 2}, Orientation: o}
		b := NewBoardView(ViewFollow, grid, block, board, 50)
		assert.Equal(t, 50.0, b.TileSize)
		minX, minY, maxX, maxY := b.FootprintRect(block)
		assert.InDelta(t, 400, (minX+maxX)/2, 1e-9, o.String())
		assert.InDelta(t, 300, (minY+maxY)/2, 1e-9, o.String())
	}
}

func TestBoardView_FootprintRect(t *testing.T) {
	b := BoardView{TileSize: 10, NRows: 5}
	minX, minY, maxX, maxY := b.FootprintRect(world.Block{
		Pos: world.Pt{X: 1, Y: 1}, Orientation: world.HorizontalY})
	assert.Equal(t, []float64{10, 20, 20, 40}, []float64{minX, minY, maxX, maxY})

	minX, minY, maxX, maxY = b.FootprintRect(world.Block{
		Pos: world.Pt{X: 1, Y: 1}, Orientation: world.HorizontalX})
	assert.Equal(t, []float64{10, 30, 30, 40}, []float64{minX, minY, maxX, maxY})
}

func TestFallScale(t *testing.T) {
	assert.Equal(t, 1.0, FallScale(0, 2))
	assert.Equal(t, 0.5, FallScale(1, 2))
	assert.Equal(t, 0.0, FallScale(3, 2))
	assert.Equal(t, 0.0, FallScale(1, 0))
}
