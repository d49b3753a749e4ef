package main

import (
	"image"
)

// Visual areas
// ------------
//
// - The game area: the space on which the level and the HUD are drawn. Has a
// fixed size, known at compile time.
// - The HUD: a strip at the top of the game area with the level and the move
// counters.
// - The board: the rest of the game area, where the grid and the block are
// drawn. How the grid maps to the board depends on the view mode.
// - The debug area: a strip under the game area with the playback controls.
// It is only there during playback.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const GameWidth = 1200
const GameHeight = 900
const HudHeight = 110
const DebugHeight = 80
const BoardMargin = 40

// The areas below are all relative to the game area.
var hudArea = image.Rect(0, 0, GameWidth, HudHeight)
var boardArea = image.Rect(BoardMargin, HudHeight+BoardMargin,
	GameWidth-BoardMargin, GameHeight-BoardMargin)

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// The screen bitmap returned here is scaled by ebitengine to fit the
	// window, keeping its aspect ratio. The screen gets the aspect ratio of
	// the window, so there are no black bars, and is made just large enough
	// for the game area (plus the debug area, if enabled) to fit in it.
	gameWidth := GameWidth
	gameHeight := GameHeight
	if g.enableDebugAreas {
		gameHeight += DebugHeight
	}
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = gameWidth
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = gameHeight
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	// Center the game area horizontally and vertically.
	minX := (screenWidth - gameWidth) / 2
	minY := (screenHeight - gameHeight) / 2
	g.gameArea = image.Rect(minX, minY, minX+GameWidth, minY+GameHeight)
	g.horizontalDebugArea = image.Rect(minX, minY+GameHeight,
		minX+GameWidth, minY+GameHeight+DebugHeight)
	return
}

// playButton is the play/pause button of the debug area, in screen
// coordinates.
func (g *Gui) playButton() image.Rectangle {
	a := g.horizontalDebugArea
	return image.Rect(a.Min.X, a.Min.Y, a.Min.X+DebugHeight, a.Max.Y)
}

// playBar is the bar used to seek through a playthrough, in screen
// coordinates.
func (g *Gui) playBar() image.Rectangle {
	a := g.horizontalDebugArea
	return image.Rect(a.Min.X+DebugHeight+10, a.Min.Y, a.Max.X-10, a.Max.Y)
}
