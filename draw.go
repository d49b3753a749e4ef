package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/bloxorz/world"
	"image"
	"image/color"
)

var colorBackground = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
var colorGameArea = color.NRGBA{R: 24, G: 28, B: 38, A: 255}
var colorHud = color.NRGBA{R: 230, G: 237, B: 240, A: 255}
var colorSolid = color.NRGBA{R: 170, G: 170, B: 170, A: 255}
var colorFragile = color.NRGBA{R: 230, G: 140, B: 60, A: 255}
var colorSwitchOn = color.NRGBA{R: 70, G: 200, B: 90, A: 255}
var colorSwitchOff = color.NRGBA{R: 160, G: 50, B: 50, A: 255}
var colorBridge = color.NRGBA{R: 90, G: 130, B: 200, A: 255}
var colorGoal = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var colorGoalRim = color.NRGBA{R: 250, G: 200, B: 60, A: 255}
var colorBlock = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
var colorBlockTop = color.NRGBA{R: 130, G: 20, B: 20, A: 255}
var colorFlash = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var colorDebug = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorBackground)

	g.DrawPlayScreen(SubImage(screen, g.gameArea))

	if g.enableDebugAreas {
		g.DrawDebugControls(SubImage(screen, g.horizontalDebugArea))
	}
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	screen.Fill(colorGameArea)
	g.DrawHud(SubImage(screen, hudArea))

	board := SubImage(screen, boardArea)
	view := NewBoardView(g.visWorld.View, g.world.Grid.Size(), g.world.Block,
		boardArea.Size(), float64(g.TileSize))
	g.DrawGrid(board, view)
	g.DrawFlashes(board, view)
	g.DrawBlock(board, view)
	if g.visWorld.View == ViewCoordinates {
		g.DrawCoordinates(board, view)
	}

	if g.world.State.Terminal() {
		DrawText(board, g.defaultFont, g.world.FinalOutcome().Report(), true,
			true, colorHud)
	}
}

func (g *Gui) DrawHud(screen *ebiten.Image) {
	w := &g.world
	left := SubImage(screen, image.Rect(30, 20, GameWidth/2, HudHeight))
	DrawText(left, g.defaultFont, fmt.Sprintf("Level %d/%d",
		w.Progress.Level+1, w.Levels.NumLevels()), false, false, colorHud)
	leftBottom := SubImage(screen, image.Rect(30, 70, GameWidth/2, HudHeight))
	DrawText(leftBottom, g.smallFont, fmt.Sprintf("Moves %d   Total %d",
		w.Moves, w.TotalMoves), false, false, colorHud)

	switchText := "off"
	if w.SwitchOn {
		switchText = "on"
	}
	right := SubImage(screen, image.Rect(GameWidth/2, 20, GameWidth-30, HudHeight))
	DrawText(right, g.smallFont, fmt.Sprintf("bridges %s   view %s   %s",
		switchText, g.visWorld.View, w.State), false, false, colorHud)
}

func (g *Gui) DrawGrid(screen *ebiten.Image, view BoardView) {
	size := g.world.Grid.Size()
	ts := view.TileSize
	gap := max(ts/30, 1)
	for y := range size.Y {
		for x := range size.X {
			pt := world.Pt{X: x, Y: y}
			px, py := view.Cell(pt)
			switch g.world.Grid.Get(pt) {
			case world.Solid:
				DrawRect(screen, px+gap, py+gap, ts-2*gap, ts-2*gap, colorSolid)
			case world.Fragile:
				DrawRect(screen, px+gap, py+gap, ts-2*gap, ts-2*gap, colorFragile)
			case world.SwitchFloor:
				DrawRect(screen, px+gap, py+gap, ts-2*gap, ts-2*gap, colorSolid)
				clr := colorSwitchOff
				if g.world.SwitchOn {
					clr = colorSwitchOn
				}
				DrawCircle(screen, px+ts/2, py+ts/2, ts/4, clr)
			case world.SwitchBridge:
				if g.world.SwitchOn {
					DrawRect(screen, px+gap, py+gap, ts-2*gap, ts-2*gap,
						colorBridge)
				} else {
					DrawRectOutline(screen, px+gap, py+gap, ts-2*gap, ts-2*gap,
						gap*2, colorBridge)
				}
			case world.Goal:
				DrawRect(screen, px+gap, py+gap, ts-2*gap, ts-2*gap, colorGoalRim)
				DrawRect(screen, px+ts/6, py+ts/6, ts*2/3, ts*2/3, colorGoal)
			default:
			}
		}
	}
}

func (g *Gui) DrawFlashes(screen *ebiten.Image, view BoardView) {
	for _, f := range g.visWorld.Flashes {
		alpha := uint8(200 * f.NFramesLeft / FlashNFrames)
		clr := colorFlash
		clr.A = alpha
		for _, pt := range f.Cells {
			px, py := view.Cell(pt)
			DrawRectOutline(screen, px, py, view.TileSize, view.TileSize,
				max(view.TileSize/15, 2), clr)
		}
	}
}

func (g *Gui) DrawBlock(screen *ebiten.Image, view BoardView) {
	b := g.world.Block
	minX, minY, maxX, maxY := view.FootprintRect(b)
	scale := 1.0
	if b.Falling {
		scale = FallScale(b.FallProgress, g.world.FallDepth)
	}
	// Shrink around the center, so the block looks like it goes down.
	centerX, centerY := (minX+maxX)/2, (minY+maxY)/2
	width, height := (maxX-minX)*scale, (maxY-minY)*scale
	inset := view.TileSize / 10 * scale
	DrawRect(screen, centerX-width/2+inset, centerY-height/2+inset,
		width-2*inset, height-2*inset, colorBlock)

	// A standing block shows its top face.
	if b.Orientation == world.Standing {
		top := width / 3
		DrawRect(screen, centerX-top/2, centerY-top/2, top, top, colorBlockTop)
	}
}

func (g *Gui) DrawCoordinates(screen *ebiten.Image, view BoardView) {
	size := g.world.Grid.Size()
	for y := range size.Y {
		for x := range size.X {
			px, py := view.Cell(world.Pt{X: x, Y: y})
			cell := SubImage(screen, image.Rect(int(px)+4, int(py)+4,
				int(px+view.TileSize), int(py+view.TileSize)))
			DrawText(cell, g.smallFont, fmt.Sprintf("%d,%d", x, y), false,
				false, colorDebug)
		}
	}
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	screen.Fill(colorDebug)
	origin := g.horizontalDebugArea.Min

	// Play/pause button.
	button := SubImage(screen, g.playButton().Sub(origin))
	label := "||"
	if g.playbackPaused {
		label = ">"
	}
	DrawText(button, g.defaultFont, label, true, true, colorGameArea)

	// Play bar.
	barRect := g.playBar().Sub(origin)
	bar := SubImage(screen, barRect)
	bar.Fill(colorSolid)

	// Play bar cursor.
	nFrames := max(int64(len(g.playthrough.History)), 1)
	factor := float64(g.frameIdx) / float64(nFrames)
	cursorWidth := float64(DebugHeight) / 4
	cursorX := factor*float64(barRect.Dx()) - cursorWidth/2
	DrawRect(bar, cursorX, 0, cursorWidth, float64(barRect.Dy()), colorBlock)
	DrawText(bar, g.smallFont, fmt.Sprintf("%d/%d", g.frameIdx, nFrames),
		true, true, colorGameArea)
}
