package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/bloxorz/world"
	"image"
	"slices"
)

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		// Only the looks are reloaded. Levels and rules belong to the
		// playthrough and stay as they were when it started.
		rules, levels := g.Rules, g.Levels
		g.LoadGuiData()
		g.Rules, g.Levels = rules, levels
	}

	switch g.state {
	case PlayScreen:
		return g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}
	return nil
}

// ReadPlayerInput turns the keys pressed in this frame into a PlayerInput.
// Every key press is one move, holding a key down doesn't repeat it.
func (g *Gui) ReadPlayerInput() (input world.PlayerInput) {
	input.Up = g.JustPressed(ebiten.KeyArrowUp) || g.JustPressed(ebiten.KeyW)
	input.Down = g.JustPressed(ebiten.KeyArrowDown) || g.JustPressed(ebiten.KeyS)
	input.Left = g.JustPressed(ebiten.KeyArrowLeft) || g.JustPressed(ebiten.KeyA)
	input.Right = g.JustPressed(ebiten.KeyArrowRight) || g.JustPressed(ebiten.KeyD)
	input.ToggleView = g.JustPressed(ebiten.KeySpace)
	input.Quit = g.JustPressed(ebiten.KeyEscape) || g.JustPressed(ebiten.KeyQ)
	return
}

func (g *Gui) UpdatePlayScreen() error {
	intent := g.ReadPlayerInput().Intent()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, intent)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	Check(g.world.Step(intent))
	g.visWorld.Step(&g.world, intent)
	g.frameIdx++

	if g.UploadEveryNFrames > 0 && g.frameIdx%g.UploadEveryNFrames == 0 {
		g.uploadPlaythrough()
	}

	if g.world.State.Terminal() || g.world.QuitRequested {
		g.uploadPlaythrough()
		return ebiten.Termination
	}
	return nil
}

// uploadPlaythrough hands a copy of the playthrough to the uploader. If the
// uploader is behind, this copy is dropped rather than stall the game. The
// next one contains everything this one did.
func (g *Gui) uploadPlaythrough() {
	select {
	case g.uploadChannel <- *g.playthrough.Clone():
	default:
	}
}

// UploadPlaythroughs runs on its own goroutine for the whole game.
func UploadPlaythroughs(user string, ch chan world.Playthrough) {
	initialized := false
	for p := range ch {
		if !initialized {
			InitializeIdInDbHttp(user, p.ReleaseVersion, p.SimulationVersion,
				p.InputVersion, p.Id)
			initialized = true
		}
		UploadDataToDbHttp(user, p.ReleaseVersion, p.SimulationVersion,
			p.InputVersion, p.Id, p.Serialize())
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) LeftClickPressedOn(button image.Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(button)
}

// replayUntil rebuilds the World from the start of the playthrough and runs
// all the frames before frameIdx. It is the only way to go back in time.
func (g *Gui) replayUntil(frameIdx int64) {
	var err error
	g.world, err = world.NewWorldFromPlaythrough(g.playthrough)
	Check(err)
	g.visWorld = NewVisWorld()
	for i := range frameIdx {
		intent := g.playthrough.History[i]
		Check(g.world.Step(intent))
		g.visWorld.Step(&g.world, intent)
	}
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) || g.JustClicked(g.playButton()) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	bar := g.playBar()
	if g.LeftClickPressedOn(bar) {
		x, _ := ebiten.CursorPosition()
		dx := int64(x - bar.Min.X)
		targetFrameIdx = dx * nFrames / int64(bar.Dx())
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = min(max(targetFrameIdx, 0), nFrames-1)

	if targetFrameIdx != g.frameIdx {
		g.replayUntil(targetFrameIdx)
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused {
		intent := g.playthrough.History[g.frameIdx]
		Check(g.world.Step(intent))
		g.visWorld.Step(&g.world, intent)

		if g.frameIdx < nFrames-1 {
			g.frameIdx++
		}
	}
}

func (g *Gui) JustClicked(button image.Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(button)
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) ||
		g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < nFrames {
		intent := g.playthrough.History[g.frameIdx]
		Check(g.world.Step(intent))
		g.visWorld.Step(&g.world, intent)
		g.frameIdx++
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) ||
		g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.frameIdx--
		g.replayUntil(g.frameIdx)
	}
}
