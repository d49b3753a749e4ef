package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/bloxorz/world"
	"golang.org/x/image/font"
	"image"
	"os"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a Windows executable or a .wasm on the browser. It labels
// the experience a player was given.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// It must also change when anything else about the executable changes:
// - communication with the server is enabled or disabled
// - asserts are enabled or disabled
// - the shipped levels or rules change
// - graphics change
// There is one executable per variation, not one executable with a
// configuration per variation. A recording then always says exactly what the
// player got.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
	DebugCrash
)

type Gui struct {
	Config
	world               world.World
	visWorld            VisWorld
	FSys                FS
	folderWatcher       FolderWatcher
	defaultFont         font.Face
	smallFont           font.Face
	playthrough         world.Playthrough
	frameIdx            int64
	state               GameState
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	enableDebugAreas    bool
	gameArea            image.Rectangle
	horizontalDebugArea image.Rectangle
	username            string
	uploadChannel       chan world.Playthrough
	devModeEnabled      bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	// LevelFile, if set, is the only level played. Useful while authoring
	// a level.
	LevelFile string `yaml:"LevelFile"`
	// Levels are played in this order. If empty, every .txt file in
	// data/levels is played, sorted by name.
	Levels []string     `yaml:"Levels"`
	Rules  world.Params `yaml:"Rules"`
	// TileSize is the size in pixels of a cell in the follow view.
	TileSize int64 `yaml:"TileSize"`
	// UploadEveryNFrames controls how often a running playthrough is sent to
	// the server. It is always sent once more when the game ends.
	UploadEveryNFrames int64 `yaml:"UploadEveryNFrames"`
}

func main() {
	ebiten.SetWindowSize(GameWidth, GameHeight)
	ebiten.SetWindowTitle("Bloxorz")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	var g Gui
	g.username = getUsername()
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Let the watcher remember the current timestamps, so that the first
		// check during Update() doesn't report a change.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()
	g.visWorld = NewVisWorld()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	var err error
	if g.StartState == "Playback" {
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough, err = world.DeserializePlaythrough(ReadFile(g.PlaybackFile))
		Check(err)
	} else if g.StartState == "DebugCrash" {
		g.state = DebugCrash
		g.enableDebugAreas = true
		// Step() can be made to fail by an assert. While debugging the crash
		// we want to see it happen, not have it take the window down.
		CheckCrashes = false
		g.playthrough, err = world.DeserializePlaythrough(ReadFile(g.PlaybackFile))
		Check(err)
	} else if g.StartState == "Play" {
		g.state = PlayScreen
		g.playthrough = world.NewPlaythrough(g.LoadLevelTexts(), g.Rules,
			ReleaseVersion)
		// A channel size of 10 means the channel will buffer 10 playthroughs
		// before it is full. The game never waits for it, see
		// uploadPlaythrough().
		g.uploadChannel = make(chan world.Playthrough, 10)
		go UploadPlaythroughs(g.username, g.uploadChannel)
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world, err = world.NewWorldFromPlaythrough(g.playthrough)
	Check(err)

	// The last input caused the crash, so run the whole playthrough except the
	// last input. The crash can then be triggered by hand, one frame at a time.
	if g.state == DebugCrash {
		g.frameIdx = max(int64(len(g.playthrough.History))-1, 0)
		g.replayUntil(g.frameIdx)
	}

	err = ebiten.RunGame(&g)
	Check(err)

	if g.state == PlayScreen {
		fmt.Println(g.world.FinalOutcome().Report())
	}
}
