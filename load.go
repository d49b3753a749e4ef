package main

import (
	"github.com/marisvali/bloxorz/world"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"slices"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// It's a hack but possibly a quick and very useful one.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if g.FSys != &embeddedFiles {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		g.Config = LoadConfig(g.FSys, g.devModeEnabled)
		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	g.defaultFont = LoadFont(44)
	g.smallFont = LoadFont(22)
}

// LoadConfig reads the configuration, or the developer configuration if
// devMode is set. Rules missing from the file get their default values.
func LoadConfig(fsys FS, devMode bool) (c Config) {
	c.Rules = world.DefaultParams()
	c.TileSize = 96
	if devMode {
		LoadYAML(fsys, "data/config-dev.yaml", &c)
	} else {
		LoadYAML(fsys, "data/config.yaml", &c)
	}
	return
}

// LoadLevelTexts reads the levels the game is played with.
func (g *Gui) LoadLevelTexts() world.LevelTexts {
	files := g.Levels
	if g.LevelFile != "" {
		files = []string{g.LevelFile}
	}
	if len(files) == 0 {
		files = GetFiles(g.FSys, "data/levels", "*.txt")
		slices.Sort(files)
	}
	levels, err := world.ReadLevelTexts(world.LevelFiles{
		FSys:  g.FSys,
		Files: files,
	})
	Check(err)
	return levels
}

func LoadFont(size float64) font.Face {
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
	return face
}
