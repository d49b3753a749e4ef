package world

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Level is a parsed level: the tiles and the cell where the block starts.
type Level struct {
	Grid  Grid
	Start Pt
	// Text is the data the level was parsed from. Keeping it lets a
	// Playthrough carry its levels along.
	Text string
}

// ParseLevel reads a level in the character grid format:
//
//	-  empty           o  solid        .  fragile
//	h s  switch        H B  bridge     T  goal
//	S  solid, and the block starts here standing
//
// Every other character is empty. The first line of text is the top row of
// the level. A line that is shorter than the widest line is padded with empty
// cells, so ragged or trailing-blank input is accepted as is. If more than one
// S is present, the last one wins.
func ParseLevel(data []byte) (l Level, err error) {
	text := string(data)
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	l.Text = text
	l.Grid = NewGrid(Pt{width, len(lines)})
	foundStart := false
	for row, line := range lines {
		y := len(lines) - 1 - row
		for x := 0; x < len(line); x++ {
			pos := Pt{x, y}
			l.Grid.Set(pos, tileKindFromChar(line[x]))
			if line[x] == 'S' {
				l.Start = pos
				foundStart = true
			}
		}
	}

	if !foundStart {
		return Level{}, ErrEmptyLevel
	}
	return
}

// LevelSource provides the levels of a game, in the order they are played.
type LevelSource interface {
	NumLevels() int
	Level(idx int) (Level, error)
}

// LevelFiles reads levels from files in fsys.
type LevelFiles struct {
	FSys  fs.FS
	Files []string
}

func (l LevelFiles) NumLevels() int {
	return len(l.Files)
}

func (l LevelFiles) Level(idx int) (Level, error) {
	if idx < 0 || idx >= len(l.Files) {
		return Level{}, fmt.Errorf("level %d: %w", idx, ErrLevelNotFound)
	}
	data, err := fs.ReadFile(l.FSys, l.Files[idx])
	if errors.Is(err, fs.ErrNotExist) {
		return Level{}, fmt.Errorf("level %d (%s): %w", idx, l.Files[idx],
			ErrLevelNotFound)
	}
	if err != nil {
		return Level{}, err
	}
	level, err := ParseLevel(data)
	if err != nil {
		return Level{}, fmt.Errorf("level %d (%s): %w", idx, l.Files[idx], err)
	}
	return level, nil
}

// LevelTexts holds the levels in memory, as text.
type LevelTexts []string

func (l LevelTexts) NumLevels() int {
	return len(l)
}

func (l LevelTexts) Level(idx int) (Level, error) {
	if idx < 0 || idx >= len(l) {
		return Level{}, fmt.Errorf("level %d: %w", idx, ErrLevelNotFound)
	}
	level, err := ParseLevel([]byte(l[idx]))
	if err != nil {
		return Level{}, fmt.Errorf("level %d: %w", idx, err)
	}
	return level, nil
}

// ReadLevelTexts returns the text of every level in src.
func ReadLevelTexts(src LevelSource) (texts LevelTexts, err error) {
	for i := range src.NumLevels() {
		l, err := src.Level(i)
		if err != nil {
			return nil, err
		}
		texts = append(texts, l.Text)
	}
	return
}
