// Command replay runs recorded playthroughs without a window and reports how
// each of them ended.
//
//	replay [-trace] file...
package main

import (
	"flag"
	"fmt"
	"github.com/marisvali/bloxorz/world"
	"io"
	"os"
)

type summary struct {
	Id           string
	Release      int64
	Frames       int
	Levels       int
	LevelReached int
	TotalMoves   int
	State        world.State
	Outcome      world.Outcome
	Quit         bool
	RegressionId string
}

func main() {
	var trace bool
	flag.BoolVar(&trace, "trace", false, "print the block after every move")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay [-trace] file...")
		os.Exit(2)
	}

	failed := false
	for _, name := range flag.Args() {
		data, err := os.ReadFile(name)
		if err == nil {
			var out io.Writer
			if trace {
				out = os.Stdout
			}
			var s summary
			s, err = summarize(data, out)
			if err == nil {
				fmt.Printf("%s: %s\n", name, s)
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// summarize replays a serialized playthrough. If trace is not nil, every
// accepted move is written to it.
func summarize(data []byte, trace io.Writer) (s summary, err error) {
	p, err := world.DeserializePlaythrough(data)
	if err != nil {
		return
	}
	w, err := world.NewWorldFromPlaythrough(p)
	if err != nil {
		return
	}

	for i, intent := range p.History {
		moves := w.TotalMoves
		if err = w.Step(intent); err != nil {
			return s, fmt.Errorf("frame %d: %w", i, err)
		}
		s.Frames = i + 1
		if trace != nil && w.TotalMoves != moves {
			_, _ = fmt.Fprintf(trace, "frame %d level %d %s: %v %s\n", i,
				w.Progress.Level+1, intent, w.Block.Pos, w.Block.Orientation)
		}
		if w.State.Terminal() || w.QuitRequested {
			break
		}
	}

	s.RegressionId, err = world.RegressionId(&p)
	if err != nil {
		return
	}
	s.Id = p.Id.String()
	s.Release = p.ReleaseVersion
	s.Levels = len(p.Levels)
	s.LevelReached = w.Progress.Level + 1
	s.TotalMoves = w.TotalMoves
	s.State = w.State
	s.Outcome = w.FinalOutcome()
	s.Quit = w.QuitRequested
	return
}

func (s summary) String() string {
	return fmt.Sprintf("%s level %d/%d, %d moves, %d frames, %s (id %s, "+
		"release %d, regression %s)", s.Outcome, s.LevelReached, s.Levels,
		s.TotalMoves, s.Frames, s.State, s.Id, s.Release, s.RegressionId)
}
