package world

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes()
// they are considered "the same", even though they may be implemented
// differently.
// The world is "the same" if it has:
// - the same level, state, switch and win flag
// - the block at the same place, with the same orientation and descent
// - the same move counters and outcome
// The grid is not included. It only changes when the level changes and the
// level index is included.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	e := encoder{w: buf}
	e.write(int64(w.Progress.Level))
	e.write(w.State)
	e.write(w.SwitchOn)
	e.write(w.Win)
	e.write(int64(w.Block.Pos.X))
	e.write(int64(w.Block.Pos.Y))
	e.write(w.Block.Orientation)
	e.write(w.Block.FallProgress)
	e.write(w.Block.Falling)
	e.write(int64(w.Moves))
	e.write(int64(w.TotalMoves))
	e.write(w.Outcome)
	if e.err != nil {
		panic(e.err)
	}
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough.
// - If the RegressionId hasn't changed, the refactoring did not alter the
// playthrough.
func RegressionId(p *Playthrough) (string, error) {
	hash := sha256.New()

	w, err := NewWorldFromPlaythrough(*p)
	if err != nil {
		return "", err
	}
	hash.Write(w.StateBytes())

	for i := range p.History {
		if err := w.Step(p.History[i]); err != nil {
			return "", err
		}
		hash.Write(w.StateBytes())
		if w.State.Terminal() || w.QuitRequested {
			break
		}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
