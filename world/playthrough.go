package world

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
	"slices"
)

// SimulationVersion identifies the behavior of World. If the same level and
// the same intents can lead to a different result than before, this number
// must change.
const SimulationVersion = 1

// InputVersion is the version of the byte representation of the Playthrough
// structure. If serializing a Playthrough produces different bytes than
// before, this number must change.
const InputVersion = 1

// Playthrough represents all the input sent to a World during a run, along
// with the levels and rules the run was played with. Given this input and a
// compatible simulation, the same run is reproduced.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Params
	Levels  LevelTexts
	Id      uuid.UUID
	History []Intent
}

func NewPlaythrough(levels LevelTexts, params Params,
	releaseVersion int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = releaseVersion
	p.Params = params
	p.Levels = levels
	p.Id = uuid.New()
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	e := encoder{w: buf}
	e.write(p.InputVersion)
	e.write(p.SimulationVersion)
	e.write(p.ReleaseVersion)
	e.write(p.Params)
	e.write(int64(len(p.Levels)))
	for _, l := range p.Levels {
		e.writeString(l)
	}
	e.write(p.Id)
	writeSlice(&e, p.History)
	if e.err != nil {
		// Writing fixed-size values to a bytes.Buffer does not fail unless a
		// field has a type encoding/binary does not support.
		panic(e.err)
	}
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.Levels = slices.Clone(p.Levels)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	raw, err := Unzip(data)
	if err != nil {
		return Playthrough{}, fmt.Errorf("unzip playthrough: %w", err)
	}
	d := decoder{r: bytes.NewReader(raw)}
	d.read(&p.InputVersion)
	if d.err == nil && p.InputVersion != InputVersion {
		return Playthrough{}, fmt.Errorf("can't deserialize this playthrough - "+
			"we are at InputVersion %d and playthrough was generated with "+
			"InputVersion %d", InputVersion, p.InputVersion)
	}
	d.read(&p.SimulationVersion)
	d.read(&p.ReleaseVersion)
	d.read(&p.Params)
	var nLevels int64
	d.read(&nLevels)
	for i := int64(0); i < nLevels && d.err == nil; i++ {
		p.Levels = append(p.Levels, d.readString())
	}
	d.read(&p.Id)
	p.History = readSlice[Intent](&d)
	if d.err != nil {
		return Playthrough{}, fmt.Errorf("read playthrough: %w", d.err)
	}
	return p, nil
}

// NewWorldFromPlaythrough creates the World a playthrough starts from.
func NewWorldFromPlaythrough(p Playthrough) (World, error) {
	if p.SimulationVersion != SimulationVersion {
		return World{}, fmt.Errorf("%w: playthrough has %d, we are at %d",
			ErrSimulationVersion, p.SimulationVersion, SimulationVersion)
	}
	return NewWorld(p.Levels, p.Params)
}

// Replay runs all the intents of a playthrough on w, stopping at the first
// error. It also stops when the run ends or a Quit was recorded.
func Replay(w *World, history []Intent) error {
	for i, intent := range history {
		if err := w.Step(intent); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if w.State.Terminal() || w.QuitRequested {
			break
		}
	}
	return nil
}
