package main

import (
	"github.com/google/uuid"
	"github.com/marisvali/bloxorz/world"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestPlaythroughFilename(t *testing.T) {
	row := dbRow{
		startMoment:       time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		simulationVersion: 1,
		inputVersion:      2,
	}
	assert.Equal(t, "vali/20260304-050607.bloxorz-1-2",
		PlaythroughFilename("vali", row))

	row.simulationVersion = -1
	row.inputVersion = -1
	assert.Equal(t, "vali/20260304-050607.bloxorz--1--1",
		PlaythroughFilename("vali", row))
}

func TestVerifyPlaythrough(t *testing.T) {
	p := world.NewPlaythrough(world.LevelTexts{"SoT"}, world.DefaultParams(), 1)
	row := dbRow{id: p.Id, data: p.Serialize()}
	assert.NoError(t, VerifyPlaythrough(row))

	row.id = uuid.New()
	assert.Error(t, VerifyPlaythrough(row))

	row.data = []byte("truncated")
	assert.Error(t, VerifyPlaythrough(row))

	p.SimulationVersion = world.SimulationVersion + 1
	row = dbRow{id: p.Id, data: p.Serialize()}
	assert.ErrorIs(t, VerifyPlaythrough(row), world.ErrSimulationVersion)
}
