package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateSingleFlight(t *testing.T) {
	g := NewGate()

	release, err := g.Begin("summary")
	require.NoError(t, err)

	_, err = g.Begin("summary")
	assert.ErrorIs(t, err, ErrInFlight)

	// Other actions are independent.
	releaseOther, err := g.Begin("mcq")
	require.NoError(t, err)
	releaseOther()

	release()

	release2, err := g.Begin("summary")
	require.NoError(t, err)
	release2()
}

func TestGateStage(t *testing.T) {
	g := NewGate()

	_, ok := g.Stage("summary")
	assert.False(t, ok)

	release, err := g.Begin("summary")
	require.NoError(t, err)
	defer release()

	stage, ok := g.Stage("summary")
	require.True(t, ok)
	assert.Empty(t, stage)

	g.SetStage("summary", "extracting")
	stage, ok = g.Stage("summary")
	require.True(t, ok)
	assert.Equal(t, "extracting", stage)

	// Stageless actions ignore SetStage.
	g.SetStage("mcq", "analyzing")
	_, ok = g.Stage("mcq")
	assert.False(t, ok)
}

func TestGateReleaseClearsStage(t *testing.T) {
	g := NewGate()

	release, err := g.Begin("flashcards")
	require.NoError(t, err)
	g.SetStage("flashcards", "analyzing")
	release()

	_, ok := g.Stage("flashcards")
	assert.False(t, ok)
}
