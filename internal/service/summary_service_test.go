package service

import (
	"context"
	"strings"
	"testing"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/pkg/flight"
	"study-assistant-be/pkg/extract"
	"study-assistant-be/pkg/gen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longDocument() []byte {
	return []byte(strings.Repeat("Photosynthesis converts light into chemical energy. ", 10))
}

func TestSummaryAnalyze(t *testing.T) {
	deps := newTestDeps()
	deps.generator.summaryFn = func(text string) (*gen.SummaryResult, error) {
		return &gen.SummaryResult{
			Summary:     "Plants make sugar from light.",
			KeyPoints:   []string{"light reactions", "Calvin cycle"},
			Definitions: []gen.TermDefinition{{Term: "chloroplast", Definition: "organelle"}},
		}, nil
	}
	svc := NewSummaryService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	resp, err := svc.Analyze(context.Background(), extract.Document{
		Name: "photosynthesis.notes.txt",
		Data: longDocument(),
	})

	require.NoError(t, err)
	// The title is the filename with only its final extension stripped.
	assert.Equal(t, "photosynthesis.notes", resp.Title)
	assert.Equal(t, "Plants make sugar from light.", resp.Summary)
	assert.NotEmpty(t, resp.OriginalText)

	// The session is persisted, newest first, without the original text.
	sessions := svc.List(context.Background())
	require.Len(t, sessions, 1)
	assert.Empty(t, sessions[0].OriginalText)
}

func TestSummaryAnalyzeListOrder(t *testing.T) {
	deps := newTestDeps()
	svc := NewSummaryService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	_, err := svc.Analyze(context.Background(), extract.Document{Name: "first.txt", Data: longDocument()})
	require.NoError(t, err)
	_, err = svc.Analyze(context.Background(), extract.Document{Name: "second.txt", Data: longDocument()})
	require.NoError(t, err)

	sessions := svc.List(context.Background())
	require.Len(t, sessions, 2)
	assert.Equal(t, "second", sessions[0].Title)
	assert.Equal(t, "first", sessions[1].Title)
}

func TestSummaryAnalyzeTooShort(t *testing.T) {
	deps := newTestDeps()
	svc := NewSummaryService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	_, err := svc.Analyze(context.Background(), extract.Document{
		Name: "tiny.txt",
		Data: []byte("barely anything   "),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, svc.List(context.Background()))
}

func TestSummaryAnalyzeGenerationFailure(t *testing.T) {
	deps := newTestDeps()
	deps.generator.summaryFn = func(string) (*gen.SummaryResult, error) {
		return nil, errFakeModel
	}
	svc := NewSummaryService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	saves := deps.repo.Saves()
	_, err := svc.Analyze(context.Background(), extract.Document{Name: "doc.txt", Data: longDocument()})

	assert.ErrorIs(t, err, ErrGeneration)
	// A failed analysis never persists anything.
	assert.Equal(t, saves, deps.repo.Saves())
	assert.Empty(t, svc.List(context.Background()))
}

func TestSummaryAnalyzeBusy(t *testing.T) {
	deps := newTestDeps()
	svc := NewSummaryService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	release, err := deps.gate.Begin(constant.ActionSummary)
	require.NoError(t, err)
	defer release()

	_, err = svc.Analyze(context.Background(), extract.Document{Name: "doc.txt", Data: longDocument()})
	assert.ErrorIs(t, err, flight.ErrInFlight)
}

func TestSummaryDelete(t *testing.T) {
	deps := newTestDeps()
	svc := NewSummaryService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	resp, err := svc.Analyze(context.Background(), extract.Document{Name: "doc.txt", Data: longDocument()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.Id))
	assert.Empty(t, svc.List(context.Background()))

	// Deleting an unknown id is a no-op.
	require.NoError(t, svc.Delete(context.Background(), uuid.New()))
}

func TestSummaryStatus(t *testing.T) {
	deps := newTestDeps()
	svc := NewSummaryService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	_, running := svc.Status()
	assert.False(t, running)

	release, err := deps.gate.Begin(constant.ActionSummary)
	require.NoError(t, err)
	deps.gate.SetStage(constant.ActionSummary, constant.StageAnalyzing)

	stage, running := svc.Status()
	assert.True(t, running)
	assert.Equal(t, constant.StageAnalyzing, stage)

	release()
	_, running = svc.Status()
	assert.False(t, running)
}
