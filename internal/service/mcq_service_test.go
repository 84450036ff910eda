package service

import (
	"context"
	"testing"

	"study-assistant-be/pkg/extract"
	"study-assistant-be/pkg/gen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []gen.Question {
	return []gen.Question{
		{
			Question:      "Which gas do plants absorb?",
			Options:       []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Helium"},
			CorrectAnswer: "Carbon dioxide",
			Explanation:   "Photosynthesis consumes CO2.",
		},
	}
}

func TestMCQGenerate(t *testing.T) {
	deps := newTestDeps()
	var seenCount int
	deps.generator.mcqFn = func(text string, count int) ([]gen.Question, error) {
		seenCount = count
		return sampleQuestions(), nil
	}
	svc := NewMCQService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	resp, err := svc.Generate(context.Background(), extract.Document{
		Name: "plant-biology.txt",
		Data: longDocument(),
	}, 0)

	require.NoError(t, err)
	// Zero count falls back to the default.
	assert.Equal(t, 5, seenCount)
	assert.Equal(t, "plant-biology", resp.Title)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Carbon dioxide", resp.Questions[0].CorrectAnswer)
}

func TestMCQGenerateTooShort(t *testing.T) {
	deps := newTestDeps()
	svc := NewMCQService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	_, err := svc.Generate(context.Background(), extract.Document{
		Name: "tiny.txt",
		Data: []byte("too short"),
	}, 5)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, svc.List(context.Background()))
}

func TestMCQGenerateFailureNotPersisted(t *testing.T) {
	deps := newTestDeps()
	deps.generator.mcqFn = func(string, int) ([]gen.Question, error) {
		return nil, errFakeModel
	}
	svc := NewMCQService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	_, err := svc.Generate(context.Background(), extract.Document{Name: "doc.txt", Data: longDocument()}, 5)

	assert.ErrorIs(t, err, ErrGeneration)
	assert.Empty(t, svc.List(context.Background()))
}

func TestMCQExport(t *testing.T) {
	deps := newTestDeps()
	deps.generator.mcqFn = func(string, int) ([]gen.Question, error) {
		return sampleQuestions(), nil
	}
	svc := NewMCQService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	resp, err := svc.Generate(context.Background(), extract.Document{Name: "plants.txt", Data: longDocument()}, 1)
	require.NoError(t, err)

	filename, data, err := svc.Export(context.Background(), resp.Id)

	require.NoError(t, err)
	assert.Equal(t, "plants-quiz.pdf", filename)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestMCQExportUnknownId(t *testing.T) {
	deps := newTestDeps()
	svc := NewMCQService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	_, _, err := svc.Export(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMCQDelete(t *testing.T) {
	deps := newTestDeps()
	deps.generator.mcqFn = func(string, int) ([]gen.Question, error) {
		return sampleQuestions(), nil
	}
	svc := NewMCQService(deps.store, deps.generator, deps.extractor, deps.gate, nopLogger{})

	resp, err := svc.Generate(context.Background(), extract.Document{Name: "doc.txt", Data: longDocument()}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.Id))
	assert.Empty(t, svc.List(context.Background()))
}
