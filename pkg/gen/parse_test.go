package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummary(t *testing.T) {
	raw := `{
		"summary": "Short recap.",
		"keyPoints": ["point one", "point two"],
		"definitions": [{"term": "osmosis", "definition": "movement of water"}]
	}`

	result, err := ParseSummary([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, "Short recap.", result.Summary)
	assert.Equal(t, []string{"point one", "point two"}, result.KeyPoints)
	require.Len(t, result.Definitions, 1)
	assert.Equal(t, "osmosis", result.Definitions[0].Term)
}

func TestParseSummaryMissingField(t *testing.T) {
	_, err := ParseSummary([]byte(`{"summary": "only this"}`))
	assert.ErrorContains(t, err, "keyPoints")
}

func TestParseSummaryWrongFieldType(t *testing.T) {
	_, err := ParseSummary([]byte(`{"summary": 42, "keyPoints": [], "definitions": []}`))
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestParseSummaryIncompleteDefinition(t *testing.T) {
	raw := `{"summary": "s", "keyPoints": [], "definitions": [{"term": "lonely"}]}`
	_, err := ParseSummary([]byte(raw))
	assert.ErrorContains(t, err, "definition")
}

func TestParseFlashcards(t *testing.T) {
	raw := `[{"front": "Q1", "back": "A1"}, {"front": "Q2", "back": "A2"}]`

	cards, err := ParseFlashcards([]byte(raw))

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, Card{Front: "Q1", Back: "A1"}, cards[0])
}

func TestParseFlashcardsMissingBack(t *testing.T) {
	_, err := ParseFlashcards([]byte(`[{"front": "Q1"}]`))
	assert.ErrorContains(t, err, "card 0")
}

func TestParseFlashcardsNotArray(t *testing.T) {
	_, err := ParseFlashcards([]byte(`{"front": "Q1", "back": "A1"}`))
	assert.ErrorContains(t, err, "not a valid JSON array")
}

func TestParseMCQ(t *testing.T) {
	raw := `[{
		"question": "What is 2+2?",
		"options": ["3", "4", "5", "6"],
		"correctAnswer": "4",
		"explanation": "Basic arithmetic."
	}]`

	questions, err := ParseMCQ([]byte(raw))

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "4", questions[0].CorrectAnswer)
	assert.Equal(t, "Basic arithmetic.", questions[0].Explanation)
}

func TestParseMCQExplanationOptional(t *testing.T) {
	raw := `[{"question": "Q", "options": ["a", "b"], "correctAnswer": "a"}]`

	questions, err := ParseMCQ([]byte(raw))

	require.NoError(t, err)
	assert.Empty(t, questions[0].Explanation)
}

func TestParseMCQAnswerNotAmongOptions(t *testing.T) {
	raw := `[{"question": "Q", "options": ["a", "b"], "correctAnswer": "c"}]`

	_, err := ParseMCQ([]byte(raw))

	assert.ErrorContains(t, err, "correctAnswer does not match any option")
}

func TestParseMCQMissingOptions(t *testing.T) {
	raw := `[{"question": "Q", "correctAnswer": "a"}]`

	_, err := ParseMCQ([]byte(raw))

	assert.ErrorContains(t, err, "question 0")
}
