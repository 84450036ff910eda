package gen

import (
	"encoding/json"
	"fmt"
)

// Strict decoders for the schema-constrained responses. Raw model output is
// parsed and validated here, immediately after transport, before anything
// crosses into the rest of the system. Nothing is coerced: a missing or
// non-string field rejects the whole response.

type rawSummary struct {
	Summary     *string          `json:"summary"`
	KeyPoints   *[]string        `json:"keyPoints"`
	Definitions *[]rawDefinition `json:"definitions"`
}

type rawDefinition struct {
	Term       *string `json:"term"`
	Definition *string `json:"definition"`
}

// ParseSummary validates the {summary, keyPoints, definitions} object.
func ParseSummary(data []byte) (*SummaryResult, error) {
	var raw rawSummary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("summary response is not valid JSON: %w", err)
	}
	if raw.Summary == nil {
		return nil, fmt.Errorf("summary response missing 'summary' string")
	}
	if raw.KeyPoints == nil {
		return nil, fmt.Errorf("summary response missing 'keyPoints' array")
	}
	if raw.Definitions == nil {
		return nil, fmt.Errorf("summary response missing 'definitions' array")
	}

	defs := make([]TermDefinition, 0, len(*raw.Definitions))
	for i, d := range *raw.Definitions {
		if d.Term == nil || d.Definition == nil {
			return nil, fmt.Errorf("definition %d must have 'term' and 'definition' as strings", i)
		}
		defs = append(defs, TermDefinition{Term: *d.Term, Definition: *d.Definition})
	}

	return &SummaryResult{
		Summary:     *raw.Summary,
		KeyPoints:   *raw.KeyPoints,
		Definitions: defs,
	}, nil
}

type rawCard struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

// ParseFlashcards validates an array of {front, back} string pairs.
func ParseFlashcards(data []byte) ([]Card, error) {
	var raw []rawCard
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("flashcard response is not a valid JSON array: %w", err)
	}

	cards := make([]Card, 0, len(raw))
	for i, c := range raw {
		if c.Front == nil || c.Back == nil {
			return nil, fmt.Errorf("card %d must have 'front' and 'back' as strings", i)
		}
		cards = append(cards, Card{Front: *c.Front, Back: *c.Back})
	}
	return cards, nil
}

type rawQuestion struct {
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *string   `json:"correctAnswer"`
	Explanation   *string   `json:"explanation"`
}

// ParseMCQ validates an array of questions. The correct answer must appear
// among the options verbatim.
func ParseMCQ(data []byte) ([]Question, error) {
	var raw []rawQuestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("mcq response is not a valid JSON array: %w", err)
	}

	questions := make([]Question, 0, len(raw))
	for i, q := range raw {
		if q.Question == nil || q.Options == nil || q.CorrectAnswer == nil {
			return nil, fmt.Errorf("question %d must have 'question' (string), 'options' (array), and 'correctAnswer' (string)", i)
		}
		if !containsString(*q.Options, *q.CorrectAnswer) {
			return nil, fmt.Errorf("question %d: correctAnswer does not match any option", i)
		}
		out := Question{
			Question:      *q.Question,
			Options:       *q.Options,
			CorrectAnswer: *q.CorrectAnswer,
		}
		if q.Explanation != nil {
			out.Explanation = *q.Explanation
		}
		questions = append(questions, out)
	}
	return questions, nil
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
