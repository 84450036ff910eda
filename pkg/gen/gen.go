// Package gen defines provider-agnostic contracts for the generation
// backends: a text/vision chat model used for chat, summaries, flashcards
// and quizzes, and an image-synthesis model.
package gen

import "context"

// Message is one prior conversation turn in a provider-agnostic format.
type Message struct {
	Role string // "user" or "model"
	Text string
}

// Attachment accompanies a chat message. Images carry a base64 data URI in
// Data; files carry their already-extracted plain text.
type Attachment struct {
	Kind     string // "image" or "file"
	Name     string
	MIMEType string
	Data     string
}

type TermDefinition struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// SummaryResult is the schema-constrained output of a summary call. All
// three fields are mandatory; a response missing one is a failed call.
type SummaryResult struct {
	Summary     string           `json:"summary"`
	KeyPoints   []string         `json:"keyPoints"`
	Definitions []TermDefinition `json:"definitions"`
}

type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// TextGenerator wraps the four text-model operations. None of them retries;
// transport errors, malformed JSON and shape violations all surface as a
// failed call with the cause attached.
type TextGenerator interface {
	// ChatReply returns free-form text. No schema constraint on this path.
	ChatReply(ctx context.Context, message string, history []Message, attachments []Attachment) (string, error)

	// Summary generates a structured analysis of raw document text.
	Summary(ctx context.Context, text string) (*SummaryResult, error)

	// Flashcards generates front/back pairs for a topic, optionally grounded
	// on context text (truncated by the provider to bound request size).
	Flashcards(ctx context.Context, topicOrPrompt string, count int, contextText string) ([]Card, error)

	// MCQ generates multiple-choice questions from source text.
	MCQ(ctx context.Context, text string, count int) ([]Question, error)
}

// ImageGenerator synthesizes one image and returns it as a base64 data URI.
type ImageGenerator interface {
	Image(ctx context.Context, prompt string) (string, error)
}
