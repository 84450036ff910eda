package service

import (
	"context"
	"errors"

	"study-assistant-be/internal/pkg/flight"
	"study-assistant-be/internal/repository/memory"
	"study-assistant-be/pkg/extract"
	"study-assistant-be/pkg/gen"
	"study-assistant-be/pkg/store"
)

// Shared fakes for the orchestration tests. Each hook defaults to a zero
// result so a test only wires what it asserts on.

var errFakeModel = errors.New("model exploded")

type fakeGenerator struct {
	chatReplyFn  func(message string, history []gen.Message, attachments []gen.Attachment) (string, error)
	summaryFn    func(text string) (*gen.SummaryResult, error)
	flashcardsFn func(prompt string, count int, contextText string) ([]gen.Card, error)
	mcqFn        func(text string, count int) ([]gen.Question, error)
}

func (f *fakeGenerator) ChatReply(_ context.Context, message string, history []gen.Message, attachments []gen.Attachment) (string, error) {
	if f.chatReplyFn == nil {
		return "ok", nil
	}
	return f.chatReplyFn(message, history, attachments)
}

func (f *fakeGenerator) Summary(_ context.Context, text string) (*gen.SummaryResult, error) {
	if f.summaryFn == nil {
		return &gen.SummaryResult{Summary: "s", KeyPoints: []string{}, Definitions: []gen.TermDefinition{}}, nil
	}
	return f.summaryFn(text)
}

func (f *fakeGenerator) Flashcards(_ context.Context, prompt string, count int, contextText string) ([]gen.Card, error) {
	if f.flashcardsFn == nil {
		return nil, nil
	}
	return f.flashcardsFn(prompt, count, contextText)
}

func (f *fakeGenerator) MCQ(_ context.Context, text string, count int) ([]gen.Question, error) {
	if f.mcqFn == nil {
		return nil, nil
	}
	return f.mcqFn(text, count)
}

type fakeExtractor struct {
	extractFn func(doc extract.Document) (string, error)
}

func (f *fakeExtractor) ExtractText(_ context.Context, doc extract.Document) (string, error) {
	if f.extractFn == nil {
		return string(doc.Data), nil
	}
	return f.extractFn(doc)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type testDeps struct {
	store     *store.Store
	repo      *memory.SnapshotRepository
	generator *fakeGenerator
	extractor *fakeExtractor
	gate      *flight.Gate
}

func newTestDeps() *testDeps {
	repo := memory.NewSnapshotRepository()
	return &testDeps{
		store:     store.New(repo),
		repo:      repo,
		generator: &fakeGenerator{},
		extractor: &fakeExtractor{},
		gate:      flight.NewGate(),
	}
}
