package store

import (
	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/entity"
)

// State is one immutable snapshot of every persisted collection plus the
// UI-affecting preferences. Mutations never edit a snapshot in place; they
// build the next one.
type State struct {
	Theme         string                  `json:"theme"`
	User          *entity.UserProfile     `json:"user"`
	Tasks         []entity.Task           `json:"tasks"`
	FlashcardSets []entity.FlashcardSet   `json:"flashcard_sets"`
	MCQSets       []entity.MCQSet         `json:"mcq_sets"`
	ChatHistory   []entity.ChatMessage    `json:"chat_history"`
	Summaries     []entity.SummarySession `json:"summaries"`
}

// NewState returns the clean first-load snapshot. No mock data.
func NewState() *State {
	return &State{
		Theme:         constant.ThemeSystem,
		Tasks:         []entity.Task{},
		FlashcardSets: []entity.FlashcardSet{},
		MCQSets:       []entity.MCQSet{},
		ChatHistory:   []entity.ChatMessage{},
		Summaries:     []entity.SummarySession{},
	}
}

func (s *State) shallowCopy() *State {
	next := *s
	return &next
}
