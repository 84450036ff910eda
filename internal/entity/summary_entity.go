package entity

import (
	"time"

	"github.com/google/uuid"
)

type TermDefinition struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type SummarySession struct {
	Id           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	OriginalText string           `json:"original_text"`
	Summary      string           `json:"summary"`
	KeyPoints    []string         `json:"key_points"`
	Definitions  []TermDefinition `json:"definitions"`
	CreatedAt    time.Time        `json:"created_at"`
}
