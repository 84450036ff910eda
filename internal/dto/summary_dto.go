package dto

import (
	"time"

	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type SummarySessionResponse struct {
	Id           uuid.UUID               `json:"id"`
	Title        string                  `json:"title"`
	Summary      string                  `json:"summary"`
	KeyPoints    []string                `json:"key_points"`
	Definitions  []entity.TermDefinition `json:"definitions"`
	OriginalText string                  `json:"original_text,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}
