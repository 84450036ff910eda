package dto

import (
	"time"

	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type GenerateFlashcardsRequest struct {
	Title string `json:"title" form:"title" validate:"required"`
	// Prompt defaults to the title when empty.
	Prompt string `json:"prompt" form:"prompt"`
	Count  int    `json:"count" form:"count" validate:"omitempty,min=1,max=50"`
}

type FlashcardSetResponse struct {
	Id        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Cards     []entity.Flashcard `json:"cards"`
	CreatedAt time.Time          `json:"created_at"`
}
