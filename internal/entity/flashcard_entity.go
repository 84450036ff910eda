package entity

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	Id    uuid.UUID `json:"id"`
	Front string    `json:"front"`
	Back  string    `json:"back"`
	SetId uuid.UUID `json:"set_id"`
}

type FlashcardSet struct {
	Id        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Cards     []Flashcard `json:"cards"`
	CreatedAt time.Time   `json:"created_at"`
}
