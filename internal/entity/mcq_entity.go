package entity

import (
	"time"

	"github.com/google/uuid"
)

type MCQQuestion struct {
	Id            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
}

type MCQSet struct {
	Id        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Questions []MCQQuestion `json:"questions"`
	CreatedAt time.Time     `json:"created_at"`
}
