package entity

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
