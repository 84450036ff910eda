package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title    string `json:"title" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Category string `json:"category" validate:"required,oneof=study assignment exam other"`
}

type TaskResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
