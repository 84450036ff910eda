package dto

import (
	"time"

	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type GenerateMCQRequest struct {
	Count int `json:"count" form:"count" validate:"omitempty,min=1,max=20"`
}

type MCQSetResponse struct {
	Id        uuid.UUID            `json:"id"`
	Title     string               `json:"title"`
	Questions []entity.MCQQuestion `json:"questions"`
	CreatedAt time.Time            `json:"created_at"`
}
