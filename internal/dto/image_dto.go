package dto

import "time"

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type GeneratedImageResponse struct {
	URL       string    `json:"url"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}
