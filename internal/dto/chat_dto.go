package dto

import (
	"time"

	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type ChatAttachmentDTO struct {
	Kind     string `json:"kind" validate:"required,oneof=image file"`
	Name     string `json:"name" validate:"required"`
	MIMEType string `json:"mime_type,omitempty"`
	// Data is a base64 data URI for images, base64 file bytes for documents.
	Data string `json:"data" validate:"required"`
}

type SendChatRequest struct {
	Message     string              `json:"message"`
	Attachments []ChatAttachmentDTO `json:"attachments,omitempty" validate:"max=5,dive"`
}

type ChatMessageResponse struct {
	Id          uuid.UUID               `json:"id"`
	Role        string                  `json:"role"`
	Text        string                  `json:"text"`
	Attachments []entity.ChatAttachment `json:"attachments,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

type SendChatResponse struct {
	Sent  *ChatMessageResponse `json:"sent"`
	Reply *ChatMessageResponse `json:"reply"`
	// Discarded reports a reply that arrived after the history was cleared
	// and was therefore not appended.
	Discarded bool `json:"discarded,omitempty"`
}
