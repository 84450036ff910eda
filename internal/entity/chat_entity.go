package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatAttachment carries either an inline image (data URI) or the extracted
// text of an uploaded file, depending on Kind.
type ChatAttachment struct {
	Id       uuid.UUID `json:"id"`
	Kind     string    `json:"kind"`
	Name     string    `json:"name"`
	MIMEType string    `json:"mime_type,omitempty"`
	Data     string    `json:"data"`
}

type ChatMessage struct {
	Id          uuid.UUID        `json:"id"`
	Role        string           `json:"role"`
	Text        string           `json:"text"`
	Attachments []ChatAttachment `json:"attachments,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
