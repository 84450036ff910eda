package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/flight"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/pkg/extract"
	"study-assistant-be/pkg/gen"
	"study-assistant-be/pkg/store"

	"github.com/google/uuid"
)

// TextExtractor is the slice of pkg/extract the orchestrators consume.
type TextExtractor interface {
	ExtractText(ctx context.Context, doc extract.Document) (string, error)
}

type IChatService interface {
	Send(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	History(ctx context.Context) []*dto.ChatMessageResponse
	Clear(ctx context.Context) error
}

type chatService struct {
	store     *store.Store
	generator gen.TextGenerator
	extractor TextExtractor
	gate      *flight.Gate
	log       logger.ILogger
}

func NewChatService(st *store.Store, generator gen.TextGenerator, extractor TextExtractor, gate *flight.Gate, log logger.ILogger) IChatService {
	return &chatService{
		store:     st,
		generator: generator,
		extractor: extractor,
		gate:      gate,
		log:       log,
	}
}

// Send appends the user turn, forwards the trailing history window to the
// model, and appends the reply. A failed call produces the fixed apology
// turn instead of an error; a reply that raced with a history clear is
// discarded.
func (cs *chatService) Send(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if strings.TrimSpace(request.Message) == "" && len(request.Attachments) == 0 {
		return nil, fmt.Errorf("%w: message or attachment required", ErrInvalidInput)
	}

	release, err := cs.gate.Begin(constant.ActionChat)
	if err != nil {
		return nil, err
	}
	defer release()

	attachments, err := cs.buildAttachments(ctx, request.Attachments)
	if err != nil {
		return nil, err
	}

	// The history window is captured before the user turn is appended, and
	// the epoch with it: a ClearChat between here and the reply invalidates
	// this send's view of the conversation.
	epoch := cs.store.ChatEpoch()
	history := trailingWindow(cs.store.Snapshot().ChatHistory, constant.ChatHistoryWindow)

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:          uuid.New(),
		Role:        constant.ChatMessageRoleUser,
		Text:        request.Message,
		Attachments: attachments,
		CreatedAt:   now,
	}
	if err := cs.store.AppendChatMessage(ctx, userMessage); err != nil {
		return nil, err
	}

	replyText, genErr := cs.generator.ChatReply(ctx, request.Message, history, toGenAttachments(attachments))
	if genErr != nil {
		cs.log.Error("chat", "chat generation failed", map[string]interface{}{"error": genErr.Error()})
		replyText = constant.ChatFailureReply
	}

	replyMessage := entity.ChatMessage{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleModel,
		Text:      replyText,
		CreatedAt: time.Now(),
	}
	appended, err := cs.store.AppendChatReply(ctx, replyMessage, epoch)
	if err != nil {
		return nil, err
	}
	if !appended {
		cs.log.Warn("chat", "reply discarded, history cleared mid-flight", nil)
	}

	return &dto.SendChatResponse{
		Sent:      toChatMessageResponse(userMessage),
		Reply:     toChatMessageResponse(replyMessage),
		Discarded: !appended,
	}, nil
}

func (cs *chatService) History(ctx context.Context) []*dto.ChatMessageResponse {
	messages := cs.store.Snapshot().ChatHistory
	response := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, toChatMessageResponse(m))
	}
	return response
}

func (cs *chatService) Clear(ctx context.Context) error {
	return cs.store.ClearChat(ctx)
}

// buildAttachments validates incoming attachments and extracts document text
// server-side, so the model only ever sees inline images or plain text.
func (cs *chatService) buildAttachments(ctx context.Context, in []dto.ChatAttachmentDTO) ([]entity.ChatAttachment, error) {
	if len(in) == 0 {
		return nil, nil
	}

	out := make([]entity.ChatAttachment, 0, len(in))
	for _, att := range in {
		built := entity.ChatAttachment{
			Id:       uuid.New(),
			Kind:     att.Kind,
			Name:     att.Name,
			MIMEType: att.MIMEType,
		}

		switch att.Kind {
		case constant.AttachmentKindImage:
			if att.MIMEType != "" && !strings.HasPrefix(att.MIMEType, "image/") {
				return nil, fmt.Errorf("%w: attachment %q is not an image", ErrInvalidInput, att.Name)
			}
			built.Data = att.Data
		case constant.AttachmentKindFile:
			raw, err := base64.StdEncoding.DecodeString(att.Data)
			if err != nil {
				return nil, fmt.Errorf("%w: attachment %q is not valid base64", ErrInvalidInput, att.Name)
			}
			text, err := cs.extractor.ExtractText(ctx, extract.Document{
				Name:     att.Name,
				MIMEType: att.MIMEType,
				Data:     raw,
			})
			if err != nil {
				return nil, err
			}
			built.Data = text
		}
		out = append(out, built)
	}
	return out, nil
}

func trailingWindow(history []entity.ChatMessage, n int) []gen.Message {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	out := make([]gen.Message, 0, len(history))
	for _, m := range history {
		out = append(out, gen.Message{Role: m.Role, Text: m.Text})
	}
	return out
}

func toGenAttachments(in []entity.ChatAttachment) []gen.Attachment {
	out := make([]gen.Attachment, 0, len(in))
	for _, a := range in {
		out = append(out, gen.Attachment{
			Kind:     a.Kind,
			Name:     a.Name,
			MIMEType: a.MIMEType,
			Data:     a.Data,
		})
	}
	return out
}

func toChatMessageResponse(m entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:          m.Id,
		Role:        m.Role,
		Text:        m.Text,
		Attachments: m.Attachments,
		CreatedAt:   m.CreatedAt,
	}
}
