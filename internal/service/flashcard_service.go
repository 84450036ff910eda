package service

import (
	"context"
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

const defaultCardCount = 5

type IFlashcardService interface {
	Generate(ctx context.Context, request *dto.GenerateFlashcardsRequest, source *extract.Document) (*dto.FlashcardSetResponse, error)
	List(ctx context.Context) []*dto.FlashcardSetResponse
	Delete(ctx context.Context, id uuid.UUID) error
}

type flashcardService struct {
	store     *store.Store
	generator gen.TextGenerator
	extractor TextExtractor
	gate      *flight.Gate
	log       logger.ILogger
}

func NewFlashcardService(st *store.Store, generator gen.TextGenerator, extractor TextExtractor, gate *flight.Gate, log logger.ILogger) IFlashcardService {
	return &flashcardService{
		store:     st,
		generator: generator,
		extractor: extractor,
		gate:      gate,
		log:       log,
	}
}

// Generate builds a deck for a topic, optionally grounded on an uploaded
// document. The card count the model returns is accepted as-is after shape
// validation; only the requested count is sent in the prompt.
func (fs *flashcardService) Generate(ctx context.Context, request *dto.GenerateFlashcardsRequest, source *extract.Document) (*dto.FlashcardSetResponse, error) {
	if strings.TrimSpace(request.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	count := request.Count
	if count <= 0 {
		count = defaultCardCount
	}
	prompt := request.Prompt
	if prompt == "" {
		prompt = request.Title
	}

	release, err := fs.gate.Begin(constant.ActionFlashcards)
	if err != nil {
		return nil, err
	}
	defer release()

	var contextText string
	if source != nil {
		fs.gate.SetStage(constant.ActionFlashcards, constant.StageExtracting)
		contextText, err = fs.extractor.ExtractText(ctx, *source)
		if err != nil {
			return nil, err
		}
	}

	fs.gate.SetStage(constant.ActionFlashcards, constant.StageAnalyzing)
	cards, err := fs.generator.Flashcards(ctx, prompt, count, contextText)
	if err != nil {
		fs.log.Error("flashcards", "flashcard generation failed", map[string]interface{}{"error": err.Error(), "title": request.Title})
		return nil, fmt.Errorf("failed to generate flashcards: %w", ErrGeneration)
	}

	setId := uuid.New()
	set := entity.FlashcardSet{
		Id:        setId,
		Title:     request.Title,
		Cards:     make([]entity.Flashcard, 0, len(cards)),
		CreatedAt: time.Now(),
	}
	for _, c := range cards {
		set.Cards = append(set.Cards, entity.Flashcard{
			Id:    uuid.New(),
			Front: c.Front,
			Back:  c.Back,
			SetId: setId,
		})
	}

	if err := fs.store.AddFlashcardSet(ctx, set); err != nil {
		return nil, err
	}
	return toFlashcardSetResponse(set), nil
}

func (fs *flashcardService) List(ctx context.Context) []*dto.FlashcardSetResponse {
	sets := fs.store.Snapshot().FlashcardSets
	response := make([]*dto.FlashcardSetResponse, 0, len(sets))
	for _, s := range sets {
		response = append(response, toFlashcardSetResponse(s))
	}
	return response
}

func (fs *flashcardService) Delete(ctx context.Context, id uuid.UUID) error {
	return fs.store.DeleteFlashcardSet(ctx, id)
}

func toFlashcardSetResponse(s entity.FlashcardSet) *dto.FlashcardSetResponse {
	return &dto.FlashcardSetResponse{
		Id:        s.Id,
		Title:     s.Title,
		Cards:     s.Cards,
		CreatedAt: s.CreatedAt,
	}
}
