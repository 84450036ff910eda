package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/export"
	"study-assistant-be/internal/pkg/flight"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/pkg/extract"
	"study-assistant-be/pkg/gen"
	"study-assistant-be/pkg/store"

	"github.com/google/uuid"
)

const defaultQuestionCount = 5

type IMCQService interface {
	Generate(ctx context.Context, doc extract.Document, count int) (*dto.MCQSetResponse, error)
	List(ctx context.Context) []*dto.MCQSetResponse
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, id uuid.UUID) (string, []byte, error)
	Status() (string, bool)
}

type mcqService struct {
	store     *store.Store
	generator gen.TextGenerator
	extractor TextExtractor
	gate      *flight.Gate
	log       logger.ILogger
}

func NewMCQService(st *store.Store, generator gen.TextGenerator, extractor TextExtractor, gate *flight.Gate, log logger.ILogger) IMCQService {
	return &mcqService{
		store:     st,
		generator: generator,
		extractor: extractor,
		gate:      gate,
		log:       log,
	}
}

func (ms *mcqService) Generate(ctx context.Context, doc extract.Document, count int) (*dto.MCQSetResponse, error) {
	if count <= 0 {
		count = defaultQuestionCount
	}

	release, err := ms.gate.Begin(constant.ActionMCQ)
	if err != nil {
		return nil, err
	}
	defer release()

	ms.gate.SetStage(constant.ActionMCQ, constant.StageExtracting)
	text, err := ms.extractor.ExtractText(ctx, doc)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(text)) < constant.MinDocumentChars {
		return nil, fmt.Errorf("%w: the document contains too little text to generate a quiz (minimum %d characters)",
			ErrInvalidInput, constant.MinDocumentChars)
	}

	ms.gate.SetStage(constant.ActionMCQ, constant.StageAnalyzing)
	questions, err := ms.generator.MCQ(ctx, text, count)
	if err != nil {
		ms.log.Error("mcq", "mcq generation failed", map[string]interface{}{"error": err.Error(), "file": doc.Name})
		return nil, fmt.Errorf("failed to generate quiz: %w", ErrGeneration)
	}

	set := entity.MCQSet{
		Id:        uuid.New(),
		Title:     titleFromFilename(doc.Name),
		Questions: make([]entity.MCQQuestion, 0, len(questions)),
		CreatedAt: time.Now(),
	}
	for _, q := range questions {
		set.Questions = append(set.Questions, entity.MCQQuestion{
			Id:            uuid.New(),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	if err := ms.store.AddMCQSet(ctx, set); err != nil {
		return nil, err
	}
	return toMCQSetResponse(set), nil
}

func (ms *mcqService) List(ctx context.Context) []*dto.MCQSetResponse {
	sets := ms.store.Snapshot().MCQSets
	response := make([]*dto.MCQSetResponse, 0, len(sets))
	for _, s := range sets {
		response = append(response, toMCQSetResponse(s))
	}
	return response
}

func (ms *mcqService) Delete(ctx context.Context, id uuid.UUID) error {
	return ms.store.DeleteMCQSet(ctx, id)
}

// Export renders the set as a paginated PDF and returns the suggested
// filename alongside the document bytes.
func (ms *mcqService) Export(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	var found *entity.MCQSet
	for _, s := range ms.store.Snapshot().MCQSets {
		if s.Id == id {
			set := s
			found = &set
			break
		}
	}
	if found == nil {
		return "", nil, fmt.Errorf("%w: quiz %s", ErrNotFound, id)
	}

	pdfBytes, err := export.QuizPDF(found)
	if err != nil {
		return "", nil, err
	}
	return found.Title + "-quiz.pdf", pdfBytes, nil
}

func (ms *mcqService) Status() (string, bool) {
	return ms.gate.Stage(constant.ActionMCQ)
}

func toMCQSetResponse(s entity.MCQSet) *dto.MCQSetResponse {
	return &dto.MCQSetResponse{
		Id:        s.Id,
		Title:     s.Title,
		Questions: s.Questions,
		CreatedAt: s.CreatedAt,
	}
}
