package service

import (
	"context"
	"fmt"
	"path/filepath"
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

type ISummaryService interface {
	Analyze(ctx context.Context, doc extract.Document) (*dto.SummarySessionResponse, error)
	List(ctx context.Context) []*dto.SummarySessionResponse
	Delete(ctx context.Context, id uuid.UUID) error
	Status() (string, bool)
}

type summaryService struct {
	store     *store.Store
	generator gen.TextGenerator
	extractor TextExtractor
	gate      *flight.Gate
	log       logger.ILogger
}

func NewSummaryService(st *store.Store, generator gen.TextGenerator, extractor TextExtractor, gate *flight.Gate, log logger.ILogger) ISummaryService {
	return &summaryService{
		store:     st,
		generator: generator,
		extractor: extractor,
		gate:      gate,
		log:       log,
	}
}

// Analyze runs extract -> generate -> persist. Nothing is persisted until
// the whole sequence succeeds.
func (ss *summaryService) Analyze(ctx context.Context, doc extract.Document) (*dto.SummarySessionResponse, error) {
	release, err := ss.gate.Begin(constant.ActionSummary)
	if err != nil {
		return nil, err
	}
	defer release()

	ss.gate.SetStage(constant.ActionSummary, constant.StageExtracting)
	text, err := ss.extractor.ExtractText(ctx, doc)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(text)) < constant.MinDocumentChars {
		return nil, fmt.Errorf("%w: the document contains too little text to analyze (minimum %d characters)",
			ErrInvalidInput, constant.MinDocumentChars)
	}

	ss.gate.SetStage(constant.ActionSummary, constant.StageAnalyzing)
	result, err := ss.generator.Summary(ctx, text)
	if err != nil {
		ss.log.Error("summary", "summary generation failed", map[string]interface{}{"error": err.Error(), "file": doc.Name})
		return nil, fmt.Errorf("failed to analyze document: %w", ErrGeneration)
	}

	session := entity.SummarySession{
		Id:           uuid.New(),
		Title:        titleFromFilename(doc.Name),
		OriginalText: text,
		Summary:      result.Summary,
		KeyPoints:    result.KeyPoints,
		Definitions:  toTermDefinitions(result.Definitions),
		CreatedAt:    time.Now(),
	}
	if err := ss.store.AddSummary(ctx, session); err != nil {
		return nil, err
	}

	return toSummaryResponse(session, true), nil
}

func (ss *summaryService) List(ctx context.Context) []*dto.SummarySessionResponse {
	summaries := ss.store.Snapshot().Summaries
	response := make([]*dto.SummarySessionResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, toSummaryResponse(s, false))
	}
	return response
}

func (ss *summaryService) Delete(ctx context.Context, id uuid.UUID) error {
	return ss.store.DeleteSummary(ctx, id)
}

// Status reports the in-flight progress stage, if an analysis is running.
func (ss *summaryService) Status() (string, bool) {
	return ss.gate.Stage(constant.ActionSummary)
}

func titleFromFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func toTermDefinitions(in []gen.TermDefinition) []entity.TermDefinition {
	out := make([]entity.TermDefinition, 0, len(in))
	for _, d := range in {
		out = append(out, entity.TermDefinition{Term: d.Term, Definition: d.Definition})
	}
	return out
}

func toSummaryResponse(s entity.SummarySession, includeOriginal bool) *dto.SummarySessionResponse {
	resp := &dto.SummarySessionResponse{
		Id:          s.Id,
		Title:       s.Title,
		Summary:     s.Summary,
		KeyPoints:   s.KeyPoints,
		Definitions: s.Definitions,
		CreatedAt:   s.CreatedAt,
	}
	if includeOriginal {
		resp.OriginalText = s.OriginalText
	}
	return resp
}
