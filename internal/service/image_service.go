package service

import (
	"context"
	"fmt"
	"time"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/flight"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/pkg/gen"
)

type IImageService interface {
	Generate(ctx context.Context, request *dto.GenerateImageRequest) (*dto.GeneratedImageResponse, error)
}

type imageService struct {
	generator gen.ImageGenerator
	gate      *flight.Gate
	log       logger.ILogger
}

func NewImageService(generator gen.ImageGenerator, gate *flight.Gate, log logger.ILogger) IImageService {
	return &imageService{
		generator: generator,
		gate:      gate,
		log:       log,
	}
}

// Generate returns the synthesized image as a data URI. Generated images are
// not persisted into the snapshot; the client owns the returned payload.
func (is *imageService) Generate(ctx context.Context, request *dto.GenerateImageRequest) (*dto.GeneratedImageResponse, error) {
	release, err := is.gate.Begin(constant.ActionImage)
	if err != nil {
		return nil, err
	}
	defer release()

	url, err := is.generator.Image(ctx, request.Prompt)
	if err != nil {
		is.log.Error("image", "image generation failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("failed to generate image: %w", ErrGeneration)
	}

	return &dto.GeneratedImageResponse{
		URL:       url,
		Prompt:    request.Prompt,
		CreatedAt: time.Now(),
	}, nil
}
