package controller

import (
	"io"

	"study-assistant-be/pkg/extract"

	"github.com/gofiber/fiber/v2"
)

// formDocument reads the uploaded file from a multipart field into an
// extract.Document. A missing or unreadable part is reported as a 400; the
// empty-file case is left to the extractor so the error taxonomy stays in
// one place.
func formDocument(ctx *fiber.Ctx, field string) (*extract.Document, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "A document file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Could not read the uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Could not read the uploaded file")
	}

	return &extract.Document{
		Name:     fileHeader.Filename,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
