// Package extract turns uploaded documents (PDF, DOCX, plain text) into a
// single plain-text string, with ordered fallback strategies for PDFs that
// only one loading path tolerates.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Document is an uploaded file with its declared type.
type Document struct {
	Name     string
	MIMEType string
	Data     []byte
}

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeTXT  = "text/plain"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ExtractText dispatches on the declared MIME type or file extension and
// returns the document's plain-text content. Format-specific failures are
// re-wrapped so callers see one error shape with the original cause attached.
func (s *Service) ExtractText(ctx context.Context, doc Document) (string, error) {
	if len(doc.Data) == 0 {
		return "", ErrEmptyFile
	}

	name := strings.ToLower(doc.Name)
	ext := filepath.Ext(name)

	var (
		text string
		err  error
	)
	switch {
	case doc.MIMEType == mimePDF || ext == ".pdf":
		text, err = s.extractPDF(ctx, doc.Data)
	case doc.MIMEType == mimeDOCX || ext == ".docx":
		text, err = extractDOCX(doc.Data)
	case doc.MIMEType == mimeTXT || ext == ".txt":
		return string(doc.Data), nil
	default:
		return "", ErrUnsupportedType
	}

	if err != nil {
		return "", fmt.Errorf("failed to extract text from file: %w", err)
	}
	return text, nil
}
