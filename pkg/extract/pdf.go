package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"

	rpdf "rsc.io/pdf"
)

// pdfStrategy is one named way of loading the same bytes into the parser.
// Strategies are tried in order; the first success wins.
type pdfStrategy struct {
	name string
	run  func(data []byte) (string, error)
}

func pdfStrategies() []pdfStrategy {
	return []pdfStrategy{
		{name: "memory", run: pdfFromReader},
		// Loading by file path takes a different xref/trailer recovery path in
		// the parser and tolerates a class of malformed documents the
		// in-memory load does not.
		{name: "tempfile", run: pdfFromTempFile},
	}
}

func (s *Service) extractPDF(ctx context.Context, data []byte) (string, error) {
	var lastErr error
	for _, strat := range pdfStrategies() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := strat.run(data)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w: %v", ErrCorruptPDF, lastErr)
}

func pdfFromReader(data []byte) (string, error) {
	doc, err := openPDF(func() (*rpdf.Reader, error) {
		return rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	})
	if err != nil {
		return "", err
	}
	return pdfText(doc)
}

func pdfFromTempFile(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	doc, err := openPDF(func() (*rpdf.Reader, error) {
		return rpdf.Open(tmp.Name())
	})
	if err != nil {
		return "", err
	}
	return pdfText(doc)
}

// openPDF converts parser panics on malformed input into errors.
func openPDF(load func() (*rpdf.Reader, error)) (doc *rpdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("pdf load panic: %v", r)
		}
	}()
	return load()
}

// pdfText assembles the document page by page, in order, one trailing
// newline per page.
func pdfText(doc *rpdf.Reader) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf content panic: %v", r)
		}
	}()

	var sb bytes.Buffer
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			sb.WriteByte('\n')
			continue
		}
		for _, t := range page.Content().Text {
			sb.WriteString(t.S)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
