package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	svc := NewService()

	content := "  line one\nline two  \n"
	text, err := svc.ExtractText(context.Background(), Document{
		Name:     "notes.txt",
		MIMEType: "text/plain",
		Data:     []byte(content),
	})

	require.NoError(t, err)
	// Plain text passes through untouched, whitespace included.
	assert.Equal(t, content, text)
}

func TestExtractDispatchByExtension(t *testing.T) {
	svc := NewService()

	// No MIME type at all, only the extension.
	text, err := svc.ExtractText(context.Background(), Document{
		Name: "NOTES.TXT",
		Data: []byte("hello"),
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractEmptyFile(t *testing.T) {
	svc := NewService()

	_, err := svc.ExtractText(context.Background(), Document{Name: "empty.txt"})

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestExtractUnsupportedType(t *testing.T) {
	svc := NewService()

	_, err := svc.ExtractText(context.Background(), Document{
		Name:     "slides.pptx",
		MIMEType: "application/vnd.ms-powerpoint",
		Data:     []byte{0x01},
	})

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractDOCX(t *testing.T) {
	svc := NewService()

	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>Col A</w:t><w:tab/><w:t>Col B</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := svc.ExtractText(context.Background(), Document{
		Name: "lecture.docx",
		Data: buildDOCX(t, documentXML),
	})

	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nCol A\tCol B\n", text)
}

func TestExtractDOCXMissingDocument(t *testing.T) {
	svc := NewService()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = svc.ExtractText(context.Background(), Document{
		Name: "broken.docx",
		Data: buf.Bytes(),
	})

	assert.ErrorContains(t, err, "failed to extract text from file")
}

func TestExtractCorruptPDF(t *testing.T) {
	svc := NewService()

	_, err := svc.ExtractText(context.Background(), Document{
		Name:     "corrupt.pdf",
		MIMEType: "application/pdf",
		Data:     []byte("%PDF-1.4 this is not a real pdf body"),
	})

	assert.ErrorIs(t, err, ErrCorruptPDF)
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
