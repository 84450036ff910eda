package extract

import "errors"

var (
	// ErrEmptyFile is returned before any format-specific parsing runs.
	ErrEmptyFile = errors.New("the file is empty or unreadable")

	// ErrUnsupportedType is returned for declared types outside pdf/docx/txt.
	ErrUnsupportedType = errors.New("unsupported file type, please upload PDF, DOCX, or TXT")

	// ErrCorruptPDF distinguishes a PDF that failed every extraction strategy
	// from a generic extraction failure.
	ErrCorruptPDF = errors.New("this PDF seems corrupted or not standards-compliant")
)
