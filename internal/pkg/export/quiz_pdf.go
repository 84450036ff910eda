// Package export renders a generated quiz into a paginated PDF document:
// letterhead, numbered questions with lettered options, then an answer key
// on a fresh page, with an attribution footer on every page.
package export

import (
	"bytes"
	"fmt"

	"study-assistant-be/internal/entity"

	"github.com/jung-kurt/gofpdf"
)

const (
	marginMM = 20.0
	// bottomThresholdMM is the remaining-space limit under which a new page
	// starts before the next block of text.
	bottomThresholdMM = 30.0

	githubURL   = "https://github.com/Iresh-Nimantha"
	linkedinURL = "https://www.linkedin.com/in/ireshnimantha/"
)

// QuizPDF renders the set and returns the document bytes.
func QuizPDF(set *entity.MCQSet) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pageWidth, pageHeight := pdf.GetPageSize()
	textWidth := pageWidth - marginMM*2

	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(false, marginMM)

	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(120, 120, 120)

		pdf.SetXY(marginMM, pageHeight-20)
		pdf.CellFormat(0, 5, "Student AI - Developed by Iresh Nimantha", "", 1, "L", false, 0, "")

		pdf.SetXY(marginMM, pageHeight-14)
		pdf.CellFormat(20, 5, "GitHub", "", 0, "L", false, 0, githubURL)
		pdf.SetX(marginMM + 25)
		pdf.CellFormat(25, 5, "LinkedIn", "", 1, "L", false, 0, linkedinURL)

		pdf.SetTextColor(40, 40, 40)
	})

	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 10, "Student AI Workspace", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, "Automated MCQ Generator", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(180, 180, 180)
	y := pdf.GetY() + 2
	pdf.Line(marginMM, y, pageWidth-marginMM, y)
	pdf.SetY(y + 8)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(0, 10, "Quiz: "+set.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(40, 40, 40)

	breakIfNeeded := func() {
		if pdf.GetY() > pageHeight-bottomThresholdMM {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 12)
			pdf.SetTextColor(40, 40, 40)
		}
	}

	// Questions
	for i, q := range set.Questions {
		breakIfNeeded()
		pdf.MultiCell(textWidth, 7, fmt.Sprintf("%d. %s", i+1, q.Question), "", "L", false)

		for j, opt := range q.Options {
			breakIfNeeded()
			label := string(rune('A' + j))
			pdf.MultiCell(textWidth, 6, fmt.Sprintf("   %s) %s", label, opt), "", "L", false)
		}
		pdf.Ln(4)
	}

	// Answer key on its own page
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Answer Key", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 12)

	for i, q := range set.Questions {
		breakIfNeeded()
		pdf.MultiCell(textWidth, 6, fmt.Sprintf("%d. %s", i+1, q.CorrectAnswer), "", "L", false)
		pdf.MultiCell(textWidth, 6, "Explanation: "+q.Explanation, "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quiz pdf: %w", err)
	}
	return buf.Bytes(), nil
}
