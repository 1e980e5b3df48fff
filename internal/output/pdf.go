package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/iitax/internal/domain"
)

const (
	pdfMarginLeft   = 12.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 12.0
	pdfMarginBottom = 15.0
	pdfRowHeight    = 6.0
)

// PDFFormatter lays both tables out on landscape A4 pages.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

func (PDFFormatter) Format(s *domain.YearlySummary) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "Income Tax Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(50, 50, 50)
	pdf.CellFormat(0, 7, tr(Headline(s)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Run %s, generated %s", s.RunID, s.GeneratedAt.Format("2 January 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdfTable(pdf, BuildItemTable(s), []float64{70, 40, 40, 40})
	pdf.Ln(6)
	pdfTable(pdf, BuildLedgerTable(s), []float64{45, 40, 45, 40, 40, 40})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfTable(pdf *fpdf.Fpdf, t Table, widths []float64) {
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 8, t.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(226, 232, 240)
	pdf.SetDrawColor(200, 200, 200)
	for i, h := range t.Headers {
		pdf.CellFormat(widths[i], pdfRowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	for _, row := range t.Strings() {
		for i, v := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], pdfRowHeight, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
