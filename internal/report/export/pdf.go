package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

var pdfColumnWidths = []float64{38, 34, 34, 44, 30}

func RenderPDF(s Sheet) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(s.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(s.Title), "", 1, "L", false, 0, "")
	if s.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(s.Subtitle), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range Headers {
		pdf.CellFormat(pdfColumnWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range s.Rows {
		for i, cell := range row.cells() {
			pdf.CellFormat(pdfColumnWidths[i], 7, tr(cell), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var width float64
	for _, w := range pdfColumnWidths {
		width += w
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(width, 8, s.TotalLabel(), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
