// Package export renders monthly timesheets as PDF or XLSX documents.
package export

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat defaults to PDF when s is empty.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

func (f Format) Extension() string {
	return string(f)
}

var Headers = []string{"Date", "Arrival", "Departure", "Duration", "Status"}

// MissingValue fills cells for absent times and durations.
const MissingValue = "--:--:--"

type Row struct {
	Date      string
	Arrival   string
	Departure string
	Duration  string
	Status    string
}

func (r Row) cells() []string {
	return []string{r.Date, r.Arrival, r.Departure, r.Duration, r.Status}
}

// Sheet is a document-agnostic timesheet: a title block, the rows and the
// formatted total.
type Sheet struct {
	Title    string
	Subtitle string
	Rows     []Row
	Total    string
}

func (s Sheet) TotalLabel() string {
	return "Total hours worked: " + s.Total
}

// Render dispatches on f.
func Render(f Format, s Sheet) ([]byte, error) {
	switch f {
	case FormatPDF:
		return RenderPDF(s)
	case FormatXLSX:
		return RenderXLSX(s)
	}
	return nil, fmt.Errorf("unsupported export format %q", f)
}
