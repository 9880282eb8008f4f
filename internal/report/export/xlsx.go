package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Timesheet"

// RenderXLSX writes a title row, a blank spacer, the header, one row per
// session and the total row.
func RenderXLSX(s Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	title := s.Title
	if s.Subtitle != "" {
		title += " - " + s.Subtitle
	}
	if err := f.SetCellValue(SheetName, "A1", title); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A3", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A3", "E3", bold); err != nil {
		return nil, err
	}

	line := 4
	for _, row := range s.Rows {
		cells := row.cells()
		values := make([]interface{}, len(cells))
		for i, c := range cells {
			values[i] = c
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", line), &values); err != nil {
			return nil, err
		}
		line++
	}

	totalCell := fmt.Sprintf("A%d", line)
	if err := f.SetCellValue(SheetName, totalCell, s.TotalLabel()); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, totalCell, totalCell, bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "A", "E", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
