package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type for .xlsx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one tab of a workbook. When Header is set it is written in
// bold on the first row and Rows start on row two; otherwise Rows start
// on row one. An empty row in Rows produces a blank spreadsheet row.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Build renders the sheets, in order, into a single workbook.
func Build(sheets ...Sheet) ([]byte, error) {
	f := excelize.NewFile()

	for i, s := range sheets {
		index, err := f.NewSheet(s.Name)
		if err != nil {
			return nil, fmt.Errorf("can't create sheet %q: %w", s.Name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}

		row := 1
		if len(s.Header) > 0 {
			for c, v := range s.Header {
				cell, _ := excelize.CoordinatesToCellName(c+1, row)
				_ = f.SetCellValue(s.Name, cell, v)
			}
			style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
			if err != nil {
				return nil, fmt.Errorf("can't create header style: %w", err)
			}
			last, _ := excelize.CoordinatesToCellName(len(s.Header), 1)
			_ = f.SetCellStyle(s.Name, "A1", last, style)
			row++
		}

		for _, r := range s.Rows {
			for c, v := range r {
				cell, _ := excelize.CoordinatesToCellName(c+1, row)
				_ = f.SetCellValue(s.Name, cell, v)
			}
			row++
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("can't drop default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("can't write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
