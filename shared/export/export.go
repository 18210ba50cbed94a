package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	headerRow    = 1
)

var ErrNoSheets = errors.New("workbook needs at least one sheet")

type Column struct {
	Header string
	Width  float64
}

// Sheet is one worksheet. Every row must follow the order of Columns.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// Workbook renders the sheets into an xlsx file, the first sheet active.
func Workbook(sheets ...Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	file := excelize.NewFile()
	defer file.Close()

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, sheet := range sheets {
		index, err := file.NewSheet(sheet.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
		}

		if i == 0 {
			file.SetActiveSheet(index)
		}

		if err := writeSheet(file, sheet, headerStyle); err != nil {
			return nil, err
		}
	}

	if sheets[0].Name != defaultSheet {
		if err := file.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("failed to delete default sheet: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSheet(file *excelize.File, sheet Sheet, headerStyle int) error {
	for col, column := range sheet.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}

		if err := file.SetCellValue(sheet.Name, cell, column.Header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}

		if err := file.SetCellStyle(sheet.Name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}

		if column.Width > 0 {
			name, err := excelize.ColumnNumberToName(col + 1)
			if err != nil {
				return fmt.Errorf("failed to convert column number: %w", err)
			}

			if err := file.SetColWidth(sheet.Name, name, name, column.Width); err != nil {
				return fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}

	for rowIdx, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+headerRow+1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}

		values := row
		if err := file.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowIdx+1, err)
		}
	}

	return nil
}
