package export_test

import (
	"bytes"
	"testing"

	"cleanrate/shared/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook(t *testing.T) {
	data, err := export.Workbook(export.Sheet{
		Name: "Ratings",
		Columns: []export.Column{
			{Header: "Employee", Width: 25},
			{Header: "Room", Width: 15},
			{Header: "Rating"},
		},
		Rows: [][]any{
			{"Ann", "301", 9},
			{"Bob", "302", 4},
		},
	}, export.Sheet{
		Name:    "Summary",
		Columns: []export.Column{{Header: "Average"}},
		Rows:    [][]any{{6.5}},
	})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Ratings", "Summary"}, file.GetSheetList())

	rows, err := file.GetRows("Ratings")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Employee", "Room", "Rating"},
		{"Ann", "301", "9"},
		{"Bob", "302", "4"},
	}, rows)

	avg, err := file.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "6.5", avg)
}

func TestWorkbook_NoSheets(t *testing.T) {
	_, err := export.Workbook()
	assert.ErrorIs(t, err, export.ErrNoSheets)
}
