// Package sheet builds Google Sheets requests for imported table
// grids: raw values anchored at A1, a formatted header row and
// alternating row banding below it.
package sheet

import (
	"google.golang.org/api/sheets/v4"
)

// Fill and font colors for the generated sheet.
var (
	headerFill = &sheets.Color{Red: 0.26, Green: 0.32, Blue: 0.42}
	headerFont = &sheets.Color{Red: 1, Green: 1, Blue: 1}
	evenFill   = &sheets.Color{Red: 0.93, Green: 0.95, Blue: 0.98}
	oddFill    = &sheets.Color{Red: 1, Green: 1, Blue: 1}
)

// ValueRange converts a cell grid into a RAW value range anchored at
// the sheet origin. Ragged rows are written as-is.
func ValueRange(grid [][]string) *sheets.ValueRange {
	values := make([][]interface{}, len(grid))
	for i, row := range grid {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &sheets.ValueRange{
		Range:  "A1",
		Values: values,
	}
}

// ColumnCount returns the widest row of the grid.
func ColumnCount(grid [][]string) int {
	max := 0
	for _, row := range grid {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// BuildStyleRequests emits the formatting batch for a grid of rowCount
// rows and columnCount columns on the given sheet: a distinct header
// row, then two background shades alternating by row parity.
func BuildStyleRequests(sheetID int64, rowCount, columnCount int) []*sheets.Request {
	if rowCount == 0 || columnCount == 0 {
		return nil
	}

	requests := []*sheets.Request{
		{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: rowRange(sheetID, 0, columnCount),
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						BackgroundColor: headerFill,
						TextFormat: &sheets.TextFormat{
							Bold:            true,
							ForegroundColor: headerFont,
						},
					},
				},
				Fields: "userEnteredFormat(backgroundColor,textFormat)",
			},
		},
	}

	for row := 1; row < rowCount; row++ {
		fill := oddFill
		if row%2 == 0 {
			fill = evenFill
		}
		requests = append(requests, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: rowRange(sheetID, row, columnCount),
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						BackgroundColor: fill,
					},
				},
				Fields: "userEnteredFormat.backgroundColor",
			},
		})
	}

	return requests
}

// rowRange addresses one grid row across columnCount columns.
func rowRange(sheetID int64, row, columnCount int) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    int64(row),
		EndRowIndex:      int64(row + 1),
		StartColumnIndex: 0,
		EndColumnIndex:   int64(columnCount),
		ForceSendFields:  []string{"StartRowIndex", "StartColumnIndex"},
	}
}
