package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"

	"github.com/smorand/htmldrive/internal/htmldoc"
)

const tableHTML = `
	<html><body>
		<table>
			<tr><th>Name</th><th>Total</th></tr>
			<tr><td>alpha</td><td>1</td></tr>
			<tr><td>beta</td><td>2</td></tr>
		</table>
	</body></html>`

func newSheetMock(t *testing.T) (*mockSheetsService, *[][]*sheets.Request, **sheets.ValueRange) {
	t.Helper()
	var batches [][]*sheets.Request
	var written *sheets.ValueRange
	mock := &mockSheetsService{
		CreateSpreadsheetFunc: func(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error) {
			return &sheets.Spreadsheet{
				SpreadsheetId:  "sheet-1",
				SpreadsheetUrl: "https://sheets.example/sheet-1",
				Properties:     spreadsheet.Properties,
				Sheets: []*sheets.Sheet{
					{Properties: &sheets.SheetProperties{SheetId: 7}},
				},
			}, nil
		},
		UpdateValuesFunc: func(ctx context.Context, spreadsheetID string, valueRange *sheets.ValueRange) error {
			written = valueRange
			return nil
		},
		BatchUpdateFunc: func(ctx context.Context, spreadsheetID string, requests []*sheets.Request) error {
			batches = append(batches, requests)
			return nil
		},
	}
	return mock, &batches, &written
}

func TestCreateStyledSheet_Success(t *testing.T) {
	mock, batches, written := newSheetMock(t)
	tools := NewTools(DefaultToolsConfig(), nil, nil, nil, sheetsFactory(mock))

	output, err := tools.CreateStyledSheet(context.Background(), &mockTokenSource{}, CreateStyledSheetInput{
		HTMLBase64: encodeHTML(tableHTML),
		Title:      "Quarterly",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://sheets.example/sheet-1", output.URL)
	assert.Equal(t, "sheet-1", output.SpreadsheetID)

	require.NotNil(t, *written)
	assert.Equal(t, "A1", (*written).Range)
	require.Len(t, (*written).Values, 3)
	assert.Equal(t, "Name", (*written).Values[0][0])
	assert.Equal(t, "beta", (*written).Values[2][0])

	// Header format plus one banding request per data row, addressed to
	// the first sheet.
	require.Len(t, *batches, 1)
	styleBatch := (*batches)[0]
	require.Len(t, styleBatch, 3)
	for _, r := range styleBatch {
		require.NotNil(t, r.RepeatCell)
		assert.Equal(t, int64(7), r.RepeatCell.Range.SheetId)
	}
	assert.True(t, styleBatch[0].RepeatCell.Cell.UserEnteredFormat.TextFormat.Bold)
}

func TestCreateStyledSheet_DefaultTitle(t *testing.T) {
	var createdTitle string
	mock, _, _ := newSheetMock(t)
	base := mock.CreateSpreadsheetFunc
	mock.CreateSpreadsheetFunc = func(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error) {
		createdTitle = spreadsheet.Properties.Title
		return base(ctx, spreadsheet)
	}

	tools := NewTools(DefaultToolsConfig(), nil, nil, nil, sheetsFactory(mock))

	_, err := tools.CreateStyledSheet(context.Background(), &mockTokenSource{}, CreateStyledSheetInput{
		HTMLBase64: encodeHTML(tableHTML),
	})
	require.NoError(t, err)
	assert.Equal(t, defaultSheetTitle, createdTitle)
}

func TestCreateStyledSheet_MissingHTML(t *testing.T) {
	tools := NewTools(DefaultToolsConfig(), nil, nil, nil, sheetsFactory(&mockSheetsService{}))

	_, err := tools.CreateStyledSheet(context.Background(), &mockTokenSource{}, CreateStyledSheetInput{})
	require.ErrorIs(t, err, ErrMissingHTML)
	assert.True(t, IsValidationError(err))
}

func TestCreateStyledSheet_NoTableIsDownstreamError(t *testing.T) {
	factory := sheetsFactory(&mockSheetsService{
		CreateSpreadsheetFunc: func(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error) {
			t.Fatal("no external call may happen when the document has no table")
			return nil, nil
		},
	})
	tools := NewTools(DefaultToolsConfig(), nil, nil, nil, factory)

	_, err := tools.CreateStyledSheet(context.Background(), &mockTokenSource{}, CreateStyledSheetInput{
		HTMLBase64: encodeHTML("<html><body><p>tableless</p></body></html>"),
	})
	require.ErrorIs(t, err, htmldoc.ErrNoTable)
	assert.False(t, IsValidationError(err))
}

func TestCreateStyledSheet_ValuesFailurePropagates(t *testing.T) {
	mock, _, _ := newSheetMock(t)
	mock.UpdateValuesFunc = func(ctx context.Context, spreadsheetID string, valueRange *sheets.ValueRange) error {
		return errors.New("values rejected")
	}

	tools := NewTools(DefaultToolsConfig(), nil, nil, nil, sheetsFactory(mock))

	_, err := tools.CreateStyledSheet(context.Background(), &mockTokenSource{}, CreateStyledSheetInput{
		HTMLBase64: encodeHTML(tableHTML),
	})
	require.ErrorIs(t, err, ErrSheetsAPIError)
}
