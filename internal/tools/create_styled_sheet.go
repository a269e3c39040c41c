package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"google.golang.org/api/sheets/v4"

	"github.com/smorand/htmldrive/internal/htmldoc"
	"github.com/smorand/htmldrive/internal/sheet"
)

// Sentinel errors for the create-styled-sheet operation.
var ErrSheetCreateFailed = errors.New("failed to create spreadsheet")

// defaultSheetTitle is used when the request omits a title.
const defaultSheetTitle = "Imported Table"

// CreateStyledSheetInput represents the create-styled-sheet request body.
type CreateStyledSheetInput struct {
	HTMLBase64 string `json:"html_base64"`
	Title      string `json:"title,omitempty"`
}

// CreateStyledSheetOutput represents the create-styled-sheet response.
type CreateStyledSheetOutput struct {
	URL           string `json:"url"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

// CreateStyledSheet extracts the first table of an HTML payload into a
// new spreadsheet: raw values at the origin, a formatted header row,
// and alternating row shades below it.
func (t *Tools) CreateStyledSheet(ctx context.Context, tokenSource oauth2.TokenSource, input CreateStyledSheetInput) (*CreateStyledSheetOutput, error) {
	// Validate input
	if input.HTMLBase64 == "" {
		return nil, ErrMissingHTML
	}

	title := input.Title
	if title == "" {
		title = defaultSheetTitle
	}

	document, err := htmldoc.ParseBase64(input.HTMLBase64)
	if err != nil {
		return nil, err
	}

	grid, err := document.FirstTable()
	if err != nil {
		return nil, err
	}

	t.config.Logger.Info("creating styled spreadsheet",
		slog.String("title", title),
		slog.Int("rows", len(grid)),
	)

	sheetsService, err := t.sheetsServiceFactory(ctx, tokenSource)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheets service: %v", ErrSheetsAPIError, err)
	}

	spreadsheet, err := sheetsService.CreateSpreadsheet(ctx, &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	})
	if err != nil {
		if isForbiddenError(err) {
			return nil, fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrSheetCreateFailed, err)
	}

	if err := sheetsService.UpdateValues(ctx, spreadsheet.SpreadsheetId, sheet.ValueRange(grid)); err != nil {
		t.config.Logger.Warn("created spreadsheet left empty",
			slog.String("spreadsheet_id", spreadsheet.SpreadsheetId),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %v", ErrSheetsAPIError, err)
	}

	styleRequests := sheet.BuildStyleRequests(firstSheetID(spreadsheet), len(grid), sheet.ColumnCount(grid))
	if len(styleRequests) > 0 {
		if err := sheetsService.BatchUpdate(ctx, spreadsheet.SpreadsheetId, styleRequests); err != nil {
			t.config.Logger.Warn("created spreadsheet left unstyled",
				slog.String("spreadsheet_id", spreadsheet.SpreadsheetId),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("%w: %v", ErrSheetsAPIError, err)
		}
	}

	output := &CreateStyledSheetOutput{
		URL:           spreadsheetURL(spreadsheet),
		SpreadsheetID: spreadsheet.SpreadsheetId,
	}

	t.config.Logger.Info("spreadsheet created successfully",
		slog.String("spreadsheet_id", output.SpreadsheetID),
		slog.String("url", output.URL),
	)

	return output, nil
}

// firstSheetID returns the ID of the spreadsheet's first sheet, which
// every new spreadsheet has.
func firstSheetID(spreadsheet *sheets.Spreadsheet) int64 {
	if len(spreadsheet.Sheets) == 0 || spreadsheet.Sheets[0].Properties == nil {
		return 0
	}
	return spreadsheet.Sheets[0].Properties.SheetId
}

func spreadsheetURL(spreadsheet *sheets.Spreadsheet) string {
	if spreadsheet.SpreadsheetUrl != "" {
		return spreadsheet.SpreadsheetUrl
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", spreadsheet.SpreadsheetId)
}
