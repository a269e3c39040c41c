package tools

import (
	"context"
	"io"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
	"google.golang.org/api/slides/v1"
)

type mockTokenSource struct{}

func (m *mockTokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "test-token"}, nil
}

type mockSlidesService struct {
	CreatePresentationFunc func(ctx context.Context, presentation *slides.Presentation) (*slides.Presentation, error)
	BatchUpdateFunc        func(ctx context.Context, presentationID string, requests []*slides.Request) (*slides.BatchUpdatePresentationResponse, error)
}

func (m *mockSlidesService) CreatePresentation(ctx context.Context, presentation *slides.Presentation) (*slides.Presentation, error) {
	return m.CreatePresentationFunc(ctx, presentation)
}

func (m *mockSlidesService) BatchUpdate(ctx context.Context, presentationID string, requests []*slides.Request) (*slides.BatchUpdatePresentationResponse, error) {
	return m.BatchUpdateFunc(ctx, presentationID, requests)
}

type mockDriveService struct {
	ImportHTMLFunc func(ctx context.Context, name string, content io.Reader) (*drive.File, error)
}

func (m *mockDriveService) ImportHTML(ctx context.Context, name string, content io.Reader) (*drive.File, error) {
	return m.ImportHTMLFunc(ctx, name, content)
}

type mockDocsService struct {
	GetDocumentFunc func(ctx context.Context, documentID string) (*docs.Document, error)
	BatchUpdateFunc func(ctx context.Context, documentID string, requests []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

func (m *mockDocsService) GetDocument(ctx context.Context, documentID string) (*docs.Document, error) {
	return m.GetDocumentFunc(ctx, documentID)
}

func (m *mockDocsService) BatchUpdate(ctx context.Context, documentID string, requests []*docs.Request) (*docs.BatchUpdateDocumentResponse, error) {
	return m.BatchUpdateFunc(ctx, documentID, requests)
}

type mockSheetsService struct {
	CreateSpreadsheetFunc func(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error)
	UpdateValuesFunc      func(ctx context.Context, spreadsheetID string, valueRange *sheets.ValueRange) error
	BatchUpdateFunc       func(ctx context.Context, spreadsheetID string, requests []*sheets.Request) error
}

func (m *mockSheetsService) CreateSpreadsheet(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error) {
	return m.CreateSpreadsheetFunc(ctx, spreadsheet)
}

func (m *mockSheetsService) UpdateValues(ctx context.Context, spreadsheetID string, valueRange *sheets.ValueRange) error {
	return m.UpdateValuesFunc(ctx, spreadsheetID, valueRange)
}

func (m *mockSheetsService) BatchUpdate(ctx context.Context, spreadsheetID string, requests []*sheets.Request) error {
	return m.BatchUpdateFunc(ctx, spreadsheetID, requests)
}

// Factory helpers wiring a mock into Tools.

func slidesFactory(m *mockSlidesService) SlidesServiceFactory {
	return func(ctx context.Context, ts oauth2.TokenSource) (SlidesService, error) {
		return m, nil
	}
}

func driveFactory(m *mockDriveService) DriveServiceFactory {
	return func(ctx context.Context, ts oauth2.TokenSource) (DriveService, error) {
		return m, nil
	}
}

func docsFactory(m *mockDocsService) DocsServiceFactory {
	return func(ctx context.Context, ts oauth2.TokenSource) (DocsService, error) {
		return m, nil
	}
}

func sheetsFactory(m *mockSheetsService) SheetsServiceFactory {
	return func(ctx context.Context, ts oauth2.TokenSource) (SheetsService, error) {
		return m, nil
	}
}
