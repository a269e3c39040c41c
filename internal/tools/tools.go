// Package tools implements the conversion operations behind the HTTP
// endpoints: HTML to Google Doc, to styled spreadsheet, and to slide
// deck. Each operation takes the caller's per-request OAuth token
// source; nothing is retained between requests.
package tools

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"google.golang.org/api/slides/v1"
)

// googleDocMimeType is the target type for Drive HTML import.
const googleDocMimeType = "application/vnd.google-apps.document"

// SlidesService abstracts the Google Slides API for testing.
type SlidesService interface {
	CreatePresentation(ctx context.Context, presentation *slides.Presentation) (*slides.Presentation, error)
	BatchUpdate(ctx context.Context, presentationID string, requests []*slides.Request) (*slides.BatchUpdatePresentationResponse, error)
}

// DriveService abstracts the Google Drive API for testing.
type DriveService interface {
	ImportHTML(ctx context.Context, name string, content io.Reader) (*drive.File, error)
}

// DocsService abstracts the Google Docs API for testing.
type DocsService interface {
	GetDocument(ctx context.Context, documentID string) (*docs.Document, error)
	BatchUpdate(ctx context.Context, documentID string, requests []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// SheetsService abstracts the Google Sheets API for testing.
type SheetsService interface {
	CreateSpreadsheet(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error)
	UpdateValues(ctx context.Context, spreadsheetID string, valueRange *sheets.ValueRange) error
	BatchUpdate(ctx context.Context, spreadsheetID string, requests []*sheets.Request) error
}

// Factories create API services from a per-request token source.
type (
	SlidesServiceFactory func(ctx context.Context, tokenSource oauth2.TokenSource) (SlidesService, error)
	DriveServiceFactory  func(ctx context.Context, tokenSource oauth2.TokenSource) (DriveService, error)
	DocsServiceFactory   func(ctx context.Context, tokenSource oauth2.TokenSource) (DocsService, error)
	SheetsServiceFactory func(ctx context.Context, tokenSource oauth2.TokenSource) (SheetsService, error)
)

// realSlidesService wraps the actual Google Slides API.
type realSlidesService struct {
	service *slides.Service
}

func (s *realSlidesService) CreatePresentation(ctx context.Context, presentation *slides.Presentation) (*slides.Presentation, error) {
	return s.service.Presentations.Create(presentation).Context(ctx).Do()
}

func (s *realSlidesService) BatchUpdate(ctx context.Context, presentationID string, requests []*slides.Request) (*slides.BatchUpdatePresentationResponse, error) {
	return s.service.Presentations.BatchUpdate(presentationID, &slides.BatchUpdatePresentationRequest{
		Requests: requests,
	}).Context(ctx).Do()
}

// NewRealSlidesServiceFactory returns a factory that creates real Slides services.
func NewRealSlidesServiceFactory() SlidesServiceFactory {
	return func(ctx context.Context, tokenSource oauth2.TokenSource) (SlidesService, error) {
		service, err := slides.NewService(ctx, option.WithTokenSource(tokenSource))
		if err != nil {
			return nil, err
		}
		return &realSlidesService{service: service}, nil
	}
}

// realDriveService wraps the actual Google Drive API.
type realDriveService struct {
	service *drive.Service
}

// ImportHTML uploads HTML content and lets Drive convert it into a
// native Google Doc.
func (s *realDriveService) ImportHTML(ctx context.Context, name string, content io.Reader) (*drive.File, error) {
	file := &drive.File{
		Name:     name,
		MimeType: googleDocMimeType,
	}
	return s.service.Files.Create(file).
		Media(content, googleapi.ContentType("text/html")).
		Fields("id, name, mimeType, webViewLink").
		Context(ctx).
		Do()
}

// NewRealDriveServiceFactory returns a factory that creates real Drive services.
func NewRealDriveServiceFactory() DriveServiceFactory {
	return func(ctx context.Context, tokenSource oauth2.TokenSource) (DriveService, error) {
		service, err := drive.NewService(ctx, option.WithTokenSource(tokenSource))
		if err != nil {
			return nil, err
		}
		return &realDriveService{service: service}, nil
	}
}

// realDocsService wraps the actual Google Docs API.
type realDocsService struct {
	service *docs.Service
}

func (s *realDocsService) GetDocument(ctx context.Context, documentID string) (*docs.Document, error) {
	return s.service.Documents.Get(documentID).Context(ctx).Do()
}

func (s *realDocsService) BatchUpdate(ctx context.Context, documentID string, requests []*docs.Request) (*docs.BatchUpdateDocumentResponse, error) {
	return s.service.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: requests,
	}).Context(ctx).Do()
}

// NewRealDocsServiceFactory returns a factory that creates real Docs services.
func NewRealDocsServiceFactory() DocsServiceFactory {
	return func(ctx context.Context, tokenSource oauth2.TokenSource) (DocsService, error) {
		service, err := docs.NewService(ctx, option.WithTokenSource(tokenSource))
		if err != nil {
			return nil, err
		}
		return &realDocsService{service: service}, nil
	}
}

// realSheetsService wraps the actual Google Sheets API.
type realSheetsService struct {
	service *sheets.Service
}

func (s *realSheetsService) CreateSpreadsheet(ctx context.Context, spreadsheet *sheets.Spreadsheet) (*sheets.Spreadsheet, error) {
	return s.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
}

func (s *realSheetsService) UpdateValues(ctx context.Context, spreadsheetID string, valueRange *sheets.ValueRange) error {
	_, err := s.service.Spreadsheets.Values.Update(spreadsheetID, valueRange.Range, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (s *realSheetsService) BatchUpdate(ctx context.Context, spreadsheetID string, requests []*sheets.Request) error {
	_, err := s.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}

// NewRealSheetsServiceFactory returns a factory that creates real Sheets services.
func NewRealSheetsServiceFactory() SheetsServiceFactory {
	return func(ctx context.Context, tokenSource oauth2.TokenSource) (SheetsService, error) {
		service, err := sheets.NewService(ctx, option.WithTokenSource(tokenSource))
		if err != nil {
			return nil, err
		}
		return &realSheetsService{service: service}, nil
	}
}

// ToolsConfig holds configuration for the tools.
type ToolsConfig struct {
	Logger *slog.Logger
}

// DefaultToolsConfig returns default configuration.
func DefaultToolsConfig() ToolsConfig {
	return ToolsConfig{
		Logger: slog.Default(),
	}
}

// Tools provides the conversion operation implementations.
type Tools struct {
	config               ToolsConfig
	slidesServiceFactory SlidesServiceFactory
	driveServiceFactory  DriveServiceFactory
	docsServiceFactory   DocsServiceFactory
	sheetsServiceFactory SheetsServiceFactory
}

// NewTools creates a new Tools instance. Nil factories fall back to the
// real Google API clients.
func NewTools(config ToolsConfig, slidesFactory SlidesServiceFactory, driveFactory DriveServiceFactory, docsFactory DocsServiceFactory, sheetsFactory SheetsServiceFactory) *Tools {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if slidesFactory == nil {
		slidesFactory = NewRealSlidesServiceFactory()
	}
	if driveFactory == nil {
		driveFactory = NewRealDriveServiceFactory()
	}
	if docsFactory == nil {
		docsFactory = NewRealDocsServiceFactory()
	}
	if sheetsFactory == nil {
		sheetsFactory = NewRealSheetsServiceFactory()
	}

	return &Tools{
		config:               config,
		slidesServiceFactory: slidesFactory,
		driveServiceFactory:  driveFactory,
		docsServiceFactory:   docsFactory,
		sheetsServiceFactory: sheetsFactory,
	}
}
