package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"

	"github.com/smorand/htmldrive/internal/htmldoc"
)

// Sentinel errors for the upload-doc operation.
var (
	ErrUploadFailed  = errors.New("failed to upload document")
	ErrStagingFailed = errors.New("failed to stage upload payload")
)

// UploadDocInput represents the upload-doc request body.
type UploadDocInput struct {
	HTMLBase64 string `json:"html_base64"`
	FileName   string `json:"file_name"`
}

// UploadDocOutput represents the upload-doc response.
type UploadDocOutput struct {
	URL        string `json:"url"`
	DocumentID string `json:"document_id"`
}

// UploadDoc converts a base64 HTML payload into a Google Doc: the
// decoded markup is staged to a unique per-request file, imported
// through Drive's native HTML conversion, and the created document gets
// a whole-range paragraph direction matching the source script.
func (t *Tools) UploadDoc(ctx context.Context, tokenSource oauth2.TokenSource, input UploadDocInput) (*UploadDocOutput, error) {
	// Validate input
	if input.HTMLBase64 == "" {
		return nil, ErrMissingHTML
	}
	if input.FileName == "" {
		return nil, ErrMissingFileName
	}

	raw, err := htmldoc.DecodeBase64(input.HTMLBase64)
	if err != nil {
		return nil, err
	}

	direction := htmldoc.DetectDirection(string(raw))

	t.config.Logger.Info("uploading document",
		slog.String("file_name", input.FileName),
		slog.Int("payload_bytes", len(raw)),
		slog.String("direction", string(direction)),
	)

	// Stage to a unique per-request path so concurrent uploads never
	// share a file, removed on every exit path.
	stagingPath := filepath.Join(os.TempDir(), fmt.Sprintf("htmldrive-%s.html", uuid.NewString()))
	if err := os.WriteFile(stagingPath, raw, 0o600); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}
	defer os.Remove(stagingPath)

	staged, err := os.Open(stagingPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}
	defer staged.Close()

	driveService, err := t.driveServiceFactory(ctx, tokenSource)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create drive service: %v", ErrDriveAPIError, err)
	}

	file, err := driveService.ImportHTML(ctx, input.FileName, staged)
	if err != nil {
		if isForbiddenError(err) {
			return nil, fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if err := t.applyDirection(ctx, tokenSource, file.Id, direction); err != nil {
		// Document exists but styling failed; report the failure and
		// leave the orphan ID in the log.
		t.config.Logger.Warn("created document left unstyled",
			slog.String("document_id", file.Id),
			slog.Any("error", err),
		)
		return nil, err
	}

	output := &UploadDocOutput{
		URL:        documentURL(file),
		DocumentID: file.Id,
	}

	t.config.Logger.Info("document uploaded successfully",
		slog.String("document_id", output.DocumentID),
		slog.String("url", output.URL),
	)

	return output, nil
}

// applyDirection probes the created document's length and applies one
// paragraph-direction update spanning the whole body.
func (t *Tools) applyDirection(ctx context.Context, tokenSource oauth2.TokenSource, documentID string, direction htmldoc.Direction) error {
	docsService, err := t.docsServiceFactory(ctx, tokenSource)
	if err != nil {
		return fmt.Errorf("%w: failed to create docs service: %v", ErrDocsAPIError, err)
	}

	document, err := docsService.GetDocument(ctx, documentID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocsAPIError, err)
	}

	endIndex := documentEndIndex(document)
	if endIndex <= 1 {
		// Empty body, nothing to style.
		return nil
	}

	requests := []*docs.Request{
		{
			UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
				Range: &docs.Range{
					StartIndex: 1,
					EndIndex:   endIndex,
				},
				ParagraphStyle: &docs.ParagraphStyle{
					Direction: string(direction),
				},
				Fields: "direction",
			},
		},
	}

	if _, err := docsService.BatchUpdate(ctx, documentID, requests); err != nil {
		return fmt.Errorf("%w: %v", ErrDocsAPIError, err)
	}
	return nil
}

// documentEndIndex returns the end of the body's index range, excluding
// the trailing segment newline the API refuses to style.
func documentEndIndex(document *docs.Document) int64 {
	if document == nil || document.Body == nil || len(document.Body.Content) == 0 {
		return 0
	}
	last := document.Body.Content[len(document.Body.Content)-1]
	return last.EndIndex - 1
}

// documentURL prefers the Drive view link, falling back to the
// canonical edit URL.
func documentURL(file *drive.File) string {
	if file.WebViewLink != "" {
		return file.WebViewLink
	}
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", file.Id)
}
