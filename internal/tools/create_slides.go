package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"google.golang.org/api/slides/v1"

	"github.com/smorand/htmldrive/internal/deck"
	"github.com/smorand/htmldrive/internal/htmldoc"
)

// Sentinel errors for the slide-creation operations.
var ErrPresentationCreateFailed = errors.New("failed to create presentation")

// defaultPresentationTitle is used when the request omits a file name.
const defaultPresentationTitle = "HTML Presentation"

// CreateSlidesInput represents the body of both slide-creation
// endpoints.
type CreateSlidesInput struct {
	HTMLBase64 string `json:"html_base64"`
	FileName   string `json:"file_name,omitempty"`
}

// CreateSlidesOutput represents the slide-creation response.
type CreateSlidesOutput struct {
	URL            string `json:"url"`
	PresentationID string `json:"presentation_id"`
	SlideCount     int    `json:"slide_count"`
}

// CreateSlides builds a presentation from bold-paragraph segmentation
// using the standard layout.
func (t *Tools) CreateSlides(ctx context.Context, tokenSource oauth2.TokenSource, input CreateSlidesInput) (*CreateSlidesOutput, error) {
	return t.createDeck(ctx, tokenSource, input, (*htmldoc.Document).SegmentByBoldTitles, deck.LayoutStandard)
}

// CreateSlidesShow builds a presentation from heading segmentation
// using the show layout.
func (t *Tools) CreateSlidesShow(ctx context.Context, tokenSource oauth2.TokenSource, input CreateSlidesInput) (*CreateSlidesOutput, error) {
	return t.createDeck(ctx, tokenSource, input, (*htmldoc.Document).SegmentByHeadings, deck.LayoutShow)
}

// createDeck is the shared slide-creation flow: segment, create an
// empty presentation, then populate it with one batched update.
func (t *Tools) createDeck(ctx context.Context, tokenSource oauth2.TokenSource, input CreateSlidesInput, segment func(*htmldoc.Document) []htmldoc.Slide, layout deck.Layout) (*CreateSlidesOutput, error) {
	// Validate input
	if input.HTMLBase64 == "" {
		return nil, ErrMissingHTML
	}

	title := input.FileName
	if title == "" {
		title = defaultPresentationTitle
	}

	document, err := htmldoc.ParseBase64(input.HTMLBase64)
	if err != nil {
		return nil, err
	}

	records := segment(document)
	if len(records) == 0 {
		return nil, ErrNoSlides
	}

	t.config.Logger.Info("creating presentation",
		slog.String("title", title),
		slog.String("layout", layout.Name),
		slog.Int("slide_count", len(records)),
	)

	slidesService, err := t.slidesServiceFactory(ctx, tokenSource)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create slides service: %v", ErrSlidesAPIError, err)
	}

	presentation, err := slidesService.CreatePresentation(ctx, &slides.Presentation{
		Title: title,
	})
	if err != nil {
		if isForbiddenError(err) {
			return nil, fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrPresentationCreateFailed, err)
	}

	requests := deck.BuildRequests(records, layout)
	if _, err := slidesService.BatchUpdate(ctx, presentation.PresentationId, requests); err != nil {
		// The presentation exists but its deck batch failed mid-flight;
		// log the orphan ID so it can be reaped.
		t.config.Logger.Warn("created presentation left partially constructed",
			slog.String("presentation_id", presentation.PresentationId),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %v", ErrSlidesAPIError, err)
	}

	output := &CreateSlidesOutput{
		URL:            presentationURL(presentation),
		PresentationID: presentation.PresentationId,
		SlideCount:     len(records),
	}

	t.config.Logger.Info("presentation created successfully",
		slog.String("presentation_id", output.PresentationID),
		slog.Int("slide_count", output.SlideCount),
	)

	return output, nil
}

func presentationURL(presentation *slides.Presentation) string {
	return fmt.Sprintf("https://docs.google.com/presentation/d/%s/edit", presentation.PresentationId)
}
