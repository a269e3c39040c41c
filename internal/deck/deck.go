// Package deck projects ordered slide records onto Google Slides batch
// update requests. Every element on a generated slide is absolutely
// positioned; object identifiers are derived from the slide's 1-based
// ordinal so one presentation never sees a collision.
package deck

import (
	"fmt"
	"strings"

	"google.golang.org/api/slides/v1"

	"github.com/smorand/htmldrive/internal/htmldoc"
)

// Layout names a slide-geometry strategy. The two conversion endpoints
// share every measurement except the description box's vertical offset;
// they are kept as distinct named layouts rather than merged.
type Layout struct {
	Name                string
	DescriptionOffsetPT float64
}

var (
	// LayoutStandard is used by the create-slides endpoint.
	LayoutStandard = Layout{Name: "standard", DescriptionOffsetPT: 70}

	// LayoutShow is used by the create-slides-show endpoint.
	LayoutShow = Layout{Name: "show", DescriptionOffsetPT: 100}
)

// Slide geometry in points for a 16:9 presentation.
const (
	slideWidthPT  = 720.0
	slideHeightPT = 405.0

	logoSizePT     = 50.0
	logoMarginPT   = 20.0
	footerWidthPT  = 200.0
	footerHeightPT = 30.0

	titleTopPT    = 20.0
	titleHeightPT = 40.0
	boxMarginPT   = 20.0
	bodyHeightPT  = 280.0

	titleFontPT = 24.0
	bodyFontPT  = 14.0
)

// Branding assets placed on every generated slide.
const (
	backgroundImageURL = "https://storage.googleapis.com/htmldrive-assets/slide-background.png"
	logoImageURL       = "https://storage.googleapis.com/htmldrive-assets/logo.png"
	footerText         = "Created with HTMLDrive"
)

// pointsToEMU converts points to EMU (English Metric Units).
// 1 point = 12700 EMU
const pointsPerEMU = 12700.0

func pointsToEMU(points float64) float64 {
	return points * pointsPerEMU
}

// ObjectIDs returns the deterministic element identifiers for the slide
// at 1-based ordinal i.
func ObjectIDs(i int) (slideID, backgroundID, logoID, footerID, titleID, bodyID string) {
	return fmt.Sprintf("slide_%d", i),
		fmt.Sprintf("bg_%d", i),
		fmt.Sprintf("logo_%d", i),
		fmt.Sprintf("footer_%d", i),
		fmt.Sprintf("title_%d", i),
		fmt.Sprintf("body_%d", i)
}

// BuildRequests emits the full command list for a deck of slide
// records as a single batch. For each slide the container commands
// precede every command referencing their identifiers: slide, then
// background, logo, footer, title box with its text and style, then
// description box with its text and style.
func BuildRequests(records []htmldoc.Slide, layout Layout) []*slides.Request {
	var requests []*slides.Request

	for idx, record := range records {
		ordinal := idx + 1
		slideID, backgroundID, logoID, footerID, titleID, bodyID := ObjectIDs(ordinal)

		requests = append(requests, &slides.Request{
			CreateSlide: &slides.CreateSlideRequest{
				ObjectId: slideID,
				SlideLayoutReference: &slides.LayoutReference{
					PredefinedLayout: "BLANK",
				},
			},
		})

		// Full-bleed background behind everything else.
		requests = append(requests, createImageRequest(backgroundID, slideID, backgroundImageURL,
			0, 0, slideWidthPT, slideHeightPT))

		// Logo anchored near the bottom-left corner.
		requests = append(requests, createImageRequest(logoID, slideID, logoImageURL,
			logoMarginPT, slideHeightPT-logoSizePT-logoMarginPT, logoSizePT, logoSizePT))

		// Fixed brand footer anchored bottom-right.
		requests = append(requests, createTextBoxRequest(footerID, slideID,
			slideWidthPT-footerWidthPT-boxMarginPT, slideHeightPT-footerHeightPT-logoMarginPT,
			footerWidthPT, footerHeightPT))
		requests = append(requests, insertTextRequest(footerID, footerText))

		// Title box across most of the width near the top.
		requests = append(requests, createTextBoxRequest(titleID, slideID,
			boxMarginPT, titleTopPT, slideWidthPT-2*boxMarginPT, titleHeightPT))
		if record.Title != "" {
			requests = append(requests, insertTextRequest(titleID, record.Title))
			requests = append(requests, textStyleRequest(titleID, titleFontPT, true))
		}

		// Description box below the title; only the vertical offset
		// differs between layouts.
		requests = append(requests, createTextBoxRequest(bodyID, slideID,
			boxMarginPT, layout.DescriptionOffsetPT, slideWidthPT-2*boxMarginPT, bodyHeightPT))
		if record.Description != "" {
			requests = append(requests, insertTextRequest(bodyID, record.Description))
			requests = append(requests, textStyleRequest(bodyID, bodyFontPT, false))
		}
	}

	return requests
}

// createImageRequest builds a CreateImage command at an absolute
// position and size in points.
func createImageRequest(objectID, slideID, url string, x, y, width, height float64) *slides.Request {
	return &slides.Request{
		CreateImage: &slides.CreateImageRequest{
			ObjectId:          objectID,
			Url:               url,
			ElementProperties: elementProperties(slideID, x, y, width, height),
		},
	}
}

// createTextBoxRequest builds a CreateShape command for a TEXT_BOX at
// an absolute position and size in points.
func createTextBoxRequest(objectID, slideID string, x, y, width, height float64) *slides.Request {
	return &slides.Request{
		CreateShape: &slides.CreateShapeRequest{
			ObjectId:          objectID,
			ShapeType:         "TEXT_BOX",
			ElementProperties: elementProperties(slideID, x, y, width, height),
		},
	}
}

func elementProperties(slideID string, x, y, width, height float64) *slides.PageElementProperties {
	return &slides.PageElementProperties{
		PageObjectId: slideID,
		Size: &slides.Size{
			Width: &slides.Dimension{
				Magnitude: pointsToEMU(width),
				Unit:      "EMU",
			},
			Height: &slides.Dimension{
				Magnitude: pointsToEMU(height),
				Unit:      "EMU",
			},
		},
		Transform: &slides.AffineTransform{
			ScaleX:     1,
			ScaleY:     1,
			TranslateX: pointsToEMU(x),
			TranslateY: pointsToEMU(y),
			Unit:       "EMU",
		},
	}
}

func insertTextRequest(objectID, text string) *slides.Request {
	return &slides.Request{
		InsertText: &slides.InsertTextRequest{
			ObjectId:       objectID,
			InsertionIndex: 0,
			Text:           text,
		},
	}
}

// textStyleRequest fixes font size and weight across the whole text of
// a shape. Bold is always sent explicitly so description text stays
// non-bold regardless of layout inheritance.
func textStyleRequest(objectID string, fontSizePT float64, bold bool) *slides.Request {
	return &slides.Request{
		UpdateTextStyle: &slides.UpdateTextStyleRequest{
			ObjectId: objectID,
			Style: &slides.TextStyle{
				FontSize: &slides.Dimension{
					Magnitude: fontSizePT,
					Unit:      "PT",
				},
				Bold:            bold,
				ForceSendFields: []string{"Bold"},
			},
			TextRange: &slides.Range{
				Type: "ALL",
			},
			Fields: strings.Join([]string{"fontSize", "bold"}, ","),
		},
	}
}
