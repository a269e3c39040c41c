package tools

import (
	"errors"
	"strings"
)

// Validation errors surface as HTTP 400; everything else is a
// downstream failure and surfaces as HTTP 500 with the error text.
var (
	ErrMissingHTML        = errors.New("html_base64 is required")
	ErrMissingAccessToken = errors.New("access_token is required")
	ErrMissingFileName    = errors.New("file_name is required")
	ErrNoSlides           = errors.New("no valid slides found in document")
)

// Downstream failure sentinels.
var (
	ErrSlidesAPIError = errors.New("slides API error")
	ErrDriveAPIError  = errors.New("drive API error")
	ErrDocsAPIError   = errors.New("docs API error")
	ErrSheetsAPIError = errors.New("sheets API error")
	ErrAccessDenied   = errors.New("access denied")
)

var validationErrors = []error{
	ErrMissingHTML,
	ErrMissingAccessToken,
	ErrMissingFileName,
	ErrNoSlides,
}

// IsValidationError reports whether err belongs to the request-side
// error kind that maps to HTTP 400.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// isForbiddenError checks if an error indicates access was denied.
func isForbiddenError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "forbidden") ||
		strings.Contains(errStr, "access denied") ||
		strings.Contains(errStr, "permission denied")
}
