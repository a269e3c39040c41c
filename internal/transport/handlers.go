package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/smorand/htmldrive/internal/tools"
)

// Request bodies. access_token is validated here so a missing token
// fails before any Google client is constructed.
type uploadDocRequest struct {
	HTMLBase64  string `json:"html_base64"`
	AccessToken string `json:"access_token"`
	FileName    string `json:"file_name"`
}

type createStyledSheetRequest struct {
	HTMLBase64  string `json:"html_base64"`
	AccessToken string `json:"access_token"`
	Title       string `json:"title,omitempty"`
}

type createSlidesRequest struct {
	HTMLBase64  string `json:"html_base64"`
	AccessToken string `json:"access_token"`
	FileName    string `json:"file_name,omitempty"`
}

type urlResponse struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// decodeJSON reads a capped JSON request body into v.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// tokenSource builds the per-request token source from a caller-supplied
// access token. The token is passed through unvalidated.
func tokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an operation error onto the two error kinds: 400 for
// validation, 500 with the error text for everything downstream.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if tools.IsValidationError(err) {
		status = http.StatusBadRequest
	}

	s.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// requirePost rejects anything but POST.
func (s *Server) requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) handleUploadDoc(w http.ResponseWriter, r *http.Request) {
	if !s.requirePost(w, r) {
		return
	}

	var req uploadDocRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.AccessToken == "" {
		s.writeError(w, r, tools.ErrMissingAccessToken)
		return
	}

	output, err := s.tools.UploadDoc(r.Context(), tokenSource(req.AccessToken), tools.UploadDocInput{
		HTMLBase64: req.HTMLBase64,
		FileName:   req.FileName,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, urlResponse{URL: output.URL})
}

func (s *Server) handleCreateStyledSheet(w http.ResponseWriter, r *http.Request) {
	if !s.requirePost(w, r) {
		return
	}

	var req createStyledSheetRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.AccessToken == "" {
		s.writeError(w, r, tools.ErrMissingAccessToken)
		return
	}

	output, err := s.tools.CreateStyledSheet(r.Context(), tokenSource(req.AccessToken), tools.CreateStyledSheetInput{
		HTMLBase64: req.HTMLBase64,
		Title:      req.Title,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, urlResponse{URL: output.URL})
}

func (s *Server) handleCreateSlides(w http.ResponseWriter, r *http.Request) {
	s.handleSlides(w, r, s.tools.CreateSlides)
}

func (s *Server) handleCreateSlidesShow(w http.ResponseWriter, r *http.Request) {
	s.handleSlides(w, r, s.tools.CreateSlidesShow)
}

// handleSlides serves both slide-creation endpoints; only the operation
// differs.
func (s *Server) handleSlides(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, ts oauth2.TokenSource, input tools.CreateSlidesInput) (*tools.CreateSlidesOutput, error)) {
	if !s.requirePost(w, r) {
		return
	}

	var req createSlidesRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.AccessToken == "" {
		s.writeError(w, r, tools.ErrMissingAccessToken)
		return
	}

	output, err := op(r.Context(), tokenSource(req.AccessToken), tools.CreateSlidesInput{
		HTMLBase64: req.HTMLBase64,
		FileName:   req.FileName,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, urlResponse{URL: output.URL})
}
