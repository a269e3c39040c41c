package htmldoc

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestParseBase64_Valid(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("<html><body><p>hi</p></body></html>"))

	doc, err := ParseBase64(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.BodyBlocks()) != 1 {
		t.Errorf("expected 1 body block, got %d", len(doc.BodyBlocks()))
	}
}

func TestParseBase64_InvalidBase64(t *testing.T) {
	_, err := ParseBase64("not!!valid!!base64")
	if !errors.Is(err, ErrInvalidBase64) {
		t.Fatalf("expected ErrInvalidBase64, got %v", err)
	}
}

func TestParse_FragmentGetsBody(t *testing.T) {
	// Parsers wrap fragments in html/body; top-level blocks must still
	// be reachable.
	doc, err := Parse([]byte("<p>one</p><p>two</p>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.BodyBlocks()) != 2 {
		t.Errorf("expected 2 body blocks, got %d", len(doc.BodyBlocks()))
	}
}

func TestParse_SourcePreserved(t *testing.T) {
	src := "<html><body><p>text</p></body></html>"
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Source() != src {
		t.Errorf("source not preserved: %q", doc.Source())
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"  a  b  ", "a b"},
		{"a\n\tb", "a b"},
		{"", ""},
		{"   ", ""},
		{"one", "one"},
	}
	for _, tc := range tests {
		if got := normalizeText(tc.in); got != tc.expected {
			t.Errorf("normalizeText(%q): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}
