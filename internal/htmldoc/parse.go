// Package htmldoc parses uploaded HTML payloads and extracts the
// structures the conversion endpoints work on: slide records, table
// grids and text directionality.
package htmldoc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// Sentinel errors for payload decoding and parsing.
var (
	ErrInvalidBase64 = errors.New("invalid base64 payload")
	ErrParseFailed   = errors.New("failed to parse HTML")
)

// Document is a parsed HTML payload. It keeps the decoded source text
// alongside the node tree so directionality detection can scan the raw
// markup, not just extracted text.
type Document struct {
	root   *html.Node
	source string
}

// DecodeBase64 decodes an html_base64 request field into raw bytes.
func DecodeBase64(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return data, nil
}

// Parse parses raw HTML bytes into a Document. Payloads with a declared
// non-UTF-8 charset are transcoded before parsing.
func Parse(raw []byte) (*Document, error) {
	reader, err := charset.NewReader(bytes.NewReader(raw), "text/html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	root, err := html.Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	return &Document{
		root:   root,
		source: string(raw),
	}, nil
}

// ParseBase64 decodes and parses an html_base64 request field.
func ParseBase64(payload string) (*Document, error) {
	raw, err := DecodeBase64(payload)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Source returns the decoded HTML source text.
func (d *Document) Source() string {
	return d.source
}

// BodyBlocks returns the top-level element children of the document
// body in document order. Text nodes between blocks are not included.
func (d *Document) BodyBlocks() []*html.Node {
	body := findFirst(d.root, atom.Body)
	if body == nil {
		return nil
	}

	var blocks []*html.Node
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			blocks = append(blocks, n)
		}
	}
	return blocks
}

// findFirst returns the first element with the given atom in a
// depth-first walk of the tree rooted at n.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates all text nodes under n in document order.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// normalizeText collapses runs of whitespace to single spaces and trims
// the result.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
