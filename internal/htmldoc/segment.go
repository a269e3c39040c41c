package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Slide is one (title, description) record produced by segmentation.
// Slides carry no identity beyond their order in the sequence.
type Slide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SegmentByBoldTitles partitions the document into slides using the
// bold-paragraph heuristic: a paragraph whose entire normalized text is
// a single bold run opens a new slide, and the normalized text of every
// block until the next such paragraph becomes the slide description,
// joined by newlines. Content before the first title paragraph is
// discarded. Slides with an empty title are dropped.
func (d *Document) SegmentByBoldTitles() []Slide {
	var out []Slide
	var buffer []string
	var current Slide
	open := false

	flush := func() {
		if open {
			current.Description = strings.Join(buffer, "\n")
			out = append(out, current)
		}
		buffer = buffer[:0]
	}

	for _, block := range d.BodyBlocks() {
		if title, ok := boldTitle(block); ok {
			flush()
			current = Slide{Title: title}
			open = true
			continue
		}
		if !open {
			// No slide exists to receive this content.
			continue
		}
		if text := normalizeText(textContent(block)); text != "" {
			buffer = append(buffer, text)
		}
	}
	flush()

	filtered := out[:0]
	for _, s := range out {
		if s.Title != "" {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// boldTitle reports whether block is a title boundary: a paragraph
// whose whole normalized text equals the normalized text of a contained
// bold element. A paragraph mixing bold and plain text does not
// qualify.
func boldTitle(block *html.Node) (string, bool) {
	if block.Type != html.ElementNode || block.DataAtom != atom.P {
		return "", false
	}

	bold := findBold(block)
	if bold == nil {
		return "", false
	}

	full := normalizeText(textContent(block))
	if full == "" || full != normalizeText(textContent(bold)) {
		return "", false
	}
	return full, true
}

// findBold returns the first strong or b descendant of n. Editors emit
// either tag for bold runs.
func findBold(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Strong || c.DataAtom == atom.B) {
			return c
		}
		if found := findBold(c); found != nil {
			return found
		}
	}
	return nil
}

// SegmentByHeadings partitions the document into slides using h2
// elements as structural slide boundaries. Each h2 titles a slide whose
// description is the raw text of every following sibling up to the next
// h2, one per line, with only the final assembled string trimmed.
func (d *Document) SegmentByHeadings() []Slide {
	var out []Slide
	var current *Slide
	var desc strings.Builder

	closeCurrent := func() {
		if current != nil {
			current.Description = strings.TrimSpace(desc.String())
			out = append(out, *current)
		}
		desc.Reset()
	}

	for _, block := range d.BodyBlocks() {
		if block.DataAtom == atom.H2 {
			closeCurrent()
			current = &Slide{Title: normalizeText(textContent(block))}
			continue
		}
		if current == nil {
			continue
		}
		desc.WriteString(textContent(block))
		desc.WriteString("\n")
	}
	closeCurrent()

	return out
}
