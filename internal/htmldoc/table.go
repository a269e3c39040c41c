package htmldoc

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoTable indicates the document contains no table element.
var ErrNoTable = errors.New("no table found in document")

// FirstTable extracts the first table in the document as a grid of
// trimmed cell strings, one row per tr, one cell per td or th. The grid
// is not forced rectangular; ragged rows are returned as-is.
func (d *Document) FirstTable() ([][]string, error) {
	table := findFirst(d.root, atom.Table)
	if table == nil {
		return nil, ErrNoTable
	}

	var grid [][]string
	for _, tr := range findAll(table, atom.Tr) {
		var row []string
		for _, cell := range cellsOf(tr) {
			row = append(row, strings.TrimSpace(textContent(cell)))
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// findAll returns all elements with the given atom under n in document
// order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}

// cellsOf returns the td and th elements of a table row.
func cellsOf(tr *html.Node) []*html.Node {
	var cells []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Td || n.DataAtom == atom.Th) {
			cells = append(cells, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return cells
}
