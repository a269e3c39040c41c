package sheet

import (
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestValueRange(t *testing.T) {
	grid := [][]string{
		{"a", "b"},
		{"c"},
	}

	vr := ValueRange(grid)

	if vr.Range != "A1" {
		t.Errorf("expected origin A1, got %s", vr.Range)
	}
	if len(vr.Values) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(vr.Values))
	}
	if len(vr.Values[0]) != 2 || len(vr.Values[1]) != 1 {
		t.Errorf("ragged grid not preserved: %v", vr.Values)
	}
	if vr.Values[0][0] != "a" || vr.Values[1][0] != "c" {
		t.Errorf("unexpected values: %v", vr.Values)
	}
}

func TestColumnCount(t *testing.T) {
	grid := [][]string{
		{"a"},
		{"b", "c", "d"},
		{"e", "f"},
	}
	if got := ColumnCount(grid); got != 3 {
		t.Errorf("expected 3 columns, got %d", got)
	}
	if got := ColumnCount(nil); got != 0 {
		t.Errorf("expected 0 columns for empty grid, got %d", got)
	}
}

func TestBuildStyleRequests_HeaderAndBanding(t *testing.T) {
	requests := BuildStyleRequests(42, 4, 3)

	// One header request plus one per data row.
	if len(requests) != 4 {
		t.Fatalf("expected 4 requests, got %d", len(requests))
	}

	header := requests[0].RepeatCell
	if header == nil {
		t.Fatal("expected RepeatCell header request")
	}
	if header.Range.SheetId != 42 || header.Range.StartRowIndex != 0 || header.Range.EndRowIndex != 1 {
		t.Errorf("unexpected header range: %+v", header.Range)
	}
	if header.Cell.UserEnteredFormat.TextFormat == nil || !header.Cell.UserEnteredFormat.TextFormat.Bold {
		t.Error("header row must use bold text")
	}
	if header.Cell.UserEnteredFormat.BackgroundColor != headerFill {
		t.Error("header row must use the header fill")
	}

	// Data rows alternate by parity: row 1 odd, row 2 even, row 3 odd.
	expectedFills := []*sheets.Color{oddFill, evenFill, oddFill}
	for i, want := range expectedFills {
		rc := requests[i+1].RepeatCell
		if rc.Range.StartRowIndex != int64(i+1) {
			t.Errorf("row %d: unexpected range start %d", i+1, rc.Range.StartRowIndex)
		}
		if rc.Cell.UserEnteredFormat.BackgroundColor != want {
			t.Errorf("row %d: unexpected fill", i+1)
		}
	}
}

func TestBuildStyleRequests_EmptyGrid(t *testing.T) {
	if got := BuildStyleRequests(1, 0, 0); got != nil {
		t.Errorf("expected no requests for empty grid, got %v", got)
	}
}

func TestBuildStyleRequests_HeaderOnly(t *testing.T) {
	requests := BuildStyleRequests(1, 1, 2)
	if len(requests) != 1 {
		t.Fatalf("expected only the header request, got %d", len(requests))
	}
}
