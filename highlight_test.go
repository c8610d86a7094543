// Winhex - hex dump viewer with search highlighting
// highlight_test.go - Unit tests for highlight containment
// Dual-licensed under MIT and Apache 2.0

package main

import "testing"

func TestIsHighlightedInclusiveBounds(t *testing.T) {
	ranges := []MatchRange{{Offset: 10, Length: 3}}

	for index, want := range map[int]bool{9: false, 10: true, 11: true, 12: true, 13: true, 14: false} {
		if got := IsHighlighted(index, ranges); got != want {
			t.Errorf("index %d: expected %v, got %v", index, want, got)
		}
	}
}

func TestIsHighlightedMultipleRanges(t *testing.T) {
	ranges := []MatchRange{{Offset: 0, Length: 1}, {Offset: 20, Length: 2}}

	if !IsHighlighted(1, ranges) || !IsHighlighted(22, ranges) {
		t.Errorf("expected both range ends to be highlighted")
	}
	if IsHighlighted(5, ranges) {
		t.Errorf("expected index between ranges to be plain")
	}
	if IsHighlighted(0, nil) {
		t.Errorf("expected no highlight without ranges")
	}
}

func TestHighlightLocationIncludes(t *testing.T) {
	tests := []struct {
		location HighlightLocation
		data     bool
		text     bool
	}{
		{LocationData, true, false},
		{LocationText, false, true},
		{LocationDataAndText, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.location.String(), func(t *testing.T) {
			if got := tt.location.Includes(LocationData); got != tt.data {
				t.Errorf("data column: expected %v, got %v", tt.data, got)
			}
			if got := tt.location.Includes(LocationText); got != tt.text {
				t.Errorf("text column: expected %v, got %v", tt.text, got)
			}
		})
	}
}

func TestHighlightNilMarksNothing(t *testing.T) {
	var h *Highlight
	if h.marks(0, LocationText) {
		t.Errorf("nil highlight must not mark anything")
	}
}
