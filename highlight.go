// Winhex - hex dump viewer with search highlighting
// highlight.go - Highlight containment test over match ranges
// Dual-licensed under MIT and Apache 2.0

package main

// IsHighlighted reports whether index falls inside any of ranges.
// Both bounds are inclusive: {Offset: 10, Length: 3} flags 10 through 13.
// The scan is linear in len(ranges) for every byte rendered.
func IsHighlighted(index int, ranges []MatchRange) bool {
	for _, r := range ranges {
		if index >= r.Offset && index <= r.Offset+r.Length {
			return true
		}
	}
	return false
}

// Highlight carries what the renderer needs to mark matched bytes
type Highlight struct {
	Ranges   []MatchRange
	Location HighlightLocation
}

// marks reports whether the byte at index is highlighted in the given column
func (h *Highlight) marks(index int, column HighlightLocation) bool {
	if h == nil || !h.Location.Includes(column) {
		return false
	}
	return IsHighlighted(index, h.Ranges)
}
