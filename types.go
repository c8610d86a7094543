// Winhex - hex dump viewer with search highlighting
// types.go - Type definitions for buffers, match ranges and display rows
// Dual-licensed under MIT and Apache 2.0

package main

// Defaults
const (
	DefaultWidth  = 16 // bytes per row
	DefaultHeight = 16 // rows per page, or context rows per match
)

// Placeholder is shown in the decoded column for bytes outside 0x20-0x7E
const Placeholder = '.'

// MatchRange is a located occurrence of a search pattern
// Offset+Length never exceeds the length of the buffer it was found in
type MatchRange struct {
	Offset int
	Length int
}

// HighlightLocation selects which output columns a matcher's hits mark
type HighlightLocation int

const (
	// LocationData highlights the hex byte column
	LocationData HighlightLocation = iota
	// LocationText highlights the decoded text column
	LocationText
	// LocationDataAndText highlights both columns
	LocationDataAndText
)

// Includes reports whether l covers the column selected by column
// (LocationData or LocationText)
func (l HighlightLocation) Includes(column HighlightLocation) bool {
	if l == LocationDataAndText {
		return column == LocationData || column == LocationText
	}
	return l == column
}

func (l HighlightLocation) String() string {
	switch l {
	case LocationData:
		return "data"
	case LocationText:
		return "text"
	case LocationDataAndText:
		return "data+text"
	default:
		return "unknown"
	}
}

// DisplayRow is one slice of the buffer prepared for one printed line
// Bytes aliases the buffer and is never written to
type DisplayRow struct {
	Offset uint64
	Bytes  []byte
}

// End returns the absolute offset one past the last byte of the row
func (r DisplayRow) End() uint64 {
	return r.Offset + uint64(len(r.Bytes))
}
