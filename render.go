// Winhex - hex dump viewer with search highlighting
// render.go - Header and row formatting with highlighted cells
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Styler wraps a highlighted cell; *color.Color satisfies it
type Styler interface {
	Sprint(a ...interface{}) string
}

// NewHighlightStyle returns the inverse-video style for the given color mode
func NewHighlightStyle(mode ColorMode) *color.Color {
	style := color.New(color.ReverseVideo)
	switch mode {
	case ColorAlways:
		style.EnableColor()
	case ColorNever:
		style.DisableColor()
	default:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return style
}

// Renderer formats rows into printable lines
type Renderer struct {
	UTF8      bool       // hex columns only
	Highlight *Highlight // nil when no search is active
	Style     Styler
}

// FormatHeader lists the column index of every byte column followed by the text label
func FormatHeader(width int) string {
	var header strings.Builder
	header.WriteString("Offset (d) ")
	for i := 0; i < width; i++ {
		header.WriteString(fmt.Sprintf("%2d ", i))
	}
	header.WriteString("Decoded text")
	return header.String()
}

// FormatRow renders one row: offset, hex cells and (unless UTF8) the decoded text
func (r *Renderer) FormatRow(row DisplayRow) string {
	var line strings.Builder
	line.WriteString(fmt.Sprintf("%08x   ", row.Offset))

	for i, b := range row.Bytes {
		cell := fmt.Sprintf("%02x", b)
		if r.Highlight.marks(int(row.Offset)+i, LocationData) {
			cell = r.style(cell)
		}
		line.WriteString(cell)
		line.WriteByte(' ')
	}

	if r.UTF8 {
		return line.String()
	}

	text := decodeText(row.Bytes)
	for i := 0; i < len(text); i++ {
		glyph := text[i : i+1]
		if r.Highlight.marks(int(row.Offset)+i, LocationText) {
			glyph = r.style(glyph)
		}
		line.WriteString(glyph)
	}

	return line.String()
}

func (r *Renderer) style(s string) string {
	if r.Style == nil {
		return s
	}
	return r.Style.Sprint(s)
}

// decodeText maps each byte to its printable ASCII character or the placeholder
func decodeText(data []byte) string {
	decoded := make([]byte, len(data))
	for i, b := range data {
		if isPrintable(b) {
			decoded[i] = b
		} else {
			decoded[i] = Placeholder
		}
	}
	return string(decoded)
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
