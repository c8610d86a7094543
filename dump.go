// Winhex - hex dump viewer with search highlighting
// dump.go - Document printing for plain and search modes
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"fmt"
	"io"
)

// Document ties a buffer to the settings used to print it
type Document struct {
	Buffer []byte
	Args   Args
	Style  Styler
}

// Print writes the header and rows to out, pausing on pager between pages
// unless NoLimit is set
func (d *Document) Print(out io.Writer, pager *Pager) {
	fmt.Fprintln(out, FormatHeader(d.Args.Width))

	if d.Args.Search == nil {
		d.printWindows(out, pager)
		return
	}
	d.printMatches(out, pager)
}

func (d *Document) printWindows(out io.Writer, pager *Pager) {
	renderer := &Renderer{UTF8: d.Args.UTF8, Style: d.Style}
	rows := Windows(d.Buffer, d.Args.Offset, d.Args.Width)

	for i, row := range rows {
		fmt.Fprintln(out, renderer.FormatRow(row))

		shown := i + 1
		if d.Args.NoLimit || shown%d.Args.Height != 0 || shown == len(rows) {
			continue
		}
		if !pager.Pause(PromptNextRows) {
			return
		}
	}
}

func (d *Document) printMatches(out io.Writer, pager *Pager) {
	matches := d.Args.Search.MatchPattern(d.Buffer)
	renderer := &Renderer{
		Highlight: &Highlight{Ranges: matches, Location: d.Args.Search.HighlightLocation()},
		Style:     d.Style,
	}

	blocks := MatchBlocks(d.Buffer, matches, d.Args.Offset, d.Args.Width, d.Args.Height)
	if len(blocks) == 0 {
		fmt.Fprintln(out, "No matches found")
		return
	}

	for i, rows := range blocks {
		for _, row := range rows {
			fmt.Fprintln(out, renderer.FormatRow(row))
		}

		if d.Args.NoLimit || i+1 == len(blocks) {
			continue
		}
		if !pager.Pause(PromptNextMatch) {
			return
		}
	}
}
