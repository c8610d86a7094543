// Winhex - hex dump viewer with search highlighting
// rows.go - Mapping of plain windows and match ranges onto display rows
// Dual-licensed under MIT and Apache 2.0

package main

// Windows partitions buffer[offset:] into consecutive width-byte rows.
// The final row holds whatever bytes remain.
func Windows(buffer []byte, offset, width int) []DisplayRow {
	if width <= 0 || offset < 0 || offset >= len(buffer) {
		return nil
	}

	rows := make([]DisplayRow, 0, (len(buffer)-offset+width-1)/width)
	for start := offset; start < len(buffer); start += width {
		rows = append(rows, clampRow(buffer, start, width))
	}
	return rows
}

// MatchRows returns up to height rows of context starting at the match.
// Rows stop at the end of the buffer and the last one is clamped to it.
func MatchRows(buffer []byte, match MatchRange, width, height int) []DisplayRow {
	if width <= 0 || height <= 0 {
		return nil
	}

	var rows []DisplayRow
	for k := 0; k < height; k++ {
		start := match.Offset + k*width
		if start >= len(buffer) {
			break
		}
		rows = append(rows, clampRow(buffer, start, width))
	}
	return rows
}

// SkipMatch reports whether a match lies entirely before a non-zero offset filter
func SkipMatch(match MatchRange, offset int) bool {
	return offset > 0 && match.Offset+match.Length <= offset
}

// MatchBlocks maps every kept match to its rows, in match order.
// Overlapping matches repeat the bytes they share.
func MatchBlocks(buffer []byte, matches []MatchRange, offset, width, height int) [][]DisplayRow {
	var blocks [][]DisplayRow
	for _, m := range matches {
		if SkipMatch(m, offset) {
			continue
		}
		if rows := MatchRows(buffer, m, width, height); len(rows) > 0 {
			blocks = append(blocks, rows)
		}
	}
	return blocks
}

func clampRow(buffer []byte, start, width int) DisplayRow {
	end := start + width
	if end > len(buffer) {
		end = len(buffer)
	}
	return DisplayRow{Offset: uint64(start), Bytes: buffer[start:end:end]}
}
