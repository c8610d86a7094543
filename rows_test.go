// Winhex - hex dump viewer with search highlighting
// rows_test.go - Unit tests for window and match row mapping
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bytes"
	"testing"
)

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestWindows(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		offset  int
		width   int
		offsets []uint64
		lengths []int
	}{
		{name: "shorter than width", size: 13, width: 16, offsets: []uint64{0}, lengths: []int{13}},
		{name: "exact multiple", size: 32, width: 16, offsets: []uint64{0, 16}, lengths: []int{16, 16}},
		{name: "partial final window", size: 20, width: 8, offsets: []uint64{0, 8, 16}, lengths: []int{8, 8, 4}},
		{name: "starting offset", size: 20, offset: 5, width: 8, offsets: []uint64{5, 13}, lengths: []int{8, 7}},
		{name: "offset at end", size: 10, offset: 10, width: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := sequence(tt.size)
			rows := Windows(buffer, tt.offset, tt.width)
			if len(rows) != len(tt.offsets) {
				t.Fatalf("expected %d rows, got %d", len(tt.offsets), len(rows))
			}
			for i, row := range rows {
				if row.Offset != tt.offsets[i] {
					t.Errorf("row %d: expected offset %d, got %d", i, tt.offsets[i], row.Offset)
				}
				if len(row.Bytes) != tt.lengths[i] {
					t.Errorf("row %d: expected %d bytes, got %d", i, tt.lengths[i], len(row.Bytes))
				}
				if !bytes.Equal(row.Bytes, buffer[row.Offset:row.End()]) {
					t.Errorf("row %d: bytes do not match buffer", i)
				}
			}
		})
	}
}

func TestMatchRowsClampsAtBufferEnd(t *testing.T) {
	buffer := sequence(40)
	rows := MatchRows(buffer, MatchRange{Offset: 10, Length: 2}, 16, 4)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Offset != 10 || len(rows[0].Bytes) != 16 {
		t.Errorf("first row: got offset %d with %d bytes", rows[0].Offset, len(rows[0].Bytes))
	}
	if rows[1].Offset != 26 || len(rows[1].Bytes) != 14 {
		t.Errorf("last row: got offset %d with %d bytes", rows[1].Offset, len(rows[1].Bytes))
	}
}

func TestMatchRowsNeverPastBuffer(t *testing.T) {
	buffer := sequence(37)
	for offset := 0; offset < len(buffer); offset++ {
		for _, width := range []int{1, 3, 8, 16} {
			for _, height := range []int{1, 2, 5} {
				rows := MatchRows(buffer, MatchRange{Offset: offset, Length: 1}, width, height)
				if len(rows) > height {
					t.Fatalf("offset %d width %d: %d rows exceeds height %d", offset, width, len(rows), height)
				}
				for _, row := range rows {
					if row.End() > uint64(len(buffer)) {
						t.Fatalf("offset %d width %d: row %d+%d runs past %d", offset, width, row.Offset, len(row.Bytes), len(buffer))
					}
					if len(row.Bytes) > width {
						t.Fatalf("row wider than %d", width)
					}
				}
			}
		}
	}
}

func TestSkipMatch(t *testing.T) {
	tests := []struct {
		name   string
		match  MatchRange
		offset int
		skip   bool
	}{
		{name: "no filter", match: MatchRange{Offset: 0, Length: 2}, offset: 0, skip: false},
		{name: "entirely before filter", match: MatchRange{Offset: 2, Length: 3}, offset: 10, skip: true},
		{name: "ends at filter", match: MatchRange{Offset: 7, Length: 3}, offset: 10, skip: true},
		{name: "straddles filter", match: MatchRange{Offset: 8, Length: 3}, offset: 10, skip: false},
		{name: "after filter", match: MatchRange{Offset: 12, Length: 3}, offset: 10, skip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkipMatch(tt.match, tt.offset); got != tt.skip {
				t.Errorf("expected %v, got %v", tt.skip, got)
			}
		})
	}
}

func TestMatchBlocksKeepOverlaps(t *testing.T) {
	buffer := []byte("aaaa")
	matches := (TextMatcher{Text: "aa"}).MatchPattern(buffer)

	blocks := MatchBlocks(buffer, matches, 0, 16, 1)
	if len(blocks) != 3 {
		t.Fatalf("expected one block per match, got %d", len(blocks))
	}
	for i, block := range blocks {
		if block[0].Offset != uint64(i) {
			t.Errorf("block %d: expected offset %d, got %d", i, i, block[0].Offset)
		}
	}

	if blocks := MatchBlocks(buffer, matches, 2, 16, 1); len(blocks) != 2 {
		t.Errorf("expected the first match to be skipped, got %d blocks", len(blocks))
	}
}
