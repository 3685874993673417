package main

import "testing"

func TestCatalogHas76Lines(t *testing.T) {
	if len(lineCatalog) != totalLines {
		t.Fatalf("catalog has %d lines, want %d", len(lineCatalog), totalLines)
	}
	seen := make(map[Line]bool, len(lineCatalog))
	for pos, line := range lineCatalog {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if line[i] == line[j] {
					t.Fatalf("line %d repeats index %d", pos, line[i])
				}
			}
		}
		if seen[line] {
			t.Fatalf("line %d duplicates an earlier line", pos)
		}
		seen[line] = true
	}
}

func TestCatalogCategories(t *testing.T) {
	counts := map[int]int{}
	for _, line := range lineCatalog {
		var xs, ys, zs [boardDim]bool
		for _, index := range line {
			x, y, z := cellCoords(index)
			xs[x], ys[y], zs[z] = true, true, true
		}
		varying := 0
		for _, axis := range [][boardDim]bool{xs, ys, zs} {
			distinct := 0
			for _, hit := range axis {
				if hit {
					distinct++
				}
			}
			if distinct > 1 {
				varying++
			}
		}
		counts[varying]++
	}
	if counts[1] != 48 {
		t.Fatalf("axis-aligned lines = %d, want 48", counts[1])
	}
	if counts[2] != 24 {
		t.Fatalf("planar-diagonal lines = %d, want 24", counts[2])
	}
	if counts[3] != 4 {
		t.Fatalf("space-diagonal lines = %d, want 4", counts[3])
	}
}

func TestEveryCellOnALine(t *testing.T) {
	for index := 0; index < cellCount; index++ {
		n := len(linesThroughCell[index])
		if n == 0 {
			t.Fatalf("cell %d lies on no line", index)
		}
		// Cells on the four main diagonals of their layers sit on 7
		// lines, everything else on 4.
		if n != 4 && n != 7 {
			t.Fatalf("cell %d lies on %d lines, want 4 or 7", index, n)
		}
	}
}

func TestOpenLinesThrough(t *testing.T) {
	board := NewBoard()
	if got := openLinesThrough(board, 0, CellNought); got != 7 {
		t.Fatalf("corner cell has %d open lines on an empty board, want 7", got)
	}
	if got := openLinesThrough(board, cellIndex(1, 0, 0), CellNought); got != 4 {
		t.Fatalf("edge cell has %d open lines on an empty board, want 4", got)
	}
	// A cross mark anywhere on the x-row through the corner spoils it.
	board.Set(2, 0, 0, CellCross)
	if got := openLinesThrough(board, 0, CellNought); got != 6 {
		t.Fatalf("corner cell has %d open lines after a block, want 6", got)
	}
	if got := openLinesThrough(board, 0, CellCross); got != 7 {
		t.Fatalf("own mark must not spoil a line, got %d", got)
	}
}
