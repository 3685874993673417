package main

import "fmt"

// Line is one straight 4-cell path through the lattice, stored as
// board indices. A line uniformly occupied by one mark is a win.
type Line [4]int

// lineCatalog holds all 76 winning lines: 48 axis-aligned, 24
// planar-diagonal, 4 space-diagonal. Built once at startup and never
// written afterwards.
var lineCatalog = buildLineCatalog()

// linesThroughCell maps each board index to the catalog positions of
// the lines passing through it.
var linesThroughCell = buildLinesThroughCell()

const totalLines = 76

func buildLineCatalog() []Line {
	lines := make([]Line, 0, totalLines)

	// Axis-aligned: fix two axes, vary the third.
	for a := 0; a < boardDim; a++ {
		for b := 0; b < boardDim; b++ {
			var lineX, lineY, lineZ Line
			for i := 0; i < boardDim; i++ {
				lineX[i] = cellIndex(i, a, b)
				lineY[i] = cellIndex(a, i, b)
				lineZ[i] = cellIndex(a, b, i)
			}
			lines = append(lines, lineX, lineY, lineZ)
		}
	}

	// Planar diagonals: per fixed layer of each plane pair, the main
	// diagonal and the anti-diagonal.
	for fixed := 0; fixed < boardDim; fixed++ {
		var xyMain, xyAnti, xzMain, xzAnti, yzMain, yzAnti Line
		for i := 0; i < boardDim; i++ {
			j := boardDim - 1 - i
			xyMain[i] = cellIndex(i, i, fixed)
			xyAnti[i] = cellIndex(i, j, fixed)
			xzMain[i] = cellIndex(i, fixed, i)
			xzAnti[i] = cellIndex(i, fixed, j)
			yzMain[i] = cellIndex(fixed, i, i)
			yzAnti[i] = cellIndex(fixed, i, j)
		}
		lines = append(lines, xyMain, xyAnti, xzMain, xzAnti, yzMain, yzAnti)
	}

	// Space diagonals: the four corner-to-corner paths, enumerated
	// explicitly.
	var d1, d2, d3, d4 Line
	for i := 0; i < boardDim; i++ {
		j := boardDim - 1 - i
		d1[i] = cellIndex(i, i, i)
		d2[i] = cellIndex(i, i, j)
		d3[i] = cellIndex(i, j, i)
		d4[i] = cellIndex(j, i, i)
	}
	lines = append(lines, d1, d2, d3, d4)

	validateCatalog(lines)
	return lines
}

// validateCatalog fails fast on a malformed catalog: a wrong line set
// would silently break win detection everywhere.
func validateCatalog(lines []Line) {
	if len(lines) != totalLines {
		panic(fmt.Sprintf("line catalog: expected %d lines, built %d", totalLines, len(lines)))
	}
	seen := make(map[Line]int, len(lines))
	for pos, line := range lines {
		for i := 0; i < 4; i++ {
			if line[i] < 0 || line[i] >= cellCount {
				panic(fmt.Sprintf("line catalog: line %d references index %d", pos, line[i]))
			}
			for j := i + 1; j < 4; j++ {
				if line[i] == line[j] {
					panic(fmt.Sprintf("line catalog: line %d is degenerate", pos))
				}
			}
		}
		if prev, ok := seen[line]; ok {
			panic(fmt.Sprintf("line catalog: lines %d and %d are identical", prev, pos))
		}
		seen[line] = pos
	}
}

func buildLinesThroughCell() [cellCount][]int {
	var through [cellCount][]int
	for pos, line := range lineCatalog {
		for _, index := range line {
			through[index] = append(through[index], pos)
		}
	}
	for index, lines := range through {
		if len(lines) == 0 {
			panic(fmt.Sprintf("line catalog: cell %d lies on no line", index))
		}
	}
	return through
}

// openLinesThrough counts the lines through index that the given mark
// can still complete, i.e. lines holding no opposing mark.
func openLinesThrough(board Board, index int, mark Cell) int {
	opponent := CellCross
	if mark == CellCross {
		opponent = CellNought
	}
	count := 0
	for _, pos := range linesThroughCell[index] {
		open := true
		for _, cellIdx := range lineCatalog[pos] {
			if board.AtIndex(cellIdx) == opponent {
				open = false
				break
			}
		}
		if open {
			count++
		}
	}
	return count
}
