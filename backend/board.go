package main

import "fmt"

type Cell int

const (
	CellEmpty Cell = iota
	CellCross
	CellNought
)

const (
	boardDim  = 4
	cellCount = boardDim * boardDim * boardDim
)

// Board is the 4x4x4 grid, stored flat. cellIndex/cellCoords define
// the layout: z is the layer, y the row, x the column.
type Board struct {
	cells [cellCount]Cell
}

func NewBoard() Board {
	return Board{}
}

func (b *Board) Reset() {
	b.cells = [cellCount]Cell{}
}

func (b Board) At(x, y, z int) Cell {
	return b.cells[cellIndex(x, y, z)]
}

func (b *Board) Set(x, y, z int, value Cell) {
	b.cells[cellIndex(x, y, z)] = value
}

func (b Board) AtIndex(index int) Cell {
	if index < 0 || index >= cellCount {
		panic(fmt.Sprintf("board: index %d out of range", index))
	}
	return b.cells[index]
}

func (b *Board) SetIndex(index int, value Cell) {
	if index < 0 || index >= cellCount {
		panic(fmt.Sprintf("board: index %d out of range", index))
	}
	b.cells[index] = value
}

func (b Board) InBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < boardDim && y < boardDim && z < boardDim
}

func (b Board) IsEmpty(x, y, z int) bool {
	return b.InBounds(x, y, z) && b.At(x, y, z) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) Clone() Board {
	return b
}

// cellIndex maps a lattice coordinate to its flat index. Out-of-range
// coordinates are a programming error: a silently wrapped index would
// corrupt win detection, so fail fast.
func cellIndex(x, y, z int) int {
	if x < 0 || y < 0 || z < 0 || x >= boardDim || y >= boardDim || z >= boardDim {
		panic(fmt.Sprintf("board: coordinate (%d,%d,%d) out of range", x, y, z))
	}
	return 16*z + 4*y + x
}

func cellCoords(index int) (int, int, int) {
	if index < 0 || index >= cellCount {
		panic(fmt.Sprintf("board: index %d out of range", index))
	}
	return index % 4, (index / 4) % 4, index / 16
}

func (c Cell) String() string {
	switch c {
	case CellCross:
		return "Cross"
	case CellNought:
		return "Nought"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerCross {
		return CellCross
	}
	return CellNought
}
