package main

import "fmt"

// Axis selects which viewpoint rotation to apply. The three
// permutations are fixed coordinate relabelings; they are not a
// rigorous rotation group and are deliberately kept as-is.
type Axis int

const (
	AxisFirst Axis = iota + 1
	AxisSecond
	AxisThird
)

// permuteCoords applies the axis permutation to one coordinate triple:
//
//	AxisFirst:  (x,y,z) -> (z,y,x)
//	AxisSecond: (x,y,z) -> (x,z,y)
//	AxisThird:  (x,y,z) -> (z,x,y)
func permuteCoords(axis Axis, x, y, z int) (int, int, int) {
	switch axis {
	case AxisFirst:
		return z, y, x
	case AxisSecond:
		return x, z, y
	case AxisThird:
		return z, x, y
	default:
		panic(fmt.Sprintf("reorient: unknown axis %d", axis))
	}
}

func permuteMove(axis Axis, move Move) Move {
	x, y, z := permuteCoords(axis, move.X, move.Y, move.Z)
	return Move{X: x, Y: y, Z: z, Tier: move.Tier}
}

// Reorient relabels every coordinate-bearing field of the state:
// cells, cursor, last move, and the highlighted winning line. The new
// board is built into a scratch copy first; permuting in place would
// overwrite unread source cells.
func (s *GameState) Reorient(axis Axis) {
	var permuted Board
	for z := 0; z < boardDim; z++ {
		for y := 0; y < boardDim; y++ {
			for x := 0; x < boardDim; x++ {
				px, py, pz := permuteCoords(axis, x, y, z)
				permuted.Set(px, py, pz, s.Board.At(x, y, z))
			}
		}
	}
	s.Board = permuted
	s.Cursor = permuteMove(axis, s.Cursor)
	if s.HasLastMove {
		s.LastMove = permuteMove(axis, s.LastMove)
	}
	for i, index := range s.WinningLine {
		x, y, z := cellCoords(index)
		px, py, pz := permuteCoords(axis, x, y, z)
		s.WinningLine[i] = cellIndex(px, py, pz)
	}
}
