package main

type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

func (r Rules) IsLegal(state GameState, move Move, player PlayerColor) (bool, string) {
	if state.Status != StatusRunning {
		return false, "game over"
	}
	if !move.IsValid() {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.X, move.Y, move.Z) {
		return false, "occupied"
	}
	return true, ""
}

func (r Rules) IsLegalDefault(state GameState, move Move) (bool, string) {
	return r.IsLegal(state, move, state.ToMove)
}

// CheckOutcome scans the catalog in order and reports the first fully
// owned line. When several lines complete on the same move, catalog
// order decides which one is highlighted.
func (r Rules) CheckOutcome(board Board) (GameStatus, []int) {
	for _, line := range lineCatalog {
		first := board.AtIndex(line[0])
		if first == CellEmpty {
			continue
		}
		if board.AtIndex(line[1]) == first && board.AtIndex(line[2]) == first && board.AtIndex(line[3]) == first {
			return winnerFromCell(first), append([]int(nil), line[:]...)
		}
	}
	if r.IsDraw(board) {
		return StatusDraw, nil
	}
	return StatusRunning, nil
}

// WouldWin reports whether placing mark at index produces a win. The
// probe mutates the board only transiently.
func (r Rules) WouldWin(board *Board, index int, mark Cell) bool {
	board.SetIndex(index, mark)
	won := false
	for _, pos := range linesThroughCell[index] {
		line := lineCatalog[pos]
		if board.AtIndex(line[0]) == mark && board.AtIndex(line[1]) == mark &&
			board.AtIndex(line[2]) == mark && board.AtIndex(line[3]) == mark {
			won = true
			break
		}
	}
	board.SetIndex(index, CellEmpty)
	return won
}

func (r Rules) IsDraw(board Board) bool {
	return board.CountEmpty() == 0
}

func winnerFromCell(cell Cell) GameStatus {
	if cell == CellCross {
		return StatusCrossWon
	}
	return StatusNoughtWon
}
