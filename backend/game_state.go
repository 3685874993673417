package main

type PlayerColor int

type GameStatus int

const (
	PlayerCross PlayerColor = iota
	PlayerNought
)

const (
	StatusRunning GameStatus = iota
	StatusCrossWon
	StatusNoughtWon
	StatusDraw
)

type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Status      GameStatus
	Cursor      Move
	HasLastMove bool
	LastMove    Move
	WinningLine []int
	LastMessage string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board.Reset()
	if settings.CrossStarts {
		s.ToMove = PlayerCross
	} else {
		s.ToMove = PlayerNought
	}
	s.Status = StatusRunning
	s.Cursor = Move{}
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1, Z: -1}
	s.WinningLine = nil
	s.LastMessage = ""
}

func (s GameState) Clone() GameState {
	clone := s
	clone.WinningLine = append([]int(nil), s.WinningLine...)
	return clone
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerCross {
		return PlayerNought
	}
	return PlayerCross
}
