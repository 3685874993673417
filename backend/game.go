package main

import "time"

type Scores struct {
	CrossWins   int `json:"cross_wins"`
	NoughtWins  int `json:"nought_wins"`
	Draws       int `json:"draws"`
	GamesPlayed int `json:"games_played"`
}

// Game owns one session: board state, move history, the two players,
// and the score counters. Counters persist across rounds; everything
// else is reset per round.
type Game struct {
	settings     GameSettings
	rules        Rules
	state        GameState
	history      MoveHistory
	scores       Scores
	crossPlayer  IPlayer
	noughtPlayer IPlayer
	turnStart    time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.settings = settings
	g.rules = NewRules()
	g.state.Reset(settings)
	g.createPlayers()
	g.turnStart = time.Now()
	return g
}

// ResetRound clears the board, cursor, status and highlight for a new
// round. Scores survive; the round counter advances.
func (g *Game) ResetRound() {
	g.state.Reset(g.settings)
	g.history.Clear()
	g.scores.GamesPlayed++
	g.turnStart = time.Now()
}

func (g *Game) ApplySettings(settings GameSettings) {
	g.settings = settings
	g.createPlayers()
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Scores() Scores {
	return g.scores
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove applies one move for the side to play. On rejection
// nothing changes; on success status, winning line, scores and the
// turn marker are all brought up to date before returning.
func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	ok, reason := g.rules.IsLegalDefault(g.state, move)
	if !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())

	g.state.Board.Set(move.X, move.Y, move.Z, CellFromPlayer(g.state.ToMove))
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.history.Push(HistoryEntry{Move: move, Player: g.state.ToMove, ElapsedMs: elapsedMs, IsAi: isAiMove})

	status, line := g.rules.CheckOutcome(g.state.Board)
	switch status {
	case StatusCrossWon:
		g.state.Status = status
		g.state.WinningLine = line
		g.scores.CrossWins++
	case StatusNoughtWon:
		g.state.Status = status
		g.state.WinningLine = line
		g.scores.NoughtWins++
	case StatusDraw:
		g.state.Status = status
		g.scores.Draws++
	default:
		g.state.ToMove = otherPlayer(g.state.ToMove)
		g.turnStart = time.Now()
	}
	return true, ""
}

// Tick advances the game by at most one move: a pending human move is
// applied immediately, an AI move once its think delay has elapsed.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			applied, _ := g.TryApplyMove(human.TakePendingMove())
			return applied
		}
		return false
	}
	delay := time.Duration(GetConfig().AiMoveDelayMs) * time.Millisecond
	if time.Since(g.turnStart) < delay {
		return false
	}
	move := player.ChooseMove(g.state.Clone(), g.rules)
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) SetCursor(cursor Move) bool {
	if !cursor.IsValid() {
		return false
	}
	g.state.Cursor = cursor
	return true
}

// Reorient rotates the viewpoint. Occupancy, turn and status are
// untouched; only coordinates move.
func (g *Game) Reorient(axis Axis) {
	g.state.Reorient(axis)
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerCross {
		return g.crossPlayer
	}
	return g.noughtPlayer
}

func (g *Game) createPlayers() {
	if g.settings.CrossType == PlayerHuman {
		g.crossPlayer = NewHumanPlayer()
	} else {
		g.crossPlayer = NewAIPlayer()
	}
	if g.settings.NoughtType == PlayerHuman {
		g.noughtPlayer = NewHumanPlayer()
	} else {
		g.noughtPlayer = NewAIPlayer()
	}
}
