package main

import "testing"

func humanVsHumanSettings() GameSettings {
	settings := DefaultGameSettings()
	settings.CrossType = PlayerHuman
	settings.NoughtType = PlayerHuman
	return settings
}

func TestTryApplyMoveRejectsWithoutChange(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	if applied, _ := g.TryApplyMove(NewMove(0, 0, 4)); applied {
		t.Fatalf("out-of-range move applied")
	}
	if g.state.Board.CountEmpty() != cellCount {
		t.Fatalf("rejected move left a mark")
	}
	if g.state.ToMove != PlayerCross {
		t.Fatalf("rejected move flipped the turn")
	}

	if applied, _ := g.TryApplyMove(NewMove(1, 1, 1)); !applied {
		t.Fatalf("legal move rejected")
	}
	if applied, reason := g.TryApplyMove(NewMove(1, 1, 1)); applied || reason == "" {
		t.Fatalf("occupied move applied")
	}
	if g.state.ToMove != PlayerNought {
		t.Fatalf("occupied rejection changed the turn")
	}
	if g.history.Size() != 1 {
		t.Fatalf("history has %d entries, want 1", g.history.Size())
	}
}

func TestTryApplyMoveFlipsTurn(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	if g.state.ToMove != PlayerCross {
		t.Fatalf("cross moves first")
	}
	g.TryApplyMove(NewMove(0, 0, 0))
	if g.state.ToMove != PlayerNought {
		t.Fatalf("turn did not pass to nought")
	}
	g.TryApplyMove(NewMove(1, 1, 1))
	if g.state.ToMove != PlayerCross {
		t.Fatalf("turn did not pass back to cross")
	}
}

func TestCrossWinsOnXRow(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	crossMoves := []Move{NewMove(0, 0, 0), NewMove(1, 0, 0), NewMove(2, 0, 0), NewMove(3, 0, 0)}
	noughtMoves := []Move{NewMove(0, 1, 1), NewMove(1, 1, 1), NewMove(2, 1, 1)}
	for i := 0; i < 3; i++ {
		if applied, reason := g.TryApplyMove(crossMoves[i]); !applied {
			t.Fatalf("cross move %d rejected: %s", i, reason)
		}
		if applied, reason := g.TryApplyMove(noughtMoves[i]); !applied {
			t.Fatalf("nought move %d rejected: %s", i, reason)
		}
	}
	if applied, reason := g.TryApplyMove(crossMoves[3]); !applied {
		t.Fatalf("winning move rejected: %s", reason)
	}
	if g.state.Status != StatusCrossWon {
		t.Fatalf("status = %v, want cross win", g.state.Status)
	}
	want := []int{0, 1, 2, 3}
	if len(g.state.WinningLine) != 4 {
		t.Fatalf("winning line %v, want %v", g.state.WinningLine, want)
	}
	for i := range want {
		if g.state.WinningLine[i] != want[i] {
			t.Fatalf("winning line %v, want %v", g.state.WinningLine, want)
		}
	}
	if g.scores.CrossWins != 1 || g.scores.NoughtWins != 0 || g.scores.Draws != 0 {
		t.Fatalf("scores = %+v, want exactly one cross win", g.scores)
	}
	if g.state.ToMove != PlayerCross {
		t.Fatalf("terminal move must not flip the turn")
	}
	if applied, _ := g.TryApplyMove(NewMove(3, 3, 3)); applied {
		t.Fatalf("move applied after game over")
	}
	if g.scores.CrossWins != 1 {
		t.Fatalf("counter incremented more than once")
	}
}

func TestDrawIncrementsDrawCounter(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	g.state.Board = drawBoardFixture()
	// Reopen one cross cell and replay it as the final move.
	last := cellIndex(1, 0, 0)
	g.state.Board.SetIndex(last, CellEmpty)
	g.state.ToMove = PlayerCross
	if applied, reason := g.TryApplyMove(MoveFromIndex(last)); !applied {
		t.Fatalf("final move rejected: %s", reason)
	}
	if g.state.Status != StatusDraw {
		t.Fatalf("status = %v, want draw", g.state.Status)
	}
	if len(g.state.WinningLine) != 0 {
		t.Fatalf("draw highlighted cells %v", g.state.WinningLine)
	}
	if g.scores.Draws != 1 {
		t.Fatalf("scores = %+v, want one draw", g.scores)
	}
}

func TestResetRoundPreservesScores(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	g.scores = Scores{CrossWins: 3, NoughtWins: 2, Draws: 1, GamesPlayed: 6}
	g.TryApplyMove(NewMove(0, 0, 0))
	g.SetCursor(NewMove(2, 2, 2))

	g.ResetRound()
	if g.state.Board.CountEmpty() != cellCount {
		t.Fatalf("board not cleared")
	}
	if g.state.Status != StatusRunning {
		t.Fatalf("status = %v, want running", g.state.Status)
	}
	if g.state.WinningLine != nil {
		t.Fatalf("highlight survived the reset")
	}
	if !g.state.Cursor.Equals(NewMove(0, 0, 0)) {
		t.Fatalf("cursor not reset, got %+v", g.state.Cursor)
	}
	if g.history.Size() != 0 {
		t.Fatalf("history survived the reset")
	}
	want := Scores{CrossWins: 3, NoughtWins: 2, Draws: 1, GamesPlayed: 7}
	if g.scores != want {
		t.Fatalf("scores = %+v, want %+v", g.scores, want)
	}
}

func TestSetCursor(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	if g.SetCursor(NewMove(0, 0, 4)) {
		t.Fatalf("out-of-range cursor accepted")
	}
	if !g.SetCursor(NewMove(3, 1, 2)) {
		t.Fatalf("valid cursor rejected")
	}
	if !g.state.Cursor.Equals(NewMove(3, 1, 2)) {
		t.Fatalf("cursor = %+v", g.state.Cursor)
	}
}
