package main

import "sync"

type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) ApplyHumanMove(move Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if gc.game.State().Status != StatusRunning {
		return false, "game not running"
	}
	if !gc.game.SubmitHumanMove(move) {
		return false, "not human turn"
	}
	if !gc.game.Tick() {
		return false, gc.game.State().LastMessage
	}
	return true, ""
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Scores() Scores {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Scores()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) CurrentTurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	history := gc.game.History()
	if history.Size() == 0 {
		return HistoryEntry{}, false
	}
	entries := history.All()
	return entries[len(entries)-1], true
}

func (gc *GameController) SetCursor(cursor Move) bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.SetCursor(cursor)
}

func (gc *GameController) Reorient(axis Axis) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reorient(axis)
}

func (gc *GameController) StartRound() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.ResetRound()
}

func (gc *GameController) UpdateSettings(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.ApplySettings(settings)
}
