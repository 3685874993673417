package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	CrossType   PlayerType `json:"-"`
	NoughtType  PlayerType `json:"-"`
	CrossStarts bool       `json:"cross_starts"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		CrossType:   PlayerHuman,
		NoughtType:  PlayerAI,
		CrossStarts: true,
	}
}
