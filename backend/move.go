package main

type Move struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Z    int    `json:"z"`
	Tier string `json:"tier,omitempty"`
}

func NewMove(x, y, z int) Move {
	return Move{X: x, Y: y, Z: z}
}

func MoveFromIndex(index int) Move {
	x, y, z := cellCoords(index)
	return Move{X: x, Y: y, Z: z}
}

func (m Move) Index() int {
	return cellIndex(m.X, m.Y, m.Z)
}

func (m Move) IsValid() bool {
	return m.X >= 0 && m.Y >= 0 && m.Z >= 0 && m.X < boardDim && m.Y < boardDim && m.Z < boardDim
}

func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y && m.Z == other.Z
}
