package main

import (
	"math"
	"math/rand"
	"time"
)

// AIPlayer picks moves through a tiered policy: take a win, block a
// loss, create or block a fork, then fall back to a randomized
// strategic pick, a bounded minimax once the board thins out, and a
// line-weighted random move. The early tiers keep it tactically
// sound; the randomized ones keep it beatable.
type AIPlayer struct {
	rng *rand.Rand
}

func NewAIPlayer() *AIPlayer {
	seed := GetConfig().AiSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewAIPlayerSeeded(seed)
}

func NewAIPlayerSeeded(seed int64) *AIPlayer {
	return &AIPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState, rules Rules) Move {
	config := GetConfig()
	board := state.Board.Clone()
	mine := CellFromPlayer(state.ToMove)
	theirs := CellFromPlayer(otherPlayer(state.ToMove))

	empties := emptyIndices(board)
	if len(empties) == 0 {
		// CheckOutcome reports Draw before this can happen.
		panic("ai: no legal move on a running board")
	}

	if index, ok := a.winningIndex(rules, &board, mine, empties); ok {
		return tieredMove(index, "win")
	}
	if index, ok := a.winningIndex(rules, &board, theirs, empties); ok {
		return tieredMove(index, "block")
	}
	if config.AiEnableForkChecks {
		if index, ok := a.forkIndex(rules, &board, mine, empties); ok {
			return tieredMove(index, "fork")
		}
		if index, ok := a.forkIndex(rules, &board, theirs, empties); ok {
			return tieredMove(index, "fork-block")
		}
	}
	if index, ok := a.strategicIndex(board, mine, empties, config.AiStrategicMinLines); ok {
		return tieredMove(index, "strategic")
	}
	if len(empties) <= config.AiSearchEmptyLimit {
		index := a.searchBestIndex(&board, rules, state.ToMove, empties, config.AiSearchDepth)
		return tieredMove(index, "search")
	}
	return tieredMove(a.weightedIndex(board, mine, empties), "weighted")
}

func tieredMove(index int, tier string) Move {
	move := MoveFromIndex(index)
	move.Tier = tier
	return move
}

func emptyIndices(board Board) []int {
	empties := make([]int, 0, cellCount)
	for index := 0; index < cellCount; index++ {
		if board.AtIndex(index) == CellEmpty {
			empties = append(empties, index)
		}
	}
	return empties
}

func (a *AIPlayer) winningIndex(rules Rules, board *Board, mark Cell, empties []int) (int, bool) {
	for _, index := range empties {
		if rules.WouldWin(board, index, mark) {
			return index, true
		}
	}
	return -1, false
}

// forkIndex finds the first empty cell where placing mark turns two or
// more other empty cells into immediate wins for that mark.
func (a *AIPlayer) forkIndex(rules Rules, board *Board, mark Cell, empties []int) (int, bool) {
	for _, index := range empties {
		board.SetIndex(index, mark)
		threats := 0
		for _, other := range empties {
			if other == index {
				continue
			}
			if rules.WouldWin(board, other, mark) {
				threats++
				if threats >= 2 {
					break
				}
			}
		}
		board.SetIndex(index, CellEmpty)
		if threats >= 2 {
			return index, true
		}
	}
	return -1, false
}

// strategicIndex picks uniformly among empty cells lying on at least
// minLines lines the AI can still complete.
func (a *AIPlayer) strategicIndex(board Board, mark Cell, empties []int, minLines int) (int, bool) {
	candidates := make([]int, 0, len(empties))
	for _, index := range empties {
		if openLinesThrough(board, index, mark) >= minLines {
			candidates = append(candidates, index)
		}
	}
	if len(candidates) == 0 {
		return -1, false
	}
	return candidates[a.rng.Intn(len(candidates))], true
}

// weightedIndex samples an empty cell proportionally to how many open
// lines pass through it, falling back to uniform when every line is
// already spoiled.
func (a *AIPlayer) weightedIndex(board Board, mark Cell, empties []int) int {
	weights := make([]int, len(empties))
	total := 0
	for i, index := range empties {
		weights[i] = openLinesThrough(board, index, mark)
		total += weights[i]
	}
	if total == 0 {
		return empties[a.rng.Intn(len(empties))]
	}
	pick := a.rng.Intn(total)
	for i, weight := range weights {
		pick -= weight
		if pick < 0 {
			return empties[i]
		}
	}
	return empties[len(empties)-1]
}

// searchBestIndex runs depth-limited minimax from each candidate move,
// maximizing for the AI. Ties go to the first candidate in scan order.
func (a *AIPlayer) searchBestIndex(board *Board, rules Rules, aiSide PlayerColor, empties []int, maxDepth int) int {
	mine := CellFromPlayer(aiSide)
	bestIndex := -1
	bestScore := math.MinInt
	for _, index := range empties {
		board.SetIndex(index, mine)
		score := a.minimax(board, rules, aiSide, otherPlayer(aiSide), 1, maxDepth)
		board.SetIndex(index, CellEmpty)
		if score > bestScore {
			bestScore = score
			bestIndex = index
		}
	}
	return bestIndex
}

// minimax evaluates terminals as 10-depth for an AI win and depth-10
// for a loss, so nearer wins score higher. Hitting the depth cap
// without a terminal counts as neutral.
func (a *AIPlayer) minimax(board *Board, rules Rules, aiSide, toMove PlayerColor, depth, maxDepth int) int {
	status, _ := rules.CheckOutcome(*board)
	switch status {
	case statusForWinner(aiSide):
		return 10 - depth
	case statusForWinner(otherPlayer(aiSide)):
		return depth - 10
	case StatusDraw:
		return 0
	}
	if depth >= maxDepth {
		return 0
	}
	mark := CellFromPlayer(toMove)
	maximizing := toMove == aiSide
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for index := 0; index < cellCount; index++ {
		if board.AtIndex(index) != CellEmpty {
			continue
		}
		board.SetIndex(index, mark)
		score := a.minimax(board, rules, aiSide, otherPlayer(toMove), depth+1, maxDepth)
		board.SetIndex(index, CellEmpty)
		if maximizing {
			if score > best {
				best = score
			}
		} else if score < best {
			best = score
		}
	}
	return best
}

func statusForWinner(player PlayerColor) GameStatus {
	if player == PlayerCross {
		return StatusCrossWon
	}
	return StatusNoughtWon
}
