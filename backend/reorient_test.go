package main

import "testing"

func TestPermuteCoordsFormulas(t *testing.T) {
	cases := []struct {
		axis    Axis
		x, y, z int
	}{
		{AxisFirst, 3, 2, 1},
		{AxisSecond, 1, 3, 2},
		{AxisThird, 3, 1, 2},
	}
	for _, tc := range cases {
		x, y, z := permuteCoords(tc.axis, 1, 2, 3)
		if x != tc.x || y != tc.y || z != tc.z {
			t.Fatalf("axis %d: (1,2,3) -> (%d,%d,%d), want (%d,%d,%d)", tc.axis, x, y, z, tc.x, tc.y, tc.z)
		}
	}
}

func TestPermuteCoordsUnknownAxisPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown axis")
		}
	}()
	permuteCoords(Axis(9), 0, 0, 0)
}

func TestReorientMovesSingleMark(t *testing.T) {
	cases := []struct {
		axis    Axis
		x, y, z int
	}{
		{AxisFirst, 3, 2, 1},
		{AxisSecond, 1, 3, 2},
		{AxisThird, 3, 1, 2},
	}
	for _, tc := range cases {
		state := DefaultGameState(DefaultGameSettings())
		state.Board.Set(1, 2, 3, CellCross)
		state.Reorient(tc.axis)
		if got := state.Board.At(tc.x, tc.y, tc.z); got != CellCross {
			t.Fatalf("axis %d: mark not at (%d,%d,%d), found %v", tc.axis, tc.x, tc.y, tc.z, got)
		}
		if got := state.Board.CountEmpty(); got != cellCount-1 {
			t.Fatalf("axis %d: %d empty cells after reorient, want %d", tc.axis, got, cellCount-1)
		}
	}
}

func TestReorientPreservesOccupancy(t *testing.T) {
	for _, axis := range []Axis{AxisFirst, AxisSecond, AxisThird} {
		state := DefaultGameState(DefaultGameSettings())
		state.Board = drawBoardFixture()
		var before [3]int
		for index := 0; index < cellCount; index++ {
			before[state.Board.AtIndex(index)]++
		}
		state.Reorient(axis)
		var after [3]int
		for index := 0; index < cellCount; index++ {
			after[state.Board.AtIndex(index)]++
		}
		if before != after {
			t.Fatalf("axis %d: occupancy multiset changed: %v -> %v", axis, before, after)
		}
	}
}

func TestReorientRemapsCursorAndWinningLine(t *testing.T) {
	state := DefaultGameState(DefaultGameSettings())
	for i := 0; i < boardDim; i++ {
		state.Board.Set(i, 0, 0, CellCross)
	}
	state.Status = StatusCrossWon
	state.WinningLine = []int{0, 1, 2, 3}
	state.Cursor = NewMove(1, 2, 3)

	// AxisFirst maps (x,y,z) to (z,y,x): the x-row at the origin
	// becomes the z-column, indices 16*i.
	state.Reorient(AxisFirst)
	want := []int{0, 16, 32, 48}
	if len(state.WinningLine) != len(want) {
		t.Fatalf("winning line %v, want %v", state.WinningLine, want)
	}
	for i := range want {
		if state.WinningLine[i] != want[i] {
			t.Fatalf("winning line %v, want %v", state.WinningLine, want)
		}
	}
	if !state.Cursor.Equals(NewMove(3, 2, 1)) {
		t.Fatalf("cursor = %+v, want (3,2,1)", state.Cursor)
	}
	if state.Status != StatusCrossWon {
		t.Fatalf("reorient must not change status")
	}
	for _, index := range want {
		if state.Board.AtIndex(index) != CellCross {
			t.Fatalf("winning cells did not follow the marks")
		}
	}
}

func TestReorientKeepsTurn(t *testing.T) {
	state := DefaultGameState(DefaultGameSettings())
	state.ToMove = PlayerNought
	state.Reorient(AxisSecond)
	if state.ToMove != PlayerNought {
		t.Fatalf("reorient changed whose turn it is")
	}
}
