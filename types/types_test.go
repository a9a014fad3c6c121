package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardState(t *testing.T) {
	state := NewBoardState()

	assert.Equal(t, X, state.Turn)
	assert.Equal(t, Board{}, state.Board)
	assert.Nil(t, state.Winner)
	assert.Equal(t, -1, state.LastMove)
	assert.False(t, state.Finished())
}

func TestMarkOther(t *testing.T) {
	assert.Equal(t, O, X.Other())
	assert.Equal(t, X, O.Other())
	assert.Equal(t, Empty, Empty.Other())
}

func TestBoardState_Drawn(t *testing.T) {
	t.Run("Full board without winner is a draw", func(t *testing.T) {
		// Given: a full board and no winner
		state := &BoardState{Board: Board{X, O, X, X, O, O, O, X, X}}

		// Then: the game is drawn and finished
		assert.True(t, state.Drawn())
		assert.True(t, state.Finished())
	})

	t.Run("Full board with winner is not a draw", func(t *testing.T) {
		// Given: a full board where the last move completed a line
		state := &BoardState{
			Board:  Board{X, O, X, O, X, O, O, X, X},
			Winner: &WinnerInfo{Mark: X, Line: Line{0, 4, 8}},
		}

		// Then: the game is finished but not drawn
		assert.False(t, state.Drawn())
		assert.True(t, state.Finished())
	})
}

func TestBoardState_Clone(t *testing.T) {
	state := NewBoardState()
	state.Winner = &WinnerInfo{Mark: O, Line: Line{2, 4, 6}}
	state.Moves = []Move{{Number: 1, Index: 2, Mark: O}}

	c := state.Clone()
	c.Winner.Mark = X
	c.Moves[0].Index = 7
	c.Board[0] = X

	assert.Equal(t, O, state.Winner.Mark)
	assert.Equal(t, 2, state.Moves[0].Index)
	assert.Equal(t, Empty, state.Board[0])
}

func TestLinesCatalog(t *testing.T) {
	seen := map[Line]bool{}
	for _, l := range Lines {
		require.False(t, seen[l], "duplicate line %v", l)
		seen[l] = true
	}
	assert.Equal(t, Line{0, 1, 2}, Lines[0])
	assert.Equal(t, Line{2, 4, 6}, Lines[7])
	assert.True(t, Lines[6].Contains(4))
	assert.False(t, Lines[6].Contains(2))
}

func TestBoardPos(t *testing.T) {
	for i := 0; i < BoardCells; i++ {
		assert.Equal(t, i, PosFromIndex(i).Index())
	}
	assert.Equal(t, -1, BoardPos{X: 3, Y: 0}.Index())
	assert.Equal(t, -1, BoardPos{X: 0, Y: -1}.Index())
}

func TestNotation(t *testing.T) {
	assert.Equal(t, "A3", IndexToNotation(0))
	assert.Equal(t, "B2", IndexToNotation(4))
	assert.Equal(t, "C1", IndexToNotation(8))
	assert.Equal(t, "?", IndexToNotation(9))

	for i := 0; i < BoardCells; i++ {
		idx, err := NotationToIndex(IndexToNotation(i))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}

	idx, err := NotationToIndex(" c3 ")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	for _, bad := range []string{"", "D1", "A4", "A0", "AA", "B22", "@1"} {
		_, err := NotationToIndex(bad)
		assert.ErrorIs(t, err, ErrInvalidNotation, bad)
	}
}
