package local

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtoe/engine"
	"termtoe/rules"
	"termtoe/types"
)

func newTestEngine(t *testing.T) (*LocalEngine, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	return NewLocalEngine(logger), hook
}

func play(e *LocalEngine, cells ...int) {
	for _, c := range cells {
		e.HandleCellClick(c)
	}
}

func TestHandleCellClick(t *testing.T) {
	t.Run("Marks an empty cell and flips the turn", func(t *testing.T) {
		for i := 0; i < types.BoardCells; i++ {
			// Given: a fresh game
			e, _ := newTestEngine(t)

			// When: X clicks cell i
			e.HandleCellClick(i)

			// Then: only cell i changed and O is to move
			state := e.GetBoardState()
			var want types.Board
			want[i] = types.X
			assert.Equal(t, want, state.Board)
			assert.Equal(t, types.O, state.Turn)
			assert.Nil(t, state.Winner)
			assert.Equal(t, i, state.LastMove)
			assert.Equal(t, 1, state.MoveNumber)
		}
	})

	t.Run("Ignores an occupied cell", func(t *testing.T) {
		// Given: a game where X holds the centre
		e, hook := newTestEngine(t)
		e.HandleCellClick(4)
		before := e.GetBoardState()

		// When: O clicks the centre
		e.HandleCellClick(4)

		// Then: nothing changed
		assert.Equal(t, before, e.GetBoardState())
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.TraceLevel, hook.LastEntry().Level)
	})

	t.Run("Ignores out of range indices", func(t *testing.T) {
		e, _ := newTestEngine(t)
		before := e.GetBoardState()

		e.HandleCellClick(-1)
		e.HandleCellClick(9)

		assert.Equal(t, before, e.GetBoardState())
	})

	t.Run("Ignores every cell once a winner is set", func(t *testing.T) {
		// Given: X has won on the main diagonal
		e, _ := newTestEngine(t)
		play(e, 0, 1, 4, 2, 8)
		before := e.GetBoardState()
		require.NotNil(t, before.Winner)

		// When: clicking each cell
		for i := 0; i < types.BoardCells; i++ {
			e.HandleCellClick(i)
		}

		// Then: nothing changed
		assert.Equal(t, before, e.GetBoardState())
	})
}

func TestPlayMove(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.ErrorIs(t, e.PlayMove(9), engine.ErrInvalidCell)
	require.NoError(t, e.PlayMove(0))
	assert.ErrorIs(t, e.PlayMove(0), engine.ErrCellOccupied)

	play(e, 3, 1, 4, 2)
	assert.ErrorIs(t, e.PlayMove(8), engine.ErrGameFinished)
}

func TestDiagonalWin(t *testing.T) {
	// Given: a fresh game
	e, hook := newTestEngine(t)

	// When: X@0, O@1, X@4, O@2, X@8
	play(e, 0, 1, 4, 2, 8)

	// Then: X wins on the main diagonal, turn stays with X
	state := e.GetBoardState()
	require.NotNil(t, state.Winner)
	assert.Equal(t, types.WinnerInfo{Mark: types.X, Line: types.Line{0, 4, 8}}, *state.Winner)
	assert.Equal(t, types.X, state.Turn)
	assert.Equal(t, "Winner: X", rules.Status(state))
	assert.Len(t, state.Moves, 5)

	var won bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "game won" {
			won = true
		}
	}
	assert.True(t, won)

	// And: a further click on cell 3 is a no-op
	e.HandleCellClick(3)
	assert.Equal(t, state, e.GetBoardState())
}

func TestDraw(t *testing.T) {
	e, _ := newTestEngine(t)

	play(e, 0, 1, 2, 4, 3, 5, 7, 6, 8)

	state := e.GetBoardState()
	assert.Nil(t, state.Winner)
	assert.True(t, state.Board.Full())
	assert.True(t, state.Drawn())
	assert.Equal(t, "Draw!", rules.Status(state))
}

func TestRestart(t *testing.T) {
	t.Run("Resets a finished game", func(t *testing.T) {
		// Given: a game X has won
		e, _ := newTestEngine(t)
		play(e, 0, 1, 4, 2, 8)

		// When: restarting
		e.Restart()

		// Then: the state equals a fresh game
		assert.Equal(t, types.NewBoardState(), e.GetBoardState())
	})

	t.Run("Is idempotent", func(t *testing.T) {
		e, _ := newTestEngine(t)
		play(e, 4, 0)

		e.Restart()
		once := e.GetBoardState()
		e.Restart()

		assert.Equal(t, once, e.GetBoardState())
		assert.Equal(t, types.X, once.Turn)
	})

	t.Run("Allows play after a restart", func(t *testing.T) {
		e, _ := newTestEngine(t)
		play(e, 0, 1, 4, 2, 8)
		e.Restart()

		e.HandleCellClick(3)

		assert.Equal(t, types.X, e.GetBoardState().Board[3])
	})
}

func TestCallbacks(t *testing.T) {
	e, _ := newTestEngine(t)

	var moves []types.Move
	var last *types.BoardState
	restarts := 0
	e.OnMove(func(move types.Move, state *types.BoardState) {
		moves = append(moves, move)
		last = state
	})
	e.OnRestart(func(state *types.BoardState) {
		restarts++
		last = state
	})

	play(e, 4, 4, 0)
	require.Len(t, moves, 2)
	assert.Equal(t, types.Move{Number: 1, Index: 4, Mark: types.X}, moves[0])
	assert.Equal(t, types.Move{Number: 2, Index: 0, Mark: types.O}, moves[1])
	assert.Equal(t, types.X, last.Turn)

	e.Restart()
	assert.Equal(t, 1, restarts)
	assert.Equal(t, types.NewBoardState(), last)
}

func TestReplay(t *testing.T) {
	t.Run("Plays every move in order", func(t *testing.T) {
		e, _ := newTestEngine(t)

		require.NoError(t, e.Replay([]string{"A3", "b3", "B2"}))

		state := e.GetBoardState()
		assert.Equal(t, types.X, state.Board[0])
		assert.Equal(t, types.O, state.Board[1])
		assert.Equal(t, types.X, state.Board[4])
		assert.Equal(t, types.O, state.Turn)
	})

	t.Run("Stops at a bad notation", func(t *testing.T) {
		e, _ := newTestEngine(t)

		err := e.Replay([]string{"A3", "Z9", "B2"})

		assert.ErrorIs(t, err, types.ErrInvalidNotation)
		assert.Equal(t, 1, e.GetBoardState().MoveNumber)
	})

	t.Run("Stops at an illegal move", func(t *testing.T) {
		e, _ := newTestEngine(t)

		err := e.Replay([]string{"A3", "A3"})

		assert.ErrorIs(t, err, engine.ErrCellOccupied)
		assert.Contains(t, err.Error(), "move 2")
	})
}
