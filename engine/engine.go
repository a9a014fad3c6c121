// Package engine defines the interface for game engines.
package engine

import (
	"errors"

	"termtoe/types"
)

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
)

// GameEngine owns the state of a game and applies moves to it.
type GameEngine interface {
	// GetBoardState returns a snapshot of the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays the mark whose turn it is at the given index.
	// Returns an error if the move is illegal; the state is then unchanged.
	PlayMove(index int) error

	// HandleCellClick plays a move and silently ignores illegal ones.
	HandleCellClick(index int)

	// Restart resets the board to its initial state.
	Restart()

	// OnMove registers a callback for when a move is accepted.
	OnMove(func(move types.Move, boardState *types.BoardState))

	// OnRestart registers a callback for when the board is reset.
	OnRestart(func(boardState *types.BoardState))
}
