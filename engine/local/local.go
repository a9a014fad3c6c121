// Package local implements a two-player same-device game engine.
package local

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"termtoe/engine"
	"termtoe/rules"
	"termtoe/types"
)

// LocalEngine implements the GameEngine interface for two players sharing
// one board. It is driven from a single event loop and does no locking.
type LocalEngine struct {
	state *types.BoardState
	log   *logrus.Entry

	moveCallback    func(move types.Move, boardState *types.BoardState)
	restartCallback func(boardState *types.BoardState)
}

var _ engine.GameEngine = (*LocalEngine)(nil)

// NewLocalEngine creates an engine with an empty board and X to move.
// A nil logger uses the standard logrus logger.
func NewLocalEngine(log logrus.FieldLogger) *LocalEngine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LocalEngine{
		state: types.NewBoardState(),
		log:   log.WithField("component", "engine"),
	}
}

// GetBoardState returns a copy of the current board state.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	return e.state.Clone()
}

// PlayMove places the current turn's mark at index.
func (e *LocalEngine) PlayMove(index int) error {
	if index < 0 || index >= types.BoardCells {
		return fmt.Errorf("%w: %d", engine.ErrInvalidCell, index)
	}
	if e.state.Winner != nil {
		return engine.ErrGameFinished
	}
	if e.state.Board[index] != types.Empty {
		return fmt.Errorf("%w: %s", engine.ErrCellOccupied, types.IndexToNotation(index))
	}

	mark := e.state.Turn
	e.state.Board[index] = mark
	e.state.MoveNumber++
	e.state.LastMove = index
	move := types.Move{Number: e.state.MoveNumber, Index: index, Mark: mark}
	e.state.Moves = append(e.state.Moves, move)

	log := e.log.WithFields(logrus.Fields{
		"move": move.Number,
		"mark": mark.String(),
		"cell": types.IndexToNotation(index),
	})
	log.Debug("move played")

	if winner := rules.Evaluate(e.state.Board); winner != nil {
		// Turn stays with the winner; the board is frozen until restart.
		e.state.Winner = winner
		log.WithField("line", winner.Line).Info("game won")
	} else {
		e.state.Turn = mark.Other()
		if e.state.Board.Full() {
			log.Info("game drawn")
		}
	}

	if e.moveCallback != nil {
		e.moveCallback(move, e.state.Clone())
	}
	return nil
}

// HandleCellClick plays a move at index. Illegal moves have no effect.
func (e *LocalEngine) HandleCellClick(index int) {
	if err := e.PlayMove(index); err != nil {
		e.log.WithError(err).Trace("click ignored")
	}
}

// Restart resets the board, gives the turn to X and clears the winner.
func (e *LocalEngine) Restart() {
	e.state = types.NewBoardState()
	e.log.Debug("game restarted")
	if e.restartCallback != nil {
		e.restartCallback(e.state.Clone())
	}
}

// Replay plays a sequence of cell notations in order, stopping at the first
// one that is not a legal move.
func (e *LocalEngine) Replay(moves []string) error {
	for i, m := range moves {
		index, err := types.NotationToIndex(m)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := e.PlayMove(index); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return nil
}

// OnMove registers a callback for accepted moves.
func (e *LocalEngine) OnMove(cb func(move types.Move, boardState *types.BoardState)) {
	e.moveCallback = cb
}

// OnRestart registers a callback for restarts.
func (e *LocalEngine) OnRestart(cb func(boardState *types.BoardState)) {
	e.restartCallback = cb
}
