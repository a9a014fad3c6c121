// Package rules evaluates boards and describes game status.
package rules

import (
	"fmt"

	"termtoe/types"
)

// Evaluate returns the first line in catalog order held entirely by one mark,
// or nil if there is none.
func Evaluate(board types.Board) *types.WinnerInfo {
	for _, line := range types.Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != types.Empty && a == b && b == c {
			return &types.WinnerInfo{Mark: a, Line: line}
		}
	}
	return nil
}

// IsDraw returns true if the board is full and there is no winner.
func IsDraw(board types.Board, winner *types.WinnerInfo) bool {
	return winner == nil && board.Full()
}

// FormatStatus returns the status line shown to the players.
func FormatStatus(winner *types.WinnerInfo, isDraw bool, turn types.Mark) string {
	if winner != nil {
		return fmt.Sprintf("Winner: %s", winner.Mark)
	}
	if isDraw {
		return "Draw!"
	}
	return fmt.Sprintf("Next turn: %s", turn)
}

// Status formats the status line for a snapshot.
func Status(state *types.BoardState) string {
	return FormatStatus(state.Winner, IsDraw(state.Board, state.Winner), state.Turn)
}
