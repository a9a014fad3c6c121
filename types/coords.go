package types

import (
	"errors"
	"fmt"
	"strings"
)

// Cell notation:
// - Columns: A-C (left to right)
// - Rows: 1-3 (from bottom of board)
// - Example: A3 is the top-left cell (index 0), C1 the bottom-right (index 8)

var ErrInvalidNotation = errors.New("invalid cell notation")

// IndexToNotation converts a board index to cell notation.
func IndexToNotation(index int) string {
	if index < 0 || index >= BoardCells {
		return "?"
	}
	pos := PosFromIndex(index)
	return fmt.Sprintf("%c%d", 'A'+rune(pos.X), BoardSize-pos.Y)
}

// NotationToIndex converts cell notation such as "b2" to a board index.
func NotationToIndex(s string) (int, error) {
	v := strings.TrimSpace(strings.ToUpper(s))
	if len(v) != 2 {
		return -1, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	x := int(v[0] - 'A')
	row := int(v[1] - '0')
	if v[0] < 'A' || x >= BoardSize || v[1] < '1' || row > BoardSize {
		return -1, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return BoardPos{X: x, Y: BoardSize - row}.Index(), nil
}
