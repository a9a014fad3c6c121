// Package types contains shared data structures for termtoe.
package types

// Mark is the content of a single cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return ""
}

// Other returns the opposing mark. Empty has no opponent.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// BoardCells is the number of cells on the board.
const BoardCells = 9

// BoardSize is the width and height of the board.
const BoardSize = 3

// Board is indexed row-major: row = index/3, column = index%3.
type Board [BoardCells]Mark

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Line is a row, column or diagonal given as three board indices.
type Line [3]int

// Contains returns true if index is one of the line's cells.
func (l Line) Contains(index int) bool {
	return l[0] == index || l[1] == index || l[2] == index
}

// Lines lists every winning line: rows, then columns, then diagonals.
// Evaluation order follows this order.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinnerInfo is the mark that completed a line together with that line.
type WinnerInfo struct {
	Mark Mark
	Line Line
}

// Move is a single accepted move of the current round.
type Move struct {
	Number int
	Index  int
	Mark   Mark
}

// BoardState is a snapshot of a game in progress.
type BoardState struct {
	MoveNumber int
	Turn       Mark
	Board      Board
	Winner     *WinnerInfo // nil until a line is completed
	LastMove   int         // -1 before the first move
	Moves      []Move
}

// NewBoardState creates an empty board with X to move.
func NewBoardState() *BoardState {
	return &BoardState{
		Turn:     X,
		LastMove: -1,
	}
}

// Drawn returns true if every cell is filled and nobody won.
func (b *BoardState) Drawn() bool {
	return b.Winner == nil && b.Board.Full()
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Winner != nil || b.Drawn()
}

// Clone returns a deep copy safe to hand out to observers.
func (b *BoardState) Clone() *BoardState {
	c := *b
	if b.Winner != nil {
		w := *b.Winner
		c.Winner = &w
	}
	c.Moves = append([]Move(nil), b.Moves...)
	return &c
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}

// Index returns the board index of the position, or -1 if it is off the board.
func (p BoardPos) Index() int {
	if p.X < 0 || p.X >= BoardSize || p.Y < 0 || p.Y >= BoardSize {
		return -1
	}
	return p.Y*BoardSize + p.X
}

// PosFromIndex converts a board index to a position.
func PosFromIndex(index int) BoardPos {
	return BoardPos{X: index % BoardSize, Y: index / BoardSize}
}
