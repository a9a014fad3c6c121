package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a one-line button drawn inside another primitive.
type MenuButton struct {
	label    string
	focused  bool
	onSelect func()

	x, y  int
	drawn bool
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		onSelect: onSelect,
	}
}

// SetFocused sets the highlight state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// Press triggers the button's action.
func (b *MenuButton) Press() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// Hit returns true if the screen position lies on the button as last drawn.
func (b *MenuButton) Hit(px, py int) bool {
	return b.drawn && py == b.y && px >= b.x && px < b.x+b.Width()
}

// Draw renders the button at the given position and returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	b.x, b.y, b.drawn = x, y, true
	width := b.Width()

	if b.focused {
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		col := x + 1
		for _, ch := range b.label {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}
		return width
	}

	dimStyle := tcell.StyleDefault.
		Foreground(MenuColors.Hint).
		Background(MenuColors.Background)
	bracketStyle := tcell.StyleDefault.
		Foreground(MenuColors.Border).
		Background(MenuColors.Background)

	screen.SetContent(x, y, '[', nil, bracketStyle)
	col := x + 1
	for _, ch := range b.label {
		screen.SetContent(col, y, ch, nil, dimStyle)
		col++
	}
	screen.SetContent(col, y, ']', nil, bracketStyle)
	return width
}

// Width returns the button width including padding or brackets.
func (b *MenuButton) Width() int {
	return len([]rune(b.label)) + 2
}
