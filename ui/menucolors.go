package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette for everything drawn around the board.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders and brackets
	Background  tcell.Color // Behind buttons and labels
	Hint        tcell.Color // Dim gray for hints
	ButtonFocus tcell.Color // Highlighted button
	ButtonText  tcell.Color // Highlighted button text
}{
	Border:      tcell.PaletteColor(60),
	Background:  tcell.ColorDefault,
	Hint:        tcell.PaletteColor(245),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}
