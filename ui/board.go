// Package ui specifies custom controls for tview to play Tic-Tac-Toe in the terminal.
package ui

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtoe/config"
	"termtoe/engine"
	"termtoe/rules"
	"termtoe/types"
)

const (
	cellWidth  = 5
	cellHeight = 3
	labelWidth = 3 // row numbers left of the grid

	gridWidth  = types.BoardSize*(cellWidth+1) - 1
	gridHeight = types.BoardSize*(cellHeight+1) - 1

	// Grid, column labels, a blank row and the restart button.
	boardWidth  = labelWidth + gridWidth + 1
	boardHeight = 1 + gridHeight + 3
)

// Style slots filled from the theme.
const (
	styleBoard = iota
	styleGrid
	styleX
	styleO
	styleLabel
	styleCursor
	styleWin
)

var (
	controlsPlaying = heredoc.Doc(`
		hjkl/↑↓←→ move   ⏎ play   1-9 cell
		r restart   f focus   q quit`)
	controlsFinished = heredoc.Doc(`
		r · restart
		q · quit`)
)

type BoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	selX       int
	selY       int
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	restart    *MenuButton
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		pos := types.BoardPos{X: 1, Y: 1}
		if g.BoardState.LastMove >= 0 {
			pos = types.PosFromIndex(g.BoardState.LastMove)
		}
		g.selX, g.selY = pos.X, pos.Y
		return
	}
	next := types.BoardPos{X: g.selX + h, Y: g.selY + v}
	if next.Index() < 0 {
		return
	}
	g.selX, g.selY = next.X, next.Y
}

func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewBoard(c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(),
		hint:       hint,
		selX:       -1,
		selY:       -1,
	}
	board.restart = NewMenuButton("Restart Game", board.Restart)
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) {
	g.eng = e

	e.OnMove(func(move types.Move, boardState *types.BoardState) {
		g.BoardState = boardState
		if boardState.Finished() {
			g.ResetSelection()
		}
		g.refreshHint()
	})

	e.OnRestart(func(boardState *types.BoardState) {
		g.BoardState = boardState
		g.ResetSelection()
		g.refreshHint()
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
}

// PlayMove forwards a click on the cell at index to the engine.
func (g *BoardUI) PlayMove(index int) {
	if g.eng == nil {
		return
	}
	g.eng.HandleCellClick(index)
}

// Restart forwards a restart request to the engine.
func (g *BoardUI) Restart() {
	if g.eng == nil {
		return
	}
	g.eng.Restart()
}

// HandleKey processes board keys. Keys it does not use are returned.
func (g *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		g.MoveSelection(0, -1)
	case tcell.KeyDown:
		g.MoveSelection(0, 1)
	case tcell.KeyLeft:
		g.MoveSelection(-1, 0)
	case tcell.KeyRight:
		g.MoveSelection(1, 0)
	case tcell.KeyEnter:
		g.playSelected()
	case tcell.KeyEscape:
		if g.SelectedTile() == nil {
			return event
		}
		g.ResetSelection()
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r >= '1' && r <= '9':
			g.PlayMove(int(r - '1'))
		case r == 'h':
			g.MoveSelection(-1, 0)
		case r == 'j':
			g.MoveSelection(0, 1)
		case r == 'k':
			g.MoveSelection(0, -1)
		case r == 'l':
			g.MoveSelection(1, 0)
		case r == ' ':
			g.playSelected()
		case r == 'r':
			g.restart.Press()
		case r == 'q':
			if g.SelectedTile() == nil {
				return event
			}
			g.ResetSelection()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// HandleMouse turns left clicks on cells and on the restart button into
// engine calls. It is installed as the box's mouse capture.
func (g *BoardUI) HandleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	px, py := event.Position()
	if !g.Box.InRect(px, py) {
		return action, event
	}
	if g.restart.Hit(px, py) {
		g.restart.Press()
		return action, nil
	}
	ox, oy := g.origin()
	index := cellAt(ox, oy, px, py)
	if index < 0 {
		return action, event
	}
	g.PlayMove(index)
	return action, nil
}

func (g *BoardUI) playSelected() {
	selTile := g.SelectedTile()
	if selTile == nil {
		return
	}
	g.PlayMove(selTile.Index())
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		styleBoard:  tcell.PaletteColor(c.Theme.Colors.BoardColor),
		styleGrid:   tcell.PaletteColor(c.Theme.Colors.GridColor),
		styleX:      tcell.PaletteColor(c.Theme.Colors.XColor),
		styleO:      tcell.PaletteColor(c.Theme.Colors.OColor),
		styleLabel:  tcell.PaletteColor(c.Theme.Colors.LabelColor),
		styleCursor: tcell.PaletteColor(c.Theme.Colors.CursorColorBG),
		styleWin:    tcell.PaletteColor(c.Theme.Colors.WinColorBG),
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	status := rules.Status(g.BoardState)
	if g.focusMode {
		g.hint.SetText(fmt.Sprintf("  %s   f to toggle", status))
		return
	}

	var statusLine, controls string
	if g.BoardState.Finished() {
		statusLine = fmt.Sprintf("  ───── Game Complete ─────  %s\n", status)
		controls = controlsFinished
	} else {
		statusLine = fmt.Sprintf("  %s\n", status)
		controls = controlsPlaying
	}
	g.hint.SetText(statusLine + indent(controls))
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.BoardState.Finished()
}

// origin returns the screen position of the top-left grid cell.
func (g *BoardUI) origin() (int, int) {
	x, y, _, _ := g.Box.GetRect()
	return x + labelWidth, y + 1
}

// cellAt maps a screen position to a board index given the grid origin.
// Grid lines and positions off the grid give -1.
func cellAt(ox, oy, px, py int) int {
	dx, dy := px-ox, py-oy
	if dx < 0 || dy < 0 {
		return -1
	}
	if dx%(cellWidth+1) == cellWidth || dy%(cellHeight+1) == cellHeight {
		return -1
	}
	return types.BoardPos{X: dx / (cellWidth + 1), Y: dy / (cellHeight + 1)}.Index()
}

func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if g.BoardState == nil {
		return x, y, width, height
	}
	ox, oy := g.origin()
	state := g.BoardState
	theme := g.cfg.Theme

	for index, mark := range state.Board {
		pos := types.PosFromIndex(index)
		left := ox + pos.X*(cellWidth+1)
		top := oy + pos.Y*(cellHeight+1)

		bg := g.styles[styleBoard]
		selected := pos.X == g.selX && pos.Y == g.selY
		if theme.HighlightWinningLine && state.Winner != nil && state.Winner.Line.Contains(index) {
			bg = g.styles[styleWin]
		}
		if selected && theme.DrawCursorBackground {
			bg = g.styles[styleCursor]
		}

		var drawRune rune
		fg := g.styles[styleLabel]
		switch mark {
		case types.X:
			drawRune = config.Symbol(theme.Symbols.X)
			fg = g.styles[styleX]
		case types.O:
			drawRune = config.Symbol(theme.Symbols.O)
			fg = g.styles[styleO]
		default:
			drawRune = config.Symbol(theme.Symbols.Empty)
		}
		style := tcell.StyleDefault.Background(bg).Foreground(fg)
		drawCell(screen, style, drawRune, left, top)
		if selected && !theme.DrawCursorBackground {
			screen.SetContent(left+cellWidth/2-1, top+cellHeight/2, '[', nil, style)
			screen.SetContent(left+cellWidth/2+1, top+cellHeight/2, ']', nil, style)
		}
	}

	drawGridLines(screen, tcell.StyleDefault.Background(g.styles[styleBoard]).Foreground(g.styles[styleGrid]), ox, oy)
	drawCoordinates(screen, x, ox, oy, g)

	g.restart.SetFocused(state.Finished())
	g.restart.Draw(screen, ox, oy+gridHeight+2)

	return x, y, width, height
}

// drawCell fills one cell and centres the rune in it.
func drawCell(s tcell.Screen, c tcell.Style, r rune, left, top int) {
	for row := 0; row < cellHeight; row++ {
		for col := 0; col < cellWidth; col++ {
			s.SetContent(left+col, top+row, ' ', nil, c)
		}
	}
	s.SetContent(left+cellWidth/2, top+cellHeight/2, r, nil, c)
}

// drawGridLines draws the separators between cells with box-drawing characters.
func drawGridLines(s tcell.Screen, c tcell.Style, ox, oy int) {
	for i := 1; i < types.BoardSize; i++ {
		lineX := ox + i*(cellWidth+1) - 1
		for row := 0; row < gridHeight; row++ {
			s.SetContent(lineX, oy+row, '│', nil, c)
		}
		lineY := oy + i*(cellHeight+1) - 1
		for col := 0; col < gridWidth; col++ {
			s.SetContent(ox+col, lineY, '─', nil, c)
		}
	}
	for i := 1; i < types.BoardSize; i++ {
		for j := 1; j < types.BoardSize; j++ {
			s.SetContent(ox+i*(cellWidth+1)-1, oy+j*(cellHeight+1)-1, '┼', nil, c)
		}
	}
}

func drawCoordinates(s tcell.Screen, x, ox, oy int, ui *BoardUI) {
	hCoord := 'A'
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = 'Ａ'
	}

	style := tcell.StyleDefault.Foreground(ui.styles[styleLabel])
	highlight := style.Background(ui.styles[styleCursor])

	for ix := 0; ix < types.BoardSize; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		}
		s.SetContent(ox+ix*(cellWidth+1)+cellWidth/2, oy+gridHeight, hCoord+rune(ix), nil, _style)
	}

	for iy := 0; iy < types.BoardSize; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		}
		// Row 1 is the bottom row.
		s.SetContent(x+1, oy+iy*(cellHeight+1)+cellHeight/2, rune('0'+types.BoardSize-iy), nil, _style)
	}
}

func indent(text string) string {
	out := "  "
	for _, r := range text {
		out += string(r)
		if r == '\n' {
			out += "  "
		}
	}
	return out
}
