package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"termtoe/config"
	"termtoe/engine"
)

// App is the terminal application: one page holding the board, the info
// panel and the status hint.
type App struct {
	app      *tview.Application
	rootPage *tview.Pages
	board    *BoardUI
	frame    *tview.Flex
	hint     *tview.TextView
	log      *logrus.Entry
}

// NewApp builds the application around an engine.
func NewApp(cfg *config.Config, eng engine.GameEngine, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &App{
		app:      tview.NewApplication(),
		rootPage: tview.NewPages(),
		log:      log.WithField("component", "ui"),
	}
	a.rootPage.SetBorder(true).SetTitle(" ▦ termtoe ")

	a.hint = tview.NewTextView()
	a.hint.SetBorderPadding(0, 0, 1, 1)

	a.board = NewBoard(cfg, a.hint)
	a.frame = CreateGameLayout(a.board, a.hint)
	a.board.ConnectEngine(eng)

	a.board.Box.SetInputCapture(a.handleKey)
	a.board.Box.SetMouseCapture(a.board.HandleMouse)

	a.rootPage.AddPage("gameview", a.frame, true, true)

	if cfg.UI.FocusMode {
		a.board.SetFocusMode(true)
		BuildFocusLayout(a.frame, a.board, a.hint)
	}
	a.app.EnableMouse(cfg.UI.Mouse)
	return a
}

// Board returns the board control.
func (a *App) Board() *BoardUI {
	return a.board
}

// Run blocks until the user quits.
func (a *App) Run() error {
	a.log.Info("starting")
	defer a.log.Info("stopped")
	return a.app.SetRoot(a.rootPage, true).SetFocus(a.board.Box).Run()
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	event = a.board.HandleKey(event)
	if event == nil {
		return nil
	}
	switch {
	case event.Key() == tcell.KeyRune && event.Rune() == 'f':
		a.toggleFocus()
		return nil
	case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyRune && event.Rune() == 'q':
		a.app.Stop()
		return nil
	}
	return event
}

func (a *App) toggleFocus() {
	if a.board.ToggleFocusMode() {
		BuildFocusLayout(a.frame, a.board, a.hint)
	} else {
		RebuildNormalLayout(a.frame, a.board, a.hint)
	}
	a.log.WithField("focus", a.board.IsFocusMode()).Debug("layout changed")
}
