// Package ui is the fyne front end of a board.
package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/logging"
)

// App is the main window of one board.
type App struct {
	Window  fyne.Window
	Board   *BoardWidget
	Toolbar *Toolbar
	Status  *widget.Label

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp builds the window for b in a. The window is not shown.
func NewApp(a fyne.App, b *board.Board) *App {
	ctx, cancel := context.WithCancel(context.Background())
	win := a.NewWindow("SketchBoard")
	win.Resize(fyne.NewSize(1180, 760))

	u := &App{Window: win, ctx: ctx, cancel: cancel}
	u.Status = widget.NewLabel("Ready")
	u.Board = NewBoardWidget(b)
	ex := &exporter{ctx: ctx, board: b, win: win, status: u.Status.SetText}
	u.Toolbar = NewToolbar(win, b, ex)
	u.Board.OnStatus = func(s string) {
		u.Status.SetText(s)
		u.Toolbar.Sync()
	}

	win.SetContent(container.NewBorder(u.Toolbar.Content(), u.Status, nil, nil, u.Board))
	win.SetOnClosed(u.Close)
	win.Canvas().Focus(u.Board)
	return u
}

// Watch applies configs from w until it is closed.
func (u *App) Watch(w *config.Watcher) {
	go func() {
		for cfg := range w.Configs {
			fyne.Do(func() { u.applyConfig(cfg) })
		}
	}()
	go func() {
		for err := range w.Errors {
			fyne.Do(func() { u.configFailed(err) })
		}
	}()
}

// applyConfig and configFailed run on the UI goroutine and do nothing once
// the window is closed.
func (u *App) applyConfig(cfg config.Config) {
	if u.ctx.Err() != nil {
		return
	}
	u.Board.Board().ApplyConfig(cfg)
	u.Status.SetText("Config reloaded")
}

func (u *App) configFailed(err error) {
	if u.ctx.Err() != nil {
		logging.Logger().Warn("config error after close", "err", err)
		return
	}
	u.Status.SetText("Config error: " + err.Error())
}

// Close cancels running exports.
func (u *App) Close() {
	u.cancel()
	logging.Logger().Info("board unmounted")
}

// RunApp opens the board window and blocks until it is closed. A nil
// watcher disables live config reload.
func RunApp(a fyne.App, b *board.Board, w *config.Watcher) {
	u := NewApp(a, b)
	if w != nil {
		u.Watch(w)
	}
	u.Window.ShowAndRun()
}
