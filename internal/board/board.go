// Package board ties a scene to its grid, history and tool controller and
// exposes the editing operations the UI calls. A Board is not safe for
// concurrent use; exports work on a copy taken on the caller's goroutine.
package board

import (
	"SketchBoard/internal/config"
	"SketchBoard/internal/history"
	"SketchBoard/internal/logging"
	"SketchBoard/internal/state"
	"SketchBoard/internal/tools"
)

// DuplicateOffset is how far a duplicate is moved from its original.
const DuplicateOffset = 30

// TextOrigin is where InsertText places new text boxes.
var TextOrigin = state.Point{X: 100, Y: 100}

type Board struct {
	cfg   config.Config
	scene *state.Scene
	grid  *state.Grid
	hist  *history.Manager
	tools *tools.Controller

	// OnChange is called after every change that needs a repaint.
	OnChange func()
}

// New returns an empty board with the initial state already recorded.
func New(cfg config.Config) *Board {
	b := &Board{cfg: cfg}
	b.scene = state.NewScene(cfg.Background.Color)
	b.grid = state.NewGrid(b.scene)
	b.hist = history.New(b.scene, cfg.History.Limit)
	b.tools = tools.New(b.scene, b.grid, b.hist, cfg.Style())
	b.record()
	logging.Logger().Info("board created", "width", state.CanvasWidth, "height", state.CanvasHeight)
	return b
}

func (b *Board) Scene() *state.Scene       { return b.scene }
func (b *Board) Grid() *state.Grid         { return b.grid }
func (b *Board) History() *history.Manager { return b.hist }
func (b *Board) Tools() *tools.Controller  { return b.tools }
func (b *Board) Viewport() *state.Viewport { return &b.scene.Viewport }
func (b *Board) Config() config.Config     { return b.cfg }
func (b *Board) Style() state.Style        { return b.tools.Style }
func (b *Board) Tool() tools.Kind          { return b.tools.Tool() }

// SetTool switches tools, cancelling any gesture in progress.
func (b *Board) SetTool(k tools.Kind) {
	b.tools.SetTool(k)
	b.changed()
}

// Marquee returns the rubber band of a marquee selection in progress.
func (b *Board) Marquee() (state.Bounds, bool) { return b.tools.Marquee() }

// ApplyConfig takes new defaults from a reloaded config. The scene itself
// is left alone; the new background is used by the next ClearAll.
func (b *Board) ApplyConfig(cfg config.Config) {
	b.cfg = cfg
	b.tools.Style = cfg.Style()
	b.hist.SetLimit(cfg.History.Limit)
	logging.Logger().Info("board config applied", "stroke", cfg.Stroke, "width", cfg.StrokeWidth)
	b.changed()
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

func (b *Board) record() {
	if err := b.hist.Record(); err != nil {
		logging.Logger().Warn("record failed", "err", err)
	}
}

// commit records a completed mutation and repaints.
func (b *Board) commit() {
	b.record()
	b.changed()
}
