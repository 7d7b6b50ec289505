package board

import (
	"SketchBoard/internal/logging"
	"SketchBoard/internal/state"
	"SketchBoard/internal/tools"
)

func (b *Board) pointer(screen state.Point, shift bool) tools.Pointer {
	return tools.Pointer{Point: b.scene.Viewport.ToWorld(screen), Shift: shift}
}

// PointerDown, PointerMove and PointerUp take screen coordinates.
func (b *Board) PointerDown(screen state.Point, shift bool) {
	b.tools.PointerDown(b.pointer(screen, shift))
	b.changed()
}

func (b *Board) PointerMove(screen state.Point, shift bool) {
	b.tools.PointerMove(b.pointer(screen, shift))
	b.changed()
}

func (b *Board) PointerUp(screen state.Point, shift bool) {
	b.tools.PointerUp(b.pointer(screen, shift))
	b.changed()
}

// Cancel aborts the gesture in progress.
func (b *Board) Cancel() {
	if !b.tools.Busy() {
		return
	}
	b.tools.Cancel()
	b.changed()
}

// Wheel zooms around screen point p while modifier is held. It reports
// whether the event was consumed.
func (b *Board) Wheel(p state.Point, deltaY float64, modifier bool) bool {
	if !b.scene.Viewport.Wheel(p, deltaY, modifier) {
		return false
	}
	logging.Logger().Debug("zoom", "zoom", b.scene.Viewport.Zoom)
	b.changed()
	return true
}

// ResetView returns to zoom 1 with no pan.
func (b *Board) ResetView() {
	b.scene.Viewport.Reset()
	b.changed()
}

// ToggleGrid turns the overlay on or off. It is not an undoable change.
func (b *Board) ToggleGrid() bool {
	on := b.grid.Toggle()
	b.changed()
	return on
}

func (b *Board) Undo() bool {
	b.tools.Cancel()
	ok, err := b.hist.Undo()
	if err != nil {
		logging.Logger().Warn("undo failed", "err", err)
	}
	if ok {
		b.changed()
	}
	return ok
}

func (b *Board) Redo() bool {
	b.tools.Cancel()
	ok, err := b.hist.Redo()
	if err != nil {
		logging.Logger().Warn("redo failed", "err", err)
	}
	if ok {
		b.changed()
	}
	return ok
}
