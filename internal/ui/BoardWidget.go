package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/board"
	"SketchBoard/internal/logging"
	"SketchBoard/internal/state"
)

// BoardWidget mounts a board in a fyne window and feeds it pointer, wheel
// and keyboard input. Positions are widget-relative screen coordinates;
// the board maps them through its viewport.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board

	pressed bool
	last    fyne.Position
	shift   bool
	ctrl    bool

	// OnStatus receives a one-line summary after every change.
	OnStatus func(string)
}

var (
	_ fyne.Widget       = (*BoardWidget)(nil)
	_ fyne.Draggable    = (*BoardWidget)(nil)
	_ fyne.Scrollable   = (*BoardWidget)(nil)
	_ fyne.Focusable    = (*BoardWidget)(nil)
	_ fyne.Shortcutable = (*BoardWidget)(nil)
	_ desktop.Mouseable = (*BoardWidget)(nil)
	_ desktop.Hoverable = (*BoardWidget)(nil)
	_ desktop.Keyable   = (*BoardWidget)(nil)
)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{board: b}
	w.ExtendBaseWidget(w)
	b.OnChange = w.changed
	logging.Logger().Info("board mounted")
	return w
}

func (w *BoardWidget) Board() *board.Board { return w.board }

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(w)
}

func (w *BoardWidget) changed() {
	w.Refresh()
	if w.OnStatus != nil {
		w.OnStatus(w.Status())
	}
}

// Status summarizes tool, zoom and selection.
func (w *BoardWidget) Status() string {
	s := w.board.Scene()
	n := 0
	for _, o := range s.Objects() {
		if !state.IsGrid(o) {
			n++
		}
	}
	return fmt.Sprintf("%s | zoom %.0f%% | %d objects | %d selected",
		w.board.Tool(), s.Viewport.Zoom*100, n, len(s.Selection()))
}

func (w *BoardWidget) requestFocus() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(w); c != nil {
		c.Focus(w)
	}
}

// Mouse

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	w.requestFocus()
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.shift = e.Modifier&fyne.KeyModifierShift != 0
	w.pressed = true
	w.last = e.Position
	w.board.PointerDown(point(e.Position), w.shift)
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !w.pressed {
		return
	}
	w.last = e.Position
	w.board.PointerMove(point(e.Position), w.shift)
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if !w.pressed || e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.pressed = false
	w.last = e.Position
	w.board.PointerUp(point(e.Position), w.shift)
}

// DragEnd finishes the gesture when the driver reports the end of a drag
// without a matching MouseUp.
func (w *BoardWidget) DragEnd() {
	if !w.pressed {
		return
	}
	w.pressed = false
	w.board.PointerUp(point(w.last), w.shift)
}

func (w *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	w.shift = e.Modifier&fyne.KeyModifierShift != 0
	w.ctrl = e.Modifier&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0
}

func (w *BoardWidget) MouseOut() {}

// Scrolled zooms around the pointer while Ctrl is held. Fyne reports
// wheel-up as a positive delta, the opposite of the zoom formula.
func (w *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	w.board.Wheel(point(e.Position), -float64(e.Scrolled.DY), w.ctrl)
}

// Keyboard

func (w *BoardWidget) FocusGained() {}

// FocusLost cancels the gesture in progress; its pointer-up may never come.
func (w *BoardWidget) FocusLost() {
	w.shift, w.ctrl = false, false
	if w.pressed {
		w.pressed = false
		w.board.Cancel()
	}
}

func (w *BoardWidget) TypedRune(rune) {}

func (w *BoardWidget) TypedKey(e *fyne.KeyEvent) {
	switch e.Name {
	case fyne.KeyDelete, fyne.KeyBackspace:
		w.board.Delete()
	case fyne.KeyEscape:
		w.pressed = false
		w.board.Cancel()
	}
}

func (w *BoardWidget) KeyDown(e *fyne.KeyEvent) {
	switch e.Name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		w.shift = true
	case desktop.KeyControlLeft, desktop.KeyControlRight, desktop.KeySuperLeft, desktop.KeySuperRight:
		w.ctrl = true
	}
}

func (w *BoardWidget) KeyUp(e *fyne.KeyEvent) {
	switch e.Name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		w.shift = false
	case desktop.KeyControlLeft, desktop.KeyControlRight, desktop.KeySuperLeft, desktop.KeySuperRight:
		w.ctrl = false
	}
}

// TypedShortcut handles Ctrl+Z and Ctrl+Y. Drivers deliver them either as
// custom shortcuts or as the standard undo and redo shortcuts.
func (w *BoardWidget) TypedShortcut(s fyne.Shortcut) {
	if cs, ok := s.(*desktop.CustomShortcut); ok {
		if cs.Modifier&(fyne.KeyModifierControl|fyne.KeyModifierSuper) == 0 {
			return
		}
		switch cs.KeyName {
		case fyne.KeyZ:
			w.board.Undo()
		case fyne.KeyY:
			w.board.Redo()
		}
		return
	}
	switch s.ShortcutName() {
	case "Undo":
		w.board.Undo()
	case "Redo":
		w.board.Redo()
	}
}
