package board

import (
	"SketchBoard/internal/logging"
	"SketchBoard/internal/state"
)

// Duplicate clones the selection, offset by DuplicateOffset in both axes.
// A single clone becomes the active object. Clones of an aggregate are
// added individually and left unselected.
func (b *Board) Duplicate() {
	b.tools.Cancel()
	sel := b.scene.Selection()
	if len(sel) == 0 {
		return
	}
	if len(sel) == 1 {
		dup := sel[0].Clone()
		dup.Translate(DuplicateOffset, DuplicateOffset)
		b.scene.Add(dup)
		b.scene.SetActive(dup)
	} else {
		b.scene.DiscardActive()
		for _, o := range sel {
			dup := o.Clone()
			dup.Translate(DuplicateOffset, DuplicateOffset)
			b.scene.Add(dup)
		}
	}
	logging.Logger().Debug("duplicated", "count", len(sel))
	b.commit()
}

func (b *Board) BringToFront() {
	b.tools.Cancel()
	if o := b.scene.Active(); o != nil && b.scene.BringToFront(o) {
		b.commit()
	}
}

func (b *Board) SendToBack() {
	b.tools.Cancel()
	if o := b.scene.Active(); o != nil && b.scene.SendToBack(o) {
		b.commit()
	}
}

// Delete removes every selected object and clears the selection.
func (b *Board) Delete() {
	b.tools.Cancel()
	sel := b.scene.Selection()
	if len(sel) == 0 {
		return
	}
	for _, o := range sel {
		b.scene.Remove(o)
	}
	b.scene.DiscardActive()
	logging.Logger().Debug("deleted", "count", len(sel))
	b.commit()
}

// ClearAll empties the scene and restores the configured background.
// Grid lines come back if the overlay is on.
func (b *Board) ClearAll() {
	b.tools.Cancel()
	b.scene.Clear()
	b.scene.SetBackground(b.cfg.Background.Color)
	b.grid.Reattach()
	logging.Logger().Debug("cleared")
	b.commit()
}

// SetStrokeColor sets the outline color of new objects and of the
// selection. For text it is the glyph color.
func (b *Board) SetStrokeColor(c state.Color) {
	b.tools.Style.Stroke = c
	b.restyle(func(o state.Object) {
		if _, ok := o.(*state.TextBox); ok {
			o.Base().Fill = c
			return
		}
		o.Base().Stroke = c
	})
}

// SetFillColor sets the fill of new shapes and of the selected shapes.
// Strokes and text are not filled.
func (b *Board) SetFillColor(c state.Color) {
	b.tools.Style.Fill = c
	b.restyle(func(o state.Object) {
		switch o.(type) {
		case *state.Rect, *state.Ellipse:
			o.Base().Fill = c
		}
	})
}

func (b *Board) SetStrokeWidth(w float64) {
	if w <= 0 {
		return
	}
	b.tools.Style.StrokeWidth = w
	b.restyle(func(o state.Object) {
		if _, ok := o.(*state.TextBox); ok {
			return
		}
		o.Base().StrokeWidth = w
	})
}

func (b *Board) restyle(apply func(state.Object)) {
	sel := b.scene.Selection()
	if len(sel) == 0 {
		b.changed()
		return
	}
	for _, o := range sel {
		apply(o)
	}
	b.commit()
}

func (b *Board) SetBackground(c state.Color) {
	if c == b.scene.Background() {
		return
	}
	b.scene.SetBackground(c)
	b.commit()
}

// InsertText adds a text box at TextOrigin in the current stroke color and
// makes it active. An empty text uses the configured default.
func (b *Board) InsertText(text string) *state.TextBox {
	b.tools.Cancel()
	if text == "" {
		text = b.cfg.Text.Default
	}
	t := state.NewTextBox(TextOrigin.X, TextOrigin.Y, b.cfg.Text.Width, b.cfg.Text.FontSize, text, b.tools.Style.Stroke)
	b.scene.Add(t)
	b.scene.SetActive(t)
	b.commit()
	return t
}

// SetText replaces the content of the active text box.
func (b *Board) SetText(text string) bool {
	t, ok := b.scene.Active().(*state.TextBox)
	if !ok || t.Text == text {
		return false
	}
	t.Text = text
	b.commit()
	return true
}
