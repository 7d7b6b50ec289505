package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"SketchBoard/internal/state"
)

var (
	outsideColor   = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	selectionColor = color.NRGBA{R: 0, G: 120, B: 255, A: 255}
	marqueeFill    = color.NRGBA{R: 0, G: 120, B: 255, A: 40}
)

// boardRenderer rebuilds the canvas objects from the scene on every
// refresh.
type boardRenderer struct {
	widget  *BoardWidget
	outside *canvas.Rectangle
	objects []fyne.CanvasObject
}

func newBoardRenderer(w *BoardWidget) *boardRenderer {
	r := &boardRenderer{widget: w, outside: canvas.NewRectangle(outsideColor)}
	r.rebuild()
	return r
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.outside.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.widget)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardRenderer) Destroy() {}

func (r *boardRenderer) rebuild() {
	b := r.widget.board
	v := b.Scene().Viewport
	z := float32(v.Zoom)

	surface := canvas.NewRectangle(b.Scene().Background())
	surface.Move(pos(v.ToScreen(state.Point{})))
	surface.Resize(fyne.NewSize(state.CanvasWidth*z, state.CanvasHeight*z))

	objs := []fyne.CanvasObject{r.outside, surface}
	for _, o := range b.Scene().Objects() {
		objs = appendObject(objs, o, v)
	}

	sel := b.Scene().Selection()
	for _, o := range sel {
		objs = append(objs, outline(o.Bounds().Inset(2), v))
	}
	if len(sel) == 1 {
		h := sel[0].Bounds().Handle()
		handle := canvas.NewRectangle(selectionColor)
		moveTo(handle, h, v)
		objs = append(objs, handle)
	}

	if m, ok := b.Marquee(); ok {
		band := outline(m, v)
		band.FillColor = marqueeFill
		objs = append(objs, band)
	}
	r.objects = objs
}

func appendObject(objs []fyne.CanvasObject, o state.Object, v state.Viewport) []fyne.CanvasObject {
	z := float32(v.Zoom)
	a := o.Base()
	switch s := o.(type) {
	case *state.GridLine:
		objs = append(objs, line(s.From, s.To, a, v))
	case *state.Stroke:
		if len(s.Points) == 1 {
			dot := canvas.NewCircle(a.Stroke)
			r := s.StrokeWidth / 2
			moveTo(dot, state.Bounds{X: s.Points[0].X - r, Y: s.Points[0].Y - r, W: 2 * r, H: 2 * r}, v)
			objs = append(objs, dot)
			break
		}
		for i := 1; i < len(s.Points); i++ {
			objs = append(objs, line(s.Points[i-1], s.Points[i], a, v))
		}
	case *state.Rect:
		rect := canvas.NewRectangle(a.Fill)
		rect.StrokeColor = a.Stroke
		rect.StrokeWidth = float32(a.StrokeWidth) * z
		moveTo(rect, s.Bounds(), v)
		objs = append(objs, rect)
	case *state.Ellipse:
		circle := canvas.NewCircle(a.Fill)
		circle.StrokeColor = a.Stroke
		circle.StrokeWidth = float32(a.StrokeWidth) * z
		moveTo(circle, s.Bounds(), v)
		objs = append(objs, circle)
	case *state.TextBox:
		size := float32(s.FontSize) * z
		for i, l := range s.WrappedLines() {
			txt := canvas.NewText(l, a.Fill)
			txt.TextSize = size
			txt.Move(pos(v.ToScreen(state.Point{X: s.Left, Y: s.Top + float64(i)*s.FontSize*state.LineHeight})))
			objs = append(objs, txt)
		}
	}
	return objs
}

func line(from, to state.Point, a *state.Attrs, v state.Viewport) *canvas.Line {
	l := canvas.NewLine(a.Stroke)
	l.StrokeWidth = float32(a.StrokeWidth * v.Zoom)
	l.Position1 = pos(v.ToScreen(from))
	l.Position2 = pos(v.ToScreen(to))
	return l
}

func outline(b state.Bounds, v state.Viewport) *canvas.Rectangle {
	r := canvas.NewRectangle(color.Transparent)
	r.StrokeColor = selectionColor
	r.StrokeWidth = 1
	moveTo(r, b, v)
	return r
}

func moveTo(o fyne.CanvasObject, b state.Bounds, v state.Viewport) {
	o.Move(pos(v.ToScreen(state.Point{X: b.X, Y: b.Y})))
	o.Resize(fyne.NewSize(float32(b.W*v.Zoom), float32(b.H*v.Zoom)))
}

func pos(p state.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func point(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}
