package state

import "math"

// Kind names a drawable object variant. The values double as the type tag
// in snapshots.
type Kind string

const (
	KindStroke   Kind = "path"
	KindRect     Kind = "rect"
	KindEllipse  Kind = "circle"
	KindText     Kind = "textbox"
	KindGridLine Kind = "gridline"
)

// MinSize is the smallest width or height a shape can be given, so that
// shapes never degenerate into something invisible.
const MinSize = 1.0

// Style is the set of attributes the toolbar applies to new and selected objects.
type Style struct {
	Stroke      Color
	Fill        Color
	StrokeWidth float64
}

// Attrs are the attributes shared by every variant.
type Attrs struct {
	ID          string  `json:"id"`
	Stroke      Color   `json:"stroke"`
	Fill        Color   `json:"fill"`
	StrokeWidth float64 `json:"strokeWidth"`
	Selectable  bool    `json:"selectable"`
}

func newAttrs(s Style) Attrs {
	return Attrs{
		ID:          NewID(),
		Stroke:      s.Stroke,
		Fill:        s.Fill,
		StrokeWidth: s.StrokeWidth,
		Selectable:  true,
	}
}

func (a *Attrs) Base() *Attrs { return a }

// Style returns the style currently applied to the object.
func (a *Attrs) Style() Style {
	return Style{Stroke: a.Stroke, Fill: a.Fill, StrokeWidth: a.StrokeWidth}
}

// Object is a drawable element of a Scene. Every Object is owned by exactly
// one Scene; Clone allocates an independent copy with a new ID.
type Object interface {
	Base() *Attrs
	Kind() Kind
	Bounds() Bounds
	Translate(dx, dy float64)
	Resize(b Bounds)
	Clone() Object
}

// Stroke is a freehand polyline.
type Stroke struct {
	Attrs
	Points []Point `json:"points"`
}

// NewStroke starts a stroke at p using the stroke color and width of s.
func NewStroke(p Point, s Style) *Stroke {
	a := newAttrs(s)
	a.Fill = Transparent
	return &Stroke{Attrs: a, Points: []Point{p}}
}

func (s *Stroke) Kind() Kind { return KindStroke }

func (s *Stroke) Bounds() Bounds { return BoundsOfPoints(s.Points, s.StrokeWidth/2) }

func (s *Stroke) Translate(dx, dy float64) {
	for i := range s.Points {
		s.Points[i] = s.Points[i].Add(dx, dy)
	}
}

// Resize scales the points so the stroke's bounds become b.
func (s *Stroke) Resize(b Bounds) {
	pad := s.StrokeWidth / 2
	old := BoundsOfPoints(s.Points, 0)
	inner := b.Inset(-pad)
	sx, sy := 1.0, 1.0
	if old.W > 0 {
		sx = math.Max(inner.W, MinSize) / old.W
	}
	if old.H > 0 {
		sy = math.Max(inner.H, MinSize) / old.H
	}
	for i, p := range s.Points {
		s.Points[i] = Point{
			X: inner.X + (p.X-old.X)*sx,
			Y: inner.Y + (p.Y-old.Y)*sy,
		}
	}
}

func (s *Stroke) Clone() Object {
	c := *s
	c.ID = NewID()
	c.Points = append([]Point(nil), s.Points...)
	return &c
}

// Append adds a point to the end of the stroke.
func (s *Stroke) Append(p Point) {
	s.Points = append(s.Points, p)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Attrs
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewRect(left, top, w, h float64, s Style) *Rect {
	return &Rect{Attrs: newAttrs(s), Left: left, Top: top, Width: w, Height: h}
}

func (r *Rect) Kind() Kind { return KindRect }

func (r *Rect) Bounds() Bounds { return Bounds{X: r.Left, Y: r.Top, W: r.Width, H: r.Height} }

func (r *Rect) Translate(dx, dy float64) {
	r.Left += dx
	r.Top += dy
}

func (r *Rect) Resize(b Bounds) {
	r.Left, r.Top = b.X, b.Y
	r.Width = math.Max(b.W, MinSize)
	r.Height = math.Max(b.H, MinSize)
}

func (r *Rect) Clone() Object {
	c := *r
	c.ID = NewID()
	return &c
}

// Ellipse is a circle described by the top-left corner of its bounding box
// and its radius.
type Ellipse struct {
	Attrs
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Radius float64 `json:"radius"`
}

func NewEllipse(left, top, radius float64, s Style) *Ellipse {
	return &Ellipse{Attrs: newAttrs(s), Left: left, Top: top, Radius: radius}
}

func (e *Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Bounds() Bounds {
	return Bounds{X: e.Left, Y: e.Top, W: 2 * e.Radius, H: 2 * e.Radius}
}

// Center returns the center of the circle.
func (e *Ellipse) Center() Point {
	return Point{e.Left + e.Radius, e.Top + e.Radius}
}

func (e *Ellipse) Translate(dx, dy float64) {
	e.Left += dx
	e.Top += dy
}

func (e *Ellipse) Resize(b Bounds) {
	e.Left, e.Top = b.X, b.Y
	e.Radius = math.Max(math.Max(b.W, b.H), MinSize) / 2
}

func (e *Ellipse) Clone() Object {
	c := *e
	c.ID = NewID()
	return &c
}

// LineHeight is the height of one text line relative to the font size.
const LineHeight = 1.16

// TextBox is a block of text. Fill is the text color.
type TextBox struct {
	Attrs
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	Width    float64 `json:"width"`
	FontSize float64 `json:"fontSize"`
	Text     string  `json:"text"`

	layout textLayout
}

func NewTextBox(left, top, width, fontSize float64, text string, fill Color) *TextBox {
	a := newAttrs(Style{Stroke: Transparent, Fill: fill})
	return &TextBox{Attrs: a, Left: left, Top: top, Width: width, FontSize: fontSize, Text: text}
}

func (t *TextBox) Kind() Kind { return KindText }

// Lines returns the number of drawn lines, wrapping included.
func (t *TextBox) Lines() int { return len(t.WrappedLines()) }

func (t *TextBox) Bounds() Bounds {
	return Bounds{X: t.Left, Y: t.Top, W: t.Width, H: t.FontSize * LineHeight * float64(t.Lines())}
}

func (t *TextBox) Translate(dx, dy float64) {
	t.Left += dx
	t.Top += dy
}

// Resize moves the box and changes its wrapping width; the font size is kept.
func (t *TextBox) Resize(b Bounds) {
	t.Left, t.Top = b.X, b.Y
	t.Width = math.Max(b.W, MinSize)
}

func (t *TextBox) Clone() Object {
	c := *t
	c.ID = NewID()
	return &c
}

// GridLine is a non-interactive guide line of the grid overlay.
type GridLine struct {
	Attrs
	From Point `json:"from"`
	To   Point `json:"to"`
}

func NewGridLine(from, to Point, c Color) *GridLine {
	a := newAttrs(Style{Stroke: c, Fill: Transparent, StrokeWidth: 1})
	a.Selectable = false
	return &GridLine{Attrs: a, From: from, To: to}
}

func (g *GridLine) Kind() Kind { return KindGridLine }

func (g *GridLine) Bounds() Bounds { return BoundsFromCorners(g.From, g.To) }

func (g *GridLine) Translate(dx, dy float64) {
	g.From = g.From.Add(dx, dy)
	g.To = g.To.Add(dx, dy)
}

// Resize is a no-op: grid lines have a fixed extent.
func (g *GridLine) Resize(Bounds) {}

func (g *GridLine) Clone() Object {
	c := *g
	c.ID = NewID()
	return &c
}

// IsGrid reports whether o belongs to the grid overlay.
func IsGrid(o Object) bool {
	return o.Kind() == KindGridLine
}
