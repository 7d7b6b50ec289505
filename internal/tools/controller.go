// Package tools turns pointer gestures into scene edits. Each tool is a
// state with its own dispatch table; switching tools swaps the table and
// never re-registers handlers.
//
// The select tool moves, resizes from the bottom-right handle and draws a
// marquee. Objects are never rotated.
package tools

import (
	"fmt"
	"math"

	"SketchBoard/internal/logging"
	"SketchBoard/internal/state"
)

// Kind identifies the active tool.
type Kind int

const (
	Select Kind = iota
	Draw
	Rect
	Circle

	numKinds
)

func (k Kind) String() string {
	switch k {
	case Select:
		return "select"
	case Draw:
		return "draw"
	case Rect:
		return "rect"
	case Circle:
		return "circle"
	}
	return fmt.Sprintf("tool(%d)", int(k))
}

// Pointer is a pointer event in scene coordinates.
type Pointer struct {
	state.Point
	Shift bool
}

// Snapper quantizes coordinates for the shape tools.
type Snapper interface {
	Snap(v float64) float64
}

// Recorder is told about every completed mutation.
type Recorder interface {
	Record() error
}

type handlers struct {
	down func(c *Controller, p Pointer)
	move func(c *Controller, p Pointer)
	up   func(c *Controller, p Pointer)
}

var dispatch = [...]handlers{
	Select: {down: (*Controller).selectDown, move: (*Controller).selectMove, up: (*Controller).selectUp},
	Draw:   {down: (*Controller).drawDown, move: (*Controller).drawMove, up: (*Controller).drawUp},
	Rect:   {down: (*Controller).shapeDown, move: (*Controller).shapeMove, up: (*Controller).shapeUp},
	Circle: {down: (*Controller).shapeDown, move: (*Controller).shapeMove, up: (*Controller).shapeUp},
}

// Controller is the tool state machine of one board.
type Controller struct {
	scene *state.Scene
	snap  Snapper
	rec   Recorder

	tool Kind

	// Style is applied to objects created by the drawing tools.
	Style state.Style

	// OnToolChange is called after the active tool changed.
	OnToolChange func(Kind)

	// in-progress object of Draw/Rect/Circle
	current state.Object
	anchor  state.Point

	// Select gesture
	gesture gesture
}

// New returns a controller in the Select state.
func New(s *state.Scene, snap Snapper, rec Recorder, style state.Style) *Controller {
	return &Controller{scene: s, snap: snap, rec: rec, Style: style, tool: Select}
}

func (c *Controller) Tool() Kind { return c.tool }

// SetTool cancels any gesture in progress and switches tools. Leaving
// Select discards the selection.
func (c *Controller) SetTool(k Kind) {
	if k < 0 || k >= numKinds {
		k = Select
	}
	c.Cancel()
	if k != Select {
		c.scene.DiscardActive()
	}
	if k == c.tool {
		return
	}
	prev := c.tool
	c.tool = k
	logging.Logger().Debug("tool changed", "from", prev, "to", k)
	if c.OnToolChange != nil {
		c.OnToolChange(k)
	}
}

// Busy reports whether a gesture is in progress.
func (c *Controller) Busy() bool {
	return c.current != nil || c.gesture.mode != gestureNone
}

// Current returns the object being drawn, if any.
func (c *Controller) Current() state.Object { return c.current }

// Marquee returns the rubber-band rectangle while a marquee selection is
// being dragged.
func (c *Controller) Marquee() (state.Bounds, bool) {
	if c.gesture.mode != gestureMarquee {
		return state.Bounds{}, false
	}
	return state.BoundsFromCorners(c.gesture.start, c.gesture.last), true
}

func (c *Controller) PointerDown(p Pointer) { dispatch[c.tool].down(c, p) }
func (c *Controller) PointerMove(p Pointer) { dispatch[c.tool].move(c, p) }
func (c *Controller) PointerUp(p Pointer)   { dispatch[c.tool].up(c, p) }

// Cancel aborts the gesture in progress. An object being drawn is removed
// from the scene; a move or resize already applied is kept and recorded.
func (c *Controller) Cancel() {
	if c.current != nil {
		c.scene.Remove(c.current)
		logging.Logger().Debug("drawing cancelled", "tool", c.tool)
		c.current = nil
	}
	if c.gesture.mode == gestureMove || c.gesture.mode == gestureResize {
		c.finishGesture()
	}
	c.gesture = gesture{}
}

func (c *Controller) record() {
	if err := c.rec.Record(); err != nil {
		logging.Logger().Warn("record failed", "err", err)
	}
}

// Draw

func (c *Controller) drawDown(p Pointer) {
	c.Cancel()
	s := state.NewStroke(p.Point, c.Style)
	c.current = s
	c.scene.Add(s)
}

func (c *Controller) drawMove(p Pointer) {
	s, ok := c.current.(*state.Stroke)
	if !ok {
		return
	}
	s.Append(p.Point)
}

func (c *Controller) drawUp(Pointer) {
	if c.current == nil {
		return
	}
	c.current = nil
	c.record()
}

// Rect and Circle

func (c *Controller) shapeDown(p Pointer) {
	c.Cancel()
	c.anchor = p.Point
	if c.tool == Rect {
		c.current = state.NewRect(p.X, p.Y, state.MinSize, state.MinSize, c.Style)
	} else {
		c.current = state.NewEllipse(p.X, p.Y, state.MinSize/2, c.Style)
	}
	c.scene.Add(c.current)
}

func (c *Controller) shapeMove(p Pointer) {
	if c.current == nil {
		return
	}
	cur := state.Point{X: c.snap.Snap(p.X), Y: c.snap.Snap(p.Y)}
	switch o := c.current.(type) {
	case *state.Rect:
		o.Left = math.Min(c.anchor.X, cur.X)
		o.Top = math.Min(c.anchor.Y, cur.Y)
		o.Width = math.Max(math.Abs(cur.X-c.anchor.X), state.MinSize)
		o.Height = math.Max(math.Abs(cur.Y-c.anchor.Y), state.MinSize)
		if p.Shift {
			side := math.Max(o.Width, o.Height)
			o.Width, o.Height = side, side
		}
	case *state.Ellipse:
		// Shift has no effect on circles.
		o.Left = math.Min(c.anchor.X, cur.X)
		o.Top = math.Min(c.anchor.Y, cur.Y)
		o.Radius = math.Max(math.Max(math.Abs(cur.X-c.anchor.X), math.Abs(cur.Y-c.anchor.Y)), state.MinSize) / 2
	}
}

func (c *Controller) shapeUp(Pointer) {
	if c.current == nil {
		return
	}
	c.current = nil
	c.record()
	c.SetTool(Select)
}
