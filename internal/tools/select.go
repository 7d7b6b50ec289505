package tools

import (
	"SketchBoard/internal/state"
)

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureMove
	gestureResize
	gestureMarquee
)

type gesture struct {
	mode  gestureMode
	start state.Point
	last  state.Point
	// bounds of the resized object when the gesture started
	origin  state.Bounds
	target  state.Object
	changed bool
}

func (c *Controller) selectDown(p Pointer) {
	if c.gesture.mode != gestureNone {
		c.Cancel()
	}
	c.gesture = gesture{start: p.Point, last: p.Point}

	if a := c.scene.Active(); a != nil && a.Bounds().Handle().Contains(p.Point) {
		c.gesture.mode = gestureResize
		c.gesture.target = a
		c.gesture.origin = a.Bounds()
		return
	}

	hit := c.scene.HitTest(p.Point)
	switch {
	case hit == nil:
		c.scene.DiscardActive()
		c.gesture.mode = gestureMarquee
	case p.Shift:
		c.scene.ToggleActive(hit)
		if c.scene.IsSelected(hit) {
			c.gesture.mode = gestureMove
		}
	default:
		if !c.scene.IsSelected(hit) {
			c.scene.SetActive(hit)
		}
		c.gesture.mode = gestureMove
	}
}

func (c *Controller) selectMove(p Pointer) {
	g := &c.gesture
	switch g.mode {
	case gestureMove:
		dx, dy := p.X-g.last.X, p.Y-g.last.Y
		if dx == 0 && dy == 0 {
			return
		}
		for _, o := range c.scene.Selection() {
			o.Translate(dx, dy)
		}
		g.changed = true
	case gestureResize:
		end := g.origin.Max().Add(p.X-g.start.X, p.Y-g.start.Y)
		g.target.Resize(state.Bounds{
			X: g.origin.X,
			Y: g.origin.Y,
			W: end.X - g.origin.X,
			H: end.Y - g.origin.Y,
		})
		g.changed = true
	case gestureMarquee:
	default:
		return
	}
	g.last = p.Point
}

func (c *Controller) selectUp(p Pointer) {
	if c.gesture.mode == gestureNone {
		return
	}
	c.selectMove(p)
	c.finishGesture()
	c.gesture = gesture{}
}

// finishGesture commits the select gesture in progress.
func (c *Controller) finishGesture() {
	g := c.gesture
	switch g.mode {
	case gestureMove, gestureResize:
		if g.changed {
			c.record()
		}
	case gestureMarquee:
		box := state.BoundsFromCorners(g.start, g.last)
		if box.W > 0 || box.H > 0 {
			c.scene.SetActive(c.scene.ObjectsIn(box)...)
		}
	}
}
