package state

import (
	"image/color"
	"math"

	"SketchBoard/internal/logging"
)

// GridCell is the spacing of the grid overlay in scene units.
const GridCell = 20

// GridColor is the color of the guide lines.
var GridColor = Color{color.NRGBA{R: 220, G: 220, B: 220, A: 255}}

// Grid is the optional overlay of guide lines plus the snapping function
// used by the shape tools. It only ever adds or removes the lines it
// generated itself.
type Grid struct {
	scene *Scene
	on    bool
	lines []Object
}

func NewGrid(s *Scene) *Grid {
	return &Grid{scene: s}
}

func (g *Grid) Enabled() bool { return g.on }

// Lines returns the guide lines currently attached to the scene.
func (g *Grid) Lines() []Object { return g.lines }

// Toggle turns the overlay on or off and reports the new state.
func (g *Grid) Toggle() bool {
	if g.on {
		for _, l := range g.lines {
			g.scene.Remove(l)
		}
		g.lines = nil
		g.on = false
	} else {
		g.on = true
		g.attach()
	}
	logging.Logger().Debug("grid toggled", "on", g.on, "lines", len(g.lines))
	return g.on
}

// Reattach regenerates the lines after the scene lost them (clear-all).
// It does nothing while the overlay is off.
func (g *Grid) Reattach() {
	if !g.on {
		return
	}
	for _, l := range g.lines {
		g.scene.Remove(l)
	}
	g.attach()
}

func (g *Grid) attach() {
	g.lines = nil
	for x := 0.0; x < CanvasWidth; x += GridCell {
		g.lines = append(g.lines, NewGridLine(Point{x, 0}, Point{x, CanvasHeight}, GridColor))
	}
	for y := 0.0; y < CanvasHeight; y += GridCell {
		g.lines = append(g.lines, NewGridLine(Point{0, y}, Point{CanvasWidth, y}, GridColor))
	}
	for i, l := range g.lines {
		g.scene.Insert(i, l)
	}
}

// Snap rounds v to the nearest grid cell boundary while the overlay is on.
func (g *Grid) Snap(v float64) float64 {
	if !g.on {
		return v
	}
	return math.Round(v/GridCell) * GridCell
}
