package state

import "math"

// Zoom limits.
const (
	MinZoom = 0.5
	MaxZoom = 3.0
)

// zoomBase is raised to the wheel delta to get the zoom factor.
const zoomBase = 0.999

// Viewport maps scene coordinates onto the screen:
// screen = scene*Zoom + Pan.
type Viewport struct {
	Zoom float64
	PanX float64
	PanY float64
}

func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ToWorld converts a screen position into scene coordinates.
func (v Viewport) ToWorld(p Point) Point {
	z := v.zoom()
	return Point{(p.X - v.PanX) / z, (p.Y - v.PanY) / z}
}

// ToScreen converts a scene position into screen coordinates.
func (v Viewport) ToScreen(p Point) Point {
	z := v.zoom()
	return Point{p.X*z + v.PanX, p.Y*z + v.PanY}
}

func (v Viewport) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}

// Wheel applies a wheel event at screen position p. Without the zoom
// modifier the event is ignored and Wheel returns false. Otherwise the zoom
// becomes Zoom*0.999^deltaY, clamped to [MinZoom, MaxZoom], and the pan is
// moved so the scene point under p stays under p.
func (v *Viewport) Wheel(p Point, deltaY float64, modifier bool) bool {
	if !modifier {
		return false
	}
	v.ZoomToPoint(p, v.zoom()*math.Pow(zoomBase, deltaY))
	return true
}

// ZoomToPoint sets the zoom, clamped, keeping screen point p fixed.
func (v *Viewport) ZoomToPoint(p Point, zoom float64) {
	if math.IsNaN(zoom) {
		return
	}
	local := v.ToWorld(p)
	v.Zoom = ClampZoom(zoom)
	v.PanX = p.X - local.X*v.Zoom
	v.PanY = p.Y - local.Y*v.Zoom
}

// Reset returns to zoom 1 with no pan.
func (v *Viewport) Reset() {
	*v = NewViewport()
}

// ClampZoom limits z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
