package state

import "math"

// Point is a position in scene (world) units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Bounds is an axis-aligned rectangle in scene units.
type Bounds struct {
	X float64
	Y float64
	W float64
	H float64
}

// BoundsFromCorners builds the rectangle spanned by two opposite corners.
func BoundsFromCorners(a, b Point) Bounds {
	return Bounds{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

// BoundsOfPoints returns the bounding box of pts, padded by pad on every side.
func BoundsOfPoints(pts []Point, pad float64) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Bounds{
		X: minX - pad,
		Y: minY - pad,
		W: maxX - minX + 2*pad,
		H: maxY - minY + 2*pad,
	}
}

func (b Bounds) Max() Point { return Point{b.X + b.W, b.Y + b.H} }

func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W &&
		p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Encloses reports whether o lies entirely inside b.
func (b Bounds) Encloses(o Bounds) bool {
	return o.X >= b.X && o.Y >= b.Y &&
		o.X+o.W <= b.X+b.W && o.Y+o.H <= b.Y+b.H
}

func (b Bounds) Overlaps(o Bounds) bool {
	return !(b.X+b.W < o.X || o.X+o.W < b.X ||
		b.Y+b.H < o.Y || o.Y+o.H < b.Y)
}

func (b Bounds) Union(o Bounds) Bounds {
	minX := math.Min(b.X, o.X)
	minY := math.Min(b.Y, o.Y)
	maxX := math.Max(b.X+b.W, o.X+o.W)
	maxY := math.Max(b.Y+b.H, o.Y+o.H)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Inset grows (d > 0) or shrinks (d < 0) the rectangle on every side.
func (b Bounds) Inset(d float64) Bounds {
	return Bounds{X: b.X - d, Y: b.Y - d, W: b.W + 2*d, H: b.H + 2*d}
}

// HandleSize is the side of the square resize handle drawn at the
// bottom-right corner of a single selection, in scene units.
const HandleSize = 8

// Handle returns the resize handle rectangle of b.
func (b Bounds) Handle() Bounds {
	m := b.Max()
	return Bounds{X: m.X - HandleSize/2, Y: m.Y - HandleSize/2, W: HandleSize, H: HandleSize}
}

// SelectionBounds is the union of the bounds of objs.
func SelectionBounds(objs []Object) Bounds {
	if len(objs) == 0 {
		return Bounds{}
	}
	b := objs[0].Bounds()
	for _, o := range objs[1:] {
		b = b.Union(o.Bounds())
	}
	return b
}
