package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsIndependent(t *testing.T) {
	cases := []struct {
		name string
		obj  Object
	}{
		{"stroke", &Stroke{Attrs: newAttrs(testStyle), Points: []Point{{0, 0}, {10, 10}}}},
		{"rect", NewRect(50, 50, 20, 10, testStyle)},
		{"ellipse", NewEllipse(5, 5, 10, testStyle)},
		{"text", NewTextBox(1, 2, 200, 20, "hello", Black)},
		{"grid", NewGridLine(Point{0, 0}, Point{0, 10}, GridColor)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dup := c.obj.Clone()
			require.NotSame(t, c.obj, dup)
			assert.NotEqual(t, c.obj.Base().ID, dup.Base().ID)
			assert.Equal(t, c.obj.Kind(), dup.Kind())
			assert.Equal(t, c.obj.Bounds(), dup.Bounds())
			assert.Equal(t, c.obj.Base().Style(), dup.Base().Style())

			before := c.obj.Bounds()
			dup.Translate(30, 30)
			assert.Equal(t, before, c.obj.Bounds(), "moving the clone must not move the source")
		})
	}
}

func TestRectGeometry(t *testing.T) {
	r := NewRect(50, 50, 20, 10, testStyle)
	r.Translate(30, 30)
	assert.Equal(t, Bounds{80, 80, 20, 10}, r.Bounds())

	r.Resize(Bounds{0, 0, 0, -5})
	assert.Equal(t, Bounds{0, 0, MinSize, MinSize}, r.Bounds())
}

func TestEllipseGeometry(t *testing.T) {
	e := NewEllipse(10, 10, 5, testStyle)
	assert.Equal(t, Bounds{10, 10, 10, 10}, e.Bounds())
	assert.Equal(t, Point{15, 15}, e.Center())

	e.Resize(Bounds{0, 0, 40, 20})
	assert.Equal(t, 20.0, e.Radius)
}

func TestStrokeResize(t *testing.T) {
	s := &Stroke{Attrs: newAttrs(Style{Stroke: Black, StrokeWidth: 2}), Points: []Point{{0, 0}, {10, 20}}}
	b := s.Bounds()
	assert.Equal(t, Bounds{-1, -1, 12, 22}, b)

	s.Resize(Bounds{X: b.X, Y: b.Y, W: 22, H: 42})
	assert.Equal(t, []Point{{0, 0}, {20, 40}}, s.Points)
}

func TestTextBoxBounds(t *testing.T) {
	tb := NewTextBox(0, 0, 200, 20, "one\ntwo", Black)
	assert.Equal(t, 2, tb.Lines())
	assert.InDelta(t, 2*20*LineHeight, tb.Bounds().H, 1e-9)

	tb.Resize(Bounds{5, 6, 120, 1})
	assert.Equal(t, 120.0, tb.Width)
	assert.Equal(t, 20.0, tb.FontSize)
}

func TestGridLineIsNotSelectable(t *testing.T) {
	l := NewGridLine(Point{0, 0}, Point{100, 0}, GridColor)
	assert.False(t, l.Selectable)
	assert.True(t, IsGrid(l))
	assert.False(t, IsGrid(NewRect(0, 0, 1, 1, testStyle)))
}

func TestBoundsHelpers(t *testing.T) {
	b := BoundsFromCorners(Point{200, 150}, Point{100, 100})
	assert.Equal(t, Bounds{100, 100, 100, 50}, b)
	assert.True(t, b.Contains(Point{150, 120}))
	assert.False(t, b.Contains(Point{99, 120}))
	assert.True(t, b.Overlaps(Bounds{190, 140, 50, 50}))
	assert.False(t, b.Overlaps(Bounds{300, 300, 1, 1}))
	assert.Equal(t, Bounds{0, 0, 200, 150}, b.Union(Bounds{0, 0, 10, 10}))
	assert.Equal(t, Bounds{196, 146, HandleSize, HandleSize}, b.Handle())
}
