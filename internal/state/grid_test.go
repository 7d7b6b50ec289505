package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridToggleLeavesObjectsAlone(t *testing.T) {
	s := NewScene(White)
	a := NewRect(0, 0, 10, 10, testStyle)
	b := NewStroke(Point{3, 4}, testStyle)
	s.Add(a)
	s.Add(b)
	before := s.Objects()

	g := NewGrid(s)
	require.True(t, g.Toggle())
	wantLines := CanvasWidth/GridCell + CanvasHeight/GridCell
	assert.Len(t, g.Lines(), wantLines)
	assert.Equal(t, len(before)+wantLines, s.Len())
	for i := range wantLines {
		assert.True(t, IsGrid(s.At(i)), "grid lines sit behind everything")
	}

	require.False(t, g.Toggle())
	assert.Equal(t, before, s.Objects())
	assert.Empty(t, g.Lines())
}

func TestGridSnap(t *testing.T) {
	g := NewGrid(NewScene(White))
	assert.Equal(t, 33.0, g.Snap(33))

	g.Toggle()
	cases := []struct{ in, want float64 }{
		{0, 0},
		{9.9, 0},
		{10, 20},
		{33, 40},
		{150, 160},
		{-11, -20},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, g.Snap(c.in), "snap(%v)", c.in)
	}
}

func TestGridReattach(t *testing.T) {
	s := NewScene(White)
	g := NewGrid(s)
	g.Reattach()
	assert.Zero(t, s.Len(), "reattach is a no-op while off")

	g.Toggle()
	n := s.Len()
	old := g.Lines()
	first := old[0]
	s.Clear()
	g.Reattach()
	assert.Equal(t, n, s.Len())
	assert.Same(t, first, old[0], "lines handed out earlier are not overwritten")
	assert.NotSame(t, first, g.Lines()[0])

	g.Toggle()
	assert.Zero(t, s.Len())
}
