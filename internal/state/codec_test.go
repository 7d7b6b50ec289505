package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore(t *testing.T) {
	s := NewScene(White)
	g := NewGrid(s)
	g.Toggle()

	stroke := NewStroke(Point{1, 2}, testStyle)
	stroke.Append(Point{3, 4})
	rect := NewRect(10, 20, 30, 40, Style{Stroke: MustColor("#ff0000"), Fill: MustColor("#00ff0080"), StrokeWidth: 4})
	circle := NewEllipse(5, 5, 12, testStyle)
	text := NewTextBox(100, 100, 200, 20, "hi", Black)
	for _, o := range []Object{stroke, rect, circle, text} {
		s.Add(o)
	}
	s.SetActive(rect)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.NotContains(t, string(snap), string(KindGridLine), "grid lines stay out of snapshots")

	s.Remove(rect)
	s.SetBackground(Black)
	require.NoError(t, s.Restore(snap))

	assert.Equal(t, White, s.Background())
	assert.Nil(t, s.Active())
	assert.Equal(t, len(g.Lines())+4, s.Len())
	for i, l := range g.Lines() {
		assert.Same(t, l, s.At(i), "attached grid lines survive a restore")
	}

	restored := s.Objects()[len(g.Lines()):]
	require.Len(t, restored, 4)
	assert.Equal(t, stroke, restored[0])
	assert.Equal(t, rect, restored[1])
	assert.Equal(t, circle, restored[2])
	assert.Equal(t, text, restored[3])
	assert.NotSame(t, rect, restored[1])
}

func TestRestoreRejectsUnknownKind(t *testing.T) {
	s := NewScene(White)
	s.Add(NewRect(0, 0, 1, 1, testStyle))

	err := s.Restore([]byte(`{"background":"#ffffff","objects":[{"type":"polygon","data":{}}]}`))
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, 1, s.Len(), "failed restore leaves the scene untouched")

	assert.Error(t, s.Restore([]byte("not json")))
}

func TestDeepCopy(t *testing.T) {
	s := NewScene(MustColor("#123456"))
	r := NewRect(0, 0, 10, 10, testStyle)
	s.Add(r)

	c := s.DeepCopy()
	require.Equal(t, 1, c.Len())
	assert.Equal(t, r.ID, c.At(0).Base().ID)
	assert.NotSame(t, r, c.At(0))

	r.Translate(5, 5)
	assert.Equal(t, 0.0, c.At(0).Bounds().X)
	assert.Equal(t, s.Background(), c.Background())
}

func TestColorText(t *testing.T) {
	c, err := ParseColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", c.String())

	c, err = ParseColor("00000000")
	require.NoError(t, err)
	assert.True(t, c.IsTransparent())
	assert.Equal(t, "#00000000", c.String())

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}

func TestRestoreKeepsObjectsBelowGrid(t *testing.T) {
	s := NewScene(White)
	g := NewGrid(s)
	g.Toggle()
	below := NewRect(0, 0, 10, 10, testStyle)
	above := NewRect(20, 20, 10, 10, testStyle)
	s.Add(below)
	s.Add(above)
	require.True(t, s.SendToBack(below))

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.NoError(t, s.Restore(snap))

	n := len(g.Lines())
	require.Equal(t, n+2, s.Len())
	assert.Equal(t, below.ID, s.At(0).Base().ID)
	for i, l := range g.Lines() {
		assert.Same(t, l, s.At(i+1))
	}
	assert.Equal(t, above.ID, s.At(n+1).Base().ID)

	again, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, snap, again)
}
