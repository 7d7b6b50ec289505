package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStyle = Style{Stroke: Black, Fill: Transparent, StrokeWidth: 2}

func TestSceneAddRemoveOrder(t *testing.T) {
	s := NewScene(White)
	a := NewRect(0, 0, 10, 10, testStyle)
	b := NewEllipse(20, 20, 5, testStyle)
	c := NewStroke(Point{1, 1}, testStyle)

	s.Add(a)
	s.Add(b)
	s.Add(c)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []Object{a, b, c}, s.Objects())

	assert.True(t, s.Remove(b))
	assert.False(t, s.Remove(b))
	assert.Equal(t, []Object{a, c}, s.Objects())
}

func TestSceneZOrder(t *testing.T) {
	s := NewScene(White)
	a := NewRect(0, 0, 10, 10, testStyle)
	b := NewRect(5, 5, 10, 10, testStyle)
	c := NewRect(9, 9, 10, 10, testStyle)
	s.Add(a)
	s.Add(b)
	s.Add(c)
	s.SetActive(a)

	require.True(t, s.BringToFront(a))
	assert.Equal(t, 2, s.IndexOf(a))
	assert.Equal(t, 3, s.Len())
	assert.Same(t, a, s.Active(), "reordering keeps the selection")

	require.True(t, s.SendToBack(a))
	assert.Equal(t, 0, s.IndexOf(a))
	assert.Equal(t, 3, s.Len())

	assert.False(t, s.BringToFront(NewRect(0, 0, 1, 1, testStyle)))
}

func TestSceneSelection(t *testing.T) {
	s := NewScene(White)
	a := NewRect(0, 0, 10, 10, testStyle)
	b := NewRect(50, 50, 10, 10, testStyle)
	line := NewGridLine(Point{0, 0}, Point{0, 100}, GridColor)
	stray := NewRect(0, 0, 1, 1, testStyle)
	s.Add(line)
	s.Add(a)
	s.Add(b)

	s.SetActive(a)
	assert.Same(t, a, s.Active())
	assert.False(t, s.IsAggregate())

	s.SetActive(a, b, line, stray, nil)
	assert.Nil(t, s.Active(), "Active is nil for aggregate selections")
	assert.True(t, s.IsAggregate())
	assert.Equal(t, []Object{a, b}, s.Selection())

	s.ToggleActive(a)
	assert.Same(t, b, s.Active())
	s.ToggleActive(a)
	assert.Equal(t, []Object{a, b}, s.Selection())

	s.Remove(b)
	assert.Same(t, a, s.Active())

	s.DiscardActive()
	assert.Nil(t, s.Active())
	assert.Empty(t, s.Selection())
}

func TestSceneHitTest(t *testing.T) {
	s := NewScene(White)
	back := NewRect(0, 0, 100, 100, testStyle)
	front := NewRect(50, 50, 100, 100, testStyle)
	s.Add(NewGridLine(Point{60, 0}, Point{60, 600}, GridColor))
	s.Add(back)
	s.Add(front)

	assert.Same(t, front, s.HitTest(Point{60, 60}))
	assert.Same(t, back, s.HitTest(Point{10, 10}))
	assert.Nil(t, s.HitTest(Point{60, 300}), "grid lines are not hit")
	assert.Nil(t, s.HitTest(Point{500, 500}))
}

func TestSceneObjectsIn(t *testing.T) {
	s := NewScene(White)
	inside := NewRect(10, 10, 20, 20, testStyle)
	partial := NewRect(90, 90, 20, 20, testStyle)
	s.Add(inside)
	s.Add(partial)
	s.Add(NewGridLine(Point{0, 50}, Point{60, 50}, GridColor))

	assert.Equal(t, []Object{inside}, s.ObjectsIn(Bounds{0, 0, 100, 100}))
}

func TestSceneClear(t *testing.T) {
	s := NewScene(White)
	r := NewRect(0, 0, 10, 10, testStyle)
	s.Add(r)
	s.SetActive(r)

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Active())
}
