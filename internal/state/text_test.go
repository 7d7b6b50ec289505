package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longText = "the quick brown fox jumps over the lazy dog again and again"

func TestWrappedLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, NewTextBox(0, 0, 200, 20, "a\n\nb", Black).WrappedLines())
	assert.Equal(t, []string{""}, NewTextBox(0, 0, 200, 20, "", Black).WrappedLines())

	word := "supercalifragilisticexpialidocious"
	assert.Equal(t, []string{word}, NewTextBox(0, 0, 20, 20, word, Black).WrappedLines())

	tb := NewTextBox(0, 0, 200, 20, longText, Black)
	lines := tb.WrappedLines()
	require.Greater(t, len(lines), 1)
	assert.Equal(t, longText, strings.Join(lines, " "))

	tb.Width = 5000
	assert.Equal(t, []string{longText}, tb.WrappedLines(), "layout follows width changes")
	tb.Text = "x"
	assert.Equal(t, []string{"x"}, tb.WrappedLines())
}

func TestWrappedTextIsHittable(t *testing.T) {
	s := NewScene(White)
	tb := NewTextBox(100, 100, 200, 20, longText, Black)
	s.Add(tb)

	n := tb.Lines()
	require.Greater(t, n, 1)
	assert.InDelta(t, float64(n)*20*LineHeight, tb.Bounds().H, 1e-9)

	lastLine := Point{X: 110, Y: 100 + (float64(n)-0.5)*20*LineHeight}
	assert.Same(t, tb, s.HitTest(lastLine))
	assert.Len(t, s.ObjectsIn(Bounds{X: 90, Y: 90, W: 300, H: float64(n)*30 + 20}), 1)
}
