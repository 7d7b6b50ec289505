package state

import (
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"SketchBoard/internal/logging"
)

var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Face returns the Go Regular face at size. Text boxes are laid out with it
// and the PNG exporter draws with it.
func Face(size float64) (text.Face, error) {
	src, err := fontSource()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

type textLayout struct {
	text  string
	width float64
	size  float64
	lines []string
}

// WrappedLines returns the lines the text is drawn as: hard breaks first,
// then word wrapping at Width. A word wider than the box keeps its own line.
func (t *TextBox) WrappedLines() []string {
	l := &t.layout
	if l.lines != nil && l.text == t.Text && l.width == t.Width && l.size == t.FontSize {
		return l.lines
	}

	var lines []string
	face, err := Face(t.FontSize)
	if err != nil {
		logging.Logger().Warn("text layout without font", "err", err)
		lines = strings.Split(t.Text, "\n")
	} else {
		for _, r := range text.WrapText(t.Text, face, t.Width, text.WrapWord) {
			lines = append(lines, strings.TrimRight(r.Text, " "))
		}
	}
	*l = textLayout{text: t.Text, width: t.Width, size: t.FontSize, lines: lines}
	return lines
}
