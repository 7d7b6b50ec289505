// Package export renders a scene to PNG or PDF.
package export

import (
	"context"
	"errors"
	"fmt"

	"SketchBoard/internal/state"
)

// ErrCanceled is returned when the context ends before an export finished.
var ErrCanceled = errors.New("export canceled")

// Document is an immutable copy of a scene taken for export. Objects are
// rendered in order, grid lines included.
type Document struct {
	Width      int
	Height     int
	Background state.Color
	Objects    []state.Object
}

// DocumentOf copies the scene so it can be rendered on another goroutine
// while the user keeps editing.
func DocumentOf(s *state.Scene) Document {
	c := s.DeepCopy()
	return Document{
		Width:      state.CanvasWidth,
		Height:     state.CanvasHeight,
		Background: c.Background(),
		Objects:    c.Objects(),
	}
}

func checkCtx(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w during %s: %w", ErrCanceled, stage, err)
	}
	return nil
}
