package board

import (
	"context"
	"errors"
	"fmt"
	"io"

	"SketchBoard/internal/export"
	"SketchBoard/internal/logging"
)

type writeFunc func(ctx context.Context, doc export.Document, w io.Writer) error

// ExportPNG writes the scene as PNG to w and closes it. The scene is copied
// before ExportPNG returns; the rest runs in the background. The channel
// yields the outcome and is then closed.
func (b *Board) ExportPNG(ctx context.Context, w io.WriteCloser) <-chan error {
	return b.exportTo(ctx, "png", export.RasterizePNG, w)
}

// ExportPDF is ExportPNG for a single page PDF.
func (b *Board) ExportPDF(ctx context.Context, w io.WriteCloser) <-chan error {
	return b.exportTo(ctx, "pdf", export.WritePDF, w)
}

// CopyPNG puts a PNG of the scene on the system clipboard.
func (b *Board) CopyPNG(ctx context.Context) <-chan error {
	b.tools.Cancel()
	doc := export.DocumentOf(b.scene)
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := export.CopyPNG(ctx, doc)
		logResult("clipboard", len(doc.Objects), err)
		done <- err
	}()
	return done
}

func (b *Board) exportTo(ctx context.Context, format string, write writeFunc, w io.WriteCloser) <-chan error {
	b.tools.Cancel()
	doc := export.DocumentOf(b.scene)
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := write(ctx, doc, w)
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s output: %w", format, cerr))
		}
		logResult(format, len(doc.Objects), err)
		done <- err
	}()
	return done
}

func logResult(format string, objects int, err error) {
	if err != nil {
		logging.Logger().Warn("export failed", "format", format, "err", err)
		return
	}
	logging.Logger().Info("export done", "format", format, "objects", objects)
}
