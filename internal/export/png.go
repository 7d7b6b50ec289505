package export

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"SketchBoard/internal/logging"
	"SketchBoard/internal/state"
)

// Rasterize draws the document onto a new gg context. The caller owns the
// context and must Close it.
func Rasterize(ctx context.Context, doc Document) (*gg.Context, error) {
	dc := gg.NewContext(doc.Width, doc.Height)
	dc.SetColor(doc.Background)
	dc.DrawRectangle(0, 0, float64(doc.Width), float64(doc.Height))
	if err := dc.Fill(); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("fill background: %w", err)
	}

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for i, o := range doc.Objects {
		if i%64 == 0 {
			if err := checkCtx(ctx, "rasterize"); err != nil {
				_ = dc.Close()
				return nil, err
			}
		}
		if err := drawObject(dc, o); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("draw %s %s: %w", o.Kind(), o.Base().ID, err)
		}
	}
	return dc, nil
}

func drawObject(dc *gg.Context, o state.Object) error {
	a := o.Base()
	switch v := o.(type) {
	case *state.GridLine:
		dc.DrawLine(v.From.X, v.From.Y, v.To.X, v.To.Y)
		return stroke(dc, a)
	case *state.Stroke:
		if len(v.Points) == 1 {
			p := v.Points[0]
			dc.DrawCircle(p.X, p.Y, v.StrokeWidth/2)
			dc.SetColor(v.Stroke)
			return dc.Fill()
		}
		for i, p := range v.Points {
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
				continue
			}
			dc.LineTo(p.X, p.Y)
		}
		return stroke(dc, a)
	case *state.Rect:
		dc.DrawRectangle(v.Left, v.Top, v.Width, v.Height)
		return fillAndStroke(dc, a)
	case *state.Ellipse:
		c := v.Center()
		dc.DrawCircle(c.X, c.Y, v.Radius)
		return fillAndStroke(dc, a)
	case *state.TextBox:
		return drawText(dc, v)
	}
	return fmt.Errorf("%w: %q", state.ErrUnknownKind, o.Kind())
}

func stroke(dc *gg.Context, a *state.Attrs) error {
	if a.Stroke.IsTransparent() || a.StrokeWidth <= 0 {
		dc.ClearPath()
		return nil
	}
	dc.SetColor(a.Stroke)
	dc.SetLineWidth(a.StrokeWidth)
	return dc.Stroke()
}

func fillAndStroke(dc *gg.Context, a *state.Attrs) error {
	if !a.Fill.IsTransparent() {
		dc.SetColor(a.Fill)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
	}
	return stroke(dc, a)
}

func drawText(dc *gg.Context, t *state.TextBox) error {
	face, err := state.Face(t.FontSize)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	dc.SetFont(face)
	dc.SetColor(t.Fill)

	lineH := t.FontSize * state.LineHeight
	for i, line := range t.WrappedLines() {
		dc.DrawString(line, t.Left, t.Top+t.FontSize+float64(i)*lineH)
	}
	return nil
}

// RasterizePNG rasterizes the document and writes it as PNG.
func RasterizePNG(ctx context.Context, doc Document, w io.Writer) error {
	dc, err := Rasterize(ctx, doc)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := checkCtx(ctx, "encode"); err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	logging.Logger().Debug("png encoded", "objects", len(doc.Objects))
	return nil
}

// EncodePNG returns the PNG bytes of the document.
func EncodePNG(ctx context.Context, doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := RasterizePNG(ctx, doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
