package export

import (
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"SketchBoard/internal/state"
)

// WritePDF writes the document as a single landscape page, one point per
// scene unit.
func WritePDF(ctx context.Context, doc Document, w io.Writer) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(doc.Width), Ht: float64(doc.Height)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	setFill(p, doc.Background)
	p.Rect(0, 0, float64(doc.Width), float64(doc.Height), "F")

	for i, o := range doc.Objects {
		if i%64 == 0 {
			if err := checkCtx(ctx, "pdf"); err != nil {
				return err
			}
		}
		pdfObject(p, o)
	}
	if err := p.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func pdfObject(p *gofpdf.Fpdf, o state.Object) {
	a := o.Base()
	switch v := o.(type) {
	case *state.GridLine:
		setDraw(p, a)
		p.Line(v.From.X, v.From.Y, v.To.X, v.To.Y)
	case *state.Stroke:
		setDraw(p, a)
		if len(v.Points) == 1 {
			setFill(p, a.Stroke)
			p.Circle(v.Points[0].X, v.Points[0].Y, a.StrokeWidth/2, "F")
			break
		}
		for i := 1; i < len(v.Points); i++ {
			p.Line(v.Points[i-1].X, v.Points[i-1].Y, v.Points[i].X, v.Points[i].Y)
		}
	case *state.Rect:
		setDraw(p, a)
		setFill(p, a.Fill)
		p.Rect(v.Left, v.Top, v.Width, v.Height, shapeStyle(a))
	case *state.Ellipse:
		setDraw(p, a)
		setFill(p, a.Fill)
		c := v.Center()
		p.Circle(c.X, c.Y, v.Radius, shapeStyle(a))
	case *state.TextBox:
		p.SetFont("Helvetica", "", v.FontSize)
		p.SetTextColor(int(v.Fill.R), int(v.Fill.G), int(v.Fill.B))
		p.SetAlpha(float64(v.Fill.A)/255, "Normal")
		for i, line := range v.WrappedLines() {
			p.Text(v.Left, v.Top+v.FontSize+float64(i)*v.FontSize*state.LineHeight, line)
		}
	}
	p.SetAlpha(1, "Normal")
}

// shapeStyle picks the gofpdf style string: D draws the outline, F fills.
func shapeStyle(a *state.Attrs) string {
	style := ""
	if !a.Fill.IsTransparent() {
		style += "F"
	}
	if !a.Stroke.IsTransparent() && a.StrokeWidth > 0 {
		style += "D"
	}
	if style == "" {
		return "D"
	}
	return style
}

func setDraw(p *gofpdf.Fpdf, a *state.Attrs) {
	p.SetDrawColor(int(a.Stroke.R), int(a.Stroke.G), int(a.Stroke.B))
	p.SetLineWidth(a.StrokeWidth)
}

func setFill(p *gofpdf.Fpdf, c state.Color) {
	p.SetFillColor(int(c.R), int(c.G), int(c.B))
}
