package ui

import (
	"context"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"SketchBoard/internal/board"
)

// exporter runs exports off the UI goroutine and reports back on it.
type exporter struct {
	ctx    context.Context
	board  *board.Board
	win    fyne.Window
	status func(string)
}

func (e *exporter) savePNG() {
	e.save(e.board.Config().Export.FileName, e.board.ExportPNG)
}

func (e *exporter) savePDF() {
	e.save(e.board.Config().Export.PDFFileName, e.board.ExportPDF)
}

func (e *exporter) save(name string, run func(context.Context, io.WriteCloser) <-chan error) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, e.win)
			return
		}
		if wc == nil {
			return
		}
		target := wc.URI().Name()
		e.report("Exported "+target, run(e.ctx, wc))
	}, e.win)
	d.SetFileName(name)
	d.Show()
}

func (e *exporter) copyPNG() {
	e.report("Copied to clipboard", e.board.CopyPNG(e.ctx))
}

// report waits for the export outcome and shows it on the UI goroutine.
func (e *exporter) report(ok string, done <-chan error) {
	go func() {
		err := <-done
		fyne.Do(func() {
			if e.ctx.Err() != nil {
				return
			}
			if err != nil {
				dialog.ShowError(err, e.win)
				return
			}
			if e.status != nil {
				e.status(ok)
			}
		})
	}()
}
