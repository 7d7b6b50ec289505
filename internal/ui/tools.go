package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/board"
	"SketchBoard/internal/state"
	"SketchBoard/internal/tools"
)

// palette is offered next to the stroke picker for one-click colors.
var palette = []state.Color{
	state.Black,
	state.MustColor("#ff0000"),
	state.MustColor("#00aa00"),
	state.MustColor("#0000ff"),
	state.MustColor("#ffcc00"),
}

var toolNames = []string{
	tools.Select.String(),
	tools.Draw.String(),
	tools.Rect.String(),
	tools.Circle.String(),
}

// colorSwatch shows a color and reports taps.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)

	rect *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

// SetColor changes the displayed color.
func (s *colorSwatch) SetColor(c color.Color) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the controls that mirror board state so they can be
// re-synced after undo, tool switches and config reloads.
type Toolbar struct {
	board  *board.Board
	win    fyne.Window
	export *exporter

	tools   *widget.RadioGroup
	grid    *widget.Check
	width   *widget.Slider
	stroke  *colorSwatch
	fill    *colorSwatch
	bg      *colorSwatch
	syncing bool

	content fyne.CanvasObject
}

func NewToolbar(win fyne.Window, b *board.Board, ex *exporter) *Toolbar {
	t := &Toolbar{board: b, win: win, export: ex}

	t.tools = widget.NewRadioGroup(toolNames, func(name string) {
		if t.syncing {
			return
		}
		t.board.SetTool(toolByName(name))
	})
	t.tools.Horizontal = true
	t.tools.Required = true

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), t.insertText),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.editText),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { t.board.Undo() }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { t.board.Redo() }),
		widget.NewToolbarAction(theme.DeleteIcon(), t.confirmClear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentCopyIcon(), t.board.Duplicate),
		widget.NewToolbarAction(theme.MoveUpIcon(), t.board.BringToFront),
		widget.NewToolbarAction(theme.MoveDownIcon(), t.board.SendToBack),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), t.board.Delete),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomFitIcon(), t.board.ResetView),
		widget.NewToolbarAction(theme.DownloadIcon(), t.export.savePNG),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.export.savePDF),
		widget.NewToolbarAction(theme.FileImageIcon(), t.export.copyPNG),
	)

	t.grid = widget.NewCheck("Grid", func(on bool) {
		if t.syncing || on == t.board.Grid().Enabled() {
			return
		}
		t.board.ToggleGrid()
	})

	style := b.Style()
	t.stroke = newColorSwatch(style.Stroke, func(c color.Color) {
		t.pickColor("Stroke color", c, t.board.SetStrokeColor)
	})
	t.fill = newColorSwatch(style.Fill, func(c color.Color) {
		t.pickColor("Fill color", c, t.board.SetFillColor)
	})
	t.bg = newColorSwatch(b.Scene().Background(), func(c color.Color) {
		t.pickColor("Background color", c, t.board.SetBackground)
	})

	quick := container.NewHBox()
	for _, c := range palette {
		quick.Add(newColorSwatch(c, func(c color.Color) {
			t.board.SetStrokeColor(state.FromColor(c))
			t.Sync()
		}))
	}

	t.width = widget.NewSlider(1.0, 50.0)
	t.width.SetValue(style.StrokeWidth)
	t.width.OnChangeEnded = func(v float64) {
		if t.syncing {
			return
		}
		t.board.SetStrokeWidth(v)
	}
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.width)

	t.content = container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Tool:"),
			t.tools,
			widget.NewSeparator(),
			actions,
			t.grid,
			layout.NewSpacer(),
		),
		container.NewHBox(
			widget.NewLabel("Stroke:"), t.stroke, quick,
			widget.NewSeparator(),
			widget.NewLabel("Fill:"), t.fill,
			widget.NewSeparator(),
			widget.NewLabel("Background:"), t.bg,
			widget.NewSeparator(),
			widget.NewLabel("Size:"), widthBox,
			layout.NewSpacer(),
		),
	)

	b.Tools().OnToolChange = func(tools.Kind) { t.Sync() }
	t.Sync()
	return t
}

func (t *Toolbar) Content() fyne.CanvasObject { return t.content }

// Sync copies board state into the controls without firing their callbacks.
func (t *Toolbar) Sync() {
	t.syncing = true
	defer func() { t.syncing = false }()

	t.tools.SetSelected(t.board.Tool().String())
	t.grid.SetChecked(t.board.Grid().Enabled())
	style := t.board.Style()
	t.width.SetValue(style.StrokeWidth)
	t.stroke.SetColor(style.Stroke)
	t.fill.SetColor(style.Fill)
	t.bg.SetColor(t.board.Scene().Background())
}

func (t *Toolbar) pickColor(title string, current color.Color, apply func(state.Color)) {
	picker := dialog.NewColorPicker(title, "", func(c color.Color) {
		apply(state.FromColor(c))
		t.Sync()
	}, t.win)
	picker.Advanced = true
	picker.SetColor(current)
	picker.Show()
}

func (t *Toolbar) insertText() {
	entry := widget.NewMultiLineEntry()
	entry.SetText(t.board.Config().Text.Default)
	dialog.ShowForm("Insert text", "Insert", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Text", entry)},
		func(ok bool) {
			if ok {
				t.board.InsertText(entry.Text)
			}
		}, t.win)
}

func (t *Toolbar) editText() {
	tb, ok := t.board.Scene().Active().(*state.TextBox)
	if !ok {
		return
	}
	entry := widget.NewMultiLineEntry()
	entry.SetText(tb.Text)
	dialog.ShowForm("Edit text", "Apply", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Text", entry)},
		func(ok bool) {
			if ok {
				t.board.SetText(entry.Text)
			}
		}, t.win)
}

func (t *Toolbar) confirmClear() {
	dialog.ShowConfirm("Clear board", "Remove every object?", func(ok bool) {
		if ok {
			t.board.ClearAll()
			t.Sync()
		}
	}, t.win)
}

func toolByName(name string) tools.Kind {
	for i, n := range toolNames {
		if n == name {
			return tools.Kind(i)
		}
	}
	return tools.Select
}
