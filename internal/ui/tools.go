package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/paint"
)

// Palette is the set of brush color swatches on the toolbar.
var Palette = []paint.RGB{
	paint.Black,
	paint.Red,
	paint.Green,
	paint.Blue,
	{R: 255, G: 255},
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    paint.RGB
	OnTapped func(paint.RGB)
}

func newColorSwatch(c paint.RGB, tapped func(paint.RGB)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.Color())
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// pickColor opens a color picker and hands the chosen color to set.
// Cancelling leaves everything as it was.
func pickColor(win fyne.Window, title string, set func(paint.RGB)) *dialog.ColorPickerDialog {
	d := dialog.NewColorPicker(title, "", func(c color.Color) {
		set(paint.FromColor(c))
	}, win)
	d.Advanced = true
	d.Show()
	return d
}

// NewToolbar builds the brush controls for board. Dialogs open on win.
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	p := board.Painter()
	status := func(format string, args ...any) {
		board.SetStatus(fmt.Sprintf(format, args...))
	}

	setMode := func(m paint.Mode) func() {
		return func() {
			p.SetMode(m)
			status("%s brush", m)
		}
	}
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), setMode(paint.Solid)),
		widget.NewToolbarAction(theme.MoreHorizontalIcon(), setMode(paint.Dotted)),
		widget.NewToolbarAction(theme.ColorChromaticIcon(), setMode(paint.Gradient)),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), board.Redo),
	)

	// --- Color Palette ---
	onColorTapped := func(c paint.RGB) {
		p.SetColor(c)
		status("Brush color %s", c)
	}
	colorBox := container.NewHBox()
	for _, c := range Palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	brushColor := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		pickColor(win, "Brush Color", onColorTapped)
	})
	gradientColor := widget.NewButton("Gradient Color", func() {
		pickColor(win, "Gradient Color", func(c paint.RGB) {
			p.SetGradientColor(c)
			status("Gradient color %s", c)
		})
	})
	background := widget.NewButton("Background", func() {
		pickColor(win, "Background Color", func(c paint.RGB) {
			board.SetBackground(c.Color())
		})
	})

	// --- Brush Width Slider ---
	widthSlider := widget.NewSlider(paint.MinWidth, paint.MaxWidth)
	widthSlider.Step = 1
	widthSlider.SetValue(float64(p.Brush().Width))
	widthSlider.OnChanged = func(val float64) {
		p.SetWidth(int(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	return container.NewHBox(
		widget.NewLabel("Brush:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		brushColor,
		gradientColor,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		background,
		layout.NewSpacer(),
	)
}

// AddShortcuts binds the undo and redo keyboard shortcuts of win to board.
func AddShortcuts(win fyne.Window, board *BoardWidget) {
	undo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redo := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	win.Canvas().AddShortcut(undo, func(fyne.Shortcut) { board.Undo() })
	win.Canvas().AddShortcut(redo, func(fyne.Shortcut) { board.Redo() })
}
