package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/paint"
)

// BoardWidget shows a CanvasSurface over a background and feeds primary
// button drags to a painter. Without a painter it is a read-only view.
type BoardWidget struct {
	widget.BaseWidget
	painter    *paint.Painter
	surface    *CanvasSurface
	background *canvas.Rectangle
	statusBar  *widget.Label
	drawing    bool

	// OnError is called after a surface failure has been logged.
	OnError func(error)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget returns a board drawing with p onto s. p may be nil for
// a view that only displays s.
func NewBoardWidget(p *paint.Painter, s *CanvasSurface, bg paint.RGB) *BoardWidget {
	b := &BoardWidget{
		painter:    p,
		surface:    s,
		background: canvas.NewRectangle(bg.Color()),
		statusBar:  widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Painter returns the board's painter, nil for a read-only board.
func (b *BoardWidget) Painter() *paint.Painter { return b.painter }

// ReadOnly reports whether the board ignores pointer input.
func (b *BoardWidget) ReadOnly() bool { return b.painter == nil }

// SetBackground repaints the area behind the strokes.
func (b *BoardWidget) SetBackground(c color.Color) {
	b.background.FillColor = c
	b.background.Refresh()
}

// Background returns the current background color.
func (b *BoardWidget) Background() paint.RGB {
	return paint.FromColor(b.background.FillColor)
}

// SetStatus updates the status bar. Safe to call from any goroutine.
func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

// StatusBar is the label SetStatus writes to.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

// Undo removes the most recent primitive.
func (b *BoardWidget) Undo() {
	if b.painter == nil {
		return
	}
	if err := b.painter.Undo(); err != nil {
		b.fail(err)
	}
}

// Redo restores the most recently undone primitive.
func (b *BoardWidget) Redo() {
	if b.painter == nil {
		return
	}
	if err := b.painter.Redo(); err != nil {
		b.fail(err)
	}
}

func (b *BoardWidget) fail(err error) {
	paint.Logger().Error("ui: drawing failed", "err", err)
	b.SetStatus("Drawing failed: " + err.Error())
	if b.OnError != nil {
		b.OnError(err)
	}
}

func toPoint(p fyne.Position) paint.Point {
	return paint.Pt(int(p.X), int(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if b.painter == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.drawing = true
	b.painter.PointerDown(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.drawing = false
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.drawing {
		return
	}
	if err := b.painter.PointerMove(toPoint(e.Position)); err != nil {
		b.fail(err)
	}
}

func (b *BoardWidget) DragEnd() {
	b.drawing = false
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.background, r.board.surface.Content()}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.background.Resize(size)
	r.board.surface.Content().Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.background.Refresh()
	r.board.surface.Content().Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
