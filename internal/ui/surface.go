package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"LocalPaint/internal/paint"
	"LocalPaint/internal/surface"
)

// CanvasSurface is a paint.Surface made of Fyne canvas objects placed in
// a container without layout, so surface coordinates are container
// coordinates.
type CanvasSurface struct {
	content *fyne.Container
	objects map[paint.Handle]fyne.CanvasObject
	next    paint.Handle
}

var _ paint.Surface = (*CanvasSurface)(nil)

func NewCanvasSurface() *CanvasSurface {
	return &CanvasSurface{
		content: container.NewWithoutLayout(),
		objects: make(map[paint.Handle]fyne.CanvasObject),
	}
}

// Content is the container holding the drawn objects.
func (s *CanvasSurface) Content() *fyne.Container { return s.content }

func (s *CanvasSurface) add(o fyne.CanvasObject) paint.Handle {
	s.next++
	s.objects[s.next] = o
	s.content.Add(o)
	return s.next
}

func (s *CanvasSurface) CreateLine(x1, y1, x2, y2 int, c paint.RGB, width int) (paint.Handle, error) {
	line := canvas.NewLine(c.Color())
	line.StrokeWidth = float32(width)
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return s.add(line), nil
}

func (s *CanvasSurface) CreateOval(x1, y1, x2, y2 int, fill, outline paint.RGB) (paint.Handle, error) {
	oval := canvas.NewCircle(fill.Color())
	oval.StrokeColor = outline.Color()
	oval.StrokeWidth = 1
	oval.Position1 = fyne.NewPos(float32(x1), float32(y1))
	oval.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return s.add(oval), nil
}

func (s *CanvasSurface) Delete(h paint.Handle) error {
	o, ok := s.objects[h]
	if !ok {
		return fmt.Errorf("delete %d: %w", h, surface.ErrUnknownHandle)
	}
	delete(s.objects, h)
	s.content.Remove(o)
	return nil
}

// Object returns the canvas object drawn for h.
func (s *CanvasSurface) Object(h paint.Handle) (fyne.CanvasObject, bool) {
	o, ok := s.objects[h]
	return o, ok
}

// Len is the number of visible primitives.
func (s *CanvasSurface) Len() int { return len(s.objects) }
