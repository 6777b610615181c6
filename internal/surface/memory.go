// Package surface provides a headless paint.Surface.
package surface

import (
	"errors"
	"fmt"

	"LocalPaint/internal/paint"
)

// ErrUnknownHandle is returned when deleting a handle that is not on the
// surface.
var ErrUnknownHandle = errors.New("unknown handle")

// Memory keeps visible primitives in creation order. The zero value is
// ready to use.
type Memory struct {
	next    paint.Handle
	shapes  map[paint.Handle]paint.Shape
	order   []paint.Handle
	created int
}

var _ paint.Surface = (*Memory)(nil)

// NewMemory returns an empty surface.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) add(s paint.Shape) paint.Handle {
	if m.shapes == nil {
		m.shapes = make(map[paint.Handle]paint.Shape)
	}
	m.next++
	m.shapes[m.next] = s
	m.order = append(m.order, m.next)
	m.created++
	return m.next
}

func (m *Memory) CreateLine(x1, y1, x2, y2 int, c paint.RGB, width int) (paint.Handle, error) {
	return m.add(paint.Line(paint.Pt(x1, y1), paint.Pt(x2, y2), c, width)), nil
}

func (m *Memory) CreateOval(x1, y1, x2, y2 int, fill, outline paint.RGB) (paint.Handle, error) {
	return m.add(paint.Oval(x1, y1, x2, y2, fill, outline)), nil
}

func (m *Memory) Delete(h paint.Handle) error {
	if _, ok := m.shapes[h]; !ok {
		return fmt.Errorf("delete %d: %w", h, ErrUnknownHandle)
	}
	delete(m.shapes, h)
	for i, o := range m.order {
		if o == h {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len is the number of visible primitives.
func (m *Memory) Len() int { return len(m.order) }

// Created counts every primitive ever drawn, including deleted ones.
func (m *Memory) Created() int { return m.created }

// Shape returns the primitive behind h, if it is visible.
func (m *Memory) Shape(h paint.Handle) (paint.Shape, bool) {
	s, ok := m.shapes[h]
	return s, ok
}

// Visible returns the visible primitives, oldest first.
func (m *Memory) Visible() []paint.Shape {
	out := make([]paint.Shape, 0, len(m.order))
	for _, h := range m.order {
		out = append(out, m.shapes[h])
	}
	return out
}

// Handles returns the visible handles, oldest first.
func (m *Memory) Handles() []paint.Handle {
	out := make([]paint.Handle, len(m.order))
	copy(out, m.order)
	return out
}
