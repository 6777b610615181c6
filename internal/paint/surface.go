package paint

import "fmt"

// Handle identifies one primitive on a Surface.
type Handle uint64

// Surface is the drawing target. Primitives are immutable once created;
// the only way to change one is to delete it.
type Surface interface {
	CreateLine(x1, y1, x2, y2 int, color RGB, width int) (Handle, error)
	CreateOval(x1, y1, x2, y2 int, fill, outline RGB) (Handle, error)
	Delete(h Handle) error
}

// ShapeKind tells lines from ovals.
type ShapeKind string

const (
	KindLine ShapeKind = "line"
	KindOval ShapeKind = "oval"
)

// Shape is the full geometry and style of one primitive, enough to draw
// it again on any Surface. For ovals, X1,Y1-X2,Y2 is the bounding box,
// Color the fill and Outline the outline.
type Shape struct {
	Kind    ShapeKind `json:"kind"`
	X1      int       `json:"x1"`
	Y1      int       `json:"y1"`
	X2      int       `json:"x2"`
	Y2      int       `json:"y2"`
	Color   RGB       `json:"color"`
	Outline RGB       `json:"outline"`
	Width   int       `json:"width,omitempty"`
}

// Line describes a line primitive.
func Line(from, to Point, c RGB, width int) Shape {
	return Shape{Kind: KindLine, X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y, Color: c, Width: width}
}

// Oval describes an oval primitive inside the box (x1,y1)-(x2,y2).
func Oval(x1, y1, x2, y2 int, fill, outline RGB) Shape {
	return Shape{Kind: KindOval, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: fill, Outline: outline}
}

// Draw creates s on surf.
func (s Shape) Draw(surf Surface) (Handle, error) {
	switch s.Kind {
	case KindLine:
		return surf.CreateLine(s.X1, s.Y1, s.X2, s.Y2, s.Color, s.Width)
	case KindOval:
		return surf.CreateOval(s.X1, s.Y1, s.X2, s.Y2, s.Color, s.Outline)
	}
	return 0, fmt.Errorf("unknown shape kind %q", s.Kind)
}
