package paint

import (
	"fmt"
	"math"
)

// Point is a pointer position in surface coordinates.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// DotSpacing is the minimum distance between two dots of a dotted stroke.
const DotSpacing = 10

// dotRadius is the radius of a dotted-stroke dot.
const dotRadius = 1

// anchor is a point that may not be set yet.
type anchor struct {
	pt  Point
	set bool
}

func (a *anchor) reset()         { *a = anchor{} }
func (a *anchor) moveTo(p Point) { *a = anchor{pt: p, set: true} }

// Painter turns pointer motion into primitives on a Surface according to
// its brush, and records every primitive for undo. It is not safe for
// concurrent use; all calls are expected on the UI thread.
type Painter struct {
	brush   BrushConfig
	surface Surface
	history *History

	// last point a solid or gradient primitive ended at
	stroke anchor
	// last dot of a dotted stroke
	lastDot anchor
}

// NewPainter returns a painter drawing on s with the default brush.
func NewPainter(s Surface) *Painter {
	return &Painter{
		brush:   DefaultBrush(),
		surface: s,
		history: NewHistory(s),
	}
}

// Brush returns the painter's brush for mutation.
func (p *Painter) Brush() *BrushConfig { return &p.brush }

// History returns the painter's undo/redo history.
func (p *Painter) History() *History { return p.history }

func (p *Painter) SetColor(c RGB)         { p.brush.SetColor(c) }
func (p *Painter) SetWidth(w int)         { p.brush.SetWidth(w) }
func (p *Painter) SetMode(m Mode)         { p.brush.SetMode(m) }
func (p *Painter) SetGradientColor(c RGB) { p.brush.SetGradientColor(c) }

// Undo removes the most recent primitive.
func (p *Painter) Undo() error { return p.history.Undo() }

// Redo restores the most recently undone primitive.
func (p *Painter) Redo() error { return p.history.Redo() }

// PointerDown starts a new stroke at pt. Nothing is drawn; every anchor
// is reset so no stroke inherits spacing from the previous one.
func (p *Painter) PointerDown(pt Point) {
	p.stroke.moveTo(pt)
	p.lastDot.reset()
}

// PointerMove extends the current stroke to pt using the brush mode in
// effect right now. Motion without a preceding PointerDown only sets the
// starting point.
func (p *Painter) PointerMove(pt Point) error {
	switch p.brush.Mode {
	case Dotted:
		return p.dotted(pt)
	case Gradient:
		return p.gradient(pt)
	default:
		return p.solid(pt)
	}
}

func (p *Painter) solid(pt Point) error {
	if !p.stroke.set {
		p.stroke.moveTo(pt)
		return nil
	}
	if err := p.emit(Line(p.stroke.pt, pt, p.brush.Color, p.brush.Width)); err != nil {
		return err
	}
	p.stroke.moveTo(pt)
	return nil
}

func (p *Painter) dotted(pt Point) error {
	// The continuous anchor follows the pointer so switching to solid or
	// gradient mid-stroke continues from here.
	p.stroke.moveTo(pt)
	if !p.lastDot.set {
		p.lastDot.moveTo(pt)
		return nil
	}
	if p.lastDot.pt.Dist(pt) < DotSpacing {
		return nil
	}
	dot := Oval(pt.X-dotRadius, pt.Y-dotRadius, pt.X+dotRadius, pt.Y+dotRadius, InkColor, InkColor)
	if err := p.emit(dot); err != nil {
		return err
	}
	p.lastDot.moveTo(pt)
	return nil
}

func (p *Painter) gradient(pt Point) error {
	if !p.stroke.set {
		p.stroke.moveTo(pt)
		return nil
	}
	from := p.stroke.pt
	steps := int(math.Round(from.Dist(pt)))
	if steps < 1 {
		steps = 1
	}
	dx, dy := pt.X-from.X, pt.Y-from.Y
	for i := 0; i < steps; i++ {
		a := Pt(from.X+floorDiv(dx*i, steps), from.Y+floorDiv(dy*i, steps))
		b := Pt(from.X+floorDiv(dx*(i+1), steps), from.Y+floorDiv(dy*(i+1), steps))
		c := Lerp(p.brush.Color, p.brush.GradientColor, i, steps)
		if err := p.emit(Line(a, b, c, p.brush.Width)); err != nil {
			return err
		}
	}
	p.stroke.moveTo(pt)
	return nil
}

// emit draws s and records it.
func (p *Painter) emit(s Shape) error {
	h, err := s.Draw(p.surface)
	if err != nil {
		return fmt.Errorf("draw %s: %w", s.Kind, err)
	}
	p.history.Record(h, s)
	return nil
}
