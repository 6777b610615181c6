package paint_test

import (
	"errors"
	"testing"

	"LocalPaint/internal/paint"
	"LocalPaint/internal/surface"
)

func newPainter() (*paint.Painter, *surface.Memory) {
	mem := surface.NewMemory()
	return paint.NewPainter(mem), mem
}

func TestSolidStroke_EndToEnd(t *testing.T) {
	p, mem := newPainter()
	p.SetColor(paint.Red)
	p.SetWidth(3)

	p.PointerDown(paint.Pt(0, 0))
	if mem.Len() != 0 {
		t.Fatalf("pointer down drew %d primitives, want 0", mem.Len())
	}
	if err := p.PointerMove(paint.Pt(100, 0)); err != nil {
		t.Fatalf("PointerMove: %v", err)
	}

	want := paint.Shape{Kind: paint.KindLine, X1: 0, Y1: 0, X2: 100, Y2: 0, Color: paint.Red, Width: 3}
	got := mem.Visible()
	if len(got) != 1 || got[0] != want {
		t.Fatalf("visible = %+v, want [%+v]", got, want)
	}
	entries := p.History().Entries()
	if len(entries) != 1 || entries[0].Shape != want {
		t.Fatalf("history = %+v, want one entry for %+v", entries, want)
	}
}

func TestSolidStroke_OnePrimitivePerMove(t *testing.T) {
	p, mem := newPainter()
	p.PointerDown(paint.Pt(0, 0))
	pts := []paint.Point{{1, 0}, {2, 0}, {2, 0}, {50, 50}}
	for _, pt := range pts {
		if err := p.PointerMove(pt); err != nil {
			t.Fatal(err)
		}
	}
	if mem.Len() != len(pts) {
		t.Fatalf("got %d primitives, want %d", mem.Len(), len(pts))
	}
	last := mem.Visible()[3]
	if last.X1 != 2 || last.Y1 != 0 || last.X2 != 50 || last.Y2 != 50 {
		t.Errorf("last segment = %+v, want (2,0)-(50,50)", last)
	}
}

func TestMoveWithoutPointerDown(t *testing.T) {
	for _, mode := range []paint.Mode{paint.Solid, paint.Dotted, paint.Gradient} {
		t.Run(mode.String(), func(t *testing.T) {
			p, mem := newPainter()
			p.SetMode(mode)
			if err := p.PointerMove(paint.Pt(40, 40)); err != nil {
				t.Fatal(err)
			}
			if mem.Len() != 0 {
				t.Errorf("first move drew %d primitives, want 0", mem.Len())
			}
		})
	}
}

func TestDottedStroke_Spacing(t *testing.T) {
	tests := []struct {
		name   string
		length int
		step   int
		want   int
	}{
		{"unit steps", 100, 1, 10},
		{"steps of 3", 100, 3, 8},
		{"steps of 10", 95, 10, 9},
		{"shorter than spacing", 9, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mem := newPainter()
			p.SetMode(paint.Dotted)
			p.PointerDown(paint.Pt(0, 0))
			for x := 0; x <= tt.length; x += tt.step {
				if err := p.PointerMove(paint.Pt(x, 0)); err != nil {
					t.Fatal(err)
				}
			}
			dots := mem.Visible()
			if len(dots) != tt.want {
				t.Fatalf("got %d dots, want %d", len(dots), tt.want)
			}
			prev := 0
			for _, d := range dots {
				cx := (d.X1 + d.X2) / 2
				if cx-prev < paint.DotSpacing {
					t.Errorf("dot at %d is %d from previous, want >= %d", cx, cx-prev, paint.DotSpacing)
				}
				prev = cx
			}
		})
	}
}

func TestDottedStroke_IgnoresBrushColor(t *testing.T) {
	p, mem := newPainter()
	p.SetMode(paint.Dotted)
	p.SetColor(paint.Red)
	p.PointerDown(paint.Pt(0, 0))
	p.PointerMove(paint.Pt(0, 0))
	p.PointerMove(paint.Pt(30, 40))

	got := mem.Visible()
	want := paint.Oval(29, 39, 31, 41, paint.InkColor, paint.InkColor)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("visible = %+v, want [%+v]", got, want)
	}
}

func TestDottedStroke_ResetsOnPointerDown(t *testing.T) {
	p, mem := newPainter()
	p.SetMode(paint.Dotted)
	p.PointerDown(paint.Pt(0, 0))
	p.PointerMove(paint.Pt(0, 0))

	// A new stroke far away must not dot on its first move.
	p.PointerDown(paint.Pt(500, 500))
	p.PointerMove(paint.Pt(500, 500))
	if mem.Len() != 0 {
		t.Fatalf("new stroke inherited last dot: %d primitives", mem.Len())
	}
	p.PointerMove(paint.Pt(510, 500))
	if mem.Len() != 1 {
		t.Fatalf("got %d dots, want 1", mem.Len())
	}
}

func TestGradientStroke(t *testing.T) {
	p, mem := newPainter()
	p.SetMode(paint.Gradient)
	p.SetColor(paint.Black)
	p.SetGradientColor(paint.White)
	p.SetWidth(4)
	p.PointerDown(paint.Pt(0, 0))
	if err := p.PointerMove(paint.Pt(10, 0)); err != nil {
		t.Fatal(err)
	}

	segs := mem.Visible()
	if len(segs) != 10 {
		t.Fatalf("got %d segments, want 10", len(segs))
	}
	for i, s := range segs {
		if s.X1 != i || s.X2 != i+1 || s.Y1 != 0 || s.Y2 != 0 {
			t.Errorf("segment %d = (%d,%d)-(%d,%d), want (%d,0)-(%d,0)", i, s.X1, s.Y1, s.X2, s.Y2, i, i+1)
		}
		if s.Width != 4 {
			t.Errorf("segment %d width = %d, want 4", i, s.Width)
		}
		want := paint.Lerp(paint.Black, paint.White, i, 10)
		if s.Color != want {
			t.Errorf("segment %d color = %v, want %v", i, s.Color, want)
		}
	}
	if segs[0].Color != paint.Black {
		t.Errorf("first color = %v, want brush color", segs[0].Color)
	}
	if last := segs[9].Color; last != (paint.RGB{229, 229, 229}) {
		t.Errorf("last color = %v, want #e5e5e5", last)
	}
}

func TestGradientStroke_StepsRounded(t *testing.T) {
	tests := []struct {
		to   paint.Point
		want int
	}{
		{paint.Pt(0, 0), 1},
		{paint.Pt(3, 4), 5},
		{paint.Pt(1, 1), 1},
		{paint.Pt(2, 2), 3},
	}
	for _, tt := range tests {
		p, mem := newPainter()
		p.SetMode(paint.Gradient)
		p.PointerDown(paint.Pt(0, 0))
		p.PointerMove(tt.to)
		if mem.Len() != tt.want {
			t.Errorf("move to %v: %d segments, want %d", tt.to, mem.Len(), tt.want)
		}
		segs := mem.Visible()
		end := segs[len(segs)-1]
		if end.X2 != tt.to.X || end.Y2 != tt.to.Y {
			t.Errorf("move to %v: stroke ends at (%d,%d)", tt.to, end.X2, end.Y2)
		}
	}
}

func TestGradientStroke_NegativeDirection(t *testing.T) {
	p, mem := newPainter()
	p.SetMode(paint.Gradient)
	p.PointerDown(paint.Pt(10, 0))
	p.PointerMove(paint.Pt(7, 0))
	segs := mem.Visible()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	for i, s := range segs {
		if s.X1 != 10-i || s.X2 != 9-i {
			t.Errorf("segment %d = %d..%d, want %d..%d", i, s.X1, s.X2, 10-i, 9-i)
		}
	}
}

func TestWidthChangeOnlyAffectsLaterPrimitives(t *testing.T) {
	p, mem := newPainter()
	p.SetWidth(2)
	p.PointerDown(paint.Pt(0, 0))
	p.PointerMove(paint.Pt(5, 5))
	p.SetWidth(9)
	p.PointerMove(paint.Pt(10, 10))

	got := mem.Visible()
	if got[0].Width != 2 || got[1].Width != 9 {
		t.Errorf("widths = %d, %d; want 2, 9", got[0].Width, got[1].Width)
	}
}

func TestModeSwitchMidStroke(t *testing.T) {
	p, mem := newPainter()
	p.PointerDown(paint.Pt(0, 0))
	p.PointerMove(paint.Pt(4, 0))
	p.SetMode(paint.Gradient)
	p.PointerMove(paint.Pt(7, 0))

	got := mem.Visible()
	if len(got) != 4 {
		t.Fatalf("got %d primitives, want 1 solid + 3 gradient", len(got))
	}
	if got[1].X1 != 4 {
		t.Errorf("gradient started at x=%d, want 4", got[1].X1)
	}
}

func TestDottedThenSolidContinuesFromPointer(t *testing.T) {
	p, mem := newPainter()
	p.SetMode(paint.Dotted)
	p.PointerDown(paint.Pt(0, 0))
	for x := 5; x <= 100; x += 5 {
		p.PointerMove(paint.Pt(x, 0))
	}
	p.PointerMove(paint.Pt(103, 0))
	dots := mem.Len()

	p.SetMode(paint.Solid)
	p.PointerMove(paint.Pt(110, 0))

	got := mem.Visible()
	if len(got) != dots+1 {
		t.Fatalf("got %d primitives, want %d dots + 1 line", len(got), dots)
	}
	want := paint.Line(paint.Pt(103, 0), paint.Pt(110, 0), paint.Black, paint.DefaultBrush().Width)
	if line := got[len(got)-1]; line != want {
		t.Errorf("line = %+v, want %+v", line, want)
	}
}

type failingSurface struct{ surface.Memory }

var errBroken = errors.New("surface broken")

func (f *failingSurface) CreateLine(int, int, int, int, paint.RGB, int) (paint.Handle, error) {
	return 0, errBroken
}

func TestSurfaceErrorPropagates(t *testing.T) {
	p := paint.NewPainter(&failingSurface{})
	p.PointerDown(paint.Pt(0, 0))
	err := p.PointerMove(paint.Pt(1, 1))
	if !errors.Is(err, errBroken) {
		t.Fatalf("err = %v, want %v", err, errBroken)
	}
	if p.History().Len() != 0 {
		t.Errorf("failed primitive was recorded")
	}
}
