package paint

import (
	"fmt"
	"strings"
)

// Mode selects the stroke generation algorithm.
type Mode int

const (
	Solid Mode = iota
	Dotted
	Gradient
)

func (m Mode) String() string {
	switch m {
	case Solid:
		return "solid"
	case Dotted:
		return "dotted"
	case Gradient:
		return "gradient"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "solid", "dotted" or "gradient" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid", "":
		return Solid, nil
	case "dotted":
		return Dotted, nil
	case "gradient":
		return Gradient, nil
	}
	return Solid, fmt.Errorf("unknown brush mode %q", s)
}

// Width bounds.
const (
	MinWidth = 1
	MaxWidth = 20
)

// BrushConfig is the brush state read by the stroke generator on every
// motion event. Changes never touch primitives already drawn.
type BrushConfig struct {
	Color         RGB
	Width         int
	Mode          Mode
	GradientColor RGB
}

// DefaultBrush is a width 1 solid black brush fading to white.
func DefaultBrush() BrushConfig {
	return BrushConfig{
		Color:         Black,
		Width:         MinWidth,
		Mode:          Solid,
		GradientColor: White,
	}
}

func (b *BrushConfig) SetColor(c RGB)         { b.Color = c }
func (b *BrushConfig) SetMode(m Mode)         { b.Mode = m }
func (b *BrushConfig) SetGradientColor(c RGB) { b.GradientColor = c }

// SetWidth stores w clamped to [MinWidth, MaxWidth].
func (b *BrushConfig) SetWidth(w int) {
	b.Width = ClampWidth(w)
}

// ClampWidth limits w to [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}
