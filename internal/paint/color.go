package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is an opaque color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// InkColor is the color dotted strokes are always drawn in, whatever the
// brush color is set to.
var InkColor = Black

// Color converts c to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// MarshalText encodes c as "#rrggbb".
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts anything ParseColor does.
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// FromColor converts any color.Color to RGB, ignoring alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// ColorResolver turns symbolic color names into channel triples.
type ColorResolver interface {
	ToRGB(name string) (RGB, error)
}

type namedColors struct{}

func (namedColors) ToRGB(name string) (RGB, error) { return ParseColor(name) }

// NamedColors resolves SVG color names and hex notation.
var NamedColors ColorResolver = namedColors{}

// ParseColor resolves a color name ("black", "SteelBlue") or a hex form
// ("#f00", "#ff0000").
func ParseColor(name string) (RGB, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return RGB{}, fmt.Errorf("empty color name")
	}
	if s[0] == '#' {
		return parseHex(s[1:])
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return RGB{}, fmt.Errorf("unknown color %q", name)
	}
	return RGB{c.R, c.G, c.B}, nil
}

func parseHex(hex string) (RGB, error) {
	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return RGB{}, fmt.Errorf("bad hex color %q: %w", "#"+hex, err)
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return RGB{r * 17, g * 17, b * 17}, nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("bad hex color %q: %w", "#"+hex, err)
		}
		return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	return RGB{}, fmt.Errorf("bad hex color %q", "#"+hex)
}

// Lerp interpolates from c1 toward c2 at fraction i/steps. Each channel
// is c1 + (c2-c1)*i/steps rounded toward negative infinity, then clamped
// to [0,255]. Lerp(c1, c2, 0, n) is always c1.
func Lerp(c1, c2 RGB, i, steps int) RGB {
	if steps <= 0 {
		return c1
	}
	return RGB{
		R: lerpChannel(c1.R, c2.R, i, steps),
		G: lerpChannel(c1.G, c2.G, i, steps),
		B: lerpChannel(c1.B, c2.B, i, steps),
	}
}

func lerpChannel(a, b uint8, i, steps int) uint8 {
	v := int(a) + floorDiv((int(b)-int(a))*i, steps)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// floorDiv divides rounding toward negative infinity. d must be > 0.
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
