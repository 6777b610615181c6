package paint

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "black", want: Black},
		{in: "White", want: White},
		{in: " red ", want: Red},
		{in: "steelblue", want: RGB{70, 130, 180}},
		{in: "#f00", want: Red},
		{in: "#00ff7f", want: RGB{0, 255, 127}},
		{in: "", wantErr: true},
		{in: "notacolor", wantErr: true},
		{in: "#12", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		c1, c2   RGB
		i, steps int
		want     RGB
	}{
		{"start", Red, Blue, 0, 10, Red},
		{"halfway up", Black, White, 5, 10, RGB{127, 127, 127}},
		{"halfway down", White, Black, 1, 2, RGB{127, 127, 127}},
		{"floors negative", RGB{10, 0, 0}, Black, 1, 3, RGB{6, 0, 0}},
		{"last step", Black, White, 2, 3, RGB{170, 170, 170}},
		{"zero steps", Red, Blue, 3, 0, Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.c1, tt.c2, tt.i, tt.steps); got != tt.want {
				t.Errorf("Lerp(%v, %v, %d, %d) = %v, want %v", tt.c1, tt.c2, tt.i, tt.steps, got, tt.want)
			}
		})
	}
}

func TestRGBText(t *testing.T) {
	c := RGB{1, 2, 255}
	b, err := c.MarshalText()
	if err != nil || string(b) != "#0102ff" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	var back RGB
	if err := back.UnmarshalText(b); err != nil || back != c {
		t.Errorf("UnmarshalText = %v, %v", back, err)
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.NRGBA{R: 12, G: 34, B: 56, A: 255}); got != (RGB{12, 34, 56}) {
		t.Errorf("FromColor = %v", got)
	}
	if got := FromColor(Red.Color()); got != Red {
		t.Errorf("FromColor(Red.Color()) = %v", got)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := [][3]int{{7, 2, 3}, {-7, 2, -4}, {-6, 3, -2}, {0, 5, 0}}
	for _, c := range cases {
		if got := floorDiv(c[0], c[1]); got != c[2] {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", c[0], c[1], got, c[2])
		}
	}
}
