package style

import (
	"image/color"
	"math"
	"testing"
)

var _ color.Color = RGBA{}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", White},
		{"000000", Black},
		{"#ff0000", Red},
		{"#00ff0080", RGBA{0, 1, 0, 128.0 / 255}},
		{"f0f8", RGBA{1, 0, 1, 136.0 / 255}},
		{"bogus", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in)
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 || math.Abs(got.A-tt.want.A) > 1e-9 {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBAColorConversion(t *testing.T) {
	c := RGBA{1, 0.5, 0, 1}
	n := c.Color()
	if n.R != 255 || n.G != 128 || n.B != 0 || n.A != 255 {
		t.Errorf("Color() = %v", n)
	}
	back := FromColor(n)
	if math.Abs(back.G-128.0/255) > 1e-9 {
		t.Errorf("FromColor round trip G = %v", back.G)
	}
}

func TestHSLPrimaries(t *testing.T) {
	tests := []struct {
		h    float64
		want RGBA
	}{
		{0, Red},
		{120, Green},
		{240, Blue},
		{-120, Blue},
	}
	for _, tt := range tests {
		got := HSL(tt.h, 1, 0.5)
		if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
			t.Errorf("HSL(%v, 1, 0.5) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestMixAndStyles(t *testing.T) {
	c := Black.Mix(0.2)
	if math.Abs(c.A-0.2) > 1e-9 {
		t.Errorf("Mix(0.2).A = %v", c.A)
	}
	if s := Red.Filled(); !s.Filled || s.Color != Red {
		t.Errorf("Filled() = %+v", s)
	}
	if s := Red.Stroke().WithStrokeWidth(3); s.Filled || s.StrokeWidth != 3 {
		t.Errorf("Stroke().WithStrokeWidth(3) = %+v", s)
	}
}

func TestFontTransformBox(t *testing.T) {
	tests := []struct {
		t          FontTransform
		wantW, wantH int
	}{
		{RotateNone, 30, 10},
		{Rotate90, 10, 30},
		{Rotate180, 30, 10},
		{Rotate270, 10, 30},
	}
	for _, tt := range tests {
		w, h := tt.t.Box(30, 10)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("%v.Box(30, 10) = %d, %d, want %d, %d", tt.t, w, h, tt.wantW, tt.wantH)
		}
	}
	st := Font("serif", 12).Transform(Rotate270)
	if st.Font.Transform != Rotate270 || st.Font.Size != 12 {
		t.Errorf("Transform() = %+v", st)
	}
}

func TestPaletteColorCycles(t *testing.T) {
	if PaletteColor(0) != PaletteColor(10) || PaletteColor(-3) != PaletteColor(3) {
		t.Error("PaletteColor should cycle")
	}
}
