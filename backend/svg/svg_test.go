package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/ggplot/backend"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/style"
)

func TestDocumentElements(t *testing.T) {
	var out bytes.Buffer
	s, err := New(120, 80, WithOutput(&out))
	if err != nil {
		t.Fatal(err)
	}
	steps := []func() error{
		func() error { return s.DrawLine(coord.BC(0, 0), coord.BC(10, 10), style.Black.Stroke()) },
		func() error { return s.DrawRect(coord.BC(20, 20), coord.BC(5, 5), style.Red.Filled()) },
		func() error { return s.DrawCircle(coord.BC(50, 40), 4, style.Blue.Stroke()) },
		func() error {
			return s.DrawPath([]coord.BackendCoord{coord.BC(0, 0), coord.BC(5, 9), coord.BC(9, 2)}, style.Green.Stroke())
		},
		func() error {
			return s.FillPolygon([]coord.BackendCoord{coord.BC(0, 0), coord.BC(5, 0), coord.BC(0, 5)}, style.Black.Mix(0.5))
		},
		func() error { return s.DrawPixel(coord.BC(3, 3), style.Black) },
		func() error { return s.DrawText("a<b", style.Font("serif", 12), coord.BC(10, 10)) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if out.Len() != 0 {
		t.Fatal("document written before Present")
	}
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}

	doc := out.String()
	for _, want := range []string{
		`<svg`, `width="120"`, `height="80"`,
		`<line x1="0" y1="0" x2="10" y2="10"`,
		`<rect x="5" y="5" width="15" height="15"`,
		`<circle cx="50" cy="40" r="4"`,
		`<polyline`, `<polygon`, `fill-opacity:0.5`,
		`font-family="serif"`, `a&lt;b`,
		`</svg>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRotatedText(t *testing.T) {
	tests := []struct {
		tr   style.FontTransform
		want string
	}{
		{style.Rotate90, "translate(23,10) rotate(90)"},
		{style.Rotate180, "translate(31,23) rotate(180)"},
		{style.Rotate270, "translate(10,31) rotate(270)"},
	}
	for _, tt := range tests {
		s, err := New(100, 100)
		if err != nil {
			t.Fatal(err)
		}
		// "abc" at 13px measures 21x13.
		if err := s.DrawText("abc", style.Font("", 13).Transform(tt.tr), coord.BC(10, 10)); err != nil {
			t.Fatal(err)
		}
		doc := string(s.Bytes())
		if !strings.Contains(doc, tt.want) {
			t.Errorf("transform %v: document missing %q:\n%s", tt.tr, tt.want, doc)
		}
		if !strings.Contains(doc, `font-family="`+style.DefaultFamily+`"`) {
			t.Errorf("transform %v: default family not applied", tt.tr)
		}
	}
}

func TestFontFamilyOption(t *testing.T) {
	s, err := New(10, 10, WithFontFamily("monospace"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DrawText("x", style.Font("", 10), coord.BC(0, 0)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(s.Bytes()), `font-family="monospace"`) {
		t.Error("WithFontFamily not applied")
	}
}

func TestEstimateTextSize(t *testing.T) {
	s, _ := New(10, 10)
	w, h, err := s.EstimateTextSize("abc", style.Font("", 13).Transform(style.Rotate90))
	if err != nil || w != 13 || h != 21 {
		t.Errorf("EstimateTextSize = %d, %d, %v, want 13, 21, nil", w, h, err)
	}
	if _, _, err := s.EstimateTextSize("abc", style.Font("", 0)); err == nil {
		t.Error("zero font size should fail")
	}
}

func TestPresentTwice(t *testing.T) {
	s, _ := New(10, 10)
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}
	if err := s.Present(); !errors.Is(err, backend.ErrPresented) {
		t.Errorf("second Present error = %v, want ErrPresented", err)
	}
	if err := s.DrawLine(coord.BC(0, 0), coord.BC(1, 1), style.Black.Stroke()); !errors.Is(err, backend.ErrPresented) {
		t.Errorf("DrawLine after Present error = %v, want ErrPresented", err)
	}
}

func TestRegisteredAsSVG(t *testing.T) {
	var out bytes.Buffer
	b, err := backend.Open("svg", &out, 30, 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Present(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out.String()), "</svg>") {
		t.Errorf("unexpected document %q", out.String())
	}
}
