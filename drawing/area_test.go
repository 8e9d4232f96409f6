package drawing

import (
	"errors"
	"testing"

	"github.com/gogpu/ggplot/backend"
	"github.com/gogpu/ggplot/backend/recorder"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/style"
)

func TestNewArea(t *testing.T) {
	a := NewArea(recorder.New(400, 300))
	if w, h := a.DimInPixel(); w != 400 || h != 300 {
		t.Errorf("DimInPixel() = %d, %d", w, h)
	}
	x, y := a.PixelRange()
	if x != [2]int{0, 400} || y != [2]int{0, 300} {
		t.Errorf("PixelRange() = %v, %v", x, y)
	}
}

func TestMargin(t *testing.T) {
	a := NewArea(recorder.New(400, 300)).Margin(10, 20, 30, 40)
	if got := a.BasePixel(); got != coord.BC(30, 10) {
		t.Errorf("BasePixel() = %v", got)
	}
	if w, h := a.DimInPixel(); w != 330 || h != 270 {
		t.Errorf("DimInPixel() = %d, %d", w, h)
	}

	empty := NewArea(recorder.New(10, 10)).Margin(8, 8, 8, 8)
	if w, h := empty.DimInPixel(); w != 0 || h != 0 {
		t.Errorf("oversized margin: DimInPixel() = %d, %d", w, h)
	}
}

func TestSplitByBreakpointsCoversArea(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []int
	}{
		{"grid", []int{40, 370}, []int{20, 270}},
		{"unsorted", []int{370, 40}, []int{270, 20}},
		{"out of range", []int{-50, 900}, []int{400}},
		{"collapsed", []int{0, 400}, []int{0, 300}},
		{"none", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArea(recorder.New(400, 300)).Margin(5, 5, 5, 5)
			cells := a.SplitByBreakpoints(tt.xs, tt.ys)
			if want := (len(tt.xs) + 1) * (len(tt.ys) + 1); len(cells) != want {
				t.Fatalf("got %d cells, want %d", len(cells), want)
			}
			total := 0
			for _, c := range cells {
				w, h := c.DimInPixel()
				if w < 0 || h < 0 {
					t.Errorf("negative cell %dx%d", w, h)
				}
				total += w * h
			}
			w, h := a.DimInPixel()
			if total != w*h {
				t.Errorf("cells cover %d pixels, area has %d", total, w*h)
			}
		})
	}
}

func TestSplitByBreakpointsRowMajor(t *testing.T) {
	a := NewArea(recorder.New(100, 100))
	cells := a.SplitByBreakpoints([]int{10, 90}, []int{20, 80})
	// center cell
	if got := cells[4].BasePixel(); got != coord.BC(10, 20) {
		t.Errorf("cell 4 base = %v", got)
	}
	if w, h := cells[4].DimInPixel(); w != 80 || h != 60 {
		t.Errorf("cell 4 = %dx%d", w, h)
	}
	// bottom middle
	if got := cells[7].BasePixel(); got != coord.BC(10, 80) {
		t.Errorf("cell 7 base = %v", got)
	}
	// right middle
	if got := cells[5].BasePixel(); got != coord.BC(90, 20) {
		t.Errorf("cell 5 base = %v", got)
	}
}

func TestSplitHelpers(t *testing.T) {
	a := NewArea(recorder.New(100, 60))
	l, r := a.SplitHorizontally(30)
	if w, _ := l.DimInPixel(); w != 30 {
		t.Errorf("left width = %d", w)
	}
	if w, _ := r.DimInPixel(); w != 70 {
		t.Errorf("right width = %d", w)
	}
	u, d := a.SplitVertically(45)
	if _, h := u.DimInPixel(); h != 45 {
		t.Errorf("upper height = %d", h)
	}
	if _, h := d.DimInPixel(); h != 15 {
		t.Errorf("lower height = %d", h)
	}

	cells, err := a.SplitEvenly(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 6 {
		t.Fatalf("SplitEvenly(2, 3) = %d cells", len(cells))
	}
	if got := cells[5].BasePixel(); got != coord.BC(66, 30) {
		t.Errorf("last cell base = %v", got)
	}
	if _, err := a.SplitEvenly(0, 3); !IsKind(err, KindLayout) {
		t.Errorf("SplitEvenly(0, 3) error = %v, want layout error", err)
	}
}

func TestTitled(t *testing.T) {
	r := recorder.New(400, 300)
	a, err := NewArea(r).Margin(10, 10, 10, 10).Titled("abc", style.Font("sans", 13))
	if err != nil {
		t.Fatal(err)
	}
	// "abc" at 13px measures 21x13.
	texts := r.CommandsOf(recorder.CmdDrawText)
	if len(texts) != 1 {
		t.Fatalf("drew %d texts", len(texts))
	}
	if got, want := texts[0].Points[0], coord.BC(10+(380-21)/2, 15); got != want {
		t.Errorf("title at %v, want %v", got, want)
	}
	if got := a.BasePixel(); got != coord.BC(10, 10+10+13) {
		t.Errorf("BasePixel() = %v", got)
	}
	if _, h := a.DimInPixel(); h != 280-23 {
		t.Errorf("height = %d", h)
	}
}

func TestTitledWideText(t *testing.T) {
	r := recorder.New(20, 100)
	if _, err := NewArea(r).Titled("a long caption", style.Font("sans", 13)); err != nil {
		t.Fatal(err)
	}
	if got := r.CommandsOf(recorder.CmdDrawText)[0].Points[0]; got != coord.BC(0, 5) {
		t.Errorf("title at %v, want {0 5}", got)
	}
}

func TestTitledErrors(t *testing.T) {
	r := recorder.New(100, 100, recorder.FailOn(recorder.CmdMeasureText, 1))
	_, err := NewArea(r).Titled("x", style.Font("sans", 10))
	if !IsKind(err, KindFont) || !errors.Is(err, recorder.ErrInjected) {
		t.Errorf("measure failure: err = %v", err)
	}

	r = recorder.New(100, 100, recorder.FailOn(recorder.CmdDrawText, 1))
	_, err = NewArea(r).Titled("x", style.Font("sans", 10))
	var be *backend.Error
	if !IsKind(err, KindBackend) || !errors.As(err, &be) || be.Op != "titled" {
		t.Errorf("draw failure: err = %v", err)
	}
}

func TestRelativeDrawing(t *testing.T) {
	r := recorder.New(100, 100)
	a := NewArea(r).Margin(10, 0, 20, 0)

	if err := a.DrawPixel(coord.BC(1, 1), style.Black); err != nil {
		t.Fatal(err)
	}
	if err := a.DrawPath([]coord.BackendCoord{{X: 0, Y: 0}, {X: 5, Y: 5}}, style.Black.Stroke()); err != nil {
		t.Fatal(err)
	}
	if err := a.Draw(element.NewCircle(coord.BC(3, 4), 2, style.Red.Filled())); err != nil {
		t.Fatal(err)
	}
	if err := a.Fill(style.White); err != nil {
		t.Fatal(err)
	}

	cmds := r.Commands()
	if got := cmds[0].Points[0]; got != coord.BC(21, 11) {
		t.Errorf("pixel at %v", got)
	}
	if got := cmds[1].Points; got[0] != coord.BC(20, 10) || got[1] != coord.BC(25, 15) {
		t.Errorf("path = %v", got)
	}
	if got := cmds[2].Points[0]; got != coord.BC(23, 14) {
		t.Errorf("circle at %v", got)
	}
	if got := cmds[3].Points; got[0] != coord.BC(20, 10) || got[1] != coord.BC(100, 100) {
		t.Errorf("fill = %v", got)
	}
}

func TestErrorsWrappedOnce(t *testing.T) {
	r := recorder.New(100, 100, recorder.FailOn(recorder.CmdDrawPath, 1))
	a := NewArea(r)
	err := a.DrawPath([]coord.BackendCoord{{X: 0, Y: 0}, {X: 1, Y: 1}}, style.Black.Stroke())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := wrap(KindBackend, "outer", err); got != err {
		t.Errorf("wrap re-wrapped a drawing error: %v", got)
	}
	var de *Error
	if !errors.As(err, &de) || de.Op != "draw_path" {
		t.Errorf("err = %v", err)
	}
	if !errors.Is(err, recorder.ErrInjected) {
		t.Errorf("underlying error lost: %v", err)
	}
	if wrap(KindBackend, "x", nil) != nil {
		t.Error("wrap(nil) != nil")
	}
	if KindFont.String() != "font" {
		t.Errorf("KindFont.String() = %q", KindFont.String())
	}
}

func TestMappedArea(t *testing.T) {
	r := recorder.New(400, 300)
	a := NewArea(r).Margin(20, 30, 30, 20)
	x, y := a.PixelRange()
	spec := coord.NewCartesian2D[float64, float64](
		coord.NewFloat64Range(0, 1), coord.NewFloat64Range(0, 1),
		x, [2]int{y[1], y[0]})
	m := ApplyCoordSpec[coord.Point[float64, float64]](a, spec)

	if got := m.MapCoordinate(coord.Pt(0.0, 0.0)); got != coord.BC(30, 270) {
		t.Errorf("MapCoordinate(0, 0) = %v", got)
	}
	if err := m.Draw(element.NewPixel(coord.Pt(1.0, 1.0), style.Black)); err != nil {
		t.Fatal(err)
	}
	if got := r.Commands()[0].Points[0]; got != coord.BC(380, 20) {
		t.Errorf("pixel at %v", got)
	}
	if err := m.DrawPixel(coord.Pt(0.0, 1.0), style.Black); err != nil {
		t.Fatal(err)
	}
	if m.StripCoordSpec() != a || m.CoordSpec() == nil {
		t.Error("accessors do not expose the area and spec")
	}
	if w, h := m.DimInPixel(); w != 350 || h != 250 {
		t.Errorf("DimInPixel() = %d, %d", w, h)
	}
}
