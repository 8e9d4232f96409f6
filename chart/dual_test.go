package chart

import (
	"slices"
	"testing"

	"github.com/gogpu/ggplot/backend/recorder"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/style"
)

func dualChart(t *testing.T) (*recorder.Recorder, *DualContext[float64, float64, int64, int64]) {
	t.Helper()
	r, root := newRoot(300, 200)
	b := NewBuilder(root).
		TopXLabelAreaSize(20).XLabelAreaSize(20).
		YLabelAreaSize(30).RightYLabelAreaSize(30)
	c := buildFloat(t, b, 0, 1, 0, 1)
	return r, SetSecondaryCoord[float64, float64, int64, int64](c, coord.NewInt64Range(0, 5), coord.NewInt64Range(0, 5))
}

func TestSetSecondaryCoordMovesLabelAreas(t *testing.T) {
	_, d := dualChart(t)
	p, s := d.Primary(), d.Secondary()

	if p.LabelArea(Top) != nil || p.LabelArea(Right) != nil {
		t.Error("primary kept the top or right label area")
	}
	if p.LabelArea(Bottom) == nil || p.LabelArea(Left) == nil {
		t.Error("primary lost the bottom or left label area")
	}
	if s.LabelArea(Top) == nil || s.LabelArea(Right) == nil {
		t.Error("secondary is missing the top or right label area")
	}
	if s.LabelArea(Bottom) != nil || s.LabelArea(Left) != nil {
		t.Error("secondary got the bottom or left label area")
	}
	if p.CoordSpec().XPixelRange() != s.CoordSpec().XPixelRange() ||
		p.CoordSpec().YPixelRange() != s.CoordSpec().YPixelRange() {
		t.Error("primary and secondary plotting footprints differ")
	}
}

func TestDualDrawSeries(t *testing.T) {
	r, d := dualChart(t)
	if _, err := d.DrawSeries(slices.Values([]element.Drawable[pt]{
		element.NewPixel(coord.Pt(1.0, 1.0), style.Red),
	})); err != nil {
		t.Fatal(err)
	}
	if _, err := d.DrawSecondarySeries(slices.Values([]element.Drawable[coord.Point[int64, int64]]{
		element.NewPixel(coord.Pt[int64, int64](5, 5), style.Blue),
	})); err != nil {
		t.Fatal(err)
	}
	px := r.CommandsOf(recorder.CmdDrawPixel)
	if len(px) != 2 || px[0].Points[0] != px[1].Points[0] {
		t.Errorf("top-right corners differ: %+v", px)
	}
	if px[0].Points[0] != coord.BC(270, 20) {
		t.Errorf("top-right corner = %v, want {270 20}", px[0].Points[0])
	}

	sx, ok := d.IntoSecondaryCoordTrans()(coord.BC(270, 20))
	if !ok || sx.X != 5 || sx.Y != 5 {
		t.Errorf("secondary reverse = %v, %v", sx, ok)
	}
	if _, ok := d.IntoCoordTrans()(coord.BC(0, 0)); ok {
		t.Error("pixel outside the plotting area has a primary value")
	}
}

func TestSecondaryAxesDrawNoGrid(t *testing.T) {
	r, d := dualChart(t)
	err := d.ConfigureSecondaryAxes().LabelStyle(label13).XLabels(6).YLabels(6).
		AxisStyle(style.Blue.Stroke()).XDesc("sx").YDesc("sy").Draw()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range r.CommandsOf(recorder.CmdDrawPath) {
		if p.Shape != style.Blue.Stroke() {
			t.Fatalf("secondary axes drew a grid line: %+v", p)
		}
	}
	texts := r.Texts()
	if !slices.Contains(texts, "sx") || !slices.Contains(texts, "sy") {
		t.Errorf("descriptions missing from %v", texts)
	}
	for _, txt := range r.CommandsOf(recorder.CmdDrawText) {
		if p := txt.Points[0]; p.Y >= 180 || p.X < 30 && p.Y > 20 {
			t.Errorf("secondary label %q drawn at %v outside the top and right bands", txt.Text, p)
		}
	}
}

func TestDualLegendFollowsDrawOrder(t *testing.T) {
	r, d := dualChart(t)
	var none []element.Drawable[coord.Point[int64, int64]]
	var nonePrimary []element.Drawable[coord.Point[float64, float64]]

	h0, err := d.DrawSecondarySeries(slices.Values(none))
	if err != nil {
		t.Fatal(err)
	}
	h1, err := d.DrawSeries(slices.Values(nonePrimary))
	if err != nil {
		t.Fatal(err)
	}
	h2, err := d.DrawSecondarySeries(slices.Values(none))
	if err != nil {
		t.Fatal(err)
	}
	h0.Label("exp")
	h1.Label("sin")
	h2.Label("log")

	for i, h := range []SeriesHandle{h0, h1, h2} {
		if h.Index() != i {
			t.Errorf("handle %d Index() = %d", i, h.Index())
		}
	}
	if err := d.ConfigureSeriesLabels().Draw(); err != nil {
		t.Fatal(err)
	}
	if got := r.Texts(); !slices.Equal(got, []string{"exp", "sin", "log"}) {
		t.Errorf("legend texts = %v, want draw order", got)
	}
	if n := len(d.Primary().Series()); n != 3 {
		t.Errorf("primary registry holds %d entries, want 3", n)
	}
}

func TestDualPrimaryMesh(t *testing.T) {
	r, d := dualChart(t)
	if err := d.ConfigureMesh().LabelStyle(label13).DisableMesh().Draw(); err != nil {
		t.Fatal(err)
	}
	for _, txt := range r.CommandsOf(recorder.CmdDrawText) {
		if p := txt.Points[0]; p.X >= 270 || p.X >= 30 && p.Y < 20 {
			t.Errorf("primary label %q drawn at %v inside a secondary band", txt.Text, p)
		}
	}
}
