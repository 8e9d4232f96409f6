package chart

import (
	"iter"

	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/drawing"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/style"
)

// DualContext is a chart with a secondary coordinate spec sharing the
// plotting area of the primary one. The top and right label areas belong
// to the secondary axes.
type DualContext[X, Y, SX, SY any] struct {
	primary   *Context[X, Y]
	secondary *Context[SX, SY]
}

// SetSecondaryCoord attaches secondary axes over sx and sy to c. The
// primary context must not be used afterwards; use the returned
// DualContext instead. Both coordinate systems register their series in
// one registry, so legend order is draw order.
func SetSecondaryCoord[X, Y, SX, SY any](c *Context[X, Y], sx coord.Ranged[SX], sy coord.Ranged[SY]) *DualContext[X, Y, SX, SY] {
	area := c.plot.StripCoordSpec()
	px, py := area.PixelRange()
	spec := coord.NewCartesian2D(sx, sy, px, [2]int{py[1], py[0]})

	secondary := &Context[SX, SY]{
		spec:  spec,
		plot:  drawing.ApplyCoordSpec[coord.Point[SX, SY]](area, spec),
		annos: c.annos,
	}
	secondary.xLabelArea[0], c.xLabelArea[0] = c.xLabelArea[0], nil
	secondary.yLabelArea[1], c.yLabelArea[1] = c.yLabelArea[1], nil

	return &DualContext[X, Y, SX, SY]{primary: c, secondary: secondary}
}

// Primary returns the context of the primary axes.
func (d *DualContext[X, Y, SX, SY]) Primary() *Context[X, Y] {
	return d.primary
}

// Secondary returns the context of the secondary axes.
func (d *DualContext[X, Y, SX, SY]) Secondary() *Context[SX, SY] {
	return d.secondary
}

// DrawSeries draws a series against the primary axes.
func (d *DualContext[X, Y, SX, SY]) DrawSeries(series iter.Seq[element.Drawable[coord.Point[X, Y]]]) (SeriesHandle, error) {
	return d.primary.DrawSeries(series)
}

// DrawSecondarySeries draws a series against the secondary axes.
func (d *DualContext[X, Y, SX, SY]) DrawSecondarySeries(series iter.Seq[element.Drawable[coord.Point[SX, SY]]]) (SeriesHandle, error) {
	return d.secondary.DrawSeries(series)
}

// ConfigureMesh returns the mesh style of the primary axes.
func (d *DualContext[X, Y, SX, SY]) ConfigureMesh() *MeshStyle[X, Y] {
	return d.primary.ConfigureMesh()
}

// ConfigureSecondaryAxes returns the axis style of the secondary axes.
func (d *DualContext[X, Y, SX, SY]) ConfigureSecondaryAxes() *SecondaryMeshStyle[SX, SY] {
	return &SecondaryMeshStyle[SX, SY]{mesh: d.secondary.ConfigureMesh().DisableMesh()}
}

// ConfigureSeriesLabels returns the legend style listing the series of
// both coordinate systems in draw order.
func (d *DualContext[X, Y, SX, SY]) ConfigureSeriesLabels() *SeriesLabelStyle {
	return d.primary.ConfigureSeriesLabels()
}

// IntoCoordTrans returns the reverse mapping of the primary axes.
func (d *DualContext[X, Y, SX, SY]) IntoCoordTrans() func(coord.BackendCoord) (coord.Point[X, Y], bool) {
	return d.primary.IntoCoordTrans()
}

// IntoSecondaryCoordTrans returns the reverse mapping of the secondary
// axes.
func (d *DualContext[X, Y, SX, SY]) IntoSecondaryCoordTrans() func(coord.BackendCoord) (coord.Point[SX, SY], bool) {
	return d.secondary.IntoCoordTrans()
}

// SecondaryMeshStyle configures the axes of the secondary coordinates.
// It never draws grid lines.
type SecondaryMeshStyle[X, Y any] struct {
	mesh *MeshStyle[X, Y]
}

// AxisStyle sets the style of the axis lines and knobs.
func (m *SecondaryMeshStyle[X, Y]) AxisStyle(s style.ShapeStyle) *SecondaryMeshStyle[X, Y] {
	m.mesh.AxisStyle(s)
	return m
}

// XLabels sets the maximum number of X tick labels.
func (m *SecondaryMeshStyle[X, Y]) XLabels(n int) *SecondaryMeshStyle[X, Y] {
	m.mesh.XLabels(n)
	return m
}

// YLabels sets the maximum number of Y tick labels.
func (m *SecondaryMeshStyle[X, Y]) YLabels(n int) *SecondaryMeshStyle[X, Y] {
	m.mesh.YLabels(n)
	return m
}

// XLabelFormatter sets the function that renders X tick labels.
func (m *SecondaryMeshStyle[X, Y]) XLabelFormatter(f func(X) string) *SecondaryMeshStyle[X, Y] {
	m.mesh.XLabelFormatter(f)
	return m
}

// YLabelFormatter sets the function that renders Y tick labels.
func (m *SecondaryMeshStyle[X, Y]) YLabelFormatter(f func(Y) string) *SecondaryMeshStyle[X, Y] {
	m.mesh.YLabelFormatter(f)
	return m
}

// LabelStyle sets the tick label style.
func (m *SecondaryMeshStyle[X, Y]) LabelStyle(s style.TextStyle) *SecondaryMeshStyle[X, Y] {
	m.mesh.LabelStyle(s)
	return m
}

// XDesc sets the description of the secondary X axis.
func (m *SecondaryMeshStyle[X, Y]) XDesc(text string) *SecondaryMeshStyle[X, Y] {
	m.mesh.XDesc(text)
	return m
}

// YDesc sets the description of the secondary Y axis.
func (m *SecondaryMeshStyle[X, Y]) YDesc(text string) *SecondaryMeshStyle[X, Y] {
	m.mesh.YDesc(text)
	return m
}

// AxisDescStyle sets the style of axis descriptions.
func (m *SecondaryMeshStyle[X, Y]) AxisDescStyle(s style.TextStyle) *SecondaryMeshStyle[X, Y] {
	m.mesh.AxisDescStyle(s)
	return m
}

// Draw draws the secondary axes, tick labels and descriptions.
func (m *SecondaryMeshStyle[X, Y]) Draw() error {
	return m.mesh.Draw()
}
