package chart

import (
	"fmt"

	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/style"
)

// Default mesh appearance.
var (
	defaultBoldLine  = style.Black.Mix(0.2).Stroke()
	defaultLightLine = style.Black.Mix(0.1).Stroke()
	defaultAxis      = style.Black.Stroke()
)

const (
	defaultLabelCount = 10
	defaultLabelSize  = 12
)

// MeshStyle configures how the mesh, axes and tick labels of a chart are
// drawn. Create it with Context.ConfigureMesh and finish with Draw.
type MeshStyle[X, Y any] struct {
	target *Context[X, Y]

	axisStyle     *style.ShapeStyle
	xLabelOffset  int
	yLabelOffset  int
	drawXMesh     bool
	drawYMesh     bool
	drawXAxis     bool
	drawYAxis     bool
	nXLabels      int
	nYLabels      int
	boldLine      *style.ShapeStyle
	lightLine     *style.ShapeStyle
	labelStyle    *style.TextStyle
	formatX       func(X) string
	formatY       func(Y) string
	xDesc, yDesc  string
	axisDescStyle *style.TextStyle
}

// ConfigureMesh returns the mesh style of the chart with the defaults:
// 10 labels per axis, mesh lines and axes on both axes, 12px labels.
func (c *Context[X, Y]) ConfigureMesh() *MeshStyle[X, Y] {
	return &MeshStyle[X, Y]{
		target:    c,
		drawXMesh: true,
		drawYMesh: true,
		drawXAxis: true,
		drawYAxis: true,
		nXLabels:  defaultLabelCount,
		nYLabels:  defaultLabelCount,
		formatX:   defaultFormatter(c.spec.XDesc()),
		formatY:   defaultFormatter(c.spec.YDesc()),
	}
}

// defaultFormatter uses the descriptor's own formatting when it has one.
func defaultFormatter[V any](r coord.Ranged[V]) func(V) string {
	if f, ok := r.(coord.Formatter[V]); ok {
		return f.Format
	}
	return func(v V) string { return fmt.Sprint(v) }
}

// AxisStyle sets the style of axis lines and knobs.
func (m *MeshStyle[X, Y]) AxisStyle(s style.ShapeStyle) *MeshStyle[X, Y] {
	m.axisStyle = &s
	return m
}

// XLabelOffset shifts X tick labels along the axis by off pixels.
func (m *MeshStyle[X, Y]) XLabelOffset(off int) *MeshStyle[X, Y] {
	m.xLabelOffset = off
	return m
}

// YLabelOffset shifts Y tick labels along the axis by off pixels.
func (m *MeshStyle[X, Y]) YLabelOffset(off int) *MeshStyle[X, Y] {
	m.yLabelOffset = off
	return m
}

// DisableXMesh stops drawing the vertical grid lines.
func (m *MeshStyle[X, Y]) DisableXMesh() *MeshStyle[X, Y] {
	m.drawXMesh = false
	return m
}

// DisableYMesh stops drawing the horizontal grid lines.
func (m *MeshStyle[X, Y]) DisableYMesh() *MeshStyle[X, Y] {
	m.drawYMesh = false
	return m
}

// DisableMesh stops drawing all grid lines. Labels are still drawn.
func (m *MeshStyle[X, Y]) DisableMesh() *MeshStyle[X, Y] {
	return m.DisableXMesh().DisableYMesh()
}

// DisableXAxis stops drawing the X axis line and its knobs.
func (m *MeshStyle[X, Y]) DisableXAxis() *MeshStyle[X, Y] {
	m.drawXAxis = false
	return m
}

// DisableYAxis stops drawing the Y axis line and its knobs.
func (m *MeshStyle[X, Y]) DisableYAxis() *MeshStyle[X, Y] {
	m.drawYAxis = false
	return m
}

// DisableAxes stops drawing both axis lines.
func (m *MeshStyle[X, Y]) DisableAxes() *MeshStyle[X, Y] {
	return m.DisableXAxis().DisableYAxis()
}

// XLabels sets the maximum number of X tick labels.
func (m *MeshStyle[X, Y]) XLabels(n int) *MeshStyle[X, Y] {
	m.nXLabels = n
	return m
}

// YLabels sets the maximum number of Y tick labels.
func (m *MeshStyle[X, Y]) YLabels(n int) *MeshStyle[X, Y] {
	m.nYLabels = n
	return m
}

// LineStyle1 sets the style of the grid lines at labeled ticks.
func (m *MeshStyle[X, Y]) LineStyle1(s style.ShapeStyle) *MeshStyle[X, Y] {
	m.boldLine = &s
	return m
}

// LineStyle2 sets the style of the fine grid lines between labeled ticks.
func (m *MeshStyle[X, Y]) LineStyle2(s style.ShapeStyle) *MeshStyle[X, Y] {
	m.lightLine = &s
	return m
}

// LabelStyle sets the tick label style.
func (m *MeshStyle[X, Y]) LabelStyle(s style.TextStyle) *MeshStyle[X, Y] {
	m.labelStyle = &s
	return m
}

// XLabelFormatter sets the function that renders X tick labels.
func (m *MeshStyle[X, Y]) XLabelFormatter(f func(X) string) *MeshStyle[X, Y] {
	m.formatX = f
	return m
}

// YLabelFormatter sets the function that renders Y tick labels.
func (m *MeshStyle[X, Y]) YLabelFormatter(f func(Y) string) *MeshStyle[X, Y] {
	m.formatY = f
	return m
}

// XDesc sets the description drawn in the X label areas.
func (m *MeshStyle[X, Y]) XDesc(text string) *MeshStyle[X, Y] {
	m.xDesc = text
	return m
}

// YDesc sets the description drawn in the Y label areas.
func (m *MeshStyle[X, Y]) YDesc(text string) *MeshStyle[X, Y] {
	m.yDesc = text
	return m
}

// AxisDescStyle sets the style of axis descriptions. It defaults to the
// label style.
func (m *MeshStyle[X, Y]) AxisDescStyle(s style.TextStyle) *MeshStyle[X, Y] {
	m.axisDescStyle = &s
	return m
}

// Draw draws the fine mesh at ten times the label density, then the bold
// mesh with tick labels, axes and descriptions.
func (m *MeshStyle[X, Y]) Draw() error {
	bold := valueOr(m.boldLine, defaultBoldLine)
	light := valueOr(m.lightLine, defaultLightLine)
	axis := valueOr(m.axisStyle, defaultAxis)
	label := valueOr(m.labelStyle, style.Font(style.DefaultFamily, defaultLabelSize))
	desc := valueOr(m.axisDescStyle, label)

	fine := &meshPass[X, Y]{
		rows:       m.nYLabels * 10,
		cols:       m.nXLabels * 10,
		lineStyle:  light,
		labelStyle: label,
		format:     func(coord.MeshLine[X, Y]) (string, bool) { return "", false },
		xMesh:      m.drawXMesh,
		yMesh:      m.drawYMesh,
		xOffset:    m.xLabelOffset,
		yOffset:    m.yLabelOffset,
		axisStyle:  axis,
		descStyle:  desc,
	}
	if err := m.target.drawMesh(fine); err != nil {
		return err
	}

	return m.target.drawMesh(&meshPass[X, Y]{
		rows:       m.nYLabels,
		cols:       m.nXLabels,
		lineStyle:  bold,
		labelStyle: label,
		format: func(l coord.MeshLine[X, Y]) (string, bool) {
			if l.Kind == coord.XMesh {
				return m.formatX(l.X), true
			}
			return m.formatY(l.Y), true
		},
		xMesh:     m.drawXMesh,
		yMesh:     m.drawYMesh,
		xOffset:   m.xLabelOffset,
		yOffset:   m.yLabelOffset,
		xAxis:     m.drawXAxis,
		yAxis:     m.drawYAxis,
		axisStyle: axis,
		descStyle: desc,
		xDesc:     m.xDesc,
		yDesc:     m.yDesc,
	})
}

func valueOr[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}
