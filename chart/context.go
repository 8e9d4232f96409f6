package chart

import (
	"fmt"
	"iter"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/drawing"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/style"
)

// Context is a laid-out chart with a Cartesian coordinate spec.
type Context[X, Y any] struct {
	xLabelArea [2]*drawing.Area // top, bottom
	yLabelArea [2]*drawing.Area // left, right
	spec       *coord.Cartesian2D[X, Y]
	plot       *drawing.MappedArea[coord.Point[X, Y]]
	annos      *annoRegistry
}

// XRange returns the X domain of the chart.
func (c *Context[X, Y]) XRange() coord.Range[X] {
	return c.spec.XRange()
}

// YRange returns the Y domain of the chart.
func (c *Context[X, Y]) YRange() coord.Range[Y] {
	return c.spec.YRange()
}

// BackendCoord maps a data point to its backend pixel. Points outside the
// chart's domain extrapolate.
func (c *Context[X, Y]) BackendCoord(p coord.Point[X, Y]) coord.BackendCoord {
	return c.plot.MapCoordinate(p)
}

// CoordSpec returns the coordinate spec of the plotting area.
func (c *Context[X, Y]) CoordSpec() *coord.Cartesian2D[X, Y] {
	return c.spec
}

// PlottingArea returns the plotting area with its coordinate spec.
func (c *Context[X, Y]) PlottingArea() *drawing.MappedArea[coord.Point[X, Y]] {
	return c.plot
}

// LabelArea returns the label area at pos, or nil when it is absent.
func (c *Context[X, Y]) LabelArea(pos LabelAreaPosition) *drawing.Area {
	switch pos {
	case Top, Bottom:
		return c.xLabelArea[pos-Top]
	case Left, Right:
		return c.yLabelArea[pos-Left]
	}
	return nil
}

// IntoCoordTrans returns a function mapping backend pixels back to data
// points. It reports false for pixels outside the plotting area and for
// axes that cannot be reversed.
func (c *Context[X, Y]) IntoCoordTrans() func(coord.BackendCoord) (coord.Point[X, Y], bool) {
	return c.spec.ReverseTranslate
}

// DrawSeries draws every element of series in order and registers an
// unlabeled annotation for it. Drawing stops at the first error; elements
// drawn before it stay on the surface and no annotation is registered.
func (c *Context[X, Y]) DrawSeries(series iter.Seq[element.Drawable[coord.Point[X, Y]]]) (SeriesHandle, error) {
	n := 0
	for e := range series {
		if err := c.plot.Draw(e); err != nil {
			return SeriesHandle{}, err
		}
		n++
	}
	h := c.annos.alloc()
	ggplot.Logger().Debug("chart: series drawn", "index", h.idx, "elements", n)
	return h, nil
}

// Series returns the annotations of all drawn series in draw order.
func (c *Context[X, Y]) Series() []SeriesAnno {
	return c.annos.list()
}

// ConfigureSeriesLabels returns the legend style for the chart.
func (c *Context[X, Y]) ConfigureSeriesLabels() *SeriesLabelStyle {
	return newSeriesLabelStyle(c.plot.StripCoordSpec(), c.annos.list)
}

// tickLabel is a label at an absolute pixel position along an axis.
type tickLabel struct {
	pixel int
	text  string
}

// meshPass is one invocation of drawMesh.
type meshPass[X, Y any] struct {
	rows, cols   int
	lineStyle    style.ShapeStyle
	labelStyle   style.TextStyle
	format       func(coord.MeshLine[X, Y]) (string, bool)
	xMesh, yMesh bool
	xOffset      int
	yOffset      int
	xAxis, yAxis bool
	axisStyle    style.ShapeStyle
	descStyle    style.TextStyle
	xDesc, yDesc string
}

// drawMeshLines draws the grid lines enabled in p and collects the tick
// labels of every line, drawn or not.
func (c *Context[X, Y]) drawMeshLines(p *meshPass[X, Y]) (xs, ys []tickLabel, err error) {
	area := c.plot.StripCoordSpec()
	base := area.BasePixel()
	err = c.spec.DrawMesh(p.rows, p.cols, func(l coord.MeshLine[X, Y]) error {
		draw := p.yMesh
		if l.Kind == coord.XMesh {
			draw = p.xMesh
		}
		if text, ok := p.format(l); ok {
			if l.Kind == coord.XMesh {
				xs = append(xs, tickLabel{l.Pixel(), text})
			} else {
				ys = append(ys, tickLabel{l.Pixel(), text})
			}
		}
		if !draw {
			return nil
		}
		return area.DrawPath([]coord.BackendCoord{l.From.Sub(base), l.To.Sub(base)}, p.lineStyle)
	})
	return xs, ys, err
}

func (c *Context[X, Y]) drawMesh(p *meshPass[X, Y]) error {
	xs, ys, err := c.drawMeshLines(p)
	if err != nil {
		return err
	}
	for idx := range 2 {
		var axis *style.ShapeStyle
		if p.xAxis {
			axis = &p.axisStyle
		}
		err := c.drawAxisAndLabels(c.xLabelArea[idx], axis, xs, p.labelStyle,
			p.xOffset, [2]int{0, -1 + 2*idx}, p.xDesc, p.descStyle)
		if err != nil {
			return err
		}

		axis = nil
		if p.yAxis {
			axis = &p.axisStyle
		}
		err = c.drawAxisAndLabels(c.yLabelArea[idx], axis, ys, p.labelStyle,
			p.yOffset, [2]int{-1 + 2*idx, 0}, p.yDesc, p.descStyle)
		if err != nil {
			return err
		}
	}
	return nil
}

const knobSize = 5

func invalidOrientation(o [2]int) string {
	return fmt.Sprintf("bug: invalid orientation %v", o)
}

// drawAxisAndLabels renders the axis line, tick labels, knobs and axis
// description in one label area. o points from the plotting area toward
// the label area in pixel space: (0,-1) top, (0,1) bottom, (-1,0) left,
// (1,0) right.
func (c *Context[X, Y]) drawAxisAndLabels(area *drawing.Area, axis *style.ShapeStyle, labels []tickLabel,
	labelStyle style.TextStyle, offset int, o [2]int, desc string, descStyle style.TextStyle) error {
	if area == nil {
		return nil
	}
	horizontal := o[0] == 0 && o[1] != 0
	if !horizontal && (o[1] != 0 || o[0] == 0) {
		panic(invalidOrientation(o))
	}

	base := c.plot.BasePixel()
	labelDist := 10
	if o[1] > 0 {
		labelDist = 0
	}
	tw, th := area.DimInPixel()

	var axisRange [2]int
	if horizontal {
		r := c.spec.XPixelRange()
		axisRange = [2]int{r[0] - base.X, r[1] - base.X}
	} else {
		r := c.spec.YPixelRange()
		axisRange = [2]int{r[0] - base.Y, r[1] - base.Y}
	}

	if axis != nil {
		x0, y0, x1, y1 := tw, th, tw, th
		if o[0] > 0 {
			x0 = 0
		}
		if o[1] > 0 {
			y0 = 0
		}
		if o[0] >= 0 {
			x1 = 0
		}
		if o[1] >= 0 {
			y1 = 0
		}
		if horizontal {
			x0, x1 = axisRange[0], axisRange[1]
		} else {
			y0, y1 = axisRange[0], axisRange[1]
		}
		if err := area.DrawPath([]coord.BackendCoord{{X: x0, Y: y0}, {X: x1, Y: y1}}, *axis); err != nil {
			return err
		}
	}

	rightMost := 0
	if o[0] > 0 {
		for _, l := range labels {
			w, _, err := area.EstimateTextSize(l.text, labelStyle)
			if err != nil {
				return err
			}
			rightMost = max(rightMost, w)
		}
		rightMost += labelDist
	}

	lo, hi := min(axisRange[0], axisRange[1]), max(axisRange[0], axisRange[1])
	for _, l := range labels {
		var rp int
		if horizontal {
			rp = l.pixel - base.X
		} else {
			rp = l.pixel - base.Y
		}
		if rp < lo || rp > hi {
			continue
		}

		w, h, err := area.EstimateTextSize(l.text, labelStyle)
		if err != nil {
			return err
		}

		var cx, cy int
		switch o {
		case [2]int{1, 0}:
			cx, cy = rightMost-w, rp
		case [2]int{-1, 0}:
			cx, cy = tw-labelDist-w, rp
		case [2]int{0, 1}:
			cx, cy = rp, labelDist+knobSize
		case [2]int{0, -1}:
			cx, cy = rp, th-labelDist-h
		default:
			panic(invalidOrientation(o))
		}

		var visible bool
		if horizontal {
			visible = cx >= 0 && cx+offset+w/2 <= tw
		} else {
			visible = cy >= 0 && cy+offset+h/2 <= th
		}
		if !visible {
			ggplot.Logger().Debug("chart: label suppressed", "label", l.text, "orientation", o)
			continue
		}

		pos := coord.BackendCoord{X: cx, Y: cy - h/2 + offset}
		if horizontal {
			pos = coord.BackendCoord{X: cx - w/2 + offset, Y: cy}
		}
		if err := area.DrawText(l.text, labelStyle, pos); err != nil {
			return err
		}

		if axis == nil {
			continue
		}
		var from, to coord.BackendCoord
		switch o {
		case [2]int{1, 0}:
			from, to = coord.BC(0, rp), coord.BC(knobSize, rp)
		case [2]int{-1, 0}:
			from, to = coord.BC(tw-knobSize, rp), coord.BC(tw, rp)
		case [2]int{0, 1}:
			from, to = coord.BC(rp, 0), coord.BC(rp, knobSize)
		case [2]int{0, -1}:
			from, to = coord.BC(rp, th-knobSize), coord.BC(rp, th)
		}
		if err := area.DrawPath([]coord.BackendCoord{from, to}, *axis); err != nil {
			return err
		}
	}

	if desc == "" {
		return nil
	}
	s := descStyle
	switch {
	case o[0] < 0:
		s = s.Transform(style.Rotate270)
	case o[0] > 0:
		s = s.Transform(style.Rotate90)
	}
	w, h, err := area.EstimateTextSize(desc, s)
	if err != nil {
		return err
	}
	var pos coord.BackendCoord
	switch o {
	case [2]int{1, 0}:
		pos = coord.BC(tw-w, (th-h)/2)
	case [2]int{-1, 0}:
		pos = coord.BC(0, (th-h)/2)
	case [2]int{0, 1}:
		pos = coord.BC((tw-w)/2, th-h)
	case [2]int{0, -1}:
		pos = coord.BC((tw-w)/2, 0)
	}
	return area.DrawText(desc, s, pos)
}
