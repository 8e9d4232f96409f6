// Package chart builds charts on top of drawing areas.
//
// A Builder partitions a drawing area into up to four label areas around
// a central plotting area and attaches a coordinate spec to it. The
// resulting Context draws series, the mesh with its axes and tick labels,
// and the legend:
//
//	b := chart.NewBuilder(root).
//		Caption("y = x^2", style.Font(style.DefaultFamily, 20)).
//		XLabelAreaSize(30).
//		YLabelAreaSize(40)
//	c, err := chart.Build(b, coord.NewFloat64Range(-1, 1), coord.NewFloat64Range(0, 1))
//	if err != nil {
//		return err
//	}
//	if err := c.ConfigureMesh().Draw(); err != nil {
//		return err
//	}
//
// Contexts draw directly on the backend and are not safe for concurrent
// use.
package chart

import (
	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/drawing"
	"github.com/gogpu/ggplot/style"
)

// LabelAreaPosition selects one of the four label areas around the
// plotting area.
type LabelAreaPosition int

const (
	Top LabelAreaPosition = iota
	Bottom
	Left
	Right
)

var positionNames = [...]string{"top", "bottom", "left", "right"}

func (p LabelAreaPosition) String() string {
	if p >= Top && p <= Right {
		return positionNames[p]
	}
	return "invalid"
}

// edgeDirections holds, per LabelAreaPosition, the direction from the
// plotting area toward that edge in pixel space.
var edgeDirections = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Builder configures the layout of a chart. The zero label-area size
// means the area is absent.
type Builder struct {
	root          *drawing.Area
	labelAreaSize [4]int
	title         *caption
	margin        int
}

type caption struct {
	text  string
	style style.TextStyle
}

// NewBuilder returns a Builder drawing on root.
func NewBuilder(root *drawing.Area) *Builder {
	return &Builder{root: root}
}

// Margin sets the blank border around the chart. It is ignored when a
// caption is set.
func (b *Builder) Margin(size int) *Builder {
	b.margin = size
	return b
}

// XLabelAreaSize sets the height of the bottom label area.
func (b *Builder) XLabelAreaSize(size int) *Builder {
	return b.SetLabelAreaSize(Bottom, size)
}

// YLabelAreaSize sets the width of the left label area.
func (b *Builder) YLabelAreaSize(size int) *Builder {
	return b.SetLabelAreaSize(Left, size)
}

// TopXLabelAreaSize sets the height of the top label area.
func (b *Builder) TopXLabelAreaSize(size int) *Builder {
	return b.SetLabelAreaSize(Top, size)
}

// RightYLabelAreaSize sets the width of the right label area.
func (b *Builder) RightYLabelAreaSize(size int) *Builder {
	return b.SetLabelAreaSize(Right, size)
}

// SetLabelAreaSize sets the size of the label area at pos.
func (b *Builder) SetLabelAreaSize(pos LabelAreaPosition, size int) *Builder {
	b.labelAreaSize[pos] = size
	return b
}

// Caption sets the chart title drawn above the plotting area.
func (b *Builder) Caption(text string, s style.TextStyle) *Builder {
	b.title = &caption{text: text, style: s}
	return b
}

// Build lays out the chart and attaches a Cartesian coordinate spec over
// x and y to the plotting area. Only failures of the backend while
// drawing the caption are reported.
func Build[X, Y any](b *Builder, x coord.Ranged[X], y coord.Ranged[Y]) (*Context[X, Y], error) {
	area := b.root
	if b.title != nil {
		var err error
		if area, err = area.Titled(b.title.text, b.title.style); err != nil {
			return nil, err
		}
	} else if b.margin > 0 {
		s := b.margin
		area = area.Margin(s, s, s, s)
	}

	w, h := area.DimInPixel()
	// top, bottom, left, right cuts relative to the area
	pos := [4]int{0, h, 0, w}
	for i, d := range edgeDirections {
		size := b.labelAreaSize[i]
		if d[0]+d[1] < 0 {
			pos[i] += size
		} else {
			pos[i] -= size
		}
	}

	cells := area.SplitByBreakpoints(pos[2:4], pos[0:2])

	var labels [4]*drawing.Area
	for dst, src := range [4]int{1, 7, 3, 5} {
		cw, ch := cells[src].DimInPixel()
		if cw > 0 && ch > 0 {
			labels[dst] = cells[src]
		} else {
			ggplot.Logger().Debug("chart: label area absent",
				"position", LabelAreaPosition(dst), "size", b.labelAreaSize[dst])
		}
	}

	plot := cells[4]
	px, py := plot.PixelRange()
	spec := coord.NewCartesian2D(x, y, px, [2]int{py[1], py[0]})
	ggplot.Logger().Debug("chart: built",
		"plot_x", px, "plot_y", py)

	return &Context[X, Y]{
		xLabelArea: [2]*drawing.Area{labels[Top], labels[Bottom]},
		yLabelArea: [2]*drawing.Area{labels[Left], labels[Right]},
		spec:       spec,
		plot:       drawing.ApplyCoordSpec[coord.Point[X, Y]](plot, spec),
		annos:      &annoRegistry{},
	}, nil
}
