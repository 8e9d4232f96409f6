// Package ggplot is a chart layout and coordinate mapping engine for 2D plots.
//
// # Overview
//
// ggplot partitions a rectangular drawing surface into a plotting region and
// up to four label areas, maps data-space values onto pixels (and back),
// and draws mesh lines, axes, tick labels, series and legends through an
// abstract drawing backend.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggplot/backend/bitmap"
//	    "github.com/gogpu/ggplot/chart"
//	    "github.com/gogpu/ggplot/coord"
//	    "github.com/gogpu/ggplot/drawing"
//	    "github.com/gogpu/ggplot/style"
//	)
//
//	b, err := bitmap.New(640, 480, bitmap.WithBackground(style.White))
//	if err != nil {
//	    return err
//	}
//	root := drawing.NewArea(b)
//	builder := chart.NewBuilder(root).Margin(20).XLabelAreaSize(30).YLabelAreaSize(40)
//	c, err := chart.Build(builder, coord.NewFloat64Range(-1, 1), coord.NewFloat64Range(0, 10))
//	if err != nil {
//	    return err
//	}
//	if err := c.ConfigureMesh().Draw(); err != nil {
//	    return err
//	}
//	return b.SavePNG("chart.png")
//
// # Architecture
//
// The module is organized into:
//   - coord: coordinate descriptors (numeric, time, category) and 2D specs
//   - style: colors, shape styles, text styles
//   - backend: the drawing surface contract, registry and implementations
//     (bitmap on gogpu/gg, svg on ajstarks/svgo, recorder for tests)
//   - element, series: drawable elements and series adapters
//   - drawing: pixel regions with optional coordinate specs
//   - chart: builder, chart context, mesh, legend, dual coordinates
//   - config: YAML chart layout configuration
//
// # Coordinate System
//
// Pixel coordinates have the origin at the top-left corner with Y growing
// downward. Data-space Y grows upward, so the plotting region stores its
// vertical pixel range inverted.
package ggplot
