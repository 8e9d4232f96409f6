// Package series turns data into sequences of chart elements.
//
// Every function returns an iter.Seq suitable for chart.Context.DrawSeries:
//
//	c.DrawSeries(series.Circles(slices.Values(points), 3, style.Red.Filled()))
//
// Sequences are lazy; data is read while the chart draws.
package series

import (
	"iter"

	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/style"
)

// Points yields one marker per data point, built by mk.
func Points[C any, E element.Drawable[C]](data iter.Seq[C], size int, s style.ShapeStyle, mk func(at C, size int, s style.ShapeStyle) E) iter.Seq[element.Drawable[C]] {
	return func(yield func(element.Drawable[C]) bool) {
		for p := range data {
			if !yield(mk(p, size, s)) {
				return
			}
		}
	}
}

// Circles yields a circle of radius size per data point.
func Circles[C any](data iter.Seq[C], size int, s style.ShapeStyle) iter.Seq[element.Drawable[C]] {
	return Points(data, size, s, element.NewCircle[C])
}

// Crosses yields a cross of half-size size per data point.
func Crosses[C any](data iter.Seq[C], size int, s style.ShapeStyle) iter.Seq[element.Drawable[C]] {
	return Points(data, size, s, element.NewCross[C])
}

// Line yields a single path through all data points.
func Line[C any](data iter.Seq[C], s style.ShapeStyle) iter.Seq[element.Drawable[C]] {
	return func(yield func(element.Drawable[C]) bool) {
		var pts []C
		for p := range data {
			pts = append(pts, p)
		}
		if len(pts) > 0 {
			yield(element.NewPath(pts, s))
		}
	}
}

// Area yields the filled region between the data curve and the
// horizontal line at baseline, followed by the curve itself when
// outline is not nil.
func Area[X, Y any](data iter.Seq[coord.Point[X, Y]], baseline Y, fill style.RGBA, outline *style.ShapeStyle) iter.Seq[element.Drawable[coord.Point[X, Y]]] {
	return func(yield func(element.Drawable[coord.Point[X, Y]]) bool) {
		var pts []coord.Point[X, Y]
		for p := range data {
			pts = append(pts, p)
		}
		if len(pts) == 0 {
			return
		}
		poly := make([]coord.Point[X, Y], 0, len(pts)+2)
		poly = append(poly, pts...)
		poly = append(poly,
			coord.Pt(pts[len(pts)-1].X, baseline),
			coord.Pt(pts[0].X, baseline))
		if !yield(element.NewPolygon(poly, fill)) {
			return
		}
		if outline != nil {
			yield(element.NewPath(pts, *outline))
		}
	}
}

// Of yields the given elements in order.
func Of[C any, E element.Drawable[C]](elems ...E) iter.Seq[element.Drawable[C]] {
	return func(yield func(element.Drawable[C]) bool) {
		for _, e := range elems {
			if !yield(e) {
				return
			}
		}
	}
}
