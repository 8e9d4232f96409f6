package chart

import (
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/element"
)

// LegendGlyph builds the legend glyph of a series. The anchor is the
// pixel at the left end of the legend entry, vertically centered.
type LegendGlyph interface {
	Glyph(anchor coord.BackendCoord) element.Drawable[coord.BackendCoord]
}

// LegendFunc adapts a function to LegendGlyph.
type LegendFunc func(anchor coord.BackendCoord) element.Drawable[coord.BackendCoord]

// Glyph implements LegendGlyph.
func (f LegendFunc) Glyph(anchor coord.BackendCoord) element.Drawable[coord.BackendCoord] {
	return f(anchor)
}

// SeriesAnno is the legend entry of one drawn series. Both fields are
// optional.
type SeriesAnno struct {
	Label string
	Glyph LegendGlyph
}

// annoRegistry holds the annotations of a context in draw order.
type annoRegistry struct {
	entries []SeriesAnno
}

func (r *annoRegistry) alloc() SeriesHandle {
	r.entries = append(r.entries, SeriesAnno{})
	return SeriesHandle{reg: r, idx: len(r.entries) - 1}
}

func (r *annoRegistry) list() []SeriesAnno {
	if r == nil {
		return nil
	}
	out := make([]SeriesAnno, len(r.entries))
	copy(out, r.entries)
	return out
}

// SeriesHandle refers to the annotation registered by one DrawSeries
// call. It stays valid for the lifetime of the context that issued it.
type SeriesHandle struct {
	reg *annoRegistry
	idx int
}

// Label sets the legend text of the series.
func (h SeriesHandle) Label(text string) SeriesHandle {
	h.reg.entries[h.idx].Label = text
	return h
}

// Legend sets the legend glyph of the series.
func (h SeriesHandle) Legend(g LegendGlyph) SeriesHandle {
	h.reg.entries[h.idx].Glyph = g
	return h
}

// Index returns the position of the series in draw order.
func (h SeriesHandle) Index() int {
	return h.idx
}

// Anno returns the current annotation of the series.
func (h SeriesHandle) Anno() SeriesAnno {
	return h.reg.entries[h.idx]
}
