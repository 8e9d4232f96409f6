// Package drawing provides drawing areas: rectangular pixel regions of a
// backend surface that can be split, padded and titled, and on which
// elements are drawn.
//
// An Area works in pixels relative to its own top-left corner. A
// MappedArea attaches a coordinate spec to an Area so elements can be
// placed in data space:
//
//	root := drawing.NewArea(b)
//	left, right := root.SplitHorizontally(200)
//	plot := drawing.ApplyCoordSpec(right, spec)
//
// Areas never own the backend; every area created from the same root
// draws on the same surface.
package drawing

import (
	"fmt"
	"slices"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/backend"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/style"
)

// rect is a half-open pixel rectangle [x0, x1) x [y0, y1) in backend
// coordinates.
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) width() int  { return max(r.x1-r.x0, 0) }
func (r rect) height() int { return max(r.y1-r.y0, 0) }

// Area is a rectangular region of a drawing backend.
type Area struct {
	b    backend.DrawingBackend
	rect rect
}

// NewArea returns an Area covering the whole surface of b.
func NewArea(b backend.DrawingBackend) *Area {
	w, h := b.Size()
	return &Area{b: b, rect: rect{0, 0, w, h}}
}

func (a *Area) sub(r rect) *Area {
	return &Area{b: a.b, rect: r}
}

// Backend returns the surface the area draws on.
func (a *Area) Backend() backend.DrawingBackend {
	return a.b
}

// DimInPixel returns the width and height of the area.
func (a *Area) DimInPixel() (int, int) {
	return a.rect.width(), a.rect.height()
}

// PixelRange returns the horizontal and vertical backend pixel intervals
// covered by the area.
func (a *Area) PixelRange() (x, y [2]int) {
	return [2]int{a.rect.x0, a.rect.x1}, [2]int{a.rect.y0, a.rect.y1}
}

// BasePixel returns the backend position of the area's top-left corner.
func (a *Area) BasePixel() coord.BackendCoord {
	return coord.BC(a.rect.x0, a.rect.y0)
}

// Shift returns the coordinate spec of the area's relative pixels.
func (a *Area) Shift() coord.Shift {
	return coord.Shift(a.BasePixel())
}

// Margin returns the area shrunk by the given number of pixels on each
// side. Margins larger than the area leave an empty area.
func (a *Area) Margin(top, bottom, left, right int) *Area {
	r := a.rect
	n := rect{r.x0 + left, r.y0 + top, r.x1 - right, r.y1 - bottom}
	n.x1 = max(n.x1, n.x0)
	n.y1 = max(n.y1, n.y0)
	return a.sub(n)
}

// Titled draws text horizontally centered near the top of the area and
// returns the area below it. The title band is the text height plus 10
// pixels.
func (a *Area) Titled(text string, s style.TextStyle) (*Area, error) {
	tw, th, err := a.b.EstimateTextSize(text, s)
	if err != nil {
		return nil, wrap(KindFont, "titled", err)
	}
	w := a.rect.width()
	padding := 0
	if w > tw {
		padding = (w - tw) / 2
	}
	pos := coord.BC(a.rect.x0+padding, a.rect.y0+5)
	if err := a.b.DrawText(text, s, pos); err != nil {
		return nil, wrap(KindBackend, "titled", err)
	}
	r := a.rect
	r.y0 = min(r.y0+10+th, r.y1)
	return a.sub(r), nil
}

// cuts returns the sorted, clamped cut positions of [lo, hi) including
// both ends.
func cuts(lo, hi int, breaks []int) []int {
	out := make([]int, 0, len(breaks)+2)
	for _, p := range breaks {
		out = append(out, min(max(lo+p, lo), hi))
	}
	slices.Sort(out)
	return append(append([]int{lo}, out...), hi)
}

// SplitByBreakpoints splits the area into a grid. xs and ys are
// breakpoints relative to the area's top-left corner; they are clamped to
// the area and sorted. The result has (len(ys)+1)*(len(xs)+1) cells in
// row-major order. Cells of zero extent are kept.
func (a *Area) SplitByBreakpoints(xs, ys []int) []*Area {
	cx := cuts(a.rect.x0, a.rect.x1, xs)
	cy := cuts(a.rect.y0, a.rect.y1, ys)
	out := make([]*Area, 0, (len(cx)-1)*(len(cy)-1))
	for j := 0; j+1 < len(cy); j++ {
		for i := 0; i+1 < len(cx); i++ {
			out = append(out, a.sub(rect{cx[i], cy[j], cx[i+1], cy[j+1]}))
		}
	}
	ggplot.Logger().Debug("drawing: split area",
		"x", cx, "y", cy, "cells", len(out))
	return out
}

// SplitEvenly splits the area into rows x cols cells of equal size in
// row-major order. Remainder pixels go to the last row and column.
func (a *Area) SplitEvenly(rows, cols int) ([]*Area, error) {
	if rows <= 0 || cols <= 0 {
		return nil, wrap(KindLayout, "split_evenly",
			fmt.Errorf("invalid grid %dx%d", rows, cols))
	}
	w, h := a.DimInPixel()
	xs := make([]int, cols-1)
	for i := range xs {
		xs[i] = w * (i + 1) / cols
	}
	ys := make([]int, rows-1)
	for i := range ys {
		ys[i] = h * (i + 1) / rows
	}
	return a.SplitByBreakpoints(xs, ys), nil
}

// SplitHorizontally splits the area at x into a left and a right part.
func (a *Area) SplitHorizontally(x int) (*Area, *Area) {
	parts := a.SplitByBreakpoints([]int{x}, nil)
	return parts[0], parts[1]
}

// SplitVertically splits the area at y into an upper and a lower part.
func (a *Area) SplitVertically(y int) (*Area, *Area) {
	parts := a.SplitByBreakpoints(nil, []int{y})
	return parts[0], parts[1]
}

// Fill paints the whole area with c.
func (a *Area) Fill(c style.RGBA) error {
	r := a.rect
	err := a.b.DrawRect(coord.BC(r.x0, r.y0), coord.BC(r.x1, r.y1), c.Filled())
	return wrap(KindBackend, "fill", err)
}

// DrawPixel sets the pixel at the area-relative position p.
func (a *Area) DrawPixel(p coord.BackendCoord, c style.RGBA) error {
	return wrap(KindBackend, "draw_pixel", a.b.DrawPixel(a.Shift().Translate(p), c))
}

// DrawPath strokes a polyline through area-relative positions.
func (a *Area) DrawPath(path []coord.BackendCoord, s style.ShapeStyle) error {
	shift := a.Shift()
	abs := make([]coord.BackendCoord, len(path))
	for i, p := range path {
		abs[i] = shift.Translate(p)
	}
	return wrap(KindBackend, "draw_path", a.b.DrawPath(abs, s))
}

// DrawText renders text with its top-left corner at the area-relative
// position p.
func (a *Area) DrawText(text string, s style.TextStyle, p coord.BackendCoord) error {
	return wrap(KindBackend, "draw_text", a.b.DrawText(text, s, a.Shift().Translate(p)))
}

// EstimateTextSize measures text in pixels.
func (a *Area) EstimateTextSize(text string, s style.TextStyle) (int, int, error) {
	w, h, err := a.b.EstimateTextSize(text, s)
	if err != nil {
		return 0, 0, wrap(KindFont, "estimate_text_size", err)
	}
	return w, h, nil
}

// Draw draws a pixel-space element positioned relative to the area.
func (a *Area) Draw(e element.Drawable[coord.BackendCoord]) error {
	return drawThrough(a.b, e, a.Shift())
}

// Present flushes the backend surface.
func (a *Area) Present() error {
	return wrap(KindBackend, "present", a.b.Present())
}

func drawThrough[C any](b backend.DrawingBackend, e element.Drawable[C], t coord.Translator[C]) error {
	pts := e.Points()
	pos := make([]coord.BackendCoord, len(pts))
	for i, p := range pts {
		pos[i] = t.Translate(p)
	}
	return wrap(KindBackend, "draw", e.Draw(pos, b))
}
