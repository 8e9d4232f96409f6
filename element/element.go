// Package element defines the drawable primitives placed on a chart.
//
// An element carries its anchor points in some coordinate system C. The
// drawing layer translates those points into backend pixels and hands
// them back to Draw in the same order, so an element never sees the
// coordinate spec it is drawn through:
//
//	c := element.NewCircle(coord.Pt(1.0, 2.0), 3, style.Red.Filled())
//	err := plot.Draw(c) // plot is a drawing.MappedArea
//
// Elements in pixel space use coord.BackendCoord as C; the legend glyphs
// of a chart are built that way.
package element

import (
	"github.com/gogpu/ggplot/backend"
	"github.com/gogpu/ggplot/coord"
)

// Drawable is anything that can be rendered on a drawing backend.
//
// Points returns the anchor points in the element's coordinate system.
// Draw receives them translated to backend pixels, one per point and in
// the same order.
type Drawable[C any] interface {
	Points() []C
	Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error
}

// Func adapts a pixel-space drawing function to a Drawable with the given
// anchor points.
type Func[C any] struct {
	Anchors []C
	Fn      func(pos []coord.BackendCoord, b backend.DrawingBackend) error
}

// Points implements Drawable.
func (f Func[C]) Points() []C { return f.Anchors }

// Draw implements Drawable.
func (f Func[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if f.Fn == nil {
		return nil
	}
	return f.Fn(pos, b)
}

// Composite draws several pixel-space elements relative to one anchor.
// Each part is shifted by the translated anchor before drawing.
type Composite[C any] struct {
	At    C
	Parts []Drawable[coord.BackendCoord]
}

// Compose creates a Composite anchored at at.
func Compose[C any](at C, parts ...Drawable[coord.BackendCoord]) Composite[C] {
	return Composite[C]{At: at, Parts: parts}
}

// Points implements Drawable.
func (c Composite[C]) Points() []C { return []C{c.At} }

// Draw implements Drawable.
func (c Composite[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) == 0 {
		return nil
	}
	shift := coord.Shift(pos[0])
	for _, part := range c.Parts {
		pts := part.Points()
		moved := make([]coord.BackendCoord, len(pts))
		for i, p := range pts {
			moved[i] = shift.Translate(p)
		}
		if err := part.Draw(moved, b); err != nil {
			return err
		}
	}
	return nil
}
