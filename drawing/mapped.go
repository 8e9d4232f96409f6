package drawing

import (
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/style"
)

// MappedArea is an Area with a coordinate spec. Elements drawn on it are
// positioned by translating their points through the translator, which
// produces absolute backend pixels.
type MappedArea[C any] struct {
	area *Area
	spec coord.Translator[C]
}

// ApplyCoordSpec attaches spec to the area.
func ApplyCoordSpec[C any](a *Area, spec coord.Translator[C]) *MappedArea[C] {
	return &MappedArea[C]{area: a, spec: spec}
}

// Draw draws e with its points mapped through the coordinate spec.
func (m *MappedArea[C]) Draw(e element.Drawable[C]) error {
	return drawThrough(m.area.b, e, m.spec)
}

// DrawPixel sets the pixel at the data-space position v.
func (m *MappedArea[C]) DrawPixel(v C, c style.RGBA) error {
	return wrap(KindBackend, "draw_pixel", m.area.b.DrawPixel(m.spec.Translate(v), c))
}

// MapCoordinate returns the backend pixel of v.
func (m *MappedArea[C]) MapCoordinate(v C) coord.BackendCoord {
	return m.spec.Translate(v)
}

// CoordSpec returns the attached coordinate spec.
func (m *MappedArea[C]) CoordSpec() coord.Translator[C] {
	return m.spec
}

// StripCoordSpec returns the underlying pixel area.
func (m *MappedArea[C]) StripCoordSpec() *Area {
	return m.area
}

// DimInPixel returns the width and height of the area.
func (m *MappedArea[C]) DimInPixel() (int, int) { return m.area.DimInPixel() }

// PixelRange returns the backend pixel intervals covered by the area.
func (m *MappedArea[C]) PixelRange() (x, y [2]int) { return m.area.PixelRange() }

// BasePixel returns the backend position of the area's top-left corner.
func (m *MappedArea[C]) BasePixel() coord.BackendCoord { return m.area.BasePixel() }
