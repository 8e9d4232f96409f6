package element

import (
	"github.com/gogpu/ggplot/backend"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/style"
)

// Pixel sets a single pixel.
type Pixel[C any] struct {
	At    C
	Color style.RGBA
}

// NewPixel creates a Pixel element.
func NewPixel[C any](at C, c style.RGBA) Pixel[C] {
	return Pixel[C]{At: at, Color: c}
}

func (e Pixel[C]) Points() []C { return []C{e.At} }

func (e Pixel[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) == 0 {
		return nil
	}
	return b.DrawPixel(pos[0], e.Color)
}

// Circle is a circle with a pixel radius around a data-space center.
type Circle[C any] struct {
	Center C
	Radius int
	Style  style.ShapeStyle
}

// NewCircle creates a Circle element.
func NewCircle[C any](center C, radius int, s style.ShapeStyle) Circle[C] {
	return Circle[C]{Center: center, Radius: radius, Style: s}
}

func (e Circle[C]) Points() []C { return []C{e.Center} }

func (e Circle[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) == 0 {
		return nil
	}
	return b.DrawCircle(pos[0], e.Radius, e.Style)
}

// Cross is an X-shaped marker of the given pixel half-size.
type Cross[C any] struct {
	Center C
	Size   int
	Style  style.ShapeStyle
}

// NewCross creates a Cross element.
func NewCross[C any](center C, size int, s style.ShapeStyle) Cross[C] {
	return Cross[C]{Center: center, Size: size, Style: s}
}

func (e Cross[C]) Points() []C { return []C{e.Center} }

func (e Cross[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) == 0 {
		return nil
	}
	p, s := pos[0], e.Size
	if err := b.DrawLine(coord.BC(p.X-s, p.Y-s), coord.BC(p.X+s, p.Y+s), e.Style); err != nil {
		return err
	}
	return b.DrawLine(coord.BC(p.X-s, p.Y+s), coord.BC(p.X+s, p.Y-s), e.Style)
}

// Path is a polyline through data-space points.
type Path[C any] struct {
	Vertices []C
	Style    style.ShapeStyle
}

// NewPath creates a Path element.
func NewPath[C any](vertices []C, s style.ShapeStyle) Path[C] {
	return Path[C]{Vertices: vertices, Style: s}
}

func (e Path[C]) Points() []C { return e.Vertices }

func (e Path[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) < 2 {
		return nil
	}
	return b.DrawPath(pos, e.Style)
}

// Polygon is a filled polygon through data-space points.
type Polygon[C any] struct {
	Vertices []C
	Color    style.RGBA
}

// NewPolygon creates a Polygon element.
func NewPolygon[C any](vertices []C, c style.RGBA) Polygon[C] {
	return Polygon[C]{Vertices: vertices, Color: c}
}

func (e Polygon[C]) Points() []C { return e.Vertices }

func (e Polygon[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) < 3 {
		return nil
	}
	return b.FillPolygon(pos, e.Color)
}

// Rectangle is the axis-aligned box spanned by two corners.
type Rectangle[C any] struct {
	Corners [2]C
	Style   style.ShapeStyle
}

// NewRectangle creates a Rectangle element.
func NewRectangle[C any](a, b C, s style.ShapeStyle) Rectangle[C] {
	return Rectangle[C]{Corners: [2]C{a, b}, Style: s}
}

func (e Rectangle[C]) Points() []C { return e.Corners[:] }

func (e Rectangle[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) < 2 {
		return nil
	}
	ul := coord.BC(min(pos[0].X, pos[1].X), min(pos[0].Y, pos[1].Y))
	br := coord.BC(max(pos[0].X, pos[1].X), max(pos[0].Y, pos[1].Y))
	return b.DrawRect(ul, br, e.Style)
}

// Empty occupies a point but draws nothing.
type Empty[C any] struct {
	At C
}

func (e Empty[C]) Points() []C { return []C{e.At} }

func (Empty[C]) Draw([]coord.BackendCoord, backend.DrawingBackend) error { return nil }
