// Package coord provides coordinate descriptors and the coordinate specs
// that translate data-space values into backend pixel positions.
package coord

// BackendCoord is a pixel position on a drawing backend.
// The origin is the top-left corner of the surface and Y grows downward.
type BackendCoord struct {
	X, Y int
}

// BC is a convenience function to create a BackendCoord.
func BC(x, y int) BackendCoord {
	return BackendCoord{X: x, Y: y}
}

// Add returns the component-wise sum of two pixel positions.
func (p BackendCoord) Add(q BackendCoord) BackendCoord {
	return BackendCoord{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two pixel positions.
func (p BackendCoord) Sub(q BackendCoord) BackendCoord {
	return BackendCoord{X: p.X - q.X, Y: p.Y - q.Y}
}

// Range is a pair of domain values describing the extent of an axis.
type Range[T any] struct {
	Start, End T
}

// Point is a data-space value in a two-dimensional coordinate system.
type Point[X, Y any] struct {
	X X
	Y Y
}

// Pt is a convenience function to create a Point.
func Pt[X, Y any](x X, y Y) Point[X, Y] {
	return Point[X, Y]{X: x, Y: y}
}

// Translator maps a value of the coordinate system C to a pixel position.
type Translator[C any] interface {
	Translate(v C) BackendCoord
}

// ReverseTranslator is a Translator that can also map pixels back.
// ReverseTranslate reports false when the pixel has no value in C.
type ReverseTranslator[C any] interface {
	Translator[C]
	ReverseTranslate(p BackendCoord) (C, bool)
}

// Shift is the pixel coordinate system of a region whose top-left corner
// sits at the given offset of the backend surface.
type Shift BackendCoord

// Translate converts a region-relative pixel into a backend pixel.
func (s Shift) Translate(p BackendCoord) BackendCoord {
	return p.Add(BackendCoord(s))
}

// ReverseTranslate converts a backend pixel into a region-relative pixel.
func (s Shift) ReverseTranslate(p BackendCoord) (BackendCoord, bool) {
	return p.Sub(BackendCoord(s)), true
}
