package backend

import (
	"errors"

	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/style"
)

// Common backend errors.
var (
	// ErrUnknownBackend is returned by Open for unregistered names.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrPresented is returned when drawing on a surface whose output
	// has already been written.
	ErrPresented = errors.New("backend: surface already presented")
)

// DrawingBackend is the drawing surface contract consumed by the chart
// engine. All positions are absolute backend pixels. Text positions are
// the top-left corner of the text's bounding box after rotation.
//
// Implementations are not required to be safe for concurrent use.
type DrawingBackend interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// DrawPixel sets a single pixel.
	DrawPixel(p coord.BackendCoord, c style.RGBA) error

	// DrawLine strokes a straight line between two pixels.
	DrawLine(from, to coord.BackendCoord, s style.ShapeStyle) error

	// DrawRect draws the rectangle spanned by two corners, filled when
	// s.Filled is set.
	DrawRect(upperLeft, bottomRight coord.BackendCoord, s style.ShapeStyle) error

	// DrawPath strokes a polyline through the given pixels.
	DrawPath(path []coord.BackendCoord, s style.ShapeStyle) error

	// FillPolygon fills the polygon with the given vertices.
	FillPolygon(vertices []coord.BackendCoord, c style.RGBA) error

	// DrawCircle draws a circle, filled when s.Filled is set.
	DrawCircle(center coord.BackendCoord, radius int, s style.ShapeStyle) error

	// DrawText renders text honoring s.Font.Transform.
	DrawText(text string, s style.TextStyle, pos coord.BackendCoord) error

	// EstimateTextSize returns the bounding box of text in pixels, after
	// applying s.Font.Transform.
	EstimateTextSize(text string, s style.TextStyle) (width, height int, err error)

	// Present flushes the surface to its output.
	Present() error
}

// Error wraps a failure reported by a DrawingBackend.
type Error struct {
	// Op names the backend operation that failed, e.g. "draw_text".
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "backend: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying backend failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err wrapped in *Error for op. It returns nil for a nil
// err and leaves errors that already are *Error untouched.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return err
	}
	return &Error{Op: op, Err: err}
}
