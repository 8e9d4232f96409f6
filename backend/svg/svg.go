// Package svg implements a vector DrawingBackend that writes SVG
// documents with github.com/ajstarks/svgo.
//
// Text is measured with estimated metrics since the final rendering font
// is chosen by the viewer. Importing the package registers the surface
// under the name "svg".
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/ggplot/backend"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/internal/textmetrics"
	"github.com/gogpu/ggplot/style"
)

func init() {
	backend.Register("svg", func(w io.Writer, width, height int) (backend.DrawingBackend, error) {
		return New(width, height, WithOutput(w))
	})
}

// ascentRatio places the baseline below the top of a text box.
const ascentRatio = 0.8

// Option configures a Surface.
type Option func(*Surface)

// WithOutput sets the writer Present copies the document to.
func WithOutput(w io.Writer) Option {
	return func(s *Surface) {
		s.out = w
	}
}

// WithFontFamily sets the font family used for text without one.
func WithFontFamily(family string) Option {
	return func(s *Surface) {
		s.family = family
	}
}

// Surface buffers an SVG document until Present.
type Surface struct {
	width, height int
	buf           bytes.Buffer
	canvas        *svgo.SVG
	out           io.Writer
	family        string
	presented     bool
}

var _ backend.DrawingBackend = (*Surface)(nil)

// New starts a width x height document.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	s := &Surface{width: width, height: height, family: style.DefaultFamily}
	for _, opt := range opts {
		opt(s)
	}
	s.canvas = svgo.New(&s.buf)
	s.canvas.Start(width, height)
	return s, nil
}

// Size returns the document dimensions.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

func (s *Surface) check() error {
	if s.presented {
		return backend.ErrPresented
	}
	return nil
}

func rgb(c style.RGBA) string {
	n := c.Color()
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
}

func fill(c style.RGBA) string {
	if c.A >= 1 {
		return "fill:" + rgb(c)
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.3g", rgb(c), c.A)
}

func stroke(st style.ShapeStyle) string {
	w := max(st.StrokeWidth, 1)
	out := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", rgb(st.Color), w)
	if st.Color.A < 1 {
		out += fmt.Sprintf(";stroke-opacity:%.3g", st.Color.A)
	}
	return out
}

func shape(st style.ShapeStyle) string {
	if st.Filled {
		return fill(st.Color)
	}
	return stroke(st)
}

func split(path []coord.BackendCoord) (xs, ys []int) {
	xs = make([]int, len(path))
	ys = make([]int, len(path))
	for i, p := range path {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// DrawPixel writes a 1x1 rectangle.
func (s *Surface) DrawPixel(p coord.BackendCoord, c style.RGBA) error {
	if err := s.check(); err != nil {
		return err
	}
	s.canvas.Rect(p.X, p.Y, 1, 1, fill(c))
	return nil
}

// DrawLine writes a line element.
func (s *Surface) DrawLine(from, to coord.BackendCoord, st style.ShapeStyle) error {
	if err := s.check(); err != nil {
		return err
	}
	s.canvas.Line(from.X, from.Y, to.X, to.Y, stroke(st))
	return nil
}

// DrawRect writes a rect element spanning the two corners.
func (s *Surface) DrawRect(upperLeft, bottomRight coord.BackendCoord, st style.ShapeStyle) error {
	if err := s.check(); err != nil {
		return err
	}
	x0, x1 := min(upperLeft.X, bottomRight.X), max(upperLeft.X, bottomRight.X)
	y0, y1 := min(upperLeft.Y, bottomRight.Y), max(upperLeft.Y, bottomRight.Y)
	s.canvas.Rect(x0, y0, x1-x0, y1-y0, shape(st))
	return nil
}

// DrawPath writes a polyline element.
func (s *Surface) DrawPath(path []coord.BackendCoord, st style.ShapeStyle) error {
	if err := s.check(); err != nil {
		return err
	}
	if len(path) < 2 {
		return nil
	}
	xs, ys := split(path)
	s.canvas.Polyline(xs, ys, stroke(st))
	return nil
}

// FillPolygon writes a polygon element.
func (s *Surface) FillPolygon(vertices []coord.BackendCoord, c style.RGBA) error {
	if err := s.check(); err != nil {
		return err
	}
	if len(vertices) < 3 {
		return nil
	}
	xs, ys := split(vertices)
	s.canvas.Polygon(xs, ys, fill(c))
	return nil
}

// DrawCircle writes a circle element.
func (s *Surface) DrawCircle(center coord.BackendCoord, radius int, st style.ShapeStyle) error {
	if err := s.check(); err != nil {
		return err
	}
	s.canvas.Circle(center.X, center.Y, radius, shape(st))
	return nil
}

// EstimateTextSize returns estimated text extents after rotation.
func (s *Surface) EstimateTextSize(text string, st style.TextStyle) (int, int, error) {
	if st.Font.Size <= 0 {
		return 0, 0, fmt.Errorf("svg: invalid font size %v", st.Font.Size)
	}
	w, h := textmetrics.MeasureStyle(text, st)
	return w, h, nil
}

// DrawText writes a text element whose bounding box has its top-left
// corner at pos. Rotated text is wrapped in a transformed group.
func (s *Surface) DrawText(text string, st style.TextStyle, pos coord.BackendCoord) error {
	if err := s.check(); err != nil {
		return err
	}
	if st.Font.Size <= 0 {
		return fmt.Errorf("svg: invalid font size %v", st.Font.Size)
	}
	family := st.Font.Family
	if family == "" {
		family = s.family
	}
	attrs := fmt.Sprintf(`font-family="%s" font-size="%g" %s`, family, st.Font.Size,
		`style="`+fill(st.Color)+`"`)
	baseline := int(math.Round(st.Font.Size * ascentRatio))

	w, h := textmetrics.Measure(text, st.Font.Size)
	var tx, ty int
	switch st.Font.Transform {
	case style.RotateNone:
		s.canvas.Text(pos.X, pos.Y+baseline, text, attrs)
		return nil
	case style.Rotate90:
		tx, ty = pos.X+h, pos.Y
	case style.Rotate180:
		tx, ty = pos.X+w, pos.Y+h
	default:
		tx, ty = pos.X, pos.Y+w
	}
	s.canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(%g)", tx, ty, st.Font.Transform.Degrees()))
	s.canvas.Text(0, baseline, text, attrs)
	s.canvas.Gend()
	return nil
}

// Bytes returns the document written so far. The closing tag is only
// present after Present.
func (s *Surface) Bytes() []byte {
	return s.buf.Bytes()
}

// Present closes the document and copies it to the configured writer.
func (s *Surface) Present() error {
	if err := s.check(); err != nil {
		return err
	}
	s.presented = true
	s.canvas.End()
	if s.out == nil {
		return nil
	}
	if _, err := s.out.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("svg: write document: %w", err)
	}
	return nil
}
