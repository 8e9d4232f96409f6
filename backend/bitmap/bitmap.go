// Package bitmap implements a raster DrawingBackend on top of gg.
//
// Shapes are rasterized by gg's software renderer with anti-aliasing and
// text is rendered with the Go Regular font unless another font source
// is configured. Present encodes the canvas as PNG to the writer given to
// New.
//
// Importing the package registers the surface under the name "png":
//
//	import _ "github.com/gogpu/ggplot/backend/bitmap"
//
//	b, err := backend.Open("png", f, 800, 600)
package bitmap

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/backend"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/style"
)

func init() {
	backend.Register("png", func(w io.Writer, width, height int) (backend.DrawingBackend, error) {
		return New(width, height, WithOutput(w), WithBackground(style.White))
	})
}

// Option configures a Bitmap.
type Option func(*options)

type options struct {
	out        io.Writer
	source     *text.FontSource
	background *style.RGBA
}

// WithOutput sets the writer Present encodes the PNG image to.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithFontSource replaces the default Go Regular font.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithBackground clears the canvas with c. The default background is
// transparent.
func WithBackground(c style.RGBA) Option {
	return func(o *options) {
		o.background = &c
	}
}

// Bitmap is a raster drawing surface.
//
// A Bitmap is not safe for concurrent use.
type Bitmap struct {
	pm        *gg.Pixmap
	dc        *gg.Context
	out       io.Writer
	source    *text.FontSource
	faces     map[float64]text.Face
	warned    map[string]bool
	presented bool
}

var _ backend.DrawingBackend = (*Bitmap)(nil)

// New creates a width x height surface.
func New(width, height int, opts ...Option) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bitmap: invalid size %dx%d", width, height)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	src := o.source
	if src == nil {
		var err error
		src, err = text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("bitmap: load default font: %w", err)
		}
	}
	pm := gg.NewPixmap(width, height)
	b := &Bitmap{
		pm:     pm,
		dc:     gg.NewContext(width, height, gg.WithPixmap(pm)),
		out:    o.out,
		source: src,
		faces:  make(map[float64]text.Face),
		warned: make(map[string]bool),
	}
	if o.background != nil {
		b.dc.ClearWithColor(toGG(*o.background))
	}
	return b, nil
}

func toGG(c style.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Size returns the canvas dimensions.
func (b *Bitmap) Size() (int, int) {
	return b.dc.Width(), b.dc.Height()
}

// Image returns the canvas. The image aliases the surface and reflects
// later drawing.
func (b *Bitmap) Image() image.Image {
	return b.pm
}

// SavePNG writes the canvas to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	return b.pm.SavePNG(path)
}

func (b *Bitmap) check() error {
	if b.presented {
		return backend.ErrPresented
	}
	return nil
}

// DrawPixel sets a single pixel, blending c over the canvas.
func (b *Bitmap) DrawPixel(p coord.BackendCoord, c style.RGBA) error {
	if err := b.check(); err != nil {
		return err
	}
	b.blend(p.X, p.Y, c)
	return nil
}

func (b *Bitmap) blend(x, y int, c style.RGBA) {
	w, h := b.Size()
	if x < 0 || y < 0 || x >= w || y >= h || c.A <= 0 {
		return
	}
	if c.A >= 1 {
		b.dc.SetPixel(x, y, toGG(c))
		return
	}
	under := b.pm.GetPixel(x, y)
	dst := style.RGBA{R: under.R, G: under.G, B: under.B, A: under.A}
	a := c.A + dst.A*(1-c.A)
	mix := func(s, d float64) float64 {
		return (s*c.A + d*dst.A*(1-c.A)) / a
	}
	b.dc.SetPixel(x, y, gg.RGBA{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: a})
}

func (b *Bitmap) setStroke(s style.ShapeStyle) {
	w := s.StrokeWidth
	if w <= 0 {
		w = 1
	}
	b.dc.SetLineWidth(float64(w))
	b.dc.SetColor(toGG(s.Color))
}

// px centers a stroke on the pixel grid.
func px(v int) float64 {
	return float64(v) + 0.5
}

// DrawLine strokes a line.
func (b *Bitmap) DrawLine(from, to coord.BackendCoord, s style.ShapeStyle) error {
	if err := b.check(); err != nil {
		return err
	}
	b.setStroke(s)
	b.dc.DrawLine(px(from.X), px(from.Y), px(to.X), px(to.Y))
	return b.dc.Stroke()
}

// DrawRect draws or fills the rectangle spanned by two corners.
func (b *Bitmap) DrawRect(upperLeft, bottomRight coord.BackendCoord, s style.ShapeStyle) error {
	if err := b.check(); err != nil {
		return err
	}
	x0, x1 := min(upperLeft.X, bottomRight.X), max(upperLeft.X, bottomRight.X)
	y0, y1 := min(upperLeft.Y, bottomRight.Y), max(upperLeft.Y, bottomRight.Y)
	if s.Filled {
		b.dc.SetColor(toGG(s.Color))
		b.dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
		return b.dc.Fill()
	}
	b.setStroke(s)
	b.dc.DrawRectangle(px(x0), px(y0), float64(x1-x0), float64(y1-y0))
	return b.dc.Stroke()
}

// DrawPath strokes a polyline.
func (b *Bitmap) DrawPath(path []coord.BackendCoord, s style.ShapeStyle) error {
	if err := b.check(); err != nil {
		return err
	}
	if len(path) < 2 {
		return nil
	}
	b.setStroke(s)
	b.dc.MoveTo(px(path[0].X), px(path[0].Y))
	for _, p := range path[1:] {
		b.dc.LineTo(px(p.X), px(p.Y))
	}
	return b.dc.Stroke()
}

// FillPolygon fills a polygon.
func (b *Bitmap) FillPolygon(vertices []coord.BackendCoord, c style.RGBA) error {
	if err := b.check(); err != nil {
		return err
	}
	if len(vertices) < 3 {
		return nil
	}
	b.dc.SetColor(toGG(c))
	b.dc.MoveTo(float64(vertices[0].X), float64(vertices[0].Y))
	for _, p := range vertices[1:] {
		b.dc.LineTo(float64(p.X), float64(p.Y))
	}
	b.dc.ClosePath()
	return b.dc.Fill()
}

// DrawCircle draws or fills a circle.
func (b *Bitmap) DrawCircle(center coord.BackendCoord, radius int, s style.ShapeStyle) error {
	if err := b.check(); err != nil {
		return err
	}
	if s.Filled {
		b.dc.SetColor(toGG(s.Color))
		b.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
		return b.dc.Fill()
	}
	b.setStroke(s)
	b.dc.DrawCircle(px(center.X), px(center.Y), float64(radius))
	return b.dc.Stroke()
}

// face returns the cached face for the font description.
func (b *Bitmap) face(f style.FontDesc) (text.Face, error) {
	if f.Size <= 0 {
		return nil, fmt.Errorf("bitmap: invalid font size %v", f.Size)
	}
	if f.Family != "" && f.Family != style.DefaultFamily && !b.warned[f.Family] {
		b.warned[f.Family] = true
		ggplot.Logger().Warn("bitmap: font family not available, using default",
			"family", f.Family)
	}
	if face, ok := b.faces[f.Size]; ok {
		return face, nil
	}
	face := b.source.Face(f.Size)
	b.faces[f.Size] = face
	return face, nil
}

func (b *Bitmap) measure(s string, f style.FontDesc) (text.Face, int, int, error) {
	face, err := b.face(f)
	if err != nil {
		return nil, 0, 0, err
	}
	m := face.Metrics()
	w, _ := text.Measure(s, face)
	return face, int(math.Ceil(w)), int(math.Ceil(m.Ascent + m.Descent)), nil
}

// EstimateTextSize measures text with the configured font.
func (b *Bitmap) EstimateTextSize(s string, st style.TextStyle) (int, int, error) {
	_, w, h, err := b.measure(s, st.Font)
	if err != nil {
		return 0, 0, err
	}
	w, h = st.Font.Transform.Box(w, h)
	return w, h, nil
}

// DrawText renders text with its bounding box's top-left corner at pos.
// Rotated text is rendered on a scratch canvas and copied pixel by pixel.
func (b *Bitmap) DrawText(s string, st style.TextStyle, pos coord.BackendCoord) error {
	if err := b.check(); err != nil {
		return err
	}
	face, w, h, err := b.measure(s, st.Font)
	if err != nil {
		return err
	}
	ascent := face.Metrics().Ascent
	if st.Font.Transform == style.RotateNone {
		b.dc.SetFont(face)
		b.dc.SetColor(toGG(st.Color))
		b.dc.DrawString(s, float64(pos.X), float64(pos.Y)+ascent)
		return nil
	}
	if w == 0 || h == 0 {
		return nil
	}

	pm := gg.NewPixmap(w, h)
	scratch := gg.NewContext(w, h, gg.WithPixmap(pm))
	defer scratch.Close()
	scratch.SetFont(face)
	scratch.SetColor(toGG(st.Color))
	scratch.DrawString(s, 0, ascent)
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			c := pm.GetPixel(tx, ty)
			if c.A == 0 {
				continue
			}
			var dx, dy int
			switch st.Font.Transform {
			case style.Rotate90:
				dx, dy = h-1-ty, tx
			case style.Rotate180:
				dx, dy = w-1-tx, h-1-ty
			default:
				dx, dy = ty, w-1-tx
			}
			b.blend(pos.X+dx, pos.Y+dy, style.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return nil
}

// Present encodes the canvas as PNG to the configured writer and
// releases the drawing context. The pixels stay readable through Image
// and SavePNG; further drawing fails with backend.ErrPresented.
func (b *Bitmap) Present() error {
	if err := b.check(); err != nil {
		return err
	}
	b.presented = true
	var err error
	if b.out != nil {
		if err = b.dc.EncodePNG(b.out); err != nil {
			err = fmt.Errorf("bitmap: encode png: %w", err)
		}
	}
	if cerr := b.dc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("bitmap: close context: %w", cerr)
	}
	return err
}
