package style

// ShapeStyle describes how a shape is outlined or filled.
type ShapeStyle struct {
	Color       RGBA
	Filled      bool
	StrokeWidth int
}

// WithStrokeWidth returns a copy of s with the given stroke width.
func (s ShapeStyle) WithStrokeWidth(w int) ShapeStyle {
	s.StrokeWidth = w
	return s
}

// AsFilled returns a copy of s that fills shapes.
func (s ShapeStyle) AsFilled() ShapeStyle {
	s.Filled = true
	return s
}

// FontTransform is a rotation applied to rendered text.
type FontTransform int

const (
	// RotateNone renders text left to right.
	RotateNone FontTransform = iota
	// Rotate90 turns text clockwise by 90 degrees (reads top to bottom).
	Rotate90
	// Rotate180 turns text upside down.
	Rotate180
	// Rotate270 turns text counter-clockwise by 90 degrees (reads bottom to top).
	Rotate270
)

// Degrees returns the clockwise rotation angle.
func (t FontTransform) Degrees() float64 {
	return float64(t) * 90
}

// Box returns the bounding box of a w x h text box after rotation.
func (t FontTransform) Box(w, h int) (int, int) {
	if t == Rotate90 || t == Rotate270 {
		return h, w
	}
	return w, h
}

// FontDesc identifies a font by family name and pixel size.
type FontDesc struct {
	Family    string
	Size      float64
	Transform FontTransform
}

// TextStyle is the font and color used to render text.
type TextStyle struct {
	Font  FontDesc
	Color RGBA
}

// Font returns a black text style for the given family and size.
func Font(family string, size float64) TextStyle {
	return TextStyle{Font: FontDesc{Family: family, Size: size}, Color: Black}
}

// WithColor returns a copy of s in color c.
func (s TextStyle) WithColor(c RGBA) TextStyle {
	s.Color = c
	return s
}

// Transform returns a copy of s rotated by t.
func (s TextStyle) Transform(t FontTransform) TextStyle {
	s.Font.Transform = t
	return s
}

// DefaultFamily is the font family used when none is configured.
const DefaultFamily = "sans-serif"
