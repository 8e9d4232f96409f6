// Package textmetrics estimates text extents without loading font files.
//
// Estimates use the advance widths of the fixed 7x13 basic font scaled to
// the requested pixel size, which keeps vector output and tests free of
// font dependencies while staying close to a typical sans-serif width.
package textmetrics

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggplot/style"
)

// baseFace is the reference face whose metrics are scaled.
var baseFace = basicfont.Face7x13

// Measure returns the unrotated width and height of s rendered at size
// pixels.
func Measure(s string, size float64) (w, h int) {
	if size <= 0 {
		return 0, 0
	}
	var adv fixed.Int26_6 = font.MeasureString(baseFace, s)
	lineHeight := baseFace.Metrics().Height
	scale := size / (float64(lineHeight) / 64)
	w = int(math.Ceil(float64(adv) / 64 * scale))
	h = int(math.Ceil(size))
	return w, h
}

// MeasureStyle returns the bounding box of s in the style's font size
// after applying its rotation.
func MeasureStyle(s string, st style.TextStyle) (w, h int) {
	w, h = Measure(s, st.Font.Size)
	return st.Font.Transform.Box(w, h)
}
