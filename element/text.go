package element

import (
	"strings"

	"github.com/gogpu/ggplot/backend"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/style"
)

// Text is a single line of text whose top-left corner sits at At.
type Text[C any] struct {
	Content string
	At      C
	Style   style.TextStyle
}

// NewText creates a Text element.
func NewText[C any](content string, at C, s style.TextStyle) Text[C] {
	return Text[C]{Content: content, At: at, Style: s}
}

func (e Text[C]) Points() []C { return []C{e.At} }

func (e Text[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) == 0 {
		return nil
	}
	return b.DrawText(e.Content, e.Style, pos[0])
}

// MultiLineText stacks lines of text downward from At.
type MultiLineText[C any] struct {
	Lines       []string
	At          C
	Style       style.TextStyle
	LineSpacing int
}

// NewMultiLineText creates a MultiLineText, splitting content on '\n'.
func NewMultiLineText[C any](content string, at C, s style.TextStyle) MultiLineText[C] {
	return MultiLineText[C]{Lines: strings.Split(content, "\n"), At: at, Style: s}
}

func (e MultiLineText[C]) Points() []C { return []C{e.At} }

// Layout returns the top-left offset of every line relative to At.
func (e MultiLineText[C]) Layout(b backend.DrawingBackend) ([]coord.BackendCoord, error) {
	out := make([]coord.BackendCoord, len(e.Lines))
	y := 0
	for i, line := range e.Lines {
		_, h, err := b.EstimateTextSize(line, e.Style)
		if err != nil {
			return nil, err
		}
		out[i] = coord.BC(0, y)
		y += h + e.LineSpacing
	}
	return out, nil
}

// Size returns the bounding box of all lines.
func (e MultiLineText[C]) Size(b backend.DrawingBackend) (int, int, error) {
	w, h := 0, 0
	for i, line := range e.Lines {
		lw, lh, err := b.EstimateTextSize(line, e.Style)
		if err != nil {
			return 0, 0, err
		}
		w = max(w, lw)
		h += lh
		if i > 0 {
			h += e.LineSpacing
		}
	}
	return w, h, nil
}

func (e MultiLineText[C]) Draw(pos []coord.BackendCoord, b backend.DrawingBackend) error {
	if len(pos) == 0 {
		return nil
	}
	offsets, err := e.Layout(b)
	if err != nil {
		return err
	}
	for i, line := range e.Lines {
		if err := b.DrawText(line, e.Style, pos[0].Add(offsets[i])); err != nil {
			return err
		}
	}
	return nil
}
