package chart

import (
	"fmt"

	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/drawing"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/style"
)

// LegendPosition is where the legend box sits inside the plotting area.
type LegendPosition int

const (
	UpperLeft LegendPosition = iota
	MiddleLeft
	LowerLeft
	UpperMiddle
	MiddleMiddle
	LowerMiddle
	UpperRight
	MiddleRight
	LowerRight
	// Coordinate places the box at an explicit pixel offset, see
	// SeriesLabelStyle.PositionAt.
	Coordinate
)

var legendPositionNames = [...]string{
	UpperLeft:    "upper_left",
	MiddleLeft:   "middle_left",
	LowerLeft:    "lower_left",
	UpperMiddle:  "upper_middle",
	MiddleMiddle: "middle_middle",
	LowerMiddle:  "lower_middle",
	UpperRight:   "upper_right",
	MiddleRight:  "middle_right",
	LowerRight:   "lower_right",
	Coordinate:   "coordinate",
}

func (p LegendPosition) String() string {
	if p >= 0 && int(p) < len(legendPositionNames) {
		return legendPositionNames[p]
	}
	return fmt.Sprintf("LegendPosition(%d)", int(p))
}

// ParseLegendPosition returns the anchored position with the given name,
// such as "upper_left".
func ParseLegendPosition(name string) (LegendPosition, error) {
	for i, n := range legendPositionNames[:Coordinate] {
		if n == name {
			return LegendPosition(i), nil
		}
	}
	return 0, fmt.Errorf("chart: unknown legend position %q", name)
}

const legendPad = 5

// layout returns the top-left corner of a w x h box in an area of
// aw x ah pixels.
func (p LegendPosition) layout(w, h, aw, ah int, at coord.BackendCoord) coord.BackendCoord {
	if p == Coordinate {
		return at
	}
	var x, y int
	switch p / 3 {
	case 0:
		x = legendPad
	case 1:
		x = (aw - w) / 2
	default:
		x = aw - w - legendPad
	}
	switch p % 3 {
	case 0:
		y = legendPad
	case 1:
		y = (ah - h) / 2
	default:
		y = ah - h - legendPad
	}
	return coord.BC(x, y)
}

// SeriesLabelStyle configures and draws the legend of a chart.
type SeriesLabelStyle struct {
	area           *drawing.Area
	annos          func() []SeriesAnno
	position       LegendPosition
	at             coord.BackendCoord
	legendAreaSize int
	margin         int
	border         *style.ShapeStyle
	background     *style.ShapeStyle
	labelFont      *style.TextStyle
}

func newSeriesLabelStyle(area *drawing.Area, annos func() []SeriesAnno) *SeriesLabelStyle {
	return &SeriesLabelStyle{
		area:           area,
		annos:          annos,
		position:       MiddleRight,
		legendAreaSize: 30,
		margin:         10,
	}
}

// Position anchors the legend box.
func (s *SeriesLabelStyle) Position(p LegendPosition) *SeriesLabelStyle {
	s.position = p
	return s
}

// PositionAt places the legend box's top-left corner at (x, y) relative
// to the plotting area.
func (s *SeriesLabelStyle) PositionAt(x, y int) *SeriesLabelStyle {
	s.position = Coordinate
	s.at = coord.BC(x, y)
	return s
}

// LegendAreaSize sets the width reserved for glyphs.
func (s *SeriesLabelStyle) LegendAreaSize(size int) *SeriesLabelStyle {
	s.legendAreaSize = size
	return s
}

// Margin sets the padding inside the legend box.
func (s *SeriesLabelStyle) Margin(m int) *SeriesLabelStyle {
	s.margin = m
	return s
}

// BorderStyle sets the outline of the legend box.
func (s *SeriesLabelStyle) BorderStyle(st style.ShapeStyle) *SeriesLabelStyle {
	s.border = &st
	return s
}

// BackgroundStyle sets the fill of the legend box.
func (s *SeriesLabelStyle) BackgroundStyle(c style.RGBA) *SeriesLabelStyle {
	st := c.Filled()
	s.background = &st
	return s
}

// LabelFont sets the font of the legend labels.
func (s *SeriesLabelStyle) LabelFont(st style.TextStyle) *SeriesLabelStyle {
	s.labelFont = &st
	return s
}

// Draw draws the legend. Series with neither a label nor a glyph are
// left out; nothing is drawn when no series remains.
func (s *SeriesLabelStyle) Draw() error {
	font := valueOr(s.labelFont, style.Font(style.DefaultFamily, defaultLabelSize))
	text := element.MultiLineText[coord.BackendCoord]{
		Style:       font,
		LineSpacing: int(font.Font.Size / 4),
	}
	var glyphs []LegendGlyph
	for _, a := range s.annos() {
		if a.Label == "" && a.Glyph == nil {
			continue
		}
		glyphs = append(glyphs, a.Glyph)
		text.Lines = append(text.Lines, a.Label)
	}
	if len(glyphs) == 0 {
		return nil
	}

	w, h := 0, 0
	heights := make([]int, len(text.Lines))
	for i, line := range text.Lines {
		lw, lh, err := s.area.EstimateTextSize(line, font)
		if err != nil {
			return err
		}
		w = max(w, lw)
		if i > 0 {
			h += text.LineSpacing
		}
		h += lh
		heights[i] = lh
	}
	w += s.legendAreaSize + 2*s.margin
	h += 2 * s.margin

	aw, ah := s.area.DimInPixel()
	ul := s.position.layout(w, h, aw, ah, s.at)
	br := ul.Add(coord.BC(w, h))
	if s.background != nil {
		if err := s.area.Draw(element.NewRectangle(ul, br, *s.background)); err != nil {
			return err
		}
	}
	if s.border != nil {
		if err := s.area.Draw(element.NewRectangle(ul, br, *s.border)); err != nil {
			return err
		}
	}

	text.At = ul.Add(coord.BC(s.legendAreaSize+s.margin, s.margin))
	if err := s.area.Draw(text); err != nil {
		return err
	}

	y := text.At.Y
	for i, g := range glyphs {
		if g != nil {
			anchor := coord.BC(ul.X+s.margin, y+heights[i]/2)
			if err := s.area.Draw(g.Glyph(anchor)); err != nil {
				return err
			}
		}
		y += heights[i] + text.LineSpacing
	}
	return nil
}
