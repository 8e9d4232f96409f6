// Package recorder provides a DrawingBackend that records every drawing
// operation as a typed command instead of rasterizing it.
//
// Recordings are inspectable, which makes the recorder the surface of
// choice for testing chart layout: tests draw a chart and then assert on
// the positions of recorded lines, texts and shapes. Text is measured
// with the deterministic metrics of internal/textmetrics.
//
// Failures can be injected per command type to exercise error
// propagation:
//
//	rec := recorder.New(400, 300, recorder.FailOn(recorder.CmdDrawText, 2))
//
// The Recorder is not safe for concurrent use.
package recorder

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/internal/textmetrics"
	"github.com/gogpu/ggplot/style"
)

// ErrInjected is the failure returned by operations selected with FailOn.
var ErrInjected = errors.New("recorder: injected failure")

// CommandType identifies the drawing operation of a command.
type CommandType uint8

const (
	CmdDrawPixel   CommandType = iota // Set a single pixel
	CmdDrawLine                       // Stroke a line
	CmdDrawRect                       // Draw or fill a rectangle
	CmdDrawPath                       // Stroke a polyline
	CmdFillPolygon                    // Fill a polygon
	CmdDrawCircle                     // Draw or fill a circle
	CmdDrawText                       // Render text
	CmdMeasureText                    // Measure text (never recorded, only failable)
	CmdPresent                        // Flush the surface
)

var commandTypeNames = [...]string{
	CmdDrawPixel:   "DrawPixel",
	CmdDrawLine:    "DrawLine",
	CmdDrawRect:    "DrawRect",
	CmdDrawPath:    "DrawPath",
	CmdFillPolygon: "FillPolygon",
	CmdDrawCircle:  "DrawCircle",
	CmdDrawText:    "DrawText",
	CmdMeasureText: "MeasureText",
	CmdPresent:     "Present",
}

// String returns the name of the command type.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is one recorded drawing operation. Only the fields relevant to
// Type are set.
type Command struct {
	Type   CommandType
	Points []coord.BackendCoord
	Radius int
	Shape  style.ShapeStyle
	Color  style.RGBA
	Text   string
	Font   style.TextStyle
}

// Option configures a Recorder.
type Option func(*Recorder)

// FailOn makes the n-th (1-based) operation of type t fail with
// ErrInjected. Operations before it succeed and are recorded.
func FailOn(t CommandType, n int) Option {
	return func(r *Recorder) {
		r.failType = t
		r.failAt = n
	}
}

// Recorder records drawing commands.
type Recorder struct {
	width, height int
	commands      []Command
	counts        map[CommandType]int
	failType      CommandType
	failAt        int
	presented     int
}

// New creates a Recorder for a surface of the given size.
func New(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
		counts:   make(map[CommandType]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// check counts an operation of type t and reports an injected failure.
func (r *Recorder) check(t CommandType) error {
	r.counts[t]++
	if r.failAt > 0 && t == r.failType && r.counts[t] == r.failAt {
		return fmt.Errorf("%w: %s #%d", ErrInjected, t, r.failAt)
	}
	return nil
}

func (r *Recorder) record(c Command) error {
	if err := r.check(c.Type); err != nil {
		return err
	}
	r.commands = append(r.commands, c)
	return nil
}

// Size implements backend.DrawingBackend.
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// DrawPixel implements backend.DrawingBackend.
func (r *Recorder) DrawPixel(p coord.BackendCoord, c style.RGBA) error {
	return r.record(Command{Type: CmdDrawPixel, Points: []coord.BackendCoord{p}, Color: c})
}

// DrawLine implements backend.DrawingBackend.
func (r *Recorder) DrawLine(from, to coord.BackendCoord, s style.ShapeStyle) error {
	return r.record(Command{Type: CmdDrawLine, Points: []coord.BackendCoord{from, to}, Shape: s})
}

// DrawRect implements backend.DrawingBackend.
func (r *Recorder) DrawRect(upperLeft, bottomRight coord.BackendCoord, s style.ShapeStyle) error {
	return r.record(Command{Type: CmdDrawRect, Points: []coord.BackendCoord{upperLeft, bottomRight}, Shape: s})
}

// DrawPath implements backend.DrawingBackend.
func (r *Recorder) DrawPath(path []coord.BackendCoord, s style.ShapeStyle) error {
	return r.record(Command{Type: CmdDrawPath, Points: slices.Clone(path), Shape: s})
}

// FillPolygon implements backend.DrawingBackend.
func (r *Recorder) FillPolygon(vertices []coord.BackendCoord, c style.RGBA) error {
	return r.record(Command{Type: CmdFillPolygon, Points: slices.Clone(vertices), Color: c})
}

// DrawCircle implements backend.DrawingBackend.
func (r *Recorder) DrawCircle(center coord.BackendCoord, radius int, s style.ShapeStyle) error {
	return r.record(Command{Type: CmdDrawCircle, Points: []coord.BackendCoord{center}, Radius: radius, Shape: s})
}

// DrawText implements backend.DrawingBackend.
func (r *Recorder) DrawText(text string, s style.TextStyle, pos coord.BackendCoord) error {
	return r.record(Command{Type: CmdDrawText, Points: []coord.BackendCoord{pos}, Text: text, Font: s})
}

// EstimateTextSize implements backend.DrawingBackend.
func (r *Recorder) EstimateTextSize(text string, s style.TextStyle) (int, int, error) {
	if err := r.check(CmdMeasureText); err != nil {
		return 0, 0, err
	}
	w, h := textmetrics.MeasureStyle(text, s)
	return w, h, nil
}

// Present implements backend.DrawingBackend.
func (r *Recorder) Present() error {
	if err := r.check(CmdPresent); err != nil {
		return err
	}
	r.presented++
	return nil
}

// Presented returns how many times Present succeeded.
func (r *Recorder) Presented() int {
	return r.presented
}

// Commands returns all recorded commands in drawing order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// CommandsOf returns the recorded commands of type t in drawing order.
func (r *Recorder) CommandsOf(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the strings of all recorded DrawText commands.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.commands {
		if c.Type == CmdDrawText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset drops all recorded commands and operation counts.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	clear(r.counts)
	r.presented = 0
}
