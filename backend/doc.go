// Package backend defines the drawing surface that charts render onto.
//
// A DrawingBackend is a pixel-addressable surface that can draw pixels,
// lines, rectangles, paths, circles and text, and can measure text. The
// chart engine only calls into this contract; concrete surfaces live in
// sub-packages:
//
//   - bitmap: raster output through github.com/gogpu/gg (PNG)
//   - svg: vector output through github.com/ajstarks/svgo
//   - recorder: in-memory command recording, used by tests
//
// # Backend Registration
//
// Output backends register a Factory under a name from their init()
// functions, following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/ggplot/backend/svg"
//
//	b, err := backend.Open("svg", w, 800, 600)
//
// # Errors
//
// Every failure reported by a surface is returned to the caller wrapped
// once in *Error, so callers can propagate it without inspecting backend
// internals and still reach the cause with errors.Is and errors.As.
package backend
