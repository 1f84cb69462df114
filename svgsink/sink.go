// Package svgsink defines the drawing surface contract used by the
// document walker, together with a reference implementation that
// records shapes into a replayable tree.
package svgsink

import (
	"github.com/markupgfx/svggeom/svgcolor"
	"github.com/markupgfx/svggeom/svgpath"
)

// ShapeSink receives the geometry and styling of one or more shapes.
// Style setters (BeginFill, SetLineStyle, SetTransform) apply to all
// geometry issued after them, until changed again. Implementations
// may assume calls arrive from a single goroutine.
type ShapeSink interface {
	// BeginFill sets the fill for subsequent geometry. An alpha of 0
	// disables filling.
	BeginFill(color svgcolor.RGB, alpha float64)
	// SetLineStyle sets the stroke for subsequent geometry. A width
	// of 0 disables stroking.
	SetLineStyle(width float64, color svgcolor.RGB, alpha float64)
	// SetTransform sets the transform mapping subsequent geometry
	// into device space.
	SetTransform(m svgpath.Matrix2D)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicBezierTo(c1x, c1y, c2x, c2y, x, y float64)
	QuadraticBezierTo(cx, cy, x, y float64)
	ClosePath()

	// Direct shape forms. Sinks that have no cheaper native form can
	// reduce them to paths with the Path helpers of this package.
	DrawRect(x, y, w, h float64)
	DrawRoundRect(x, y, w, h, radius float64)
	DrawCircle(cx, cy, r float64)
	DrawEllipse(cx, cy, rx, ry float64)
	// DrawPolygon draws a closed polygon from interleaved x, y pairs.
	DrawPolygon(points []float64)
}

// FillStyle is a resolved fill: a color and its opacity.
type FillStyle struct {
	Color svgcolor.RGB
	Alpha float64
}

// Invisible reports whether the fill paints nothing.
func (f FillStyle) Invisible() bool { return f.Alpha == 0 }

// StrokeStyle is a resolved stroke. A Width of 0 means no stroke.
type StrokeStyle struct {
	Width float64
	Color svgcolor.RGB
	Alpha float64
}

// Invisible reports whether the stroke paints nothing.
func (s StrokeStyle) Invisible() bool { return s.Width == 0 || s.Alpha == 0 }
