package svgsink

import (
	"fmt"
	"strings"
)

// This file defines the basic path structure

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Operation groups the different path commands
type Operation interface {
	// replay itself on the sink s
	replayTo(s ShapeSink)
}

type MoveTo Point

type LineTo Point

type QuadTo [2]Point

type CubicTo [3]Point

type Close struct{}

// starts a new subpath at the given point.
func (op MoveTo) replayTo(s ShapeSink) {
	s.MoveTo(op.X, op.Y)
}

// draw a line
func (op LineTo) replayTo(s ShapeSink) {
	s.LineTo(op.X, op.Y)
}

// draw a quadratic bezier curve
func (op QuadTo) replayTo(s ShapeSink) {
	s.QuadraticBezierTo(op[0].X, op[0].Y, op[1].X, op[1].Y)
}

// draw a cubic bezier curve
func (op CubicTo) replayTo(s ShapeSink) {
	s.CubicBezierTo(op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
}

func (op Close) replayTo(s ShapeSink) {
	s.ClosePath()
}

// Path describes a sequence of basic drawing operations.
// Higher-level shapes may be reduced to a path.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", op[0].X, op[0].Y, op[1].X, op[1].Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f",
				op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new subpath at the given point.
func (p *Path) Start(x, y float64) {
	*p = append(*p, MoveTo{x, y})
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(x, y float64) {
	*p = append(*p, LineTo{x, y})
}

// QuadBezier adds a quadratic segment to the current subpath.
func (p *Path) QuadBezier(cx, cy, x, y float64) {
	*p = append(*p, QuadTo{{cx, cy}, {x, y}})
}

// CubeBezier adds a cubic segment to the current subpath.
func (p *Path) CubeBezier(c1x, c1y, c2x, c2y, x, y float64) {
	*p = append(*p, CubicTo{{c1x, c1y}, {c2x, c2y}, {x, y}})
}

// Stop joins the ends of the subpath
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// ReplayTo issues the path operations onto s.
func (p Path) ReplayTo(s ShapeSink) {
	for _, op := range p {
		op.replayTo(s)
	}
}
