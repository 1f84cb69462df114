package svgshape

import (
	"fmt"

	"github.com/markupgfx/svggeom/svgpath"
	"github.com/markupgfx/svggeom/svgsink"
)

// pathCursor is the interpreter state while walking a command list:
// the pen position, the start of the current subpath, and the
// previous command's kind with its trailing control point. The
// trailing control is only usable for reflection by a command of
// the same curve family.
type pathCursor struct {
	x, y           float64
	startX, startY float64
	prevKind       svgpath.CommandKind
	ctrlX, ctrlY   float64
}

// cubicFamily reports whether k leaves a control point a smooth
// cubic may reflect.
func cubicFamily(k svgpath.CommandKind) bool {
	return k == svgpath.CubicTo || k == svgpath.SmoothCubicTo
}

// quadFamily reports whether k leaves a control point a smooth
// quadratic may reflect.
func quadFamily(k svgpath.CommandKind) bool {
	return k == svgpath.QuadTo || k == svgpath.SmoothQuadTo
}

// drawPath interprets a path description onto the sink. The cursor
// starts at the origin with no previous command.
func (c *Converter) drawPath(name, data string, sink svgsink.ShapeSink) error {
	cmds, err := svgpath.Tokenize(name, data)
	if err != nil {
		c.diag(DiagMalformedValue, err.Error())
		return nil
	}
	var cur pathCursor
	for _, cmd := range cmds {
		cur.step(c, cmd, sink)
	}
	return nil
}

// step processes one command, emitting primitives and advancing the
// cursor state.
func (cur *pathCursor) step(c *Converter, cmd svgpath.Command, sink svgsink.ShapeSink) {
	// resolve the endpoint first; relative commands offset from the pen
	ex, ey := cmd.X, cmd.Y
	if cmd.Rel {
		ex += cur.x
		ey += cur.y
	}

	switch cmd.Kind {
	case svgpath.MoveTo:
		cur.x, cur.y = ex, ey
		cur.startX, cur.startY = ex, ey
		sink.MoveTo(ex, ey)

	case svgpath.LineTo:
		cur.x, cur.y = ex, ey
		sink.LineTo(ex, ey)

	case svgpath.HLineTo:
		if cmd.Rel {
			cur.x += cmd.X
		} else {
			cur.x = cmd.X
		}
		sink.LineTo(cur.x, cur.y)

	case svgpath.VLineTo:
		if cmd.Rel {
			cur.y += cmd.Y
		} else {
			cur.y = cmd.Y
		}
		sink.LineTo(cur.x, cur.y)

	case svgpath.ClosePath:
		sink.ClosePath()
		// the pen jumps back to the subpath start
		cur.x, cur.y = cur.startX, cur.startY

	case svgpath.CubicTo:
		c1x, c1y := cmd.X1, cmd.Y1
		c2x, c2y := cmd.X2, cmd.Y2
		if cmd.Rel {
			c1x += cur.x
			c1y += cur.y
			c2x += cur.x
			c2y += cur.y
		}
		sink.CubicBezierTo(c1x, c1y, c2x, c2y, ex, ey)
		cur.x, cur.y = ex, ey
		cur.ctrlX, cur.ctrlY = c2x, c2y

	case svgpath.SmoothCubicTo:
		c2x, c2y := cmd.X2, cmd.Y2
		if cmd.Rel {
			c2x += cur.x
			c2y += cur.y
		}
		if cubicFamily(cur.prevKind) {
			// reflect the previous trailing control across the pen
			c1x := 2*cur.x - cur.ctrlX
			c1y := 2*cur.y - cur.ctrlY
			sink.CubicBezierTo(c1x, c1y, c2x, c2y, ex, ey)
		} else if cmd.Rel {
			// no control to reflect: the relative form draws a
			// quadratic through the given control point
			sink.QuadraticBezierTo(c2x, c2y, ex, ey)
		} else {
			// the absolute form collapses the first control onto the pen
			sink.CubicBezierTo(cur.x, cur.y, c2x, c2y, ex, ey)
		}
		cur.x, cur.y = ex, ey
		cur.ctrlX, cur.ctrlY = c2x, c2y

	case svgpath.QuadTo:
		cx, cy := cmd.X1, cmd.Y1
		if cmd.Rel {
			cx += cur.x
			cy += cur.y
		}
		sink.QuadraticBezierTo(cx, cy, ex, ey)
		cur.x, cur.y = ex, ey
		cur.ctrlX, cur.ctrlY = cx, cy

	case svgpath.SmoothQuadTo:
		if quadFamily(cur.prevKind) {
			cx := 2*cur.x - cur.ctrlX
			cy := 2*cur.y - cur.ctrlY
			sink.QuadraticBezierTo(cx, cy, ex, ey)
			cur.ctrlX, cur.ctrlY = cx, cy
		} else {
			// no control to reflect degrades to a straight line
			sink.LineTo(ex, ey)
			cur.ctrlX, cur.ctrlY = ex, ey
		}
		cur.x, cur.y = ex, ey

	case svgpath.ArcTo:
		segs := svgpath.ArcToCubics(cur.x, cur.y, cmd.Rx, cmd.Ry, cmd.Rotation, cmd.LargeArc, cmd.Sweep, ex, ey)
		if segs == nil {
			// a zero radius arc is drawn as a line
			sink.LineTo(ex, ey)
		}
		for _, s := range segs {
			sink.CubicBezierTo(s.X1, s.Y1, s.X2, s.Y2, s.X, s.Y)
		}
		cur.x, cur.y = ex, ey

	default:
		c.diag(DiagUnsupportedPathCommand, fmt.Sprintf("%q", cmd.Letter))
		return
	}
	cur.prevKind = cmd.Kind
}
