package svgshape

import (
	"math"

	"github.com/markupgfx/svggeom/svgsink"
)

// This file implements hit testing over the converted records using
// the non-zero winding rule, with curves adaptively flattened.

// flattenTolerance is the maximum chord distance when reducing a
// curve to line segments for winding tests.
const flattenTolerance = 0.1

// PickGraphicsData returns the records containing the point (x, y),
// given in the root coordinate frame. Records with an invisible fill
// are skipped, and a record whose hole contains the point does not
// match. With all=false the first match is returned alone.
//
// The converter reuses one scratch point across records, so a single
// converter must not be hit tested from multiple goroutines at once.
func (c *Converter) PickGraphicsData(x, y float64, all bool) []*svgsink.ShapeRecord {
	if c.result == nil {
		if _, err := c.Convert(); err != nil {
			return nil
		}
	}
	var out []*svgsink.ShapeRecord
	for _, r := range c.records {
		if r.Fill.Invisible() {
			continue
		}
		inv, ok := r.Transform.Invert()
		if !ok {
			// a degenerate transform paints nothing hit testable
			continue
		}
		c.scratch[0], c.scratch[1] = inv.Apply(x, y)
		if pathWinding(r.Geometry, c.scratch[0], c.scratch[1]) == 0 {
			continue
		}
		inHole := false
		for _, h := range r.Holes {
			if pathWinding(h.Geometry, c.scratch[0], c.scratch[1]) != 0 {
				inHole = true
				break
			}
		}
		if inHole {
			continue
		}
		out = append(out, r)
		if !all {
			break
		}
	}
	return out
}

// pathWinding returns the winding number of the point relative to
// the path, using a horizontal ray to the right. Unclosed subpaths
// are closed implicitly, matching how a fill renders them.
func pathWinding(p svgsink.Path, px, py float64) int {
	var winding int
	var curX, curY, startX, startY float64
	open := false
	for _, op := range p {
		switch op := op.(type) {
		case svgsink.MoveTo:
			if open {
				winding += lineWinding(curX, curY, startX, startY, px, py)
			}
			open = true
			curX, curY = op.X, op.Y
			startX, startY = op.X, op.Y
		case svgsink.LineTo:
			winding += lineWinding(curX, curY, op.X, op.Y, px, py)
			curX, curY = op.X, op.Y
			open = true
		case svgsink.QuadTo:
			winding += quadWinding(curX, curY, op[0].X, op[0].Y, op[1].X, op[1].Y, px, py)
			curX, curY = op[1].X, op[1].Y
			open = true
		case svgsink.CubicTo:
			winding += cubicWinding(curX, curY, op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y, px, py)
			curX, curY = op[2].X, op[2].Y
			open = true
		case svgsink.Close:
			winding += lineWinding(curX, curY, startX, startY, px, py)
			curX, curY = startX, startY
			open = false
		}
	}
	if open {
		winding += lineWinding(curX, curY, startX, startY, px, py)
	}
	return winding
}

func lineWinding(x0, y0, x1, y1, px, py float64) int {
	if y0 <= py && y1 > py {
		// upward crossing
		if isLeft(x0, y0, x1, y1, px, py) > 0 {
			return 1
		}
	} else if y0 > py && y1 <= py {
		// downward crossing
		if isLeft(x0, y0, x1, y1, px, py) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft is positive when the point lies left of the line from
// (x0,y0) to (x1,y1), negative when right, zero when on it.
func isLeft(x0, y0, x1, y1, px, py float64) float64 {
	return (x1-x0)*(py-y0) - (px-x0)*(y1-y0)
}

func quadWinding(x0, y0, cx, cy, x1, y1, px, py float64) int {
	if py < math.Min(math.Min(y0, cy), y1) || py > math.Max(math.Max(y0, cy), y1) {
		return 0
	}
	if px > math.Max(math.Max(x0, cx), x1) {
		return 0
	}
	var winding int
	flattenQuadWinding(x0, y0, cx, cy, x1, y1, px, py, &winding)
	return winding
}

func flattenQuadWinding(x0, y0, cx, cy, x1, y1, px, py float64, winding *int) {
	// flatness: distance from the control point to the chord midpoint
	mx, my := (x0+x1)/2, (y0+y1)/2
	if math.Hypot(cx-mx, cy-my) <= flattenTolerance {
		*winding += lineWinding(x0, y0, x1, y1, px, py)
		return
	}
	// subdivide at the parametric midpoint
	ax, ay := (x0+cx)/2, (y0+cy)/2
	bx, by := (cx+x1)/2, (cy+y1)/2
	qx, qy := (ax+bx)/2, (ay+by)/2
	flattenQuadWinding(x0, y0, ax, ay, qx, qy, px, py, winding)
	flattenQuadWinding(qx, qy, bx, by, x1, y1, px, py, winding)
}

func cubicWinding(x0, y0, c1x, c1y, c2x, c2y, x1, y1, px, py float64) int {
	if py < math.Min(math.Min(y0, c1y), math.Min(c2y, y1)) ||
		py > math.Max(math.Max(y0, c1y), math.Max(c2y, y1)) {
		return 0
	}
	if px > math.Max(math.Max(x0, c1x), math.Max(c2x, x1)) {
		return 0
	}
	var winding int
	flattenCubicWinding(x0, y0, c1x, c1y, c2x, c2y, x1, y1, px, py, &winding)
	return winding
}

func flattenCubicWinding(x0, y0, c1x, c1y, c2x, c2y, x1, y1, px, py float64, winding *int) {
	if cubicFlatness(x0, y0, c1x, c1y, c2x, c2y, x1, y1) <= flattenTolerance {
		*winding += lineWinding(x0, y0, x1, y1, px, py)
		return
	}
	// de Casteljau subdivision at the parametric midpoint
	ax, ay := (x0+c1x)/2, (y0+c1y)/2
	bx, by := (c1x+c2x)/2, (c1y+c2y)/2
	dx, dy := (c2x+x1)/2, (c2y+y1)/2
	ex, ey := (ax+bx)/2, (ay+by)/2
	fx, fy := (bx+dx)/2, (by+dy)/2
	mx, my := (ex+fx)/2, (ey+fy)/2
	flattenCubicWinding(x0, y0, ax, ay, ex, ey, mx, my, px, py, winding)
	flattenCubicWinding(mx, my, fx, fy, dx, dy, x1, y1, px, py, winding)
}

// cubicFlatness measures how far the control points stray from the
// chord.
func cubicFlatness(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float64) float64 {
	ux := 3*c1x - 2*x0 - x1
	uy := 3*c1y - 2*y0 - y1
	vx := 3*c2x - x0 - 2*x1
	vy := 3*c2y - y0 - 2*y1
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy) / 16
}
