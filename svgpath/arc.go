package svgpath

import "math"

// maxEta is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxEta float64 = math.Pi / 8

// CubicSegment is one cubic bezier piece of a flattened arc.
// The start point is implicit (the previous endpoint).
type CubicSegment struct {
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

// ArcToCubics converts an elliptical arc command into cubic bezier
// segments, starting at (px, py) and ending exactly at (ex, ey).
// rotDeg is the x-axis rotation in degrees. A nil result means the
// arc is degenerate (zero radius) and should be drawn as a line.
//
// The approximation follows L. Maisonobe, "Drawing an elliptical arc
// using polylines, quadratic or cubic Bezier curves", 2003.
// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
func ArcToCubics(px, py, rx, ry, rotDeg float64, largeArc, sweep bool, ex, ey float64) []CubicSegment {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return nil
	}
	rotX := rotDeg * math.Pi / 180
	cx, cy := findEllipseCenter(&rx, &ry, rotX, px, py, ex, ey, sweep, !largeArc)

	startAngle := math.Atan2(py-cy, px-cx) - rotX
	endAngle := math.Atan2(ey-cy, ex-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if (arcBig && !largeArc) || (!arcBig && largeArc) { // Go has no boolean XOR
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the ellipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	segs := int(math.Abs(deltaEta)/maxEta) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := px, py
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)

	out := make([]CubicSegment, 0, segs)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var qx, qy float64
		if i == segs {
			qx, qy = ex, ey // just makes the end point exact; no roundoff error
		} else {
			qx, qy = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		out = append(out, CubicSegment{
			X1: lx + alpha*ldx, Y1: ly + alpha*ldy,
			X2: qx - alpha*dx, Y2: qy - alpha*dy,
			X: qx, Y: qy,
		})
		lx, ly, ldx, ldy = qx, qy, dx, dy
	}
	return out
}

// ellipsePrime gives tangent vectors for the parameterized ellipse;
// a, b radii, eta parameter.
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for the parameterized ellipse;
// a, b radii, eta parameter, center cx, cy.
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio. ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
