package svgsink

// This file reduces the direct shape forms to path operations.

// kappa scales a radius to the control point distance of a cubic
// approximating a quarter circle.
const kappa = 0.5522847498307935

// Rect appends a closed axis aligned rectangle.
func (p *Path) Rect(x, y, w, h float64) {
	p.Start(x, y)
	p.Line(x+w, y)
	p.Line(x+w, y+h)
	p.Line(x, y+h)
	p.Stop(true)
}

// RoundRect appends a closed rectangle with circular corners of the
// given radius. The radius is clamped to half the shorter side; a
// radius of 0 falls back to a plain rectangle.
func (p *Path) RoundRect(x, y, w, h, radius float64) {
	if radius <= 0 {
		p.Rect(x, y, w, h)
		return
	}
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	k := radius * kappa
	p.Start(x+radius, y)
	p.Line(x+w-radius, y)
	p.CubeBezier(x+w-radius+k, y, x+w, y+radius-k, x+w, y+radius)
	p.Line(x+w, y+h-radius)
	p.CubeBezier(x+w, y+h-radius+k, x+w-radius+k, y+h, x+w-radius, y+h)
	p.Line(x+radius, y+h)
	p.CubeBezier(x+radius-k, y+h, x, y+h-radius+k, x, y+h-radius)
	p.Line(x, y+radius)
	p.CubeBezier(x, y+radius-k, x+radius-k, y, x+radius, y)
	p.Stop(true)
}

// Ellipse appends a closed ellipse approximated by four cubics.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	p.Start(cx+rx, cy)
	p.CubeBezier(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeBezier(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeBezier(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeBezier(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Stop(true)
}

// Circle appends a closed circle.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Polygon appends a closed polygon from interleaved x, y pairs.
// Fewer than three points append nothing.
func (p *Path) Polygon(points []float64) {
	if len(points) < 6 {
		return
	}
	p.Start(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		p.Line(points[i], points[i+1])
	}
	p.Stop(true)
}

// Polyline appends an open run of line segments from interleaved
// x, y pairs. Fewer than two points append nothing.
func (p *Path) Polyline(points []float64) {
	if len(points) < 4 {
		return
	}
	p.Start(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		p.Line(points[i], points[i+1])
	}
}
