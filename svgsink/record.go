package svgsink

import (
	"strconv"

	"github.com/markupgfx/svggeom/svgcolor"
	"github.com/markupgfx/svggeom/svgpath"
)

// ShapeRecord is one captured shape: its styling, transform and
// geometry. When a filled shape contains several subpaths, the first
// becomes the outer Geometry and the rest are kept as Holes, so a
// hit tester can exclude them.
type ShapeRecord struct {
	// Name identifies the shape, from its id attribute when present.
	Name string
	// Tag is the source element name, such as "path" or "rect".
	Tag string

	Fill      FillStyle
	Stroke    StrokeStyle
	Transform svgpath.Matrix2D
	Geometry  Path
	Holes     []*ShapeRecord
}

// ReplayTo issues the record, holes included, onto s as one shape.
func (r *ShapeRecord) ReplayTo(s ShapeSink) {
	s.SetTransform(r.Transform)
	s.BeginFill(r.Fill.Color, r.Fill.Alpha)
	s.SetLineStyle(r.Stroke.Width, r.Stroke.Color, r.Stroke.Alpha)
	r.Geometry.ReplayTo(s)
	for _, h := range r.Holes {
		h.Geometry.ReplayTo(s)
	}
}

// RecordSink is a ShapeSink that captures shapes as ShapeRecords.
// A record is finalized when a style setter arrives after geometry,
// or on Flush.
type RecordSink struct {
	name string
	tag  string

	records []*ShapeRecord

	cur       Path
	fill      FillStyle
	stroke    StrokeStyle
	transform svgpath.Matrix2D
	dirty     bool
	sinceName int
}

// NewRecordSink returns a sink whose records are named after the
// given shape name and element tag.
func NewRecordSink(name, tag string) *RecordSink {
	return &RecordSink{name: name, tag: tag, transform: svgpath.Identity}
}

// Records finalizes any pending geometry and returns the captured
// shapes.
func (rs *RecordSink) Records() []*ShapeRecord {
	rs.Flush()
	return rs.records
}

// SetName names the records captured from here on, finalizing any
// pending geometry first. The first record takes the name as given,
// later ones get an ordinal suffix.
func (rs *RecordSink) SetName(name, tag string) {
	rs.Flush()
	rs.name = name
	rs.tag = tag
	rs.sinceName = 0
}

// Flush finalizes the pending geometry into a record, if any.
func (rs *RecordSink) Flush() {
	if !rs.dirty {
		return
	}
	rs.dirty = false

	name := rs.name
	if rs.sinceName > 0 {
		name += "-" + strconv.Itoa(rs.sinceName+1)
	}
	rs.sinceName++
	rec := &ShapeRecord{
		Name:      name,
		Tag:       rs.tag,
		Fill:      rs.fill,
		Stroke:    rs.stroke,
		Transform: rs.transform,
	}
	rec.Geometry, rec.Holes = splitHoles(rs.cur, rec)
	rs.cur = nil
	rs.records = append(rs.records, rec)
}

// splitHoles separates the subpaths of a filled shape: the first one
// is the outer geometry, later ones are returned as hole records.
// Unfilled shapes keep all subpaths in one geometry.
func splitHoles(p Path, outer *ShapeRecord) (Path, []*ShapeRecord) {
	if outer.Fill.Invisible() {
		return p, nil
	}
	var starts []int
	for i, op := range p {
		if _, ok := op.(MoveTo); ok {
			starts = append(starts, i)
		}
	}
	if len(starts) < 2 {
		return p, nil
	}
	geom := p[:starts[1]]
	holes := make([]*ShapeRecord, 0, len(starts)-1)
	for i := 1; i < len(starts); i++ {
		end := len(p)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		holes = append(holes, &ShapeRecord{
			Name:      outer.Name + "-hole-" + strconv.Itoa(i),
			Tag:       outer.Tag,
			Fill:      outer.Fill,
			Transform: outer.Transform,
			Geometry:  p[starts[i]:end],
		})
	}
	return geom, holes
}

func (rs *RecordSink) BeginFill(color svgcolor.RGB, alpha float64) {
	rs.Flush()
	rs.fill = FillStyle{Color: color, Alpha: alpha}
}

func (rs *RecordSink) SetLineStyle(width float64, color svgcolor.RGB, alpha float64) {
	rs.Flush()
	rs.stroke = StrokeStyle{Width: width, Color: color, Alpha: alpha}
}

func (rs *RecordSink) SetTransform(m svgpath.Matrix2D) {
	rs.Flush()
	rs.transform = m
}

func (rs *RecordSink) MoveTo(x, y float64) {
	rs.cur.Start(x, y)
	rs.dirty = true
}

func (rs *RecordSink) LineTo(x, y float64) {
	rs.cur.Line(x, y)
	rs.dirty = true
}

func (rs *RecordSink) CubicBezierTo(c1x, c1y, c2x, c2y, x, y float64) {
	rs.cur.CubeBezier(c1x, c1y, c2x, c2y, x, y)
	rs.dirty = true
}

func (rs *RecordSink) QuadraticBezierTo(cx, cy, x, y float64) {
	rs.cur.QuadBezier(cx, cy, x, y)
	rs.dirty = true
}

func (rs *RecordSink) ClosePath() {
	rs.cur.Stop(true)
	rs.dirty = true
}

func (rs *RecordSink) DrawRect(x, y, w, h float64) {
	rs.cur.Rect(x, y, w, h)
	rs.dirty = true
}

func (rs *RecordSink) DrawRoundRect(x, y, w, h, radius float64) {
	rs.cur.RoundRect(x, y, w, h, radius)
	rs.dirty = true
}

func (rs *RecordSink) DrawCircle(cx, cy, r float64) {
	rs.cur.Circle(cx, cy, r)
	rs.dirty = true
}

func (rs *RecordSink) DrawEllipse(cx, cy, rx, ry float64) {
	rs.cur.Ellipse(cx, cy, rx, ry)
	rs.dirty = true
}

func (rs *RecordSink) DrawPolygon(points []float64) {
	rs.cur.Polygon(points)
	rs.dirty = true
}
