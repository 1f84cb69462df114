package svgsink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markupgfx/svggeom/svgcolor"
	"github.com/markupgfx/svggeom/svgpath"
)

func TestRecordSinkSingleShape(t *testing.T) {
	rs := NewRecordSink("box", "rect")
	rs.SetTransform(svgpath.Identity.Translate(5, 5))
	rs.BeginFill(svgcolor.New(255, 0, 0), 1)
	rs.SetLineStyle(2, svgcolor.New(0, 0, 0), 1)
	rs.DrawRect(0, 0, 10, 10)

	recs := rs.Records()
	require.Len(t, recs, 1)
	r := recs[0]
	assert.Equal(t, "box", r.Name)
	assert.Equal(t, "rect", r.Tag)
	assert.Equal(t, FillStyle{svgcolor.New(255, 0, 0), 1}, r.Fill)
	assert.Equal(t, 2.0, r.Stroke.Width)
	assert.Equal(t, 5.0, r.Transform.E)
	assert.NotEmpty(t, r.Geometry)
	assert.Empty(t, r.Holes)
}

func TestRecordSinkStyleChangeStartsNewRecord(t *testing.T) {
	rs := NewRecordSink("s", "path")
	rs.BeginFill(svgcolor.New(255, 0, 0), 1)
	rs.MoveTo(0, 0)
	rs.LineTo(10, 0)
	rs.ClosePath()

	rs.BeginFill(svgcolor.New(0, 255, 0), 1)
	rs.MoveTo(20, 0)
	rs.LineTo(30, 0)
	rs.ClosePath()

	recs := rs.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "s", recs[0].Name)
	assert.Equal(t, "s-2", recs[1].Name)
	assert.Equal(t, uint8(255), recs[0].Fill.Color.R())
	assert.Equal(t, uint8(255), recs[1].Fill.Color.G())
}

func TestRecordSinkHoleSplit(t *testing.T) {
	rs := NewRecordSink("donut", "path")
	rs.BeginFill(svgcolor.New(0, 0, 255), 1)
	// outer square
	rs.MoveTo(0, 0)
	rs.LineTo(10, 0)
	rs.LineTo(10, 10)
	rs.LineTo(0, 10)
	rs.ClosePath()
	// inner square
	rs.MoveTo(3, 3)
	rs.LineTo(7, 3)
	rs.LineTo(7, 7)
	rs.LineTo(3, 7)
	rs.ClosePath()

	recs := rs.Records()
	require.Len(t, recs, 1)
	r := recs[0]
	require.Len(t, r.Holes, 1)
	assert.Equal(t, "donut-hole-1", r.Holes[0].Name)
	assert.Len(t, r.Geometry, 5)
	assert.Len(t, r.Holes[0].Geometry, 5)
}

func TestRecordSinkNoHolesWithoutFill(t *testing.T) {
	rs := NewRecordSink("lines", "path")
	rs.SetLineStyle(1, svgcolor.New(0, 0, 0), 1)
	rs.MoveTo(0, 0)
	rs.LineTo(10, 0)
	rs.MoveTo(0, 5)
	rs.LineTo(10, 5)

	recs := rs.Records()
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Holes)
	assert.Len(t, recs[0].Geometry, 4)
}

func TestShapeRecordReplay(t *testing.T) {
	rs := NewRecordSink("donut", "path")
	rs.BeginFill(svgcolor.New(0, 0, 255), 0.5)
	rs.MoveTo(0, 0)
	rs.LineTo(10, 0)
	rs.LineTo(5, 10)
	rs.ClosePath()
	rs.MoveTo(4, 2)
	rs.LineTo(6, 2)
	rs.LineTo(5, 4)
	rs.ClosePath()
	recs := rs.Records()
	require.Len(t, recs, 1)

	// replaying the record into a fresh sink reassembles the shape,
	// holes included
	rs2 := NewRecordSink("copy", "path")
	recs[0].ReplayTo(rs2)
	recs2 := rs2.Records()
	require.Len(t, recs2, 1)
	assert.Equal(t, recs[0].Fill, recs2[0].Fill)
	assert.Equal(t, recs[0].Geometry.ToSVGPath(), recs2[0].Geometry.ToSVGPath())
	require.Len(t, recs2[0].Holes, 1)
	assert.Equal(t, recs[0].Holes[0].Geometry.ToSVGPath(), recs2[0].Holes[0].Geometry.ToSVGPath())
}

func TestPathToSVGPath(t *testing.T) {
	var p Path
	p.Start(0, 0)
	p.Line(10, 0)
	p.QuadBezier(15, 5, 10, 10)
	p.Stop(true)
	assert.Equal(t, "M0.000,0.000 L10.000,0.000 Q15.000,5.000,10.000,10.000 Z", p.ToSVGPath())
}

func TestContainerTree(t *testing.T) {
	inner := &Container{Name: "group1", Tag: "g"}
	rs := NewRecordSink("dot", "circle")
	rs.BeginFill(svgcolor.New(1, 2, 3), 1)
	rs.DrawCircle(5, 5, 2)
	inner.Records = rs.Records()

	root := &Container{Name: "root", Tag: "svg", Children: []*Container{inner}}
	assert.Len(t, root.AllRecords(), 1)
	assert.Equal(t, inner, root.Find("group1"))
	assert.Nil(t, root.Find("missing"))
}
