package svgshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markupgfx/svggeom/svgcolor"
	"github.com/markupgfx/svggeom/svgsink"
)

const sampleDoc = `<svg width="100" height="100">
	<g transform="translate(10,0)" fill="red">
		<rect id="box" x="1" y="2" width="30" height="20"/>
	</g>
	<circle id="dot" cx="50" cy="50" r="10" fill="#00ff00" fill-opacity="0.5"/>
</svg>`

func TestConvertFlat(t *testing.T) {
	c, err := ReadString(sampleDoc, DefaultOptions())
	require.NoError(t, err)
	cont, err := c.Convert()
	require.NoError(t, err)

	assert.Equal(t, "svg", cont.Tag)
	assert.Empty(t, cont.Children)
	require.Len(t, cont.Records, 2)

	box := cont.Records[0]
	assert.Equal(t, "rect", box.Tag)
	assert.Equal(t, svgcolor.New(255, 0, 0), box.Fill.Color)
	assert.Equal(t, 10.0, box.Transform.E)
	assert.NotEmpty(t, box.Geometry)

	dot := cont.Records[1]
	assert.Equal(t, "circle", dot.Tag)
	assert.Equal(t, svgcolor.New(0, 255, 0), dot.Fill.Color)
	assert.Equal(t, 0.5, dot.Fill.Alpha)
}

func TestConvertUnpacked(t *testing.T) {
	opts := DefaultOptions()
	opts.UnpackTree = true
	c, err := ReadString(sampleDoc, opts)
	require.NoError(t, err)
	cont, err := c.Convert()
	require.NoError(t, err)

	// the group becomes a child container holding the rect record
	require.Len(t, cont.Children, 1)
	g := cont.Children[0]
	assert.Equal(t, "g", g.Tag)
	assert.Equal(t, "g-0", g.Name)
	require.Len(t, g.Records, 1)
	assert.Equal(t, "box", g.Records[0].Name)

	// the circle is named from its id and stays at the root
	require.Len(t, cont.Records, 1)
	assert.Equal(t, "dot", cont.Records[0].Name)
}

func TestConvertViewBox(t *testing.T) {
	c, err := ReadString(`<svg viewBox="0 0 24 24"><rect width="1" height="1"/></svg>`, DefaultOptions())
	require.NoError(t, err)
	_, err = c.Convert()
	require.NoError(t, err)
	assert.Equal(t, Bounds{0, 0, 24, 24}, c.ViewBox())

	c, err = ReadString(sampleDoc, DefaultOptions())
	require.NoError(t, err)
	_, err = c.Convert()
	require.NoError(t, err)
	assert.Equal(t, Bounds{0, 0, 100, 100}, c.ViewBox())
}

func TestConvertInheritsStyle(t *testing.T) {
	doc := `<svg>
		<g fill="red" stroke="blue" opacity="0.5">
			<rect width="10" height="10"/>
		</g>
	</svg>`
	c, err := ReadString(doc, DefaultOptions())
	require.NoError(t, err)
	cont, err := c.Convert()
	require.NoError(t, err)
	require.Len(t, cont.Records, 1)

	r := cont.Records[0]
	assert.Equal(t, svgcolor.New(255, 0, 0), r.Fill.Color)
	assert.Equal(t, svgcolor.New(0, 0, 255), r.Stroke.Color)
	// the group's opacity override applies to the group only, not
	// to the child's channels
	assert.Equal(t, 1.0, r.Fill.Alpha)
}

func TestConvertLocalOpacityOverridesChannels(t *testing.T) {
	doc := `<svg><rect width="10" height="10" fill="red" fill-opacity="0.9" opacity="0.4" stroke="blue" stroke-opacity="0.8"/></svg>`
	c, err := ReadString(doc, DefaultOptions())
	require.NoError(t, err)
	cont, err := c.Convert()
	require.NoError(t, err)
	require.Len(t, cont.Records, 1)
	assert.Equal(t, 0.4, cont.Records[0].Fill.Alpha)
	assert.Equal(t, 0.4, cont.Records[0].Stroke.Alpha)
}

func TestConvertTransformComposition(t *testing.T) {
	doc := `<svg>
		<g transform="translate(10,0)">
			<g transform="scale(2)">
				<rect width="5" height="5"/>
			</g>
		</g>
	</svg>`
	c, err := ReadString(doc, DefaultOptions())
	require.NoError(t, err)
	cont, err := c.Convert()
	require.NoError(t, err)
	require.Len(t, cont.Records, 1)

	x, y := cont.Records[0].Transform.Apply(1, 1)
	assert.InDelta(t, 12.0, x, 1e-9)
	assert.InDelta(t, 2.0, y, 1e-9)
}

func TestConvertRectMissingSizeFails(t *testing.T) {
	c, err := ReadString(`<svg><rect x="1" height="5"/></svg>`, DefaultOptions())
	require.NoError(t, err)
	_, err = c.Convert()
	var malformed MalformedAttributeError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "width", malformed.Attr)
}

func TestConvertRoundedRect(t *testing.T) {
	c, err := ReadString(`<svg><rect width="20" height="20" rx="5"/></svg>`, DefaultOptions())
	require.NoError(t, err)
	cont, err := c.Convert()
	require.NoError(t, err)
	require.Len(t, cont.Records, 1)
	assert.True(t, hasCubic(cont.Records[0].Geometry))

	c, err = ReadString(`<svg><rect width="20" height="20" rx="0"/></svg>`, DefaultOptions())
	require.NoError(t, err)
	cont, err = c.Convert()
	require.NoError(t, err)
	require.Len(t, cont.Records, 1)
	assert.False(t, hasCubic(cont.Records[0].Geometry))
}

func hasCubic(p svgsink.Path) bool {
	for _, op := range p {
		if _, ok := op.(svgsink.CubicTo); ok {
			return true
		}
	}
	return false
}

func TestConvertUnknownElementSkipsSubtree(t *testing.T) {
	doc := `<svg>
		<defs><rect width="10" height="10"/></defs>
		<rect width="5" height="5"/>
	</svg>`
	c, err := ReadString(doc, DefaultOptions())
	require.NoError(t, err)
	cont, err := c.Convert()
	require.NoError(t, err)
	assert.Len(t, cont.Records, 1)
	require.Len(t, c.Diagnostics(), 1)
	assert.Equal(t, DiagUnsupportedElement, c.Diagnostics()[0].Kind)
}

func TestConvertUnknownElementStrict(t *testing.T) {
	opts := DefaultOptions()
	opts.ErrorMode = StrictErrorMode
	c, err := ReadString(`<svg><marquee/></svg>`, opts)
	require.NoError(t, err)
	_, err = c.Convert()
	var uerr UnsupportedFeatureError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "marquee", uerr.Feature)
}

func TestConvertPolygonAndPolyline(t *testing.T) {
	doc := `<svg>
		<polygon points="0,0 10,0 5,10"/>
		<polyline points="0,0 10,0 10,10"/>
	</svg>`
	c, err := ReadString(doc, DefaultOptions())
	require.NoError(t, err)
	cont, err := c.Convert()
	require.NoError(t, err)
	require.Len(t, cont.Records, 2)

	// the polygon closes, the polyline does not
	closed := func(p svgsink.Path) bool {
		_, ok := p[len(p)-1].(svgsink.Close)
		return ok
	}
	assert.True(t, closed(cont.Records[0].Geometry))
	assert.False(t, closed(cont.Records[1].Geometry))
}

func TestConvertToExternalSink(t *testing.T) {
	c, err := ReadString(sampleDoc, DefaultOptions())
	require.NoError(t, err)
	sink := svgsink.NewRecordSink("out", "svg")
	require.NoError(t, c.ConvertTo(sink))
	assert.Len(t, sink.Records(), 2)
}
