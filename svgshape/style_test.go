package svgshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markupgfx/svggeom/svgcolor"
)

func testConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := New(&Node{Tag: "svg"}, DefaultOptions())
	require.NoError(t, err)
	return c
}

func TestResolveNodeStyleAttrs(t *testing.T) {
	c := testConverter(t)
	n := &Node{Tag: "rect", Attrs: map[string]string{
		"fill":         "red",
		"stroke":       "blue",
		"stroke-width": "3",
		"fill-opacity": "0.25",
	}}
	s := c.resolveNodeStyle(n)
	require.NotNil(t, s.Fill)
	assert.Equal(t, "red", *s.Fill)
	require.NotNil(t, s.Stroke)
	assert.Equal(t, "blue", *s.Stroke)
	require.NotNil(t, s.StrokeWidth)
	assert.Equal(t, 3.0, *s.StrokeWidth)
	require.NotNil(t, s.FillOpacity)
	assert.Equal(t, 0.25, *s.FillOpacity)
	assert.Nil(t, s.Opacity)
	assert.Nil(t, s.StrokeOpacity)
}

func TestStyleShorthandWinsOverAttr(t *testing.T) {
	c := testConverter(t)
	n := &Node{Tag: "rect", Attrs: map[string]string{
		"fill":  "red",
		"style": "fill: green; stroke-width:2",
	}}
	s := c.resolveNodeStyle(n)
	require.NotNil(t, s.Fill)
	assert.Equal(t, "green", *s.Fill)
	require.NotNil(t, s.StrokeWidth)
	assert.Equal(t, 2.0, *s.StrokeWidth)
}

func TestStyleMergeIdempotence(t *testing.T) {
	c := testConverter(t)
	fill := "red"
	op := 0.5
	parent := EffectiveStyle{Fill: &fill, Opacity: &op}

	// a node with nothing local resolves to exactly the parent style
	empty := c.resolveNodeStyle(&Node{Tag: "g"})
	assert.Equal(t, parent, parent.merge(empty))
}

func TestStyleMergeNodeWins(t *testing.T) {
	pf, nf := "red", "green"
	pw := 4.0
	parent := EffectiveStyle{Fill: &pf, StrokeWidth: &pw}
	node := EffectiveStyle{Fill: &nf}
	m := parent.merge(node)
	assert.Equal(t, "green", *m.Fill)
	assert.Equal(t, 4.0, *m.StrokeWidth)
}

func TestIgnoredStyleAttrDiagnostic(t *testing.T) {
	c := testConverter(t)
	n := &Node{Tag: "path", Attrs: map[string]string{"stroke-linejoin": "round"}}
	c.resolveNodeStyle(n)
	require.Len(t, c.Diagnostics(), 1)
	assert.Equal(t, DiagUnsupportedStyleAttr, c.Diagnostics()[0].Kind)
}

func TestResolveFill(t *testing.T) {
	c := testConverter(t)

	// unset fill falls back to the configured default at full opacity
	f := c.resolveFill(EffectiveStyle{}, nil)
	assert.Equal(t, c.opts.FillColor, f.Color)
	assert.Equal(t, 1.0, f.Alpha)

	// none is transparent regardless of fill-opacity
	none := "none"
	op := 0.8
	f = c.resolveFill(EffectiveStyle{Fill: &none, FillOpacity: &op}, nil)
	assert.True(t, f.Invisible())

	red := "red"
	f = c.resolveFill(EffectiveStyle{Fill: &red, FillOpacity: &op}, nil)
	assert.Equal(t, svgcolor.New(255, 0, 0), f.Color)
	assert.Equal(t, 0.8, f.Alpha)

	// a node-local opacity overrides the channel opacity
	local := 0.3
	f = c.resolveFill(EffectiveStyle{Fill: &red, FillOpacity: &op}, &local)
	assert.Equal(t, 0.3, f.Alpha)
}

func TestResolveStroke(t *testing.T) {
	c := testConverter(t)

	// nothing set: no stroke
	s := c.resolveStroke(EffectiveStyle{}, nil)
	assert.True(t, s.Invisible())

	// stroke set without width uses the configured default width
	blue := "blue"
	s = c.resolveStroke(EffectiveStyle{Stroke: &blue}, nil)
	assert.Equal(t, c.opts.LineWidth, s.Width)
	assert.Equal(t, svgcolor.New(0, 0, 255), s.Color)

	// explicit width is clamped to 0.5
	thin := 0.1
	s = c.resolveStroke(EffectiveStyle{Stroke: &blue, StrokeWidth: &thin}, nil)
	assert.Equal(t, 0.5, s.Width)

	// stroke none disables the stroke even with a width
	none := "none"
	w := 3.0
	s = c.resolveStroke(EffectiveStyle{Stroke: &none, StrokeWidth: &w}, nil)
	assert.True(t, s.Invisible())
}
