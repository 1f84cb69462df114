// Implements a raster backend for converted shape geometry,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/markupgfx/svggeom/svgcolor"
	"github.com/markupgfx/svggeom/svgpath"
	"github.com/markupgfx/svggeom/svgshape"
	"github.com/markupgfx/svggeom/svgsink"
)

var _ svgsink.ShapeSink = (*Renderer)(nil) // assert interface conformance

// Renderer rasterizes incoming shapes. Filling and stroking use
// separate rasterx instances to avoid shared state. A pending shape
// is drawn when the next style setter arrives, or on Flush.
type Renderer struct {
	filler *rasterx.Filler
	dasher *rasterx.Dasher

	transform svgpath.Matrix2D
	fill      svgsink.FillStyle
	stroke    svgsink.StrokeStyle
	dirty     bool

	scratch svgsink.Path // reused when reducing direct shapes
}

// NewRenderer returns a renderer drawing through the given scanner.
// In addition to rasterizing lines, it can also rasterize quadratic
// and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		filler:    rasterx.NewFiller(width, height, scanner),
		dasher:    rasterx.NewDasher(width, height, scanner),
		transform: svgpath.Identity,
	}
}

// RasterToImage converts the markup stream and rasterizes it into an
// image sized from its view box.
func RasterToImage(markup io.Reader) (*image.RGBA, error) {
	conv, err := svgshape.Read(markup, svgshape.DefaultOptions())
	if err != nil {
		return nil, err
	}
	cont, err := conv.Convert()
	if err != nil {
		return nil, err
	}
	vb := conv.ViewBox()
	w, h := int(vb.W), int(vb.H)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	cont.ReplayTo(renderer)
	renderer.Flush()
	return img, nil
}

// Flush draws the pending shape, if any.
func (rd *Renderer) Flush() {
	if !rd.dirty {
		return
	}
	rd.dirty = false

	if !rd.fill.Invisible() {
		rd.filler.Scanner.SetColor(rasterx.ApplyOpacity(rd.fill.Color.NRGBA(1), rd.fill.Alpha))
		rd.filler.Draw()
	}
	rd.filler.Clear()

	if !rd.stroke.Invisible() {
		rd.dasher.Scanner.SetColor(rasterx.ApplyOpacity(rd.stroke.Color.NRGBA(1), rd.stroke.Alpha))
		rd.dasher.SetStroke(
			fixed.Int26_6(rd.stroke.Width*64), fixed.Int26_6(4*64),
			rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap,
			rasterx.Bevel, nil, 0,
		)
		rd.dasher.Draw()
	}
	rd.dasher.Clear()
}

func (rd *Renderer) BeginFill(color svgcolor.RGB, alpha float64) {
	rd.Flush()
	rd.fill = svgsink.FillStyle{Color: color, Alpha: alpha}
}

func (rd *Renderer) SetLineStyle(width float64, color svgcolor.RGB, alpha float64) {
	rd.Flush()
	rd.stroke = svgsink.StrokeStyle{Width: width, Color: color, Alpha: alpha}
}

func (rd *Renderer) SetTransform(m svgpath.Matrix2D) {
	rd.Flush()
	rd.transform = m
}

// point maps user coordinates through the current transform into
// the fixed point space of rasterx.
func (rd *Renderer) point(x, y float64) fixed.Point26_6 {
	tx, ty := rd.transform.Apply(x, y)
	return fixed.Point26_6{X: fixed.Int26_6(tx * 64), Y: fixed.Int26_6(ty * 64)}
}

func (rd *Renderer) MoveTo(x, y float64) {
	// implicit close if currently in path
	rd.filler.Stop(false)
	rd.dasher.Stop(false)
	p := rd.point(x, y)
	rd.filler.Start(p)
	rd.dasher.Start(p)
	rd.dirty = true
}

func (rd *Renderer) LineTo(x, y float64) {
	p := rd.point(x, y)
	rd.filler.Line(p)
	rd.dasher.Line(p)
	rd.dirty = true
}

func (rd *Renderer) QuadraticBezierTo(cx, cy, x, y float64) {
	b, c := rd.point(cx, cy), rd.point(x, y)
	rd.filler.QuadBezier(b, c)
	rd.dasher.QuadBezier(b, c)
	rd.dirty = true
}

func (rd *Renderer) CubicBezierTo(c1x, c1y, c2x, c2y, x, y float64) {
	b, c, d := rd.point(c1x, c1y), rd.point(c2x, c2y), rd.point(x, y)
	rd.filler.CubeBezier(b, c, d)
	rd.dasher.CubeBezier(b, c, d)
	rd.dirty = true
}

func (rd *Renderer) ClosePath() {
	rd.filler.Stop(true)
	rd.dasher.Stop(true)
	rd.dirty = true
}

// the direct shape forms reduce to paths

func (rd *Renderer) DrawRect(x, y, w, h float64) {
	rd.scratch.Clear()
	rd.scratch.Rect(x, y, w, h)
	rd.scratch.ReplayTo(rd)
}

func (rd *Renderer) DrawRoundRect(x, y, w, h, radius float64) {
	rd.scratch.Clear()
	rd.scratch.RoundRect(x, y, w, h, radius)
	rd.scratch.ReplayTo(rd)
}

func (rd *Renderer) DrawCircle(cx, cy, r float64) {
	rd.scratch.Clear()
	rd.scratch.Circle(cx, cy, r)
	rd.scratch.ReplayTo(rd)
}

func (rd *Renderer) DrawEllipse(cx, cy, rx, ry float64) {
	rd.scratch.Clear()
	rd.scratch.Ellipse(cx, cy, rx, ry)
	rd.scratch.ReplayTo(rd)
}

func (rd *Renderer) DrawPolygon(points []float64) {
	rd.scratch.Clear()
	rd.scratch.Polygon(points)
	rd.scratch.ReplayTo(rd)
}
