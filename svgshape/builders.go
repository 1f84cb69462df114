package svgshape

import (
	"github.com/markupgfx/svggeom/svgpath"
	"github.com/markupgfx/svggeom/svgsink"
)

// This file maps the direct shape elements onto sink calls.

type drawFunc func(c *Converter, n *Node, sink svgsink.ShapeSink) error

var drawFuncs = map[string]drawFunc{
	"svg":      groupF,
	"g":        groupF,
	"path":     pathF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
}

// groups draw nothing themselves
func groupF(*Converter, *Node, svgsink.ShapeSink) error { return nil }

func pathF(c *Converter, n *Node, sink svgsink.ShapeSink) error {
	d, ok := n.Attr("d")
	if !ok {
		return nil
	}
	return c.drawPath(n.ID(), d, sink)
}

// optionalFloat reads an optional numeric attribute, falling back to
// def when absent. A present but malformed value only produces a
// diagnostic.
func (c *Converter) optionalFloat(n *Node, name string, def float64) float64 {
	v, ok := n.Attr(name)
	if !ok {
		return def
	}
	f, err := svgpath.ParseNumber(v)
	if err != nil {
		c.diag(DiagMalformedValue, n.Tag+" "+name+"="+v)
		return def
	}
	return f
}

// requiredFloat reads a required numeric attribute. Absent or
// malformed values propagate as MalformedAttributeError.
func (c *Converter) requiredFloat(n *Node, name string) (float64, error) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, MalformedAttributeError{Tag: n.Tag, Attr: name}
	}
	f, err := svgpath.ParseNumber(v)
	if err != nil {
		return 0, MalformedAttributeError{Tag: n.Tag, Attr: name, Value: v}
	}
	return f, nil
}

func rectF(c *Converter, n *Node, sink svgsink.ShapeSink) error {
	w, err := c.requiredFloat(n, "width")
	if err != nil {
		return err
	}
	h, err := c.requiredFloat(n, "height")
	if err != nil {
		return err
	}
	x := c.optionalFloat(n, "x", 0)
	y := c.optionalFloat(n, "y", 0)
	rx := c.optionalFloat(n, "rx", 0)
	if rx > 0 {
		sink.DrawRoundRect(x, y, w, h, rx)
	} else {
		sink.DrawRect(x, y, w, h)
	}
	return nil
}

func circleF(c *Converter, n *Node, sink svgsink.ShapeSink) error {
	cx := c.optionalFloat(n, "cx", 0)
	cy := c.optionalFloat(n, "cy", 0)
	if n.Tag == "circle" {
		r := c.optionalFloat(n, "r", 0)
		if r > 0 {
			sink.DrawCircle(cx, cy, r)
		}
		return nil
	}
	rx := c.optionalFloat(n, "rx", 0)
	ry := c.optionalFloat(n, "ry", 0)
	if rx > 0 && ry > 0 { // not drawn, but not an error
		sink.DrawEllipse(cx, cy, rx, ry)
	}
	return nil
}

func lineF(c *Converter, n *Node, sink svgsink.ShapeSink) error {
	x1 := c.optionalFloat(n, "x1", 0)
	y1 := c.optionalFloat(n, "y1", 0)
	x2 := c.optionalFloat(n, "x2", 0)
	y2 := c.optionalFloat(n, "y2", 0)
	sink.MoveTo(x1, y1)
	sink.LineTo(x2, y2)
	return nil
}

func (c *Converter) pointsAttr(n *Node) ([]float64, error) {
	v, ok := n.Attr("points")
	if !ok {
		return nil, nil
	}
	pts, err := svgpath.ParseNumberList(v)
	if err != nil {
		return nil, MalformedAttributeError{Tag: n.Tag, Attr: "points", Value: v}
	}
	if len(pts)%2 != 0 {
		return nil, MalformedAttributeError{Tag: n.Tag, Attr: "points", Value: v}
	}
	return pts, nil
}

func polylineF(c *Converter, n *Node, sink svgsink.ShapeSink) error {
	pts, err := c.pointsAttr(n)
	if err != nil {
		return err
	}
	var p svgsink.Path
	p.Polyline(pts)
	p.ReplayTo(sink)
	return nil
}

func polygonF(c *Converter, n *Node, sink svgsink.ShapeSink) error {
	pts, err := c.pointsAttr(n)
	if err != nil {
		return err
	}
	if len(pts) < 6 {
		return nil
	}
	sink.DrawPolygon(pts)
	return nil
}
