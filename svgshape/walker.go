// Package svgshape converts an SVG-like markup tree into renderable
// shape geometry: it resolves styles and transforms along the tree,
// interprets path data and feeds the resulting primitives to a
// drawing surface through the svgsink.ShapeSink interface.
package svgshape

import (
	"fmt"
	"io"
	"strings"

	"github.com/markupgfx/svggeom/svgcolor"
	"github.com/markupgfx/svggeom/svgpath"
	"github.com/markupgfx/svggeom/svgsink"
)

// maxTreeDepth bounds the recursion so a pathological document
// cannot exhaust the stack.
const maxTreeDepth = 512

// Options configures a conversion.
type Options struct {
	// LineWidth is the stroke width used when a stroke color is set
	// but no width is given. It is at least 1.
	LineWidth   float64
	LineColor   svgcolor.RGB
	LineOpacity float64
	// FillColor is used when a shape sets no fill at all.
	FillColor   svgcolor.RGB
	FillOpacity float64
	// UnpackTree produces one named record sink per markup node,
	// arranged as a tree mirroring the document, instead of one
	// flat sink.
	UnpackTree bool
	// ErrorMode determines the reaction to unsupported features.
	ErrorMode ErrorMode
}

// DefaultOptions returns the conversion defaults: black fill and
// stroke at full opacity, hairline width 1.
func DefaultOptions() Options {
	return Options{
		LineWidth:   1,
		LineColor:   svgcolor.New(0, 0, 0),
		LineOpacity: 1,
		FillColor:   svgcolor.New(0, 0, 0),
		FillOpacity: 1,
	}
}

// Bounds is a viewport rectangle.
type Bounds struct{ X, Y, W, H float64 }

// Converter walks one markup tree. It is not safe for concurrent
// use: conversion and hit testing share per-call scratch state.
type Converter struct {
	root  *Node
	opts  Options
	diags []Diagnostic

	viewBox Bounds
	result  *svgsink.Container
	records []*svgsink.ShapeRecord

	scratch [2]float64 // hit test scratch point, see PickGraphicsData
}

// New builds a converter over a parsed element tree. A nil root
// fails with InvalidInputError.
func New(root *Node, opts Options) (*Converter, error) {
	if root == nil {
		return nil, InvalidInputError{Reason: "root is not an element"}
	}
	if opts.LineWidth < 1 {
		opts.LineWidth = 1
	}
	return &Converter{root: root, opts: opts}, nil
}

// Read parses markup from the stream and builds a converter over it.
func Read(stream io.Reader, opts Options) (*Converter, error) {
	root, err := ReadDocument(stream)
	if err != nil {
		return nil, err
	}
	return New(root, opts)
}

// ReadString parses markup text and builds a converter over it.
func ReadString(markup string, opts Options) (*Converter, error) {
	return Read(strings.NewReader(markup), opts)
}

// Diagnostics returns the non-fatal findings collected so far.
func (c *Converter) Diagnostics() []Diagnostic {
	return c.diags
}

// ViewBox returns the root viewport, read from the viewBox attribute
// or the width and height attributes. Valid after Convert.
func (c *Converter) ViewBox() Bounds {
	return c.viewBox
}

func (c *Converter) diag(kind DiagnosticKind, detail string) {
	d := Diagnostic{Kind: kind, Detail: detail}
	c.diags = append(c.diags, d)
	if c.opts.ErrorMode == WarnErrorMode {
		Logger().Warn("conversion diagnostic", "kind", kind.String(), "detail", detail)
	}
}

// Convert walks the tree once and returns the resulting container.
// Repeated calls return the same result.
func (c *Converter) Convert() (*svgsink.Container, error) {
	if c.result != nil {
		return c.result, nil
	}
	c.readViewBox()

	cont := &svgsink.Container{Name: nameFor(c.root, 0), Tag: c.root.Tag}
	rootStyle := c.resolveNodeStyle(c.root)
	rootTf := c.nodeTransform(c.root)

	shared := svgsink.NewRecordSink(cont.Name, cont.Tag)
	if err := c.walkChildren(c.root, rootStyle, rootTf, cont, shared, 1); err != nil {
		return nil, err
	}
	if !c.opts.UnpackTree {
		cont.Records = shared.Records()
	}
	c.result = cont
	c.records = cont.AllRecords()
	return cont, nil
}

// ConvertTo walks the tree once, driving the given sink directly.
// The tree is always emitted flat; UnpackTree has no effect here.
func (c *Converter) ConvertTo(sink svgsink.ShapeSink) error {
	c.readViewBox()
	rootStyle := c.resolveNodeStyle(c.root)
	rootTf := c.nodeTransform(c.root)
	return c.walkChildren(c.root, rootStyle, rootTf, nil, sink, 1)
}

func (c *Converter) readViewBox() {
	if c.root.Tag != "svg" {
		return
	}
	if v, ok := c.root.Attr("viewBox"); ok {
		pts, err := svgpath.ParseNumberList(v)
		if err == nil && len(pts) == 4 {
			c.viewBox = Bounds{pts[0], pts[1], pts[2], pts[3]}
			return
		}
		c.diag(DiagMalformedValue, "viewBox="+v)
	}
	c.viewBox.W = c.optionalFloat(c.root, "width", 0)
	c.viewBox.H = c.optionalFloat(c.root, "height", 0)
}

func (c *Converter) nodeTransform(n *Node) svgpath.Matrix2D {
	v, ok := n.Attr("transform")
	if !ok {
		return svgpath.Identity
	}
	return c.compileTransform(v)
}

func isGroup(tag string) bool { return tag == "svg" || tag == "g" }

func nameFor(n *Node, ordinal int) string {
	if id := n.ID(); id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", n.Tag, ordinal)
}

// walkChildren processes the children of n in document order. cont
// is the container receiving records and child containers in unpack
// mode; it is nil when driving an external sink. shared is the flat
// sink used when not unpacking.
func (c *Converter) walkChildren(n *Node, parentStyle EffectiveStyle, parentTf svgpath.Matrix2D, cont *svgsink.Container, shared svgsink.ShapeSink, depth int) error {
	if depth > maxTreeDepth {
		return InvalidInputError{Reason: "markup tree too deep"}
	}
	unpack := c.opts.UnpackTree && cont != nil

	for i, child := range n.Children {
		df, supported := drawFuncs[child.Tag]
		if !supported {
			// skip the whole subtree: drawing the children of an
			// element we do not understand would be worse than
			// dropping it
			c.diag(DiagUnsupportedElement, child.Tag)
			if c.opts.ErrorMode == StrictErrorMode {
				return UnsupportedFeatureError{Feature: child.Tag}
			}
			continue
		}

		nodeStyle := c.resolveNodeStyle(child)
		merged := parentStyle.merge(nodeStyle)
		composed := parentTf
		if tf := c.nodeTransform(child); !tf.IsIdentity() {
			composed = parentTf.Mult(tf)
		}

		if isGroup(child.Tag) {
			childCont := cont
			if unpack {
				childCont = &svgsink.Container{Name: nameFor(child, i), Tag: child.Tag}
				cont.Children = append(cont.Children, childCont)
			}
			if err := c.walkChildren(child, merged, composed, childCont, shared, depth+1); err != nil {
				return err
			}
			continue
		}

		sink := shared
		var local *svgsink.RecordSink
		if unpack {
			local = svgsink.NewRecordSink(nameFor(child, i), child.Tag)
			sink = local
		} else if rs, ok := sink.(*svgsink.RecordSink); ok {
			rs.SetName(nameFor(child, i), child.Tag)
		}

		fill := c.resolveFill(merged, nodeStyle.Opacity)
		stroke := c.resolveStroke(merged, nodeStyle.Opacity)
		sink.SetTransform(composed)
		sink.BeginFill(fill.Color, fill.Alpha)
		sink.SetLineStyle(stroke.Width, stroke.Color, stroke.Alpha)

		if err := df(c, child, sink); err != nil {
			return err
		}
		if unpack {
			cont.Records = append(cont.Records, local.Records()...)
		}

		if len(child.Children) > 0 {
			if err := c.walkChildren(child, merged, composed, cont, shared, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
