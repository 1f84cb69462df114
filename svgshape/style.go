package svgshape

import (
	"strings"

	"github.com/markupgfx/svggeom/svgcolor"
	"github.com/markupgfx/svggeom/svgpath"
	"github.com/markupgfx/svggeom/svgsink"
)

// EffectiveStyle is the resolved presentation state of a node. Nil
// fields are unset; inheritance fills them from the parent when the
// walker merges styles.
type EffectiveStyle struct {
	Fill          *string
	FillOpacity   *float64
	Stroke        *string
	StrokeOpacity *float64
	StrokeWidth   *float64
	Opacity       *float64
}

// ignoredStyleAttrs are recognized presentation attributes that
// carry no effect here; they are reported as diagnostics only.
var ignoredStyleAttrs = map[string]bool{
	"stroke-linejoin": true,
	"stroke-linecap":  true,
	"fill-rule":       true,
}

// resolveNodeStyle reads the presentation attributes and the style
// shorthand of one node. Shorthand entries win over attributes of
// the same name. Unset fields stay nil; the walker applies
// inheritance separately.
func (c *Converter) resolveNodeStyle(n *Node) EffectiveStyle {
	var s EffectiveStyle
	for k, v := range n.Attrs {
		c.readStyleAttr(&s, strings.ToLower(k), v)
	}
	if shorthand, ok := n.Attr("style"); ok {
		for _, pair := range strings.Split(shorthand, ";") {
			k, v, ok := strings.Cut(pair, ":")
			if !ok {
				continue
			}
			c.readStyleAttr(&s, strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v))
		}
	}
	return s
}

func (c *Converter) readStyleAttr(s *EffectiveStyle, k, v string) {
	switch k {
	case "fill":
		s.Fill = &v
	case "stroke":
		s.Stroke = &v
	case "opacity":
		s.Opacity = c.floatValue(k, v)
	case "fill-opacity":
		s.FillOpacity = c.floatValue(k, v)
	case "stroke-opacity":
		s.StrokeOpacity = c.floatValue(k, v)
	case "stroke-width":
		s.StrokeWidth = c.floatValue(k, v)
	default:
		if ignoredStyleAttrs[k] {
			c.diag(DiagUnsupportedStyleAttr, k)
		}
	}
}

func (c *Converter) floatValue(k, v string) *float64 {
	f, err := svgpath.ParseNumber(v)
	if err != nil {
		c.diag(DiagMalformedValue, k+"="+v)
		return nil
	}
	return &f
}

// merge overlays the node's own style onto the inherited one,
// field by field, with the node winning. A node that sets nothing
// resolves to exactly its parent's style.
func (parent EffectiveStyle) merge(node EffectiveStyle) EffectiveStyle {
	out := parent
	if node.Fill != nil {
		out.Fill = node.Fill
	}
	if node.FillOpacity != nil {
		out.FillOpacity = node.FillOpacity
	}
	if node.Stroke != nil {
		out.Stroke = node.Stroke
	}
	if node.StrokeOpacity != nil {
		out.StrokeOpacity = node.StrokeOpacity
	}
	if node.StrokeWidth != nil {
		out.StrokeWidth = node.StrokeWidth
	}
	if node.Opacity != nil {
		out.Opacity = node.Opacity
	}
	return out
}

// noPaint matches the fill and stroke values that disable painting.
func noPaint(v string) bool {
	return v == "none" || v == "transparent"
}

// resolveFill turns the merged style into a concrete fill. An
// explicit opacity on the node itself overrides the fill-opacity
// channel for that node only.
func (c *Converter) resolveFill(merged EffectiveStyle, localOpacity *float64) svgsink.FillStyle {
	if merged.Fill == nil {
		return svgsink.FillStyle{Color: c.opts.FillColor, Alpha: 1}
	}
	if noPaint(*merged.Fill) {
		return svgsink.FillStyle{}
	}
	col, err := svgcolor.Parse(*merged.Fill)
	if err != nil {
		c.diag(DiagMalformedValue, "fill="+*merged.Fill)
		col = c.opts.FillColor
	}
	alpha := c.opts.FillOpacity
	if merged.FillOpacity != nil {
		alpha = *merged.FillOpacity
	}
	if localOpacity != nil {
		alpha = *localOpacity
	}
	return svgsink.FillStyle{Color: col, Alpha: alpha}
}

// resolveStroke turns the merged style into a concrete stroke. An
// explicit width is clamped to a minimum of 0.5; without a width the
// configured default applies only when a stroke color is set.
func (c *Converter) resolveStroke(merged EffectiveStyle, localOpacity *float64) svgsink.StrokeStyle {
	hasStroke := merged.Stroke != nil && !noPaint(*merged.Stroke)
	strokeOff := merged.Stroke != nil && noPaint(*merged.Stroke)

	var width float64
	switch {
	case strokeOff:
		width = 0
	case merged.StrokeWidth != nil:
		width = *merged.StrokeWidth
		if width < 0.5 {
			width = 0.5
		}
	case hasStroke:
		width = c.opts.LineWidth
	}

	col := c.opts.LineColor
	if hasStroke {
		parsed, err := svgcolor.Parse(*merged.Stroke)
		if err != nil {
			c.diag(DiagMalformedValue, "stroke="+*merged.Stroke)
		} else {
			col = parsed
		}
	}

	alpha := c.opts.LineOpacity
	if merged.StrokeOpacity != nil {
		alpha = *merged.StrokeOpacity
	}
	if localOpacity != nil {
		alpha = *localOpacity
	}
	return svgsink.StrokeStyle{Width: width, Color: col, Alpha: alpha}
}
