package svgshape

import (
	"fmt"
	"math"

	"github.com/markupgfx/svggeom/svgpath"
)

// compileTransform folds a transform attribute into one matrix.
// The lexed entries are processed last to first, pre-multiplying
// each onto the accumulator, which is equivalent to applying them
// left to right as nested local frames. An explicit matrix(...)
// entry is authoritative: it becomes the whole result and any
// entries listed before it are dropped.
func (c *Converter) compileTransform(value string) svgpath.Matrix2D {
	entries, err := svgpath.ParseTransformList(value)
	if err != nil {
		c.diag(DiagMalformedValue, "transform: "+err.Error())
		return svgpath.Identity
	}
	acc := svgpath.Identity
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		p := e.Params
		switch e.Name {
		case "matrix":
			if len(p) != 6 {
				c.diagTransformArity(e)
				continue
			}
			return svgpath.Matrix2D{A: p[0], B: p[1], C: p[2], D: p[3], E: p[4], F: p[5]}
		case "translate":
			var m svgpath.Matrix2D
			switch len(p) {
			case 1:
				m = svgpath.Identity.Translate(p[0], 0)
			case 2:
				m = svgpath.Identity.Translate(p[0], p[1])
			default:
				c.diagTransformArity(e)
				continue
			}
			acc = m.Mult(acc)
		case "scale":
			var m svgpath.Matrix2D
			switch len(p) {
			case 1:
				m = svgpath.Identity.Scale(p[0], p[0])
			case 2:
				m = svgpath.Identity.Scale(p[0], p[1])
			default:
				c.diagTransformArity(e)
				continue
			}
			acc = m.Mult(acc)
		case "rotate":
			var m svgpath.Matrix2D
			switch len(p) {
			case 1:
				m = svgpath.Identity.Rotate(p[0] * math.Pi / 180)
			case 3:
				m = svgpath.Identity.Translate(p[1], p[2]).
					Rotate(p[0] * math.Pi / 180).
					Translate(-p[1], -p[2])
			default:
				c.diagTransformArity(e)
				continue
			}
			acc = m.Mult(acc)
		default:
			c.diag(DiagUnsupportedTransform, e.Name)
		}
	}
	return acc
}

func (c *Converter) diagTransformArity(e svgpath.TransformCommand) {
	c.diag(DiagMalformedValue, fmt.Sprintf("transform %s: unexpected %d parameters", e.Name, len(e.Params)))
}
