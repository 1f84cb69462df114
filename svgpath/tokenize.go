package svgpath

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// Tokenize lexes an SVG path description into a flat list of commands.
// Coordinate groups beyond the first repeat the command, and extra
// groups after a moveto become implicit linetos with the same
// relative flag, as the path grammar requires. The name is only used
// in error messages.
func Tokenize(name, data string) ([]Command, error) {
	l, _ := gl.Lex(name, data)
	var cmds []Command
	var err error
	for {
		l.ConsumeWhiteSpace()
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return cmds, nil
		case gl.ItemError:
			return nil, fmt.Errorf("path %s: %s", name, i.Value)
		case gl.ItemComma:
			continue
		case gl.ItemLetter:
			letter := i.Value[0]
			arity := commandArity(letter)
			if arity < 0 {
				return nil, fmt.Errorf("path %s: unknown command %q", name, i.Value)
			}
			if arity == 0 {
				cmds = append(cmds, Command{Kind: ClosePath, Rel: isRelative(letter), Letter: letter})
				continue
			}
			first := true
			for {
				l.ConsumeWhiteSpace()
				if l.PeekItem().Type != gl.ItemNumber {
					break
				}
				vals := make([]float64, arity)
				for k := range vals {
					vals[k], err = nextNumber(l)
					if err != nil {
						return nil, fmt.Errorf("path %s: command %c: %s", name, letter, err)
					}
				}
				cmds = append(cmds, buildCommand(letter, first, vals))
				first = false
			}
			if first {
				return nil, fmt.Errorf("path %s: command %c: missing coordinates", name, letter)
			}
		default:
			return nil, fmt.Errorf("path %s: unexpected token %q", name, i.Value)
		}
	}
}

func nextNumber(l *gl.Lexer) (float64, error) {
	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()
	i := l.NextItem()
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	return strconv.ParseFloat(i.Value, 64)
}

func buildCommand(letter byte, first bool, vals []float64) Command {
	c := Command{Kind: commandKind(letter), Rel: isRelative(letter), Letter: letter}
	switch c.Kind {
	case MoveTo:
		c.X, c.Y = vals[0], vals[1]
		if !first {
			// trailing moveto pairs draw lines
			c.Kind = LineTo
		}
	case LineTo, SmoothQuadTo:
		c.X, c.Y = vals[0], vals[1]
	case HLineTo:
		c.X = vals[0]
	case VLineTo:
		c.Y = vals[0]
	case CubicTo:
		c.X1, c.Y1 = vals[0], vals[1]
		c.X2, c.Y2 = vals[2], vals[3]
		c.X, c.Y = vals[4], vals[5]
	case SmoothCubicTo:
		c.X2, c.Y2 = vals[0], vals[1]
		c.X, c.Y = vals[2], vals[3]
	case QuadTo:
		c.X1, c.Y1 = vals[0], vals[1]
		c.X, c.Y = vals[2], vals[3]
	case ArcTo:
		c.Rx, c.Ry = vals[0], vals[1]
		c.Rotation = vals[2]
		c.LargeArc = vals[3] != 0
		c.Sweep = vals[4] != 0
		c.X, c.Y = vals[5], vals[6]
	}
	return c
}
