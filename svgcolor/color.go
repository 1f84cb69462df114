// Package svgcolor resolves markup color attributes into packed
// 24 bit RGB values, covering hex notations, rgb() functional
// notation and the SVG 1.1 color keywords.
package svgcolor

import (
	"errors"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is a color packed as 0xRRGGBB. The high byte is unused.
type RGB uint32

// New packs three channel values into an RGB.
func New(r, g, b uint8) RGB {
	return RGB(r)<<16 | RGB(g)<<8 | RGB(b)
}

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// NRGBA expands c with the given opacity into a color usable with
// the image packages. alpha is clamped to [0, 1].
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{c.R(), c.G(), c.B(), uint8(alpha*255 + 0.5)}
}

func (c RGB) String() string {
	return "#" + fmt6(uint32(c))
}

func fmt6(v uint32) string {
	const hexdigits = "0123456789abcdef"
	var b [6]byte
	for i := 5; i >= 0; i-- {
		b[i] = hexdigits[v&0xf]
		v >>= 4
	}
	return string(b[:])
}

var errBadColor = errors.New("invalid color")

// Parse resolves a color attribute value. Color keywords are matched
// case insensitively against the SVG 1.1 names. Hex values may use
// the 3 digit shorthand, in which case each digit is duplicated.
// rgb() components may be given as 0..255 values or as percentages.
func Parse(s string) (RGB, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if cn, ok := colornames.Map[v]; ok {
		return New(cn.R, cn.G, cn.B), nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v)
	}
	if inner, ok := strings.CutPrefix(v, "rgb("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return 0, errBadColor
		}
		return parseRGBFunc(inner)
	}
	return 0, errBadColor
}

func parseHex(v string) (RGB, error) {
	v = strings.TrimPrefix(v, "#")
	if len(v) == 3 {
		// specs say duplicate characters in case of 3 digit hex number
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return 0, errBadColor
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, errBadColor
	}
	return RGB(n), nil
}

func parseRGBFunc(inner string) (RGB, error) {
	vals := strings.Split(inner, ",")
	if len(vals) != 3 {
		return 0, errBadColor
	}
	var cvals [3]uint8
	for i, raw := range vals {
		c, err := parseColorValue(raw)
		if err != nil {
			return 0, err
		}
		cvals[i] = c
	}
	return New(cvals[0], cvals[1], cvals[2]), nil
}

func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errBadColor
	}
	if v[len(v)-1] == '%' {
		p, err := strconv.ParseFloat(strings.TrimSpace(v[:len(v)-1]), 64)
		if err != nil {
			return 0, errBadColor
		}
		if p > 100 {
			p = 100
		} else if p < 0 {
			p = 0
		}
		return uint8(p*255/100 + 0.5), nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, errBadColor
	}
	if n > 255 {
		n = 255
	}
	return uint8(n), nil
}
