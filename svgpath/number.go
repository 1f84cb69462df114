package svgpath

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber reads a floating point value from str, tolerating a
// trailing unit suffix such as "px" or a percent sign, which are
// stripped before conversion.
func ParseNumber(str string) (float64, error) {
	str = strings.TrimSpace(str)
	str = strings.TrimSuffix(str, "px")
	str = strings.TrimSuffix(str, "%")
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, errors.New("invalid number " + strconv.Quote(str))
	}
	return f, nil
}

// ParseNumberList splits a string of numbers separated by commas or
// whitespace into float64 values. A '-' sign also acts as a separator
// when it starts a new number, so "10-5" yields [10, -5], but the
// minus of an exponent ("1e-3") does not split.
func ParseNumberList(data string) ([]float64, error) {
	var (
		out   []float64
		start = -1
	)
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		f, err := strconv.ParseFloat(data[start:end], 64)
		if err != nil {
			return errors.New("invalid number " + strconv.Quote(data[start:end]))
		}
		out = append(out, f)
		start = -1
		return nil
	}
	for i, r := range data {
		switch {
		case r == ',' || unicode.IsSpace(r):
			if err := flush(i); err != nil {
				return nil, err
			}
		case r == '-':
			// a sign inside a number only follows an exponent marker
			if start >= 0 && data[i-1] != 'e' && data[i-1] != 'E' {
				if err := flush(i); err != nil {
					return nil, err
				}
			}
			if start < 0 {
				start = i
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if err := flush(len(data)); err != nil {
		return nil, err
	}
	return out, nil
}
