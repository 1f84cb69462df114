package svgpath

import (
	"errors"
	"strconv"
	"strings"
)

// TransformCommand is one lexed entry of a transform attribute,
// such as translate(10, 4) or rotate(45 2 2). The entries are
// kept in source order; composition is left to the caller.
type TransformCommand struct {
	Name   string
	Params []float64
}

// ParseTransformList lexes a transform attribute into its entries.
// It validates syntax only, not command names or arities.
func ParseTransformList(value string) ([]TransformCommand, error) {
	var out []TransformCommand
	chunks := strings.Split(value, ")")
	for _, chunk := range chunks[:len(chunks)-1] {
		name, params, ok := strings.Cut(chunk, "(")
		if !ok {
			return nil, errors.New("transform: missing '(' in " + strconv.Quote(chunk))
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, errors.New("transform: missing command name in " + strconv.Quote(chunk))
		}
		vals, err := ParseNumberList(params)
		if err != nil {
			return nil, err
		}
		out = append(out, TransformCommand{Name: name, Params: vals})
	}
	if rest := strings.TrimSpace(chunks[len(chunks)-1]); rest != "" {
		return nil, errors.New("transform: unclosed entry " + strconv.Quote(rest))
	}
	return out, nil
}
