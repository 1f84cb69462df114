package svgshape

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is one markup element: its tag, attributes and ordered
// children. Nodes are treated as immutable once built.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
}

// Attr returns the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// ID returns the id attribute, or "".
func (n *Node) ID() string {
	return n.Attrs["id"]
}

// ReadDocument parses markup from the stream into an element tree
// and returns its root. It handles non UTF-8 encodings declared in
// the prolog. A stream without a root element fails with
// InvalidInputError.
func ReadDocument(stream io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, InvalidInputError{Reason: err.Error()}
		}
		switch se := t.(type) {
		case xml.StartElement:
			node := &Node{
				Tag:   se.Name.Local,
				Attrs: make(map[string]string, len(se.Attr)),
			}
			for _, attr := range se.Attr {
				node.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, InvalidInputError{Reason: "more than one root element"}
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, InvalidInputError{Reason: "no root element"}
	}
	return root, nil
}

// ParseDocument parses markup text into an element tree.
func ParseDocument(markup string) (*Node, error) {
	return ReadDocument(strings.NewReader(markup))
}
