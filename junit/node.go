package junit

import (
	"encoding/xml"
	"io"
	"strings"
)

// node is the generic element tree handed to the suite builder. It owns no
// JUnit semantics: names, attributes, character data and child elements are
// recorded in document order.
type node struct {
	name     string
	attrs    map[string]string
	text     string
	children []*node
}

// decodeTree parses text into a generic tree. The decoder runs in strict
// mode and never resolves external entities; DOCTYPE and ENTITY
// declarations have already been rejected by the input guard. Comments,
// processing instructions and XML declarations are skipped.
//
// A document with several sibling root elements is tolerated: the roots are
// grouped under an unnamed document node and the wrapper lookup decides
// whether the result is usable.
func decodeTree(text string) (*node, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = true

	var roots []*node
	var stack []*node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newError(KindMalformedXML, "malformed XML: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name.Local}
			if len(t.Attr) > 0 {
				n.attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				roots = append(roots, n)
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	switch len(roots) {
	case 0:
		return nil, newError(KindMalformedXML, "malformed XML: no root element")
	case 1:
		return roots[0], nil
	default:
		return &node{children: roots}, nil
	}
}

func (n *node) attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// attrOr returns the attribute value, or empty when absent.
func (n *node) attrOr(name string) string {
	return n.attrs[name]
}

// childrenNamed returns every direct child with the given element name, in
// document order. A single occurrence and a repeated element both come back
// as a list, so callers never branch on the one-vs-many shape.
func (n *node) childrenNamed(name string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func (n *node) firstChild(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// childText returns the trimmed character data of the first child with the
// given name, or empty when the child is absent.
func (n *node) childText(name string) string {
	c := n.firstChild(name)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.text)
}
