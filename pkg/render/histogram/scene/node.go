package scene

import (
	"math"
	"strconv"
	"strings"
)

// Namespace is the vector-graphics namespace declared on the root.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a single name="value" pair.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// A builds an attribute.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// Node is one element of the scene tree.
type Node struct {
	Tag      string  `json:"tag"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// El builds an element with the given attributes.
func El(tag string, attrs ...Attr) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// WithText sets the literal text content and returns n.
func (n *Node) WithText(s string) *Node {
	n.Text = s
	return n
}

// Append adds children in order and returns n. Nil children are skipped.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Float returns the named attribute parsed as a number.
func (n *Node) Float(name string) (float64, bool) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	return f, err == nil
}

// Style returns the named property from the inline style attribute, or
// from the matching presentation attribute for paint properties.
func (n *Node) Style(property string) (string, bool) {
	if style, ok := n.Attr("style"); ok {
		for _, decl := range strings.Split(style, ";") {
			name, value, found := strings.Cut(decl, ":")
			if found && strings.TrimSpace(name) == property {
				return strings.TrimSpace(value), true
			}
		}
	}
	if presentationAttrs[property] {
		return n.Attr(property)
	}
	return "", false
}

// presentationAttrs are the paint properties that may also be set as plain
// attributes. The style attribute wins over them.
var presentationAttrs = map[string]bool{
	"fill": true, "fill-opacity": true,
	"stroke": true, "stroke-width": true,
	"stop-color": true, "stop-opacity": true,
}

// HasClass reports whether the class attribute lists c.
func (n *Node) HasClass(c string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, f := range strings.Fields(v) {
		if f == c {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns every node in document order for which pred holds.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first node in document order for which pred holds.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// ByTag matches elements by tag name.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool { return n.Tag == tag }
}

// ByClass matches elements whose class attribute lists c.
func ByClass(c string) func(*Node) bool {
	return func(n *Node) bool { return n.HasClass(c) }
}

// Num formats a coordinate with at most two decimals and no trailing zeros.
func Num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalizes -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Int formats an integer coordinate.
func Int(v int) string { return strconv.Itoa(v) }
