// Package dom provides a minimal element tree for headless tests.
// It holds structure, attributes and per-element geometry; it performs
// no layout.
package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// NodeType represents the type of a node in the tree.
type NodeType int

const (
	ErrorNode NodeType = iota
	TextNode
	DocumentNode
	ElementNode
	CommentNode
	DoctypeNode
)

// Attribute represents an attribute on an element.
type Attribute struct {
	Namespace string
	Key       string
	Value     string
}

// Node represents a node in the document tree.
type Node struct {
	Type       NodeType
	Data       string    // For elements: tag name; for text: text content
	DataAtom   atom.Atom // Atom for known HTML elements
	Attributes []Attribute

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node

	geometry *ElementGeometry
}

// ElementGeometry holds the box assigned to an element. There is no layout
// engine behind it; tests assign it directly and getBoundingClientRect
// reads it back.
type ElementGeometry struct {
	X, Y, Width, Height float64
}

// AppendChild adds a child node to the end of this node's children.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	c.Parent = n
	c.PrevSibling = n.LastChild
	c.NextSibling = nil
	if n.LastChild != nil {
		n.LastChild.NextSibling = c
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
}

// RemoveChild removes a child node from this node's children.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		return
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	} else {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	} else {
		n.LastChild = c.PrevSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

// Children returns a slice of all child nodes.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// ElementChildren returns only the element child nodes.
func (n *Node) ElementChildren() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// TagName returns the upper-cased tag name for element nodes, or "" otherwise.
func (n *Node) TagName() string {
	if n.Type != ElementNode {
		return ""
	}
	return strings.ToUpper(n.Data)
}

// ID returns the value of the id attribute.
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// GetAttribute returns the value of the specified attribute, or empty string if not found.
func (n *Node) GetAttribute(key string) string {
	for _, attr := range n.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}

// HasAttribute returns true if the node has the specified attribute.
func (n *Node) HasAttribute(key string) bool {
	for _, attr := range n.Attributes {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute value, creating it if it doesn't exist.
func (n *Node) SetAttribute(key, value string) {
	for i, attr := range n.Attributes {
		if attr.Key == key {
			n.Attributes[i].Value = value
			return
		}
	}
	n.Attributes = append(n.Attributes, Attribute{Key: key, Value: value})
}

// TextContent returns the text content of a node and its descendants.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.collectTextContent(&sb)
	return sb.String()
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	if n.Type == TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		c.collectTextContent(sb)
	}
}

// Geometry returns the geometry assigned to the element, or nil.
func (n *Node) Geometry() *ElementGeometry {
	return n.geometry
}

// SetGeometry assigns a box to the element.
func (n *Node) SetGeometry(g *ElementGeometry) {
	n.geometry = g
}

// BoundingClientRect returns a DOMRect for the element's assigned box.
// If no geometry has been assigned, returns a zero-sized rect.
func (n *Node) BoundingClientRect() *DOMRect {
	if n.geometry == nil {
		return NewDOMRect(0, 0, 0, 0)
	}
	return NewDOMRect(n.geometry.X, n.geometry.Y, n.geometry.Width, n.geometry.Height)
}
