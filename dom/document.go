package dom

import "strings"

// Document wraps the root of a parsed tree and provides lookups over it.
type Document struct {
	root *Node
}

// NewDocument creates a Document around a root node (normally a DocumentNode).
func NewDocument(root *Node) *Document {
	return &Document{root: root}
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// DocumentElement returns the <html> element, or nil if there is none.
func (d *Document) DocumentElement() *Node {
	if d.root == nil {
		return nil
	}
	for _, c := range d.root.ElementChildren() {
		if strings.EqualFold(c.Data, "html") {
			return c
		}
	}
	return nil
}

// Body returns the <body> element, or nil if there is none.
func (d *Document) Body() *Node {
	docEl := d.DocumentElement()
	if docEl == nil {
		return nil
	}
	for _, c := range docEl.ElementChildren() {
		if strings.EqualFold(c.Data, "body") {
			return c
		}
	}
	return nil
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Node {
	if d.root == nil || id == "" {
		return nil
	}
	return findFirst(d.root, func(n *Node) bool {
		return n.ID() == id
	})
}

// GetElementsByTagName returns all elements with the given tag name,
// in tree order. The name match is case-insensitive.
func (d *Document) GetElementsByTagName(tag string) []*Node {
	var result []*Node
	if d.root == nil {
		return result
	}
	walk(d.root, func(n *Node) {
		if strings.EqualFold(n.Data, tag) {
			result = append(result, n)
		}
	})
	return result
}

// findFirst returns the first element (in tree order) matching the predicate.
func findFirst(n *Node, match func(*Node) bool) *Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode && match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// walk visits every element under n in tree order.
func walk(n *Node, visit func(*Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode {
			visit(c)
		}
		walk(c, visit)
	}
}
