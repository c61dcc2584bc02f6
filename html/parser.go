// Package html parses HTML documents into the dom package's tree, using
// golang.org/x/net/html as the underlying parser implementation.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/chrisuehlinger/mockdom/dom"
)

// Parse parses HTML from a string and returns a Document.
func Parse(htmlContent string) (*dom.Document, error) {
	return ParseReader(strings.NewReader(htmlContent))
}

// ParseReader parses HTML from an io.Reader and returns a Document.
func ParseReader(r io.Reader) (*dom.Document, error) {
	netNode, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return dom.NewDocument(convertNode(netNode)), nil
}

// convertNode converts a golang.org/x/net/html node to a dom.Node.
func convertNode(n *html.Node) *dom.Node {
	if n == nil {
		return nil
	}
	node := &dom.Node{
		Type:     convertNodeType(n.Type),
		Data:     n.Data,
		DataAtom: n.DataAtom,
	}
	for _, attr := range n.Attr {
		node.Attributes = append(node.Attributes, dom.Attribute{
			Namespace: attr.Namespace,
			Key:       attr.Key,
			Value:     attr.Val,
		})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		node.AppendChild(convertNode(c))
	}
	return node
}

// convertNodeType converts golang.org/x/net/html.NodeType to dom.NodeType.
func convertNodeType(nt html.NodeType) dom.NodeType {
	switch nt {
	case html.ErrorNode:
		return dom.ErrorNode
	case html.TextNode:
		return dom.TextNode
	case html.DocumentNode:
		return dom.DocumentNode
	case html.ElementNode:
		return dom.ElementNode
	case html.CommentNode:
		return dom.CommentNode
	case html.DoctypeNode:
		return dom.DoctypeNode
	default:
		return dom.ErrorNode
	}
}
