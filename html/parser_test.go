package html

import (
	"testing"

	"github.com/chrisuehlinger/mockdom/dom"
)

func TestParseBasicDocument(t *testing.T) {
	doc, err := Parse(`<!DOCTYPE html><html><head><title>Test</title></head><body><div id="app" class="main">Hello</div></body></html>`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if doc.DocumentElement() == nil {
		t.Fatal("Expected a document element")
	}
	if doc.Body() == nil {
		t.Fatal("Expected a body element")
	}

	div := doc.GetElementByID("app")
	if div == nil {
		t.Fatal("Expected to find #app")
	}
	if div.TagName() != "DIV" {
		t.Errorf("Expected tag 'DIV', got %q", div.TagName())
	}
	if div.GetAttribute("class") != "main" {
		t.Errorf("Expected class 'main', got %q", div.GetAttribute("class"))
	}
	if div.TextContent() != "Hello" {
		t.Errorf("Expected text 'Hello', got %q", div.TextContent())
	}
}

func TestParseBuildsImpliedStructure(t *testing.T) {
	// x/net/html inserts html/head/body around bare fragments.
	doc, err := Parse(`<p>one</p><p>two</p>`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	ps := doc.GetElementsByTagName("p")
	if len(ps) != 2 {
		t.Fatalf("Expected 2 p elements, got %d", len(ps))
	}
	if ps[0].TextContent() != "one" || ps[1].TextContent() != "two" {
		t.Error("Paragraphs not in document order")
	}
	if doc.Body() == nil {
		t.Error("Expected an implied body element")
	}
}

func TestParseMalformedHTML(t *testing.T) {
	// The HTML parser recovers rather than fails on malformed input.
	doc, err := Parse(`<div><span>unclosed`)
	if err != nil {
		t.Fatalf("Expected malformed HTML to parse, got %v", err)
	}

	spans := doc.GetElementsByTagName("span")
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	if spans[0].TextContent() != "unclosed" {
		t.Errorf("Expected text 'unclosed', got %q", spans[0].TextContent())
	}
}

func TestParseNodeTypes(t *testing.T) {
	doc, err := Parse(`<!-- note --><div>text</div>`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if doc.Root().Type != dom.DocumentNode {
		t.Errorf("Expected document root, got type %d", doc.Root().Type)
	}

	div := doc.GetElementsByTagName("div")[0]
	if div.FirstChild == nil || div.FirstChild.Type != dom.TextNode {
		t.Error("Expected a text child under div")
	}
}
