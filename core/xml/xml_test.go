package xml

import "testing"

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="8" height="8" viewBox="0 0 8 8">
  <rect x="0" y="0" width="4" height="4" fill="#000000" stroke="#000000"/>
  <rect x="4" y="0" width="4" height="4" fill="#d3d3d3" stroke="#000000"/>
</svg>
`

// TestParseValidXML verifies parsing of well-formed XML.
func TestParseValidXML(t *testing.T) {
	doc, err := Parse([]byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc == nil {
		t.Fatal("Parse returned nil document")
	}
}

// TestParseInvalidXML verifies error handling for malformed XML.
func TestParseInvalidXML(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"unclosed tag", "<svg><rect></svg>"},
		{"mismatched tags", "<svg></other>"},
		{"invalid chars", "<svg>\x00</svg>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.xml))
			if err == nil {
				t.Error("Parse should fail for invalid XML")
			}
		})
	}
}

func TestRoot(t *testing.T) {
	doc, err := Parse([]byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	root := doc.Root()
	if root == nil {
		t.Fatal("Root() returned nil")
	}
	if got := root.Name(); got != "svg" {
		t.Errorf("Root().Name() = %q, want %q", got, "svg")
	}
	if got := root.Attr("width"); got != "8" {
		t.Errorf("Attr(width) = %q, want %q", got, "8")
	}
}

func TestXPath(t *testing.T) {
	doc, err := Parse([]byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rects, err := doc.XPath("//rect")
	if err != nil {
		t.Fatalf("XPath failed: %v", err)
	}
	if len(rects) != 2 {
		t.Fatalf("XPath(//rect) returned %d nodes, want 2", len(rects))
	}
	if got := rects[1].Attr("fill"); got != "#d3d3d3" {
		t.Errorf("second rect fill = %q, want %q", got, "#d3d3d3")
	}

	// Predicates work on attributes.
	black, err := doc.XPath(`//rect[@fill="#000000"]`)
	if err != nil {
		t.Fatalf("XPath with predicate failed: %v", err)
	}
	if len(black) != 1 {
		t.Errorf("XPath(//rect[@fill=...]) returned %d nodes, want 1", len(black))
	}
}

func TestXPathInvalidExpression(t *testing.T) {
	doc, err := Parse([]byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := doc.XPath("//rect["); err == nil {
		t.Error("XPath should fail for an invalid expression")
	}
	if _, err := doc.XPathFirst("//rect["); err == nil {
		t.Error("XPathFirst should fail for an invalid expression")
	}
}

func TestXPathFirst(t *testing.T) {
	doc, err := Parse([]byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	first, err := doc.XPathFirst("//rect")
	if err != nil {
		t.Fatalf("XPathFirst failed: %v", err)
	}
	if first == nil {
		t.Fatal("XPathFirst returned nil for existing node")
	}
	if got := first.Attr("x"); got != "0" {
		t.Errorf("first rect x = %q, want %q", got, "0")
	}

	missing, err := doc.XPathFirst("//circle")
	if err != nil {
		t.Fatalf("XPathFirst failed: %v", err)
	}
	if missing != nil {
		t.Error("XPathFirst returned a node for a missing element")
	}
}
