package render

import (
	"bytes"
	"fmt"

	"github.com/quadtile/quadtile/core/encoding"
	"github.com/quadtile/quadtile/core/quadtree"
)

func init() {
	Register("svg", func(opts Options) Backend { return NewSVG(opts) })
}

// SVG renders the tree as a scalable vector graphic: one rect per leaf,
// in document order matching the fixed quadrant traversal.
type SVG struct {
	opts Options
}

// NewSVG returns an SVG backend with the given palette.
func NewSVG(opts Options) *SVG {
	return &SVG{opts: opts}
}

// Render implements Backend.
func (s *SVG) Render(root *quadtree.Node, bounds quadtree.Rect) ([]byte, error) {
	empty := encoding.EscapeXMLAttr(s.opts.Empty)
	filled := encoding.EscapeXMLAttr(s.opts.Filled)
	outline := encoding.EscapeXMLAttr(s.opts.Outline)

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"%d %d %d %d\">\n",
		bounds.Size, bounds.Size, bounds.X, bounds.Y, bounds.Size, bounds.Size)

	root.Walk(bounds, func(n *quadtree.Node, r quadtree.Rect) {
		if n.Kind != quadtree.KindLeaf {
			return
		}
		fill := empty
		if n.Filled {
			fill = filled
		}
		fmt.Fprintf(&buf, "  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\" stroke=\"%s\"/>\n",
			r.X, r.Y, r.Size, r.Size, fill, outline)
	})

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
