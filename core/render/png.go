package render

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/quadtile/quadtile/core/quadtree"
)

func init() {
	Register("png", func(opts Options) Backend { return NewPNG(opts) })
}

// PNG renders the tree onto a raster canvas the size of the bounding
// square.
type PNG struct {
	opts Options
}

// NewPNG returns a PNG backend with the given palette.
func NewPNG(opts Options) *PNG {
	return &PNG{opts: opts}
}

// Render implements Backend. The canvas covers exactly the bounding
// square; bounds.X/Y shift leaf squares into canvas coordinates.
func (p *PNG) Render(root *quadtree.Node, bounds quadtree.Rect) ([]byte, error) {
	dc := gg.NewContext(bounds.Size, bounds.Size)

	root.Walk(bounds, func(n *quadtree.Node, r quadtree.Rect) {
		if n.Kind != quadtree.KindLeaf {
			return
		}
		x := float64(r.X - bounds.X)
		y := float64(r.Y - bounds.Y)
		size := float64(r.Size)

		if n.Filled {
			dc.SetHexColor(p.opts.Filled)
		} else {
			dc.SetHexColor(p.opts.Empty)
		}
		dc.DrawRectangle(x, y, size, size)
		dc.Fill()

		dc.SetHexColor(p.opts.Outline)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, size, size)
		dc.Stroke()
	})

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
