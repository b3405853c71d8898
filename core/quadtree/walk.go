package quadtree

// Rect is an axis-aligned square: origin at (X, Y), side length Size.
// Y grows downward, matching raster and SVG coordinates.
type Rect struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
}

// Quarter returns the sub-square covered by a quadrant. The side is
// halved with integer division, so an odd size drops the remainder.
func (r Rect) Quarter(q Quadrant) Rect {
	h := r.Size / 2
	switch q {
	case TopLeft:
		return Rect{X: r.X, Y: r.Y, Size: h}
	case TopRight:
		return Rect{X: r.X + h, Y: r.Y, Size: h}
	case BottomRight:
		return Rect{X: r.X + h, Y: r.Y + h, Size: h}
	default:
		return Rect{X: r.X, Y: r.Y + h, Size: h}
	}
}

// WalkFunc receives each visited node with its bounding square.
type WalkFunc func(n *Node, bounds Rect)

// Walk visits the tree depth-first in pre-order: the node itself, then
// its children in fixed quadrant order, each with its quarter of the
// square. Renderers build on this; it is the only traversal the model
// exposes.
func (n *Node) Walk(bounds Rect, fn WalkFunc) {
	fn(n, bounds)
	if n.Kind == KindLeaf {
		return
	}
	for _, q := range Quadrants {
		n.children[q].Walk(bounds.Quarter(q), fn)
	}
}
