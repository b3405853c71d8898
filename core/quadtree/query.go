package quadtree

import "github.com/quadtile/quadtile/core/listlit"

// Depth returns the number of levels from the root to the deepest leaf,
// root-inclusive: a lone leaf counts 1, a split counts 1 plus its deepest
// child. A split over four leaves therefore has depth 2.
func (n *Node) Depth() int {
	if n.Kind == KindLeaf {
		return 1
	}
	deepest := 0
	for _, child := range n.children {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// Value returns the nested-list form of the tree, the inverse of
// FromValue: FromValue(n.Value()) reconstructs an identical tree.
func (n *Node) Value() *listlit.Value {
	if n.Kind == KindLeaf {
		if n.Filled {
			return listlit.Int(1)
		}
		return listlit.Int(0)
	}
	items := make([]*listlit.Value, 0, 4)
	for _, child := range n.children {
		items = append(items, child.Value())
	}
	return listlit.Group(items...)
}

// Equal reports whether two trees are structurally identical: the same
// variant and values at every position.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindLeaf {
		return a.Filled == b.Filled
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Stats summarizes the structure of a tree.
type Stats struct {
	Nodes  int `json:"nodes"`
	Leaves int `json:"leaves"`
	Filled int `json:"filled"`
}

// Stats counts nodes, leaves, and filled leaves in one traversal.
func (n *Node) Stats() Stats {
	var s Stats
	n.collect(&s)
	return s
}

func (n *Node) collect(s *Stats) {
	s.Nodes++
	if n.Kind == KindLeaf {
		s.Leaves++
		if n.Filled {
			s.Filled++
		}
		return
	}
	for _, child := range n.children {
		child.collect(s)
	}
}
