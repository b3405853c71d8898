// Package quadtree provides the region-quadtree data model: construction
// from the nested-list literal encoding, structural queries, and the
// traversal contract renderers consume.
//
// # Data Model
//
// A Node is a tagged variant with two cases:
//
//   - Leaf: a terminal square holding one binary value (empty or filled)
//   - Split: an internal square owning exactly four children in fixed
//     quadrant order: top-left, top-right, bottom-right, bottom-left
//
// Trees are finite, acyclic, and immutable after construction, so they may
// be shared read-only across goroutines without synchronization.
//
// # Construction
//
// The serialized form is a nested sequence of exactly four elements where
// each element is either the integer 0/1 or another such sequence. The
// first element of a group alone decides how the group is read: a group
// first element means all four elements are constructed as subtrees, a
// scalar first element means all four must be scalar bits that become four
// Leaf children of one Split. Four raw bits therefore always produce a
// Split over four leaves; uniform groups are never collapsed.
//
// Construction is all-or-nothing. Failures carry one of three kinds from
// core/errors: ErrIO (file unreadable), ErrParse (text is not a literal),
// ErrMalformed (literal parsed but violates the shape rules).
//
// # Traversal
//
// Walk visits every node depth-first in pre-order together with its
// bounding square, quartering the square in the fixed quadrant order and
// halving the size at each level. Renderers are independent collaborators
// built on Walk; see core/render.
//
// # Example
//
//	root, err := quadtree.FromList("[[1,0,0,1],[0,0,1,0],[1,1,0,0],[0,1,1,0]]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(root.Depth()) // 3
//	root.Walk(quadtree.Rect{Size: 400}, func(n *quadtree.Node, r quadtree.Rect) {
//	    if n.Kind == quadtree.KindLeaf && n.Filled {
//	        fmt.Printf("filled square at (%d,%d) size %d\n", r.X, r.Y, r.Size)
//	    }
//	})
package quadtree
