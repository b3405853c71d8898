package quadtree

import (
	"fmt"
	"os"

	"github.com/quadtile/quadtile/core/errors"
	"github.com/quadtile/quadtile/core/listlit"
)

// osReadFile is a variable to allow testing of read errors.
var osReadFile = os.ReadFile

// Kind discriminates the two node variants.
type Kind int

const (
	// KindLeaf is a terminal square with a binary value.
	KindLeaf Kind = iota
	// KindSplit is an internal square with four children.
	KindSplit
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Quadrant identifies one of the four children of a Split, in the fixed
// order construction, serialization, and traversal all share.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomRight
	BottomLeft
)

// Quadrants lists the four quadrants in fixed order for range loops.
var Quadrants = [4]Quadrant{TopLeft, TopRight, BottomRight, BottomLeft}

// String returns the hyphenated name of the quadrant.
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// Node is one square of the tree. Filled is meaningful only when Kind is
// KindLeaf, children only when KindSplit. Nodes are immutable after
// construction.
type Node struct {
	Kind     Kind
	Filled   bool
	children [4]*Node
}

// Leaf returns a terminal node with the given value.
func Leaf(filled bool) *Node {
	return &Node{Kind: KindLeaf, Filled: filled}
}

// Split returns an internal node owning the four children in fixed
// quadrant order.
func Split(topLeft, topRight, bottomRight, bottomLeft *Node) *Node {
	return &Node{
		Kind:     KindSplit,
		children: [4]*Node{topLeft, topRight, bottomRight, bottomLeft},
	}
}

// Child returns the child in the given quadrant, or nil for a leaf.
func (n *Node) Child(q Quadrant) *Node {
	return n.children[q]
}

// Children returns the four children in fixed quadrant order. All entries
// are nil for a leaf.
func (n *Node) Children() [4]*Node {
	return n.children
}

// IsLeaf reports whether the node is terminal.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// FromValue constructs a tree from a parsed nested-list value.
//
// The first element of each group decides the branch: a group means all
// four elements are constructed recursively as subtrees, a scalar means
// all four elements must be the bits 0 or 1 and become four Leaf children.
// The root itself must be a group.
func FromValue(v *listlit.Value) (*Node, error) {
	if v.Kind == listlit.KindInt {
		return nil, errors.NewMalformed("expected a bracketed group, got scalar", fragment(v))
	}

	if len(v.Items) != 4 {
		detail := fmt.Sprintf("group has %d elements, want 4", len(v.Items))
		return nil, errors.NewMalformed(detail, fragment(v))
	}

	node := &Node{Kind: KindSplit}

	if v.Items[0].Kind == listlit.KindGroup {
		for i, item := range v.Items {
			child, err := FromValue(item)
			if err != nil {
				return nil, err
			}
			node.children[i] = child
		}
		return node, nil
	}

	for i, item := range v.Items {
		if item.Kind == listlit.KindGroup {
			return nil, errors.NewMalformed("group in leaf position", fragment(item))
		}
		if item.Int != 0 && item.Int != 1 {
			detail := fmt.Sprintf("leaf value %d outside {0,1}", item.Int)
			return nil, errors.NewMalformed(detail, fragment(item))
		}
		node.children[i] = Leaf(item.Int == 1)
	}
	return node, nil
}

// FromList parses a nested-list literal and constructs a tree from it.
func FromList(input string) (*Node, error) {
	v, err := listlit.Parse(input)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}

// FromFile reads a file containing exactly one nested-list literal and
// constructs a tree from it. The error carries the path for all three
// failure kinds.
func FromFile(path string) (*Node, error) {
	data, err := osReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	node, err := FromList(string(data))
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		var malformedErr *errors.MalformedError
		if errors.As(err, &malformedErr) {
			malformedErr.Path = path
			return nil, malformedErr
		}
		return nil, err
	}
	return node, nil
}

// fragmentLimit bounds the literal text quoted in malformed errors.
const fragmentLimit = 48

// fragment renders a value for an error message, truncated so a deep
// tree does not flood the output.
func fragment(v *listlit.Value) string {
	s := listlit.Encode(v)
	if len(s) > fragmentLimit {
		return s[:fragmentLimit] + "..."
	}
	return s
}
