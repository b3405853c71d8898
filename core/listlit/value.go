// Package listlit parses and encodes the bracketed nested-list literals
// used as the textual encoding for quadtrees, e.g. "[[1,0,0,1],0,1,0]".
// The package deals only in shape: any integers and any group sizes are
// accepted here, and quadtree construction enforces the stricter rules.
package listlit

import (
	"strconv"
	"strings"
)

// Kind discriminates the two element variants of a literal.
type Kind int

const (
	// KindInt is a bare integer element.
	KindInt Kind = iota
	// KindGroup is a bracketed group of elements.
	KindGroup
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Value is one element of a parsed literal: either an integer or a group.
// Int is meaningful only when Kind is KindInt, Items only when KindGroup.
type Value struct {
	Kind  Kind
	Int   int
	Items []*Value
}

// Int returns an integer value.
func Int(n int) *Value {
	return &Value{Kind: KindInt, Int: n}
}

// Group returns a group value with the given elements.
func Group(items ...*Value) *Value {
	return &Value{Kind: KindGroup, Items: items}
}

// String returns the value in canonical literal form.
func (v *Value) String() string {
	return Encode(v)
}

// Encode renders a value as a literal: elements comma-separated inside
// square brackets, with no whitespace. Parse(Encode(v)) reproduces v.
func Encode(v *Value) string {
	var sb strings.Builder
	encodeTo(&sb, v)
	return sb.String()
}

func encodeTo(sb *strings.Builder, v *Value) {
	if v.Kind == KindInt {
		sb.WriteString(strconv.Itoa(v.Int))
		return
	}
	sb.WriteByte('[')
	for i, item := range v.Items {
		if i > 0 {
			sb.WriteByte(',')
		}
		encodeTo(sb, item)
	}
	sb.WriteByte(']')
}
