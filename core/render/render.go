// Package render turns quadtrees into visual artifacts. Backends consume
// the traversal contract from core/quadtree and share a small palette, so
// renderers can be swapped without touching the model.
package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/quadtile/quadtile/core/quadtree"
)

// Backend renders a tree within a bounding square. The root must be
// non-nil; bounds gives the origin and side length of the drawn region.
type Backend interface {
	Render(root *quadtree.Node, bounds quadtree.Rect) ([]byte, error)
}

// Options is the palette shared by all backends.
type Options struct {
	Empty   string // fill for empty leaves
	Filled  string // fill for filled leaves
	Outline string // stroke around leaf squares, in formats that stroke
}

// DefaultOptions returns the stock palette: light grey for empty leaves,
// black for filled leaves, black outlines.
func DefaultOptions() Options {
	return Options{
		Empty:   "#d3d3d3",
		Filled:  "#000000",
		Outline: "#000000",
	}
}

// Factory builds a backend from options.
type Factory func(opts Options) Backend

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a backend factory available under a name. It panics if
// the name is already taken.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("render: backend %q registered twice", name))
	}
	registry[name] = f
}

// New returns a backend by name.
func New(name string, opts Options) (Backend, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown render backend %q (have %s)", name, strings.Join(Backends(), ", "))
	}
	return f(opts), nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
