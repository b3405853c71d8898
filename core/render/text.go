package render

import (
	"bytes"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/quadtile/quadtile/core/quadtree"
)

func init() {
	Register("text", func(opts Options) Backend { return NewText(opts) })
}

// cellState tracks what covers one grid cell during the walk.
type cellState int8

const (
	cellGap cellState = iota // left uncovered by integer halving
	cellEmpty
	cellFilled
)

const (
	glyphGap    = "  "
	glyphEmpty  = "░░" // light shade
	glyphFilled = "██" // full block
)

// Text renders the tree as a character grid for terminals: one cell per
// unit of the bounding square, two characters wide so cells come out
// roughly square. Text output wants small sizes (16-64), not pixel sizes.
type Text struct {
	opts   Options
	empty  lipgloss.Style
	filled lipgloss.Style
}

// NewText returns a Text backend. The color profile is pinned to true
// color so output does not depend on the terminal the process happens to
// run in.
func NewText(opts Options) *Text {
	return newTextWithProfile(opts, termenv.TrueColor)
}

// newTextWithProfile exists so tests can force the Ascii profile and
// assert on bare glyphs. SetColorProfile is required because the
// renderer re-detects the profile from the environment unless one is set
// explicitly.
func newTextWithProfile(opts Options, profile termenv.Profile) *Text {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return &Text{
		opts:   opts,
		empty:  r.NewStyle().Foreground(lipgloss.Color(opts.Empty)),
		filled: r.NewStyle().Foreground(lipgloss.Color(opts.Filled)),
	}
}

// Render implements Backend.
func (t *Text) Render(root *quadtree.Node, bounds quadtree.Rect) ([]byte, error) {
	size := bounds.Size
	grid := make([][]cellState, size)
	for i := range grid {
		grid[i] = make([]cellState, size)
	}

	root.Walk(bounds, func(n *quadtree.Node, r quadtree.Rect) {
		if n.Kind != quadtree.KindLeaf {
			return
		}
		state := cellEmpty
		if n.Filled {
			state = cellFilled
		}
		for y := r.Y - bounds.Y; y < r.Y-bounds.Y+r.Size; y++ {
			for x := r.X - bounds.X; x < r.X-bounds.X+r.Size; x++ {
				grid[y][x] = state
			}
		}
	})

	var buf bytes.Buffer
	for _, row := range grid {
		for _, cell := range row {
			switch cell {
			case cellFilled:
				buf.WriteString(t.filled.Render(glyphFilled))
			case cellEmpty:
				buf.WriteString(t.empty.Render(glyphEmpty))
			default:
				buf.WriteString(glyphGap)
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
