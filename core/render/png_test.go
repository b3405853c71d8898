package render

import (
	"bytes"
	"image"
	_ "image/png"
	"testing"

	"github.com/quadtile/quadtile/core/quadtree"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output failed: %v", err)
	}
	if format != "png" {
		t.Fatalf("format = %q, want png", format)
	}
	return img
}

// probe reads a pixel as 8-bit RGB.
func probe(img image.Image, x, y int) (r, g, b uint32) {
	pr, pg, pb, _ := img.At(x, y).RGBA()
	return pr >> 8, pg >> 8, pb >> 8
}

func TestPNGSixteenLeaves(t *testing.T) {
	out, err := NewPNG(DefaultOptions()).Render(mustTree(t, sixteenLeaves), quadtree.Rect{Size: 400})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img := decodePNG(t, out)
	if w := img.Bounds().Dx(); w != 400 {
		t.Fatalf("image width = %d, want 400", w)
	}
	if h := img.Bounds().Dy(); h != 400 {
		t.Fatalf("image height = %d, want 400", h)
	}

	// Probe the center of leaf squares, away from outline strokes.
	tests := []struct {
		x, y   int
		filled bool
	}{
		{50, 50, true},    // top-left group, top-left leaf
		{150, 50, false},  // top-left group, top-right leaf
		{350, 150, true},  // top-right group, bottom-right leaf
		{250, 250, true},  // bottom-right group, top-left leaf
		{50, 250, false},  // bottom-left group, top-left leaf
		{150, 350, true},  // bottom-left group, bottom-right leaf
	}

	for _, tt := range tests {
		r, g, b := probe(img, tt.x, tt.y)
		if tt.filled {
			if r != 0 || g != 0 || b != 0 {
				t.Errorf("pixel (%d,%d) = #%02x%02x%02x, want filled black", tt.x, tt.y, r, g, b)
			}
		} else {
			if r != 211 || g != 211 || b != 211 {
				t.Errorf("pixel (%d,%d) = #%02x%02x%02x, want empty light grey", tt.x, tt.y, r, g, b)
			}
		}
	}
}

func TestPNGCustomPalette(t *testing.T) {
	opts := Options{Empty: "#0000ff", Filled: "#ff0000", Outline: "#000000"}
	out, err := NewPNG(opts).Render(mustTree(t, "[1,0,0,1]"), quadtree.Rect{Size: 100})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img := decodePNG(t, out)

	if r, g, b := probe(img, 25, 25); r != 255 || g != 0 || b != 0 {
		t.Errorf("top-left center = #%02x%02x%02x, want red", r, g, b)
	}
	if r, g, b := probe(img, 75, 25); r != 0 || g != 0 || b != 255 {
		t.Errorf("top-right center = #%02x%02x%02x, want blue", r, g, b)
	}
}

func TestPNGOffsetBounds(t *testing.T) {
	// The canvas is bounds-sized regardless of the origin.
	out, err := NewPNG(DefaultOptions()).Render(mustTree(t, "[0,1,1,0]"), quadtree.Rect{X: 200, Y: 200, Size: 80})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img := decodePNG(t, out)
	if w := img.Bounds().Dx(); w != 80 {
		t.Fatalf("image width = %d, want 80", w)
	}

	// Top-right quadrant is filled; on canvas that is around (60,20).
	if r, g, b := probe(img, 60, 20); r != 0 || g != 0 || b != 0 {
		t.Errorf("top-right center = #%02x%02x%02x, want filled black", r, g, b)
	}
	if r, g, b := probe(img, 20, 20); r != 211 || g != 211 || b != 211 {
		t.Errorf("top-left center = #%02x%02x%02x, want empty light grey", r, g, b)
	}
}
