package render

import (
	"fmt"
	"strings"

	"github.com/mkessel/gridpath/grid"
)

// glyph returns the emoji for one terrain category.
func glyph(t grid.Terrain) string {
	switch t {
	case grid.Void:
		return "⬜"
	case grid.Wall:
		return "⬛"
	case grid.Grass:
		return "🟩"
	case grid.Water:
		return "🟦"
	case grid.Mud:
		return "🟧"
	case grid.Sand:
		return "🟨"
	case grid.Route:
		return "🤖"
	default:
		return "⬜"
	}
}

// Options configures text rendering.
//
// Coordinates – prepend numeric gutters along the top and left edges.
// Path        – cells rendered as Route without mutating the grid.
type Options struct {
	Coordinates bool
	Path        []grid.Cell
}

// Option represents a functional option for configuring Text.
type Option func(*Options)

// WithCoordinates enables the numeric gutters.
func WithCoordinates() Option {
	return func(o *Options) { o.Coordinates = true }
}

// WithPath overlays the given cells as solution glyphs. The grid
// itself stays untouched; use grid.StampPath when the retagging should
// persist.
func WithPath(path []grid.Cell) Option {
	return func(o *Options) { o.Path = path }
}

// Text renders the grid as an emoji block, one line per row.
// Complexity: O(W×H).
func Text(g *grid.Grid, opts ...Option) string {
	cfg := Options{}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	onPath := make(map[grid.Coord]struct{}, len(cfg.Path))
	for _, c := range cfg.Path {
		onPath[c.Coord()] = struct{}{}
	}

	var b strings.Builder
	if cfg.Coordinates {
		b.WriteString("  ")
		for x := 0; x < g.Width(); x++ {
			fmt.Fprintf(&b, "%2d", x)
		}
		b.WriteByte('\n')
	}

	for y := 0; y < g.Height(); y++ {
		if cfg.Coordinates {
			fmt.Fprintf(&b, "%2d", y)
		}
		for x := 0; x < g.Width(); x++ {
			c, _ := g.CellAt(x, y)
			if _, ok := onPath[c.Coord()]; ok {
				b.WriteString(glyph(grid.Route))
				continue
			}
			b.WriteString(glyph(c.Terrain))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
