package imagecodec

import (
	"errors"
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	"github.com/mkessel/gridpath/grid"
)

// Sentinel errors for image decoding.
var (
	// ErrNilImage indicates Decode received a nil image.
	ErrNilImage = errors.New("imagecodec: image is nil")
	// ErrNoBlocks indicates the image contains no decodable block rows.
	ErrNoBlocks = errors.New("imagecodec: no terrain blocks found in image")
)

const (
	// blockWidth is the side length of one terrain block in pixels.
	blockWidth = 20
	// borderWidth is the thickness of the red separator strips.
	borderWidth = 3
	// sampleOffset skips the first two pixels of a block run before
	// sampling, because block edges carry blurred colors after lossy
	// compression.
	sampleOffset = 2
)

// Fixed block palette. Void is fully transparent white so empty space
// disappears when the image is composited elsewhere.
var (
	colVoid   = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	colWall   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colGrass  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colWater  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colMud    = color.RGBA{R: 200, G: 113, B: 55, A: 255}
	colSand   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colRoute  = color.RGBA{R: 138, G: 74, B: 243, A: 255}
	colBorder = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// blockColor returns the palette color for one terrain category.
func blockColor(t grid.Terrain) color.RGBA {
	switch t {
	case grid.Wall:
		return colWall
	case grid.Grass:
		return colGrass
	case grid.Water:
		return colWater
	case grid.Mud:
		return colMud
	case grid.Sand:
		return colSand
	case grid.Route:
		return colRoute
	default:
		return colVoid
	}
}

// classify maps an RGB triple back onto a terrain. The second return
// is false for the border color and for every color outside the
// palette, both of which count as separator space.
func classify(r, g, b uint8) (grid.Terrain, bool) {
	switch {
	case r == 0 && g == 0 && b == 0:
		return grid.Wall, true
	case r == 255 && g == 255 && b == 255:
		return grid.Void, true
	case r == 0 && g == 255 && b == 0:
		return grid.Grass, true
	case r == 0 && g == 0 && b == 255:
		return grid.Water, true
	case r == 200 && g == 113 && b == 55:
		return grid.Mud, true
	case r == 255 && g == 255 && b == 0:
		return grid.Sand, true
	case r == 138 && g == 74 && b == 243:
		return grid.Route, true
	default:
		return grid.Void, false
	}
}

// Encode renders the grid as an RGBA image of
// W*20+(W-1)*3 × H*20+(H-1)*3 pixels: one 20px block per cell with 3px
// red separator strips between blocks and no outer frame.
// Returns nil for a nil grid.
func Encode(g *grid.Grid) *image.RGBA {
	if g == nil {
		return nil
	}

	stride := blockWidth + borderWidth
	w := g.Width()*blockWidth + (g.Width()-1)*borderWidth
	h := g.Height()*blockWidth + (g.Height()-1)*borderWidth
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Paint everything border-red first; block fills then overwrite
	// all non-separator pixels.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, colBorder)
		}
	}

	var c grid.Cell
	var fill color.RGBA
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			c, _ = g.CellAt(cx, cy)
			fill = blockColor(c.Terrain)
			for dy := 0; dy < blockWidth; dy++ {
				for dx := 0; dx < blockWidth; dx++ {
					img.SetRGBA(cx*stride+dx, cy*stride+dy, fill)
				}
			}
		}
	}

	return img
}

// Decode converts a raster site plan back into a terrain grid.
// Pixel rows are partitioned into border and block runs; the third
// pixel row of each block run is sampled and split at border columns,
// and the third pixel of each resulting block yields its terrain.
// Returns ErrNilImage for a nil image and ErrNoBlocks when nothing
// decodable remains after partitioning; ragged block rows surface as
// grid construction errors.
func Decode(img image.Image) (*grid.Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	// Normalize any source pixel format so the scan below can read
	// RGBA values directly. Already-RGBA images pass through untouched,
	// which keeps the transparent void color intact.
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image_utils.ToRGBA(img)
	}
	bounds := rgba.Bounds()

	var rows [][]grid.Terrain
	y := bounds.Min.Y
	for y < bounds.Max.Y {
		if borderRow(rgba, y) {
			y++
			continue
		}

		// Walk the whole block run; every pixel row of a run belongs
		// to the same block row.
		start := y
		for y < bounds.Max.Y && !borderRow(rgba, y) {
			y++
		}
		sampleY := start + sampleOffset
		if sampleY >= y {
			sampleY = start
		}

		if row := decodePixelRow(rgba, sampleY); len(row) > 0 {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil, ErrNoBlocks
	}

	return grid.NewFromTerrain(rows)
}

// borderRow reports whether every pixel of row y separates blocks.
func borderRow(img *image.RGBA, y int) bool {
	bounds := img.Bounds()
	var px color.RGBA
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		px = img.RGBAAt(x, y)
		if _, block := classify(px.R, px.G, px.B); block {
			return false
		}
	}

	return true
}

// decodePixelRow splits one pixel row at border columns and classifies
// the third pixel of each block run. Runs narrower than three pixels
// are compression artifacts and are skipped.
func decodePixelRow(img *image.RGBA, y int) []grid.Terrain {
	bounds := img.Bounds()

	var row []grid.Terrain
	x := bounds.Min.X
	var px color.RGBA
	for x < bounds.Max.X {
		px = img.RGBAAt(x, y)
		if _, block := classify(px.R, px.G, px.B); !block {
			x++
			continue
		}

		start := x
		for x < bounds.Max.X {
			px = img.RGBAAt(x, y)
			if _, block := classify(px.R, px.G, px.B); !block {
				break
			}
			x++
		}
		if x-start <= sampleOffset {
			continue
		}

		px = img.RGBAAt(start+sampleOffset, y)
		t, _ := classify(px.R, px.G, px.B)
		row = append(row, t)
	}

	return row
}
