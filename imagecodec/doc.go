// Package imagecodec converts terrain grids to and from raster site
// plans.
//
// What:
//
//   - Encode renders a grid.Grid as an RGBA image: 20px colored blocks
//     separated by 3px red border strips.
//   - Decode reverses the process: it partitions the image into
//     border and block runs, samples the third pixel of each block to
//     dodge compression blur at block edges, and classifies the color
//     into a terrain category. Any color outside the palette counts as
//     border.
//
// Why:
//
//   - Site plans drawn in an image editor become searchable grids.
//   - Solved grids (with a stamped route) export back to an image.
//
// Complexity:
//
//   - Encode: O(pixels) time and memory.
//   - Decode: O(pixels) time, O(W×H) memory.
//
// Errors:
//
//   - ErrNilImage: Decode received a nil image.
//   - ErrNoBlocks: the image contains no decodable block rows.
package imagecodec
