// Package shape rasterizes anti-aliased coverage masks for rounded
// rectangles and circles, filled or stroked, using golang.org/x/image/vector.
//
// Masks are *image.Alpha values with a zero origin that cover a caller
// supplied region of the destination. A mask pixel (x, y) corresponds to
// destination pixel region.Min + (x, y), which is the layout expected by
// draw.DrawMask with a zero mask point.
package shape
