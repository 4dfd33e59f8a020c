// Package geometry provides the integer value types used for page-space
// drawing coordinates. The origin is the top-left corner of the image and
// y grows downward.
package geometry

// Point is a pixel position in page space.
type Point struct {
	X, Y int
}

// Translate returns p shifted by dx and dy. There is no bounds checking;
// negative coordinates are valid page-space positions.
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is a rectangular pixel extent.
type Size struct {
	Width, Height int
}

// RGB is an opaque color with channels in [0, 255].
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. The alpha channel is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
