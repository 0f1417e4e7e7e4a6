package bridge

import (
	"math"

	"gioui.org/f32"
)

// Point is a 2D point in device independent pixels.
type Point = f32.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return f32.Pt(x, y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float32 {
	d := a.Sub(b)
	return float32(math.Hypot(float64(d.X), float64(d.Y)))
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return a.Add(b).Mul(0.5)
}

// LayoutBox is a resolved screen-space rectangle.
type LayoutBox struct {
	Left, Top, Width, Height float32
}

// unsetBox is the geometry of an element that has never been laid out.
func unsetBox() LayoutBox {
	nan := float32(math.NaN())
	return LayoutBox{Left: nan, Top: nan, Width: nan, Height: nan}
}

// Right returns the exclusive right edge.
func (b LayoutBox) Right() float32 {
	return b.Left + b.Width
}

// Bottom returns the exclusive bottom edge.
func (b LayoutBox) Bottom() float32 {
	return b.Top + b.Height
}

// Contains reports whether p lies in [Left, Right) x [Top, Bottom).
// A box with NaN geometry contains nothing.
func (b LayoutBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X < b.Left+b.Width &&
		p.Y >= b.Top && p.Y < b.Top+b.Height
}

// Valid reports whether the box has been laid out.
func (b LayoutBox) Valid() bool {
	return !isNaN(b.Left) && !isNaN(b.Top) && !isNaN(b.Width) && !isNaN(b.Height)
}

// Origin returns the top-left corner.
func (b LayoutBox) Origin() Point {
	return Pt(b.Left, b.Top)
}

func isNaN(v float32) bool {
	return v != v
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// contentToParent maps a content-space point of a scrolled, zoomed viewport
// whose top-left sits at origin into the viewport's parent space.
func contentToParent(origin, scroll Point, zoom float32) f32.Affine2D {
	return f32.Affine2D{}.
		Offset(scroll.Mul(-1)).
		Scale(Point{}, Pt(zoom, zoom)).
		Offset(origin)
}

// parentToContent is the inverse of contentToParent. It is built directly
// rather than inverted so integral inputs stay exact.
func parentToContent(origin, scroll Point, zoom float32) f32.Affine2D {
	return f32.Affine2D{}.
		Offset(origin.Mul(-1)).
		Scale(Point{}, Pt(1/zoom, 1/zoom)).
		Offset(scroll)
}
