package retained

import "image"

// ============================================================================
// Rectangles
// ============================================================================

// Rect is an integer rectangle in pixels. X and Y locate the top-left corner,
// Width and Height are never negative for rectangles produced by this package.
type Rect struct {
	X, Y          int
	Width, Height int
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFromImage converts an image.Rectangle.
func RectFromImage(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Image converts the rectangle to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Location returns the top-left corner.
func (r Rect) Location() image.Point { return image.Pt(r.X, r.Y) }

// Size returns the width and height as a point.
func (r Rect) Size() image.Point { return image.Pt(r.Width, r.Height) }

// Center returns the center point, rounded towards the top-left.
func (r Rect) Center() image.Point {
	return image.Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains checks if a point is within the rectangle. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p image.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlap of two rectangles. The result is the zero
// Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return RectFromImage(r.Image().Intersect(o.Image()))
}

// Inset shrinks the rectangle by the padding. Width and height stop at zero.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  max(0, r.Width-p.Horizontal()),
		Height: max(0, r.Height-p.Vertical()),
	}
}

// LocalPoint converts a point in the rectangle's coordinate space to one
// relative to its top-left corner.
func (r Rect) LocalPoint(p image.Point) image.Point {
	return image.Pt(p.X-r.X, p.Y-r.Y)
}

// ============================================================================
// Padding
// ============================================================================

// Padding holds insets for the four edges of a control.
type Padding struct {
	Left, Top, Right, Bottom int
}

// PadAll returns a padding with the same inset on every edge.
func PadAll(n int) Padding {
	return Padding{Left: n, Top: n, Right: n, Bottom: n}
}

// Pad returns a padding with the given insets.
func Pad(left, top, right, bottom int) Padding {
	return Padding{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Size returns the combined horizontal and vertical insets.
func (p Padding) Size() image.Point { return image.Pt(p.Horizontal(), p.Vertical()) }

// ============================================================================
// Bounds selection
// ============================================================================

// BoundsSpecified selects which components of a bounds update are applied.
type BoundsSpecified uint8

const (
	BoundsX BoundsSpecified = 1 << iota
	BoundsY
	BoundsWidth
	BoundsHeight

	BoundsNone     BoundsSpecified = 0
	BoundsLocation                 = BoundsX | BoundsY
	BoundsSize                     = BoundsWidth | BoundsHeight
	BoundsAll                      = BoundsLocation | BoundsSize
)

// ============================================================================
// Content alignment
// ============================================================================

// ContentAlignment places content inside a larger rectangle.
type ContentAlignment uint16

const (
	AlignTopLeft ContentAlignment = 1 << iota
	AlignTopCenter
	AlignTopRight
	AlignMiddleLeft
	AlignMiddleCenter
	AlignMiddleRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

const (
	alignTop    = AlignTopLeft | AlignTopCenter | AlignTopRight
	alignMiddle = AlignMiddleLeft | AlignMiddleCenter | AlignMiddleRight
	alignBottom = AlignBottomLeft | AlignBottomCenter | AlignBottomRight
	alignLeft   = AlignTopLeft | AlignMiddleLeft | AlignBottomLeft
	alignCenter = AlignTopCenter | AlignMiddleCenter | AlignBottomCenter
)

// AlignedBounds returns the rectangle an element of the given size occupies
// when aligned inside container. The element never grows past the container.
func AlignedBounds(container Rect, size image.Point, align ContentAlignment) Rect {
	w := min(size.X, container.Width)
	h := min(size.Y, container.Height)
	out := Rect{X: container.X, Y: container.Y, Width: w, Height: h}

	switch {
	case align&alignBottom != 0:
		out.Y = container.Bottom() - h
	case align&alignMiddle != 0:
		out.Y = container.Center().Y - h/2
	}

	switch {
	case align&alignLeft != 0:
	case align&alignCenter != 0:
		out.X = container.Center().X - w/2
	default:
		out.X = container.Right() - w
	}
	return out
}

// stackLayout positions components one after another along an axis starting
// at origin. Invisible components are skipped.
func stackLayout(origin image.Point, gap int, vertical bool, children []Component) image.Point {
	pos := origin
	extent := image.Point{}
	for _, child := range children {
		c := child.Base()
		if !c.Visible() {
			continue
		}
		c.SetLocation(pos.X, pos.Y)
		if vertical {
			pos.Y += c.Height() + gap
			extent.X = max(extent.X, c.Width())
			extent.Y = pos.Y - gap - origin.Y
		} else {
			pos.X += c.Width() + gap
			extent.Y = max(extent.Y, c.Height())
			extent.X = pos.X - gap - origin.X
		}
	}
	return extent
}
