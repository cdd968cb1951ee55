package retained

import (
	"fmt"
	"image"
	"image/color"
)

// ============================================================================
// Host drawing contract
// ============================================================================

// Font measures and identifies a typeface for the host surface.
type Font interface {
	// Measure returns the size of s when drawn in this font.
	Measure(s string) image.Point
}

// Image is a host texture. Only its bounds are needed by the core.
type Image interface {
	Bounds() image.Rectangle
}

// Surface is the host's immediate-mode draw target. Coordinates are in the
// same space as form screen bounds.
type Surface interface {
	// Viewport returns the drawable area.
	Viewport() Rect
	FillRect(r Rect, c color.Color)
	// DrawImage stretches the src region of img over dst, multiplied by
	// tint (nil means no tint).
	DrawImage(img Image, src, dst Rect, tint color.Color)
	DrawText(s string, f Font, at image.Point, c color.Color)
	// SetClip restricts drawing to r until the next SetClip or ResetClip.
	SetClip(r Rect)
	ResetClip()
}

// Texture names a region of an image. Insets mark the border kept unscaled
// when drawn as a 9-slice box. A zero Source means the whole image.
type Texture struct {
	Image  Image
	Source Rect
	Insets Padding
	// Scale multiplies the insets when drawing a box. Zero means 1.
	Scale int
}

func (t *Texture) source() Rect {
	if t.Source.Empty() && t.Image != nil {
		return RectFromImage(t.Image.Bounds())
	}
	return t.Source
}

// Size returns the size of the source region.
func (t *Texture) Size() image.Point {
	if t == nil {
		return image.Point{}
	}
	return t.source().Size()
}

// ============================================================================
// Graphics
// ============================================================================

// Graphics wraps a Surface for one draw pass and keeps the clip stack.
type Graphics struct {
	surface Surface
	clips   []Rect
}

// NewGraphics starts a draw pass on s.
func NewGraphics(s Surface) *Graphics {
	return &Graphics{surface: s}
}

// Surface returns the underlying surface.
func (g *Graphics) Surface() Surface { return g.surface }

func (g *Graphics) FillRect(r Rect, c color.Color) {
	if r.Empty() || c == nil {
		return
	}
	g.surface.FillRect(r, c)
}

// DrawImage draws the whole texture into dst.
func (g *Graphics) DrawImage(t *Texture, dst Rect, tint color.Color) {
	if t == nil || t.Image == nil || dst.Empty() {
		return
	}
	g.surface.DrawImage(t.Image, t.source(), dst, tint)
}

// DrawTextureBox draws t as a 9-slice box: the corners keep their size, the
// edges stretch along one axis and the center stretches along both.
func (g *Graphics) DrawTextureBox(t *Texture, dst Rect, tint color.Color) {
	if t == nil || t.Image == nil || dst.Empty() {
		return
	}
	src := t.source()
	in := t.Insets
	if in == (Padding{}) {
		g.surface.DrawImage(t.Image, src, dst, tint)
		return
	}
	scale := max(t.Scale, 1)
	out := Padding{in.Left * scale, in.Top * scale, in.Right * scale, in.Bottom * scale}
	// Shrink the borders when the box is smaller than both of them.
	if out.Horizontal() > dst.Width {
		out.Left, out.Right = dst.Width/2, dst.Width-dst.Width/2
	}
	if out.Vertical() > dst.Height {
		out.Top, out.Bottom = dst.Height/2, dst.Height-dst.Height/2
	}

	srcCols := [3][2]int{{src.X, in.Left}, {src.X + in.Left, src.Width - in.Horizontal()}, {src.Right() - in.Right, in.Right}}
	srcRows := [3][2]int{{src.Y, in.Top}, {src.Y + in.Top, src.Height - in.Vertical()}, {src.Bottom() - in.Bottom, in.Bottom}}
	dstCols := [3][2]int{{dst.X, out.Left}, {dst.X + out.Left, dst.Width - out.Horizontal()}, {dst.Right() - out.Right, out.Right}}
	dstRows := [3][2]int{{dst.Y, out.Top}, {dst.Y + out.Top, dst.Height - out.Vertical()}, {dst.Bottom() - out.Bottom, out.Bottom}}

	for row := range 3 {
		for col := range 3 {
			s := R(srcCols[col][0], srcRows[row][0], srcCols[col][1], srcRows[row][1])
			d := R(dstCols[col][0], dstRows[row][0], dstCols[col][1], dstRows[row][1])
			if s.Empty() || d.Empty() {
				continue
			}
			g.surface.DrawImage(t.Image, s, d, tint)
		}
	}
}

// DrawText draws s with its top-left corner at p.
func (g *Graphics) DrawText(s string, f Font, p image.Point, c color.Color) {
	if s == "" || f == nil {
		return
	}
	g.surface.DrawText(s, f, p, c)
}

// DrawTextAligned draws s aligned inside r.
func (g *Graphics) DrawTextAligned(s string, f Font, r Rect, align ContentAlignment, c color.Color) {
	if s == "" || f == nil {
		return
	}
	b := AlignedBounds(r, f.Measure(s), align)
	g.surface.DrawText(s, f, b.Location(), c)
}

// MeasureText returns the size of s in f, or zero without a font.
func (g *Graphics) MeasureText(s string, f Font) image.Point {
	if f == nil {
		return image.Point{}
	}
	return f.Measure(s)
}

// ============================================================================
// Clipping
// ============================================================================

// Clip is one entry of the clip stack. Restore must be called exactly once,
// usually deferred right after PushClip succeeds.
type Clip struct {
	g         *Graphics
	depth     int
	invisible bool
}

// Invisible reports whether the clip has no overlap with the enclosing clip.
// Nothing drawn inside it would be visible.
func (c *Clip) Invisible() bool { return c.invisible }

// Restore pops the clip and reapplies the enclosing one.
func (c *Clip) Restore() {
	g := c.g
	if g == nil || len(g.clips) != c.depth {
		return
	}
	c.g = nil
	g.clips = g.clips[:c.depth-1]
	if n := len(g.clips); n > 0 {
		g.surface.SetClip(g.clips[n-1])
	} else {
		g.surface.ResetClip()
	}
}

// PushClip restricts drawing to r intersected with the viewport and the
// current clip. A rectangle with no area inside the viewport is an error and
// nothing is pushed.
func (g *Graphics) PushClip(r Rect) (*Clip, error) {
	r = r.Intersect(g.surface.Viewport())
	if r.Empty() {
		return nil, fmt.Errorf("push clip %v: %w", r, ErrInvalidClip)
	}
	invisible := false
	if n := len(g.clips); n > 0 {
		r = r.Intersect(g.clips[n-1])
		invisible = r.Empty()
	}
	g.clips = append(g.clips, r)
	g.surface.SetClip(r)
	return &Clip{g: g, depth: len(g.clips), invisible: invisible}, nil
}

// CurrentClip returns the active clip rectangle, if any.
func (g *Graphics) CurrentClip() (Rect, bool) {
	if n := len(g.clips); n > 0 {
		return g.clips[n-1], true
	}
	return Rect{}, false
}

// ============================================================================
// Assets
// ============================================================================

// Assets is the registry of textures and fonts the widgets draw with. It is
// built by the host and handed to each form.
type Assets struct {
	Font Font

	// MenuBox is the form background.
	MenuBox *Texture
	// Button is the 9-slice button background.
	Button *Texture
	// TextBox is the 9-slice background of combo boxes and lists.
	TextBox *Texture

	CheckboxChecked   *Texture
	CheckboxUnchecked *Texture
	DropDownArrow     *Texture

	ScrollUp    *Texture
	ScrollDown  *Texture
	ScrollLeft  *Texture
	ScrollRight *Texture
	ScrollThumb *Texture
	ScrollTrack *Texture

	TooltipBox *Texture

	TextColor      color.Color
	DisabledColor  color.Color
	HighlightColor color.Color
}

// NewAssets returns a registry with only colors set. Every texture is
// optional; widgets fall back to flat fills when one is missing.
func NewAssets(font Font) *Assets {
	return &Assets{
		Font:           font,
		TextColor:      color.RGBA{0x55, 0x2b, 0x0c, 0xff},
		DisabledColor:  color.RGBA{0x80, 0x80, 0x80, 0xff},
		HighlightColor: color.RGBA{0xf5, 0xde, 0xb3, 0xff},
	}
}
