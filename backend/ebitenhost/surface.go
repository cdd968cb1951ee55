// Package ebitenhost runs retained forms on top of Ebitengine. It plays the
// part of the game's menu host: it keeps a stack of open menus, turns
// Ebiten's polled input into the form callbacks and renders the active menu
// every frame.
package ebitenhost

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/agiangrant/menukit/retained"
)

// Surface implements retained.Surface on an *ebiten.Image. Clipping is done
// by drawing into a sub-image, which keeps the parent's coordinates.
type Surface struct {
	screen *ebiten.Image
	target *ebiten.Image

	// empty is set while the clip has no area; nothing is drawn then.
	empty bool
}

// NewSurface wraps screen.
func NewSurface(screen *ebiten.Image) *Surface {
	s := &Surface{}
	s.Reset(screen)
	return s
}

// Reset points the surface at a new frame and drops the clip.
func (s *Surface) Reset(screen *ebiten.Image) {
	s.screen = screen
	s.target = screen
	s.empty = false
}

func (s *Surface) Viewport() retained.Rect {
	return retained.RectFromImage(s.screen.Bounds())
}

func (s *Surface) SetClip(r retained.Rect) {
	rect := r.Image().Intersect(s.screen.Bounds())
	if rect.Empty() {
		s.empty = true
		return
	}
	s.empty = false
	s.target = s.screen.SubImage(rect).(*ebiten.Image)
}

func (s *Surface) ResetClip() {
	s.target = s.screen
	s.empty = false
}

func (s *Surface) FillRect(r retained.Rect, c color.Color) {
	if s.empty {
		return
	}
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (s *Surface) DrawImage(img retained.Image, src, dst retained.Rect, tint color.Color) {
	if s.empty || src.Empty() || dst.Empty() {
		return
	}
	eimg, ok := img.(*ebiten.Image)
	if !ok {
		return
	}
	sub := eimg.SubImage(src.Image()).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Width)/float64(src.Width), float64(dst.Height)/float64(src.Height))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	s.target.DrawImage(sub, op)
}

func (s *Surface) DrawText(str string, f retained.Font, at image.Point, c color.Color) {
	if s.empty {
		return
	}
	face := faceOf(f)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineSpacing(face)
	text.Draw(s.target, str, face, op)
}
