package retained

import (
	"image"
	"image/color"
	"unicode/utf8"
)

// ============================================================================
// Recording surface
// ============================================================================

// DrawOp identifies a recorded draw call.
type DrawOp uint8

const (
	OpFill DrawOp = iota + 1
	OpImage
	OpText
)

// DrawCommand is one recorded draw call. Clip is the clip rectangle active at
// the time; Clipped is false when no clip was set.
type DrawCommand struct {
	Op      DrawOp
	Dst     Rect
	Src     Rect
	Image   Image
	Text    string
	Font    Font
	Color   color.Color
	Clip    Rect
	Clipped bool
}

// Visible reports whether any part of the command lands inside its clip.
func (c DrawCommand) Visible() bool {
	if !c.Clipped {
		return true
	}
	return !c.Dst.Intersect(c.Clip).Empty()
}

// Recorder is a Surface that records draw calls instead of rasterizing them.
// It backs headless hosts and tests.
type Recorder struct {
	Commands []DrawCommand

	viewport Rect
	clip     Rect
	clipped  bool
}

// NewRecorder creates a recorder with a viewport of w by h pixels.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{viewport: R(0, 0, w, h)}
}

func (r *Recorder) Viewport() Rect { return r.viewport }

func (r *Recorder) FillRect(dst Rect, c color.Color) {
	r.record(DrawCommand{Op: OpFill, Dst: dst, Color: c})
}

func (r *Recorder) DrawImage(img Image, src, dst Rect, tint color.Color) {
	r.record(DrawCommand{Op: OpImage, Image: img, Src: src, Dst: dst, Color: tint})
}

func (r *Recorder) DrawText(s string, f Font, at image.Point, c color.Color) {
	size := f.Measure(s)
	r.record(DrawCommand{Op: OpText, Text: s, Font: f, Dst: R(at.X, at.Y, size.X, size.Y), Color: c})
}

func (r *Recorder) SetClip(c Rect) { r.clip, r.clipped = c, true }
func (r *Recorder) ResetClip()     { r.clip, r.clipped = Rect{}, false }

func (r *Recorder) record(c DrawCommand) {
	c.Clip, c.Clipped = r.clip, r.clipped
	r.Commands = append(r.Commands, c)
}

// Reset drops the recorded commands and the clip.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.ResetClip()
}

// Texts returns the strings of every visible text command in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Commands {
		if c.Op == OpText && c.Visible() {
			out = append(out, c.Text)
		}
	}
	return out
}

// FixedFont measures every rune as a cell of the same size. It stands in for a
// real face on headless surfaces.
type FixedFont struct {
	CellWidth  int
	CellHeight int
}

func (f FixedFont) Measure(s string) image.Point {
	if s == "" {
		return image.Point{}
	}
	return image.Pt(utf8.RuneCountInString(s)*f.CellWidth, f.CellHeight)
}
