package retained

import (
	"image"
	"image/color"
	"unicode"
)

// ============================================================================
// Text Buffer
// ============================================================================

// textBuffer is single-line editable text with a cursor, counted in runes.
type textBuffer struct {
	content   []rune
	cursor    int
	maxLength int
	filter    func(r rune) bool
}

func (b *textBuffer) String() string { return string(b.content) }

// set replaces the content, truncating to maxLength and keeping the cursor
// in range.
func (b *textBuffer) set(s string) {
	b.content = []rune(s)
	if b.maxLength > 0 && len(b.content) > b.maxLength {
		b.content = b.content[:b.maxLength]
	}
	b.cursor = min(b.cursor, len(b.content))
}

// insert adds s at the cursor after dropping line breaks and filtered runes.
// It reports whether anything changed.
func (b *textBuffer) insert(s string) bool {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' {
			continue
		}
		if b.filter != nil && !b.filter(r) {
			continue
		}
		runes = append(runes, r)
	}
	if b.maxLength > 0 {
		runes = runes[:min(len(runes), max(0, b.maxLength-len(b.content)))]
	}
	if len(runes) == 0 {
		return false
	}
	content := make([]rune, 0, len(b.content)+len(runes))
	content = append(content, b.content[:b.cursor]...)
	content = append(content, runes...)
	b.content = append(content, b.content[b.cursor:]...)
	b.cursor += len(runes)
	return true
}

// delete removes count runes after the cursor, or before it when count is
// negative.
func (b *textBuffer) delete(count int) bool {
	start, end := b.cursor, b.cursor+count
	if count < 0 {
		start, end = b.cursor+count, b.cursor
	}
	start, end = max(start, 0), min(end, len(b.content))
	if start >= end {
		return false
	}
	b.content = append(b.content[:start], b.content[end:]...)
	b.cursor = start
	return true
}

func (b *textBuffer) moveCursor(delta int) { b.setCursor(b.cursor + delta) }

func (b *textBuffer) setCursor(pos int) {
	b.cursor = min(max(pos, 0), len(b.content))
}

// ============================================================================
// TextBox
// ============================================================================

// TextBox is a single-line text field. It edits while focused: typed runes
// are inserted at the cursor and named keys (Backspace, Delete, ArrowLeft,
// ArrowRight, Home, End, Enter) edit or move it.
type TextBox struct {
	Control

	buf      textBuffer
	readOnly bool
	syncing  bool

	// Placeholder is shown in the disabled color while the box is empty.
	Placeholder string

	onSubmit []func(text string)
}

// NewTextBox creates an empty text box.
func NewTextBox() *TextBox {
	tb := &TextBox{}
	tb.init(tb)
	tb.padding = Pad(8, 0, 8, 0)
	tb.OnKeyPress(tb.keyPress)
	tb.OnMouseDown(tb.placeCursor)
	return tb
}

// Cursor returns the cursor position in runes.
func (tb *TextBox) Cursor() int { return tb.buf.cursor }

func (tb *TextBox) SetCursor(pos int) { tb.buf.setCursor(pos) }

func (tb *TextBox) ReadOnly() bool     { return tb.readOnly }
func (tb *TextBox) SetReadOnly(v bool) { tb.readOnly = v }

// SetMaxLength limits the text to n runes. Zero removes the limit.
func (tb *TextBox) SetMaxLength(n int) {
	tb.buf.maxLength = max(n, 0)
	tb.buf.set(tb.text)
	tb.commit()
}

// SetCharFilter restricts typed input to runes for which fn returns true.
func (tb *TextBox) SetCharFilter(fn func(r rune) bool) { tb.buf.filter = fn }

// OnSubmit registers a handler called with the text when Enter is pressed.
func (tb *TextBox) OnSubmit(fn func(text string)) {
	tb.onSubmit = append(tb.onSubmit, fn)
}

func (tb *TextBox) textChanged() {
	if tb.syncing {
		return
	}
	tb.buf.set(tb.text)
	tb.buf.cursor = len(tb.buf.content)
	tb.commit()
}

// commit copies the buffer back into the control text.
func (tb *TextBox) commit() {
	tb.syncing = true
	tb.SetText(tb.buf.String())
	tb.syncing = false
}

func (tb *TextBox) keyPress(e *KeyEvent) {
	changed := false
	switch e.Key {
	case "Backspace":
		changed = !tb.readOnly && tb.buf.delete(-1)
	case "Delete":
		changed = !tb.readOnly && tb.buf.delete(1)
	case "ArrowLeft":
		tb.buf.moveCursor(-1)
	case "ArrowRight":
		tb.buf.moveCursor(1)
	case "Home":
		tb.buf.setCursor(0)
	case "End":
		tb.buf.setCursor(len(tb.buf.content))
	case "Enter":
		for _, fn := range tb.onSubmit {
			fn(tb.text)
		}
	default:
		if e.Rune != 0 && unicode.IsPrint(e.Rune) && !tb.readOnly {
			changed = tb.buf.insert(string(e.Rune))
		}
	}
	if changed {
		tb.commit()
	}
}

// placeCursor moves the cursor to the rune boundary nearest the click.
func (tb *TextBox) placeCursor(e *MouseEvent) {
	if e.Button != MouseButtonLeft {
		return
	}
	f := tb.Font()
	if f == nil {
		return
	}
	x := e.Location.X - tb.padding.Left
	pos := 0
	for i := 1; i <= len(tb.buf.content); i++ {
		prev := f.Measure(string(tb.buf.content[:i-1])).X
		next := f.Measure(string(tb.buf.content[:i])).X
		if x < (prev+next)/2 {
			break
		}
		pos = i
	}
	tb.buf.setCursor(pos)
}

func (tb *TextBox) PreferredSize() image.Point {
	h := 0
	if f := tb.Font(); f != nil {
		h = f.Measure("Qwerty").Y
	}
	return image.Pt(200, h+tb.padding.Vertical()+8)
}

func (tb *TextBox) Draw(g *Graphics) {
	s := tb.ScreenBounds()
	a := tb.Assets()
	if a != nil && a.TextBox != nil {
		g.DrawTextureBox(a.TextBox, s, nil)
	} else {
		g.FillRect(s, color.RGBA{0xff, 0xf0, 0xd0, 0xff})
	}

	area := R(s.X+tb.padding.Left, s.Y+tb.padding.Top, max(0, s.Width-tb.padding.Horizontal()), max(0, s.Height-tb.padding.Vertical()))
	clip, err := g.PushClip(area)
	if err != nil {
		return
	}
	defer clip.Restore()
	if clip.Invisible() {
		return
	}

	f := tb.Font()
	switch {
	case tb.text == "" && tb.Placeholder != "":
		c := color.Color(color.Gray{Y: 0x80})
		if a != nil && a.DisabledColor != nil {
			c = a.DisabledColor
		}
		g.DrawTextAligned(tb.Placeholder, f, area, AlignMiddleLeft, c)
	default:
		g.DrawTextAligned(tb.text, f, area, AlignMiddleLeft, tb.foreColor)
	}

	if tb.Focused() && !tb.readOnly && f != nil {
		size := f.Measure("|")
		x := area.X + g.MeasureText(string(tb.buf.content[:tb.buf.cursor]), f).X
		y := area.Y + (area.Height-size.Y)/2
		g.FillRect(R(x, y, 2, size.Y), tb.foreColor)
	}
}
