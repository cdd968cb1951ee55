package retained

import (
	"fmt"
	"image"
	"image/color"
)

// Widgets: Label, Button, Checkbox, ComboBox.
// They consume the core's bounds and focus state and draw through Graphics.

// ============================================================================
// Label
// ============================================================================

// TextImageRelation places a label's image relative to its text.
type TextImageRelation uint8

const (
	ImageBeforeText TextImageRelation = iota
	TextBeforeImage
	ImageAboveText
	TextAboveImage
	Overlay
)

// Label displays text and an optional image.
type Label struct {
	Control

	image      *Texture
	imageScale int
	textAlign  ContentAlignment
	relation   TextImageRelation
	autoSize   bool
}

// NewLabel creates an auto-sized label.
func NewLabel(text string) *Label {
	l := &Label{}
	l.initLabel(l, text)
	return l
}

func (l *Label) initLabel(self Component, text string) {
	l.init(self)
	l.text = text
	l.textAlign = AlignMiddleLeft
	l.imageScale = 1
	l.autoSize = true
}

func (l *Label) AutoSize() bool { return l.autoSize }

// SetAutoSize makes the label track its preferred size.
func (l *Label) SetAutoSize(v bool) {
	l.autoSize = v
	l.textChanged()
}

func (l *Label) TextAlign() ContentAlignment { return l.textAlign }

func (l *Label) SetTextAlign(a ContentAlignment) { l.textAlign = a }

func (l *Label) Image() *Texture { return l.image }

// SetImage sets the image drawn next to the text at the given integer scale.
func (l *Label) SetImage(t *Texture, scale int) {
	l.image = t
	l.imageScale = max(scale, 1)
	l.textChanged()
}

func (l *Label) SetTextImageRelation(r TextImageRelation) {
	l.relation = r
	l.textChanged()
}

func (l *Label) textChanged() {
	if l.autoSize && l.initialized {
		pref := l.PreferredSize()
		l.SetSize(pref.X, pref.Y)
	}
}

// contentSizes returns the image and text sizes.
func (l *Label) contentSizes() (img, txt image.Point) {
	if l.image != nil {
		img = l.image.Size().Mul(l.imageScale)
	}
	if f := l.Font(); f != nil && l.text != "" {
		txt = f.Measure(l.text)
	}
	return img, txt
}

// PreferredSize fits the text and image plus padding.
func (l *Label) PreferredSize() image.Point {
	img, txt := l.contentSizes()
	return combineSizes(img, txt, l.relation).Add(l.padding.Size())
}

func combineSizes(img, txt image.Point, rel TextImageRelation) image.Point {
	switch rel {
	case ImageBeforeText, TextBeforeImage:
		return image.Pt(img.X+txt.X, max(img.Y, txt.Y))
	case ImageAboveText, TextAboveImage:
		return image.Pt(max(img.X, txt.X), img.Y+txt.Y)
	}
	return image.Pt(max(img.X, txt.X), max(img.Y, txt.Y))
}

func (l *Label) Draw(g *Graphics) {
	if l.backColor != nil {
		g.FillRect(l.ScreenBounds(), l.backColor)
	}
	l.drawContent(g, l.textColor())
}

func (l *Label) textColor() color.Color {
	if !l.Enabled() {
		if a := l.Assets(); a != nil && a.DisabledColor != nil {
			return a.DisabledColor
		}
	}
	return l.foreColor
}

// drawContent lays the image and text out as one block aligned by TextAlign
// inside the display rectangle.
func (l *Label) drawContent(g *Graphics, c color.Color) {
	area := l.DisplayRectangle()
	img, txt := l.contentSizes()
	block := AlignedBounds(area, combineSizes(img, txt, l.relation), l.textAlign)

	var imgAt, txtAt image.Point
	switch l.relation {
	case ImageBeforeText:
		imgAt = image.Pt(block.X, block.Center().Y-img.Y/2)
		txtAt = image.Pt(block.X+img.X, block.Center().Y-txt.Y/2)
	case TextBeforeImage:
		txtAt = image.Pt(block.X, block.Center().Y-txt.Y/2)
		imgAt = image.Pt(block.X+txt.X, block.Center().Y-img.Y/2)
	case ImageAboveText:
		imgAt = image.Pt(block.Center().X-img.X/2, block.Y)
		txtAt = image.Pt(block.Center().X-txt.X/2, block.Y+img.Y)
	case TextAboveImage:
		txtAt = image.Pt(block.Center().X-txt.X/2, block.Y)
		imgAt = image.Pt(block.Center().X-img.X/2, block.Y+txt.Y)
	default:
		imgAt = block.Center().Sub(img.Div(2))
		txtAt = block.Center().Sub(txt.Div(2))
	}
	if l.image != nil {
		g.DrawImage(l.image, R(imgAt.X, imgAt.Y, img.X, img.Y), nil)
	}
	g.DrawText(l.text, l.Font(), txtAt, c)
}

// ============================================================================
// Button
// ============================================================================

// Button is a label drawn on a button texture. Clicks are reported through
// OnClick.
type Button struct {
	Label
}

// NewButton creates an auto-sized button.
func NewButton(text string) *Button {
	b := &Button{}
	b.initLabel(b, text)
	b.padding = Pad(16, 8, 16, 8)
	b.textAlign = AlignMiddleCenter
	return b
}

// Pressed reports whether the left button went down on the button and the
// cursor is still over it.
func (b *Button) Pressed() bool {
	return b.IsMouseButtonDown(MouseButtonLeft) && b.LocalBounds().Contains(b.CursorPosition())
}

func (b *Button) Draw(g *Graphics) {
	bounds := b.ScreenBounds()
	var tint color.Color
	switch {
	case !b.Enabled():
		tint = color.Gray{Y: 0x90}
	case b.Pressed():
		tint = color.Gray{Y: 0xc0}
	case b.hovered:
		tint = color.Gray{Y: 0xf0}
	}
	a := b.Assets()
	switch {
	case a != nil && a.Button != nil:
		g.DrawTextureBox(a.Button, bounds, tint)
	case b.backColor != nil:
		g.FillRect(bounds, b.backColor)
	default:
		g.FillRect(bounds, color.RGBA{0xe8, 0xb0, 0x60, 0xff})
	}
	b.drawContent(g, b.textColor())
}

// ============================================================================
// Checkbox
// ============================================================================

const checkboxGap = 8

// Checkbox toggles on a left click.
type Checkbox struct {
	Control

	checked       bool
	onCheckChange []func(checked bool)
}

// NewCheckbox creates an unchecked checkbox with a text caption.
func NewCheckbox(text string) *Checkbox {
	c := &Checkbox{}
	c.init(c)
	c.text = text
	c.OnClick(func(*MouseEvent) { c.SetChecked(!c.checked) })
	return c
}

func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked changes the state and notifies handlers when it differs.
func (c *Checkbox) SetChecked(v bool) {
	if v == c.checked {
		return
	}
	c.checked = v
	for _, fn := range c.onCheckChange {
		fn(v)
	}
}

// OnCheckChanged registers a handler for state changes.
func (c *Checkbox) OnCheckChanged(fn func(checked bool)) {
	c.onCheckChange = append(c.onCheckChange, fn)
}

func (c *Checkbox) boxSize() image.Point {
	if a := c.Assets(); a != nil && a.CheckboxUnchecked != nil {
		return a.CheckboxUnchecked.Size().Mul(4)
	}
	return image.Pt(36, 36)
}

// PreferredSize fits the box, a gap and the caption.
func (c *Checkbox) PreferredSize() image.Point {
	box := c.boxSize()
	var txt image.Point
	if f := c.Font(); f != nil && c.text != "" {
		txt = f.Measure(c.text)
		box.X += checkboxGap
	}
	return image.Pt(box.X+txt.X, max(box.Y, txt.Y)).Add(c.padding.Size())
}

func (c *Checkbox) Draw(g *Graphics) {
	area := c.DisplayRectangle()
	size := c.boxSize()
	box := AlignedBounds(area, size, AlignMiddleLeft)

	var tex *Texture
	if a := c.Assets(); a != nil {
		tex = a.CheckboxUnchecked
		if c.checked {
			tex = a.CheckboxChecked
		}
	}
	if tex != nil {
		g.DrawImage(tex, box, nil)
	} else {
		g.FillRect(box, color.RGBA{0xff, 0xf0, 0xd0, 0xff})
		if c.checked {
			g.FillRect(box.Inset(PadAll(box.Width/4)), color.RGBA{0x40, 0x80, 0x30, 0xff})
		}
	}

	textArea := R(box.Right()+checkboxGap, area.Y, max(0, area.Right()-box.Right()-checkboxGap), area.Height)
	g.DrawTextAligned(c.text, c.Font(), textArea, AlignMiddleLeft, c.foreColor)
}

// ============================================================================
// ComboBox
// ============================================================================

// ComboBox selects one item from a drop-down list. A click toggles the list;
// a click on a list item selects it. The list closes when focus moves away.
type ComboBox struct {
	Control

	items       []any
	selected    int
	droppedDown bool
	itemHeight  int

	// NullText is shown when nothing is selected.
	NullText string
	// Format turns an item into its display text. Defaults to fmt.Sprint.
	Format func(item any) string

	onSelectedIndexChanged []func(index int)
}

// NewComboBox creates a combo box holding items with nothing selected.
func NewComboBox(items ...any) *ComboBox {
	cb := &ComboBox{items: items, selected: -1}
	cb.init(cb)
	cb.padding = Pad(8, 0, 0, 0)
	cb.OnClick(cb.click)
	cb.OnLostFocus(func(*FocusEvent) { cb.droppedDown = false })
	cb.OnScrollWheel(func(e *MouseEvent) {
		switch {
		case e.Delta > 0 && cb.selected > 0:
			cb.SetSelectedIndex(cb.selected - 1)
		case e.Delta < 0 && cb.selected < len(cb.items)-1:
			cb.SetSelectedIndex(cb.selected + 1)
		}
	})
	cb.OnInitialize(cb.textChanged)
	return cb
}

func (cb *ComboBox) Items() []any { return cb.items }

// SetItems replaces the items and clears the selection.
func (cb *ComboBox) SetItems(items ...any) {
	cb.items = items
	cb.droppedDown = false
	if cb.selected != -1 {
		cb.selected = -1
		cb.fireSelected()
	}
}

func (cb *ComboBox) SelectedIndex() int { return cb.selected }

// SetSelectedIndex selects item i, or nothing for -1. Out of range values
// are ignored.
func (cb *ComboBox) SetSelectedIndex(i int) {
	if i == cb.selected || i < -1 || i >= len(cb.items) {
		return
	}
	cb.selected = i
	cb.fireSelected()
}

// SelectedItem returns the selected item, or nil.
func (cb *ComboBox) SelectedItem() any {
	if cb.selected < 0 {
		return nil
	}
	return cb.items[cb.selected]
}

// OnSelectedIndexChanged registers a handler for selection changes.
func (cb *ComboBox) OnSelectedIndexChanged(fn func(index int)) {
	cb.onSelectedIndexChanged = append(cb.onSelectedIndexChanged, fn)
}

func (cb *ComboBox) fireSelected() {
	for _, fn := range cb.onSelectedIndexChanged {
		fn(cb.selected)
	}
}

func (cb *ComboBox) DroppedDown() bool { return cb.droppedDown }

func (cb *ComboBox) SetDroppedDown(v bool) {
	cb.droppedDown = v && len(cb.items) > 0
}

// ItemText returns the display text of item.
func (cb *ComboBox) ItemText(item any) string {
	if item == nil {
		return ""
	}
	if cb.Format != nil {
		return cb.Format(item)
	}
	return fmt.Sprint(item)
}

// CanHandleWheel takes the wheel while focused, so scrolling over a focused
// combo box changes its selection instead of scrolling the panel.
func (cb *ComboBox) CanHandleWheel(*MouseEvent) bool {
	return cb.Enabled() && cb.focused && len(cb.items) > 0
}

func (cb *ComboBox) textChanged() {
	if f := cb.Font(); f != nil {
		cb.itemHeight = f.Measure("Qwerty").Y
	}
}

// PreferredSize fits the widest item and the arrow.
func (cb *ComboBox) PreferredSize() image.Point {
	f := cb.Font()
	w := 0
	if f != nil {
		for _, item := range cb.items {
			w = max(w, f.Measure(cb.ItemText(item)).X)
		}
		w = max(w, f.Measure(cb.NullText).X)
	}
	h := cb.itemHeight + 4
	return image.Pt(w+h+cb.padding.Horizontal()+8, h)
}

func (cb *ComboBox) arrowBounds() Rect {
	return R(cb.width-cb.height, 0, cb.height, cb.height)
}

// listBounds returns the drop-down list in local coordinates.
func (cb *ComboBox) listBounds() Rect {
	return R(0, cb.height, cb.width, 8+max(1, len(cb.items))*cb.itemHeight)
}

func (cb *ComboBox) overlayBounds() (Rect, bool) {
	if !cb.droppedDown {
		return Rect{}, false
	}
	s := cb.ScreenBounds()
	return cb.listBounds().Offset(s.X, s.Y), true
}

// itemAt returns the list index under a local point, or -1.
func (cb *ComboBox) itemAt(p image.Point) int {
	list := cb.listBounds()
	if !list.Contains(p) || cb.itemHeight <= 0 {
		return -1
	}
	i := (p.Y - list.Y - 4) / cb.itemHeight
	if i < 0 || i >= len(cb.items) {
		return -1
	}
	return i
}

func (cb *ComboBox) click(e *MouseEvent) {
	if len(cb.items) == 0 {
		return
	}
	if cb.droppedDown && e.Location.Y >= cb.height {
		if i := cb.itemAt(e.Location); i >= 0 {
			cb.SetSelectedIndex(i)
		}
		cb.droppedDown = false
		return
	}
	cb.droppedDown = !cb.droppedDown
}

func (cb *ComboBox) Draw(g *Graphics) {
	s := cb.ScreenBounds()
	a := cb.Assets()
	box := R(s.X, s.Y, max(0, s.Width-cb.height), s.Height)
	arrow := cb.arrowBounds().Offset(s.X, s.Y)
	if a != nil && a.TextBox != nil {
		g.DrawTextureBox(a.TextBox, box, nil)
	} else {
		g.FillRect(box, color.RGBA{0xff, 0xf0, 0xd0, 0xff})
	}
	if a != nil && a.DropDownArrow != nil {
		g.DrawImage(a.DropDownArrow, arrow, nil)
	} else {
		g.FillRect(arrow, color.RGBA{0xc0, 0x80, 0x40, 0xff})
	}

	text := cb.NullText
	if item := cb.SelectedItem(); item != nil {
		text = cb.ItemText(item)
	}
	textArea := R(box.X+cb.padding.Left, box.Y, max(0, box.Width-cb.padding.Left), box.Height)
	g.DrawTextAligned(text, cb.Font(), textArea, AlignMiddleLeft, cb.foreColor)
}

func (cb *ComboBox) drawOverlay(g *Graphics) {
	list, _ := cb.overlayBounds()
	a := cb.Assets()
	if a != nil && a.TextBox != nil {
		g.DrawTextureBox(a.TextBox, list, nil)
	} else {
		g.FillRect(list, color.RGBA{0xff, 0xf0, 0xd0, 0xff})
	}
	highlight := color.Color(color.RGBA{0xf5, 0xde, 0xb3, 0xff})
	if a != nil && a.HighlightColor != nil {
		highlight = a.HighlightColor
	}
	y := list.Y + 4
	for i, item := range cb.items {
		row := R(list.X+4, y, max(0, list.Width-8), cb.itemHeight)
		if i == cb.selected {
			g.FillRect(row, highlight)
		}
		g.DrawTextAligned(cb.ItemText(item), cb.Font(), row.Offset(4, 0), AlignMiddleLeft, cb.foreColor)
		y += cb.itemHeight
	}
}
