package retained

import (
	"image"
	"image/color"
)

// ============================================================================
// ScrollBar
// ============================================================================

// Orientation is the axis a scrollbar moves along.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// ScrollBar holds an integer value in [0, MaxValue]. LargeChange is kept a
// multiple of SmallChange and MaxValue a multiple of LargeChange, so paging
// always lands on a step boundary.
type ScrollBar struct {
	Control

	orientation Orientation
	value       int

	// requested values, snapped into maxValue and largeChange
	requestedMax   int
	requestedLarge int

	maxValue    int
	smallChange int
	largeChange int

	wheelStep int
	onScroll  []func(old, new int)

	dragging bool
	dragGrab int
}

// NewScrollBar creates a scrollbar with default steps and MaxValue 1.
func NewScrollBar(o Orientation) *ScrollBar {
	d := DefaultSettings()
	s := &ScrollBar{
		orientation:    o,
		requestedMax:   1,
		requestedLarge: d.LargeChange,
		smallChange:    d.SmallChange,
		wheelStep:      d.WheelStep,
	}
	s.init(s)
	s.resnap()
	if o == Vertical {
		s.width, s.height = d.ScrollBarSize, d.ScrollBarSize*3
	} else {
		s.width, s.height = d.ScrollBarSize*3, d.ScrollBarSize
	}

	s.OnMouseDown(s.mouseDown)
	s.OnMouseMove(s.mouseMove)
	s.OnMouseUp(func(*MouseEvent) { s.dragging = false })
	s.OnScrollWheel(func(e *MouseEvent) { s.ScrollByWheel(e.Delta) })
	return s
}

func (s *ScrollBar) Orientation() Orientation { return s.orientation }
func (s *ScrollBar) Value() int               { return s.value }
func (s *ScrollBar) MaxValue() int            { return s.maxValue }
func (s *ScrollBar) SmallChange() int         { return s.smallChange }
func (s *ScrollBar) LargeChange() int         { return s.largeChange }

// SetValue clamps v into [0, MaxValue]. Scroll handlers run when the value
// actually changes.
func (s *ScrollBar) SetValue(v int) {
	v = min(max(v, 0), s.maxValue)
	if v == s.value {
		return
	}
	old := s.value
	s.value = v
	for _, fn := range s.onScroll {
		fn(old, v)
	}
}

// SetMaxValue sets the upper bound. It is raised to at least 1 and snapped up
// to a multiple of LargeChange.
func (s *ScrollBar) SetMaxValue(v int) {
	s.requestedMax = v
	s.resnap()
}

// SetSmallChange sets the arrow and wheel step. LargeChange and MaxValue are
// re-snapped.
func (s *ScrollBar) SetSmallChange(v int) {
	s.smallChange = max(v, 1)
	s.resnap()
}

// SetLargeChange sets the paging step, snapped up to a multiple of
// SmallChange.
func (s *ScrollBar) SetLargeChange(v int) {
	s.requestedLarge = v
	s.resnap()
}

// SetWheelStep sets the host wheel delta that counts as one notch.
func (s *ScrollBar) SetWheelStep(v int) { s.wheelStep = max(v, 1) }

// OnScroll registers a handler for value changes.
func (s *ScrollBar) OnScroll(fn func(old, new int)) {
	s.onScroll = append(s.onScroll, fn)
}

func (s *ScrollBar) resnap() {
	s.largeChange = max(ceilMultiple(s.requestedLarge, s.smallChange), s.smallChange)
	s.maxValue = ceilMultiple(max(s.requestedMax, 1), s.largeChange)
	s.SetValue(s.value)
}

func ceilMultiple(v, step int) int {
	if step <= 0 {
		return v
	}
	return (v + step - 1) / step * step
}

// ScrollByWheel moves the value one SmallChange per notch. A positive delta
// scrolls towards zero.
func (s *ScrollBar) ScrollByWheel(delta int) {
	if delta == 0 {
		return
	}
	notches := max(1, abs(delta)/max(s.wheelStep, 1))
	if delta > 0 {
		s.SetValue(s.value - notches*s.smallChange)
	} else {
		s.SetValue(s.value + notches*s.smallChange)
	}
}

// CanHandleWheel accepts wheel events while the bar is usable.
func (s *ScrollBar) CanHandleWheel(*MouseEvent) bool {
	return s.Enabled() && s.visible
}

// PreferredSize is one thickness across and three along the axis.
func (s *ScrollBar) PreferredSize() image.Point {
	t := DefaultSettings().ScrollBarSize
	if s.orientation == Vertical {
		return image.Pt(t, t*3)
	}
	return image.Pt(t*3, t)
}

// ============================================================================
// ScrollBar geometry
// ============================================================================

// barLayout splits the bar along its axis. All values are local offsets
// along the axis.
type barLayout struct {
	length, arrow     int
	trackStart, track int
	thumbStart, thumb int
}

func (s *ScrollBar) axis(p image.Point) int {
	if s.orientation == Vertical {
		return p.Y
	}
	return p.X
}

// span converts an axis range into a local rectangle.
func (s *ScrollBar) span(start, length int) Rect {
	if s.orientation == Vertical {
		return R(0, start, s.width, length)
	}
	return R(start, 0, length, s.height)
}

func (s *ScrollBar) layout() barLayout {
	length, cross := s.height, s.width
	if s.orientation == Horizontal {
		length, cross = s.width, s.height
	}
	l := barLayout{length: length}
	l.arrow = min(cross, length/3)
	l.trackStart = l.arrow
	l.track = max(0, length-2*l.arrow)
	l.thumb = min(l.track, max(cross/2, l.track*s.largeChange/(s.maxValue+s.largeChange)))
	if s.maxValue > 0 {
		l.thumbStart = l.trackStart + (l.track-l.thumb)*s.value/s.maxValue
	}
	return l
}

func (s *ScrollBar) mouseDown(e *MouseEvent) {
	if e.Button != MouseButtonLeft {
		return
	}
	l := s.layout()
	pos := s.axis(e.Location)
	switch {
	case pos < l.arrow:
		s.SetValue(s.value - s.smallChange)
	case pos >= l.length-l.arrow:
		s.SetValue(s.value + s.smallChange)
	case pos >= l.thumbStart && pos < l.thumbStart+l.thumb:
		s.dragging = true
		s.dragGrab = pos - l.thumbStart
	case pos < l.thumbStart:
		s.SetValue(s.value - s.largeChange)
	default:
		s.SetValue(s.value + s.largeChange)
	}
}

func (s *ScrollBar) mouseMove(e *MouseEvent) {
	if !s.dragging || !s.IsMouseButtonDown(MouseButtonLeft) {
		return
	}
	l := s.layout()
	room := l.track - l.thumb
	if room <= 0 {
		return
	}
	thumbStart := s.axis(e.Location) - s.dragGrab - l.trackStart
	s.SetValue(thumbStart * s.maxValue / room)
}

func (s *ScrollBar) Draw(g *Graphics) {
	screen := s.ScreenBounds()
	l := s.layout()
	a := s.Assets()
	if a == nil {
		a = &Assets{}
	}
	place := func(r Rect) Rect { return r.Offset(screen.X, screen.Y) }

	track := place(s.span(l.trackStart, l.track))
	if a.ScrollTrack != nil {
		g.DrawTextureBox(a.ScrollTrack, track, nil)
	} else {
		g.FillRect(track, color.RGBA{0xd0, 0xb0, 0x80, 0xff})
	}

	dec, inc := a.ScrollUp, a.ScrollDown
	if s.orientation == Horizontal {
		dec, inc = a.ScrollLeft, a.ScrollRight
	}
	drawArrow := func(t *Texture, r Rect) {
		if t != nil {
			g.DrawImage(t, r, nil)
		} else {
			g.FillRect(r, color.RGBA{0xa0, 0x70, 0x40, 0xff})
		}
	}
	drawArrow(dec, place(s.span(0, l.arrow)))
	drawArrow(inc, place(s.span(l.length-l.arrow, l.arrow)))

	thumb := place(s.span(l.thumbStart, l.thumb))
	if a.ScrollThumb != nil {
		g.DrawTextureBox(a.ScrollThumb, thumb, nil)
	} else {
		g.FillRect(thumb, color.RGBA{0x70, 0x40, 0x20, 0xff})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ============================================================================
// ScrollPanel
// ============================================================================

// ScrollPanel is a container whose content can be larger than its view.
// Two scrollbars are kept as non-client children along the right and bottom
// edges and are shown only when the content overflows on their axis.
type ScrollPanel struct {
	ContainerControl

	hbar, vbar *ScrollBar
	barSize    int

	minScroll  image.Point
	scrollSize image.Point
	updating   bool
}

// NewScrollPanel creates an empty scroll panel. Children are added with Add.
func NewScrollPanel() *ScrollPanel {
	p := &ScrollPanel{}
	p.initScrollPanel(p)
	return p
}

func (p *ScrollPanel) initScrollPanel(self Component) {
	p.barSize = DefaultSettings().ScrollBarSize
	p.initContainer(self)

	p.vbar = NewScrollBar(Vertical)
	p.hbar = NewScrollBar(Horizontal)
	for _, bar := range []*ScrollBar{p.vbar, p.hbar} {
		bar.visible = false
		bar.OnScroll(func(int, int) { p.Invalidate() })
		p.addNonClient(bar)
	}

	p.controls.OnChanged(func(*ControlsChangedEvent) { p.UpdateScrollBars() })
	p.OnScrollWheel(func(e *MouseEvent) {
		switch {
		case p.vbar.visible:
			p.vbar.ScrollByWheel(e.Delta)
		case p.hbar.visible:
			p.hbar.ScrollByWheel(e.Delta)
		}
	})
	p.OnInitialize(func() {
		if f := p.Form(); f != nil {
			p.applySettings(f.settings)
		}
	})
}

func (p *ScrollPanel) applySettings(s Settings) {
	p.barSize = s.ScrollBarSize
	for _, bar := range []*ScrollBar{p.vbar, p.hbar} {
		bar.SetWheelStep(s.WheelStep)
		bar.SetSmallChange(s.SmallChange)
		bar.SetLargeChange(s.LargeChange)
	}
	p.setBoundsCore(p.x, p.y, p.width, p.height)
	p.UpdateScrollBars()
}

// VScrollBar returns the vertical scrollbar.
func (p *ScrollPanel) VScrollBar() *ScrollBar { return p.vbar }

// HScrollBar returns the horizontal scrollbar.
func (p *ScrollPanel) HScrollBar() *ScrollBar { return p.hbar }

// ScrollOffset returns the values of the visible scrollbars.
func (p *ScrollPanel) ScrollOffset() image.Point {
	var off image.Point
	if p.hbar.visible {
		off.X = p.hbar.value
	}
	if p.vbar.visible {
		off.Y = p.vbar.value
	}
	return off
}

// ScrollSize returns the content size computed by the last UpdateScrollBars.
func (p *ScrollPanel) ScrollSize() image.Point { return p.scrollSize }

// MinScrollSize returns the minimum content size.
func (p *ScrollPanel) MinScrollSize() image.Point { return p.minScroll }

// SetMinScrollSize forces the content to be at least size, regardless of the
// children.
func (p *ScrollPanel) SetMinScrollSize(size image.Point) {
	if size == p.minScroll {
		return
	}
	p.minScroll = size
	p.UpdateScrollBars()
}

// CanHandleWheel accepts wheel events over the panel while it can scroll.
func (p *ScrollPanel) CanHandleWheel(e *MouseEvent) bool {
	return p.Enabled() && (p.vbar.visible || p.hbar.visible) && p.LocalBounds().Contains(e.Location)
}

// UpdateScrollBars recomputes the content size, bar visibility, ranges and
// placement.
func (p *ScrollPanel) UpdateScrollBars() {
	if p.updating {
		return
	}
	p.updating = true
	defer func() { p.updating = false }()

	content := p.contentExtent()
	content.X = max(content.X, p.minScroll.X)
	content.Y = max(content.Y, p.minScroll.Y)
	p.scrollSize = content

	inner := p.LocalBounds().Inset(p.padding)
	size := p.barSize
	needV := content.Y > inner.Height
	needH := content.X > inner.Width-gutter(needV, size)
	if needH && !needV {
		needV = content.Y > inner.Height-size
	}
	view := image.Pt(inner.Width-gutter(needV, size), inner.Height-gutter(needH, size))

	p.vbar.SetVisible(needV)
	p.hbar.SetVisible(needH)
	p.vbar.SetMaxValue(max(content.Y-view.Y, 1))
	p.hbar.SetMaxValue(max(content.X-view.X, 1))
	if !needV {
		p.vbar.SetValue(0)
	}
	if !needH {
		p.hbar.SetValue(0)
	}
	p.vbar.SetBounds(R(p.width-size, 0, size, max(0, p.height-gutter(needH, size))))
	p.hbar.SetBounds(R(0, p.height-size, max(0, p.width-gutter(needV, size)), size))

	p.invalidateClient()
}

func gutter(shown bool, size int) int {
	if shown {
		return size
	}
	return 0
}

func (p *ScrollPanel) computeClientArea() Rect {
	r := p.LocalBounds().Inset(p.padding)
	if p.vbar.visible {
		r.Width = max(0, r.Width-p.barSize)
	}
	if p.hbar.visible {
		r.Height = max(0, r.Height-p.barSize)
	}
	return r
}

// constrainSize keeps room for both scrollbars.
func (p *ScrollPanel) constrainSize(w, h int) (int, int) {
	return max(w, p.barSize*2), max(h, p.barSize*2)
}

func (p *ScrollPanel) sizeChanged()                 { p.UpdateScrollBars() }
func (p *ScrollPanel) childLayoutChanged(Component) { p.UpdateScrollBars() }

// PreferredSize fits the content plus padding. Scroll panels are normally
// sized explicitly.
func (p *ScrollPanel) PreferredSize() image.Point {
	return p.contentExtent().Add(p.padding.Size())
}

func (p *ScrollPanel) Draw(g *Graphics) {
	if p.backColor != nil {
		g.FillRect(p.ScreenBounds(), p.backColor)
	}
	p.drawChildren(g)
}
