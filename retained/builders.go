package retained

import "image"

// Builder helpers for common widget patterns.
// These provide a compact way to construct control trees.

// StackPanel lays its visible children out one after another, top to bottom
// or left to right, and grows to fit them.
type StackPanel struct {
	ContainerControl

	vertical  bool
	gap       int
	autoSize  bool
	arranging bool
}

// VStack creates a vertical stack container.
// Children are laid out top-to-bottom.
func VStack(gap int, children ...Component) (*StackPanel, error) {
	return newStack(true, gap, children)
}

// HStack creates a horizontal stack container.
// Children are laid out left-to-right.
func HStack(gap int, children ...Component) (*StackPanel, error) {
	return newStack(false, gap, children)
}

// NewStackPanel creates an empty stack.
func NewStackPanel(vertical bool, gap int) *StackPanel {
	s := &StackPanel{vertical: vertical, gap: gap, autoSize: true}
	s.initContainer(s)
	s.controls.OnChanged(func(*ControlsChangedEvent) { s.arrange() })
	return s
}

func newStack(vertical bool, gap int, children []Component) (*StackPanel, error) {
	s := NewStackPanel(vertical, gap)
	if err := s.Add(children...); err != nil {
		return nil, err
	}
	return s, nil
}

// Vertical reports whether children stack top to bottom.
func (s *StackPanel) Vertical() bool { return s.vertical }

func (s *StackPanel) Gap() int { return s.gap }

// SetGap changes the spacing between children.
func (s *StackPanel) SetGap(gap int) {
	s.gap = gap
	s.arrange()
}

func (s *StackPanel) AutoSize() bool { return s.autoSize }

// SetAutoSize makes the stack follow its content size.
func (s *StackPanel) SetAutoSize(v bool) {
	s.autoSize = v
	s.arrange()
}

func (s *StackPanel) childLayoutChanged(Component) { s.arrange() }

func (s *StackPanel) arrange() {
	if s.arranging {
		return
	}
	s.arranging = true
	defer func() { s.arranging = false }()

	stackLayout(image.Point{}, s.gap, s.vertical, s.controls.items)
	if s.autoSize && s.initialized {
		pref := s.PreferredSize()
		s.SetSize(pref.X, pref.Y)
	}
}

// PreferredSize fits the stacked children plus padding.
func (s *StackPanel) PreferredSize() image.Point {
	var ext image.Point
	n := 0
	for _, child := range s.controls.items {
		c := child.Base()
		if !c.visible {
			continue
		}
		if s.vertical {
			ext.X = max(ext.X, c.width)
			ext.Y += c.height
		} else {
			ext.X += c.width
			ext.Y = max(ext.Y, c.height)
		}
		n++
	}
	if n > 1 {
		if s.vertical {
			ext.Y += (n - 1) * s.gap
		} else {
			ext.X += (n - 1) * s.gap
		}
	}
	return ext.Add(s.padding.Size())
}

func (s *StackPanel) Draw(g *Graphics) {
	if s.backColor != nil {
		g.FillRect(s.ScreenBounds(), s.backColor)
	}
	s.drawChildren(g)
}

// Text creates an auto-sized label.
func Text(s string) *Label {
	return NewLabel(s)
}

// ButtonWith creates a button that runs fn on every left click.
func ButtonWith(text string, fn func()) *Button {
	b := NewButton(text)
	if fn != nil {
		b.OnClick(func(*MouseEvent) { fn() })
	}
	return b
}

// Toggle creates a checkbox with an initial state and a change handler.
func Toggle(text string, checked bool, fn func(bool)) *Checkbox {
	c := NewCheckbox(text)
	c.SetChecked(checked)
	if fn != nil {
		c.OnCheckChanged(fn)
	}
	return c
}

// Dropdown creates a combo box with the first item selected.
func Dropdown(items ...any) *ComboBox {
	cb := NewComboBox(items...)
	cb.SetSelectedIndex(0)
	return cb
}

// Scroll creates a scroll panel of a fixed size holding children.
func Scroll(width, height int, children ...Component) (*ScrollPanel, error) {
	p := NewScrollPanel()
	if err := p.Add(children...); err != nil {
		return nil, err
	}
	p.SetSize(width, height)
	return p, nil
}
