package retained

import (
	"fmt"
	"image"
	"slices"
)

// Container is implemented by controls that hold children.
type Container interface {
	Component
	Controls() *Collection
	ClientRectangle() Rect
}

// childOwner enumerates every owned child, including non-client children
// that are not part of Controls.
type childOwner interface {
	childCount() int
	appendChildren(dst []Component) []Component
}

type nonClientOwner interface {
	removeNonClient(c Component)
}

type formRoot interface {
	form() *Form
}

// ContainerControl is the base for controls with children. Client children
// live in Controls and are laid out inside the client rectangle. Non-client
// children (scrollbars) are positioned against the outer bounds, do not
// scroll and stay hit-testable outside the client rectangle.
type ContainerControl struct {
	Control
	controls  *Collection
	nonClient []Component
}

func (cc *ContainerControl) initContainer(self Component) {
	cc.init(self)
	cc.controls = newCollection(self)
}

// Controls returns the client children.
func (cc *ContainerControl) Controls() *Collection { return cc.controls }

// Add appends children to Controls. Every child is validated first; on
// error nothing is added.
func (cc *ContainerControl) Add(children ...Component) error {
	for i, child := range children {
		if err := cc.controls.ValidateCanAdd(child); err != nil {
			return err
		}
		for _, prev := range children[:i] {
			if prev.Base() == child.Base() {
				return fmt.Errorf("add %s: %w", child.Base(), ErrAlreadyMember)
			}
		}
	}
	for _, child := range children {
		if err := cc.controls.Add(child); err != nil {
			return err
		}
	}
	return nil
}

// Children returns every owned child in paint order: client children, then
// non-client children.
func (cc *ContainerControl) Children() []Component {
	return cc.appendChildren(make([]Component, 0, cc.childCount()))
}

func (cc *ContainerControl) childCount() int {
	return cc.controls.Len() + len(cc.nonClient)
}

func (cc *ContainerControl) appendChildren(dst []Component) []Component {
	dst = append(dst, cc.controls.items...)
	return append(dst, cc.nonClient...)
}

func (cc *ContainerControl) addNonClient(c Component) {
	c.Base().detach()
	cc.nonClient = append(cc.nonClient, c)
	c.Base().setParent(cc.self, true)
}

func (cc *ContainerControl) removeNonClient(c Component) {
	i := slices.IndexFunc(cc.nonClient, func(item Component) bool { return same(item, c) })
	if i < 0 {
		return
	}
	cc.nonClient = slices.Delete(cc.nonClient, i, i+1)
	c.Base().setParent(nil, false)
}

// Owns reports whether c is a descendant of the container.
func (cc *ContainerControl) Owns(c Component) bool {
	return cc.IsAncestorOf(c)
}

// ActiveControl returns the form's focused control when it belongs to this
// container.
func (cc *ContainerControl) ActiveControl() Component {
	f := cc.Form()
	if f == nil {
		return nil
	}
	if a := f.router.active; a != nil && cc.IsAncestorOf(a) {
		return a
	}
	return nil
}

// SetActiveControl focuses c, which must be a descendant of the container.
// Passing nil clears the focus when it is inside this container.
func (cc *ContainerControl) SetActiveControl(c Component) error {
	f := cc.Form()
	if f == nil {
		return fmt.Errorf("set active control: %w: %s is not attached to a form", ErrNotOwned, cc)
	}
	if c == nil {
		if cc.ActiveControl() == nil {
			return nil
		}
		return f.router.SetActive(nil)
	}
	if !cc.IsAncestorOf(c) {
		return fmt.Errorf("set active control %s on %s: %w", c.Base(), cc, ErrNotOwned)
	}
	return f.router.SetActive(c)
}

// ControlAt returns the deepest visible control at p (form coordinates).
func (cc *ContainerControl) ControlAt(p image.Point) Component {
	return ControlAtPosition(cc.self.(Container), p)
}

// drawChildren draws client children clipped to the client area, then the
// non-client children on top.
func (cc *ContainerControl) drawChildren(g *Graphics) {
	if cc.controls.Len() > 0 {
		clip, err := g.PushClip(cc.DisplayRectangle())
		if err == nil {
			if !clip.Invisible() {
				children := acquireSnapshot(cc.controls.Len())
				children = append(children, cc.controls.items...)
				for _, child := range children {
					drawComponent(g, child)
				}
				releaseSnapshot(children)
			}
			clip.Restore()
		}
	}
	for _, child := range slices.Clone(cc.nonClient) {
		drawComponent(g, child)
	}
}

// contentExtent returns the furthest right and bottom edges of the visible
// client children.
func (cc *ContainerControl) contentExtent() image.Point {
	var ext image.Point
	for _, child := range cc.controls.items {
		c := child.Base()
		if !c.visible {
			continue
		}
		ext.X = max(ext.X, c.Right())
		ext.Y = max(ext.Y, c.Bottom())
	}
	return ext
}

// ============================================================================
// Panel
// ============================================================================

// Panel is a plain container with an optional background.
type Panel struct {
	ContainerControl
}

// NewPanel creates an empty panel. Children are added with Add.
func NewPanel() *Panel {
	p := &Panel{}
	p.initContainer(p)
	return p
}

// PreferredSize fits the visible children plus padding.
func (p *Panel) PreferredSize() image.Point {
	return p.contentExtent().Add(p.padding.Size())
}

func (p *Panel) Draw(g *Graphics) {
	if p.backColor != nil {
		g.FillRect(p.ScreenBounds(), p.backColor)
	}
	p.drawChildren(g)
}

// drawComponent draws c when it is visible and knows how to draw itself.
func drawComponent(g *Graphics, c Component) {
	if !c.Base().visible {
		return
	}
	if d, ok := c.(Drawer); ok {
		d.Draw(g)
	}
}
