package retained

import (
	"fmt"
	"image"
)

// ============================================================================
// Router
// ============================================================================

// InputSource is polled for the state of buttons the host has no callbacks
// for.
type InputSource interface {
	CursorPosition() image.Point
	IsButtonPressed(b MouseButton) bool
}

// Router routes host input to controls and owns the focus, capture and hover
// state of one form. The three references are lookups only: they are
// dropped as soon as the control is disposed, detached or hidden.
type Router struct {
	form *Form

	active  Component   // focused control
	capture Component   // receives every mouse event while heldButton is down
	hover   Component   // under the cursor, or the capture
	held    MouseButton // button that established the capture

	buttons MouseButton // buttons the router has seen go down
	pressed MouseButton // buttons that went down since the last hover poll
	cursor  image.Point

	lastHover   image.Point
	hoverPolled bool

	input InputSource
}

func newRouter(f *Form) *Router {
	return &Router{form: f}
}

// Active returns the focused control, or nil.
func (r *Router) Active() Component { return r.active }

// Capture returns the control holding the mouse capture, or nil.
func (r *Router) Capture() Component { return r.capture }

// Hovering returns the hovering control, or nil.
func (r *Router) Hovering() Component { return r.hover }

// Cursor returns the last cursor position the router was told about.
func (r *Router) Cursor() image.Point { return r.cursor }

// ============================================================================
// Hit Testing
// ============================================================================

// hitTest resolves the control under p. An open overlay of the focused
// control (a dropped-down list) takes priority over the tree.
func (r *Router) hitTest(p image.Point) Component {
	if oh, ok := r.active.(overlay); ok {
		if b, open := oh.overlayBounds(); open && b.Contains(p) {
			return r.active
		}
	}
	return ControlAtPosition(r.form, p)
}

// ============================================================================
// Pointer Dispatch
// ============================================================================

// PointerDown handles a button press at p. Without a capture the control
// under the cursor is focused first; when focusing fails the press is
// dropped.
func (r *Router) PointerDown(p image.Point, b MouseButton) {
	r.cursor = p
	r.buttons |= b
	r.pressed |= b

	target := r.capture
	if target == nil {
		target = r.hitTest(p)
		focus := target
		if same(focus, r.form) {
			focus = nil
		}
		if err := r.SetActive(focus); err != nil {
			debugLog("pointer down dropped", "control", target.Base(), "button", b, "err", err)
			return
		}
	}
	r.dispatchMouse(target, EventMouseDown, p, b, 0)
}

// ButtonHeld is called on every poll while b stays down. The focused control
// takes the capture once it has seen the press itself.
func (r *Router) ButtonHeld(p image.Point, b MouseButton) {
	r.cursor = p
	if r.capture != nil || r.active == nil {
		return
	}
	if r.active.Base().IsMouseButtonDown(b) {
		r.capture = r.active
		r.held = b
		r.capture.Base().capturing = true
	}
}

// PointerUp handles a button release at p.
func (r *Router) PointerUp(p image.Point, b MouseButton) {
	r.cursor = p
	r.buttons &^= b

	target := r.capture
	if target == nil {
		target = r.hitTest(p)
	}
	r.dispatchMouse(target, EventMouseUp, p, b, 0)

	if r.capture != nil && r.held == b {
		r.releaseCapture()
	}
}

// Hover handles the per-frame hover poll: stale references are dropped,
// polled buttons are synthesized, the hovering control is re-resolved and a
// move is dispatched if the cursor moved.
func (r *Router) Hover(p image.Point) {
	r.sweep()
	r.pollButtons(p)
	r.cursor = p

	target := r.capture
	if target == nil {
		target = r.hitTest(p)
	}
	if !same(target, r.hover) {
		r.setHover(target)
	}

	moved := !r.hoverPolled || p != r.lastHover
	r.lastHover, r.hoverPolled = p, true
	if moved && r.hover != nil {
		r.dispatchMouse(r.hover, EventMouseMove, p, MouseButtonNone, 0)
	}
}

// Wheel dispatches a scroll wheel delta. The capture receives it directly.
// Otherwise it starts at the hovering control and climbs to the first
// ancestor that can consume it.
func (r *Router) Wheel(delta int) {
	if delta == 0 {
		return
	}
	if r.capture != nil {
		r.dispatchMouse(r.capture, EventScrollWheel, r.cursor, MouseButtonNone, delta)
		return
	}
	target := r.hover
	if target == nil {
		target = r.hitTest(r.cursor)
	}
	e := MouseEvent{Type: EventScrollWheel, Display: r.cursor, Delta: delta}
	for target != nil {
		e = e.ToLocal(target)
		if wh, ok := target.(WheelHandler); ok && wh.CanHandleWheel(&e) {
			break
		}
		target = target.Base().parent
	}
	if target == nil {
		debugLog("scroll wheel unhandled", "delta", delta)
		return
	}
	target.Base().processMouse(&e, r.form.settings.ClickThreshold)
}

// KeyPress delivers a key to the focused control. Without one it does
// nothing.
func (r *Router) KeyPress(e *KeyEvent) {
	if r.active == nil || !r.active.Base().Enabled() {
		return
	}
	r.active.Base().fireKey(e)
}

// pollButtons synthesizes held and released events for buttons the host only
// reports a press for (right) or not at all (middle). A button counts as held
// from the first poll after its press.
func (r *Router) pollButtons(p image.Point) {
	fresh := r.pressed
	defer func() { r.pressed = 0 }()
	if r.input == nil {
		return
	}
	for _, b := range [...]MouseButton{MouseButtonRight, MouseButtonMiddle} {
		down := r.input.IsButtonPressed(b)
		seen := r.buttons&b != 0
		switch {
		case down && seen && fresh&b != 0:
		case down && seen:
			r.ButtonHeld(p, b)
		case !down && seen:
			r.PointerUp(p, b)
		case down && b == MouseButtonMiddle:
			r.PointerDown(p, b)
		}
	}
}

func (r *Router) dispatchMouse(target Component, t EventType, p image.Point, b MouseButton, delta int) {
	if target == nil {
		return
	}
	c := target.Base()
	e := &MouseEvent{Type: t, Display: p, Location: c.PointToLocal(p), Button: b, Delta: delta}
	c.processMouse(e, r.form.settings.ClickThreshold)
}

// ============================================================================
// Focus
// ============================================================================

// SetActive focuses c, or clears the focus when c is nil. The current focus
// holder's validating hooks may veto the change; the state is unchanged when
// an error is returned.
func (r *Router) SetActive(c Component) error {
	if same(c, r.active) {
		return nil
	}
	if c != nil {
		base := c.Base()
		if base.disposed {
			return fmt.Errorf("focus %s: %w", base, ErrDisposed)
		}
		if !r.form.IsAncestorOf(c) {
			return fmt.Errorf("focus %s: %w", base, ErrNotOwned)
		}
	}
	if r.active != nil && !r.active.Base().disposed && !r.active.Base().validate() {
		return fmt.Errorf("focus %v: %w by %s", c, ErrFocusVetoed, r.active.Base())
	}
	r.setActive(c)
	return nil
}

// setActive moves the focus without validation. Lost-focus is skipped for a
// disposed control.
func (r *Router) setActive(c Component) {
	old := r.active
	r.active = c
	if old != nil {
		ob := old.Base()
		ob.focused = false
		if !ob.disposed {
			ob.fireFocus(&FocusEvent{Type: EventLostFocus, Related: c})
		}
	}
	if c != nil && same(c, r.active) {
		c.Base().focused = true
		c.Base().fireFocus(&FocusEvent{Type: EventGotFocus, Related: old})
	}
}

// Validate runs the focused control's validating hooks. It reports true when
// nothing is focused.
func (r *Router) Validate() bool {
	if r.active == nil {
		return true
	}
	return r.active.Base().validate()
}

// ============================================================================
// Hover and Capture
// ============================================================================

func (r *Router) setHover(c Component) {
	old := r.hover
	r.hover = c
	if old != nil {
		ob := old.Base()
		ob.hovered = false
		if !ob.disposed {
			r.dispatchMouse(old, EventMouseLeave, r.cursor, MouseButtonNone, 0)
		}
	}
	if c != nil && same(c, r.hover) {
		c.Base().hovered = true
		r.dispatchMouse(c, EventMouseEnter, r.cursor, MouseButtonNone, 0)
	}
}

func (r *Router) releaseCapture() {
	if r.capture != nil {
		r.capture.Base().capturing = false
	}
	r.capture = nil
	r.held = MouseButtonNone
}

// ============================================================================
// Validity
// ============================================================================

// reachable reports whether c is alive and still part of this form.
func (r *Router) reachable(c Component) bool {
	b := c.Base()
	return !b.disposed && b.Form() == r.form
}

// sweep drops references to controls that were disposed or left the form
// through a path that didn't notify the router.
func (r *Router) sweep() {
	if r.active != nil && !r.reachable(r.active) {
		debugLog("focus cleared", "control", r.active.Base(), "reason", "unreachable")
		r.setActive(nil)
	}
	if r.capture != nil && !r.reachable(r.capture) {
		debugLog("capture cleared", "control", r.capture.Base(), "reason", "unreachable")
		r.releaseCapture()
	}
	if r.hover != nil && !r.reachable(r.hover) {
		r.setHover(nil)
	}
}

// forget drops every reference into the subtree rooted at c. It is called
// when c is hidden or detached; focus is cleared without validation.
func (r *Router) forget(c Component) {
	within := func(x Component) bool {
		return x != nil && (same(x, c) || c.Base().IsAncestorOf(x))
	}
	if within(r.active) {
		r.setActive(nil)
	}
	if within(r.capture) {
		r.releaseCapture()
	}
	if within(r.hover) {
		r.setHover(nil)
	}
}
