// Package retained is a retained-mode widget toolkit for menus drawn by a
// game host.
//
// A Form is the root of a control tree. The host forwards its raw input
// callbacks to the Form, which routes them through the Router to the control
// under the cursor (or to the control holding the mouse capture). Each control
// caches its bounds in form coordinates and lazily recomputes them when an
// ancestor moves, resizes or scrolls.
//
// Everything runs on the host's thread. Nothing here locks.
package retained

import (
	"fmt"
	"image"
	"image/color"
)

// Component is implemented by every control. Widgets embed Control (directly
// or through ContainerControl) and get Base for free.
type Component interface {
	Base() *Control
}

// Drawer is implemented by components that render themselves.
type Drawer interface {
	Draw(g *Graphics)
}

// Sizer is implemented by components that know their natural size. It is used
// when a control is first attached to a form without an explicit size, and by
// auto-sizing widgets.
type Sizer interface {
	PreferredSize() image.Point
}

// WheelHandler is implemented by components that may consume scroll wheel
// events. Wheel events bubble from the hovered control to the first ancestor
// whose CanHandleWheel returns true.
type WheelHandler interface {
	CanHandleWheel(e *MouseEvent) bool
}

// Scrollable is implemented by containers whose children are offset by a
// scroll position.
type Scrollable interface {
	ScrollOffset() image.Point
}

// ============================================================================
// Optional internal hooks
// ============================================================================

// clientAreaComputer overrides the default client rectangle (bounds minus
// padding).
type clientAreaComputer interface {
	computeClientArea() Rect
}

// sizeConstrainer adjusts a requested size before it is applied.
type sizeConstrainer interface {
	constrainSize(w, h int) (int, int)
}

// layoutObserver is notified after the control's own size changed.
type layoutObserver interface {
	sizeChanged()
}

// childObserver is notified when a client child moved, resized or toggled
// visibility.
type childObserver interface {
	childLayoutChanged(child Component)
}

// textObserver is notified after the text or font changed.
type textObserver interface {
	textChanged()
}

// ============================================================================
// Bounds cache
// ============================================================================

type cachedRect struct {
	rect  Rect
	valid bool
}

func (c *cachedRect) set(r Rect) Rect {
	c.rect, c.valid = r, true
	return r
}

// boundsCache memoizes derived rectangles. All entries are dropped together
// by clear; Invalidate drops only the entries that depend on ancestors.
type boundsCache struct {
	local  cachedRect // (0, 0, width, height)
	client cachedRect // local bounds minus padding and gutters
	screen cachedRect // form coordinates
	parent cachedRect // parent's child frame when screen was computed
}

func (b *boundsCache) clear() { *b = boundsCache{} }

func (b *boundsCache) invalidateScreen() {
	b.screen.valid = false
	b.parent.valid = false
}

// ============================================================================
// Control
// ============================================================================

// Control is the base record shared by every widget. The zero value is not
// usable; construct with NewControl or through a widget constructor.
type Control struct {
	self Component

	name string
	Tag  any

	x, y          int
	width, height int
	padding       Padding

	enabled bool
	visible bool

	text      string
	font      Font
	foreColor color.Color
	backColor color.Color

	tooltipTitle string
	tooltipText  string

	// parent is a lookup-only back reference. The parent's collection (or
	// its non-client list) is what keeps this control in the tree.
	parent    Component
	nonClient bool

	initialized bool
	disposed    bool

	cache boundsCache

	buttons MouseButton
	downAt  [3]image.Point

	focused   bool
	hovered   bool
	capturing bool

	handlers handlers
}

// NewControl creates a plain leaf control.
func NewControl() *Control {
	c := &Control{}
	c.init(c)
	return c
}

// init wires self (the outermost widget value) and applies defaults. Widget
// constructors call it before anything else.
func (c *Control) init(self Component) {
	c.self = self
	c.enabled = true
	c.visible = true
	c.foreColor = color.Black
}

// Base returns the control itself.
func (c *Control) Base() *Control { return c }

// Self returns the outermost widget embedding this control.
func (c *Control) Self() Component { return c.self }

func (c *Control) Name() string        { return c.name }
func (c *Control) SetName(name string) { c.name = name }

func (c *Control) String() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("%T", c.self)
}

// ============================================================================
// Tree
// ============================================================================

// Parent returns the container holding this control, or nil.
func (c *Control) Parent() Component { return c.parent }

// SetParent moves the control into p's collection, or detaches it when p is
// nil.
func (c *Control) SetParent(p Container) error {
	if c.disposed {
		return fmt.Errorf("set parent of %s: %w", c, ErrDisposed)
	}
	if p == nil {
		c.detach()
		return nil
	}
	if c.parent != nil && same(c.parent, p) {
		return nil
	}
	return p.Controls().Add(c.self)
}

// detach removes the control from whatever currently owns it.
func (c *Control) detach() {
	if c.parent == nil {
		return
	}
	if !c.nonClient {
		if owner, ok := c.parent.(Container); ok && owner.Controls().Remove(c.self) {
			return
		}
	}
	if owner, ok := c.parent.(nonClientOwner); ok {
		owner.removeNonClient(c.self)
		return
	}
	c.setParent(nil, false)
}

// setParent is the internal path used by collections. It never touches the
// parent's child lists.
func (c *Control) setParent(p Component, nonClient bool) {
	if c.parent == nil && p == nil {
		return
	}
	if c.parent != nil {
		if f := c.Form(); f != nil {
			f.router.forget(c.self)
		}
	}
	c.parent = p
	c.nonClient = nonClient && p != nil
	c.cache.clear()
	c.Invalidate()
	if p != nil {
		c.attached()
	}
}

// attached initializes this control and its subtree once it is reachable from
// a form. Children go first so a container sizing itself to its content sees
// their final sizes.
func (c *Control) attached() {
	if c.Form() == nil {
		return
	}
	children := snapshotChildren(c.self)
	for _, child := range children {
		child.Base().attached()
	}
	releaseSnapshot(children)
	c.initialize()
}

func (c *Control) initialize() {
	if c.initialized {
		return
	}
	c.initialized = true
	for _, fn := range c.handlers.initialize {
		fn()
	}
	if c.width == 0 || c.height == 0 {
		pref := PreferredSize(c.self)
		c.SetSize(max(c.width, pref.X), max(c.height, pref.Y))
	}
}

// Initialized reports whether the control has been attached to a form.
func (c *Control) Initialized() bool { return c.initialized }

// Form returns the form at the root of the control's tree, or nil when the
// control is not attached to one.
func (c *Control) Form() *Form {
	var top Component = c.self
	for top.Base().parent != nil {
		top = top.Base().parent
	}
	if f, ok := top.(formRoot); ok {
		return f.form()
	}
	return nil
}

// IsAncestorOf reports whether other is a (transitive) child of c.
func (c *Control) IsAncestorOf(other Component) bool {
	if other == nil {
		return false
	}
	for p := other.Base().parent; p != nil; p = p.Base().parent {
		if p.Base() == c {
			return true
		}
	}
	return false
}

// Dispose detaches the control and disposes its subtree. A disposed control
// cannot be added to a collection or focused again.
func (c *Control) Dispose() {
	if c.disposed {
		return
	}
	c.detach()
	children := snapshotChildren(c.self)
	defer releaseSnapshot(children)
	for _, child := range children {
		child.Base().Dispose()
	}
	c.disposed = true
}

// Disposed reports whether Dispose has been called.
func (c *Control) Disposed() bool { return c.disposed }

// ============================================================================
// Bounds
// ============================================================================

func (c *Control) X() int      { return c.x }
func (c *Control) Y() int      { return c.y }
func (c *Control) Width() int  { return c.width }
func (c *Control) Height() int { return c.height }
func (c *Control) Right() int  { return c.x + c.width }
func (c *Control) Bottom() int { return c.y + c.height }

// Bounds returns the control's rectangle in its parent's client space.
func (c *Control) Bounds() Rect { return R(c.x, c.y, c.width, c.height) }

// Size returns the width and height.
func (c *Control) Size() image.Point { return image.Pt(c.width, c.height) }

// SetBounds sets position and size.
func (c *Control) SetBounds(r Rect) {
	c.SetBoundsSpecified(r.X, r.Y, r.Width, r.Height, BoundsAll)
}

// SetLocation moves the control within its parent.
func (c *Control) SetLocation(x, y int) {
	c.SetBoundsSpecified(x, y, 0, 0, BoundsLocation)
}

// SetSize resizes the control.
func (c *Control) SetSize(w, h int) {
	c.SetBoundsSpecified(0, 0, w, h, BoundsSize)
}

// SetBoundsSpecified applies only the components selected by which.
func (c *Control) SetBoundsSpecified(x, y, w, h int, which BoundsSpecified) {
	if which&BoundsX == 0 {
		x = c.x
	}
	if which&BoundsY == 0 {
		y = c.y
	}
	if which&BoundsWidth == 0 {
		w = c.width
	}
	if which&BoundsHeight == 0 {
		h = c.height
	}
	c.setBoundsCore(x, y, w, h)
}

func (c *Control) setBoundsCore(x, y, w, h int) {
	w, h = max(w, 0), max(h, 0)
	if sc, ok := c.self.(sizeConstrainer); ok {
		w, h = sc.constrainSize(w, h)
	}
	if x == c.x && y == c.y && w == c.width && h == c.height {
		return
	}
	resized := w != c.width || h != c.height
	c.x, c.y, c.width, c.height = x, y, w, h

	c.cache.clear()
	c.Invalidate()

	if resized {
		if lo, ok := c.self.(layoutObserver); ok {
			lo.sizeChanged()
		}
	}
	for _, fn := range c.handlers.boundsChanged {
		fn()
	}
	c.notifyParentLayout()
}

func (c *Control) notifyParentLayout() {
	if c.parent == nil || c.nonClient {
		return
	}
	if obs, ok := c.parent.(childObserver); ok {
		obs.childLayoutChanged(c.self)
	}
}

// Invalidate drops the screen bounds of the control and every descendant.
func (c *Control) Invalidate() {
	c.cache.invalidateScreen()
	children := snapshotChildren(c.self)
	defer releaseSnapshot(children)
	for _, child := range children {
		child.Base().Invalidate()
	}
}

// invalidateClient drops the cached client rectangle, which moves every
// child's frame.
func (c *Control) invalidateClient() {
	c.cache.client.valid = false
	c.Invalidate()
}

// LocalBounds returns (0, 0, width, height).
func (c *Control) LocalBounds() Rect {
	if c.cache.local.valid {
		return c.cache.local.rect
	}
	return c.cache.local.set(R(0, 0, c.width, c.height))
}

// ClientRectangle returns the area children are laid out in, relative to the
// control's top-left corner.
func (c *Control) ClientRectangle() Rect {
	if c.cache.client.valid {
		return c.cache.client.rect
	}
	var r Rect
	if cc, ok := c.self.(clientAreaComputer); ok {
		r = cc.computeClientArea()
	} else {
		r = c.LocalBounds().Inset(c.padding)
	}
	return c.cache.client.set(r)
}

// DisplayRectangle returns the client rectangle in form coordinates.
func (c *Control) DisplayRectangle() Rect {
	s := c.ScreenBounds()
	return c.ClientRectangle().Offset(s.X, s.Y)
}

// ScreenBounds returns the control's rectangle in form coordinates. A control
// without a parent reports its own bounds. The cached value is reused only
// while the parent's child frame (its screen origin, client origin and scroll
// offset) is unchanged since it was computed.
func (c *Control) ScreenBounds() Rect {
	if c.parent == nil {
		return c.Bounds()
	}
	frame := c.parent.Base().childFrame(c.nonClient)
	if c.cache.screen.valid && c.cache.parent.valid && c.cache.parent.rect == frame {
		return c.cache.screen.rect
	}
	c.cache.parent.set(frame)
	return c.cache.screen.set(R(frame.X+c.x, frame.Y+c.y, c.width, c.height))
}

// childFrame is the rectangle, in form coordinates, whose origin a child's
// (x, y) is relative to. Non-client children are placed against the control's
// outer bounds and do not scroll.
func (c *Control) childFrame(nonClient bool) Rect {
	s := c.ScreenBounds()
	if nonClient {
		return s
	}
	client := c.ClientRectangle()
	off := c.scrollOffset()
	return R(s.X+client.X-off.X, s.Y+client.Y-off.Y, client.Width, client.Height)
}

// scrollOffset returns the scroll position of a scrollable control, or zero.
func (c *Control) scrollOffset() image.Point {
	if s, ok := c.self.(Scrollable); ok {
		return s.ScrollOffset()
	}
	return image.Point{}
}

// PointToDisplay converts a point relative to the control into form
// coordinates.
func (c *Control) PointToDisplay(p image.Point) image.Point {
	return p.Add(c.ScreenBounds().Location())
}

// PointToLocal converts a point in form coordinates into the control's space.
func (c *Control) PointToLocal(p image.Point) image.Point {
	return p.Sub(c.ScreenBounds().Location())
}

// CursorPosition returns the last known cursor position in local space.
func (c *Control) CursorPosition() image.Point {
	f := c.Form()
	if f == nil {
		return image.Point{}
	}
	return c.PointToLocal(f.router.cursor)
}

// ============================================================================
// Appearance and state
// ============================================================================

func (c *Control) Padding() Padding { return c.padding }

// SetPadding changes the insets of the client rectangle.
func (c *Control) SetPadding(p Padding) {
	if p == c.padding {
		return
	}
	c.padding = p
	c.invalidateClient()
	if lo, ok := c.self.(layoutObserver); ok {
		lo.sizeChanged()
	}
}

// Enabled reports whether the control and all of its ancestors are enabled.
func (c *Control) Enabled() bool {
	if !c.enabled {
		return false
	}
	if c.parent != nil {
		return c.parent.Base().Enabled()
	}
	return true
}

func (c *Control) SetEnabled(v bool) { c.enabled = v }

func (c *Control) Visible() bool { return c.visible }

// SetVisible shows or hides the control. Hiding the focused control, or one of
// its ancestors, clears the focus without consulting validating handlers.
func (c *Control) SetVisible(v bool) {
	if v == c.visible {
		return
	}
	c.visible = v
	if !v {
		if f := c.Form(); f != nil {
			f.router.forget(c.self)
		}
	}
	c.notifyParentLayout()
}

func (c *Control) Text() string { return c.text }

func (c *Control) SetText(s string) {
	if s == c.text {
		return
	}
	c.text = s
	if to, ok := c.self.(textObserver); ok {
		to.textChanged()
	}
}

// Font returns the control's font, inheriting from the parent chain and
// finally from the form's assets.
func (c *Control) Font() Font {
	for p := c.self; p != nil; p = p.Base().parent {
		if f := p.Base().font; f != nil {
			return f
		}
		if fr, ok := p.(formRoot); ok {
			if a := fr.form().assets; a != nil {
				return a.Font
			}
		}
	}
	return nil
}

func (c *Control) SetFont(f Font) {
	c.font = f
	if to, ok := c.self.(textObserver); ok {
		to.textChanged()
	}
}

func (c *Control) ForeColor() color.Color     { return c.foreColor }
func (c *Control) SetForeColor(v color.Color) { c.foreColor = v }
func (c *Control) BackColor() color.Color     { return c.backColor }
func (c *Control) SetBackColor(v color.Color) { c.backColor = v }

// Tooltip returns the title and text shown while the cursor rests on the
// control.
func (c *Control) Tooltip() (title, text string) { return c.tooltipTitle, c.tooltipText }

func (c *Control) SetTooltip(title, text string) {
	c.tooltipTitle, c.tooltipText = title, text
}

// Assets returns the asset registry of the control's form.
func (c *Control) Assets() *Assets {
	if f := c.Form(); f != nil {
		return f.assets
	}
	return nil
}

// Focused reports whether the control is the form's active control.
func (c *Control) Focused() bool { return c.focused }

// Hovered reports whether the control is the form's hovering control.
func (c *Control) Hovered() bool { return c.hovered }

// Capturing reports whether the control holds the mouse capture.
func (c *Control) Capturing() bool { return c.capturing }

// IsMouseButtonDown reports whether b was pressed on this control and has not
// been released on it yet.
func (c *Control) IsMouseButtonDown(b MouseButton) bool {
	return b != MouseButtonNone && c.buttons&b == b
}

// Focus makes the control the form's active control.
func (c *Control) Focus() error {
	f := c.Form()
	if f == nil {
		return fmt.Errorf("focus %s: %w", c, ErrNotOwned)
	}
	return f.SetActiveControl(c.self)
}

// ============================================================================
// Handlers
// ============================================================================

func (c *Control) OnMouseDown(fn MouseHandler)  { c.handlers.mouseDown = append(c.handlers.mouseDown, fn) }
func (c *Control) OnMouseUp(fn MouseHandler)    { c.handlers.mouseUp = append(c.handlers.mouseUp, fn) }
func (c *Control) OnMouseMove(fn MouseHandler)  { c.handlers.mouseMove = append(c.handlers.mouseMove, fn) }
func (c *Control) OnMouseClick(fn MouseHandler) { c.handlers.mouseClick = append(c.handlers.mouseClick, fn) }
func (c *Control) OnClick(fn MouseHandler)      { c.handlers.click = append(c.handlers.click, fn) }
func (c *Control) OnMouseEnter(fn MouseHandler) { c.handlers.mouseEnter = append(c.handlers.mouseEnter, fn) }
func (c *Control) OnMouseLeave(fn MouseHandler) { c.handlers.mouseLeave = append(c.handlers.mouseLeave, fn) }
func (c *Control) OnScrollWheel(fn MouseHandler) {
	c.handlers.scrollWheel = append(c.handlers.scrollWheel, fn)
}
func (c *Control) OnGotFocus(fn FocusHandler)  { c.handlers.gotFocus = append(c.handlers.gotFocus, fn) }
func (c *Control) OnLostFocus(fn FocusHandler) { c.handlers.lostFocus = append(c.handlers.lostFocus, fn) }
func (c *Control) OnKeyPress(fn KeyHandler)    { c.handlers.keyPress = append(c.handlers.keyPress, fn) }

// OnValidating registers a hook that can veto the control losing focus.
func (c *Control) OnValidating(fn ValidatingHandler) {
	c.handlers.validating = append(c.handlers.validating, fn)
}

// OnBoundsChanged registers a callback run after the position or size changed.
func (c *Control) OnBoundsChanged(fn func()) {
	c.handlers.boundsChanged = append(c.handlers.boundsChanged, fn)
}

// OnInitialize registers a callback run once, when the control is first
// attached to a form.
func (c *Control) OnInitialize(fn func()) {
	c.handlers.initialize = append(c.handlers.initialize, fn)
}

// validate runs the validating hooks. Every hook runs; any false vetoes.
func (c *Control) validate() bool {
	ok := true
	for _, fn := range c.handlers.validating {
		if !fn() {
			ok = false
		}
	}
	return ok
}

// processMouse updates the control's button state and notifies handlers.
// threshold is the click distance in pixels.
func (c *Control) processMouse(e *MouseEvent, threshold int) {
	switch e.Type {
	case EventMouseDown:
		if !c.Enabled() {
			return
		}
		if i := e.Button.index(); i >= 0 {
			c.downAt[i] = e.Location
		}
		c.buttons |= e.Button
		c.fireMouse(e)

	case EventMouseUp:
		if !c.Enabled() {
			c.buttons &^= e.Button
			return
		}
		wasDown := c.IsMouseButtonDown(e.Button)
		c.buttons &^= e.Button
		c.fireMouse(e)
		if !wasDown {
			return
		}
		i := e.Button.index()
		if i < 0 || !withinDistance(c.downAt[i], e.Location, threshold) {
			return
		}
		click := *e
		click.Type = EventMouseClick
		c.fireMouse(&click)
		if e.Button == MouseButtonLeft {
			click.Type = EventClick
			c.fireMouse(&click)
		}

	case EventScrollWheel:
		if c.Enabled() {
			c.fireMouse(e)
		}

	default:
		c.fireMouse(e)
	}
}

func (c *Control) fireMouse(e *MouseEvent) {
	for _, fn := range c.handlers.mouse(e.Type) {
		fn(e)
	}
}

func (c *Control) fireFocus(e *FocusEvent) {
	list := c.handlers.gotFocus
	if e.Type == EventLostFocus {
		list = c.handlers.lostFocus
	}
	for _, fn := range list {
		fn(e)
	}
}

func (c *Control) fireKey(e *KeyEvent) {
	for _, fn := range c.handlers.keyPress {
		fn(e)
	}
}

// withinDistance reports whether a and b are at most d pixels apart.
func withinDistance(a, b image.Point, d int) bool {
	v := a.Sub(b)
	return v.X*v.X+v.Y*v.Y <= d*d
}

// same compares two components by control identity.
func same(a, b Component) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Base() == b.Base()
}

// PreferredSize returns the natural size of c, or its current size when the
// component does not implement Sizer.
func PreferredSize(c Component) image.Point {
	if s, ok := c.(Sizer); ok {
		return s.PreferredSize()
	}
	return c.Base().Size()
}
