package retained

import (
	"image"
)

// Settings tunes input handling and scrollbar defaults for a form.
type Settings struct {
	// ClickThreshold is the largest distance in pixels between press and
	// release that still counts as a click.
	ClickThreshold int

	// WheelStep is the host wheel delta of one notch.
	WheelStep int

	ScrollBarSize int
	SmallChange   int
	LargeChange   int

	TooltipPadding int
	TooltipOffset  image.Point
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		ClickThreshold: 4,
		WheelStep:      120,
		ScrollBarSize:  44,
		SmallChange:    8,
		LargeChange:    32,
		TooltipPadding: 16,
		TooltipOffset:  image.Pt(32, 32),
	}
}

// GameMenuPadding leaves room for the tab strip of a game menu page.
var GameMenuPadding = Padding{Left: 16, Top: 80, Right: 16, Bottom: 16}

// MenuHost is the host's menu lifecycle. The form only forwards to it.
type MenuHost interface {
	ShowMenu(f *Form)
	CloseMenu(f *Form)
	IsActiveMenu(f *Form) bool
}

// ============================================================================
// Form
// ============================================================================

// Form is the root of a control tree. Its screen bounds are its own bounds;
// the host's input callbacks map one to one onto Router operations.
type Form struct {
	ContainerControl

	router   *Router
	settings Settings
	assets   *Assets
	host     MenuHost
}

// NewForm creates a form covering the given screen rectangle.
func NewForm(x, y, width, height int, settings Settings) *Form {
	f := &Form{settings: settings}
	f.initContainer(f)
	f.router = newRouter(f)
	f.x, f.y, f.width, f.height = x, y, max(width, 0), max(height, 0)
	f.initialized = true
	return f
}

func (f *Form) form() *Form { return f }

// Router returns the form's input router.
func (f *Form) Router() *Router { return f.router }

// Settings returns the form's settings.
func (f *Form) Settings() Settings { return f.settings }

// SetAssets installs the registry widgets draw with.
func (f *Form) SetAssets(a *Assets) { f.assets = a }

// SetInputSource installs the source polled for buttons without host
// callbacks.
func (f *Form) SetInputSource(in InputSource) { f.router.input = in }

// SetMenuHost installs the host menu lifecycle.
func (f *Form) SetMenuHost(h MenuHost) { f.host = h }

// Show asks the host to display the form.
func (f *Form) Show() {
	if f.host != nil {
		f.host.ShowMenu(f)
	}
}

// Close asks the host to close the form.
func (f *Form) Close() {
	if f.host != nil {
		f.host.CloseMenu(f)
	}
}

// IsActive reports whether the host shows this form as its current menu.
func (f *Form) IsActive() bool {
	return f.host != nil && f.host.IsActiveMenu(f)
}

// ActiveControl returns the focused control, or nil.
func (f *Form) ActiveControl() Component { return f.router.active }

// SetActiveControl focuses c. Focusing the form itself clears the focus.
func (f *Form) SetActiveControl(c Component) error {
	if same(c, f) {
		c = nil
	}
	return f.router.SetActive(c)
}

// HoveringControl returns the control under the cursor, or nil.
func (f *Form) HoveringControl() Component { return f.router.hover }

// CapturingControl returns the control holding the mouse capture, or nil.
func (f *Form) CapturingControl() Component { return f.router.capture }

// Validate runs the validating hooks of the focused control.
func (f *Form) Validate() bool { return f.router.Validate() }

// ============================================================================
// Host callbacks
// ============================================================================

func (f *Form) ReceiveLeftClick(x, y int) {
	f.router.PointerDown(image.Pt(x, y), MouseButtonLeft)
}

func (f *Form) LeftClickHeld(x, y int) {
	f.router.ButtonHeld(image.Pt(x, y), MouseButtonLeft)
}

func (f *Form) ReleaseLeftClick(x, y int) {
	f.router.PointerUp(image.Pt(x, y), MouseButtonLeft)
}

func (f *Form) ReceiveRightClick(x, y int) {
	f.router.PointerDown(image.Pt(x, y), MouseButtonRight)
}

func (f *Form) PerformHoverAction(x, y int) {
	f.router.Hover(image.Pt(x, y))
}

func (f *Form) ReceiveScrollWheelAction(delta int) {
	f.router.Wheel(delta)
}

func (f *Form) ReceiveKeyPress(key string, r rune) {
	f.router.KeyPress(&KeyEvent{Key: key, Rune: r})
}

// ============================================================================
// Drawing
// ============================================================================

// Render draws the form onto s.
func (f *Form) Render(s Surface) {
	f.Draw(NewGraphics(s))
}

// Draw draws the background, the visible children in insertion order, the
// open overlay of the focused control and the tooltip of the hovering
// control.
func (f *Form) Draw(g *Graphics) {
	bounds := f.ScreenBounds()
	clip, err := g.PushClip(bounds)
	if err != nil {
		debugLog("form not drawn", "bounds", bounds, "err", err)
		return
	}
	if !clip.Invisible() {
		switch {
		case f.assets != nil && f.assets.MenuBox != nil:
			g.DrawTextureBox(f.assets.MenuBox, bounds, nil)
		case f.backColor != nil:
			g.FillRect(bounds, f.backColor)
		}
		f.drawChildren(g)
	}
	clip.Restore()
	if o, ok := f.router.active.(overlay); ok {
		if _, open := o.overlayBounds(); open {
			o.drawOverlay(g)
		}
	}
	f.drawTooltip(g)
}

func (f *Form) drawTooltip(g *Graphics) {
	h := f.router.hover
	if h == nil || same(h, f) {
		return
	}
	title, text := h.Base().Tooltip()
	if title == "" && text == "" {
		return
	}
	font := h.Base().Font()
	if font == nil {
		return
	}

	pad := f.settings.TooltipPadding
	ts, bs := font.Measure(title), font.Measure(text)
	gap := 0
	if title != "" && text != "" {
		gap = pad / 2
	}
	size := image.Pt(max(ts.X, bs.X)+2*pad, ts.Y+gap+bs.Y+2*pad)

	// Keep the box on screen.
	pos := f.router.cursor.Add(f.settings.TooltipOffset)
	vp := g.Surface().Viewport()
	pos.X = max(min(pos.X, vp.Right()-size.X), vp.X)
	pos.Y = max(min(pos.Y, vp.Bottom()-size.Y), vp.Y)
	box := R(pos.X, pos.Y, size.X, size.Y)

	textColor := h.Base().ForeColor()
	if a := f.assets; a != nil {
		if a.TooltipBox != nil {
			g.DrawTextureBox(a.TooltipBox, box, nil)
		} else {
			g.FillRect(box, a.HighlightColor)
		}
		if a.TextColor != nil {
			textColor = a.TextColor
		}
	}
	g.DrawText(title, font, image.Pt(box.X+pad, box.Y+pad), textColor)
	g.DrawText(text, font, image.Pt(box.X+pad, box.Y+pad+ts.Y+gap), textColor)
}
