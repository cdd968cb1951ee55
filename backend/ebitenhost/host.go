package ebitenhost

import (
	"log/slog"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"

	"github.com/agiangrant/menukit/retained"
)

// Options configures a Host.
type Options struct {
	Width, Height int
	Title         string

	// WheelInterval is the minimum time between two forwarded wheel
	// events. Zero forwards every frame's wheel movement.
	WheelInterval time.Duration

	// CloseOnEscape closes the active menu when Escape is pressed.
	CloseOnEscape bool

	Logger *slog.Logger
}

// Host is an ebiten.Game that shows a stack of forms. Only the top form gets
// input and is drawn. When the last form closes, the game ends.
type Host struct {
	opts    Options
	menus   []*retained.Form
	input   Input
	wheel   *rate.Limiter
	surface *Surface
	logger  *slog.Logger

	keys  []ebiten.Key
	runes []rune
}

// New creates a host. Forms are opened with ShowMenu or Form.Show after
// Attach.
func New(opts Options) *Host {
	limit := rate.Inf
	if opts.WheelInterval > 0 {
		limit = rate.Every(opts.WheelInterval)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{
		opts:   opts,
		wheel:  rate.NewLimiter(limit, 1),
		logger: logger,
	}
}

// Attach makes f use this host for Show and Close and for polled input.
func (h *Host) Attach(f *retained.Form) {
	f.SetMenuHost(h)
	f.SetInputSource(h.input)
}

// ShowMenu pushes f on the menu stack. A form already on the stack moves to
// the top.
func (h *Host) ShowMenu(f *retained.Form) {
	h.menus = slices.DeleteFunc(h.menus, func(m *retained.Form) bool { return m == f })
	h.menus = append(h.menus, f)
	h.logger.Debug("menu shown", "depth", len(h.menus))
}

// CloseMenu removes f from the menu stack. Closing a form that is not open
// does nothing.
func (h *Host) CloseMenu(f *retained.Form) {
	n := len(h.menus)
	h.menus = slices.DeleteFunc(h.menus, func(m *retained.Form) bool { return m == f })
	if len(h.menus) != n {
		h.logger.Debug("menu closed", "depth", len(h.menus))
	}
}

// IsActiveMenu reports whether f is the top of the stack.
func (h *Host) IsActiveMenu(f *retained.Form) bool {
	return f != nil && h.ActiveMenu() == f
}

// ActiveMenu returns the top form, or nil.
func (h *Host) ActiveMenu() *retained.Form {
	if len(h.menus) == 0 {
		return nil
	}
	return h.menus[len(h.menus)-1]
}

// Update forwards this frame's input to the active form.
func (h *Host) Update() error {
	f := h.ActiveMenu()
	if f == nil {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		f.ReceiveLeftClick(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		f.LeftClickHeld(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		f.ReleaseLeftClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		f.ReceiveRightClick(x, y)
	}
	f.PerformHoverAction(x, y)

	if _, wy := ebiten.Wheel(); wy != 0 && h.wheel.Allow() {
		f.ReceiveScrollWheelAction(wheelDelta(wy, f.Settings().WheelStep))
	}

	h.runes = ebiten.AppendInputChars(h.runes[:0])
	for _, r := range h.runes {
		f.ReceiveKeyPress(string(r), r)
	}
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if k == ebiten.KeyEscape && h.opts.CloseOnEscape {
			f.Close()
			return nil
		}
		if name, ok := keyNames[k]; ok {
			f.ReceiveKeyPress(name, 0)
		}
	}
	return nil
}

// Draw renders the active form.
func (h *Host) Draw(screen *ebiten.Image) {
	f := h.ActiveMenu()
	if f == nil {
		return
	}
	if h.surface == nil {
		h.surface = NewSurface(screen)
	} else {
		h.surface.Reset(screen)
	}
	f.Render(h.surface)
}

// Layout keeps a fixed logical screen size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.opts.Width > 0 && h.opts.Height > 0 {
		return h.opts.Width, h.opts.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the last menu closes.
func (h *Host) Run() error {
	if h.opts.Width > 0 && h.opts.Height > 0 {
		ebiten.SetWindowSize(h.opts.Width, h.opts.Height)
	}
	if h.opts.Title != "" {
		ebiten.SetWindowTitle(h.opts.Title)
	}
	return ebiten.RunGame(h)
}
