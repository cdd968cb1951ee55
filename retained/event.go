package retained

import "image"

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of event.
type EventType uint8

const (
	// Mouse events
	EventMouseDown EventType = iota + 1
	EventMouseUp
	EventMouseMove
	EventMouseClick // any button, released near where it was pressed
	EventClick      // left button only, fired after EventMouseClick
	EventMouseEnter
	EventMouseLeave
	EventScrollWheel

	// Focus events
	EventGotFocus
	EventLostFocus

	// Keyboard events
	EventKeyPress
)

var eventTypeNames = [...]string{
	EventMouseDown:   "mouse-down",
	EventMouseUp:     "mouse-up",
	EventMouseMove:   "mouse-move",
	EventMouseClick:  "mouse-click",
	EventClick:       "click",
	EventMouseEnter:  "mouse-enter",
	EventMouseLeave:  "mouse-leave",
	EventScrollWheel: "scroll-wheel",
	EventGotFocus:    "got-focus",
	EventLostFocus:   "lost-focus",
	EventKeyPress:    "key-press",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) && eventTypeNames[t] != "" {
		return eventTypeNames[t]
	}
	return "unknown"
}

// MouseButton identifies mouse buttons. Values are bit flags so a control can
// track several held buttons at once.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = 1 << iota
	MouseButtonRight
	MouseButtonMiddle

	MouseButtonNone MouseButton = 0
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonNone:
		return "none"
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	return "multiple"
}

// index returns a slot for per-button bookkeeping, or -1 for anything that
// is not exactly one button.
func (b MouseButton) index() int {
	switch b {
	case MouseButtonLeft:
		return 0
	case MouseButtonRight:
		return 1
	case MouseButtonMiddle:
		return 2
	}
	return -1
}

// ============================================================================
// Mouse Event
// ============================================================================

// MouseEvent describes a pointer interaction delivered to one control.
type MouseEvent struct {
	Type EventType

	// Location is relative to the receiving control's top-left corner.
	Location image.Point

	// Display is the same point in form coordinates.
	Display image.Point

	// Which button triggered the event (down/up/click).
	Button MouseButton

	// Wheel delta in host units. Positive scrolls up or left.
	Delta int
}

// ToLocal returns a copy of the event with Location mapped into c's space.
func (e MouseEvent) ToLocal(c Component) MouseEvent {
	e.Location = c.Base().PointToLocal(e.Display)
	return e
}

// ============================================================================
// Focus and Key Events
// ============================================================================

// FocusEvent is delivered when a control gains or loses focus.
type FocusEvent struct {
	Type EventType

	// Related is the control losing focus (for got-focus) or gaining it
	// (for lost-focus). May be nil.
	Related Component
}

// KeyEvent is delivered to the focused control.
type KeyEvent struct {
	Key  string
	Rune rune
}

// ============================================================================
// Collection Events
// ============================================================================

// CollectionAction identifies a change to a control collection.
type CollectionAction uint8

const (
	CollectionAdd CollectionAction = iota + 1
	CollectionRemove
	CollectionClear
)

func (a CollectionAction) String() string {
	switch a {
	case CollectionAdd:
		return "add"
	case CollectionRemove:
		return "remove"
	case CollectionClear:
		return "clear"
	}
	return "unknown"
}

// ControlsChangedEvent reports which controls were added to or removed from a
// collection.
type ControlsChangedEvent struct {
	Action   CollectionAction
	Controls []Component
}

// ============================================================================
// Event Handler Types
// ============================================================================

// MouseHandler is a callback for mouse events.
type MouseHandler func(*MouseEvent)

// FocusHandler is a callback for focus events.
type FocusHandler func(*FocusEvent)

// KeyHandler is a callback for keyboard events.
type KeyHandler func(*KeyEvent)

// ControlsChangedHandler is a callback for collection changes.
type ControlsChangedHandler func(*ControlsChangedEvent)

// ValidatingHandler can veto a focus change by returning false.
type ValidatingHandler func() bool

// handlers holds the observer lists of a control. Lists are appended to and
// called in registration order.
type handlers struct {
	mouseDown     []MouseHandler
	mouseUp       []MouseHandler
	mouseMove     []MouseHandler
	mouseClick    []MouseHandler
	click         []MouseHandler
	mouseEnter    []MouseHandler
	mouseLeave    []MouseHandler
	scrollWheel   []MouseHandler
	gotFocus      []FocusHandler
	lostFocus     []FocusHandler
	keyPress      []KeyHandler
	validating    []ValidatingHandler
	boundsChanged []func()
	initialize    []func()
}

func (h *handlers) mouse(t EventType) []MouseHandler {
	switch t {
	case EventMouseDown:
		return h.mouseDown
	case EventMouseUp:
		return h.mouseUp
	case EventMouseMove:
		return h.mouseMove
	case EventMouseClick:
		return h.mouseClick
	case EventClick:
		return h.click
	case EventMouseEnter:
		return h.mouseEnter
	case EventMouseLeave:
		return h.mouseLeave
	case EventScrollWheel:
		return h.scrollWheel
	}
	return nil
}
