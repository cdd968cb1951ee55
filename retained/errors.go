package retained

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrInvalidOperation is returned for rejected tree mutations. The more
	// specific errors below wrap it.
	ErrInvalidOperation = errors.New("invalid operation")

	ErrAlreadyMember     = fmt.Errorf("%w: control already belongs to this collection", ErrInvalidOperation)
	ErrSelfParent        = fmt.Errorf("%w: a control cannot contain itself", ErrInvalidOperation)
	ErrCircularReference = fmt.Errorf("%w: control is an ancestor of the container", ErrInvalidOperation)

	// ErrDisposed is returned when a disposed control is added, reparented
	// or focused.
	ErrDisposed = errors.New("control is disposed")

	// ErrNotOwned is returned when focusing a control that does not belong
	// to the requesting container or form.
	ErrNotOwned = errors.New("control is not owned by this container")

	// ErrFocusVetoed is returned when the focused control's validating hooks
	// refuse to give up focus.
	ErrFocusVetoed = errors.New("focus change vetoed")

	// ErrInvalidClip is returned for clip rectangles without area.
	ErrInvalidClip = errors.New("invalid clip rectangle")
)

// ============================================================================
// Logging
// ============================================================================

var logger *slog.Logger

// SetLogger replaces the logger used for debug output. Passing nil restores
// slog.Default.
func SetLogger(l *slog.Logger) {
	logger = l
}

func debugLog(msg string, args ...any) {
	l := logger
	if l == nil {
		l = slog.Default()
	}
	l.Debug(msg, args...)
}
