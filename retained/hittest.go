package retained

import "image"

// ============================================================================
// Hit Testing
// ============================================================================

// ControlAtPosition returns the deepest visible control under p (form
// coordinates) inside container, or container itself when no child matches.
//
// Children are tested last to first so the topmost painted sibling wins.
// Client children only match while p is inside the container's client
// rectangle; non-client children such as scrollbars sit in the gutter and
// match anywhere inside their own bounds. Disabled controls still match and
// swallow the input, so clicks never fall through to whatever is underneath.
func ControlAtPosition(container Container, p image.Point) Component {
	base := container.Base()
	inClient := container.ClientRectangle().Contains(base.PointToLocal(p))

	children := snapshotChildren(container)
	defer releaseSnapshot(children)

	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		c := child.Base()
		if !c.visible {
			continue
		}
		if !inClient && !c.nonClient {
			continue
		}
		if !c.ScreenBounds().Contains(p) {
			continue
		}
		if sub, ok := child.(Container); ok {
			return ControlAtPosition(sub, p)
		}
		return child
	}
	return container
}

// overlay is implemented by controls that draw outside their bounds while
// open, like a dropped-down combo box list. The router hit-tests the focused
// control's overlay before walking the tree, and the form draws it after
// everything else.
type overlay interface {
	overlayBounds() (Rect, bool)
	drawOverlay(g *Graphics)
}
