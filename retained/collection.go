package retained

import (
	"fmt"
	"slices"
)

// Collection is the ordered list of client children of a container.
// Insertion order is paint order; hit testing walks it backwards so the last
// added control wins where siblings overlap.
type Collection struct {
	owner    Component
	items    []Component
	handlers []ControlsChangedHandler
}

func newCollection(owner Component) *Collection {
	return &Collection{owner: owner}
}

// Owner returns the container the collection belongs to.
func (l *Collection) Owner() Component { return l.owner }

// Len returns the number of controls.
func (l *Collection) Len() int { return len(l.items) }

// At returns the control at index i.
func (l *Collection) At(i int) Component { return l.items[i] }

// Items returns a copy of the controls in paint order.
func (l *Collection) Items() []Component { return slices.Clone(l.items) }

// IndexOf returns the position of c, or -1.
func (l *Collection) IndexOf(c Component) int {
	if c == nil {
		return -1
	}
	base := c.Base()
	return slices.IndexFunc(l.items, func(item Component) bool { return item.Base() == base })
}

// Contains reports whether c is a direct member.
func (l *Collection) Contains(c Component) bool { return l.IndexOf(c) >= 0 }

// OnChanged registers a handler for add, remove and clear notifications.
func (l *Collection) OnChanged(fn ControlsChangedHandler) {
	l.handlers = append(l.handlers, fn)
}

// ValidateCanAdd reports why c cannot be added, or nil.
func (l *Collection) ValidateCanAdd(c Component) error {
	if c == nil {
		return fmt.Errorf("%w: nil control", ErrInvalidOperation)
	}
	base := c.Base()
	if base.disposed {
		return fmt.Errorf("add %s: %w", base, ErrDisposed)
	}
	if l.Contains(c) {
		return fmt.Errorf("add %s: %w", base, ErrAlreadyMember)
	}
	if base == l.owner.Base() {
		return fmt.Errorf("add %s: %w", base, ErrSelfParent)
	}
	// c's descendants are all below c, so walking the owner's ancestors for
	// c covers them too.
	for p := l.owner.Base().parent; p != nil; p = p.Base().parent {
		if p.Base() == base {
			return fmt.Errorf("add %s to %s: %w", base, l.owner.Base(), ErrCircularReference)
		}
	}
	return nil
}

// Add appends c. A control owned by another container is removed from it
// first.
func (l *Collection) Add(c Component) error {
	return l.Insert(len(l.items), c)
}

// Insert places c at index. The tree is left unchanged when an error is
// returned.
func (l *Collection) Insert(index int, c Component) error {
	if err := l.ValidateCanAdd(c); err != nil {
		return err
	}
	if index < 0 || index > len(l.items) {
		return fmt.Errorf("%w: index %d out of range [0, %d]", ErrInvalidOperation, index, len(l.items))
	}
	c.Base().detach()
	l.items = slices.Insert(l.items, index, c)
	c.Base().setParent(l.owner, false)
	l.notify(CollectionAdd, c)
	return nil
}

// Remove detaches c. It reports whether c was a member.
func (l *Collection) Remove(c Component) bool {
	i := l.IndexOf(c)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// RemoveAt detaches the control at index i.
func (l *Collection) RemoveAt(i int) {
	c := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	c.Base().setParent(nil, false)
	l.notify(CollectionRemove, c)
}

// Clear detaches every control and raises a single clear notification
// carrying all of them.
func (l *Collection) Clear() {
	if len(l.items) == 0 {
		return
	}
	removed := l.items
	l.items = nil
	for _, c := range removed {
		c.Base().setParent(nil, false)
	}
	l.notify(CollectionClear, removed...)
}

func (l *Collection) notify(action CollectionAction, controls ...Component) {
	if len(l.handlers) == 0 {
		return
	}
	e := &ControlsChangedEvent{Action: action, Controls: controls}
	for _, fn := range l.handlers {
		fn(e)
	}
}
