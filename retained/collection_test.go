package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRejectsInvalidAdds(t *testing.T) {
	outer := NewPanel()
	inner := NewPanel()
	leaf := NewControl()
	require.NoError(t, outer.Add(inner))
	require.NoError(t, inner.Add(leaf))

	tests := []struct {
		name  string
		owner *Panel
		child Component
		want  error
	}{
		{"self", inner, inner, ErrSelfParent},
		{"parent into child", inner, outer, ErrCircularReference},
		{"twice", inner, leaf, ErrAlreadyMember},
		{"nil", inner, nil, ErrInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.owner.Controls().Add(tt.child)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidOperation)
		})
	}

	// Nothing moved.
	assert.Same(t, outer.Base(), inner.Parent().Base())
	assert.Same(t, inner.Base(), leaf.Parent().Base())
	assert.Equal(t, 1, inner.Controls().Len())
}

func TestCollectionDeepCycle(t *testing.T) {
	a, b, c := NewPanel(), NewPanel(), NewPanel()
	require.NoError(t, a.Add(b))
	require.NoError(t, b.Add(c))

	assert.ErrorIs(t, c.Add(a), ErrCircularReference)
	assert.ErrorIs(t, a.SetParent(c), ErrCircularReference)
	assert.Nil(t, a.Parent())
}

func TestCollectionReparentNotifiesBoth(t *testing.T) {
	a, b := NewPanel(), NewPanel()
	c := NewControl()
	require.NoError(t, a.Add(c))

	var aEvents, bEvents []*ControlsChangedEvent
	a.Controls().OnChanged(func(e *ControlsChangedEvent) { aEvents = append(aEvents, e) })
	b.Controls().OnChanged(func(e *ControlsChangedEvent) { bEvents = append(bEvents, e) })

	require.NoError(t, c.SetParent(b))

	require.Len(t, aEvents, 1)
	assert.Equal(t, CollectionRemove, aEvents[0].Action)
	assert.Same(t, c, aEvents[0].Controls[0].Base())
	require.Len(t, bEvents, 1)
	assert.Equal(t, CollectionAdd, bEvents[0].Action)

	assert.Same(t, b.Base(), c.Parent().Base())
	assert.False(t, a.Controls().Contains(c))
	assert.True(t, b.Controls().Contains(c))

	require.NoError(t, c.SetParent(nil))
	assert.Nil(t, c.Parent())
	require.Len(t, bEvents, 2)
	assert.Equal(t, CollectionRemove, bEvents[1].Action)
}

func TestCollectionInsertOrder(t *testing.T) {
	p := NewPanel()
	a, b, c := NewControl(), NewControl(), NewControl()
	require.NoError(t, p.Add(a, c))
	require.NoError(t, p.Controls().Insert(1, b))

	assert.Equal(t, 1, p.Controls().IndexOf(b))
	assert.Same(t, c, p.Controls().At(2).Base())
	assert.ErrorIs(t, p.Controls().Insert(9, NewControl()), ErrInvalidOperation)
}

func TestCollectionClearSingleNotification(t *testing.T) {
	p := NewPanel()
	a, b := NewControl(), NewControl()
	require.NoError(t, p.Add(a, b))

	var events []*ControlsChangedEvent
	p.Controls().OnChanged(func(e *ControlsChangedEvent) { events = append(events, e) })
	p.Controls().Clear()

	require.Len(t, events, 1)
	assert.Equal(t, CollectionClear, events[0].Action)
	assert.Len(t, events[0].Controls, 2)
	assert.Nil(t, a.Parent())
	assert.Nil(t, b.Parent())

	p.Controls().Clear()
	assert.Len(t, events, 1)
}

func TestCollectionRemoveFromHandler(t *testing.T) {
	f := newTestForm()
	p := NewPanel()
	addAt(t, f, p, R(0, 0, 100, 100))
	c := NewControl()
	addAt(t, p, c, R(0, 0, 50, 50))
	c.OnClick(func(*MouseEvent) { p.Controls().Remove(c) })

	f.ReceiveLeftClick(10, 10)
	f.ReleaseLeftClick(10, 10)

	assert.Equal(t, 0, p.Controls().Len())
	assert.Nil(t, f.ActiveControl())
}
