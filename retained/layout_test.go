package retained

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := R(10, 10, 10, 10)
	assert.True(t, r.Contains(image.Pt(10, 10)))
	assert.True(t, r.Contains(image.Pt(19, 19)))
	assert.False(t, r.Contains(image.Pt(20, 19)))
	assert.False(t, r.Contains(image.Pt(19, 20)))
	assert.False(t, R(0, 0, 0, 5).Contains(image.Pt(0, 0)))
}

func TestRectIntersect(t *testing.T) {
	assert.Equal(t, R(5, 5, 5, 5), R(0, 0, 10, 10).Intersect(R(5, 5, 10, 10)))
	assert.True(t, R(0, 0, 10, 10).Intersect(R(20, 20, 5, 5)).Empty())
}

func TestRectInset(t *testing.T) {
	assert.Equal(t, R(2, 1, 4, 6), R(0, 0, 10, 10).Inset(Pad(2, 1, 4, 3)))
	assert.Equal(t, R(6, 6, 0, 0), R(0, 0, 10, 10).Inset(PadAll(6)))
}

func TestAlignedBounds(t *testing.T) {
	box := R(0, 0, 100, 50)
	size := image.Pt(20, 10)
	tests := []struct {
		align ContentAlignment
		want  Rect
	}{
		{AlignTopLeft, R(0, 0, 20, 10)},
		{AlignTopCenter, R(40, 0, 20, 10)},
		{AlignTopRight, R(80, 0, 20, 10)},
		{AlignMiddleLeft, R(0, 20, 20, 10)},
		{AlignMiddleCenter, R(40, 20, 20, 10)},
		{AlignMiddleRight, R(80, 20, 20, 10)},
		{AlignBottomLeft, R(0, 40, 20, 10)},
		{AlignBottomCenter, R(40, 40, 20, 10)},
		{AlignBottomRight, R(80, 40, 20, 10)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AlignedBounds(box, size, tt.align), "align %d", tt.align)
	}

	// Oversized content is clamped to the container.
	assert.Equal(t, R(0, 0, 100, 50), AlignedBounds(box, image.Pt(500, 500), AlignMiddleCenter))
}

func TestStackPanel(t *testing.T) {
	f := newTestForm()
	first := NewLabel("ab")
	second := NewLabel("abcd")
	stack, err := VStack(4, first, second)
	require.NoError(t, err)
	assert.Same(t, stack.Base(), first.Parent().Base())

	assert.NoError(t, f.Add(stack))
	assert.Equal(t, image.Pt(0, 0), first.Bounds().Location())
	assert.Equal(t, image.Pt(0, 20), second.Bounds().Location())
	assert.Equal(t, image.Pt(32, 36), stack.Size())

	first.SetVisible(false)
	assert.Equal(t, image.Pt(0, 0), second.Bounds().Location())
	assert.Equal(t, image.Pt(32, 16), stack.Size())

	first.SetVisible(true)
	first.SetText("abcdefgh")
	assert.Equal(t, image.Pt(64, 36), stack.Size())
}

func TestHStackNested(t *testing.T) {
	f := newTestForm()
	left := NewLabel("a")
	right, err := VStack(0, NewLabel("bb"), NewLabel("cc"))
	require.NoError(t, err)
	row, err := HStack(10, left, right)
	require.NoError(t, err)
	assert.NoError(t, f.Add(row))

	assert.Equal(t, image.Pt(18, 0), right.Bounds().Location())
	assert.Equal(t, image.Pt(16, 32), right.Size())
	assert.Equal(t, image.Pt(8+10+16, 32), row.Size())
}

func TestBuildersRejectInvalidChildren(t *testing.T) {
	disposed := NewLabel("gone")
	disposed.Dispose()
	dup := NewLabel("twice")
	owned := NewLabel("owned")
	home := NewPanel()
	require.NoError(t, home.Add(owned))

	tests := []struct {
		name     string
		children []Component
		want     error
	}{
		{"duplicate", []Component{dup, dup}, ErrAlreadyMember},
		{"disposed", []Component{owned, disposed}, ErrDisposed},
		{"nil", []Component{owned, nil}, ErrInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack, err := VStack(0, tt.children...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, stack)

			scroll, err := Scroll(100, 100, tt.children...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, scroll)

			p := NewPanel()
			assert.ErrorIs(t, p.Add(tt.children...), tt.want)
			assert.Zero(t, p.Controls().Len())
		})
	}
	// Validation fails before anything moves.
	assert.Same(t, home.Base(), owned.Parent().Base())
	assert.Nil(t, dup.Parent())
}
