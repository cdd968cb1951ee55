package ebitenhost

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/menukit/retained"
)

func TestWheelDelta(t *testing.T) {
	tests := []struct {
		wy   float64
		step int
		want int
	}{
		{1, 120, 120},
		{-1, 120, -120},
		{0.5, 120, 60},
		{-2.25, 120, -270},
		{0, 120, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wheelDelta(tt.wy, tt.step), "wy=%v", tt.wy)
	}
}

func TestEbitenButton(t *testing.T) {
	b, ok := ebitenButton(retained.MouseButtonRight)
	require.True(t, ok)
	assert.Equal(t, ebiten.MouseButtonRight, b)

	b, ok = ebitenButton(retained.MouseButtonMiddle)
	require.True(t, ok)
	assert.Equal(t, ebiten.MouseButtonMiddle, b)

	_, ok = ebitenButton(retained.MouseButtonNone)
	assert.False(t, ok)
}

func TestMenuStack(t *testing.T) {
	h := New(Options{Width: 800, Height: 600})
	a := retained.NewForm(0, 0, 800, 600, retained.DefaultSettings())
	b := retained.NewForm(0, 0, 800, 600, retained.DefaultSettings())
	h.Attach(a)
	h.Attach(b)

	assert.Nil(t, h.ActiveMenu())
	assert.False(t, a.IsActive())

	a.Show()
	assert.True(t, a.IsActive())
	b.Show()
	assert.False(t, a.IsActive())
	assert.True(t, b.IsActive())

	// Showing again moves a to the top without duplicating it.
	a.Show()
	assert.Same(t, a, h.ActiveMenu())
	assert.Len(t, h.menus, 2)

	a.Close()
	assert.Same(t, b, h.ActiveMenu())
	a.Close()
	assert.Len(t, h.menus, 1)

	b.Close()
	assert.Nil(t, h.ActiveMenu())
	assert.False(t, h.IsActiveMenu(nil))
}

func TestUpdateEndsWithoutMenus(t *testing.T) {
	h := New(Options{})
	assert.ErrorIs(t, h.Update(), ebiten.Termination)
}

func TestLayout(t *testing.T) {
	h := New(Options{Width: 640, Height: 480})
	w, hh := h.Layout(1920, 1080)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, hh)

	free := New(Options{})
	w, hh = free.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, hh)
}

func TestWheelLimiter(t *testing.T) {
	unlimited := New(Options{})
	for range 5 {
		assert.True(t, unlimited.wheel.Allow())
	}

	limited := New(Options{WheelInterval: time.Hour})
	assert.True(t, limited.wheel.Allow())
	assert.False(t, limited.wheel.Allow())
}

func TestBitmapFontMeasure(t *testing.T) {
	f := BitmapFont()
	size := f.Measure("abc")
	assert.Equal(t, 21, size.X)
	assert.Positive(t, size.Y)
	assert.Zero(t, f.Measure("").X)

	var rf retained.Font = f
	assert.Same(t, f.Face, faceOf(rf))
	assert.NotNil(t, faceOf(retained.FixedFont{CellWidth: 8, CellHeight: 16}))
}
