package retained

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollBarSnapping(t *testing.T) {
	tests := []struct {
		name             string
		small, large     int
		max              int
		wantLarge, wantM int
	}{
		{"defaults", 8, 32, 1, 32, 32},
		{"max rounds up to large", 8, 32, 100, 32, 128},
		{"large rounds up to small", 8, 20, 100, 24, 120},
		{"large below small", 8, 3, 10, 8, 16},
		{"exact multiples", 10, 50, 200, 50, 200},
		{"zero max", 8, 32, 0, 32, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewScrollBar(Vertical)
			sb.SetSmallChange(tt.small)
			sb.SetLargeChange(tt.large)
			sb.SetMaxValue(tt.max)
			assert.Equal(t, tt.wantLarge, sb.LargeChange())
			assert.Equal(t, tt.wantM, sb.MaxValue())
			assert.Zero(t, sb.MaxValue()%sb.LargeChange())
			assert.Zero(t, sb.LargeChange()%sb.SmallChange())
		})
	}
}

func TestScrollBarValueClamps(t *testing.T) {
	sb := NewScrollBar(Vertical)
	sb.SetMaxValue(100)
	require.Equal(t, 128, sb.MaxValue())

	var changes [][2]int
	sb.OnScroll(func(old, new int) { changes = append(changes, [2]int{old, new}) })

	sb.SetValue(200)
	assert.Equal(t, 128, sb.Value())
	sb.SetValue(-5)
	assert.Equal(t, 0, sb.Value())
	sb.SetValue(0)
	assert.Equal(t, [][2]int{{0, 128}, {128, 0}}, changes)

	// Shrinking the range pulls the value back in.
	sb.SetValue(128)
	sb.SetMaxValue(10)
	assert.Equal(t, 32, sb.Value())
}

func TestScrollBarWheel(t *testing.T) {
	sb := NewScrollBar(Vertical)
	sb.SetMaxValue(256)

	sb.ScrollByWheel(-120)
	assert.Equal(t, 8, sb.Value())
	sb.ScrollByWheel(-30)
	assert.Equal(t, 16, sb.Value(), "partial notch still moves one step")
	sb.ScrollByWheel(240)
	assert.Equal(t, 0, sb.Value())
}

func TestScrollBarMouse(t *testing.T) {
	f := newTestForm()
	sb := NewScrollBar(Vertical)
	addAt(t, f, sb, R(0, 0, 44, 300))
	sb.SetMaxValue(256)

	// Arrows are one thickness long.
	f.ReceiveLeftClick(10, 300-10)
	f.ReleaseLeftClick(10, 300-10)
	assert.Equal(t, 8, sb.Value())
	f.ReceiveLeftClick(10, 10)
	f.ReleaseLeftClick(10, 10)
	assert.Equal(t, 0, sb.Value())

	// Track below the thumb pages by LargeChange.
	f.ReceiveLeftClick(10, 250)
	f.ReleaseLeftClick(10, 250)
	assert.Equal(t, 32, sb.Value())
}

func TestScrollBarThumbDrag(t *testing.T) {
	f := newTestForm()
	sb := NewScrollBar(Vertical)
	addAt(t, f, sb, R(0, 0, 44, 300))
	sb.SetMaxValue(256)

	l := sb.layout()
	require.Equal(t, 44, l.arrow)
	grab := l.thumbStart + 2

	f.ReceiveLeftClick(10, grab)
	f.LeftClickHeld(10, grab)
	room := l.track - l.thumb
	f.PerformHoverAction(10, grab+room)
	assert.Equal(t, sb.MaxValue(), sb.Value())

	f.PerformHoverAction(10, grab)
	assert.Equal(t, 0, sb.Value())
	f.ReleaseLeftClick(10, grab)
	assert.Nil(t, f.CapturingControl())
}

func TestScrollPanelBars(t *testing.T) {
	tests := []struct {
		name         string
		content      image.Point
		wantV, wantH bool
	}{
		{"fits", image.Pt(100, 100), false, false},
		{"tall", image.Pt(100, 400), true, false},
		{"wide", image.Pt(400, 100), false, true},
		{"both", image.Pt(400, 400), true, true},
		// Needs the horizontal bar only once the vertical one takes room.
		{"tall and almost wide", image.Pt(180, 400), true, true},
		// Needs the vertical bar only once the horizontal one takes room.
		{"wide and almost tall", image.Pt(400, 180), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestForm()
			sp := NewScrollPanel()
			addAt(t, f, sp, R(0, 0, 200, 200))
			addAt(t, sp, NewControl(), R(0, 0, tt.content.X, tt.content.Y))

			assert.Equal(t, tt.wantV, sp.VScrollBar().Visible())
			assert.Equal(t, tt.wantH, sp.HScrollBar().Visible())
			assert.Equal(t, tt.content, sp.ScrollSize())

			client := sp.ClientRectangle()
			assert.Equal(t, 200-gutter(tt.wantV, 44), client.Width)
			assert.Equal(t, 200-gutter(tt.wantH, 44), client.Height)
		})
	}
}

func TestScrollPanelMinimumSize(t *testing.T) {
	sp := NewScrollPanel()
	sp.SetSize(10, 500)
	assert.Equal(t, image.Pt(88, 500), sp.Size())
}

func TestScrollPanelMinScrollSize(t *testing.T) {
	f := newTestForm()
	sp := NewScrollPanel()
	addAt(t, f, sp, R(0, 0, 200, 200))
	sp.SetMinScrollSize(image.Pt(0, 1000))

	assert.True(t, sp.VScrollBar().Visible())
	assert.Equal(t, image.Pt(0, 1000), sp.ScrollSize())
}

func TestScrollPanelHidesBarAndResets(t *testing.T) {
	f := newTestForm()
	sp := NewScrollPanel()
	addAt(t, f, sp, R(0, 0, 200, 200))
	content := NewControl()
	addAt(t, sp, content, R(0, 0, 100, 400))
	sp.VScrollBar().SetValue(64)
	require.Equal(t, image.Pt(0, 64), sp.ScrollOffset())

	content.SetSize(100, 50)
	assert.False(t, sp.VScrollBar().Visible())
	assert.Equal(t, image.Point{}, sp.ScrollOffset())
	assert.Equal(t, R(0, 0, 100, 50), content.ScreenBounds())
}

func TestScrollPanelNested(t *testing.T) {
	f := newTestForm()
	outer := NewScrollPanel()
	addAt(t, f, outer, R(0, 0, 300, 300))
	inner := NewScrollPanel()
	addAt(t, outer, inner, R(0, 100, 200, 200))
	addAt(t, outer, NewControl(), R(0, 0, 10, 1000))
	deep := NewControl()
	addAt(t, inner, deep, R(0, 0, 100, 1000))

	outer.VScrollBar().SetValue(32)
	inner.VScrollBar().SetValue(64)
	assert.Equal(t, R(0, 100-32-64, 100, 1000), deep.ScreenBounds())

	// Wheel over the inner panel scrolls the inner panel only.
	f.PerformHoverAction(50, 100)
	f.ReceiveScrollWheelAction(-120)
	assert.Equal(t, 72, inner.VScrollBar().Value())
	assert.Equal(t, 32, outer.VScrollBar().Value())
}
