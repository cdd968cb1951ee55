package retained

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFont = FixedFont{CellWidth: 8, CellHeight: 16}

func newTestForm() *Form {
	f := NewForm(0, 0, 800, 600, DefaultSettings())
	f.SetAssets(NewAssets(testFont))
	return f
}

// eventLog counts events by type for one control.
type eventLog map[EventType]int

func record(c *Control) eventLog {
	log := eventLog{}
	mouse := func(e *MouseEvent) { log[e.Type]++ }
	c.OnMouseDown(mouse)
	c.OnMouseUp(mouse)
	c.OnMouseMove(mouse)
	c.OnMouseClick(mouse)
	c.OnClick(mouse)
	c.OnMouseEnter(mouse)
	c.OnMouseLeave(mouse)
	c.OnScrollWheel(mouse)
	c.OnGotFocus(func(e *FocusEvent) { log[e.Type]++ })
	c.OnLostFocus(func(e *FocusEvent) { log[e.Type]++ })
	c.OnKeyPress(func(*KeyEvent) { log[EventKeyPress]++ })
	return log
}

func addAt(t *testing.T, parent Container, c Component, r Rect) {
	t.Helper()
	c.Base().SetBounds(r)
	require.NoError(t, parent.Controls().Add(c))
}

type fakeMenuHost struct {
	shown []*Form
}

func (h *fakeMenuHost) ShowMenu(f *Form) { h.shown = append(h.shown, f) }
func (h *fakeMenuHost) CloseMenu(*Form) { h.shown = h.shown[:len(h.shown)-1] }
func (h *fakeMenuHost) IsActiveMenu(f *Form) bool {
	return len(h.shown) > 0 && h.shown[len(h.shown)-1] == f
}

func TestFormScreenBoundsAreOwnBounds(t *testing.T) {
	f := NewForm(100, 50, 640, 480, DefaultSettings())
	assert.Equal(t, R(100, 50, 640, 480), f.ScreenBounds())
	assert.True(t, f.Initialized())
	assert.Same(t, f, f.Form())
}

func TestFormMenuLifecycle(t *testing.T) {
	f := newTestForm()
	assert.False(t, f.IsActive())

	host := &fakeMenuHost{}
	f.SetMenuHost(host)
	f.Show()
	assert.True(t, f.IsActive())
	f.Close()
	assert.False(t, f.IsActive())
}

func TestFormFocusingItselfClearsFocus(t *testing.T) {
	f := newTestForm()
	c := NewControl()
	addAt(t, f, c, R(0, 0, 10, 10))

	require.NoError(t, c.Focus())
	assert.Same(t, c, f.ActiveControl().Base())

	require.NoError(t, f.SetActiveControl(f))
	assert.Nil(t, f.ActiveControl())
	assert.False(t, c.Focused())
}

func TestFormClickOnBackgroundClearsFocus(t *testing.T) {
	f := newTestForm()
	c := NewControl()
	addAt(t, f, c, R(0, 0, 10, 10))
	require.NoError(t, c.Focus())

	f.ReceiveLeftClick(400, 400)
	assert.Nil(t, f.ActiveControl())
}

func TestFormTooltip(t *testing.T) {
	f := newTestForm()
	b := NewButton("OK")
	b.SetTooltip("Title", "Body")
	addAt(t, f, b, R(100, 100, 100, 30))

	f.PerformHoverAction(110, 110)
	require.Same(t, b.Base(), f.HoveringControl().Base())

	rec := NewRecorder(800, 600)
	f.Render(rec)
	assert.Equal(t, []string{"OK", "Title", "Body"}, rec.Texts())

	// Cursor (110, 110) plus the (32, 32) offset, then 16 px of padding.
	var title DrawCommand
	for _, c := range rec.Commands {
		if c.Op == OpText && c.Text == "Title" {
			title = c
		}
	}
	assert.Equal(t, image.Pt(158, 158), title.Dst.Location())
	assert.False(t, title.Clipped)
}

func TestFormTooltipStaysOnScreen(t *testing.T) {
	f := newTestForm()
	c := NewControl()
	c.SetTooltip("", "Tip")
	addAt(t, f, c, R(700, 500, 100, 100))

	f.PerformHoverAction(790, 590)
	rec := NewRecorder(800, 600)
	f.Render(rec)

	for _, cmd := range rec.Commands {
		if cmd.Op == OpText && cmd.Text == "Tip" {
			// Box is 24+32 wide and 16+32 high, pinned to the bottom-right.
			assert.Equal(t, image.Pt(800-56+16, 600-48+16), cmd.Dst.Location())
			return
		}
	}
	t.Fatal("tooltip text not drawn")
}

func TestFormRenderClipsChildren(t *testing.T) {
	f := newTestForm()
	p := NewPanel()
	addAt(t, f, p, R(0, 0, 50, 50))
	l := NewLabel("this text is far too wide")
	addAt(t, p, l, R(0, 0, 300, 16))
	hidden := NewLabel("hidden")
	addAt(t, p, hidden, R(100, 100, 60, 16))

	rec := NewRecorder(800, 600)
	f.Render(rec)
	assert.Equal(t, []string{"this text is far too wide"}, rec.Texts())

	for _, cmd := range rec.Commands {
		if cmd.Text == "this text is far too wide" {
			assert.Equal(t, R(0, 0, 50, 50), cmd.Clip)
		}
	}
}

func TestFormKeyPressGoesToFocus(t *testing.T) {
	f := newTestForm()
	c := NewControl()
	addAt(t, f, c, R(0, 0, 10, 10))
	log := record(c)

	f.ReceiveKeyPress("a", 'a')
	assert.Zero(t, log[EventKeyPress])

	require.NoError(t, c.Focus())
	var got *KeyEvent
	c.OnKeyPress(func(e *KeyEvent) { got = e })
	f.ReceiveKeyPress("Enter", '\r')
	assert.Equal(t, 1, log[EventKeyPress])
	require.NotNil(t, got)
	assert.Equal(t, "Enter", got.Key)
}
