package retained

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(f *Form, s string) {
	for _, r := range s {
		f.ReceiveKeyPress(string(r), r)
	}
}

func TestTextBufferEditing(t *testing.T) {
	var b textBuffer
	assert.True(t, b.insert("helo"))
	b.moveCursor(-1)
	assert.True(t, b.insert("l"))
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, 4, b.cursor)

	assert.True(t, b.delete(-2))
	assert.Equal(t, "heo", b.String())
	assert.Equal(t, 2, b.cursor)
	assert.True(t, b.delete(5))
	assert.Equal(t, "he", b.String())
	assert.False(t, b.delete(1))

	b.setCursor(-3)
	assert.Equal(t, 0, b.cursor)
	assert.False(t, b.delete(-1))
	assert.False(t, b.insert("\r\n"))
}

func TestTextBufferLimits(t *testing.T) {
	b := textBuffer{maxLength: 4, filter: unicode.IsDigit}
	assert.True(t, b.insert("1a2b3c4d5"))
	assert.Equal(t, "1234", b.String())
	assert.False(t, b.insert("6"))

	b.maxLength = 2
	b.set("98765")
	assert.Equal(t, "98", b.String())
	assert.Equal(t, 2, b.cursor)
}

func TestTextBoxTyping(t *testing.T) {
	f := newTestForm()
	tb := NewTextBox()
	addAt(t, f, tb, R(10, 10, 200, 32))
	log := record(&tb.Control)

	click(f, 20, 20)
	require.True(t, tb.Focused())

	typeText(f, "Farm")
	assert.Equal(t, "Farm", tb.Text())
	assert.Equal(t, 4, tb.Cursor())

	f.ReceiveKeyPress("Backspace", 0)
	f.ReceiveKeyPress("Home", 0)
	typeText(f, "My ")
	assert.Equal(t, "My Far", tb.Text())
	assert.Equal(t, 3, tb.Cursor())

	f.ReceiveKeyPress("Delete", 0)
	f.ReceiveKeyPress("End", 0)
	f.ReceiveKeyPress("Tab", 0)
	assert.Equal(t, "My ar", tb.Text())
	assert.Equal(t, 5, tb.Cursor())
	assert.Equal(t, 12, log[EventKeyPress])
}

func TestTextBoxSubmitAndReadOnly(t *testing.T) {
	f := newTestForm()
	tb := NewTextBox()
	addAt(t, f, tb, R(0, 0, 200, 32))
	require.NoError(t, f.SetActiveControl(tb))

	var submitted []string
	tb.OnSubmit(func(s string) { submitted = append(submitted, s) })

	tb.SetText("Pierre")
	assert.Equal(t, 6, tb.Cursor())

	tb.SetReadOnly(true)
	typeText(f, "xyz")
	f.ReceiveKeyPress("Backspace", 0)
	f.ReceiveKeyPress("ArrowLeft", 0)
	assert.Equal(t, "Pierre", tb.Text())
	assert.Equal(t, 5, tb.Cursor())

	f.ReceiveKeyPress("Enter", 0)
	assert.Equal(t, []string{"Pierre"}, submitted)
}

func TestTextBoxMaxLength(t *testing.T) {
	f := newTestForm()
	tb := NewTextBox()
	addAt(t, f, tb, R(0, 0, 200, 32))
	tb.SetText("Stardew Valley")

	tb.SetMaxLength(7)
	assert.Equal(t, "Stardew", tb.Text())
	assert.Equal(t, 7, tb.Cursor())
}

func TestTextBoxClickPlacesCursor(t *testing.T) {
	f := newTestForm()
	tb := NewTextBox()
	addAt(t, f, tb, R(100, 100, 200, 32))
	tb.SetText("abcdef")

	// 19px into the text is nearer the boundary after "ab" (16) than after
	// "abc" (24).
	click(f, 127, 110)
	assert.Equal(t, 2, tb.Cursor())

	click(f, 101, 110)
	assert.Equal(t, 0, tb.Cursor())

	click(f, 290, 110)
	assert.Equal(t, 6, tb.Cursor())
}

func TestTextBoxDrawsPlaceholderAndCaret(t *testing.T) {
	f := newTestForm()
	tb := NewTextBox()
	tb.Placeholder = "Name"
	addAt(t, f, tb, R(0, 0, 200, 32))

	rec := NewRecorder(800, 600)
	f.Render(rec)
	assert.Contains(t, rec.Texts(), "Name")

	require.NoError(t, f.SetActiveControl(tb))
	typeText(f, "Abi")
	rec = NewRecorder(800, 600)
	f.Render(rec)
	assert.Contains(t, rec.Texts(), "Abi")
	assert.NotContains(t, rec.Texts(), "Name")

	var caret bool
	for _, c := range rec.Commands {
		if c.Op == OpFill && c.Dst == R(8+24, 8, 2, 16) {
			caret = true
		}
	}
	assert.True(t, caret, "caret after the third rune")
}
