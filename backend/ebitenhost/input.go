package ebitenhost

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/agiangrant/menukit/retained"
)

// Input reads the mouse through Ebiten. Forms poll it for the buttons the
// host has no callbacks for.
type Input struct{}

func (Input) CursorPosition() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y)
}

func (Input) IsButtonPressed(b retained.MouseButton) bool {
	eb, ok := ebitenButton(b)
	return ok && ebiten.IsMouseButtonPressed(eb)
}

func ebitenButton(b retained.MouseButton) (ebiten.MouseButton, bool) {
	switch b {
	case retained.MouseButtonLeft:
		return ebiten.MouseButtonLeft, true
	case retained.MouseButtonRight:
		return ebiten.MouseButtonRight, true
	case retained.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle, true
	}
	return 0, false
}

// wheelDelta converts Ebiten's wheel offset (notches, positive up) into host
// units of step per notch.
func wheelDelta(wy float64, step int) int {
	return int(math.Round(wy * float64(step)))
}

// keyNames are the non-printing keys forwarded as key presses. Printable
// input arrives as runes.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyEnter:      "Enter",
	ebiten.KeyKPEnter:    "Enter",
	ebiten.KeyBackspace:  "Backspace",
	ebiten.KeyDelete:     "Delete",
	ebiten.KeyTab:        "Tab",
	ebiten.KeyEscape:     "Escape",
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyHome:       "Home",
	ebiten.KeyEnd:        "End",
	ebiten.KeyPageUp:     "PageUp",
	ebiten.KeyPageDown:   "PageDown",
}
