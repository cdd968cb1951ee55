package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/agiangrant/menukit/retained"
)

// Palette colors the generated textures.
type Palette struct {
	Border     color.Color
	Fill       color.Color
	Button     color.Color
	Thumb      color.Color
	Check      color.Color
	Text       color.Color
	Disabled   color.Color
	Highlight  color.Color
	TooltipBox color.Color
}

// DefaultPalette is a warm parchment look.
var DefaultPalette = Palette{
	Border:     color.RGBA{0x85, 0x3f, 0x1e, 0xff},
	Fill:       color.RGBA{0xf9, 0xe0, 0xae, 0xff},
	Button:     color.RGBA{0xe8, 0xb0, 0x60, 0xff},
	Thumb:      color.RGBA{0xb1, 0x4e, 0x05, 0xff},
	Check:      color.RGBA{0x3c, 0x8d, 0x2f, 0xff},
	Text:       color.RGBA{0x55, 0x2b, 0x0c, 0xff},
	Disabled:   color.RGBA{0x80, 0x80, 0x80, 0xff},
	Highlight:  color.RGBA{0xf5, 0xde, 0xb3, 0xff},
	TooltipBox: color.RGBA{0xff, 0xf4, 0xd6, 0xff},
}

// texelScale is how many screen pixels one texture pixel covers.
const texelScale = 4

// NewAssets builds an asset registry from generated textures, so a form can
// be drawn without any image files.
func NewAssets(font retained.Font, p Palette) *retained.Assets {
	a := retained.NewAssets(font)
	a.TextColor = p.Text
	a.DisabledColor = p.Disabled
	a.HighlightColor = p.Highlight

	a.MenuBox = box(p.Border, p.Fill)
	a.Button = box(p.Border, p.Button)
	a.TextBox = box(p.Border, p.Fill)
	a.TooltipBox = box(p.Border, p.TooltipBox)
	a.ScrollTrack = box(p.Border, p.Fill)
	a.ScrollThumb = box(p.Border, p.Thumb)

	a.CheckboxUnchecked = square(9, p.Border, p.Fill, nil)
	a.CheckboxChecked = square(9, p.Border, p.Fill, p.Check)
	a.DropDownArrow = square(10, p.Border, p.Button, p.Thumb)
	a.ScrollUp = square(10, p.Border, p.Button, p.Thumb)
	a.ScrollDown = a.ScrollUp
	a.ScrollLeft = a.ScrollUp
	a.ScrollRight = a.ScrollUp
	return a
}

// box returns a 9-slice texture: a 3 pixel border around a fill.
func box(border, fill color.Color) *retained.Texture {
	img := ebiten.NewImage(12, 12)
	img.Fill(border)
	vector.DrawFilledRect(img, 2, 2, 8, 8, fill, false)
	return &retained.Texture{Image: img, Insets: retained.PadAll(3), Scale: texelScale}
}

// square returns a bordered square with an optional centered mark.
func square(n int, border, fill, mark color.Color) *retained.Texture {
	img := ebiten.NewImage(n, n)
	img.Fill(border)
	vector.DrawFilledRect(img, 1, 1, float32(n-2), float32(n-2), fill, false)
	if mark != nil {
		vector.DrawFilledRect(img, 3, 3, float32(n-6), float32(n-6), mark, false)
	}
	return &retained.Texture{Image: img}
}
