package retained

import (
	"image"
	"image/color"
	"slices"
)

// ListColumn is one column of a ListView.
type ListColumn struct {
	Text  string
	Width int
}

// ListView is a scrollable table with a header row. Rows are plain text and
// drawn directly; a left click selects the row under the cursor.
type ListView struct {
	ScrollPanel

	columns []ListColumn
	rows    [][]string

	rowHeight    int
	headerHeight int
	selected     int

	onSelectedIndexChanged []func(index int)
}

// NewListView creates an empty list with the given columns.
func NewListView(columns ...ListColumn) *ListView {
	lv := &ListView{columns: columns, selected: -1, rowHeight: 24, headerHeight: 24}
	lv.initScrollPanel(lv)
	lv.OnClick(lv.click)
	lv.OnInitialize(lv.textChanged)
	return lv
}

func (lv *ListView) Columns() []ListColumn { return slices.Clone(lv.columns) }

// SetColumns replaces the columns. Rows are kept.
func (lv *ListView) SetColumns(columns ...ListColumn) {
	lv.columns = columns
	lv.updateContentSize()
}

// RowCount returns the number of rows.
func (lv *ListView) RowCount() int { return len(lv.rows) }

// Row returns the cells of row i.
func (lv *ListView) Row(i int) []string { return lv.rows[i] }

// AddRow appends a row and returns its index.
func (lv *ListView) AddRow(cells ...string) int {
	lv.rows = append(lv.rows, cells)
	lv.updateContentSize()
	return len(lv.rows) - 1
}

// ClearRows removes every row and the selection.
func (lv *ListView) ClearRows() {
	lv.rows = nil
	lv.SetSelectedIndex(-1)
	lv.updateContentSize()
}

func (lv *ListView) RowHeight() int { return lv.rowHeight }

func (lv *ListView) SelectedIndex() int { return lv.selected }

// SetSelectedIndex selects row i, or nothing for -1. Out of range values are
// ignored.
func (lv *ListView) SetSelectedIndex(i int) {
	if i == lv.selected || i < -1 || i >= len(lv.rows) {
		return
	}
	lv.selected = i
	for _, fn := range lv.onSelectedIndexChanged {
		fn(i)
	}
}

// OnSelectedIndexChanged registers a handler for selection changes.
func (lv *ListView) OnSelectedIndexChanged(fn func(index int)) {
	lv.onSelectedIndexChanged = append(lv.onSelectedIndexChanged, fn)
}

// EnsureVisible scrolls vertically until row i is fully inside the view.
func (lv *ListView) EnsureVisible(i int) {
	if i < 0 || i >= len(lv.rows) {
		return
	}
	view := lv.ClientRectangle().Height
	top := lv.headerHeight + i*lv.rowHeight
	off := lv.vbar.Value()
	switch {
	case top < off:
		lv.vbar.SetValue(top)
	case top+lv.rowHeight > off+view:
		lv.vbar.SetValue(top + lv.rowHeight - view)
	}
}

// RowAt returns the row under a point relative to the list, or -1.
func (lv *ListView) RowAt(p image.Point) int {
	client := lv.ClientRectangle()
	if !client.Contains(p) || lv.rowHeight <= 0 {
		return -1
	}
	y := p.Y - client.Y + lv.ScrollOffset().Y - lv.headerHeight
	if y < 0 {
		return -1
	}
	if i := y / lv.rowHeight; i < len(lv.rows) {
		return i
	}
	return -1
}

func (lv *ListView) click(e *MouseEvent) {
	if i := lv.RowAt(e.Location); i >= 0 {
		lv.SetSelectedIndex(i)
	}
}

func (lv *ListView) textChanged() {
	if f := lv.Font(); f != nil {
		h := f.Measure("Qwerty").Y + 8
		lv.rowHeight, lv.headerHeight = h, h
	}
	lv.updateContentSize()
}

func (lv *ListView) updateContentSize() {
	w := 0
	for _, col := range lv.columns {
		w += col.Width
	}
	lv.SetMinScrollSize(image.Pt(w, lv.headerHeight+len(lv.rows)*lv.rowHeight))
}

// PreferredSize shows the header and up to eight rows.
func (lv *ListView) PreferredSize() image.Point {
	w := 0
	for _, col := range lv.columns {
		w += col.Width
	}
	h := lv.headerHeight + min(len(lv.rows), 8)*lv.rowHeight
	return image.Pt(w, h).Add(lv.padding.Size())
}

func (lv *ListView) Draw(g *Graphics) {
	bounds := lv.ScreenBounds()
	a := lv.Assets()
	switch {
	case a != nil && a.TextBox != nil:
		g.DrawTextureBox(a.TextBox, bounds, nil)
	case lv.backColor != nil:
		g.FillRect(bounds, lv.backColor)
	}

	view := lv.DisplayRectangle()
	clip, err := g.PushClip(view)
	if err == nil {
		if !clip.Invisible() {
			lv.drawRows(g, view, a)
		}
		clip.Restore()
	}
	lv.drawChildren(g)
}

func (lv *ListView) drawRows(g *Graphics, view Rect, a *Assets) {
	off := lv.ScrollOffset()
	origin := image.Pt(view.X-off.X, view.Y-off.Y)
	font := lv.Font()
	highlight := color.Color(color.RGBA{0xf5, 0xde, 0xb3, 0xff})
	if a != nil && a.HighlightColor != nil {
		highlight = a.HighlightColor
	}

	header := R(origin.X, origin.Y, lv.scrollSize.X, lv.headerHeight)
	g.FillRect(header, color.RGBA{0xdd, 0xa0, 0x60, 0xff})
	lv.drawCells(g, header, font, lv.headerCells())

	first := max(0, (view.Y-origin.Y-lv.headerHeight)/lv.rowHeight)
	for i := first; i < len(lv.rows); i++ {
		row := R(origin.X, origin.Y+lv.headerHeight+i*lv.rowHeight, lv.scrollSize.X, lv.rowHeight)
		if row.Y >= view.Bottom() {
			break
		}
		if i == lv.selected {
			g.FillRect(row, highlight)
		}
		lv.drawCells(g, row, font, lv.rows[i])
	}
}

func (lv *ListView) headerCells() []string {
	cells := make([]string, len(lv.columns))
	for i, col := range lv.columns {
		cells[i] = col.Text
	}
	return cells
}

func (lv *ListView) drawCells(g *Graphics, row Rect, f Font, cells []string) {
	x := row.X
	for i, col := range lv.columns {
		if i < len(cells) {
			cell := R(x+4, row.Y, max(0, col.Width-8), row.Height)
			g.DrawTextAligned(cells[i], f, cell, AlignMiddleLeft, lv.foreColor)
		}
		x += col.Width
	}
}
