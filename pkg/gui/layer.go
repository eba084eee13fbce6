package gui

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/chessboard/pkg/assets"
)

// Cell is one board unit of a layer. Zero cells are transparent.
type Cell struct {
	Bg     colorful.Color
	Filled bool
	Glyph  rune
	White  bool
}

// Layer is a board.Surface backed by a grid of cells. A piece image is drawn
// as its glyph in the center cell of the image rectangle.
type Layer struct {
	w, h  int
	cells []Cell
}

func NewLayer() *Layer {
	return &Layer{}
}

func (l *Layer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	l.w, l.h = w, h
	l.cells = make([]Cell, w*h)
}

func (l *Layer) FillRect(x, y, w, h int, c colorful.Color) {
	l.each(x, y, w, h, func(cell *Cell) {
		cell.Bg = c
		cell.Filled = true
	})
}

func (l *Layer) ClearRect(x, y, w, h int) {
	l.each(x, y, w, h, func(cell *Cell) {
		*cell = Cell{}
	})
}

func (l *Layer) DrawImage(img *assets.Image, x, y, w, h int) {
	if img == nil {
		return
	}
	cx, cy := x+w/2, y+h/2
	if cx < 0 || cy < 0 || cx >= l.w || cy >= l.h {
		return
	}
	cell := &l.cells[cy*l.w+cx]
	cell.Glyph = img.Glyph
	cell.White = img.White()
}

// At returns the cell at (x, y). Cells outside the layer are transparent.
func (l *Layer) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= l.w || y >= l.h {
		return Cell{}
	}
	return l.cells[y*l.w+x]
}

func (l *Layer) Size() (w, h int) {
	return l.w, l.h
}

// each calls f on every cell of the rectangle clipped to the layer.
func (l *Layer) each(x, y, w, h int, f func(*Cell)) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, l.w), min(y+h, l.h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			f(&l.cells[cy*l.w+cx])
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
