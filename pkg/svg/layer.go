// Package svg records board drawing calls and encodes them as SVG snapshots.
package svg

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/chessboard/pkg/assets"
	"github.com/qnkhuat/chessboard/pkg/board"
)

type op struct {
	x, y, w, h int
	fill       colorful.Color
	img        *assets.Image
}

func (o op) inside(x, y, w, h int) bool {
	return o.x >= x && o.y >= y && o.x+o.w <= x+w && o.y+o.h <= y+h
}

// Layer is a board.Surface that keeps the fills and images drawn on it in
// order.
type Layer struct {
	w, h int
	ops  []op
}

func NewLayer() *Layer {
	return &Layer{}
}

func (l *Layer) Resize(w, h int) {
	l.w, l.h = w, h
	l.ops = nil
}

func (l *Layer) FillRect(x, y, w, h int, c colorful.Color) {
	l.ops = append(l.ops, op{x: x, y: y, w: w, h: h, fill: c})
}

// ClearRect drops every recorded operation lying inside the rectangle.
func (l *Layer) ClearRect(x, y, w, h int) {
	kept := l.ops[:0]
	for _, o := range l.ops {
		if !o.inside(x, y, w, h) {
			kept = append(kept, o)
		}
	}
	l.ops = kept
}

func (l *Layer) DrawImage(img *assets.Image, x, y, w, h int) {
	if img == nil {
		return
	}
	l.ops = append(l.ops, op{x: x, y: y, w: w, h: h, img: img})
}

func (l *Layer) Size() (w, h int) {
	return l.w, l.h
}

// Len returns the number of recorded operations.
func (l *Layer) Len() int {
	return len(l.ops)
}

// Snapshot is a set of recording layers standing in for a board's surfaces.
type Snapshot struct {
	Background *Layer
	Pieces     *Layer
	Drag       *Layer
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Background: NewLayer(),
		Pieces:     NewLayer(),
		Drag:       NewLayer(),
	}
}

// Layers returns the snapshot layers in the form a board draws on.
func (s *Snapshot) Layers() board.Layers {
	return board.Layers{Background: s.Background, Pieces: s.Pieces, Drag: s.Drag}
}

func (s *Snapshot) all() []*Layer {
	return []*Layer{s.Background, s.Pieces, s.Drag}
}
