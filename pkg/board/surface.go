package board

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/chessboard/pkg/assets"
)

// Surface is one drawing layer. Coordinates are board units with the origin
// at the top left corner of the board.
type Surface interface {
	// Resize sets the layer size and clears it.
	Resize(w, h int)
	FillRect(x, y, w, h int, c colorful.Color)
	ClearRect(x, y, w, h int)
	DrawImage(img *assets.Image, x, y, w, h int)
}

// Layers are the three stacked surfaces of a board, lowest first.
type Layers struct {
	Background Surface
	Pieces     Surface
	Drag       Surface
}

// Overlay is the transparent element capturing input above the layers.
type Overlay interface {
	Resize(size int)
	ShowCursor(visible bool)
	Enable(enabled bool)
}

// Container hosts the board. Sizes and coordinates use the same units as
// pointer events.
type Container interface {
	ClientSize() (w, h int)
	Origin() (x, y int)
}

type multiSurface []Surface

// MultiSurface returns a surface that repeats every call on each of surfaces,
// like io.MultiWriter.
func MultiSurface(surfaces ...Surface) Surface {
	all := make(multiSurface, 0, len(surfaces))
	for _, s := range surfaces {
		if s != nil {
			all = append(all, s)
		}
	}
	return all
}

func (m multiSurface) Resize(w, h int) {
	for _, s := range m {
		s.Resize(w, h)
	}
}

func (m multiSurface) FillRect(x, y, w, h int, c colorful.Color) {
	for _, s := range m {
		s.FillRect(x, y, w, h, c)
	}
}

func (m multiSurface) ClearRect(x, y, w, h int) {
	for _, s := range m {
		s.ClearRect(x, y, w, h)
	}
}

func (m multiSurface) DrawImage(img *assets.Image, x, y, w, h int) {
	for _, s := range m {
		s.DrawImage(img, x, y, w, h)
	}
}
