package gui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/chessboard/pkg/assets"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/input"
)

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// overlay tracks the input element above the board layers.
type overlay struct {
	size    int
	cursor  bool
	enabled bool
}

func (o *overlay) Resize(size int)         { o.size = size }
func (o *overlay) ShowCursor(visible bool) { o.cursor = visible }
func (o *overlay) Enable(enabled bool)     { o.enabled = enabled }

// BoardView is a tview primitive hosting a board. Two terminal columns make
// one board unit so squares look square.
type BoardView struct {
	*tview.Box
	theme   Theme
	board   *board.Board
	layers  [3]*Layer
	overlay *overlay
	mouse   *input.Mouse

	area     input.Rect
	onResize func()
}

func NewBoardView(theme Theme) *BoardView {
	v := &BoardView{
		Box:     tview.NewBox(),
		theme:   theme,
		layers:  [3]*Layer{NewLayer(), NewLayer(), NewLayer()},
		overlay: &overlay{cursor: true, enabled: true},
	}
	v.Box.SetDrawFunc(v.draw)
	return v
}

// Layers returns the terminal surfaces of the board, lowest first.
func (v *BoardView) Layers() board.Layers {
	return board.Layers{Background: v.layers[0], Pieces: v.layers[1], Drag: v.layers[2]}
}

// Overlay returns the input element the board enables and disables.
func (v *BoardView) Overlay() board.Overlay {
	return v.overlay
}

// SetBoard connects the board drawn by the view. Mouse input goes to it from
// then on.
func (v *BoardView) SetBoard(b *board.Board) {
	v.board = b
	v.mouse = input.NewMouse(b)
}

// SetResizeFunc sets a function called after the board followed a change of
// the view size.
func (v *BoardView) SetResizeFunc(f func()) {
	v.onResize = f
}

// ClientSize returns the view size in board units.
func (v *BoardView) ClientSize() (int, int) {
	return v.area.W / input.CellsPerUnit, v.area.H
}

// Origin is the board position inside the view. The board sits in the top
// left corner.
func (v *BoardView) Origin() (int, int) {
	return 0, 0
}

// InputEnabled reports whether pointer input reaches the board gestures.
func (v *BoardView) InputEnabled() bool {
	return v.overlay.enabled
}

// CursorVisible is false while a piece is dragged.
func (v *BoardView) CursorVisible() bool {
	return v.overlay.cursor
}

// HandleMouse routes a mouse event to the board gestures, or to the dialog
// buttons while board input is disabled. It reports whether the event was
// meant for the board, in which case the view needs a redraw.
func (v *BoardView) HandleMouse(ev *tcell.EventMouse) bool {
	if v.board == nil {
		return false
	}
	enabled := v.overlay.enabled
	wasPressed := v.mouse.Pressed()
	handled := v.mouse.Handle(ev, v.area)
	if enabled || !handled || wasPressed {
		return handled
	}

	cx, cy := ev.Position()
	v.board.PressDialog((cx-v.area.X)/input.CellsPerUnit, cy-v.area.Y)
	return true
}

func (v *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	area := input.Rect{X: x, Y: y, W: width, H: height}
	if area != v.area {
		v.area = area
		if v.board != nil {
			v.board.Resize()
		}
		if v.onResize != nil {
			v.onResize()
		}
	}

	w, h := v.layers[0].Size()
	for uy := 0; uy < h; uy++ {
		for ux := 0; ux < w; ux++ {
			v.drawUnit(screen, x+ux*input.CellsPerUnit, y+uy, ux, uy)
		}
	}
	if v.board != nil {
		v.drawCoordinates(screen, x, y)
		for _, d := range v.board.Dialogs() {
			if d.Visible {
				v.drawDialog(screen, x, y, d)
			}
		}
	}
	return x, y, width, height
}

// drawUnit composites the three layers for one board unit.
func (v *BoardView) drawUnit(screen tcell.Screen, sx, sy, ux, uy int) {
	style := DefStyle
	if bg := v.layers[0].At(ux, uy); bg.Filled {
		style = style.Background(toTcell(bg.Bg))
	}
	glyph := ' '
	for _, l := range []*Layer{v.layers[2], v.layers[1]} {
		if c := l.At(ux, uy); c.Glyph != 0 {
			glyph = c.Glyph
			style = v.pieceStyle(style, c.White)
			break
		}
	}
	drawRune(screen, sx, sy, style, glyph)
	drawRune(screen, sx+1, sy, style, ' ')
}

func (v *BoardView) pieceStyle(style tcell.Style, white bool) tcell.Style {
	if white {
		return style.Foreground(v.theme.White)
	}
	return style.Foreground(v.theme.Black)
}

// drawCoordinates labels files below the board and ranks on its right when
// there is room.
func (v *BoardView) drawCoordinates(screen tcell.Screen, x, y int) {
	size, step := v.board.Size(), v.board.SquareSize()
	if step == 0 {
		return
	}
	files, ranks := "abcdefgh", "87654321"
	if v.board.Reversed() {
		files, ranks = "hgfedcba", "12345678"
	}
	if size < v.area.H {
		style := tcell.StyleDefault.Foreground(v.theme.File)
		for i, f := range files {
			drawRune(screen, x+(i*step+step/2)*input.CellsPerUnit, y+size, style, f)
		}
	}
	if (size+1)*input.CellsPerUnit <= v.area.W {
		style := tcell.StyleDefault.Foreground(v.theme.Rank)
		for i, r := range ranks {
			drawRune(screen, x+size*input.CellsPerUnit, y+i*step+step/2, style, r)
		}
	}
}

func (v *BoardView) drawDialog(screen tcell.Screen, x, y int, d *board.Dialog) {
	style := DefStyle.Background(v.theme.DialogBg).Foreground(v.theme.DialogFg)
	left, top := x+d.Left*input.CellsPerUnit, y+d.Top
	width := d.Width * input.CellsPerUnit
	for row := 0; row < d.Height; row++ {
		drawText(screen, left, top+row, style, strings.Repeat(" ", width))
	}

	if len(d.Buttons) > 0 {
		for i, b := range d.Buttons {
			bx, by, bw, bh := d.ButtonRect(i)
			g, _ := assets.Glyph(b.Piece)
			cx := x + (bx+bw/2)*input.CellsPerUnit
			drawRune(screen, cx, y+by+bh/2, v.pieceStyle(style, b.Piece < 'a'), g)
		}
		return
	}

	row := top + (d.Height-1)/2
	tview.Print(screen, d.Text, left, row, width, tview.AlignCenter, v.theme.DialogFg)
	if d.Height < 2 {
		return
	}
	start := left + (width-2*len(d.Icons)+1)/2
	for i, p := range d.Icons {
		g, _ := assets.Glyph(p)
		drawRune(screen, start+2*i, row+1, v.pieceStyle(style, p < 'a'), g)
	}
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}
