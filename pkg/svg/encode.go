package svg

import (
	"bufio"
	"fmt"
	"io"
	"os"

	svgo "github.com/ajstarks/svgo"

	"github.com/qnkhuat/chessboard/pkg/assets"
	"github.com/qnkhuat/chessboard/pkg/board"
)

// UnitSize is the number of pixels per board unit in encoded documents.
const UnitSize = 16

var layerNames = []string{"background", "pieces", "drag"}

const (
	dialogStyle = "fill:#444444;stroke:#222222;stroke-width:1"
	textStyle   = "text-anchor:middle;dominant-baseline:middle;fill:#ffffff;font-family:sans-serif;font-size:%dpx"
)

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Encode writes an SVG document of a board of size units. Each layer becomes
// one group, lowest first, and visible dialogs are drawn above them.
func Encode(w io.Writer, size int, layers []*Layer, dialogs []*board.Dialog) error {
	ew := &errWriter{w: w}
	px := size * UnitSize
	canvas := svgo.New(ew)
	canvas.Start(px, px)

	for i, l := range layers {
		name := fmt.Sprintf("layer%d", i)
		if i < len(layerNames) {
			name = layerNames[i]
		}
		canvas.Gid(name)
		encodeLayer(canvas, l)
		canvas.Gend()
	}

	canvas.Gid("dialogs")
	for _, d := range dialogs {
		if d != nil && d.Visible {
			encodeDialog(canvas, d)
		}
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

func encodeLayer(canvas *svgo.SVG, l *Layer) {
	if l == nil {
		return
	}
	for _, o := range l.ops {
		x, y, w, h := o.x*UnitSize, o.y*UnitSize, o.w*UnitSize, o.h*UnitSize
		if o.img != nil {
			canvas.Image(x, y, w, h, o.img.DataURI())
			continue
		}
		canvas.Rect(x, y, w, h, "fill:"+o.fill.Hex())
	}
}

func encodeDialog(canvas *svgo.SVG, d *board.Dialog) {
	canvas.Rect(d.Left*UnitSize, d.Top*UnitSize, d.Width*UnitSize, d.Height*UnitSize, dialogStyle)

	if len(d.Buttons) > 0 {
		for i, b := range d.Buttons {
			bx, by, bw, bh := d.ButtonRect(i)
			g, _ := assets.Glyph(b.Piece)
			canvas.Text((bx*2+bw)*UnitSize/2, (by*2+bh)*UnitSize/2, string(g),
				fmt.Sprintf(textStyle, bh*UnitSize*3/4))
		}
		return
	}

	cx := (d.Left*2 + d.Width) * UnitSize / 2
	fontSize := d.Height * UnitSize / 3
	canvas.Text(cx, d.Top*UnitSize+d.Height*UnitSize/3, d.Text, fmt.Sprintf(textStyle, fontSize))
	var icons []rune
	for _, p := range d.Icons {
		g, _ := assets.Glyph(p)
		icons = append(icons, g)
	}
	if len(icons) > 0 {
		canvas.Text(cx, d.Top*UnitSize+d.Height*UnitSize*3/4, string(icons), fmt.Sprintf(textStyle, fontSize))
	}
}

// Encode writes the snapshot with its current size.
func (s *Snapshot) Encode(w io.Writer, dialogs []*board.Dialog) error {
	size, _ := s.Background.Size()
	return Encode(w, size, s.all(), dialogs)
}

// WriteFile replaces the file at path with the encoded snapshot.
func (s *Snapshot) WriteFile(path string, dialogs []*board.Dialog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := s.Encode(bw, dialogs); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	return f.Close()
}
