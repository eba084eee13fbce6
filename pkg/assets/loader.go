package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	svg "github.com/ajstarks/svgo"
)

// ErrUnknownPiece is returned when a loader is asked for a code outside the
// piece set.
var ErrUnknownPiece = errors.New("assets: unknown piece")

// Loader produces the image for a single piece.
type Loader interface {
	Load(ctx context.Context, piece rune, path string) (*Image, error)
}

// GlyphLoader renders every piece as a small svg document holding its
// unicode symbol. It never touches the filesystem.
type GlyphLoader struct {
	Size int
}

func (l GlyphLoader) Load(ctx context.Context, piece rune, path string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, ok := Glyph(piece)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, piece)
	}

	size := l.Size
	if size <= 0 {
		size = 45
	}
	fill, stroke := "#ffffff", "#000000"
	if piece >= 'a' {
		fill, stroke = "#000000", "#ffffff"
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size)
	canvas.Text(size/2, size*4/5, string(g),
		fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:%s;stroke:%s;stroke-width:1", size*9/10, fill, stroke))
	canvas.End()

	return &Image{Piece: piece, Path: path, Glyph: g, Data: buf.Bytes()}, nil
}

// FSLoader reads piece images from a filesystem, usually os.DirFS of an asset
// directory laid out as img/wpawn.svg, img/bking.svg and so on.
type FSLoader struct {
	FS fs.FS
}

func (l FSLoader) Load(ctx context.Context, piece rune, path string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, ok := Glyph(piece)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, piece)
	}
	data, err := fs.ReadFile(l.FS, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Image{Piece: piece, Path: path, Glyph: g, Data: data}, nil
}
