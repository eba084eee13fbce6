package assets

import (
	"encoding/base64"
	"unicode"
)

// PieceFile pairs a piece code with the image file drawn for it.
type PieceFile struct {
	Piece rune
	Path  string
}

// Files is the fixed, ordered set of piece images. White pieces use upper
// case codes, black pieces lower case.
var Files = [...]PieceFile{
	{'P', "img/wpawn.svg"},
	{'N', "img/wknight.svg"},
	{'B', "img/wbishop.svg"},
	{'R', "img/wrook.svg"},
	{'Q', "img/wqueen.svg"},
	{'K', "img/wking.svg"},
	{'p', "img/bpawn.svg"},
	{'n', "img/bknight.svg"},
	{'b', "img/bbishop.svg"},
	{'r', "img/brook.svg"},
	{'q', "img/bqueen.svg"},
	{'k', "img/bking.svg"},
}

var glyphs = map[rune]rune{
	'p': '♟', 'n': '♞', 'b': '♝', 'r': '♜', 'q': '♛', 'k': '♚',
}

// Glyph returns the unicode chess symbol used to draw piece. Both colors share
// the solid symbol; renderers tell them apart by color.
func Glyph(piece rune) (rune, bool) {
	g, ok := glyphs[unicode.ToLower(piece)]
	return g, ok
}

// IsPiece reports whether c is one of the twelve piece codes.
func IsPiece(c rune) bool {
	_, ok := Glyph(c)
	return ok
}

// Image is a loaded piece image.
type Image struct {
	Piece rune
	Path  string
	Glyph rune
	Data  []byte
}

// White reports whether the image shows a white piece.
func (im *Image) White() bool {
	return unicode.IsUpper(im.Piece)
}

// DataURI returns the image as an inline svg data URI.
func (im *Image) DataURI() string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(im.Data)
}
