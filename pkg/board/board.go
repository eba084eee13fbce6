// Package board implements an interactive chess board drawn on three stacked
// surfaces. It knows nothing about chess rules; every move goes through an
// Engine.
package board

import (
	"github.com/rs/zerolog"

	"github.com/qnkhuat/chessboard/pkg/assets"
)

type rect struct {
	left, top, right, bottom int
}

func (r rect) contains(x, y int) bool {
	return x >= r.left && x < r.right && y >= r.top && y < r.bottom
}

// Board is a chess board component. All methods must be called from the UI
// goroutine.
type Board struct {
	container Container
	engine    Engine
	assets    *assets.Registry
	layers    Layers
	overlay   Overlay
	palette   Palette
	log       zerolog.Logger

	dialogs [numDialogs]*Dialog

	boardSize  int
	squareSize int
	halfSquare int
	bounds     rect

	reversed bool
	pieces   string

	holding    bool
	heldSquare Square
	heldImage  *assets.Image
	userX      int
	userY      int

	lastFrom Square
	lastTo   Square
	hover    Square

	inputEnabled bool
}

// Option configures a Board.
type Option func(*Board)

func WithPalette(p Palette) Option {
	return func(b *Board) {
		b.palette = p
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(b *Board) {
		b.log = log
	}
}

// New creates a board inside c. The board reads the current position from e
// and draws as soon as reg has its images.
func New(c Container, e Engine, reg *assets.Registry, layers Layers, overlay Overlay, opts ...Option) *Board {
	b := &Board{
		container:    c,
		engine:       e,
		assets:       reg,
		layers:       layers,
		overlay:      overlay,
		palette:      DefaultPalette,
		log:          zerolog.Nop(),
		heldSquare:   NoSquare,
		lastFrom:     NoSquare,
		lastTo:       NoSquare,
		hover:        NoSquare,
		inputEnabled: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.makeDialogs()
	b.pieces = b.enginePieces()
	b.Resize()
	return b
}

// Attach registers the board as the receiver of the engine's promotion,
// victory and stalemate notifications.
func (b *Board) Attach() {
	b.engine.OnPromotion(b.PromptPromotion)
	b.engine.OnVictory(b.ShowVictory)
	b.engine.OnStalemate(b.ShowStalemate)
}

// Resize recomputes the geometry from the container and redraws.
func (b *Board) Resize() {
	w, h := b.container.ClientSize()
	size := w
	if h < size {
		size = h
	}
	if size < 0 {
		size = 0
	}
	size -= size % numOfSquaresInRow

	ratio := 1.0
	if b.boardSize > 0 && size > 0 {
		ratio = float64(size) / float64(b.boardSize)
	}

	b.boardSize = size
	b.squareSize = size / numOfSquaresInRow
	b.halfSquare = b.squareSize / 2

	x, y := b.container.Origin()
	b.bounds = rect{left: x, top: y, right: x + size, bottom: y + size}

	b.layers.Background.Resize(size, size)
	b.layers.Pieces.Resize(size, size)
	b.layers.Drag.Resize(size, size)
	if b.overlay != nil {
		b.overlay.Resize(size)
	}

	b.layoutDialogs(ratio)
	b.log.Debug().Int("size", size).Float64("ratio", ratio).Msg("resize")

	if b.assets == nil {
		b.DrawAll()
		return
	}
	b.assets.Register(b)
}

// DrawAll repaints every layer.
func (b *Board) DrawAll() {
	b.drawBoard()
	b.drawAllPieces()
	if b.holding {
		b.drawDrag()
	}
}

// UpdatePieces reads the position from the engine and redraws the squares
// whose piece changed, or every square when force is set.
func (b *Board) UpdatePieces(force bool) {
	prev := b.pieces
	b.pieces = b.enginePieces()
	if force {
		b.drawAllPieces()
		return
	}
	for sq := Square(0); sq < numSquares; sq++ {
		if pieceAt(prev, sq) == pieceAt(b.pieces, sq) {
			continue
		}
		b.layers.Pieces.ClearRect(b.squareX(sq), b.squareY(sq), b.squareSize, b.squareSize)
		b.drawPiece(sq, b.imageAt(sq))
	}
}

// Pieces returns the position as displayed, reversed for a reversed board.
func (b *Board) Pieces() string {
	return b.pieces
}

// NewGame starts a game. A reversed board shows black at the bottom.
func (b *Board) NewGame(reversed bool) {
	if b.holding {
		b.dropPiece(false)
	}
	b.reversed = reversed
	b.engine.NewGame()
	b.ClearDialogs()
	b.lastFrom, b.lastTo, b.hover = NoSquare, NoSquare, NoSquare
	b.log.Debug().Bool("reversed", reversed).Msg("new game")
	b.drawBoard()
	b.UpdatePieces(true)
}

// DisableMoves stops the board from reacting to pointer input.
func (b *Board) DisableMoves() {
	b.inputEnabled = false
	if b.overlay != nil {
		b.overlay.Enable(false)
	}
}

func (b *Board) EnableMoves() {
	b.inputEnabled = true
	if b.overlay != nil {
		b.overlay.Enable(true)
	}
}

// SquareFromCoords returns the square under a point in board coordinates.
func (b *Board) SquareFromCoords(x, y int) Square {
	if b.squareSize == 0 || x < 0 || y < 0 || x >= b.boardSize || y >= b.boardSize {
		return NoSquare
	}
	return Square(y/b.squareSize*numOfSquaresInRow + x/b.squareSize)
}

func (b *Board) Size() int { return b.boardSize }

func (b *Board) SquareSize() int { return b.squareSize }

func (b *Board) Reversed() bool { return b.reversed }

func (b *Board) InputEnabled() bool { return b.inputEnabled }

// Bounds returns the board rectangle in container coordinates.
func (b *Board) Bounds() (left, top, right, bottom int) {
	return b.bounds.left, b.bounds.top, b.bounds.right, b.bounds.bottom
}

// LastMove returns the highlighted squares of the last accepted move.
func (b *Board) LastMove() (from, to Square) {
	return b.lastFrom, b.lastTo
}

func (b *Board) squareX(sq Square) int {
	return int(sq) % numOfSquaresInRow * b.squareSize
}

func (b *Board) squareY(sq Square) int {
	return int(sq) / numOfSquaresInRow * b.squareSize
}

func (b *Board) engineSquare(sq Square) int {
	if b.reversed {
		return int(Reverse(sq))
	}
	return int(sq)
}

func (b *Board) enginePieces() string {
	p := b.engine.Pieces()
	if b.reversed {
		return reverseString(p)
	}
	return p
}

func (b *Board) imageAt(sq Square) *assets.Image {
	if b.assets == nil {
		return nil
	}
	return b.assets.Image(pieceAt(b.pieces, sq))
}

func (b *Board) drawSquare(sq Square) {
	c := b.palette.Normal(sq)
	switch {
	case sq == b.hover:
		c = b.palette.Hover(sq)
	case sq == b.lastFrom || sq == b.lastTo:
		c = b.palette.Move(sq)
	}
	b.layers.Background.FillRect(b.squareX(sq), b.squareY(sq), b.squareSize, b.squareSize, c)
}

func (b *Board) drawBoard() {
	for sq := Square(0); sq < numSquares; sq++ {
		b.drawSquare(sq)
	}
}

func (b *Board) drawPiece(sq Square, img *assets.Image) {
	if img == nil || !sq.Valid() {
		return
	}
	b.layers.Pieces.DrawImage(img, b.squareX(sq), b.squareY(sq), b.squareSize, b.squareSize)
}

func (b *Board) drawAllPieces() {
	b.layers.Pieces.ClearRect(0, 0, b.boardSize, b.boardSize)
	for sq := Square(0); sq < numSquares; sq++ {
		if b.holding && sq == b.heldSquare {
			continue
		}
		b.drawPiece(sq, b.imageAt(sq))
	}
}

func (b *Board) drawDrag() {
	b.layers.Drag.ClearRect(0, 0, b.boardSize, b.boardSize)
	if b.heldImage == nil {
		return
	}
	b.layers.Drag.DrawImage(b.heldImage, b.userX-b.halfSquare, b.userY-b.halfSquare, b.squareSize, b.squareSize)
}

// setLastMove moves the last-move highlight to a new pair of squares.
func (b *Board) setLastMove(from, to Square) {
	oldFrom, oldTo := b.lastFrom, b.lastTo
	b.lastFrom, b.lastTo = from, to
	for _, sq := range []Square{oldFrom, oldTo, from, to} {
		if sq.Valid() {
			b.drawSquare(sq)
		}
	}
}

func (b *Board) updateHover(sq Square) {
	if sq == b.hover {
		return
	}
	old := b.hover
	b.hover = sq
	if old.Valid() {
		b.drawSquare(old)
	}
	if sq.Valid() {
		b.drawSquare(sq)
	}
}
