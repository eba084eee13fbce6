package board

import "github.com/qnkhuat/chessboard/pkg/assets"

// PointerDown picks up the piece under (x, y) when the engine allows it to
// move. Coordinates are relative to the container.
func (b *Board) PointerDown(x, y int) {
	if b.holding || !b.inputEnabled || !b.bounds.contains(x, y) {
		return
	}
	b.updateUserCoords(x, y)
	sq := b.SquareFromCoords(b.userX, b.userY)
	if !sq.Valid() || !assets.IsPiece(pieceAt(b.pieces, sq)) {
		return
	}
	if !b.engine.CanMove(b.engineSquare(sq)) {
		b.log.Debug().Stringer("square", sq).Msg("piece can not move")
		return
	}

	b.holding = true
	b.heldSquare = sq
	b.heldImage = b.imageAt(sq)
	b.layers.Pieces.ClearRect(b.squareX(sq), b.squareY(sq), b.squareSize, b.squareSize)
	if b.overlay != nil {
		b.overlay.ShowCursor(false)
	}
	b.updateHover(sq)
	b.drawDrag()
	b.log.Debug().Stringer("square", sq).Msg("pickup")
}

// PointerMove drags the held piece.
func (b *Board) PointerMove(x, y int) {
	if !b.holding {
		return
	}
	b.updateUserCoords(x, y)
	b.updateHover(b.SquareFromCoords(b.userX, b.userY))
	b.drawDrag()
}

// PointerUp drops the held piece and asks the engine to play the move.
func (b *Board) PointerUp(x, y int) {
	if !b.holding {
		return
	}
	if !b.bounds.contains(x, y) {
		b.log.Debug().Msg("drop outside board")
		b.dropPiece(true)
		return
	}
	b.updateUserCoords(x, y)
	b.movePiece(b.heldSquare, b.SquareFromCoords(b.userX, b.userY))
}

// PointerLeave cancels the gesture in progress.
func (b *Board) PointerLeave() {
	if !b.holding {
		return
	}
	b.log.Debug().Msg("pointer left board")
	b.dropPiece(true)
}

// Holding reports whether a piece is being dragged.
func (b *Board) Holding() bool {
	return b.holding
}

func (b *Board) HeldSquare() Square {
	return b.heldSquare
}

func (b *Board) Hover() Square {
	return b.hover
}

func (b *Board) movePiece(from, to Square) {
	if from == to || !to.Valid() {
		b.dropPiece(true)
		return
	}
	if !b.engine.TryMove(b.engineSquare(from), b.engineSquare(to)) {
		b.log.Debug().Stringer("from", from).Stringer("to", to).Msg("move rejected")
		b.dropPiece(true)
		return
	}
	b.log.Debug().Stringer("from", from).Stringer("to", to).Msg("move accepted")
	b.updateHover(NoSquare)
	b.setLastMove(from, to)
	b.UpdatePieces(false)
	b.dropPiece(false)
}

// dropPiece ends the drag. With redraw set the piece goes back to the square
// it was taken from.
func (b *Board) dropPiece(redraw bool) {
	sq := b.heldSquare
	b.holding = false
	b.heldSquare = NoSquare
	b.heldImage = nil
	b.updateHover(NoSquare)
	if b.overlay != nil {
		b.overlay.ShowCursor(true)
	}
	b.layers.Drag.ClearRect(0, 0, b.boardSize, b.boardSize)
	if redraw && sq.Valid() {
		b.layers.Pieces.ClearRect(b.squareX(sq), b.squareY(sq), b.squareSize, b.squareSize)
		b.drawPiece(sq, b.imageAt(sq))
	}
}

// updateUserCoords stores the pointer position in board coordinates, clamped
// to the board.
func (b *Board) updateUserCoords(x, y int) {
	b.userX = clamp(x-b.bounds.left, 0, b.boardSize-1)
	b.userY = clamp(y-b.bounds.top, 0, b.boardSize-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
