package board

// Promotion is the piece a pawn turns into on the last rank.
type Promotion int

const (
	Queen Promotion = iota
	Rook
	Bishop
	Knight
)

// PromotionChoices lists the choices in dialog order.
var PromotionChoices = [...]Promotion{Queen, Rook, Bishop, Knight}

func (p Promotion) String() string {
	switch p {
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	default:
		return "Unknown"
	}
}

// Piece returns the piece code of the choice for one side.
func (p Promotion) Piece(white bool) rune {
	c := 'q'
	switch p {
	case Rook:
		c = 'r'
	case Bishop:
		c = 'b'
	case Knight:
		c = 'n'
	}
	if white {
		c -= 'a' - 'A'
	}
	return c
}

// Engine is the rules authority behind a board. Squares passed to it are
// engine indices, row-major from a8, never reversed.
//
// Callbacks registered through the On methods run synchronously from inside
// TryMove and Promote.
type Engine interface {
	NewGame()
	// Pieces returns the position as 64 piece codes, '.' for empty squares.
	Pieces() string
	// TryMove validates and applies a move, reporting whether it was accepted.
	TryMove(from, to int) bool
	// CanMove reports whether the piece on square has a legal move.
	CanMove(square int) bool
	// Promote resolves a pending promotion.
	Promote(choice Promotion)
	WhiteToMove() bool

	OnError(func(msg string))
	OnMoveLogged(func(move string))
	OnPromotion(func())
	OnVictory(func())
	OnStalemate(func())
}
