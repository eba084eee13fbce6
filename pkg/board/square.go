package board

import "fmt"

const (
	numSquares        = 64
	numOfSquaresInRow = 8
)

// Square is a board index, 0 for the top left square and 63 for the bottom
// right one, in display orientation.
type Square int

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < numSquares
}

// String returns the algebraic name of sq for an unreversed board.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(sq%numOfSquaresInRow), numOfSquaresInRow-int(sq)/numOfSquaresInRow)
}

// Reverse flips a square to the other player's perspective. It is its own
// inverse.
func Reverse(sq Square) Square {
	return numSquares - 1 - sq
}

// IsWhite reports whether sq is a light square: even squares are light on the
// first row and every second row after it, odd squares on the others.
func IsWhite(sq Square) bool {
	return (sq%2 == 0) != (sq%16 > 7)
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// pieceAt returns the piece code of sq in a position string, '.' when the
// string is too short.
func pieceAt(pieces string, sq Square) rune {
	if int(sq) < len(pieces) {
		return rune(pieces[sq])
	}
	return '.'
}
