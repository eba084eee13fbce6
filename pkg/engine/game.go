// Package engine adapts notnil/chess to the board.Engine interface.
package engine

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"github.com/qnkhuat/chessboard/pkg/board"
)

var (
	ErrPromotionPending = errors.New("promotion pending")
	ErrNoPromotion      = errors.New("no promotion pending")
	ErrGameOver         = errors.New("game is over")
)

// Game is a chess game driven through board indices: 0 is a8, 63 is h1.
type Game struct {
	game    *chess.Game
	fen     func(*chess.Game)
	pending []*chess.Move
	log     zerolog.Logger

	onError     func(string)
	onMove      func(string)
	onPromotion func()
	onVictory   func()
	onStalemate func()
}

var _ board.Engine = (*Game)(nil)

type Option func(*Game) error

// StartFEN makes every new game start from fen instead of the standard
// position.
func StartFEN(fen string) Option {
	return func(g *Game) error {
		opt, err := chess.FEN(fen)
		if err != nil {
			return fmt.Errorf("start position: %w", err)
		}
		g.fen = opt
		return nil
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) error {
		g.log = log
		return nil
	}
}

func New(opts ...Option) (*Game, error) {
	g := &Game{
		log:         zerolog.Nop(),
		onError:     func(string) {},
		onMove:      func(string) {},
		onPromotion: func() {},
		onVictory:   func() {},
		onStalemate: func() {},
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.NewGame()
	return g, nil
}

func (g *Game) NewGame() {
	if g.fen != nil {
		g.game = chess.NewGame(g.fen)
	} else {
		g.game = chess.NewGame()
	}
	g.pending = nil
}

// Pieces returns the position as 64 piece codes from a8 to h1.
func (g *Game) Pieces() string {
	b := g.game.Position().Board()
	out := make([]byte, 64)
	for i := range out {
		out[i] = pieceCode(b.Piece(square(i)))
	}
	return string(out)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return g.game.Position().String()
}

func (g *Game) WhiteToMove() bool {
	return g.game.Position().Turn() == chess.White
}

// TryMove plays from -> to if it is legal. A pawn reaching the last rank only
// asks for a promotion choice; the move is played by Promote.
func (g *Game) TryMove(from, to int) bool {
	if err := g.checkPlayable(); err != nil {
		g.fail(err.Error())
		return false
	}
	if !inRange(from) || !inRange(to) {
		g.fail("invalid move: squares must be between 0 and 63")
		return false
	}

	s1, s2 := square(from), square(to)
	var matches []*chess.Move
	for _, m := range g.game.ValidMoves() {
		if m.S1() == s1 && m.S2() == s2 {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		g.fail(fmt.Sprintf("illegal move %s%s", s1, s2))
		return false
	}

	if matches[0].Promo() != chess.NoPieceType {
		g.pending = matches
		g.log.Debug().Stringer("from", s1).Stringer("to", s2).Msg("promotion pending")
		g.onPromotion()
		return true
	}
	return g.apply(matches[0])
}

// Promote plays the pending promotion with the chosen piece.
func (g *Game) Promote(choice board.Promotion) {
	if g.pending == nil {
		g.fail(ErrNoPromotion.Error())
		return
	}
	want := pieceType(choice)
	for _, m := range g.pending {
		if m.Promo() == want {
			g.pending = nil
			g.apply(m)
			return
		}
	}
	g.fail(fmt.Sprintf("invalid promotion %s", choice))
}

// CanMove reports whether the piece on square belongs to the side to move and
// has at least one legal move.
func (g *Game) CanMove(sq int) bool {
	if !inRange(sq) || g.checkPlayable() != nil {
		return false
	}
	s := square(sq)
	p := g.game.Position().Board().Piece(s)
	if p == chess.NoPiece || p.Color() != g.game.Position().Turn() {
		return false
	}
	for _, m := range g.game.ValidMoves() {
		if m.S1() == s {
			return true
		}
	}
	return false
}

func (g *Game) OnError(f func(string))      { g.onError = f }
func (g *Game) OnMoveLogged(f func(string)) { g.onMove = f }
func (g *Game) OnPromotion(f func())        { g.onPromotion = f }
func (g *Game) OnVictory(f func())          { g.onVictory = f }
func (g *Game) OnStalemate(f func())        { g.onStalemate = f }

func (g *Game) checkPlayable() error {
	if g.pending != nil {
		return ErrPromotionPending
	}
	if g.game.Outcome() != chess.NoOutcome {
		return ErrGameOver
	}
	return nil
}

func (g *Game) apply(m *chess.Move) bool {
	san := chess.AlgebraicNotation{}.Encode(g.game.Position(), m)
	if err := g.game.Move(m); err != nil {
		g.fail(err.Error())
		return false
	}
	san += g.finish()
	g.log.Debug().Str("move", san).Msg("move played")
	g.onMove(san)
	return true
}

// finish fires the game end hooks and returns the result suffix of the last
// move.
func (g *Game) finish() string {
	switch g.game.Outcome() {
	case chess.WhiteWon:
		g.onVictory()
		return " 1-0"
	case chess.BlackWon:
		g.onVictory()
		return " 0-1"
	case chess.Draw:
		g.log.Debug().Stringer("method", g.game.Method()).Msg("draw")
		g.onStalemate()
		return " ½–½"
	}
	return ""
}

func (g *Game) fail(msg string) {
	g.log.Debug().Str("error", msg).Msg("move refused")
	g.onError(msg)
}

func inRange(sq int) bool {
	return sq >= 0 && sq < 64
}

// square converts a board index, row-major from a8, to a chess square.
func square(i int) chess.Square {
	return chess.Square((7-i/8)*8 + i%8)
}

func pieceCode(p chess.Piece) byte {
	var c byte
	switch p.Type() {
	case chess.King:
		c = 'k'
	case chess.Queen:
		c = 'q'
	case chess.Rook:
		c = 'r'
	case chess.Bishop:
		c = 'b'
	case chess.Knight:
		c = 'n'
	case chess.Pawn:
		c = 'p'
	default:
		return '.'
	}
	if p.Color() == chess.White {
		c -= 'a' - 'A'
	}
	return c
}

func pieceType(p board.Promotion) chess.PieceType {
	switch p {
	case board.Rook:
		return chess.Rook
	case board.Bishop:
		return chess.Bishop
	case board.Knight:
		return chess.Knight
	default:
		return chess.Queen
	}
}
