package engine

import (
	"strings"
	"testing"

	"github.com/qnkhuat/chessboard/pkg/board"
)

const startPosition = "rnbqkbnrpppppppp................................PPPPPPPPRNBQKBNR"

type events struct {
	errors     []string
	moves      []string
	promotions int
	victories  int
	stalemates int
}

func newGame(t *testing.T, opts ...Option) (*Game, *events) {
	t.Helper()
	g, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	ev := &events{}
	g.OnError(func(msg string) { ev.errors = append(ev.errors, msg) })
	g.OnMoveLogged(func(m string) { ev.moves = append(ev.moves, m) })
	g.OnPromotion(func() { ev.promotions++ })
	g.OnVictory(func() { ev.victories++ })
	g.OnStalemate(func() { ev.stalemates++ })
	return g, ev
}

func TestStartPosition(t *testing.T) {
	g, _ := newGame(t)
	if got := g.Pieces(); got != startPosition {
		t.Fatalf("pieces %q", got)
	}
	if !g.WhiteToMove() {
		t.Errorf("black to move at start")
	}
}

func TestCanMove(t *testing.T) {
	g, _ := newGame(t)
	tests := []struct {
		square int
		want   bool
	}{
		{52, true},  // e2 pawn
		{62, true},  // g1 knight
		{12, false}, // black pawn, white to move
		{60, false}, // boxed in king
		{36, false}, // empty
		{-1, false},
		{64, false},
	}
	for _, tt := range tests {
		if got := g.CanMove(tt.square); got != tt.want {
			t.Errorf("CanMove(%d) = %v", tt.square, got)
		}
	}
}

func TestFoolsMate(t *testing.T) {
	g, ev := newGame(t)
	moves := [][2]int{{53, 45}, {12, 28}, {54, 38}, {3, 39}}
	for _, m := range moves {
		if !g.TryMove(m[0], m[1]) {
			t.Fatalf("move %v refused: %v", m, ev.errors)
		}
	}
	want := []string{"f3", "e5", "g4", "Qh4# 0-1"}
	if strings.Join(ev.moves, ",") != strings.Join(want, ",") {
		t.Fatalf("logged %q", ev.moves)
	}
	if ev.victories != 1 || ev.stalemates != 0 {
		t.Errorf("victories %d stalemates %d", ev.victories, ev.stalemates)
	}
	if !g.WhiteToMove() {
		t.Errorf("mated side should be to move")
	}
	if g.CanMove(52) {
		t.Errorf("piece movable after the game ended")
	}
	if g.TryMove(52, 36) {
		t.Errorf("move accepted after the game ended")
	}
	if len(ev.errors) != 1 || ev.errors[0] != ErrGameOver.Error() {
		t.Errorf("errors %q", ev.errors)
	}
}

func TestIllegalMove(t *testing.T) {
	g, ev := newGame(t)
	if g.TryMove(52, 28) {
		t.Fatalf("pawn moved three squares")
	}
	if len(ev.errors) != 1 || ev.errors[0] != "illegal move e2e5" {
		t.Errorf("errors %q", ev.errors)
	}
	if len(ev.moves) != 0 || g.Pieces() != startPosition {
		t.Errorf("state changed after illegal move")
	}
	if g.TryMove(70, 0) {
		t.Errorf("out of range move accepted")
	}
}

func TestPromotion(t *testing.T) {
	g, ev := newGame(t, StartFEN("7k/P7/8/8/8/8/8/R6K w - - 0 1"))
	if !g.TryMove(8, 0) {
		t.Fatalf("promotion refused: %v", ev.errors)
	}
	if ev.promotions != 1 || len(ev.moves) != 0 {
		t.Fatalf("promotions %d moves %v", ev.promotions, ev.moves)
	}
	if g.Pieces()[8] != 'P' || !g.WhiteToMove() {
		t.Errorf("move applied before the choice")
	}
	if g.TryMove(63, 62) {
		t.Errorf("move accepted while promotion pending")
	}

	g.Promote(board.Knight)
	if p := g.Pieces(); p[0] != 'N' || p[8] != '.' {
		t.Fatalf("pieces after promotion %q", p)
	}
	if len(ev.moves) != 1 || ev.moves[0] != "a8=N" {
		t.Errorf("logged %q", ev.moves)
	}
	if g.WhiteToMove() || ev.stalemates != 0 || !g.CanMove(7) {
		t.Errorf("game did not continue after promotion")
	}

	g.Promote(board.Queen)
	if ev.errors[len(ev.errors)-1] != ErrNoPromotion.Error() {
		t.Errorf("errors %q", ev.errors)
	}
}

func TestPromotionToInsufficientMaterial(t *testing.T) {
	g, ev := newGame(t, StartFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"))
	if !g.TryMove(8, 0) {
		t.Fatalf("promotion refused: %v", ev.errors)
	}
	g.Promote(board.Knight)
	if ev.stalemates != 1 || ev.victories != 0 {
		t.Errorf("stalemates %d victories %d", ev.stalemates, ev.victories)
	}
	if len(ev.moves) != 1 || ev.moves[0] != "a8=N ½–½" {
		t.Errorf("logged %q", ev.moves)
	}
	if g.CanMove(56) || g.CanMove(63) {
		t.Errorf("pieces movable after a draw")
	}
}

func TestStalemate(t *testing.T) {
	g, ev := newGame(t, StartFEN("k7/8/1Q6/8/8/8/8/7K w - - 0 1"))
	if !g.TryMove(17, 10) {
		t.Fatalf("Qc7 refused: %v", ev.errors)
	}
	if ev.stalemates != 1 || ev.victories != 0 {
		t.Errorf("stalemates %d victories %d", ev.stalemates, ev.victories)
	}
	if len(ev.moves) != 1 || ev.moves[0] != "Qc7 ½–½" {
		t.Errorf("logged %q", ev.moves)
	}
}

func TestNewGameRestoresStart(t *testing.T) {
	fen := "8/P7/8/8/8/8/8/k6K w - - 0 1"
	g, _ := newGame(t, StartFEN(fen))
	start := g.Pieces()
	g.TryMove(63, 62)
	g.NewGame()
	if g.Pieces() != start {
		t.Errorf("new game did not restore the start position")
	}
	if g.FEN() != fen {
		t.Errorf("fen %q", g.FEN())
	}
}

func TestBadStartFEN(t *testing.T) {
	if _, err := New(StartFEN("not a fen")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSquareConversion(t *testing.T) {
	cases := map[int]string{0: "a8", 7: "h8", 52: "e2", 56: "a1", 63: "h1"}
	for i, want := range cases {
		if got := square(i).String(); got != want {
			t.Errorf("square(%d) = %s", i, got)
		}
	}
}
