package svg

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/chessboard/pkg/assets"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/engine"
)

type fixedContainer int

func (c fixedContainer) ClientSize() (int, int) { return int(c), int(c) }
func (fixedContainer) Origin() (int, int)       { return 0, 0 }

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestLayerRecords(t *testing.T) {
	l := NewLayer()
	l.Resize(8, 8)
	l.FillRect(0, 0, 1, 1, colorful.Color{R: 1})
	l.FillRect(1, 0, 1, 1, colorful.Color{G: 1})
	l.DrawImage(&assets.Image{Piece: 'K'}, 0, 0, 1, 1)
	l.DrawImage(nil, 0, 0, 1, 1)
	if l.Len() != 3 {
		t.Fatalf("recorded %d ops", l.Len())
	}

	l.ClearRect(0, 0, 1, 1)
	if l.Len() != 1 || l.ops[0].x != 1 {
		t.Errorf("clear kept %+v", l.ops)
	}
	l.ClearRect(0, 0, 8, 8)
	if l.Len() != 0 {
		t.Errorf("full clear kept %d ops", l.Len())
	}

	l.FillRect(0, 0, 8, 8, colorful.Color{})
	l.ClearRect(0, 0, 4, 4)
	if l.Len() != 1 {
		t.Errorf("partially covered fill dropped")
	}
	l.Resize(16, 16)
	if w, h := l.Size(); l.Len() != 0 || w != 16 || h != 16 {
		t.Errorf("resize kept %d ops, size %dx%d", l.Len(), w, h)
	}
}

func TestEncode(t *testing.T) {
	bg := NewLayer()
	bg.FillRect(0, 0, 1, 1, colorful.Color{R: 1})
	pieces := NewLayer()
	pieces.DrawImage(&assets.Image{Piece: 'K', Data: []byte("<svg/>")}, 1, 1, 1, 1)

	hidden := &board.Dialog{Text: "White Victory!"}
	shown := &board.Dialog{Text: "Stalemate...", Icons: []rune{'K', 'k'}, Visible: true, Width: 4, Height: 2}

	var buf bytes.Buffer
	if err := Encode(&buf, 8, []*Layer{bg, pieces}, []*board.Dialog{hidden, shown}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`width="128"`,
		`<g id="background">`,
		`<g id="pieces">`,
		`<g id="dialogs">`,
		"fill:#ff0000",
		(&assets.Image{Data: []byte("<svg/>")}).DataURI(),
		"Stalemate...",
		"♚♚",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "White Victory!") {
		t.Errorf("hidden dialog encoded")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Errorf("document not closed")
	}
}

func TestEncodeWriteError(t *testing.T) {
	err := Encode(failingWriter{}, 8, []*Layer{NewLayer()}, nil)
	if err == nil || err.Error() != "disk full" {
		t.Errorf("err %v", err)
	}
}

func TestSnapshotFollowsBoard(t *testing.T) {
	reg := assets.NewRegistry(assets.GlyphLoader{})
	if err := reg.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	e, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}
	snap := NewSnapshot()
	b := board.New(fixedContainer(16), e, reg, snap.Layers(), nil)

	if w, _ := snap.Pieces.Size(); w != 16 {
		t.Fatalf("snapshot size %d", w)
	}
	if snap.Background.Len() != 64 || snap.Pieces.Len() != 32 {
		t.Fatalf("background %d ops, pieces %d ops", snap.Background.Len(), snap.Pieces.Len())
	}

	// e2e4 through the board gestures.
	b.PointerDown(9, 13)
	b.PointerMove(9, 9)
	b.PointerUp(9, 9)
	if snap.Pieces.Len() != 32 || snap.Drag.Len() != 0 {
		t.Errorf("after move: pieces %d ops, drag %d ops", snap.Pieces.Len(), snap.Drag.Len())
	}

	path := filepath.Join(t.TempDir(), "board.svg")
	if err := snap.WriteFile(path, b.Dialogs()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "<image"); got != 32 {
		t.Errorf("%d images in snapshot", got)
	}
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "board.svg")
	if err := NewSnapshot().WriteFile(path, nil); err == nil {
		t.Errorf("expected an error")
	}
}
