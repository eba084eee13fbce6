package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chessboard.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("chessboard", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "basic" || cfg.LogPath != "./chessboard.log" || cfg.Black || cfg.SVG != "" {
		t.Errorf("defaults %+v", cfg)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("chessboard", []string{"-theme", "green", "-black", "-debug", "-svg", "out.svg", "-log", "x.log"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "green" || !cfg.Black || !cfg.Debug || cfg.SVG != "out.svg" || cfg.LogPath != "x.log" {
		t.Errorf("parsed %+v", cfg)
	}
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `{
		"theme": "mine",
		"assets": "/usr/share/chess",
		"themes": [{"name": "mine", "squareLight": "#ffffff"}]
	}`)

	cfg, err := Parse("chessboard", []string{"-config", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "mine" || cfg.Assets != "/usr/share/chess" || cfg.LogPath != "./chessboard.log" {
		t.Errorf("loaded %+v", cfg)
	}
	if len(cfg.Themes) != 1 || cfg.Themes[0].SquareLight != "#ffffff" {
		t.Errorf("themes %+v", cfg.Themes)
	}

	cfg, err = Parse("chessboard", []string{"-theme", "green", "-config", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "green" || cfg.Assets != "/usr/share/chess" {
		t.Errorf("flag did not override file: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("chessboard", []string{"-config", filepath.Join(t.TempDir(), "none.json")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := Parse("chessboard", []string{"-config", writeConfig(t, "{")}); err == nil {
		t.Errorf("broken file accepted")
	}
	if _, err := Parse("chessboard", []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("help: %v", err)
	}
}
