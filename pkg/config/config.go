// Package config reads the chessboard settings from flags and an optional
// JSON file.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/qnkhuat/chessboard/pkg/gui"
)

// Config holds every setting of the chessboard binary. Flags override values
// read from the config file.
type Config struct {
	Theme   string         `json:"theme"`
	Themes  []gui.ThemeHex `json:"themes"`
	Assets  string         `json:"assets"`
	SVG     string         `json:"svg"`
	LogPath string         `json:"log"`
	Debug   bool           `json:"debug"`
	FEN     string         `json:"fen"`
	Black   bool           `json:"black"`
}

func Default() Config {
	return Config{
		Theme:   gui.ThemeBasic.Name,
		LogPath: "./chessboard.log",
	}
}

// Load reads a JSON config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads the command line. A -config file is loaded first so the other
// flags can override it.
func Parse(name string, args []string) (Config, error) {
	var path string
	pre := Default()
	fs := newFlagSet(name, &pre, &path)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		// Reported again by the second parse.
		path = ""
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	if err := newFlagSet(name, &cfg, &path).Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newFlagSet(name string, cfg *Config, path *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(path, "config", *path, "path to a JSON config file")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "name of the color theme")
	fs.StringVar(&cfg.Assets, "assets", cfg.Assets, "directory holding img/*.svg piece images")
	fs.StringVar(&cfg.SVG, "svg", cfg.SVG, "write an svg snapshot of the board to this file after every move")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "path to log file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug events")
	fs.StringVar(&cfg.FEN, "fen", cfg.FEN, "start position in FEN")
	fs.BoolVar(&cfg.Black, "black", cfg.Black, "play from the black side")
	return fs
}
