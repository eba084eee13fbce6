package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/qnkhuat/chessboard/pkg/assets"
	"github.com/qnkhuat/chessboard/pkg/config"
	"github.com/qnkhuat/chessboard/pkg/engine"
	"github.com/qnkhuat/chessboard/pkg/gui"
	"github.com/qnkhuat/chessboard/pkg/logging"
	"github.com/qnkhuat/chessboard/pkg/movelog"
	"github.com/qnkhuat/chessboard/pkg/svg"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "chessboard needs an interactive terminal")
		os.Exit(1)
	}

	log, closer, err := logging.Init(cfg.LogPath, "client", cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	err = run(cfg, log)
	closer.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log zerolog.Logger) error {
	theme, err := gui.ImportThemes(cfg.Theme, cfg.Themes)
	if err != nil {
		return err
	}

	opts := []engine.Option{engine.WithLogger(log.With().Str("component", "engine").Logger())}
	if cfg.FEN != "" {
		opts = append(opts, engine.StartFEN(cfg.FEN))
	}
	game, err := engine.New(opts...)
	if err != nil {
		return err
	}

	var loader assets.Loader = assets.GlyphLoader{}
	if cfg.Assets != "" {
		loader = assets.FSLoader{FS: os.DirFS(cfg.Assets)}
	}

	app := tview.NewApplication()
	reg := assets.NewRegistry(loader,
		assets.WithDispatch(func(f func()) { app.QueueUpdateDraw(f) }),
		assets.WithLogger(log.With().Str("component", "assets").Logger()))

	var (
		a       *gui.App
		appOpts = []gui.AppOption{gui.WithAppLogger(log)}
	)
	if cfg.SVG != "" {
		snap := svg.NewSnapshot()
		appOpts = append(appOpts,
			gui.WithMirror(snap.Layers()),
			gui.WithAfterMove(func() {
				if err := snap.WriteFile(cfg.SVG, a.Board().Dialogs()); err != nil {
					log.Warn().Err(err).Msg("svg snapshot not written")
				}
			}))
	}
	a = gui.NewApp(app, game, reg, theme, appOpts...)
	a.NewGame(cfg.Black)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reg.Start(ctx)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		a.Stop()
	}()

	log.Info().Str("theme", theme.Name).Msg("new client")
	if err := a.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return movelog.Transcript(os.Stdout, a.Label(), a.Moves())
}
