package gui

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/qnkhuat/chessboard/pkg/assets"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/movelog"
)

// App is the terminal chess board: the board on the left, the game status,
// new game buttons and move log on the right.
type App struct {
	App    *tview.Application
	Layout *tview.Flex

	view    *BoardView
	board   *board.Board
	engine  board.Engine
	logger  *movelog.Logger
	logView *LogView
	status  *tview.TextView
	theme   Theme
	log     zerolog.Logger

	gameID    uuid.UUID
	label     string
	reversed  bool
	lastError string
	afterMove []func()
	moved     bool
}

type AppOption func(*appConfig)

type appConfig struct {
	log       zerolog.Logger
	mirror    *board.Layers
	afterMove []func()
}

func WithAppLogger(log zerolog.Logger) AppOption {
	return func(c *appConfig) {
		c.log = log
	}
}

// WithMirror repeats every board drawing call on the given layers.
func WithMirror(layers board.Layers) AppOption {
	return func(c *appConfig) {
		c.mirror = &layers
	}
}

// WithAfterMove adds a function called once the board shows a newly logged
// move.
func WithAfterMove(f func()) AppOption {
	return func(c *appConfig) {
		c.afterMove = append(c.afterMove, f)
	}
}

func NewApp(app *tview.Application, e board.Engine, reg *assets.Registry, theme Theme, opts ...AppOption) *App {
	cfg := appConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &App{
		App:       app,
		view:      NewBoardView(theme),
		engine:    e,
		logView:   NewLogView(),
		status:    tview.NewTextView().SetDynamicColors(true),
		theme:     theme,
		log:       cfg.log,
		afterMove: cfg.afterMove,
	}
	a.logger = movelog.NewLogger(a.logView)

	layers := a.view.Layers()
	if cfg.mirror != nil {
		layers = board.Layers{
			Background: board.MultiSurface(layers.Background, cfg.mirror.Background),
			Pieces:     board.MultiSurface(layers.Pieces, cfg.mirror.Pieces),
			Drag:       board.MultiSurface(layers.Drag, cfg.mirror.Drag),
		}
	}
	a.board = board.New(a.view, e, reg, layers, a.view.Overlay(),
		board.WithPalette(theme.Palette()),
		board.WithLogger(cfg.log.With().Str("component", "board").Logger()))
	a.board.Attach()
	a.view.SetBoard(a.board)
	a.view.SetResizeFunc(a.logger.ScrollToBottom)

	e.OnError(a.handleError)
	e.OnMoveLogged(a.handleMove)

	whiteBtn := tview.NewButton("New game as White").SetSelectedFunc(func() {
		a.NewGame(false)
	})
	blackBtn := tview.NewButton("New game as Black").SetSelectedFunc(func() {
		a.NewGame(true)
	})
	buttons := tview.NewFlex().
		AddItem(whiteBtn, 0, 1, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(blackBtn, 0, 1, false)

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.status, 3, 0, false).
		AddItem(buttons, 1, 0, false).
		AddItem(a.logView, 0, 1, false)

	a.Layout = tview.NewFlex().
		AddItem(a.view, 0, 2, true).
		AddItem(side, 30, 0, false)

	app.SetMouseCapture(func(ev *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
		if a.HandleMouse(ev) {
			return nil, action
		}
		return ev, action
	})
	app.SetInputCapture(a.handleKey)
	return a
}

// NewGame starts a game with a fresh id and label. A reversed game puts the
// black pieces at the bottom.
func (a *App) NewGame(reversed bool) {
	a.gameID = uuid.New()
	a.label = petname.Generate(2, "-")
	a.reversed = reversed
	a.lastError = ""
	a.moved = false
	a.logger.Clear()
	a.board.NewGame(reversed)
	a.log.Info().
		Str("game", a.gameID.String()).
		Str("label", a.label).
		Bool("reversed", reversed).
		Msg("new game")
	a.updateStatus()
}

// HandleMouse passes a mouse event to the board view and runs the after move
// functions when the event completed a move.
func (a *App) HandleMouse(ev *tcell.EventMouse) bool {
	handled := a.view.HandleMouse(ev)
	if a.moved {
		a.moved = false
		for _, f := range a.afterMove {
			f()
		}
	}
	return handled
}

// Run shows the application until it is stopped.
func (a *App) Run() error {
	return a.App.SetRoot(a.Layout, true).EnableMouse(true).Run()
}

func (a *App) Stop() {
	a.App.Stop()
}

// Moves returns the move log lines of the current game.
func (a *App) Moves() []string {
	return a.logger.Lines()
}

// Label returns the name of the current game.
func (a *App) Label() string {
	return a.label
}

func (a *App) GameID() uuid.UUID {
	return a.gameID
}

func (a *App) Board() *board.Board {
	return a.board
}

func (a *App) View() *BoardView {
	return a.view
}

// Status returns the text of the status panel.
func (a *App) Status() string {
	return a.status.GetText(true)
}

func (a *App) handleError(msg string) {
	a.lastError = msg
	a.log.Warn().Str("game", a.gameID.String()).Msg(msg)
	a.updateStatus()
}

func (a *App) handleMove(move string) {
	a.lastError = ""
	a.logger.LogMove(move)
	a.log.Info().Str("game", a.gameID.String()).Str("move", move).Msg("move")
	a.updateStatus()
	a.moved = true
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
		a.Stop()
		return nil
	case ev.Rune() == 'w':
		a.NewGame(false)
		return nil
	case ev.Rune() == 'b':
		a.NewGame(true)
		return nil
	}
	return ev
}

func (a *App) updateStatus() {
	side := "White"
	if !a.engine.WhiteToMove() {
		side = "Black"
	}
	bottom := "White"
	if a.reversed {
		bottom = "Black"
	}
	text := fmt.Sprintf("[::b]%s[::-] (%s at the bottom)\n%s to move", a.label, bottom, side)
	if a.lastError != "" {
		text += fmt.Sprintf("\n[%s]%s[-]", colorTag(a.theme.Msg), a.lastError)
	}
	a.status.SetText(text)
}

// colorTag returns a tview color tag name for c.
func colorTag(c tcell.Color) string {
	if c.Hex() < 0 {
		return "red"
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
