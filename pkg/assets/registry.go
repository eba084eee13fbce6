// Package assets owns the piece images shared by every board.
package assets

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Drawer is anything that must repaint once images are available.
type Drawer interface {
	DrawAll()
}

// Registry loads the piece images once and tells registered boards when they
// are ready. Boards registered after readiness draw immediately.
type Registry struct {
	loader   Loader
	dispatch func(func())
	log      zerolog.Logger

	mu      sync.Mutex
	images  map[rune]*Image
	ready   bool
	readyCh chan struct{}
	pending []Drawer
	queued  map[Drawer]bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithDispatch sets the function used to run ready notifications. GUIs pass a
// function that queues the callback onto their event loop.
func WithDispatch(dispatch func(func())) Option {
	return func(r *Registry) {
		r.dispatch = dispatch
	}
}

// WithLogger sets the registry logger.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

func NewRegistry(loader Loader, opts ...Option) *Registry {
	r := &Registry{
		loader:   loader,
		dispatch: func(f func()) { f() },
		log:      zerolog.Nop(),
		images:   make(map[rune]*Image),
		readyCh:  make(chan struct{}),
		queued:   make(map[Drawer]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins loading in the background.
func (r *Registry) Start(ctx context.Context) {
	go func() {
		_ = r.Load(ctx)
	}()
}

// Load loads every image and blocks until done. On failure the registry stays
// not ready and queued boards are never drawn.
func (r *Registry) Load(ctx context.Context) error {
	if r.Ready() {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	images := make([]*Image, len(Files))
	for i, f := range Files {
		i, f := i, f
		g.Go(func() error {
			im, err := r.loader.Load(gctx, f.Piece, f.Path)
			if err != nil {
				return fmt.Errorf("load %s: %w", f.Path, err)
			}
			im.Piece = f.Piece
			images[i] = im
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.log.Error().Err(err).Msg("piece images not loaded")
		return err
	}

	r.mu.Lock()
	if r.ready {
		r.mu.Unlock()
		return nil
	}
	for _, im := range images {
		r.images[im.Piece] = im
	}
	r.ready = true
	pending := r.pending
	r.pending = nil
	r.queued = nil
	close(r.readyCh)
	r.mu.Unlock()

	r.log.Debug().Int("boards", len(pending)).Msg("piece images ready")
	r.dispatch(func() {
		for _, d := range pending {
			d.DrawAll()
		}
	})
	return nil
}

// Ready reports whether every image has loaded.
func (r *Registry) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

// Done is closed once every image has loaded.
func (r *Registry) Done() <-chan struct{} {
	return r.readyCh
}

// Register draws d now if images are ready, otherwise queues it for the ready
// notification. A drawer is queued at most once.
func (r *Registry) Register(d Drawer) {
	r.mu.Lock()
	if r.ready {
		r.mu.Unlock()
		d.DrawAll()
		return
	}
	if !r.queued[d] {
		r.queued[d] = true
		r.pending = append(r.pending, d)
	}
	r.mu.Unlock()
}

// Image returns the image of a piece code, or nil before readiness.
func (r *Registry) Image(piece rune) *Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.images[piece]
}
