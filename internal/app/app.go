package app

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// App is the per-invocation context shared by CLI commands. The dependency
// graph is built on first use so commands that only run a cipher never read
// the word list.
type App struct {
	Config Config
	Log    *zap.Logger

	once sync.Once
	wire *Wire
	err  error
}

func New(cfg Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{Config: cfg, Log: log}
}

// Wire returns the dependency graph for the current Config. Changes to Config
// after the first call have no effect.
func (a *App) Wire(ctx context.Context) (*Wire, error) {
	a.once.Do(func() {
		a.wire, a.err = NewWire(ctx, a.Config, a.Log)
	})
	return a.wire, a.err
}
