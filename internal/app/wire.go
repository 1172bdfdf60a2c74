package app

import (
	"context"

	"go.uber.org/zap"

	"ciphertoy/internal/domain"
	"ciphertoy/internal/score"
	"ciphertoy/internal/services/bruteforce"
	"ciphertoy/internal/store"
)

// Wire bundles the stores and services the CLI uses.
type Wire struct {
	Scorer     domain.Scorer
	Dictionary *store.FileDictionary
	Sink       *store.FileSink // nil when results are not written
	Bruteforce *bruteforce.Service

	// WordlistErr records why the configured wordlist could not be read.
	// The scorer then falls back to the embedded list.
	WordlistErr error
}

// NewWire constructs the dependency graph from cfg.
func NewWire(ctx context.Context, cfg Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	wl, wlErr := store.LoadWordlist(ctx, cfg.Wordlist)
	if wlErr != nil {
		if ctx.Err() != nil {
			return nil, wlErr
		}
		log.Warn("wordlist unavailable, using embedded list",
			zap.String("path", cfg.Wordlist), zap.Error(wlErr))
		wl = score.DefaultWordlist()
	}
	scorer := score.New(wl)
	log.Debug("wordlist loaded", zap.String("path", cfg.Wordlist), zap.Int("words", wl.Len()))

	dict := store.NewFileDictionary(cfg.Dictionary)

	// A typed nil sink must not reach the service as a non-nil interface.
	var sink domain.ResultSink
	var fileSink *store.FileSink
	if cfg.Results != "" {
		fileSink = store.NewFileSink(cfg.Results)
		sink = fileSink
	}

	svc := bruteforce.New(scorer, dict, sink, log, bruteforce.Config{
		Workers:   cfg.Workers,
		ChunkSize: cfg.ChunkSize,
		Top:       cfg.Top,
	})

	return &Wire{
		Scorer:     scorer,
		Dictionary: dict,
		Sink:       fileSink,
		Bruteforce: svc,

		WordlistErr: wlErr,
	}, nil
}
