package bruteforce

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"ciphertoy/internal/domain"
	"ciphertoy/internal/rank"
)

const (
	// DefaultChunkSize is the number of dictionary keys per unit of work.
	DefaultChunkSize = 1000
	// DefaultLimit is the dictionary prefix tried when a request sets none.
	DefaultLimit = 10000
)

// Config tunes a Service. Zero values select defaults.
type Config struct {
	Workers   int // concurrent dictionary chunks; default GOMAXPROCS
	ChunkSize int // keys per chunk; default DefaultChunkSize
	Top       int // candidates in Result.Top; default rank.DefaultTop
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.Top <= 0 {
		c.Top = rank.DefaultTop
	}
	return c
}

// Request describes one brute-force run.
type Request struct {
	Message string
	Kinds   []domain.Kind
	// Limit caps how many dictionary keys are tried; zero selects DefaultLimit
	// and a negative value tries the whole dictionary.
	Limit int
}

// SweepError records why one cipher kind produced no candidates.
type SweepError struct {
	Kind domain.Kind
	Err  error
}

func (e *SweepError) Error() string { return fmt.Sprintf("%s sweep: %v", e.Kind, e.Err) }

func (e *SweepError) Unwrap() error { return e.Err }

// Result is the ranked output of a run.
type Result struct {
	RunID ulid.ULID
	// Top holds the best candidates; All the full ranked, deduplicated list.
	Top []domain.Candidate
	All []domain.Candidate
	// Failures lists kinds whose sweep could not run.
	Failures []*SweepError
	// Skipped counts keys rejected by a cipher (e.g. non-coprime affine
	// multipliers, empty dictionary lines).
	Skipped int
	// SinkErr is set when the result sink could not be written.
	SinkErr error
	Elapsed time.Duration
}

// Service runs brute-force searches.
type Service struct {
	scorer domain.Scorer
	dict   domain.DictionarySource
	sink   domain.ResultSink
	log    *zap.Logger
	cfg    Config
}

// New returns a Service. dict and sink may be nil: without a dictionary every
// dictionary kind fails its sweep, without a sink results are only returned.
func New(
	scorer domain.Scorer,
	dict domain.DictionarySource,
	sink domain.ResultSink,
	log *zap.Logger,
	cfg Config,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		scorer: scorer,
		dict:   dict,
		sink:   sink,
		log:    log,
		cfg:    cfg.withDefaults(),
	}
}

// Run searches every requested kind and returns the ranked candidates.
//
// Only an empty message, an empty or invalid kind set, or cancellation fail
// the whole run; per-kind problems land in Result.Failures.
func (s *Service) Run(ctx context.Context, req Request, progress domain.ProgressReporter) (*Result, error) {
	if req.Message == "" {
		return nil, domain.ErrEmptyMessage
	}
	kinds, err := uniqueKinds(req.Kinds)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = nopReporter{}
	}

	start := time.Now()
	res := &Result{RunID: ulid.Make()}
	log := s.log.With(zap.Stringer("run", res.RunID))
	log.Info("brute force started", zap.Int("kinds", len(kinds)), zap.Int("message_len", len(req.Message)))

	var bounded, keyed []domain.Kind
	for _, k := range kinds {
		if k.Strategy() == domain.StrategyDictionary {
			keyed = append(keyed, k)
		} else {
			bounded = append(bounded, k)
		}
	}

	var keys []string
	var dictErr error
	if len(keyed) > 0 {
		progress.ReportStatus("Loading password bruteforce list...")
		keys, dictErr = s.loadKeys(ctx, req.Limit)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if dictErr != nil {
			log.Warn("dictionary unavailable", zap.Error(dictErr))
		}
	}

	chunks := chunk(keys, s.cfg.ChunkSize)
	units := len(bounded)
	for range keyed {
		if dictErr != nil {
			units++
		} else {
			units += len(chunks)
		}
	}
	m := &meter{total: units, out: progress}

	var all []domain.Candidate
	fail := func(kind domain.Kind, err error) {
		log.Warn("sweep failed", zap.Stringer("cipher", kind), zap.Error(err))
		res.Failures = append(res.Failures, &SweepError{Kind: kind, Err: err})
	}

	for _, kind := range bounded {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		progress.ReportStatus(fmt.Sprintf("Checking %s cipher...", kind))
		cands, skipped, err := s.sweepBounded(ctx, kind, req.Message)
		m.advance(1)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			fail(kind, err)
			continue
		}
		res.Skipped += skipped
		all = append(all, cands...)
		log.Debug("sweep done", zap.Stringer("cipher", kind), zap.Int("candidates", len(cands)))
	}

	for _, kind := range keyed {
		if dictErr != nil {
			m.advance(1)
			fail(kind, dictErr)
			continue
		}
		progress.ReportStatus(fmt.Sprintf("Checking %s cipher...", kind))
		cands, skipped, err := s.sweepDictionary(ctx, kind, req.Message, chunks, m)
		if err != nil {
			return nil, err
		}
		progress.ReportStatus("Collecting and joining results...")
		res.Skipped += skipped
		all = append(all, cands...)
		log.Debug("sweep done", zap.Stringer("cipher", kind),
			zap.Int("keys", len(keys)), zap.Int("candidates", len(cands)), zap.Int("skipped", skipped))
	}

	progress.ReportStatus("Sorting results...")
	res.All = rank.Rank(all)
	res.Top = rank.Top(res.All, s.cfg.Top)

	if s.sink != nil {
		if err := s.sink.WriteResults(res.Top, res.All); err != nil {
			res.SinkErr = err
			log.Warn("write results failed", zap.Error(err))
		}
	}

	m.finish()
	res.Elapsed = time.Since(start)
	progress.ReportStatus("Finished")
	log.Info("brute force finished",
		zap.Int("candidates", len(res.All)),
		zap.Int("failures", len(res.Failures)),
		zap.Int("skipped", res.Skipped),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

func (s *Service) loadKeys(ctx context.Context, limit int) ([]string, error) {
	if s.dict == nil {
		return nil, fmt.Errorf("%w: no dictionary configured", domain.ErrMissingResource)
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 0:
		limit = 0
	}
	keys, err := s.dict.LoadKeys(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: dictionary is empty", domain.ErrMissingResource)
	}
	return keys, nil
}

func uniqueKinds(kinds []domain.Kind) ([]domain.Kind, error) {
	if len(kinds) == 0 {
		return nil, errors.New("no cipher kinds selected")
	}
	seen := make(map[domain.Kind]bool, len(kinds))
	out := make([]domain.Kind, 0, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("unknown cipher kind %d", int(k))
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out, nil
}

// FormatReport renders a result the way the CLI prints it: elapsed time,
// then the top candidates.
func FormatReport(res *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Finished! Total time elapsed: %.2f seconds\n\n", res.Elapsed.Seconds())
	b.WriteString("Most likely results:\n")
	b.WriteString(rank.Report(res.Top))
	return b.String()
}

type nopReporter struct{}

func (nopReporter) ReportProgress(float64) {}
func (nopReporter) ReportStatus(string)    {}
