package interfaces

import (
	"context"

	domaintypes "ciphertoy/internal/domain/types"
)

// Scorer rates how plausibly a string is English. Higher is better.
type Scorer interface {
	Score(text string) float64
}

// ProgressReporter receives progress from a running brute-force sweep.
//
// ReportProgress adds delta degrees to an arc in [0, 360]. Implementations must
// be safe for concurrent use.
type ProgressReporter interface {
	ReportProgress(delta float64)
	ReportStatus(status string)
}

// ResultSink receives the ranked output of a brute-force run.
type ResultSink interface {
	WriteResults(top, all []domaintypes.Candidate) error
}

// DictionarySource supplies candidate keys for dictionary sweeps.
//
// A limit of zero or less means no limit.
type DictionarySource interface {
	LoadKeys(ctx context.Context, limit int) ([]string, error)
}
