package bruteforce

import (
	"sync"

	"ciphertoy/internal/domain"
	"ciphertoy/internal/progress"
)

// meter converts completed units of work into progress deltas so that a run
// reports exactly progress.Full degrees in total.
type meter struct {
	mu       sync.Mutex
	total    int
	done     int
	reported float64
	out      domain.ProgressReporter
}

func (m *meter) advance(units int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done = min(m.done+units, m.total)
	m.flush()
}

func (m *meter) finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done = m.total
	m.flush()
}

// flush reports the growth since the last report. Callers hold mu, which keeps
// deltas ordered; the reporter only performs a short scalar update.
func (m *meter) flush() {
	target := progress.Full
	if m.total > 0 {
		target = progress.Full * float64(m.done) / float64(m.total)
	}
	if d := target - m.reported; d > 0 {
		m.reported = target
		m.out.ReportProgress(d)
	}
}
