// Package progress holds the shared progress arc and status line of a
// brute-force run.
package progress

import (
	"sync"

	"ciphertoy/internal/domain"
)

// Full is the arc value of a finished run, in degrees.
const Full = 360.0

// snap absorbs float drift when the deltas of a run sum to Full.
const snap = 1e-6

// Tracker is a mutex-guarded progress arc in [0, Full] plus a status string.
// The arc only grows until Reset. The zero value is ready to use.
type Tracker struct {
	mu      sync.Mutex
	degrees float64
	status  string
}

// ReportProgress adds delta degrees. Negative deltas are ignored.
func (t *Tracker) ReportProgress(delta float64) {
	if delta <= 0 {
		return
	}
	t.mu.Lock()
	t.degrees += delta
	if t.degrees > Full-snap {
		t.degrees = Full
	}
	t.mu.Unlock()
}

// ReportStatus replaces the status string.
func (t *Tracker) ReportStatus(status string) {
	t.mu.Lock()
	t.status = status
	t.mu.Unlock()
}

// Degrees returns the current arc.
func (t *Tracker) Degrees() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.degrees
}

// Percent returns the current arc as a percentage.
func (t *Tracker) Percent() float64 { return t.Degrees() / Full * 100 }

// Status returns the current status string.
func (t *Tracker) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Reset clears the arc and status for a new run.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.degrees, t.status = 0, ""
	t.mu.Unlock()
}

var _ domain.ProgressReporter = (*Tracker)(nil)
