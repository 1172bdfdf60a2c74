package progress_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"ciphertoy/internal/progress"
)

func TestTracker_ConcurrentDeltasReachFull(t *testing.T) {
	var tr progress.Tracker
	const n = 7 * 13
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.ReportProgress(progress.Full / n)
		}()
	}
	wg.Wait()
	assert.Equal(t, progress.Full, tr.Degrees())
	assert.Equal(t, 100.0, tr.Percent())
}

func TestTracker_ClampsAndIgnoresNegative(t *testing.T) {
	var tr progress.Tracker
	tr.ReportProgress(300)
	tr.ReportProgress(-50)
	assert.Equal(t, 300.0, tr.Degrees())
	tr.ReportProgress(100)
	assert.Equal(t, progress.Full, tr.Degrees())
}

func TestTracker_StatusAndReset(t *testing.T) {
	var tr progress.Tracker
	tr.ReportStatus("Checking caesar ciphers...")
	tr.ReportProgress(10)
	assert.Equal(t, "Checking caesar ciphers...", tr.Status())
	tr.Reset()
	assert.Zero(t, tr.Degrees())
	assert.Empty(t, tr.Status())
}
