package bruteforce

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"ciphertoy/internal/progress"
)

func TestChunk(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunk(keys, 2))
	assert.Equal(t, [][]string{keys}, chunk(keys, 10))
	assert.Nil(t, chunk(nil, 3))
}

func TestMeter_SumsToFull(t *testing.T) {
	tr := &progress.Tracker{}
	m := &meter{total: 7, out: tr}

	var wg sync.WaitGroup
	for range 7 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.advance(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, progress.Full, tr.Degrees())

	m.finish()
	assert.Equal(t, progress.Full, tr.Degrees())
}

func TestMeter_FinishWithoutWork(t *testing.T) {
	tr := &progress.Tracker{}
	m := &meter{out: tr}
	m.finish()
	assert.Equal(t, progress.Full, tr.Degrees())
}

func TestMeter_Partial(t *testing.T) {
	tr := &progress.Tracker{}
	m := &meter{total: 4, out: tr}
	m.advance(1)
	assert.InDelta(t, 90.0, tr.Degrees(), 1e-9)
	m.advance(10)
	assert.Equal(t, progress.Full, tr.Degrees())
}
