package commands

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"ciphertoy/internal/progress"
)

const progressInterval = 100 * time.Millisecond

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// progressLine redraws a tracker on one terminal line until stopped.
type progressLine struct {
	tr   *progress.Tracker
	out  io.Writer
	stop chan struct{}
	wg   sync.WaitGroup
}

// startProgress renders tr on stderr when stderr is a terminal. It returns
// nil otherwise; a nil progressLine is safe to stop.
func startProgress(tr *progress.Tracker) *progressLine {
	if !isTerminal(os.Stderr) {
		return nil
	}
	p := &progressLine{tr: tr, out: os.Stderr, stop: make(chan struct{})}
	p.wg.Add(1)
	go p.loop()
	return p
}

func (p *progressLine) loop() {
	defer p.wg.Done()
	t := time.NewTicker(progressInterval)
	defer t.Stop()
	for {
		select {
		case <-p.stop:
			p.draw()
			fmt.Fprintln(p.out)
			return
		case <-t.C:
			p.draw()
		}
	}
}

func (p *progressLine) draw() {
	fmt.Fprintf(p.out, "\r\033[K[%5.1f%%] %s", p.tr.Percent(), p.tr.Status())
}

func (p *progressLine) Stop() {
	if p == nil {
		return
	}
	close(p.stop)
	p.wg.Wait()
}
