// Package worker drives a fixed-rate simulation loop for hosts that do not
// own one already.
package worker

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/vantage-gg/stride/assert"
	"go.uber.org/atomic"
)

// Runner invokes a tick function at a fixed rate on its own goroutine. The
// tick function receives the nominal delta in seconds.
type Runner struct {
	interval time.Duration
	fn       func(dt float32)
	stop     chan struct{}
	done     chan struct{}

	started atomic.Bool
	stopped atomic.Bool
}

// NewRunner returns a runner ticking fn at the given rate in Hz.
func NewRunner(hz int, fn func(dt float32)) *Runner {
	assert.IsTrue(hz > 0, "runner rate must be positive, got %d", hz)
	return &Runner{
		interval: time.Second / time.Duration(hz),
		fn:       fn,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins ticking until Stop is called. Further Start calls are no-ops.
func (r *Runner) Start() {
	if !r.started.CompareAndSwap(false, true) {
		return
	}
	go r.run()
}

func (r *Runner) run() {
	defer sentry.Recover()
	defer close(r.done)

	dt := float32(r.interval.Seconds())
	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-t.C:
			r.fn(dt)
		}
	}
}

// Stop halts the runner and waits for the loop goroutine to exit. It is safe
// to call more than once and before Start.
func (r *Runner) Stop() {
	if !r.stopped.CompareAndSwap(false, true) {
		return
	}
	close(r.stop)
	if r.started.Load() {
		<-r.done
	}
}
