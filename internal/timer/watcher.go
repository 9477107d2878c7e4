// Package timer implements the background progress watcher that reports
// how far along the running dispense job is.
package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

// Option configures the watcher.
type Option func(*Watcher)

// WithInterval sets how often the watcher checks job progress.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.interval = d
	}
}

// WithClock replaces the time source used for remaining-time estimates.
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) {
		w.now = now
	}
}

// Watcher periodically reads active job snapshots from the store and sends
// a progress line for each running job. It never touches the bank and has
// no influence on the sequencer's timing.
type Watcher struct {
	store    domain.JobStore
	notifier domain.Notifier
	log      *logger.Logger
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
	lastSent map[string]string // job ID -> last message
}

// New creates a progress watcher with the given dependencies and options.
func New(store domain.JobStore, notifier domain.Notifier, log *logger.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		store:    store,
		notifier: notifier,
		log:      log.Named("watcher"),
		interval: 1 * time.Second,
		now:      time.Now,
		lastSent: make(map[string]string),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins the background loop. Non-blocking.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		w.log.Warn("progress watcher already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})
	w.running = true

	go w.loop(childCtx, w.done)

	w.log.Info("progress watcher started (interval=%s)", w.interval)
}

// Stop shuts the loop down and waits for it to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.running = false
	done := w.done
	w.mu.Unlock()

	<-done
	w.log.Info("progress watcher stopped")
}

func (w *Watcher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

// check runs one cycle across all active jobs.
func (w *Watcher) check(ctx context.Context) {
	jobs, err := w.store.ListActive(ctx)
	if err != nil {
		w.log.Error("listing active jobs: %v", err)
		return
	}

	seen := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		seen[job.ID] = true
		if job.State != domain.JobRunning {
			continue
		}

		msg := ProgressMessage(job, w.now())
		if w.lastSent[job.ID] == msg {
			continue
		}
		w.lastSent[job.ID] = msg

		if err := w.notifier.Notify(ctx, msg); err != nil {
			w.log.Error("progress notify: %v", err)
		}
	}

	for id := range w.lastSent {
		if !seen[id] {
			delete(w.lastSent, id)
		}
	}
}

// ProgressMessage describes where a running job is and how long is left.
func ProgressMessage(job *domain.Job, now time.Time) string {
	return fmt.Sprintf("[Progress] %s x%d: %s, %s left",
		job.Recipe.Name, job.Quantity, job.Phase, FormatRemaining(job.Remaining(now)))
}

// FormatRemaining renders a short human duration: tenths of a second under
// ten seconds, whole seconds under a minute, minutes and seconds above.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < 10*time.Second {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}
