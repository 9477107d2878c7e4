// Package engine implements the dispense sequencer: it turns a recipe into
// pump run times and drives the actuator bank through one pour.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hammamikhairi/ottobar/internal/actuator"
	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithReporter sets the sink for job lifecycle events.
func WithReporter(r domain.Reporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// WithSleep replaces the blocking wait used between pump transitions.
func WithSleep(fn func(time.Duration)) Option {
	return func(e *Engine) {
		e.sleep = fn
	}
}

// WithClock replaces the time source used for job timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine owns the actuator bank for the duration of a job. Only one job
// runs at a time; orders placed while a job is running are rejected.
type Engine struct {
	recipes  domain.RecipeSource
	bank     *actuator.Bank
	store    domain.JobStore
	reporter domain.Reporter
	log      *logger.Logger
	sleep    func(time.Duration)
	now      func() time.Time

	mu    sync.Mutex // held for the whole job
	phase atomic.Int32
}

// New creates a dispense engine with the given dependencies and options.
// The bank must already be initialized.
func New(recipes domain.RecipeSource, bank *actuator.Bank, store domain.JobStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		recipes:  recipes,
		bank:     bank,
		store:    store,
		reporter: nopReporter{},
		log:      log.Named("engine"),
		sleep:    time.Sleep,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Phase returns where the sequencer currently is.
func (e *Engine) Phase() domain.Phase {
	return domain.Phase(e.phase.Load())
}

// Plan validates an order and builds its job without touching the bank.
func (e *Engine) Plan(ctx context.Context, recipeName string, quantity int) (*domain.Job, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("ordering %d x %q: %w", quantity, recipeName, domain.ErrInvalidQuantity)
	}

	recipe, err := e.recipes.Get(ctx, recipeName)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	return &domain.Job{
		ID:          generateID(),
		Recipe:      recipe,
		Quantity:    quantity,
		Assignments: Assign(recipe),
		State:       domain.JobPending,
		Phase:       domain.PhaseIdle,
	}, nil
}

// PlaceOrder pours quantity x recipeName and blocks until the last pump is
// off. It cannot be cancelled once started; ctx is only handed to the
// reporter. On a hardware fault every pump is forced off before the error
// is returned, together with the failed job.
func (e *Engine) PlaceOrder(ctx context.Context, recipeName string, quantity int) (*domain.Job, error) {
	job, err := e.Plan(ctx, recipeName, quantity)
	if err != nil {
		return nil, err
	}

	if !e.mu.TryLock() {
		return nil, domain.ErrBusy
	}
	defer e.mu.Unlock()

	if err := e.run(ctx, job); err != nil {
		return job, err
	}
	return job, nil
}

// run drives one job through starting, draining and stopping.
func (e *Engine) run(ctx context.Context, job *domain.Job) error {
	defer func() {
		if r := recover(); r != nil {
			if err := e.bank.ShutdownAll(); err != nil {
				e.log.Error("job %s: shutdown after panic: %v", job.ID, err)
			}
			e.phase.Store(int32(domain.PhaseIdle))
			panic(r)
		}
	}()

	job.State = domain.JobRunning
	job.StartedAt = e.now()
	e.enter(ctx, job, domain.PhaseStarting)

	e.log.Info("preparing %d x %s (job %s, %d pumps, ~%s)",
		job.Quantity, job.Recipe.Name, job.ID, len(job.Assignments), job.EstimatedTotal())
	if job.Quantity > 1 {
		e.log.Warn("job %s: quantity %d repeats the pump start pass only, each volume is poured once",
			job.ID, job.Quantity)
	}
	e.reporter.OnJobStarted(ctx, job.Clone())

	// Every pass re-asserts ON for every pump; run times are not scaled.
	for pass := 0; pass < job.Quantity; pass++ {
		for _, a := range job.Assignments {
			if err := e.bank.SetState(a.Actuator, actuator.On); err != nil {
				return e.abort(ctx, job, err)
			}
		}
	}

	e.enter(ctx, job, domain.PhaseDraining)
	e.sleep(job.Longest())

	// Shut off in recipe order, each followed by its own run time.
	e.enter(ctx, job, domain.PhaseStopping)
	for _, a := range job.Assignments {
		if err := e.bank.SetState(a.Actuator, actuator.Off); err != nil {
			return e.abort(ctx, job, err)
		}
		e.log.Debug("job %s: pump %d (%s) off, waiting %s", job.ID, a.Actuator, a.Ingredient, a.Duration)
		e.sleep(a.Duration)
	}

	job.State = domain.JobComplete
	job.CompletedAt = e.now()
	e.finish(ctx, job)

	e.log.Info("job %s complete: %d x %s in %s",
		job.ID, job.Quantity, job.Recipe.Name, job.CompletedAt.Sub(job.StartedAt).Round(time.Millisecond))
	e.reporter.OnJobComplete(ctx, job.Clone())
	return nil
}

// abort forces every pump off and reports the failure. There is no retry:
// toggling a relay blind after a fault is unsafe.
func (e *Engine) abort(ctx context.Context, job *domain.Job, cause error) error {
	err := fmt.Errorf("dispensing %s: %w", job.Recipe.Name, cause)
	if shutdownErr := e.bank.ShutdownAll(); shutdownErr != nil {
		err = errors.Join(err, shutdownErr)
	}

	job.State = domain.JobFailed
	job.Err = err
	job.CompletedAt = e.now()
	e.finish(ctx, job)

	e.log.Error("job %s aborted: %v", job.ID, err)
	e.reporter.OnJobFailed(ctx, job.Clone(), err)
	return err
}

// enter moves the job to phase p and publishes a snapshot.
func (e *Engine) enter(ctx context.Context, job *domain.Job, p domain.Phase) {
	job.Phase = p
	job.PhaseStartedAt = e.now()
	e.phase.Store(int32(p))
	if err := e.store.Save(ctx, job.Clone()); err != nil {
		e.log.Error("saving job %s: %v", job.ID, err)
	}
	e.log.Debug("job %s: %s", job.ID, p)
}

// finish returns the sequencer to idle and drops the job snapshot.
func (e *Engine) finish(ctx context.Context, job *domain.Job) {
	job.Phase = domain.PhaseIdle
	job.PhaseStartedAt = job.CompletedAt
	e.phase.Store(int32(domain.PhaseIdle))
	if err := e.store.Delete(ctx, job.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		e.log.Error("deleting job %s: %v", job.ID, err)
	}
}

type nopReporter struct{}

func (nopReporter) OnJobStarted(context.Context, *domain.Job)       {}
func (nopReporter) OnJobComplete(context.Context, *domain.Job)      {}
func (nopReporter) OnJobFailed(context.Context, *domain.Job, error) {}
