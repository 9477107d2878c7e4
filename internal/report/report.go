// Package report turns dispense job lifecycle events into operator
// messages and fans them out to every attached sink.
package report

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Reporter = (*NotifierReporter)(nil)
	_ domain.Reporter = Multi(nil)
)

// NotifierReporter forwards lifecycle events to a Notifier as text.
type NotifierReporter struct {
	notifier domain.Notifier
	log      *logger.Logger
}

// NewNotifierReporter creates a reporter that writes through notifier.
func NewNotifierReporter(notifier domain.Notifier, log *logger.Logger) *NotifierReporter {
	return &NotifierReporter{notifier: notifier, log: log.Named("report")}
}

// OnJobStarted announces the pour.
func (r *NotifierReporter) OnJobStarted(ctx context.Context, job *domain.Job) {
	r.send(ctx, false, StartedMessage(job))
}

// OnJobComplete announces that the drinks are ready.
func (r *NotifierReporter) OnJobComplete(ctx context.Context, job *domain.Job) {
	r.send(ctx, false, CompleteMessage(job))
}

// OnJobFailed raises an urgent fault message.
func (r *NotifierReporter) OnJobFailed(ctx context.Context, job *domain.Job, err error) {
	r.send(ctx, true, FailedMessage(job, err))
}

func (r *NotifierReporter) send(ctx context.Context, urgent bool, msg string) {
	var err error
	if urgent {
		err = r.notifier.NotifyUrgent(ctx, msg)
	} else {
		err = r.notifier.Notify(ctx, msg)
	}
	if err != nil {
		r.log.Error("delivering %q: %v", msg, err)
	}
}

// StartedMessage is the text shown when a pour begins.
func StartedMessage(job *domain.Job) string {
	return fmt.Sprintf("Preparing %d %s(s)...", job.Quantity, job.Recipe.Name)
}

// CompleteMessage is the text shown when every pump is off again.
func CompleteMessage(job *domain.Job) string {
	return fmt.Sprintf("%d %s(s) are ready!", job.Quantity, job.Recipe.Name)
}

// FailedMessage is the text shown when a pour is aborted.
func FailedMessage(job *domain.Job, err error) string {
	return fmt.Sprintf("[Fault] %d %s(s) aborted, all pumps forced off: %v", job.Quantity, job.Recipe.Name, err)
}

// Multi forwards every event to each reporter in order.
type Multi []domain.Reporter

// OnJobStarted forwards to every reporter.
func (m Multi) OnJobStarted(ctx context.Context, job *domain.Job) {
	for _, r := range m {
		r.OnJobStarted(ctx, job)
	}
}

// OnJobComplete forwards to every reporter.
func (m Multi) OnJobComplete(ctx context.Context, job *domain.Job) {
	for _, r := range m {
		r.OnJobComplete(ctx, job)
	}
}

// OnJobFailed forwards to every reporter.
func (m Multi) OnJobFailed(ctx context.Context, job *domain.Job, err error) {
	for _, r := range m {
		r.OnJobFailed(ctx, job, err)
	}
}
