package report

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

// collectingNotifier captures messages for assertions.
type collectingNotifier struct {
	mu       sync.Mutex
	messages []string
	urgent   []string
	err      error
}

func (n *collectingNotifier) Notify(_ context.Context, msg string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
	return n.err
}

func (n *collectingNotifier) NotifyUrgent(_ context.Context, msg string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.urgent = append(n.urgent, msg)
	return n.err
}

func testJob() *domain.Job {
	return &domain.Job{
		ID:       "job-1",
		Recipe:   &domain.Recipe{Name: "Cuba Libre"},
		Quantity: 2,
	}
}

func TestNotifierReporterMessages(t *testing.T) {
	n := &collectingNotifier{}
	r := NewNotifierReporter(n, logger.New(logger.LevelOff, nil))
	ctx := context.Background()
	job := testJob()

	r.OnJobStarted(ctx, job)
	r.OnJobComplete(ctx, job)

	want := []string{"Preparing 2 Cuba Libre(s)...", "2 Cuba Libre(s) are ready!"}
	if len(n.messages) != len(want) {
		t.Fatalf("expected %d messages, got %v", len(want), n.messages)
	}
	for i := range want {
		if n.messages[i] != want[i] {
			t.Fatalf("message %d: expected %q, got %q", i, want[i], n.messages[i])
		}
	}
	if len(n.urgent) != 0 {
		t.Fatalf("expected no urgent messages, got %v", n.urgent)
	}
}

func TestNotifierReporterFailureIsUrgent(t *testing.T) {
	n := &collectingNotifier{}
	r := NewNotifierReporter(n, logger.New(logger.LevelOff, nil))

	r.OnJobFailed(context.Background(), testJob(), errors.New("pump 3 stuck"))

	if len(n.urgent) != 1 {
		t.Fatalf("expected 1 urgent message, got %v", n.urgent)
	}
	want := "[Fault] 2 Cuba Libre(s) aborted, all pumps forced off: pump 3 stuck"
	if n.urgent[0] != want {
		t.Fatalf("expected %q, got %q", want, n.urgent[0])
	}
}

func TestNotifierReporterSwallowsDeliveryErrors(t *testing.T) {
	n := &collectingNotifier{err: errors.New("terminal closed")}
	r := NewNotifierReporter(n, logger.New(logger.LevelOff, nil))

	// Must not panic or block; the sequencer does not care about delivery.
	r.OnJobComplete(context.Background(), testJob())
	if len(n.messages) != 1 {
		t.Fatalf("expected delivery attempt, got %v", n.messages)
	}
}

type recordingReporter struct {
	name   string
	events *[]string
}

func (r recordingReporter) OnJobStarted(context.Context, *domain.Job) {
	*r.events = append(*r.events, r.name+":started")
}

func (r recordingReporter) OnJobComplete(context.Context, *domain.Job) {
	*r.events = append(*r.events, r.name+":complete")
}

func (r recordingReporter) OnJobFailed(context.Context, *domain.Job, error) {
	*r.events = append(*r.events, r.name+":failed")
}

func TestMultiFansOutInOrder(t *testing.T) {
	var events []string
	m := Multi{
		recordingReporter{name: "a", events: &events},
		recordingReporter{name: "b", events: &events},
	}
	ctx := context.Background()

	m.OnJobStarted(ctx, testJob())
	m.OnJobComplete(ctx, testJob())
	m.OnJobFailed(ctx, testJob(), errors.New("x"))

	want := []string{"a:started", "b:started", "a:complete", "b:complete", "a:failed", "b:failed"}
	if len(events) != len(want) {
		t.Fatalf("expected %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], events[i])
		}
	}
}
