package domain

import "context"

//go:generate mockgen -destination=../engine/mock_reporter_test.go -package=engine . Reporter

// RecipeSource provides recipes. Implementations can be in-memory (built in)
// or loaded from a catalog file.
type RecipeSource interface {
	List(ctx context.Context) ([]RecipeSummary, error)
	Get(ctx context.Context, name string) (*Recipe, error)
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
}

// JobStore holds snapshots of jobs that have not finished yet.
type JobStore interface {
	Save(ctx context.Context, job *Job) error
	Load(ctx context.Context, id string) (*Job, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*Job, error)
}

// Reporter receives job lifecycle events from the sequencer. It is a pure
// sink: it must not touch the actuator bank.
type Reporter interface {
	OnJobStarted(ctx context.Context, job *Job)
	OnJobComplete(ctx context.Context, job *Job)
	OnJobFailed(ctx context.Context, job *Job, err error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout, the terminal UI, or a log.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
