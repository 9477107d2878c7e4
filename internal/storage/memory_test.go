package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

var testRecipe = &domain.Recipe{
	Name:        "Test",
	Ingredients: []domain.Ingredient{{Name: "water", Actuator: 0, VolumeML: 100}},
}

func newJob(id string, state domain.JobState, started time.Time) *domain.Job {
	return &domain.Job{
		ID:          id,
		Recipe:      testRecipe,
		Quantity:    1,
		Assignments: []domain.Assignment{{Actuator: 0, Ingredient: "water", Duration: time.Second}},
		State:       state,
		StartedAt:   started,
	}
}

func TestMemoryStoreSaveLoad(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	job := newJob("j1", domain.JobRunning, time.Now())
	if err := store.Save(ctx, job); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, "j1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ID != "j1" {
		t.Fatalf("expected ID j1, got %s", loaded.ID)
	}
	if loaded.Recipe.Name != "Test" {
		t.Fatalf("expected recipe Test, got %s", loaded.Recipe.Name)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	job := newJob("j1", domain.JobRunning, time.Now())
	store.Save(ctx, job)

	job.Phase = domain.PhaseStopping
	job.Assignments[0].Duration = time.Hour

	loaded, _ := store.Load(ctx, "j1")
	if loaded.Phase != domain.PhaseIdle {
		t.Fatalf("stored snapshot changed with caller's job: phase=%s", loaded.Phase)
	}
	if loaded.Assignments[0].Duration != time.Second {
		t.Fatalf("stored assignments share memory with caller: %s", loaded.Assignments[0].Duration)
	}

	loaded.State = domain.JobFailed
	again, _ := store.Load(ctx, "j1")
	if again.State != domain.JobRunning {
		t.Fatalf("loaded snapshot is not a copy: state=%s", again.State)
	}
}

func TestMemoryStoreLoadNotFound(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))

	_, err := store.Load(context.Background(), "nonexistent")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	store.Save(ctx, newJob("j1", domain.JobRunning, time.Now()))

	if err := store.Delete(ctx, "j1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err := store.Load(ctx, "j1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := store.Delete(ctx, "j1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryStoreListActive(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()
	now := time.Now()

	store.Save(ctx, newJob("running-late", domain.JobRunning, now))
	store.Save(ctx, newJob("pending", domain.JobPending, now.Add(-time.Minute)))
	store.Save(ctx, newJob("complete", domain.JobComplete, now))
	store.Save(ctx, newJob("failed", domain.JobFailed, now))

	active, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active jobs, got %d", len(active))
	}
	if active[0].ID != "pending" || active[1].ID != "running-late" {
		t.Fatalf("expected oldest first, got %s, %s", active[0].ID, active[1].ID)
	}
}
