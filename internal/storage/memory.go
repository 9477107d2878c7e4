// Package storage keeps snapshots of in-flight dispense jobs so observers
// (the progress watcher, the terminal UI) can read them without touching
// the engine.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

// Compile-time interface check.
var _ domain.JobStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory job store. Safe for concurrent access. It
// stores and hands out copies, so callers never share a job with the engine.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]*domain.Job
	log  *logger.Logger
}

// NewMemoryStore creates an empty in-memory job store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]*domain.Job),
		log:  log.Named("store"),
	}
}

// Save stores a snapshot of job. Overwrites if it already exists.
func (s *MemoryStore) Save(ctx context.Context, job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving job %s (recipe=%s, state=%s, phase=%s)", job.ID, job.Recipe.Name, job.State, job.Phase)
	s.jobs[job.ID] = job.Clone()
	return nil
}

// Load retrieves a job snapshot by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		s.log.Debug("job not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return job.Clone(), nil
}

// Delete removes a job by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.jobs, id)
	s.log.Debug("deleted job %s", id)
	return nil
}

// ListActive returns all pending or running jobs, oldest first.
func (s *MemoryStore) ListActive(ctx context.Context) ([]*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Job
	for _, job := range s.jobs {
		if job.State == domain.JobPending || job.State == domain.JobRunning {
			out = append(out, job.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}
