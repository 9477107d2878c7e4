package domain

import "time"

// Assignment is the derived run time of one actuator for one ingredient.
type Assignment struct {
	Actuator   int
	Ingredient string
	Duration   time.Duration
}

// Job is one execution of pouring a quantity of a recipe.
type Job struct {
	ID             string
	Recipe         *Recipe
	Quantity       int
	Assignments    []Assignment
	State          JobState
	Phase          Phase
	StartedAt      time.Time
	PhaseStartedAt time.Time
	CompletedAt    time.Time
	Err            error
}

// Longest returns the largest assignment duration, the length of the drain wait.
func (j *Job) Longest() time.Duration {
	var longest time.Duration
	for _, a := range j.Assignments {
		if a.Duration > longest {
			longest = a.Duration
		}
	}
	return longest
}

// EstimatedTotal is the full sequenced time from start to idle: the drain
// wait followed by every per-ingredient wait of the stop pass.
func (j *Job) EstimatedTotal() time.Duration {
	total := j.Longest()
	for _, a := range j.Assignments {
		total += a.Duration
	}
	return total
}

// Clone returns a copy that shares the immutable recipe but not the
// assignment slice.
func (j *Job) Clone() *Job {
	c := *j
	c.Assignments = append([]Assignment(nil), j.Assignments...)
	return &c
}

// JobState tracks the lifecycle of a job.
type JobState int

const (
	JobPending JobState = iota
	JobRunning
	JobComplete
	JobFailed
)

// String returns a human-readable job state.
func (s JobState) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobRunning:
		return "running"
	case JobComplete:
		return "complete"
	case JobFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Phase is the position of the dispense sequencer.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStarting
	PhaseDraining
	PhaseStopping
)

// String returns a human-readable phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStarting:
		return "starting"
	case PhaseDraining:
		return "draining"
	case PhaseStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Remaining estimates how much of the sequenced time is left at now.
func (j *Job) Remaining(now time.Time) time.Duration {
	if j.StartedAt.IsZero() {
		return j.EstimatedTotal()
	}
	left := j.EstimatedTotal() - now.Sub(j.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}
