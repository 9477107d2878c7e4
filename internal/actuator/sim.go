package actuator

import (
	"fmt"
	"sync"
)

// Compile-time interface check.
var _ Line = (*SimLine)(nil)

// SimLine is an in-memory output line. It backs the simulator driver and
// the tests, and can be told to fail writes.
type SimLine struct {
	mu     sync.Mutex
	name   string
	level  Level
	writes int
	fail   func(Level) error
	onOut  func(name string, l Level)
}

// NewSimLine creates a line that starts High (pump idle).
func NewSimLine(name string) *SimLine {
	return &SimLine{name: name, level: High}
}

// SimLines creates n lines named sim0..sim{n-1}.
func SimLines(n int) []*SimLine {
	out := make([]*SimLine, n)
	for i := range out {
		out[i] = NewSimLine(fmt.Sprintf("sim%d", i))
	}
	return out
}

// AsLines converts sim lines to the Line interface for Bank construction.
func AsLines(sims []*SimLine) []Line {
	out := make([]Line, len(sims))
	for i, s := range sims {
		out[i] = s
	}
	return out
}

// Name returns the line name.
func (s *SimLine) Name() string { return s.name }

// Out records the level, or returns the injected failure.
func (s *SimLine) Out(l Level) error {
	s.mu.Lock()
	fail, hook := s.fail, s.onOut
	if fail != nil {
		if err := fail(l); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.level = l
	s.writes++
	s.mu.Unlock()

	if hook != nil {
		hook(s.name, l)
	}
	return nil
}

// Level returns the last written level.
func (s *SimLine) Level() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Writes returns the number of successful writes.
func (s *SimLine) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// FailWith installs a function consulted before every write; a non-nil
// return is reported as the write error. Pass nil to clear.
func (s *SimLine) FailWith(fn func(Level) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fn
}

// OnOut installs a hook called after every successful write.
func (s *SimLine) OnOut(fn func(name string, l Level)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onOut = fn
}
