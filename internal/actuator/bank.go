package actuator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

// Bank is a fixed, ordered set of pump lines. Index i in a recipe refers to
// lines[i]. Safe for concurrent use; the dispense engine is expected to be
// the only writer while a job runs. After Close no line can be turned on.
type Bank struct {
	mu     sync.Mutex
	lines  []Line
	states []State
	closed bool
	log    *logger.Logger
}

// New wraps lines in a bank without touching the hardware. Call Initialize
// before the first job, or use Open.
func New(lines []Line, log *logger.Logger) *Bank {
	return &Bank{
		lines:  lines,
		states: make([]State, len(lines)),
		log:    log.Named("bank"),
	}
}

// Open creates a bank and drives every line to OFF. On failure the lines
// that could be reached are still left OFF.
func Open(lines []Line, log *logger.Logger) (*Bank, error) {
	b := New(lines, log)
	if err := b.Initialize(); err != nil {
		return nil, err
	}
	return b, nil
}

// Initialize drives every line to OFF. Calling it again re-asserts OFF.
func (b *Bank) Initialize() error {
	if err := b.allOff(); err != nil {
		return fmt.Errorf("initializing actuator bank: %w", err)
	}
	b.log.Info("initialized %d actuators, all off", len(b.lines))
	return nil
}

// ShutdownAll drives every line to OFF. Every line is attempted even when
// some of them fail; the failures are joined in the returned error.
func (b *Bank) ShutdownAll() error {
	if err := b.allOff(); err != nil {
		b.log.Error("shutdown: %v", err)
		return fmt.Errorf("shutting down actuator bank: %w", err)
	}
	b.log.Debug("all %d actuators off", len(b.lines))
	return nil
}

// Close drives every line to OFF and latches the bank closed, in one step
// under the bank lock. Any later attempt to turn a line on fails with
// ErrHardwareIO, so a job still running on another goroutine aborts
// instead of restarting a pump. Turning lines off stays allowed. Close is
// safe to call more than once.
func (b *Bank) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.allOffLocked()
	if !b.closed {
		b.closed = true
		b.log.Info("closed %d actuators", len(b.lines))
	}
	if err != nil {
		return fmt.Errorf("closing actuator bank: %w", err)
	}
	return nil
}

func (b *Bank) allOff() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.allOffLocked()
}

func (b *Bank) allOffLocked() error {
	var errs []error
	for i, line := range b.lines {
		if err := line.Out(LevelFor(Off)); err != nil {
			errs = append(errs, fmt.Errorf("actuator %d (%s): %w: %w", i, line.Name(), domain.ErrHardwareIO, err))
			continue
		}
		b.states[i] = Off
	}
	return errors.Join(errs...)
}

// SetState drives one actuator. It returns immediately after the line is
// written.
func (b *Bank) SetState(index int, s State) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.lines) {
		return fmt.Errorf("actuator %d (bank has %d): %w", index, len(b.lines), domain.ErrInvalidActuatorIndex)
	}
	if b.closed && s == On {
		return fmt.Errorf("actuator %d on: bank closed: %w", index, domain.ErrHardwareIO)
	}

	line := b.lines[index]
	if err := line.Out(LevelFor(s)); err != nil {
		return fmt.Errorf("setting actuator %d (%s) %s: %w: %w", index, line.Name(), s, domain.ErrHardwareIO, err)
	}
	b.states[index] = s
	b.log.Debug("actuator %d (%s) %s", index, line.Name(), s)
	return nil
}

// Size returns the number of actuators.
func (b *Bank) Size() int {
	return len(b.lines)
}

// States returns a snapshot of the last successfully written state of each
// actuator.
func (b *Bank) States() []State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]State(nil), b.states...)
}

// Names returns the line names in bank order.
func (b *Bank) Names() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.Name()
	}
	return out
}
