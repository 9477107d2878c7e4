// Package actuator owns the bank of pump relays and the output lines that
// drive them.
//
// Relays are wired active-low: driving a line Low engages the pump and
// driving it High idles it. Everything above this package talks in terms of
// [State] and never sees line levels.
package actuator

// Level is the electrical level of an output line.
type Level int

const (
	Low Level = iota
	High
)

// String returns the level name.
func (l Level) String() string {
	if l == Low {
		return "low"
	}
	return "high"
}

// State is the logical state of a pump.
type State int

const (
	Off State = iota
	On
)

// String returns the state name.
func (s State) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// LevelFor maps a pump state onto the active-low line level.
func LevelFor(s State) Level {
	if s == On {
		return Low
	}
	return High
}

// Line is a single digital output. Out must not block beyond the time the
// platform needs to latch the level.
type Line interface {
	Name() string
	Out(l Level) error
}
