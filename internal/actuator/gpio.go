package actuator

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/hammamikhairi/ottobar/internal/domain"
)

// gpioLine drives a real header pin through periph.
type gpioLine struct {
	pin gpio.PinIO
}

func (g *gpioLine) Name() string { return g.pin.Name() }

// Out switches the pin to output mode on first use and latches the level.
func (g *gpioLine) Out(l Level) error {
	lvl := gpio.High
	if l == Low {
		lvl = gpio.Low
	}
	return g.pin.Out(lvl)
}

// OpenGPIO initializes the host drivers and resolves each name (for example
// "GPIO11") to a pin. The returned lines are in the same order as names.
func OpenGPIO(names []string) ([]Line, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initializing gpio host: %w: %w", domain.ErrHardwareIO, err)
	}

	lines := make([]Line, 0, len(names))
	for i, name := range names {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("actuator %d: gpio %q not found: %w", i, name, domain.ErrHardwareIO)
		}
		lines = append(lines, &gpioLine{pin: pin})
	}
	return lines, nil
}
