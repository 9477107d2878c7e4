package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrInvalidActuatorIndex = errors.New("invalid actuator index")
	ErrInvalidVolume        = errors.New("invalid ingredient volume")
	ErrHardwareIO           = errors.New("hardware i/o error")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrBusy                 = errors.New("a dispense job is already running")
	ErrInvalidCatalog       = errors.New("invalid recipe catalog")
	ErrNotFound             = errors.New("not found")
)
