package engine

import (
	"math"
	"time"

	"github.com/hammamikhairi/ottobar/internal/domain"
)

// DispenseRateMLPerSecond is the open-loop flow rate of every pump.
const DispenseRateMLPerSecond = 100.0

// ComputeSeconds returns how long a pump must run to deliver volumeML.
func ComputeSeconds(volumeML float64) float64 {
	return volumeML / DispenseRateMLPerSecond
}

// ComputeDuration is ComputeSeconds as a time.Duration, rounded to the
// nearest nanosecond.
func ComputeDuration(volumeML float64) time.Duration {
	return time.Duration(math.Round(volumeML * float64(time.Second) / DispenseRateMLPerSecond))
}

// Assign derives one assignment per ingredient, in ingredient order.
func Assign(r *domain.Recipe) []domain.Assignment {
	out := make([]domain.Assignment, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		out[i] = domain.Assignment{
			Actuator:   ing.Actuator,
			Ingredient: ing.Name,
			Duration:   ComputeDuration(ing.VolumeML),
		}
	}
	return out
}
