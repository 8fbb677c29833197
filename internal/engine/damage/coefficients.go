package damage

import (
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

// Default tuning values
const (
	DefaultCriticalMultiplier = 1.5
	DefaultElementCoefficient = 0.1
	DefaultRangeSpread        = 0.1

	// defenseCurveConstant is the defense value that halves damage
	defenseCurveConstant = 100.0
)

// Coefficients are the tunable constants of the resolver
type Coefficients struct {
	// CriticalMultiplier scales normal damage into critical damage
	CriticalMultiplier float64

	// ElementCoefficient scales element value / element resistance into a
	// damage amplification
	ElementCoefficient float64

	// RangeSpread is the +/- fraction around normal damage reported as the
	// display range
	RangeSpread float64
}

// DefaultCoefficients returns the standard tuning
func DefaultCoefficients() Coefficients {
	return Coefficients{
		CriticalMultiplier: DefaultCriticalMultiplier,
		ElementCoefficient: DefaultElementCoefficient,
		RangeSpread:        DefaultRangeSpread,
	}
}

// Validate rejects coefficients that would make critical hits weaker than
// normal hits or turn the element stage into mitigation.
func (c Coefficients) Validate() error {
	vb := errors.NewValidationBuilder()

	if errors.ValidateFinite("CriticalMultiplier", c.CriticalMultiplier, vb) && c.CriticalMultiplier < 1 {
		vb.Fieldf("CriticalMultiplier", "must be at least 1, got %g", c.CriticalMultiplier)
	}
	errors.ValidateNonNegative("ElementCoefficient", c.ElementCoefficient, vb)
	errors.ValidateFraction("RangeSpread", c.RangeSpread, vb)

	return vb.Build()
}
