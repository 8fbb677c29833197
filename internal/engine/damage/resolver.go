package damage

import (
	"math"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

// MinimumDamage is the floor for a landed hit
const MinimumDamage = 1

// maxCount is the largest float64 that converts to int64 without overflow
const maxCount = float64(math.MaxInt64)

// Calculator resolves damage with a fixed set of coefficients. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	coefficients Coefficients
}

var defaultCalculator = &Calculator{coefficients: DefaultCoefficients()}

// NewCalculator creates a calculator after validating the coefficients
func NewCalculator(coefficients Coefficients) (*Calculator, error) {
	if err := coefficients.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid coefficients")
	}

	return &Calculator{coefficients: coefficients}, nil
}

// Default returns the calculator configured with DefaultCoefficients
func Default() *Calculator {
	return defaultCalculator
}

// Coefficients returns the calculator's tuning
func (c *Calculator) Coefficients() Coefficients {
	return c.coefficients
}

// DefenseReduction is the percentage mitigation curve defense/(defense+100)
func DefenseReduction(defense float64) float64 {
	return defense / (defense + defenseCurveConstant)
}

// Resolve computes the damage of one hit against target. Stages run in a
// fixed order, each on the output of the previous one:
//
//	percentage defense -> element amplification -> fixed defense ->
//	fixed reduction -> cut rate -> floor at MinimumDamage
//
// Critical, expected damage and hits to kill derive from the floored value.
// Integer outputs saturate at math.MaxInt64. Callers should not invoke Resolve
// with attack <= 0.
func (c *Calculator) Resolve(attack, criticalRate, elementValue float64, target *twsim.Creature) *twsim.DamageResult {
	damage := attack * (1 - DefenseReduction(target.Defense))

	var elementBonus float64
	if elementValue > 0 && target.ElementResistance > 0 {
		elementBonus = elementValue / target.ElementResistance * c.coefficients.ElementCoefficient
		damage *= 1 + elementBonus
	}

	damage = math.Max(0, damage-target.FixedDefense)
	damage = math.Max(0, damage-target.FixedReduction)
	damage *= 1 - target.CutRate

	normal := toCount(math.Floor(damage))
	critical := toCount(math.Floor(float64(normal) * c.coefficients.CriticalMultiplier))

	// normal*(1-rate) + critical*rate, written so equal normal and critical
	// values blend back to exactly that value
	expected := float64(normal) + float64(critical-normal)*criticalRate

	return &twsim.DamageResult{
		CreatureID:     target.ID,
		CreatureName:   target.Name,
		NormalDamage:   normal,
		CriticalDamage: critical,
		ExpectedDamage: expected,
		HitsToKill:     toCount(math.Ceil(target.HP / expected)),
		CriticalRate:   criticalRate,
		ElementBonus:   elementBonus,
		MinDamage:      c.scaled(normal, 1-c.coefficients.RangeSpread),
		MaxDamage:      c.scaled(normal, 1+c.coefficients.RangeSpread),
	}
}

// ResolveStats resolves an aggregated bundle against target
func (c *Calculator) ResolveStats(stats twsim.OffensiveStats, target *twsim.Creature) *twsim.DamageResult {
	return c.Resolve(stats.Attack, stats.CriticalRate, stats.ElementValue, target)
}

// ResolveAll resolves stats against every target, one result per target in
// input order
func (c *Calculator) ResolveAll(stats twsim.OffensiveStats, targets []*twsim.Creature) []*twsim.DamageResult {
	results := make([]*twsim.DamageResult, len(targets))
	for i, target := range targets {
		results[i] = c.ResolveStats(stats, target)
	}
	return results
}

func (c *Calculator) scaled(normal int64, factor float64) int64 {
	return toCount(math.Floor(float64(normal) * factor))
}

// toCount converts an integral float to a count in [MinimumDamage,
// math.MaxInt64]. NaN maps to MinimumDamage.
func toCount(v float64) int64 {
	switch {
	case math.IsNaN(v) || v < MinimumDamage:
		return MinimumDamage
	case v >= maxCount:
		return math.MaxInt64
	default:
		return int64(v)
	}
}

// Resolve resolves one hit with DefaultCoefficients
func Resolve(attack, criticalRate, elementValue float64, target *twsim.Creature) *twsim.DamageResult {
	return defaultCalculator.Resolve(attack, criticalRate, elementValue, target)
}

// ResolveAll resolves stats against targets with DefaultCoefficients
func ResolveAll(stats twsim.OffensiveStats, targets []*twsim.Creature) []*twsim.DamageResult {
	return defaultCalculator.ResolveAll(stats, targets)
}
