package damage

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

const percentileDie = 100

// SampleHit draws one hit from result. A d100 at or under CriticalRate*100 is
// a critical and deals CriticalDamage; otherwise a second roll picks a value
// in [MinDamage, MaxDamage].
func (c *Calculator) SampleHit(result *twsim.DamageResult, roller dice.Roller) (*twsim.HitSample, error) {
	if result == nil {
		return nil, errors.InvalidArgument("result is required")
	}
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	critRoll, err := roller.Roll(percentileDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll for critical")
	}

	if float64(critRoll) <= result.CriticalRate*percentileDie {
		return &twsim.HitSample{
			Damage:       result.CriticalDamage,
			Critical:     true,
			CriticalRoll: critRoll,
		}, nil
	}

	damage := result.MinDamage
	if spread := result.MaxDamage - result.MinDamage; spread > 0 {
		offset, err := roller.Roll(int(spread + 1))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll damage")
		}
		damage += int64(offset - 1)
	}

	return &twsim.HitSample{
		Damage:       damage,
		CriticalRoll: critRoll,
	}, nil
}
