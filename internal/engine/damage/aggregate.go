package damage

import (
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

// MaxCriticalRate caps the summed critical rate of a loadout
const MaxCriticalRate = 1.0

// Aggregate folds every occupied slot of set into one OffensiveStats.
//
// Attack, defense and critical rate are summed over all slots. Element value
// is read from the weapon slot only; element values on other slots are
// ignored. The summed critical rate is clamped to MaxCriticalRate. Empty
// slots contribute nothing and negative values pass through unchanged.
func Aggregate(set *twsim.EquipmentSet) twsim.OffensiveStats {
	var stats twsim.OffensiveStats
	if set == nil {
		return stats
	}

	for _, slot := range twsim.AllSlots() {
		eq := set.Get(slot)
		if eq == nil {
			continue
		}

		stats.Attack += eq.Attack
		stats.Defense += eq.Defense
		stats.CriticalRate += eq.CriticalRate
	}

	if set.Weapon != nil {
		stats.ElementValue = set.Weapon.ElementValue
	}

	if stats.CriticalRate > MaxCriticalRate {
		stats.CriticalRate = MaxCriticalRate
	}

	return stats
}
