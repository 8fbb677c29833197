package twsim

// DamageResult is the outcome of resolving one loadout against one creature
type DamageResult struct {
	CreatureID   string `json:"creature_id"`
	CreatureName string `json:"creature_name"`

	NormalDamage   int64   `json:"normal_damage"`
	CriticalDamage int64   `json:"critical_damage"`
	ExpectedDamage float64 `json:"expected_damage"`
	HitsToKill     int64   `json:"hits_to_kill"`

	// CriticalRate is the per-hit critical chance blended into ExpectedDamage
	CriticalRate float64 `json:"critical_rate"`

	// ElementBonus is the fractional amplification applied by the element
	// stage, 0 when that stage was skipped
	ElementBonus float64 `json:"element_bonus"`

	// MinDamage and MaxDamage bound a non-critical hit for display
	MinDamage int64 `json:"min_damage"`
	MaxDamage int64 `json:"max_damage"`
}

// HitSample is a single sampled hit drawn from a DamageResult
type HitSample struct {
	Damage       int64 `json:"damage"`
	Critical     bool  `json:"critical"`
	CriticalRoll int   `json:"critical_roll"`
}
