package v1alpha1

// Creature is a target on the roster
type Creature struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Level             int32   `json:"level"`
	HP                float64 `json:"hp"`
	Defense           float64 `json:"defense"`
	FixedDefense      float64 `json:"fixed_defense"`
	FixedReduction    float64 `json:"fixed_reduction"`
	CutRate           float64 `json:"cut_rate"`
	ElementResistance float64 `json:"element_resistance"`
	ImageURL          string  `json:"image_url,omitempty"`
}

// Equipment is one gear piece
type Equipment struct {
	Name         string  `json:"name,omitempty"`
	Attack       float64 `json:"attack"`
	Defense      float64 `json:"defense"`
	CriticalRate float64 `json:"critical_rate"`
	ElementValue float64 `json:"element_value"`
}

// OffensiveStats is the aggregate of a loadout
type OffensiveStats struct {
	Attack       float64 `json:"attack"`
	Defense      float64 `json:"defense"`
	CriticalRate float64 `json:"critical_rate"`
	ElementValue float64 `json:"element_value"`
}

// DamageResult is the outcome against one creature
type DamageResult struct {
	CreatureID     string  `json:"creature_id"`
	CreatureName   string  `json:"creature_name"`
	NormalDamage   int64   `json:"normal_damage"`
	CriticalDamage int64   `json:"critical_damage"`
	ExpectedDamage float64 `json:"expected_damage"`
	HitsToKill     int64   `json:"hits_to_kill"`
	CriticalRate   float64 `json:"critical_rate"`
	ElementBonus   float64 `json:"element_bonus"`
	MinDamage      int64   `json:"min_damage"`
	MaxDamage      int64   `json:"max_damage"`
}

// HitSample is one sampled hit
type HitSample struct {
	Damage       int64 `json:"damage"`
	Critical     bool  `json:"critical"`
	CriticalRoll int32 `json:"critical_roll"`
}

// ListCreaturesRequest lists the roster
type ListCreaturesRequest struct{}

// ListCreaturesResponse carries the roster in order
type ListCreaturesResponse struct {
	Creatures []*Creature `json:"creatures"`
}

// GetCreatureRequest fetches one creature by ID or by exact name
type GetCreatureRequest struct {
	CreatureID string `json:"creature_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

// GetCreatureResponse carries one creature
type GetCreatureResponse struct {
	Creature *Creature `json:"creature"`
}

// AggregateStatsRequest carries a loadout keyed by slot
// (weapon, armor, accessory1, accessory2, special)
type AggregateStatsRequest struct {
	Equipment map[string]*Equipment `json:"equipment"`
}

// AggregateStatsResponse carries the aggregated stats
type AggregateStatsResponse struct {
	Stats *OffensiveStats `json:"stats"`
}

// CalculateDamageRequest evaluates a loadout. An empty CreatureIDs means the
// whole roster.
type CalculateDamageRequest struct {
	Equipment   map[string]*Equipment `json:"equipment"`
	CreatureIDs []string              `json:"creature_ids,omitempty"`
}

// CalculateDamageResponse carries one result per creature
type CalculateDamageResponse struct {
	CalculationID string          `json:"calculation_id"`
	Stats         *OffensiveStats `json:"stats"`
	Results       []*DamageResult `json:"results"`
	NoOffense     bool            `json:"no_offense,omitempty"`
}

// SampleHitRequest draws one hit against a creature
type SampleHitRequest struct {
	Equipment  map[string]*Equipment `json:"equipment"`
	CreatureID string                `json:"creature_id"`
}

// SampleHitResponse carries the sampled hit and the result it was drawn from
type SampleHitResponse struct {
	CreatureID string        `json:"creature_id"`
	Result     *DamageResult `json:"result"`
	Hit        *HitSample    `json:"hit"`
}

// DetectEquipmentRequest carries a data:image/...;base64 URL
type DetectEquipmentRequest struct {
	ImageDataURL string `json:"image_data_url"`
}

// DetectEquipmentResponse carries the detected loadout
type DetectEquipmentResponse struct {
	Equipment map[string]*Equipment `json:"equipment"`
	Stats     *OffensiveStats       `json:"stats"`
}
