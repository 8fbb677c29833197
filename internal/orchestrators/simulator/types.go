package simulator

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

// ListCreaturesInput defines the request for listing the roster
type ListCreaturesInput struct{}

// ListCreaturesOutput defines the response for listing the roster
type ListCreaturesOutput struct {
	Creatures []*twsim.Creature
}

// GetCreatureInput defines the request for a single creature. Exactly one of
// CreatureID or Name is set; Name matches exactly.
type GetCreatureInput struct {
	CreatureID string
	Name       string
}

// GetCreatureOutput defines the response for a single creature
type GetCreatureOutput struct {
	Creature *twsim.Creature
}

// AggregateStatsInput defines the request for aggregating a loadout
type AggregateStatsInput struct {
	EquipmentSet *twsim.EquipmentSet
}

// AggregateStatsOutput defines the response for aggregating a loadout
type AggregateStatsOutput struct {
	Stats twsim.OffensiveStats
}

// CalculateDamageInput defines the request for a batch damage calculation.
// An empty CreatureIDs evaluates the whole roster.
type CalculateDamageInput struct {
	EquipmentSet *twsim.EquipmentSet
	CreatureIDs  []string
}

// CalculateDamageOutput defines the response for a batch damage calculation
type CalculateDamageOutput struct {
	CalculationID string
	Stats         twsim.OffensiveStats

	// Results are in request order, or roster order for a whole-roster run
	Results []*twsim.DamageResult

	// NoOffense is set when the loadout has no attack. Results is empty.
	NoOffense bool
}

// SampleHitInput defines the request for sampling one hit
type SampleHitInput struct {
	EquipmentSet *twsim.EquipmentSet
	CreatureID   string
}

// SampleHitOutput defines the response for sampling one hit
type SampleHitOutput struct {
	Target core.Entity
	Result *twsim.DamageResult
	Hit    *twsim.HitSample
}

// DetectEquipmentInput defines the request for reading a loadout from an image
type DetectEquipmentInput struct {
	ImageDataURL string
}

// DetectEquipmentOutput defines the response for reading a loadout from an image
type DetectEquipmentOutput struct {
	EquipmentSet *twsim.EquipmentSet
	Stats        twsim.OffensiveStats
}
