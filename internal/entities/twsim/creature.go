package twsim

// EntityTypeCreature is the rpg-toolkit entity type reported for creatures
const EntityTypeCreature = "creature"

// Creature is a target's defensive profile. Level and ImageURL are display only.
type Creature struct {
	ID                string  `json:"id" yaml:"id"`
	Name              string  `json:"name" yaml:"name"`
	Level             int32   `json:"level" yaml:"level"`
	HP                float64 `json:"hp" yaml:"hp"`
	Defense           float64 `json:"defense" yaml:"defense"`
	FixedDefense      float64 `json:"fixed_defense" yaml:"fixed_defense"`
	FixedReduction    float64 `json:"fixed_reduction" yaml:"fixed_reduction"`
	CutRate           float64 `json:"cut_rate" yaml:"cut_rate"`
	ElementResistance float64 `json:"element_resistance" yaml:"element_resistance"`
	ImageURL          string  `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// CreatureEntity adapts a Creature to the rpg-toolkit core.Entity interface
type CreatureEntity struct {
	*Creature
}

// GetID returns the creature's ID
func (c *CreatureEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CreatureEntity) GetType() string {
	return EntityTypeCreature
}
