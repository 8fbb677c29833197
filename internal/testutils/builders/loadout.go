// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

// LoadoutBuilder provides a fluent interface for building test EquipmentSet instances
type LoadoutBuilder struct {
	set *twsim.EquipmentSet
}

// NewLoadoutBuilder creates a builder for an empty loadout
func NewLoadoutBuilder() *LoadoutBuilder {
	return &LoadoutBuilder{set: &twsim.EquipmentSet{}}
}

// WithPiece places eq in slot
func (b *LoadoutBuilder) WithPiece(slot twsim.Slot, eq *twsim.Equipment) *LoadoutBuilder {
	b.set.Equip(slot, eq)
	return b
}

// WithWeapon equips a weapon with the given attack and element value
func (b *LoadoutBuilder) WithWeapon(attack, elementValue float64) *LoadoutBuilder {
	return b.WithPiece(twsim.SlotWeapon, &twsim.Equipment{
		Name:         "Test Weapon",
		Attack:       attack,
		ElementValue: elementValue,
	})
}

// WithArmor equips armor with the given defense
func (b *LoadoutBuilder) WithArmor(defense float64) *LoadoutBuilder {
	return b.WithPiece(twsim.SlotArmor, &twsim.Equipment{
		Name:    "Test Armor",
		Defense: defense,
	})
}

// WithCriticalRate adds critical rate on the first accessory slot
func (b *LoadoutBuilder) WithCriticalRate(rate float64) *LoadoutBuilder {
	return b.WithPiece(twsim.SlotAccessory1, &twsim.Equipment{
		Name:         "Test Ring",
		CriticalRate: rate,
	})
}

// Build returns the constructed loadout
func (b *LoadoutBuilder) Build() *twsim.EquipmentSet {
	return b.set
}
