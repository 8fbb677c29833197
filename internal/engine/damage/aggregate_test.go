package damage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/tw-simulator/internal/engine/damage"
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

func TestAggregate_EmptySet(t *testing.T) {
	assert.Equal(t, twsim.OffensiveStats{}, damage.Aggregate(nil))
	assert.Equal(t, twsim.OffensiveStats{}, damage.Aggregate(&twsim.EquipmentSet{}))
}

func TestAggregate_SumsAllSlots(t *testing.T) {
	set := &twsim.EquipmentSet{
		Weapon:     &twsim.Equipment{Name: "sword", Attack: 1000, Defense: 10, CriticalRate: 0.25, ElementValue: 30},
		Armor:      &twsim.Equipment{Name: "plate", Attack: 50, Defense: 400},
		Accessory1: &twsim.Equipment{Name: "ring", Attack: 25, CriticalRate: 0.25},
		Special:    &twsim.Equipment{Name: "charm", Attack: 5, Defense: 5},
	}

	stats := damage.Aggregate(set)

	assert.Equal(t, 1080.0, stats.Attack)
	assert.Equal(t, 415.0, stats.Defense)
	assert.Equal(t, 0.5, stats.CriticalRate)
	assert.Equal(t, 30.0, stats.ElementValue)
}

func TestAggregate_ElementValueFromWeaponOnly(t *testing.T) {
	set := &twsim.EquipmentSet{
		Armor:      &twsim.Equipment{ElementValue: 999},
		Accessory1: &twsim.Equipment{ElementValue: 10},
		Special:    &twsim.Equipment{ElementValue: 10},
	}
	assert.Equal(t, 0.0, damage.Aggregate(set).ElementValue)

	set.Weapon = &twsim.Equipment{ElementValue: 20}
	assert.Equal(t, 20.0, damage.Aggregate(set).ElementValue)
}

func TestAggregate_ClampsCriticalRate(t *testing.T) {
	piece := func() *twsim.Equipment { return &twsim.Equipment{CriticalRate: 0.5} }
	set := &twsim.EquipmentSet{
		Weapon:     piece(),
		Armor:      piece(),
		Accessory1: piece(),
		Accessory2: piece(),
		Special:    piece(),
	}

	assert.Equal(t, 1.0, damage.Aggregate(set).CriticalRate)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	a := &twsim.Equipment{Attack: 120, Defense: 3, CriticalRate: 0.1}
	b := &twsim.Equipment{Attack: 7, Defense: 90, CriticalRate: 0.2}
	c := &twsim.Equipment{Attack: 33, Defense: 0, CriticalRate: 0.05}
	d := &twsim.Equipment{Attack: 0, Defense: 12, CriticalRate: 0.3}
	weapon := &twsim.Equipment{Attack: 500, ElementValue: 15}

	layouts := [][4]*twsim.Equipment{
		{a, b, c, d},
		{d, c, b, a},
		{b, d, a, c},
		{c, a, d, b},
	}

	expected := damage.Aggregate(&twsim.EquipmentSet{
		Weapon: weapon, Armor: a, Accessory1: b, Accessory2: c, Special: d,
	})

	for _, l := range layouts {
		got := damage.Aggregate(&twsim.EquipmentSet{
			Weapon: weapon, Armor: l[0], Accessory1: l[1], Accessory2: l[2], Special: l[3],
		})
		assert.Equal(t, expected.Attack, got.Attack)
		assert.Equal(t, expected.Defense, got.Defense)
		assert.InDelta(t, expected.CriticalRate, got.CriticalRate, 1e-12)
		assert.Equal(t, expected.ElementValue, got.ElementValue)
	}
}

func TestAggregate_NegativeValuesPassThrough(t *testing.T) {
	set := &twsim.EquipmentSet{
		Weapon: &twsim.Equipment{Attack: 100},
		Armor:  &twsim.Equipment{Attack: -30, CriticalRate: -0.1},
	}

	stats := damage.Aggregate(set)
	assert.Equal(t, 70.0, stats.Attack)
	assert.InDelta(t, -0.1, stats.CriticalRate, 1e-12)
}
