package v1alpha1

import (
	"sort"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

// convertEquipmentFromProto maps slot keys onto an EquipmentSet. Unknown slot
// keys and null pieces are rejected.
func convertEquipmentFromProto(equipment map[string]*simulatorv1alpha1.Equipment) (*twsim.EquipmentSet, error) {
	set := &twsim.EquipmentSet{}
	vb := errors.NewValidationBuilder()

	keys := make([]string, 0, len(equipment))
	for key := range equipment {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := "equipment." + key

		slot, ok := twsim.ParseSlot(key)
		if !ok {
			errors.ValidateEnum(field, key, twsim.SlotNames(), vb)
			continue
		}

		piece := equipment[key]
		if piece == nil {
			vb.RequiredField(field)
			continue
		}

		set.Equip(slot, &twsim.Equipment{
			Name:         piece.Name,
			Attack:       piece.Attack,
			Defense:      piece.Defense,
			CriticalRate: piece.CriticalRate,
			ElementValue: piece.ElementValue,
		})
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return set, nil
}

func convertEquipmentToProto(set *twsim.EquipmentSet) map[string]*simulatorv1alpha1.Equipment {
	out := make(map[string]*simulatorv1alpha1.Equipment)
	for _, slot := range set.Occupied() {
		eq := set.Get(slot)
		out[string(slot)] = &simulatorv1alpha1.Equipment{
			Name:         eq.Name,
			Attack:       eq.Attack,
			Defense:      eq.Defense,
			CriticalRate: eq.CriticalRate,
			ElementValue: eq.ElementValue,
		}
	}
	return out
}

func convertCreatureToProto(c *twsim.Creature) *simulatorv1alpha1.Creature {
	if c == nil {
		return nil
	}

	return &simulatorv1alpha1.Creature{
		ID:                c.ID,
		Name:              c.Name,
		Level:             c.Level,
		HP:                c.HP,
		Defense:           c.Defense,
		FixedDefense:      c.FixedDefense,
		FixedReduction:    c.FixedReduction,
		CutRate:           c.CutRate,
		ElementResistance: c.ElementResistance,
		ImageURL:          c.ImageURL,
	}
}

func convertStatsToProto(stats twsim.OffensiveStats) *simulatorv1alpha1.OffensiveStats {
	return &simulatorv1alpha1.OffensiveStats{
		Attack:       stats.Attack,
		Defense:      stats.Defense,
		CriticalRate: stats.CriticalRate,
		ElementValue: stats.ElementValue,
	}
}

func convertDamageResultToProto(r *twsim.DamageResult) *simulatorv1alpha1.DamageResult {
	if r == nil {
		return nil
	}

	return &simulatorv1alpha1.DamageResult{
		CreatureID:     r.CreatureID,
		CreatureName:   r.CreatureName,
		NormalDamage:   r.NormalDamage,
		CriticalDamage: r.CriticalDamage,
		ExpectedDamage: r.ExpectedDamage,
		HitsToKill:     r.HitsToKill,
		CriticalRate:   r.CriticalRate,
		ElementBonus:   r.ElementBonus,
		MinDamage:      r.MinDamage,
		MaxDamage:      r.MaxDamage,
	}
}
