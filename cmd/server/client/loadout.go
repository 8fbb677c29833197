package client

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

// parseLoadoutYAML reads a loadout document keyed by slot:
//
//	weapon:
//	  name: Sword
//	  attack: 1000
//	  critical_rate: 0.1
//	  element_value: 20
//	armor:
//	  defense: 300
func parseLoadoutYAML(data []byte) (map[string]*simulatorv1alpha1.Equipment, error) {
	var set twsim.EquipmentSet

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to parse loadout: %w", err)
	}

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

	return out, nil
}

// marshalLoadoutYAML writes equipment in the format parseLoadoutYAML reads
func marshalLoadoutYAML(equipment map[string]*simulatorv1alpha1.Equipment) ([]byte, error) {
	set := &twsim.EquipmentSet{}
	for key, piece := range equipment {
		slot, ok := twsim.ParseSlot(key)
		if !ok || piece == nil {
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

	out, err := yaml.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to encode loadout: %w", err)
	}
	return out, nil
}

// parseEquipFlag parses "slot:stat=value,stat=value". Stats are name, attack,
// defense, critical_rate and element_value.
func parseEquipFlag(spec string) (string, *simulatorv1alpha1.Equipment, error) {
	slotKey, stats, found := strings.Cut(spec, ":")
	if !found {
		return "", nil, fmt.Errorf("invalid --equip %q: expected slot:stat=value,...", spec)
	}

	slot, ok := twsim.ParseSlot(strings.TrimSpace(slotKey))
	if !ok {
		return "", nil, fmt.Errorf("invalid --equip %q: slot must be one of %s",
			spec, strings.Join(twsim.SlotNames(), ", "))
	}

	piece := &simulatorv1alpha1.Equipment{}
	for _, pair := range strings.Split(stats, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, raw, found := strings.Cut(pair, "=")
		if !found {
			return "", nil, fmt.Errorf("invalid --equip %q: %q is not stat=value", spec, pair)
		}

		if name == "name" {
			piece.Name = raw
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid --equip %q: %s is not a number", spec, raw)
		}

		switch name {
		case "attack":
			piece.Attack = value
		case "defense":
			piece.Defense = value
		case "critical_rate":
			piece.CriticalRate = value
		case "element_value":
			piece.ElementValue = value
		default:
			return "", nil, fmt.Errorf("invalid --equip %q: unknown stat %s", spec, name)
		}
	}

	return string(slot), piece, nil
}
