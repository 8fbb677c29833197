// Package twsim defines the data shapes shared by the damage engine and the
// layers around it: gear, loadouts, creatures and damage results.
package twsim

// Slot names one of the five fixed equipment positions
type Slot string

// Equipment slots
const (
	SlotWeapon     Slot = "weapon"
	SlotArmor      Slot = "armor"
	SlotAccessory1 Slot = "accessory1"
	SlotAccessory2 Slot = "accessory2"
	SlotSpecial    Slot = "special"
)

// AllSlots returns the five slots in display order
func AllSlots() []Slot {
	return []Slot{SlotWeapon, SlotArmor, SlotAccessory1, SlotAccessory2, SlotSpecial}
}

// ParseSlot maps a slot key to a Slot. Only the five fixed keys are accepted.
func ParseSlot(key string) (Slot, bool) {
	for _, s := range AllSlots() {
		if string(s) == key {
			return s, true
		}
	}
	return "", false
}

// SlotNames returns the slot keys as strings, for validation messages
func SlotNames() []string {
	slots := AllSlots()
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = string(s)
	}
	return names
}

// Equipment is a single gear piece. Values are treated as immutable; a slot
// is re-equipped by replacing the whole piece.
type Equipment struct {
	Name         string  `json:"name" yaml:"name"`
	Attack       float64 `json:"attack" yaml:"attack"`
	Defense      float64 `json:"defense" yaml:"defense"`
	CriticalRate float64 `json:"critical_rate" yaml:"critical_rate"`
	ElementValue float64 `json:"element_value" yaml:"element_value"`
}

// EquipmentSet holds at most one piece per slot. A nil field is an empty slot.
type EquipmentSet struct {
	Weapon     *Equipment `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	Armor      *Equipment `json:"armor,omitempty" yaml:"armor,omitempty"`
	Accessory1 *Equipment `json:"accessory1,omitempty" yaml:"accessory1,omitempty"`
	Accessory2 *Equipment `json:"accessory2,omitempty" yaml:"accessory2,omitempty"`
	Special    *Equipment `json:"special,omitempty" yaml:"special,omitempty"`
}

// Get returns the piece in slot, or nil when the slot is empty or unknown
func (s *EquipmentSet) Get(slot Slot) *Equipment {
	if s == nil {
		return nil
	}

	switch slot {
	case SlotWeapon:
		return s.Weapon
	case SlotArmor:
		return s.Armor
	case SlotAccessory1:
		return s.Accessory1
	case SlotAccessory2:
		return s.Accessory2
	case SlotSpecial:
		return s.Special
	default:
		return nil
	}
}

// Equip places eq in slot, replacing whatever was there. Passing nil empties
// the slot. Returns false for an unknown slot.
func (s *EquipmentSet) Equip(slot Slot, eq *Equipment) bool {
	switch slot {
	case SlotWeapon:
		s.Weapon = eq
	case SlotArmor:
		s.Armor = eq
	case SlotAccessory1:
		s.Accessory1 = eq
	case SlotAccessory2:
		s.Accessory2 = eq
	case SlotSpecial:
		s.Special = eq
	default:
		return false
	}
	return true
}

// Occupied returns the slots that hold a piece, in display order
func (s *EquipmentSet) Occupied() []Slot {
	var slots []Slot
	for _, slot := range AllSlots() {
		if s.Get(slot) != nil {
			slots = append(slots, slot)
		}
	}
	return slots
}

// OffensiveStats is the aggregate of a loadout. It is always derived, never stored.
type OffensiveStats struct {
	Attack       float64 `json:"attack"`
	Defense      float64 `json:"defense"`
	CriticalRate float64 `json:"critical_rate"`
	ElementValue float64 `json:"element_value"`
}
