package testutils

import (
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

// AppleBossID is the first creature of the default roster
const AppleBossID = "appleboss"

// CreateTestDummy creates a creature with no defenses, so damage equals attack
func CreateTestDummy(id string, hp float64) *twsim.Creature {
	return &twsim.Creature{
		ID:    id,
		Name:  "Dummy " + id,
		Level: 1,
		HP:    hp,
	}
}

// CreateAppleBoss returns the appleboss profile from the default roster. Its
// fixed defense floors every hit below 50000 attack to 1.
func CreateAppleBoss() *twsim.Creature {
	return &twsim.Creature{
		ID:                AppleBossID,
		Name:              "りんごボス",
		Level:             30,
		HP:                1000,
		Defense:           1500,
		FixedDefense:      7200,
		CutRate:           0.48,
		ElementResistance: 120,
		ImageURL:          "https://example.com/lizpos.png",
	}
}
