package results_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/tw-simulator/internal/engine/damage"
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
	"github.com/KirkDiggler/tw-simulator/internal/repositories/results"
)

func TestBuildKey(t *testing.T) {
	stats := twsim.OffensiveStats{Attack: 500, CriticalRate: 0.25, ElementValue: 20}
	creature := &twsim.Creature{ID: "golem", Name: "Golem", HP: 900, Defense: 400}
	coeffs := damage.DefaultCoefficients()

	key := results.BuildKey(stats, creature, coeffs)
	assert.True(t, strings.HasPrefix(key, "damage_result:"))
	assert.Len(t, key, len("damage_result:")+16)
	assert.Equal(t, key, results.BuildKey(stats, creature, coeffs))

	// defense of the loadout does not affect damage dealt
	withDefense := stats
	withDefense.Defense = 300
	assert.Equal(t, key, results.BuildKey(withDefense, creature, coeffs))

	changedStats := stats
	changedStats.Attack = 501
	assert.NotEqual(t, key, results.BuildKey(changedStats, creature, coeffs))

	changedCreature := *creature
	changedCreature.CutRate = 0.1
	assert.NotEqual(t, key, results.BuildKey(stats, &changedCreature, coeffs))

	changedCoeffs := coeffs
	changedCoeffs.CriticalMultiplier = 2
	assert.NotEqual(t, key, results.BuildKey(stats, creature, changedCoeffs))
}
