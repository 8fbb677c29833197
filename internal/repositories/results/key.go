package results

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/tw-simulator/internal/engine/damage"
	"github.com/KirkDiggler/tw-simulator/internal/entities/twsim"
)

const keyPrefix = "damage_result:"

// BuildKey hashes every input that can change a DamageResult. Display-only
// creature fields (level, image) are left out; name is kept because results
// carry it.
func BuildKey(stats twsim.OffensiveStats, creature *twsim.Creature, coefficients damage.Coefficients) string {
	d := xxhash.New()

	_, _ = d.WriteString(creature.ID)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(creature.Name)
	_, _ = d.WriteString("\x00")

	writeFloats(d,
		stats.Attack, stats.CriticalRate, stats.ElementValue,
		creature.HP, creature.Defense, creature.FixedDefense, creature.FixedReduction,
		creature.CutRate, creature.ElementResistance,
		coefficients.CriticalMultiplier, coefficients.ElementCoefficient, coefficients.RangeSpread,
	)

	return fmt.Sprintf("%s%016x", keyPrefix, d.Sum64())
}

func writeFloats(d *xxhash.Digest, values ...float64) {
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
}
