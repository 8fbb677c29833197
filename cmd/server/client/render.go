package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/pkg/format"
)

func renderCreatures(w io.Writer, creatures []*simulatorv1alpha1.Creature) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLV\tHP\tDEF\tFIXED DEF\tCUT\tELEM RES")
	for _, c := range creatures {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Level,
			format.Number(int64(c.HP)),
			format.Number(int64(c.Defense)),
			format.Number(int64(c.FixedDefense)),
			format.Percent(c.CutRate, 0),
			format.Float(c.ElementResistance, 0))
	}
	_ = tw.Flush()
}

func renderCreatureDetail(w io.Writer, c *simulatorv1alpha1.Creature) {
	fmt.Fprintf(w, "%s (%s)\n", c.Name, c.ID)
	fmt.Fprintf(w, "  Level: %d\n", c.Level)
	fmt.Fprintf(w, "  HP: %s\n", format.Number(int64(c.HP)))
	fmt.Fprintf(w, "  Defense: %s\n", format.Number(int64(c.Defense)))
	fmt.Fprintf(w, "  Fixed Defense: %s\n", format.Number(int64(c.FixedDefense)))
	fmt.Fprintf(w, "  Fixed Reduction: %s\n", format.Number(int64(c.FixedReduction)))
	fmt.Fprintf(w, "  Cut Rate: %s\n", format.Percent(c.CutRate, 1))
	fmt.Fprintf(w, "  Element Resistance: %s\n", format.Float(c.ElementResistance, 0))
	if c.ImageURL != "" {
		fmt.Fprintf(w, "  Image: %s\n", c.ImageURL)
	}
}

func renderCalculation(w io.Writer, resp *simulatorv1alpha1.CalculateDamageResponse) {
	fmt.Fprintf(w, "Calculation %s\n", resp.CalculationID)
	if s := resp.Stats; s != nil {
		fmt.Fprintf(w, "Attack %s  Defense %s  Critical %s  Element %s\n\n",
			format.Number(int64(s.Attack)),
			format.Number(int64(s.Defense)),
			format.Percent(s.CriticalRate, 1),
			format.Float(s.ElementValue, 0))
	}

	if resp.NoOffense {
		fmt.Fprintln(w, "Loadout has no attack; nothing to calculate.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATURE\tNORMAL\tRANGE\tCRITICAL\tEXPECTED\tHITS")
	for _, r := range resp.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s-%s\t%s\t%s\t%s\n",
			r.CreatureName,
			format.Number(r.NormalDamage),
			format.Number(r.MinDamage),
			format.Number(r.MaxDamage),
			format.Number(r.CriticalDamage),
			format.Float(r.ExpectedDamage, 1),
			format.Number(r.HitsToKill))
	}
	_ = tw.Flush()
}
