package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
	"github.com/KirkDiggler/tw-simulator/internal/pkg/format"
)

var (
	sampleLoadoutPath string
	sampleEquipFlags  []string
	sampleCount       int
)

var sampleHitCmd = &cobra.Command{
	Use:   "sample-hit [creature-id]",
	Short: "Draw sample hits of a loadout against one creature",
	Long: `Draw sample hits, each either a critical or a roll inside the normal range.
Example:

  sample-hit appleboss --equip weapon:attack=50000,critical_rate=0.3 --count 5`,
	Args: cobra.ExactArgs(1),
	RunE: sampleHit,
}

func init() {
	sampleHitCmd.Flags().StringVar(&sampleLoadoutPath, "loadout", "", "loadout YAML file")
	sampleHitCmd.Flags().StringArrayVar(&sampleEquipFlags, "equip", nil, "slot:stat=value,... (repeatable)")
	sampleHitCmd.Flags().IntVar(&sampleCount, "count", 1, "number of hits to draw")
}

func sampleHit(_ *cobra.Command, args []string) error {
	if sampleCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	equipment, err := buildLoadout(sampleLoadoutPath, sampleEquipFlags)
	if err != nil {
		return err
	}

	client, cleanup, err := createSimulatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var total int64
	for i := 0; i < sampleCount; i++ {
		resp, err := client.SampleHit(ctx, &simulatorv1alpha1.SampleHitRequest{
			Equipment:  equipment,
			CreatureID: args[0],
		})
		if err != nil {
			return fmt.Errorf("failed to sample hit: %w", err)
		}

		if i == 0 {
			fmt.Printf("Target: %s (%s)\n", resp.Result.CreatureName, resp.CreatureID)
			fmt.Printf("Range: %s - %s, critical %s\n\n",
				format.Number(resp.Result.MinDamage),
				format.Number(resp.Result.MaxDamage),
				format.Number(resp.Result.CriticalDamage))
		}

		marker := ""
		if resp.Hit.Critical {
			marker = " CRITICAL"
		}
		fmt.Printf("Hit %d: %s (d100=%d)%s\n", i+1, format.Number(resp.Hit.Damage), resp.Hit.CriticalRoll, marker)
		total += resp.Hit.Damage
	}

	if sampleCount > 1 {
		fmt.Printf("\nTotal: %s\n", format.Number(total))
	}

	return nil
}
