package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
)

var (
	loadoutPath string
	equipFlags  []string
	creatureIDs []string
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate damage of a loadout against the roster",
	Long: `Calculate damage of a loadout against every creature, or the ones named
with --creature. The loadout comes from a YAML file, from --equip flags, or both
(flags replace slots from the file). Examples:

  calculate --loadout loadout.yaml
  calculate --equip weapon:attack=1000,critical_rate=0.1,element_value=20
  calculate --equip weapon:attack=500 --equip accessory1:critical_rate=0.05 --creature appleboss`,
	RunE: calculate,
}

func init() {
	calculateCmd.Flags().StringVar(&loadoutPath, "loadout", "", "loadout YAML file")
	calculateCmd.Flags().StringArrayVar(&equipFlags, "equip", nil, "slot:stat=value,... (repeatable)")
	calculateCmd.Flags().StringSliceVar(&creatureIDs, "creature", nil, "creature IDs to evaluate (default: all)")
}

func calculate(_ *cobra.Command, _ []string) error {
	equipment, err := buildLoadout(loadoutPath, equipFlags)
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

	resp, err := client.CalculateDamage(ctx, &simulatorv1alpha1.CalculateDamageRequest{
		Equipment:   equipment,
		CreatureIDs: creatureIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate damage: %w", err)
	}

	renderCalculation(os.Stdout, resp)
	return nil
}

// buildLoadout merges a loadout file with --equip overrides
func buildLoadout(path string, overrides []string) (map[string]*simulatorv1alpha1.Equipment, error) {
	equipment := make(map[string]*simulatorv1alpha1.Equipment)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read loadout: %w", err)
		}
		equipment, err = parseLoadoutYAML(data)
		if err != nil {
			return nil, err
		}
	}

	for _, spec := range overrides {
		slot, piece, err := parseEquipFlag(spec)
		if err != nil {
			return nil, err
		}
		equipment[slot] = piece
	}

	if len(equipment) == 0 {
		return nil, fmt.Errorf("no equipment given: use --loadout or --equip")
	}

	return equipment, nil
}
