package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
)

var creatureName string

var getCreatureCmd = &cobra.Command{
	Use:   "get-creature [creature-id]",
	Short: "Show one creature's defensive profile",
	Long:  `Show one creature by ID, or by its exact display name with --name.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  getCreature,
}

func init() {
	getCreatureCmd.Flags().StringVar(&creatureName, "name", "", "look the creature up by exact name instead of ID")
}

func getCreature(_ *cobra.Command, args []string) error {
	req, err := buildGetCreatureRequest(args, creatureName)
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

	resp, err := client.GetCreature(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get creature: %w", err)
	}

	renderCreatureDetail(os.Stdout, resp.Creature)
	return nil
}

func buildGetCreatureRequest(args []string, name string) (*simulatorv1alpha1.GetCreatureRequest, error) {
	switch {
	case len(args) == 1 && name != "":
		return nil, fmt.Errorf("pass either a creature ID or --name, not both")
	case len(args) == 1:
		return &simulatorv1alpha1.GetCreatureRequest{CreatureID: args[0]}, nil
	case name != "":
		return &simulatorv1alpha1.GetCreatureRequest{Name: name}, nil
	default:
		return nil, fmt.Errorf("a creature ID or --name is required")
	}
}
