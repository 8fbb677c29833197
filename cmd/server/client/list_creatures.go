package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
)

var listCreaturesCmd = &cobra.Command{
	Use:   "list-creatures",
	Short: "List the creature roster",
	RunE:  listCreatures,
}

func listCreatures(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSimulatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCreatures(ctx, &simulatorv1alpha1.ListCreaturesRequest{})
	if err != nil {
		return fmt.Errorf("failed to list creatures: %w", err)
	}

	fmt.Printf("Found %d creatures:\n\n", len(resp.Creatures))
	renderCreatures(os.Stdout, resp.Creatures)

	return nil
}
