// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tw-simulator/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "tw-simulator",
	Short: "Damage simulator gRPC server",
	Long:  `tw-simulator resolves equipment loadouts against a creature roster and serves the results over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
