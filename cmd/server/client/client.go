// Package client provides commands for calling the simulator gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the simulator",
	Long:  `Client commands call a running simulator server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Roster
	ClientCmd.AddCommand(listCreaturesCmd)
	ClientCmd.AddCommand(getCreatureCmd)

	// Damage
	ClientCmd.AddCommand(calculateCmd)
	ClientCmd.AddCommand(sampleHitCmd)

	// Image analysis
	ClientCmd.AddCommand(detectCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createSimulatorClient creates a simulator service client
func createSimulatorClient() (simulatorv1alpha1.SimulatorServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return simulatorv1alpha1.NewSimulatorServiceClient(conn), cleanup, nil
}
