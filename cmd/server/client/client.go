// Package client provides commands that play the game against a running server
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Play CodeQuest against a running server",
	Long:  `Client commands make real gRPC requests to the game service and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	// Attacks wait out the boss's retaliation so the default leaves room for it
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Player commands
	ClientCmd.AddCommand(playerCmd)
	ClientCmd.AddCommand(spendSkillCmd)
	ClientCmd.AddCommand(unlockSkillCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(restCmd)
	ClientCmd.AddCommand(resetCmd)

	// Battle commands
	ClientCmd.AddCommand(fightCmd)
	ClientCmd.AddCommand(encounterCmd)
	ClientCmd.AddCommand(attackCmd)
	ClientCmd.AddCommand(healCmd)
	ClientCmd.AddCommand(fleeCmd)

	// Dungeon commands
	ClientCmd.AddCommand(dungeonCmd)
	ClientCmd.AddCommand(runCmd)
	ClientCmd.AddCommand(submitCmd)
}

// createGameClient creates a game service client
func createGameClient() (gamev1.GameServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return gamev1.NewGameServiceClient(conn), cleanup, nil
}

// printJSON writes v indented, matching what the HTTP mirror returns
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
