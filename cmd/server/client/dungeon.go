package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
)

var dungeonCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Start a dungeon run and show the first stage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.StartDungeon(ctx, &gamev1.StartDungeonRequest{})
		})
	},
}

var runCmd = &cobra.Command{
	Use:   "run [run-id]",
	Short: "Show a dungeon run and its current stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.GetDungeonRun(ctx, &gamev1.DungeonRunRequest{RunID: args[0]})
		})
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit [run-id] [file]",
	Short: "Submit a solution for the run's current stage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readCode(args[1])
		if err != nil {
			return err
		}
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.SubmitStage(ctx, &gamev1.SubmitStageRequest{RunID: args[0], Code: code})
		})
	},
}

// readCode loads a submission; "-" reads stdin
func readCode(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read code: %w", err)
	}
	return string(data), nil
}
