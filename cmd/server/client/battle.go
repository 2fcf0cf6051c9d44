package client

import (
	"context"

	"github.com/spf13/cobra"

	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
)

var fightCmd = &cobra.Command{
	Use:   "fight [boss-id]",
	Short: "Start an encounter against a boss",
	Long: `Start a boss fight. Examples:

  fight bug_swarm
  fight infinite_loop`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.StartEncounter(ctx, &gamev1.StartEncounterRequest{BossID: args[0]})
		})
	},
}

var encounterCmd = &cobra.Command{
	Use:   "encounter [encounter-id]",
	Short: "Show an encounter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.GetEncounter(ctx, &gamev1.EncounterRequest{EncounterID: args[0]})
		})
	},
}

var attackCmd = &cobra.Command{
	Use:   "attack [encounter-id] [file]",
	Short: "Attack the boss with the code in a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readCode(args[1])
		if err != nil {
			return err
		}
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.Attack(ctx, &gamev1.AttackRequest{EncounterID: args[0], Code: code})
		})
	},
}

var healCmd = &cobra.Command{
	Use:   "heal [encounter-id]",
	Short: "Spend the turn healing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.Heal(ctx, &gamev1.EncounterRequest{EncounterID: args[0]})
		})
	},
}

var fleeCmd = &cobra.Command{
	Use:   "flee [encounter-id]",
	Short: "Abandon an encounter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.Flee(ctx, &gamev1.EncounterRequest{EncounterID: args[0]})
		})
	},
}
