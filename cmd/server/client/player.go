package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Show the current player",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.GetPlayer(ctx, &gamev1.GetPlayerRequest{})
		})
	},
}

var spendSkillCmd = &cobra.Command{
	Use:   "spend-skill [damage|crit|heal]",
	Short: "Spend one skill point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.SpendSkillPoint(ctx, &gamev1.SpendSkillPointRequest{Kind: args[0]})
		})
	},
}

var unlockSkillCmd = &cobra.Command{
	Use:   "unlock-skill [optimized_compiler|loop_mastery|debug_suite]",
	Short: "Unlock an advanced skill for two skill points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.UnlockAdvancedSkill(ctx, &gamev1.UnlockAdvancedSkillRequest{Skill: args[0]})
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip [weapon-id]",
	Short: "Equip a weapon from the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.EquipWeapon(ctx, &gamev1.EquipWeaponRequest{WeaponID: args[0]})
		})
	},
}

var restCmd = &cobra.Command{
	Use:   "rest [amount]",
	Short: "Heal outside of battle; no amount heals to full",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := 0
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("amount must be a number: %w", err)
			}
			amount = n
		}
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.Rest(ctx, &gamev1.RestRequest{Amount: amount})
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the save and start over",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c gamev1.GameServiceClient) (any, error) {
			return c.ResetSave(ctx, &gamev1.ResetSaveRequest{})
		})
	},
}

// call dials the server, runs fn under the request timeout and prints the response
func call(cmd *cobra.Command, fn func(context.Context, gamev1.GameServiceClient) (any, error)) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name(), err)
	}
	return printJSON(cmd.OutOrStdout(), resp)
}
