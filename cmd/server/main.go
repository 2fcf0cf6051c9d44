// Package main is the entry point for the codequest server and its dev client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/codequest/cmd/server/client"
	"github.com/KirkDiggler/codequest/internal/logging"
)

var (
	configPath string
	debug      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "codequest",
	Short: "CodeQuest game server",
	Long:  `CodeQuest turns code submissions into attacks against bosses and stages of a dungeon.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync() // nolint:errcheck // stderr sync fails on some terminals
		}
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "codequest.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
