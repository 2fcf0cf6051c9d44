package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/codequest/internal/engine/patterns"
)

var classifierKind string

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Show which coding patterns a source file uses",
	Long: `Run the pattern classifier locally without a server. Examples:

  classify solution.py
  classify --classifier syntax solution.py`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifierKind, "classifier", string(patterns.KindLexical), "lexical or syntax")
}

func runClassify(cmd *cobra.Command, args []string) error {
	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	kind := patterns.Kind(classifierKind)
	if kind != patterns.KindLexical && kind != patterns.KindSyntax {
		return fmt.Errorf("unknown classifier %q", classifierKind)
	}

	detected := patterns.New(kind).Classify(string(code)).Detected()
	if len(detected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No patterns detected")
		return nil
	}

	names := make([]string, len(detected))
	for i, p := range detected {
		names[i] = string(p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Patterns: %s\n", strings.Join(names, ", "))
	return nil
}
