package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/touchline/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "Count questions per category and difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}
		printComposition(cmd, b)
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML or JSON question bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := questionbank.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions OK\n\n", args[0], b.Len())
		printComposition(cmd, b)
		return nil
	},
}

func printComposition(cmd *cobra.Command, b *questionbank.Bank) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-22s  %-8s  %9s\n", "Category", "Level", "Questions")
	fmt.Fprintln(out, strings.Repeat("─", 43))
	for _, c := range b.Composition() {
		fmt.Fprintf(out, "%-22s  %-8s  %9d\n", c.Category.DisplayName(), c.Difficulty, c.Questions)
	}
	fmt.Fprintln(out, strings.Repeat("─", 43))
	fmt.Fprintf(out, "%-22s  %-8s  %9d\n", "TOTAL", "", b.Len())
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
