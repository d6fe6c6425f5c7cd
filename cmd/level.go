package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/touchline/internal/skilllevel"
)

var levelCmd = &cobra.Command{
	Use:   "level <percent>",
	Short: "Show the skill level for a score percentage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pct, err := strconv.Atoi(strings.TrimSuffix(args[0], "%"))
		if err != nil {
			return fmt.Errorf("invalid percentage %q: %w", args[0], err)
		}
		if pct < 0 || pct > 100 {
			return fmt.Errorf("percentage %d out of range 0-100", pct)
		}

		l := skilllevel.Classify(pct)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%d-%d%%)\n", l.Badge, l.Name, l.Min, l.Max)
		fmt.Fprintln(out, l.Description)
		if len(l.NextGoals) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next goals:")
			for _, g := range l.NextGoals {
				fmt.Fprintf(out, "  • %s\n", g)
			}
		}
		return nil
	},
}
