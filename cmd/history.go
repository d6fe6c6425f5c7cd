package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/touchline/internal/store"
	"github.com/abhisek/touchline/internal/tiers"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		done, err := store.CompletedAssessments(cmd.Context(), s.EventRepo(), limit)
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(done) == 0 {
			fmt.Fprintln(out, "No assessments yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-13s  %7s  %5s  %-6s  %6s  %-13s  %s\n",
			"Date", "Tier", "Score", "%", "Result", "Points", "Level", "Time")
		fmt.Fprintln(out, strings.Repeat("─", 88))
		for _, e := range done {
			name := e.Tier
			if c, ok := tiers.Lookup(e.Tier); ok {
				name = c.DisplayName()
			}
			result := "fail"
			if e.Passed {
				result = "pass"
			}
			fmt.Fprintf(out, "%-16s  %-13s  %3d/%-3d  %4d%%  %-6s  %6d  %-13s  %dm%02ds\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				name,
				e.CorrectAnswers, e.Questions,
				e.Percentage,
				result,
				e.Points,
				e.SkillLevel,
				e.DurationSecs/60, e.DurationSecs%60,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show")
}
