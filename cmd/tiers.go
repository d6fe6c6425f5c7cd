package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/store"
	"github.com/abhisek/touchline/internal/tiers"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show assessment tiers and which ones are unlocked",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := newSessionService(s)
		p, err := svc.LoadProgress(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-3s %-13s %9s %6s %6s %9s %5s\n",
			"", "Tier", "Questions", "Pass", "Timer", "Attempts", "Best")
		fmt.Fprintln(out, strings.Repeat("─", 58))
		for _, st := range tiers.Statuses(p) {
			c := st.Config
			timer := "off"
			if c.TimeLimit > 0 {
				timer = fmt.Sprintf("%ds", c.TimeLimit)
			}
			best := "-"
			if st.Best >= 0 {
				best = fmt.Sprintf("%d%%", st.Best)
			}
			fmt.Fprintf(out, "%-3s %-13s %9d %5d%% %6s %9d %5s\n",
				st.State.Icon(), c.DisplayName(), c.TotalQuestions,
				c.EffectivePassingScore(), timer, st.Attempts, best)
		}
		return nil
	},
}

// newSessionService builds a session service over s with the built-in bank.
func newSessionService(s *store.Store) *session.Service {
	return session.NewService(session.Deps{
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
	})
}
