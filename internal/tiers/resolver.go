package tiers

import (
	"slices"

	"github.com/abhisek/touchline/internal/progress"
)

// UnlockedTiers returns the tiers the learner may attempt. The first tier is
// always present; every passed attempt that unlocks a next tier adds that
// tier. Order is insertion order, not tier rank.
func UnlockedTiers(p progress.Snapshot) []string {
	unlocked := []string{First().Name}
	for _, rec := range p.History() {
		r := rec.Results
		if r.Passed && r.UnlocksNext && r.NextTier != "" && !slices.Contains(unlocked, r.NextTier) {
			unlocked = append(unlocked, r.NextTier)
		}
	}
	return unlocked
}

// HighestCompletedTier returns the highest tier ordinal among passed
// attempts, or 0 when nothing has been passed.
func HighestCompletedTier(p progress.Snapshot) int {
	highest := 0
	for _, rec := range p.Assessments {
		if rec.Results.Passed && rec.Results.Tier > highest {
			highest = rec.Results.Tier
		}
	}
	return highest
}

// CanAccessTier reports whether the named tier is unlocked.
func CanAccessTier(name string, p progress.Snapshot) bool {
	return slices.Contains(UnlockedTiers(p), name)
}

// NextAvailableTier returns the first tier in declaration order that is not
// unlocked yet but could be worked towards: its prerequisite is unlocked, or
// it needs no unlock at all. The bool is false when no such tier exists.
func NextAvailableTier(p progress.Snapshot) (string, bool) {
	unlocked := UnlockedTiers(p)
	for _, c := range table {
		if slices.Contains(unlocked, c.Name) {
			continue
		}
		if !c.RequiresUnlock {
			return c.Name, true
		}
		if pre, ok := prerequisite(c.Name); ok && slices.Contains(unlocked, pre.Name) {
			return c.Name, true
		}
	}
	return "", false
}

// State is a tier's standing for a learner.
type State string

const (
	StateLocked    State = "locked"
	StateUnlocked  State = "unlocked"
	StateCompleted State = "completed"
)

// Icon returns the display glyph for the state.
func (s State) Icon() string {
	switch s {
	case StateCompleted:
		return "✓"
	case StateUnlocked:
		return "▶"
	default:
		return "🔒"
	}
}

// Status summarizes one tier for display.
type Status struct {
	Config   Config
	State    State
	Attempts int
	Best     int // best percentage, -1 when never attempted
}

// Statuses reports every tier's standing in declaration order.
func Statuses(p progress.Snapshot) []Status {
	unlocked := UnlockedTiers(p)
	out := make([]Status, 0, len(table))
	for _, c := range table {
		st := Status{Config: c, State: StateLocked, Best: -1}
		if slices.Contains(unlocked, c.Name) {
			st.State = StateUnlocked
		}
		for _, rec := range p.Assessments {
			if rec.Mode != c.Name {
				continue
			}
			st.Attempts++
			if rec.Results.Percentage > st.Best {
				st.Best = rec.Results.Percentage
			}
			if rec.Results.Passed {
				st.State = StateCompleted
			}
		}
		out = append(out, st)
	}
	return out
}
