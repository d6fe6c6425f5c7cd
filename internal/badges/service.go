// Package badges awards achievement badges for assessment results and
// records them in the event store.
package badges

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/store"
	"github.com/abhisek/touchline/internal/tiers"
)

// MinCategoryQuestions is how many questions a category needs before a
// clean sweep of it counts as an ace.
const MinCategoryQuestions = 2

// Service computes and records badge awards.
type Service struct {
	eventRepo store.EventRepo
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a badge service. A nil repo disables persistence.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    slog.Default(),
		now:       time.Now,
	}
}

// AwardForResults works out which badges a results report earns, records
// them and returns them in award order. Reports with no answered questions
// earn nothing.
func (s *Service) AwardForResults(ctx context.Context, sessionID string, r assessment.Results) []Award {
	if r.TotalQuestions == 0 {
		return nil
	}

	var awards []Award
	add := func(t Type, rarity Rarity, category, reason string) {
		awards = append(awards, Award{
			Type:      t,
			Rarity:    rarity,
			Category:  category,
			SessionID: sessionID,
			Reason:    reason,
			AwardedAt: s.now(),
		})
	}

	tierName := tiers.Config{Name: r.Tier}.DisplayName()
	if r.Passed {
		add(TierPassed, TierRarity(r.TierOrdinal), "", fmt.Sprintf("Passed %s Assessment", tierName))
	}
	if r.CertificateEligible {
		add(Certificate, ScoreRarity(r.Percentage), "", fmt.Sprintf("Certificate earned with %d%%", r.Percentage))
	}
	if r.Perfect() {
		add(PerfectScore, RarityEpic, "", fmt.Sprintf("Every %s question answered correctly", tierName))
	}
	for _, cr := range r.CategoryResults {
		if cr.Total >= MinCategoryQuestions && cr.Correct == cr.Total {
			add(CategoryAce, RarityRare, string(cr.Category),
				fmt.Sprintf("Aced %s (%d/%d)", cr.Category.DisplayName(), cr.Correct, cr.Total))
		}
	}
	if m := StreakMilestone(r.LongestStreak()); m > 0 {
		add(HotStreak, StreakRarity(m), "", fmt.Sprintf("%d correct in a row!", m))
	}
	if r.IsMaxLevel && r.Passed {
		add(MaxLevel, RarityLegendary, "", "Completed the final tier")
	}

	for i := range awards {
		s.persist(ctx, &awards[i])
	}
	return awards
}

// Counts returns the number of badges ever awarded per type and in total.
func (s *Service) Counts(ctx context.Context) (map[Type]int, int, error) {
	if s.eventRepo == nil {
		return map[Type]int{}, 0, nil
	}
	raw, total, err := s.eventRepo.BadgeCounts(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("badge counts: %w", err)
	}
	counts := make(map[Type]int, len(raw))
	for t, n := range raw {
		counts[Type(t)] = n
	}
	return counts, total, nil
}

func (s *Service) persist(ctx context.Context, award *Award) {
	if s.eventRepo == nil {
		return
	}
	data := store.BadgeEventData{
		BadgeType: string(award.Type),
		Rarity:    string(award.Rarity),
		SessionID: award.SessionID,
		Reason:    award.Reason,
	}
	if award.Category != "" {
		data.Category = &award.Category
	}
	if err := s.eventRepo.AppendBadgeEvent(ctx, data); err != nil {
		s.logger.Warn("persist badge", "type", award.Type, "err", err)
	}
}
