package assessment

import (
	"math"
	"slices"
	"time"

	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/skilllevel"
	"github.com/abhisek/touchline/internal/tiers"
)

// FocusThreshold is the category percentage below which a category is
// flagged for focus.
const FocusThreshold = 60

var immediateSuggestions = map[questionbank.Category]string{
	questionbank.CategoryBasicRules: "Review the Laws of the Game, starting with offside, fouls and restarts.",
	questionbank.CategoryPositions:  "Study what each position does with and without the ball.",
	questionbank.CategoryStrategy:   "Watch a full match and note how each team's shape changes when it loses the ball.",
}

// ImmediateSuggestion returns the study suggestion shown when cat needs
// focus, if the category has one.
func ImmediateSuggestion(cat questionbank.Category) (string, bool) {
	s, ok := immediateSuggestions[cat]
	return s, ok
}

// CategoryResult is one category's share of the results.
type CategoryResult struct {
	Category   questionbank.Category
	Correct    int
	Total      int
	Points     int
	Percentage int
}

// Recommendations lists weak categories and what to do about them.
type Recommendations struct {
	Focus     []questionbank.Category
	Immediate []string
}

// Results is the report produced at the end of an assessment.
type Results struct {
	SessionID           string
	Tier                string
	TierOrdinal         int
	PlannedQuestions    int
	TotalQuestions      int // answered questions
	CorrectAnswers      int
	Percentage          int
	TotalPoints         int
	SkillLevel          skilllevel.Level
	CategoryResults     []CategoryResult
	TimeElapsed         time.Duration
	Passed              bool
	PassingScore        int
	CertificateEligible bool
	Responses           []Response
	Recommendations     Recommendations
	UnlocksNext         bool
	NextTier            string
	IsMaxLevel          bool
}

// CalculateResults scores the responses recorded so far and marks the
// assessment complete. The percentage is over answered questions, so an
// early finish is scored only on what was attempted.
func (a *Assessment) CalculateResults() Results {
	cfg := a.config
	r := Results{
		SessionID:        a.id,
		Tier:             cfg.Name,
		TierOrdinal:      cfg.Tier,
		PlannedQuestions: len(a.questions),
		TotalQuestions:   len(a.responses),
		PassingScore:     cfg.EffectivePassingScore(),
		Responses:        slices.Clone(a.responses),
		IsMaxLevel:       cfg.IsMaxLevel,
	}

	for _, resp := range a.responses {
		if resp.Correct {
			r.CorrectAnswers++
			r.TotalPoints += resp.Points
		}
	}
	r.Percentage = percent(r.CorrectAnswers, r.TotalQuestions)
	if !a.started.IsZero() {
		r.TimeElapsed = a.now().Sub(a.started)
	}

	r.Passed = r.Percentage >= r.PassingScore
	r.UnlocksNext = r.Passed && cfg.Unlocks != ""
	if r.UnlocksNext {
		r.NextTier = cfg.Unlocks
	}
	r.CertificateEligible = r.Percentage >= tiers.CertificateThreshold
	r.SkillLevel = skilllevel.Classify(r.Percentage)

	for _, cat := range a.orderedCategories() {
		sc := a.scores[cat]
		cr := CategoryResult{
			Category:   cat,
			Correct:    sc.Correct,
			Total:      sc.Total,
			Points:     sc.Points,
			Percentage: percent(sc.Correct, sc.Total),
		}
		r.CategoryResults = append(r.CategoryResults, cr)
		if cr.Percentage < FocusThreshold {
			r.Recommendations.Focus = append(r.Recommendations.Focus, cat)
			if s, ok := immediateSuggestions[cat]; ok {
				r.Recommendations.Immediate = append(r.Recommendations.Immediate, s)
			}
		}
	}

	a.state = StateComplete
	return r
}

// orderedCategories returns scored categories in display order, followed by
// any unknown ones in the order they were first answered.
func (a *Assessment) orderedCategories() []questionbank.Category {
	var out []questionbank.Category
	for _, c := range questionbank.AllCategories() {
		if _, ok := a.scores[c]; ok {
			out = append(out, c)
		}
	}
	for _, c := range a.categories {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

// Record converts the results into the form stored in learner progress.
func (r Results) Record(completedAt time.Time) progress.AssessmentRecord {
	return progress.AssessmentRecord{
		Mode:        r.Tier,
		CompletedAt: completedAt,
		Results: progress.StoredResult{
			Tier:                r.TierOrdinal,
			Passed:              r.Passed,
			UnlocksNext:         r.UnlocksNext,
			NextTier:            r.NextTier,
			Percentage:          r.Percentage,
			TotalPoints:         r.TotalPoints,
			SkillLevel:          r.SkillLevel.ID,
			CertificateEligible: r.CertificateEligible,
		},
	}
}

// LongestStreak is the longest run of consecutive correct responses.
func (r Results) LongestStreak() int {
	best, run := 0, 0
	for _, resp := range r.Responses {
		if resp.Correct {
			run++
			best = max(best, run)
		} else {
			run = 0
		}
	}
	return best
}

// Perfect reports whether every planned question was answered correctly.
func (r Results) Perfect() bool {
	return r.TotalQuestions > 0 && r.CorrectAnswers == r.TotalQuestions && r.TotalQuestions == r.PlannedQuestions
}
