// Package coach turns assessment results into a short study plan, asking a
// language model when one is configured.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/llm"
)

// Advice is a study plan.
type Advice struct {
	Headline string   `json:"headline"`
	Tips     []string `json:"tips"`
	Drills   []string `json:"drills"`

	// Generated is false for the built-in fallback plan.
	Generated bool `json:"-"`
}

// Service produces advice. A nil provider always yields the fallback.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *slog.Logger
}

// NewService creates a coach.
func NewService(provider llm.Provider, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// Advise returns a study plan for r. Provider failures are logged and
// answered with Fallback, so the error is non-nil only when ctx is done.
func (s *Service) Advise(ctx context.Context, r assessment.Results) (*Advice, error) {
	if s.provider == nil {
		return Fallback(r), nil
	}

	a, err := s.generate(ctx, r)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("coach advice unavailable, using fallback", "err", err)
		return Fallback(r), nil
	}
	return a, nil
}

func (s *Service) generate(ctx context.Context, r assessment.Results) (*Advice, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeCoach)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(r)}},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("study plan: %w", err)
	}

	var a Advice
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, fmt.Errorf("parse study plan: %w", err)
	}
	if a.Headline == "" {
		return nil, fmt.Errorf("study plan has no headline")
	}
	a.Generated = true
	return &a, nil
}

// Fallback builds advice from the results alone: focus-area suggestions
// first, then the skill level's next goals.
func Fallback(r assessment.Results) *Advice {
	a := &Advice{Headline: headline(r)}

	a.Tips = append(a.Tips, r.Recommendations.Immediate...)
	for _, cat := range r.Recommendations.Focus {
		if _, ok := assessment.ImmediateSuggestion(cat); !ok {
			a.Tips = append(a.Tips, fmt.Sprintf("Spend your next practice session on %s.", cat.DisplayName()))
		}
	}
	a.Drills = append(a.Drills, r.SkillLevel.NextGoals...)
	if len(a.Tips) == 0 {
		a.Tips = []string{"Move up a tier and keep your streak going."}
	}
	return a
}

func headline(r assessment.Results) string {
	switch {
	case r.TotalQuestions == 0:
		return "No answers yet. Give the assessment a go!"
	case r.Percentage == 100:
		return "A perfect score. Outstanding!"
	case r.Passed && r.IsMaxLevel:
		return fmt.Sprintf("%d%%: you've conquered the top tier.", r.Percentage)
	case r.Passed:
		return fmt.Sprintf("%d%%: passed! The next tier is open.", r.Percentage)
	default:
		return fmt.Sprintf("%d%%: %d%% needed to pass. You're getting there.", r.Percentage, r.PassingScore)
	}
}
