// Package results shows the outcome of a finished assessment or practice
// run, along with the coach's study plan.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/coach"
	"github.com/abhisek/touchline/internal/diagnosis"
	"github.com/abhisek/touchline/internal/lessonquiz"
	"github.com/abhisek/touchline/internal/router"
	"github.com/abhisek/touchline/internal/screen"
	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/tiers"
	"github.com/abhisek/touchline/internal/ui/components"
	"github.com/abhisek/touchline/internal/ui/layout"
	"github.com/abhisek/touchline/internal/ui/theme"
)

// Advisor produces a study plan for assessment results.
type Advisor interface {
	Advise(ctx context.Context, r assessment.Results) (*coach.Advice, error)
}

type adviceMsg struct {
	Advice *coach.Advice
	Err    error
}

// ResultsScreen displays a run's outcome.
type ResultsScreen struct {
	outcome *session.Outcome
	advisor Advisor
	advice  *coach.Advice
	loading bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. A nil advisor shows the built-in plan.
func New(outcome *session.Outcome, advisor Advisor) *ResultsScreen {
	return &ResultsScreen{outcome: outcome, advisor: advisor}
}

func (s *ResultsScreen) Init() tea.Cmd {
	r := s.outcome.Results
	if r == nil {
		return nil
	}
	if s.advisor == nil {
		s.advice = coach.Fallback(*r)
		return nil
	}
	s.loading = true
	advisor := s.advisor
	results := *r
	return func() tea.Msg {
		a, err := advisor.Advise(context.Background(), results)
		return adviceMsg{Advice: a, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	if s.outcome.Results != nil {
		return "Results"
	}
	return "Practice Complete"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case adviceMsg:
		s.loading = false
		s.advice = msg.Advice
		if msg.Err != nil || s.advice == nil {
			s.advice = coach.Fallback(*s.outcome.Results)
		}
	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string
	if r := s.outcome.Results; r != nil {
		sections = append(sections, s.renderScore(*r, cw), s.renderCategories(*r, cw))
	} else if p := s.outcome.Practice; p != nil {
		sections = append(sections, renderPractice(*p, cw))
	}
	if len(s.outcome.Badges) > 0 {
		sections = append(sections, s.renderBadges(cw))
	}
	if len(s.outcome.Unlocked) > 0 {
		sections = append(sections, renderUnlocked(s.outcome.Unlocked, cw))
	}
	if m := s.outcome.Mistakes; m != nil && len(m.Mistakes) > 0 {
		sections = append(sections, renderMistakes(*m, cw))
	}
	if s.outcome.Results != nil {
		sections = append(sections, s.renderAdvice(cw))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *ResultsScreen) renderScore(r assessment.Results, cw int) string {
	verdict := theme.Incorrect.Render("NOT PASSED")
	if r.Passed {
		verdict = theme.Correct.Render("PASSED")
	}
	cfg, _ := tiers.Resolve(r.Tier)

	score := lipgloss.NewStyle().
		Foreground(theme.ScoreColor(r.Percentage, r.PassingScore)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", r.Percentage))

	lines := []string{
		theme.Title.Render(cfg.DisplayName() + " Assessment"),
		"",
		score + "   " + verdict,
		theme.Hint.Render(fmt.Sprintf("%d of %d correct · %d points · passing score %d%%",
			r.CorrectAnswers, r.TotalQuestions, r.TotalPoints, r.PassingScore)),
		"",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(r.SkillLevel.Badge + " " + r.SkillLevel.Name),
		theme.Hint.Render(r.SkillLevel.Description),
	}
	if r.CertificateEligible {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Legendary).Bold(true).Render("📜 Certificate earned!"))
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *ResultsScreen) renderCategories(r assessment.Results, cw int) string {
	var b strings.Builder
	b.WriteString(layout.Centered("By category", cw, theme.TextDim))
	b.WriteString("\n")
	for _, c := range r.CategoryResults {
		if c.Total == 0 {
			continue
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-12s %d/%d", c.Category.DisplayName(), c.Correct, c.Total),
			float64(c.Percentage)/100, true, cw)
		bar.Fill = theme.ScoreColor(c.Percentage, assessment.FocusThreshold)
		b.WriteString("\n" + bar.View())
	}
	return b.String()
}

func renderPractice(p lessonquiz.Summary, cw int) string {
	lines := []string{
		theme.Title.Render("Practice complete"),
		"",
		lipgloss.NewStyle().
			Foreground(theme.ScoreColor(int(p.Accuracy*100), int(p.Target*100))).
			Bold(true).
			Render(fmt.Sprintf("%d of %d correct", p.Correct, p.Asked)),
	}
	if len(p.Concepts) > 0 {
		lines = append(lines, "", theme.Hint.Render("Concepts practised: "+strings.Join(p.Concepts, ", ")))
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *ResultsScreen) renderBadges(cw int) string {
	var b strings.Builder
	b.WriteString(layout.Centered("Badges earned", cw, theme.TextDim))
	for _, a := range s.outcome.Badges {
		line := fmt.Sprintf("%s %s %s · %s", a.Type.Icon(), a.Rarity.DisplayName(), a.Type.DisplayName(), a.Reason)
		b.WriteString("\n")
		b.WriteString(layout.Centered(line, cw, theme.RarityColor(string(a.Rarity))))
	}
	return b.String()
}

func renderUnlocked(names []string, cw int) string {
	var labels []string
	for _, n := range names {
		cfg, _ := tiers.Resolve(n)
		labels = append(labels, cfg.DisplayName())
	}
	return layout.Centered("🔓 Unlocked: "+strings.Join(labels, ", "), cw, theme.Accent)
}

func renderMistakes(r diagnosis.Report, cw int) string {
	var parts []string
	for _, c := range diagnosis.Categories() {
		if n := r.Counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s ×%d", c.Label(), n))
		}
	}
	return layout.Centered("Mistakes: "+strings.Join(parts, " · "), cw, theme.TextDim)
}

func (s *ResultsScreen) renderAdvice(cw int) string {
	if s.loading || s.advice == nil {
		return layout.Centered("The coach is looking over your answers...", cw, theme.TextDim)
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(cw).Render("Coach: " + s.advice.Headline))
	for _, tip := range s.advice.Tips {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render("• " + tip))
	}
	if len(s.advice.Drills) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Next goals"))
		for _, d := range s.advice.Drills {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render("◦ " + d))
		}
	}
	return b.String()
}
