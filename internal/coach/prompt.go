package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/touchline/internal/assessment"
)

const systemPrompt = `You are a friendly football coach helping a fan learn the game: its rules, positions, tactics and history. You give short, specific advice and never invent rules.`

func buildUserMessage(r assessment.Results) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Assessment tier: %s\n", r.Tier)
	fmt.Fprintf(&b, "Score: %d%% (%d of %d correct), passing score %d%%\n",
		r.Percentage, r.CorrectAnswers, r.TotalQuestions, r.PassingScore)
	fmt.Fprintf(&b, "Skill level: %s\n", r.SkillLevel.Name)
	if r.Passed {
		b.WriteString("Result: passed\n")
	} else {
		b.WriteString("Result: not passed yet\n")
	}

	b.WriteString("\nCategory breakdown:\n")
	for _, cr := range r.CategoryResults {
		fmt.Fprintf(&b, "- %s: %d/%d (%d%%)\n", cr.Category.DisplayName(), cr.Correct, cr.Total, cr.Percentage)
	}

	if missed := missedQuestions(r); len(missed) > 0 {
		b.WriteString("\nQuestions answered wrongly:\n")
		for _, m := range missed {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}

	b.WriteString(`
Instructions:
1. Write a one-sentence headline about how the learner did.
2. Give 2-4 study tips, focused on the weakest categories first.
3. Suggest 1-3 drills the learner can do away from the screen, such as watching a match and tracking one thing.
4. Keep every item under 25 words. Plain text, no markdown.`)

	return b.String()
}

// missedQuestions lists the categories and difficulty of wrong answers,
// timeouts marked, capped at eight.
func missedQuestions(r assessment.Results) []string {
	var out []string
	for _, resp := range r.Responses {
		if resp.Correct {
			continue
		}
		line := fmt.Sprintf("%s, %s", resp.Category.DisplayName(), resp.Difficulty)
		if resp.TimedOut() {
			line += " (ran out of time)"
		}
		out = append(out, line)
		if len(out) == 8 {
			break
		}
	}
	return out
}
