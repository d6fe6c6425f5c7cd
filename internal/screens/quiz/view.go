package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/ui/components"
	"github.com/abhisek/touchline/internal/ui/layout"
	"github.com/abhisek/touchline/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.finishing:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Adding up the score..."))
	case s.confirmQuit:
		return renderQuitConfirm(width, height)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width - 4))
	b.WriteString("\n\n")

	body := s.choice.View()
	if s.feedback != nil {
		body += "\n" + s.renderFeedback(components.ContentWidth(width))
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Align(lipgloss.Left).Render(body)))
	return b.String()
}

func (s *QuizScreen) renderInfoLine(width int) string {
	answered, total := s.run.Position()
	current := min(answered+1, total)
	if s.feedback != nil {
		current = answered
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", s.question.Category.DisplayName(), s.question.Difficulty))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d", current, total))
	if limit := s.run.QuestionTime(); limit > 0 && s.feedback == nil {
		right += "  " + components.Countdown(s.left, int(limit.Seconds()))
	}

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *QuizScreen) renderFeedback(cw int) string {
	fb := s.feedback
	var headline string
	switch {
	case fb.Correct:
		headline = theme.Correct.Render(fmt.Sprintf("✓ Correct! +%d", fb.Question.Points))
	case fb.TimedOut():
		headline = theme.Incorrect.Render("⏱ Out of time.")
	default:
		headline = theme.Incorrect.Render("✗ Not quite.")
	}

	var b strings.Builder
	b.WriteString(headline)
	if !fb.Correct {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("The answer was %s) %s", components.OptionLabel(fb.Question.Correct), fb.Question.CorrectOption())))
	}
	if fb.Question.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Render(fb.Question.Explanation))
	}
	return b.String()
}

func renderQuitConfirm(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Warning).
		Padding(1, 3).
		Render(theme.Title.Render("Leave this quiz?") + "\n\n" +
			theme.Hint.Render("Answers so far are kept, but the attempt won't count.") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render("[Y] Leave   [N] Keep playing"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong") +
		"\n\n" + lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-4, 60)).Render(msg) +
		"\n\n" + theme.Hint.Render("press any key to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
