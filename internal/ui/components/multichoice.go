package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/touchline/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Options are labelled A, B, C…
// and can be picked by letter, by number or with the arrows and Enter.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	// ChosenIndex is -1 until submission, and stays -1 on a timeout.
	ChosenIndex int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// OptionLabel returns the letter shown for option i.
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// Update handles navigation and selection. The second result is true when
// this message submitted an answer.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.Submitted {
		return m, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, false
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, false
	case "enter":
		return m.Submit(m.Selected), true
	}

	if len(key) == 1 {
		c := key[0]
		var idx int
		switch {
		case c >= '1' && c <= '9':
			idx = int(c - '1')
		case c >= 'a' && c <= 'z':
			idx = int(c - 'a')
		default:
			return m, false
		}
		if idx < len(m.Options) {
			return m.Submit(idx), true
		}
	}
	return m, false
}

// Submit locks in idx, which may be -1 for a timeout.
func (m MultiChoice) Submit(idx int) MultiChoice {
	m.Submitted = true
	m.ChosenIndex = idx
	if idx >= 0 {
		m.Selected = idx
	}
	return m
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, OptionLabel(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = theme.Correct
		case m.Submitted && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Submitted:
			style = theme.Disabled
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

// IsCorrect returns true if the learner chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
