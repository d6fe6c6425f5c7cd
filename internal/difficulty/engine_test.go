package difficulty

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
)

const epsilon = 0.0001

func ptrDuration(d time.Duration) *time.Duration { return &d }
func ptrFloat(f float64) *float64                { return &f }

func TestCalculateDifficulty_NeutralDefaults(t *testing.T) {
	// Empty text counts as 10 words: (10/30 - 0.5) * 0.1 = -0.01667.
	got := CalculateDifficulty(Features{}, progress.New(), nil)
	assert.InDelta(t, 0.48333, got, epsilon)
}

func TestCalculateDifficulty_History(t *testing.T) {
	h := &History{
		AverageResponseTime: ptrDuration(30 * time.Second),
		SuccessRate:         ptrFloat(0),
	}
	got := CalculateDifficulty(Features{}, progress.New(), h)
	assert.InDelta(t, 0.48333+0.1+0.05, got, epsilon)

	onlyRate := &History{SuccessRate: ptrFloat(1)}
	got = CalculateDifficulty(Features{}, progress.New(), onlyRate)
	assert.InDelta(t, 0.48333-0.05, got, epsilon)
}

func TestCalculateDifficulty_HardQuestion(t *testing.T) {
	p := progress.New()
	p.CompleteLesson("lesson-offside-basics")

	f := Features{
		Text:        strings.Repeat("word ", 30),
		OptionCount: 6,
		Label:       questionbank.DifficultyHard,
		Concepts:    []string{"offside"},
	}
	// 0.5 + 0.09 (hard) + 0.05 (words) + 0.05 (options) + 0.1 (prereqs met)
	assert.InDelta(t, 0.79, CalculateDifficulty(f, p, nil), epsilon)

	h := &History{AverageResponseTime: ptrDuration(time.Minute), SuccessRate: ptrFloat(0)}
	assert.Equal(t, Max, CalculateDifficulty(f, p, h), "should clamp to Max")
}

func TestCalculateDifficulty_AlwaysInRange(t *testing.T) {
	labels := []questionbank.Difficulty{"", questionbank.DifficultyEasy, questionbank.DifficultyHard, LabelExpert, "weird"}
	texts := []string{"", "one", strings.Repeat("long ", 200)}
	options := []int{0, 1, 2, 6, 40}
	histories := []*History{
		nil,
		{},
		{AverageResponseTime: ptrDuration(0), SuccessRate: ptrFloat(1)},
		{AverageResponseTime: ptrDuration(time.Hour), SuccessRate: ptrFloat(-3)},
		{SuccessRate: ptrFloat(math.NaN())},
		{AverageResponseTime: ptrDuration(time.Second), SuccessRate: ptrFloat(math.Inf(1))},
	}

	for _, label := range labels {
		for _, text := range texts {
			for _, n := range options {
				for _, h := range histories {
					f := Features{Text: text, OptionCount: n, Label: label, Concepts: []string{"var"}}
					got := CalculateDifficulty(f, progress.New(), h)
					require.GreaterOrEqual(t, got, Min)
					require.LessOrEqual(t, got, Max)
				}
			}
		}
	}
}

func TestCalculateDifficulty_NaNHistoryIsNeutral(t *testing.T) {
	got := CalculateDifficulty(Features{}, progress.New(), &History{SuccessRate: ptrFloat(math.NaN())})
	assert.InDelta(t, baseline, got, epsilon)
}

func TestCalculateDifficulty_UnknownLabelIsNeutral(t *testing.T) {
	medium := CalculateDifficulty(Features{Label: questionbank.DifficultyMedium}, progress.New(), nil)
	unknown := CalculateDifficulty(Features{Label: "legendary"}, progress.New(), nil)
	assert.InDelta(t, medium, unknown, epsilon)
}

func TestPrerequisitesMet(t *testing.T) {
	tests := []struct {
		name      string
		concepts  []string
		completed []string
		want      float64
	}{
		{"no concepts is neutral", nil, []string{"offside-101"}, 0.5},
		{"none met", []string{"offside", "corner"}, nil, 0},
		{"half met", []string{"offside", "corner"}, []string{"intro-offside"}, 0.5},
		{"all met by substring", []string{"offside", "corner"}, []string{"offside-trap", "corner-kicks"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PrerequisitesMet(tt.concepts, tt.completed), epsilon)
		})
	}
}

func TestFeaturesOf(t *testing.T) {
	q := questionbank.Question{
		Text:       "Who won?",
		Options:    []string{"a", "b", "c"},
		Difficulty: questionbank.DifficultyEasy,
		Concepts:   []string{"world-cup"},
	}
	f := FeaturesOf(q)
	assert.Equal(t, 3, f.OptionCount)
	assert.Equal(t, questionbank.DifficultyEasy, f.Label)
	assert.Equal(t, 2, f.wordCount())
}
