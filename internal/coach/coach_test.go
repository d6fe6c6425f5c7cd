package coach

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/llm"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/skilllevel"
)

func weakStrategyResults() assessment.Results {
	strategy, _ := assessment.ImmediateSuggestion(questionbank.CategoryStrategy)
	return assessment.Results{
		Tier:           "intermediate",
		TotalQuestions: 12,
		CorrectAnswers: 7,
		Percentage:     58,
		PassingScore:   65,
		SkillLevel:     skilllevel.Classify(58),
		CategoryResults: []assessment.CategoryResult{
			{Category: questionbank.CategoryBasicRules, Correct: 3, Total: 3, Percentage: 100},
			{Category: questionbank.CategoryStrategy, Correct: 1, Total: 3, Percentage: 33},
			{Category: questionbank.CategoryHistory, Correct: 1, Total: 3, Percentage: 33},
		},
		Responses: []assessment.Response{
			{Category: questionbank.CategoryStrategy, Difficulty: questionbank.DifficultyMedium, Selected: -1},
			{Category: questionbank.CategoryHistory, Difficulty: questionbank.DifficultyEasy, Selected: 2},
			{Category: questionbank.CategoryBasicRules, Difficulty: questionbank.DifficultyEasy, Correct: true},
		},
		Recommendations: assessment.Recommendations{
			Focus:     []questionbank.Category{questionbank.CategoryStrategy, questionbank.CategoryHistory},
			Immediate: []string{strategy},
		},
	}
}

func TestAdvise_UsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"headline": "Solid rules knowledge, tactics next.",
			"tips": ["Read about pressing triggers", "Review World Cup winners since 1990"],
			"drills": ["Watch one half tracking only the holding midfielder"]
		}`),
	})
	svc := NewService(mock, DefaultConfig(), nil)

	a, err := svc.Advise(context.Background(), weakStrategyResults())
	require.NoError(t, err)
	assert.True(t, a.Generated)
	assert.Equal(t, "Solid rules knowledge, tactics next.", a.Headline)
	assert.Len(t, a.Tips, 2)
	assert.Len(t, a.Drills, 1)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "study-plan", req.Schema.Name)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Score: 58% (7 of 12 correct), passing score 65%")
	assert.Contains(t, msg, "- Strategy: 1/3 (33%)")
	assert.Contains(t, msg, "Strategy, medium (ran out of time)")
	assert.Contains(t, msg, "not passed yet")
}

func TestAdvise_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	svc := NewService(mock, DefaultConfig(), nil)

	a, err := svc.Advise(context.Background(), weakStrategyResults())
	require.NoError(t, err)
	assert.False(t, a.Generated)
	assert.Equal(t, "58%: 65% needed to pass. You're getting there.", a.Headline)
}

func TestAdvise_FallsBackOnEmptyHeadline(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"headline":"","tips":[],"drills":[]}`)})
	a, err := NewService(mock, DefaultConfig(), nil).Advise(context.Background(), weakStrategyResults())
	require.NoError(t, err)
	assert.False(t, a.Generated)
}

func TestAdvise_NoProvider(t *testing.T) {
	a, err := NewService(nil, DefaultConfig(), nil).Advise(context.Background(), weakStrategyResults())
	require.NoError(t, err)
	assert.False(t, a.Generated)
}

func TestAdvise_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock := llm.NewMockProvider(llm.MockResponse{Err: context.Canceled})

	_, err := NewService(mock, DefaultConfig(), nil).Advise(ctx, weakStrategyResults())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFallback(t *testing.T) {
	r := weakStrategyResults()
	a := Fallback(r)

	require.Len(t, a.Tips, 2)
	assert.Equal(t, r.Recommendations.Immediate[0], a.Tips[0])
	assert.Equal(t, "Spend your next practice session on History.", a.Tips[1])
	assert.Equal(t, skilllevel.Classify(58).NextGoals, a.Drills)
}

func TestFallback_Headlines(t *testing.T) {
	tests := []struct {
		name string
		r    assessment.Results
		want string
	}{
		{"no answers", assessment.Results{}, "No answers yet. Give the assessment a go!"},
		{"perfect", assessment.Results{TotalQuestions: 8, Percentage: 100, Passed: true}, "A perfect score. Outstanding!"},
		{"passed", assessment.Results{TotalQuestions: 8, Percentage: 75, Passed: true}, "75%: passed! The next tier is open."},
		{"top tier", assessment.Results{TotalQuestions: 20, Percentage: 85, Passed: true, IsMaxLevel: true}, "85%: you've conquered the top tier."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Fallback(tt.r)
			assert.Equal(t, tt.want, a.Headline)
			assert.NotEmpty(t, a.Tips)
		})
	}
}
