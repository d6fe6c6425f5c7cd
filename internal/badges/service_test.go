package badges

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/store"
)

// mockEventRepo implements store.EventRepo for badge tests.
type mockEventRepo struct {
	badgeEvents []store.BadgeEventData
	counts      map[string]int
	total       int
	appendErr   error
}

func (m *mockEventRepo) AppendAssessmentEvent(_ context.Context, _ store.AssessmentEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAssessmentEvents(_ context.Context, _ store.QueryOpts) ([]store.AssessmentEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAnswerEvents(_ context.Context, _ store.QueryOpts) ([]store.AnswerEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuestionStats(_ context.Context, _ []string) (map[string]store.QuestionStat, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendBadgeEvent(_ context.Context, data store.BadgeEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.badgeEvents = append(m.badgeEvents, data)
	return nil
}
func (m *mockEventRepo) QueryBadgeEvents(_ context.Context, _ store.QueryOpts) ([]store.BadgeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) BadgeCounts(_ context.Context) (map[string]int, int, error) {
	return m.counts, m.total, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func newTestService() (*Service, *mockEventRepo) {
	repo := &mockEventRepo{
		counts: map[string]int{"tier-passed": 3, "hot-streak": 2},
		total:  5,
	}
	return NewService(repo), repo
}

// results builds a report from a sequence of correct/incorrect answers.
func results(tier string, ordinal int, answers ...bool) assessment.Results {
	r := assessment.Results{
		Tier:             tier,
		TierOrdinal:      ordinal,
		PlannedQuestions: len(answers),
		TotalQuestions:   len(answers),
	}
	for _, ok := range answers {
		r.Responses = append(r.Responses, assessment.Response{Correct: ok})
		if ok {
			r.CorrectAnswers++
		}
	}
	if len(answers) > 0 {
		r.Percentage = r.CorrectAnswers * 100 / len(answers)
	}
	return r
}

func typesOf(awards []Award) []Type {
	var out []Type
	for _, a := range awards {
		out = append(out, a.Type)
	}
	return out
}

func TestAwardForResults_Failed(t *testing.T) {
	svc, repo := newTestService()

	r := results("beginner", 1, true, false, false, true)
	awards := svc.AwardForResults(context.Background(), "s1", r)

	if len(awards) != 0 {
		t.Errorf("awards = %v, want none", typesOf(awards))
	}
	if len(repo.badgeEvents) != 0 {
		t.Errorf("persisted %d events, want 0", len(repo.badgeEvents))
	}
}

func TestAwardForResults_PassedWithCertificate(t *testing.T) {
	svc, repo := newTestService()

	r := results("intermediate", 2, true, true, true, true, false, true, true, true, true, true)
	r.Passed = true
	r.CertificateEligible = true

	awards := svc.AwardForResults(context.Background(), "s2", r)

	want := []Type{TierPassed, Certificate, HotStreak}
	got := typesOf(awards)
	if len(got) != len(want) {
		t.Fatalf("awards = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("award[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if awards[0].Rarity != RarityRare {
		t.Errorf("tier rarity = %q, want rare", awards[0].Rarity)
	}
	if awards[0].Reason != "Passed Intermediate Assessment" {
		t.Errorf("reason = %q", awards[0].Reason)
	}
	if awards[1].Rarity != RarityEpic {
		t.Errorf("certificate rarity at 90%% = %q, want epic", awards[1].Rarity)
	}
	if len(repo.badgeEvents) != 3 || repo.badgeEvents[0].SessionID != "s2" {
		t.Errorf("persisted = %+v", repo.badgeEvents)
	}
}

func TestAwardForResults_PerfectRun(t *testing.T) {
	svc, repo := newTestService()

	answers := make([]bool, 20)
	for i := range answers {
		answers[i] = true
	}
	r := results("expert", 4, answers...)
	r.Passed = true
	r.CertificateEligible = true
	r.IsMaxLevel = true
	r.CategoryResults = []assessment.CategoryResult{
		{Category: questionbank.CategoryStrategy, Correct: 5, Total: 5},
		{Category: questionbank.CategoryHistory, Correct: 1, Total: 1},
	}

	awards := svc.AwardForResults(context.Background(), "s3", r)

	byType := map[Type]Award{}
	for _, a := range awards {
		byType[a.Type] = a
	}
	for _, typ := range []Type{TierPassed, Certificate, PerfectScore, CategoryAce, HotStreak, MaxLevel} {
		if _, ok := byType[typ]; !ok {
			t.Errorf("missing %q badge", typ)
		}
	}
	if n := len(awards); n != 6 {
		t.Errorf("awards = %d, want 6 (single-question category is no ace)", n)
	}
	if a := byType[CategoryAce]; a.Category != "strategy" {
		t.Errorf("ace category = %q, want strategy", a.Category)
	}
	if a := byType[HotStreak]; a.Rarity != RarityLegendary || a.Reason != "20 correct in a row!" {
		t.Errorf("streak = %+v", a)
	}

	var aceEvent *store.BadgeEventData
	for i, e := range repo.badgeEvents {
		if e.BadgeType == string(CategoryAce) {
			aceEvent = &repo.badgeEvents[i]
		} else if e.Category != nil {
			t.Errorf("%s event should have nil category", e.BadgeType)
		}
	}
	if aceEvent == nil || aceEvent.Category == nil || *aceEvent.Category != "strategy" {
		t.Error("persisted ace event missing category")
	}
}

func TestAwardForResults_StreakWithoutPass(t *testing.T) {
	svc, _ := newTestService()

	r := results("advanced", 3, true, true, true, true, true, true, true, false, false, false, false, false)
	awards := svc.AwardForResults(context.Background(), "s4", r)

	if len(awards) != 1 || awards[0].Type != HotStreak {
		t.Fatalf("awards = %v, want [hot-streak]", typesOf(awards))
	}
	if awards[0].Reason != "5 correct in a row!" || awards[0].Rarity != RarityCommon {
		t.Errorf("streak award = %+v", awards[0])
	}
}

func TestAwardForResults_NoAnswers(t *testing.T) {
	svc, _ := newTestService()

	r := results("beginner", 1)
	r.Passed = true // cannot happen, but an empty report earns nothing regardless
	if awards := svc.AwardForResults(context.Background(), "s5", r); awards != nil {
		t.Errorf("awards = %v, want nil", typesOf(awards))
	}
}

func TestAwardForResults_PersistErrorStillAwards(t *testing.T) {
	svc, repo := newTestService()
	repo.appendErr = errors.New("disk full")

	r := results("beginner", 1, true, false)
	r.Passed = true
	awards := svc.AwardForResults(context.Background(), "s6", r)

	if len(awards) != 1 || len(repo.badgeEvents) != 0 {
		t.Errorf("awards = %d, stored = %d; want 1, 0", len(awards), len(repo.badgeEvents))
	}
}

func TestAwardForResults_EachCallReturnsOwnAwards(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	r := results("beginner", 1, true, true, true, true, true, false)
	r.Passed = true
	first := svc.AwardForResults(ctx, "s1", r)
	second := svc.AwardForResults(ctx, "s2", r)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("awards = %v then %v, want two each", typesOf(first), typesOf(second))
	}
	for _, a := range second {
		if a.SessionID != "s2" {
			t.Errorf("second call returned award for session %q", a.SessionID)
		}
	}
	if len(repo.badgeEvents) != 4 {
		t.Errorf("stored badges = %d, want 4", len(repo.badgeEvents))
	}
}

func TestCounts(t *testing.T) {
	svc, _ := newTestService()

	counts, total, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if counts[TierPassed] != 3 || counts[HotStreak] != 2 {
		t.Errorf("counts = %v", counts)
	}
}

func TestNilEventRepo(t *testing.T) {
	svc := NewService(nil)

	r := results("beginner", 1, true, false)
	r.Passed = true
	if awards := svc.AwardForResults(context.Background(), "s1", r); len(awards) != 1 {
		t.Errorf("awards = %d, want 1", len(awards))
	}
	_, total, err := svc.Counts(context.Background())
	if err != nil || total != 0 {
		t.Errorf("Counts = %d, %v", total, err)
	}
}
