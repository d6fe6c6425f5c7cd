package session

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/abhisek/touchline/internal/badges"
	"github.com/abhisek/touchline/internal/diagnosis"
	"github.com/abhisek/touchline/internal/lessonquiz"
	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/store"
	"github.com/abhisek/touchline/internal/tiers"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(Deps{
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
		Seed:      7,
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
	return svc, st
}

// answerAll answers every remaining question, correctly when correct is set.
func answerAll(t *testing.T, r Run, correct bool) {
	t.Helper()
	ctx := context.Background()
	for {
		q, ok := r.Current()
		if !ok {
			return
		}
		choice := q.Correct
		if !correct {
			choice = (q.Correct + 1) % len(q.Options)
		}
		fb, err := r.Answer(ctx, q.ID, choice, 3*time.Second)
		if err != nil {
			t.Fatalf("answer %s: %v", q.ID, err)
		}
		if fb.Correct != correct {
			t.Fatalf("feedback for %s: correct = %v, want %v", q.ID, fb.Correct, correct)
		}
	}
}

func TestAssessmentRunPassUnlocksNextTier(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	run, err := svc.StartAssessment(ctx, tiers.Beginner)
	if err != nil {
		t.Fatalf("StartAssessment() error = %v", err)
	}
	if run.Title() != "Beginner Assessment" {
		t.Errorf("Title() = %q", run.Title())
	}
	if run.QuestionTime() != 45*time.Second {
		t.Errorf("QuestionTime() = %v, want 45s", run.QuestionTime())
	}
	if answered, total := run.Position(); answered != 0 || total != 8 {
		t.Errorf("Position() = %d/%d, want 0/8", answered, total)
	}

	answerAll(t, run, true)
	if !run.Done() {
		t.Fatal("run should be done after answering everything")
	}

	out, err := run.Finish(ctx)
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if out.Results == nil || !out.Results.Passed || out.Results.Percentage != 100 {
		t.Fatalf("results = %+v", out.Results)
	}
	if !slices.Equal(out.Unlocked, []string{tiers.Intermediate}) {
		t.Errorf("Unlocked = %v, want [intermediate]", out.Unlocked)
	}
	if len(out.Badges) == 0 || out.Badges[0].Type != badges.TierPassed {
		t.Errorf("badges = %+v, want tier-passed first", out.Badges)
	}

	if out.Mistakes == nil || len(out.Mistakes.Mistakes) != 0 {
		t.Errorf("mistakes = %+v, want empty report", out.Mistakes)
	}

	again, _ := run.Finish(ctx)
	if again != out {
		t.Error("second Finish() should return the same outcome")
	}

	p, err := svc.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("LoadProgress() error = %v", err)
	}
	if !tiers.CanAccessTier(tiers.Intermediate, p) {
		t.Error("saved progress should unlock intermediate")
	}
	if p.Points != out.Results.TotalPoints {
		t.Errorf("Points = %d, want %d", p.Points, out.Results.TotalPoints)
	}

	repo := st.EventRepo()
	answers, _ := repo.QueryAnswerEvents(ctx, store.QueryOpts{})
	if len(answers) != 8 {
		t.Errorf("answer events = %d, want 8", len(answers))
	}
	done, _ := store.CompletedAssessments(ctx, repo, 0)
	if len(done) != 1 || done[0].SessionID != run.ID() {
		t.Errorf("completed assessments = %+v", done)
	}
	_, total, _ := repo.BadgeCounts(ctx)
	if total != len(out.Badges) {
		t.Errorf("stored badges = %d, want %d", total, len(out.Badges))
	}
}

func TestAssessmentRunFailKeepsTierLocked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	run, err := svc.StartAssessment(ctx, tiers.Beginner)
	if err != nil {
		t.Fatal(err)
	}
	answerAll(t, run, false)
	out, err := run.Finish(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Results.Passed || len(out.Unlocked) != 0 || len(out.Badges) != 0 {
		t.Errorf("outcome = %+v", out)
	}
	if out.Mistakes == nil || out.Mistakes.Counts[diagnosis.CategoryKnowledgeGap] != 8 {
		t.Errorf("mistakes = %+v, want 8 knowledge gaps", out.Mistakes)
	}

	if _, err := svc.StartAssessment(ctx, tiers.Intermediate); !errors.Is(err, ErrTierLocked) {
		t.Errorf("StartAssessment(intermediate) error = %v, want ErrTierLocked", err)
	}
}

func TestAssessmentRunAnswerErrors(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	run, err := svc.StartAssessment(ctx, tiers.Beginner)
	if err != nil {
		t.Fatal(err)
	}

	q, _ := run.Current()
	others := run.Assessment().Questions()
	if _, err := run.Answer(ctx, others[len(others)-1].ID, 0, time.Second); !errors.Is(err, ErrResponseRejected) {
		t.Errorf("answering out of turn error = %v, want ErrResponseRejected", err)
	}
	if _, err := run.Answer(ctx, "no-such-question", 0, time.Second); !errors.Is(err, ErrResponseRejected) {
		t.Errorf("answering an unknown question error = %v, want ErrResponseRejected", err)
	}
	if answers, _ := st.EventRepo().QueryAnswerEvents(ctx, store.QueryOpts{}); len(answers) != 0 {
		t.Errorf("rejected answers wrote %d events", len(answers))
	}

	fb, err := run.Answer(ctx, q.ID, -1, 45*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := run.Answer(ctx, q.ID, 0, time.Second); !errors.Is(err, ErrResponseRejected) {
		t.Errorf("answering %s twice error = %v, want ErrResponseRejected", q.ID, err)
	}
	if !fb.TimedOut() || fb.Correct {
		t.Errorf("timeout feedback = %+v", fb)
	}

	answerAll(t, run, true)
	if _, err := run.Answer(ctx, q.ID, 0, time.Second); !errors.Is(err, ErrFinished) {
		t.Errorf("Answer() after the last question error = %v, want ErrFinished", err)
	}
}

func TestAssessmentRunAbandon(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	run, err := svc.StartAssessment(ctx, tiers.Beginner)
	if err != nil {
		t.Fatal(err)
	}
	q, _ := run.Current()
	run.Answer(ctx, q.ID, q.Correct, time.Second)
	run.Abandon(ctx)

	events, _ := st.EventRepo().QueryAssessmentEvents(ctx, store.QueryOpts{})
	if len(events) != 2 || events[0].Action != store.ActionAbandon || events[0].Questions != 1 {
		t.Errorf("events = %+v", events)
	}
}

func TestUntimedAndUnknownTier(t *testing.T) {
	svc := NewService(Deps{Untimed: true, Seed: 1})
	run, err := svc.StartAssessment(context.Background(), "legendary")
	if err != nil {
		t.Fatalf("StartAssessment() error = %v", err)
	}
	if run.Assessment().Config().Name != tiers.Beginner {
		t.Errorf("tier = %q, want beginner fallback", run.Assessment().Config().Name)
	}
	if run.QuestionTime() != 0 {
		t.Errorf("QuestionTime() = %v, want 0 when untimed", run.QuestionTime())
	}
}

func TestSeedMakesRunsRepeatable(t *testing.T) {
	ids := func() []string {
		svc := NewService(Deps{Seed: 99})
		run, err := svc.StartAssessment(context.Background(), tiers.Beginner)
		if err != nil {
			t.Fatal(err)
		}
		var out []string
		for _, q := range run.Assessment().Questions() {
			out = append(out, q.ID)
		}
		return out
	}
	if a, b := ids(), ids(); !slices.Equal(a, b) {
		t.Errorf("seeded runs differ:\n%v\n%v", a, b)
	}
}

func TestPracticeRunCompletesLessons(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	run, err := svc.StartPractice(ctx, lessonquiz.Topic{Category: questionbank.CategoryBasicRules}, 3)
	if err != nil {
		t.Fatalf("StartPractice() error = %v", err)
	}
	if run.Title() != "Practice: Basic Rules" {
		t.Errorf("Title() = %q", run.Title())
	}
	if run.QuestionTime() != 0 {
		t.Error("practice should be untimed")
	}

	answerAll(t, run, true)
	out, err := run.Finish(ctx)
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if out.Practice == nil || out.Practice.Asked != 3 || out.Practice.Correct != 3 {
		t.Fatalf("practice summary = %+v", out.Practice)
	}

	p, _ := svc.LoadProgress(ctx)
	for _, c := range out.Practice.Concepts {
		if !slices.Contains(p.Lessons.Completed, lessonquiz.LessonID(c)) {
			t.Errorf("lesson for concept %q not completed", c)
		}
	}

	answers, _ := st.EventRepo().QueryAnswerEvents(ctx, store.QueryOpts{})
	for _, a := range answers {
		if a.Mode != store.ModePractice || a.SessionID != run.ID() {
			t.Errorf("answer event = %+v", a)
		}
	}
}

func TestPracticeEmptyTopic(t *testing.T) {
	svc := NewService(Deps{})
	_, err := svc.StartPractice(context.Background(), lessonquiz.Topic{Concept: "no-such-concept"}, 0)
	if err == nil {
		t.Error("StartPractice() over an empty pool should fail")
	}
}

func TestSaveProgressPrunes(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	for i := 0; i < SnapshotsKept+3; i++ {
		p := progress.New()
		p.Points = i
		if err := svc.SaveProgress(ctx, p); err != nil {
			t.Fatal(err)
		}
	}
	var n int
	st.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&n)
	if n != SnapshotsKept {
		t.Errorf("snapshots = %d, want %d", n, SnapshotsKept)
	}
	p, _ := svc.LoadProgress(ctx)
	if p.Points != SnapshotsKept+2 {
		t.Errorf("latest points = %d, want %d", p.Points, SnapshotsKept+2)
	}
}
