package home

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/router"
	"github.com/abhisek/touchline/internal/screens/quiz"
	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/store"
)

func newTestHome(t *testing.T) (*HomeScreen, *session.Service) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "home.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc := session.NewService(session.Deps{
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
		Seed:      11,
	})
	return New(Deps{Session: svc}), svc
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestLockedTiersDisabled(t *testing.T) {
	h, _ := newTestHome(t)

	if h.menu.Items[0].Disabled {
		t.Error("beginner should be open")
	}
	for _, item := range h.menu.Items[1:4] {
		if !item.Disabled {
			t.Errorf("%q should be locked", item.Label)
		}
	}
	if h.menu.Selected != 0 {
		t.Errorf("selected = %d, want 0", h.menu.Selected)
	}

	// Down skips the locked tiers.
	h.Update(key(tea.KeyDown))
	if got := h.menu.Items[h.menu.Selected].Label; got != "PRACTICE" {
		t.Errorf("after down selected %q, want PRACTICE", got)
	}

	view := h.View(100, 40)
	if !strings.Contains(view, "BEGINNER ASSESSMENT") || !strings.Contains(view, "0/4 TIERS") {
		t.Errorf("view missing ladder:\n%s", view)
	}
}

func TestStartAssessmentPushesQuiz(t *testing.T) {
	h, _ := newTestHome(t)

	_, cmd := h.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected a command, errMsg = %q", h.errMsg)
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*quiz.QuizScreen); !ok {
		t.Fatalf("pushed %T, want *quiz.QuizScreen", msg.Screen)
	}
}

func TestLockedTierRefused(t *testing.T) {
	h, _ := newTestHome(t)
	if cmd := h.startAssessment("expert"); cmd != nil {
		t.Error("locked tier should not start")
	}
	if !strings.Contains(h.errMsg, "locked") {
		t.Errorf("errMsg = %q", h.errMsg)
	}
}

func TestRefreshPicksUpProgress(t *testing.T) {
	h, svc := newTestHome(t)
	ctx := context.Background()

	p := progress.New()
	p.Learner = "Sam"
	p.RecordAssessment("a1", progress.AssessmentRecord{
		Mode:        "beginner",
		CompletedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Results:     progress.StoredResult{Tier: 1, Passed: true, UnlocksNext: true, NextTier: "intermediate", Percentage: 88, TotalPoints: 70},
	})
	if err := svc.SaveProgress(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	h.Refresh()

	if h.menu.Items[1].Disabled {
		t.Error("intermediate should unlock after passing beginner")
	}
	if got := h.Stats(); got.Learner != "Sam" || got.Points != 70 {
		t.Errorf("stats = %+v", got)
	}
	if !strings.Contains(h.menu.Items[0].Detail, "best 88%") {
		t.Errorf("beginner detail = %q", h.menu.Items[0].Detail)
	}
}
