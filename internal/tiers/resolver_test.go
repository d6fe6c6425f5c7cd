package tiers

import (
	"slices"
	"testing"

	"github.com/abhisek/touchline/internal/progress"
)

func TestUnlockedTiers_NoHistory(t *testing.T) {
	got := UnlockedTiers(progress.New())
	if !slices.Equal(got, []string{Beginner}) {
		t.Errorf("UnlockedTiers = %v, want [beginner]", got)
	}
}

func TestUnlockedTiers_PassedBeginner(t *testing.T) {
	p := progress.New()
	p.RecordAssessment("b1", attempt(Beginner, 1, true, 75))

	got := UnlockedTiers(p)
	if !slices.Contains(got, Beginner) || !slices.Contains(got, Intermediate) {
		t.Errorf("UnlockedTiers = %v, want beginner and intermediate", got)
	}
	if len(got) != 2 {
		t.Errorf("UnlockedTiers = %v, want 2 entries", got)
	}
}

func TestUnlockedTiers_FailedAttemptUnlocksNothing(t *testing.T) {
	p := progress.New()
	p.RecordAssessment("b1", attempt(Beginner, 1, false, 30))
	if got := UnlockedTiers(p); len(got) != 1 {
		t.Errorf("UnlockedTiers = %v, want only beginner", got)
	}
}

func TestUnlockedTiers_Deduplicates(t *testing.T) {
	p := progress.New()
	p.RecordAssessment("b1", attempt(Beginner, 1, true, 70))
	p.RecordAssessment("b2", attempt(Beginner, 1, true, 90))
	if got := UnlockedTiers(p); len(got) != 2 {
		t.Errorf("UnlockedTiers = %v, want 2 entries", got)
	}
}

func TestHighestCompletedTier(t *testing.T) {
	p := progress.New()
	if got := HighestCompletedTier(p); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}

	p.RecordAssessment("b", attempt(Beginner, 1, true, 80))
	p.RecordAssessment("i", attempt(Intermediate, 2, true, 70))
	p.RecordAssessment("a", attempt(Advanced, 3, false, 40))
	if got := HighestCompletedTier(p); got != 2 {
		t.Errorf("HighestCompletedTier = %d, want 2", got)
	}
}

func TestCanAccessTier(t *testing.T) {
	p := progress.New()
	if !CanAccessTier(Beginner, p) {
		t.Error("beginner should always be accessible")
	}
	if CanAccessTier(Intermediate, p) {
		t.Error("intermediate should be locked initially")
	}
	p.RecordAssessment("b", attempt(Beginner, 1, true, 80))
	if !CanAccessTier(Intermediate, p) {
		t.Error("intermediate should unlock after passing beginner")
	}
}

func TestNextAvailableTier(t *testing.T) {
	p := progress.New()
	got, ok := NextAvailableTier(p)
	if !ok || got != Intermediate {
		t.Errorf("NextAvailableTier = %q, %v, want intermediate", got, ok)
	}

	p.RecordAssessment("b", attempt(Beginner, 1, true, 80))
	p.RecordAssessment("i", attempt(Intermediate, 2, true, 80))
	p.RecordAssessment("a", attempt(Advanced, 3, true, 80))
	if _, ok := NextAvailableTier(p); ok {
		t.Error("expected no next tier once all are unlocked")
	}
}

func TestStatuses(t *testing.T) {
	p := progress.New()
	p.RecordAssessment("b1", attempt(Beginner, 1, false, 50))
	p.RecordAssessment("b2", attempt(Beginner, 1, true, 88))

	st := Statuses(p)
	if len(st) != 4 {
		t.Fatalf("Statuses len = %d, want 4", len(st))
	}
	if st[0].State != StateCompleted || st[0].Attempts != 2 || st[0].Best != 88 {
		t.Errorf("beginner status = %+v", st[0])
	}
	if st[1].State != StateUnlocked || st[1].Best != -1 {
		t.Errorf("intermediate status = %+v", st[1])
	}
	if st[2].State != StateLocked || st[3].State != StateLocked {
		t.Errorf("advanced/expert should be locked: %+v %+v", st[2], st[3])
	}
}
