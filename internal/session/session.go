// Package session runs assessments and practice quizzes against the
// learner's stored progress, recording answers, results and badges in the
// event store.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/badges"
	"github.com/abhisek/touchline/internal/lessonquiz"
	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/store"
	"github.com/abhisek/touchline/internal/tiers"
)

// SnapshotsKept is how many progress snapshots survive a save.
const SnapshotsKept = 10

// ErrTierLocked is returned when the learner has not unlocked a tier yet.
var ErrTierLocked = errors.New("tier is locked")

// Deps are the collaborators of a Service. Nil repos disable persistence,
// which keeps tests and one-off CLI runs simple.
type Deps struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Bank      *questionbank.Bank
	Badges    *badges.Service
	Logger    *slog.Logger

	// Seed fixes question shuffling when non-zero.
	Seed int64
	// Untimed disables per-question countdowns.
	Untimed bool
	Now     func() time.Time
}

// Service starts runs and owns the learner's progress.
type Service struct {
	d Deps
}

// NewService fills in defaults for unset dependencies.
func NewService(d Deps) *Service {
	if d.Bank == nil {
		d.Bank = questionbank.Default()
	}
	if d.Badges == nil {
		d.Badges = badges.NewService(d.Events)
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Service{d: d}
}

// Bank returns the question bank in use.
func (s *Service) Bank() *questionbank.Bank { return s.d.Bank }

// Events returns the event repo, which may be nil.
func (s *Service) Events() store.EventRepo { return s.d.Events }

// LoadProgress returns the latest saved progress, or an empty snapshot.
func (s *Service) LoadProgress(ctx context.Context) (progress.Snapshot, error) {
	if s.d.Snapshots == nil {
		return progress.New(), nil
	}
	snap, err := s.d.Snapshots.Latest(ctx)
	if err != nil {
		return progress.Snapshot{}, fmt.Errorf("load progress: %w", err)
	}
	if snap == nil {
		return progress.New(), nil
	}
	p := snap.Data.Progress
	if p.Assessments == nil {
		p.Assessments = make(map[string]progress.AssessmentRecord)
	}
	return p, nil
}

// SaveProgress stores p as the newest snapshot and prunes old ones.
func (s *Service) SaveProgress(ctx context.Context, p progress.Snapshot) error {
	if s.d.Snapshots == nil {
		return nil
	}
	err := s.d.Snapshots.Save(ctx, &store.Snapshot{
		Timestamp: s.d.Now(),
		Data:      store.SnapshotData{Version: store.SnapshotVersion, Progress: p},
	})
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if err := s.d.Snapshots.Prune(ctx, SnapshotsKept); err != nil {
		s.d.Logger.Warn("prune snapshots", "err", err)
	}
	return nil
}

func (s *Service) rng() *rand.Rand {
	if s.d.Seed != 0 {
		seed := uint64(s.d.Seed)
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// StartAssessment begins an attempt at the named tier. Locked tiers are
// refused; unknown names fall back to the first tier.
func (s *Service) StartAssessment(ctx context.Context, tier string) (*AssessmentRun, error) {
	p, err := s.LoadProgress(ctx)
	if err != nil {
		return nil, err
	}
	if cfg, ok := tiers.Lookup(tier); ok && !tiers.CanAccessTier(cfg.Name, p) {
		return nil, fmt.Errorf("%w: %s", ErrTierLocked, cfg.Name)
	}

	a := assessment.New(p, tier,
		assessment.WithBank(s.d.Bank),
		assessment.WithRand(s.rng()),
		assessment.WithClock(s.d.Now),
		assessment.WithLogger(s.d.Logger),
	)
	if err := a.Start(); err != nil {
		return nil, fmt.Errorf("start %s assessment: %w", a.Config().Name, err)
	}

	run := &AssessmentRun{svc: s, a: a}
	s.appendAssessment(ctx, store.AssessmentEventData{
		SessionID: a.ID(),
		Tier:      a.Config().Name,
		Action:    store.ActionStart,
		Questions: len(a.Questions()),
	})
	s.d.Logger.Info("assessment started", "session", a.ID(), "tier", a.Config().Name, "questions", len(a.Questions()))
	return run, nil
}

// StartPractice begins a practice quiz over the bank questions matching
// topic, seeded with the learner's answer history.
func (s *Service) StartPractice(ctx context.Context, topic lessonquiz.Topic, length int) (*PracticeRun, error) {
	p, err := s.LoadProgress(ctx)
	if err != nil {
		return nil, err
	}

	var stats lessonquiz.StatsSource
	if s.d.Events != nil {
		stats = s.d.Events
	}
	q, err := lessonquiz.New(ctx, lessonquiz.Pool(s.d.Bank, topic), p, stats, length)
	if err != nil {
		return nil, fmt.Errorf("start practice: %w", err)
	}
	return &PracticeRun{svc: s, q: q, topic: topic, id: uuid.NewString()}, nil
}

func (s *Service) appendAssessment(ctx context.Context, e store.AssessmentEventData) {
	if s.d.Events == nil {
		return
	}
	if err := s.d.Events.AppendAssessmentEvent(ctx, e); err != nil {
		s.d.Logger.Warn("record assessment event", "action", e.Action, "err", err)
	}
}

func (s *Service) appendAnswer(ctx context.Context, e store.AnswerEventData) {
	if s.d.Events == nil {
		return
	}
	if err := s.d.Events.AppendAnswerEvent(ctx, e); err != nil {
		s.d.Logger.Warn("record answer", "question", e.QuestionID, "err", err)
	}
}
