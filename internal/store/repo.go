package store

import (
	"context"
	"time"

	"github.com/abhisek/touchline/internal/progress"
)

// now is the event clock. Stored times are UTC so text comparisons order
// correctly.
var now = func() time.Time { return time.Now().UTC() }

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotVersion is the current SnapshotData layout.
const SnapshotVersion = 1

// SnapshotData is the persisted learner state.
type SnapshotData struct {
	Version  int               `json:"version"`
	Progress progress.Snapshot `json:"progress"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// Assessment event actions.
const (
	ActionStart    = "start"
	ActionComplete = "complete"
	ActionAbandon  = "abandon"
)

// AssessmentEventData describes an assessment lifecycle event.
type AssessmentEventData struct {
	SessionID      string
	Tier           string
	Action         string
	Questions      int
	CorrectAnswers int
	Percentage     int
	Passed         bool
	Points         int
	SkillLevel     string
	DurationSecs   int
}

// AssessmentEventRecord is a stored assessment event.
type AssessmentEventRecord struct {
	AssessmentEventData
	Sequence  int64
	Timestamp time.Time
}

// Answer event modes.
const (
	ModeAssessment = "assessment"
	ModePractice   = "practice"
)

// AnswerEventData describes one answered question.
type AnswerEventData struct {
	SessionID     string
	Mode          string
	QuestionID    string
	Category      string
	Difficulty    string
	Selected      int
	CorrectAnswer int
	Correct       bool
	TimeMs        int64
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// QuestionStat aggregates the answer history of one question.
type QuestionStat struct {
	QuestionID string
	Attempts   int
	Correct    int
	AvgTimeMs  float64
}

// BadgeEventData describes a badge award.
type BadgeEventData struct {
	BadgeType string
	Rarity    string
	Category  *string
	SessionID string
	Reason    string
}

// BadgeEventRecord is a stored badge award.
type BadgeEventRecord struct {
	BadgeEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request.
type LLMEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// PurposeUsage aggregates LLM usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo appends and queries domain events.
type EventRepo interface {
	AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error
	QueryAssessmentEvents(ctx context.Context, opts QueryOpts) ([]AssessmentEventRecord, error)

	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)

	// QuestionStats aggregates answer history for the given questions.
	// Questions never answered are absent from the map.
	QuestionStats(ctx context.Context, questionIDs []string) (map[string]QuestionStat, error)

	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error
	QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error)

	// BadgeCounts returns awards per badge type and the overall total.
	BadgeCounts(ctx context.Context) (map[string]int, int, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns the event with the given ID, or nil if missing.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
