// Package progress models the learner progress snapshot that the
// assessment engine reads and the application persists.
package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"
)

// Snapshot is a learner's accumulated progress. JSON field names match the
// browser app's saved progress so exports can be imported directly.
type Snapshot struct {
	Learner     string                      `json:"learner,omitempty"`
	Lessons     Lessons                     `json:"lessons"`
	Streak      int                         `json:"streak"`
	Points      int                         `json:"points"`
	Assessments map[string]AssessmentRecord `json:"assessments"`
}

// Lessons tracks lesson completion.
type Lessons struct {
	Completed []string `json:"completed"`
}

// AssessmentRecord is one historical assessment attempt.
type AssessmentRecord struct {
	Results     StoredResult `json:"results"`
	CompletedAt time.Time    `json:"completedAt"`
	Mode        string       `json:"mode"`
}

// StoredResult is the persisted subset of an assessment results report.
type StoredResult struct {
	Tier                int    `json:"tier"`
	Passed              bool   `json:"passed"`
	UnlocksNext         bool   `json:"unlocksNext"`
	NextTier            string `json:"nextTier,omitempty"`
	Percentage          int    `json:"percentage"`
	TotalPoints         int    `json:"totalPoints"`
	SkillLevel          string `json:"skillLevel,omitempty"`
	CertificateEligible bool   `json:"certificateEligible"`
}

// New returns an empty snapshot.
func New() Snapshot {
	return Snapshot{Assessments: make(map[string]AssessmentRecord)}
}

// RecordAssessment merges an attempt under key and adds its points to the
// running total. Re-recording the same key replaces the attempt and its
// points.
func (s *Snapshot) RecordAssessment(key string, rec AssessmentRecord) {
	if s.Assessments == nil {
		s.Assessments = make(map[string]AssessmentRecord)
	}
	if prev, ok := s.Assessments[key]; ok {
		s.Points -= prev.Results.TotalPoints
	}
	s.Assessments[key] = rec
	s.Points += rec.Results.TotalPoints
}

// CompleteLesson marks a lesson as completed. Returns false if it already was.
func (s *Snapshot) CompleteLesson(id string) bool {
	if slices.Contains(s.Lessons.Completed, id) {
		return false
	}
	s.Lessons.Completed = append(s.Lessons.Completed, id)
	return true
}

// History returns the assessment records ordered by completion time,
// oldest first. Keys break ties.
func (s Snapshot) History() []AssessmentRecord {
	keys := slices.Sorted(maps.Keys(s.Assessments))
	slices.SortStableFunc(keys, func(a, b string) int {
		return s.Assessments[a].CompletedAt.Compare(s.Assessments[b].CompletedAt)
	})
	out := make([]AssessmentRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.Assessments[k])
	}
	return out
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Lessons.Completed = slices.Clone(s.Lessons.Completed)
	c.Assessments = maps.Clone(s.Assessments)
	if c.Assessments == nil {
		c.Assessments = make(map[string]AssessmentRecord)
	}
	return c
}

// Decode reads a snapshot from JSON.
func Decode(r io.Reader) (Snapshot, error) {
	s := New()
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode progress: %w", err)
	}
	if s.Assessments == nil {
		s.Assessments = make(map[string]AssessmentRecord)
	}
	return s, nil
}

// Encode writes the snapshot as indented JSON.
func (s Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	return nil
}
