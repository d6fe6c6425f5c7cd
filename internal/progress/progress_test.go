package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRecordAssessmentAccumulatesPoints(t *testing.T) {
	s := New()
	s.RecordAssessment("a", AssessmentRecord{Results: StoredResult{TotalPoints: 40}})
	s.RecordAssessment("b", AssessmentRecord{Results: StoredResult{TotalPoints: 25}})
	if s.Points != 65 {
		t.Errorf("Points = %d, want 65", s.Points)
	}

	// Replacing an attempt swaps its points rather than double counting.
	s.RecordAssessment("a", AssessmentRecord{Results: StoredResult{TotalPoints: 10}})
	if s.Points != 35 {
		t.Errorf("Points after replace = %d, want 35", s.Points)
	}
}

func TestRecordAssessmentOnZeroValue(t *testing.T) {
	var s Snapshot
	s.RecordAssessment("k", AssessmentRecord{Mode: "beginner"})
	if len(s.Assessments) != 1 {
		t.Fatalf("Assessments len = %d, want 1", len(s.Assessments))
	}
}

func TestCompleteLessonDedups(t *testing.T) {
	s := New()
	if !s.CompleteLesson("offside-rule") {
		t.Error("first completion should report true")
	}
	if s.CompleteLesson("offside-rule") {
		t.Error("second completion should report false")
	}
	if len(s.Lessons.Completed) != 1 {
		t.Errorf("completed = %v", s.Lessons.Completed)
	}
}

func TestHistoryOrdersByCompletion(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New()
	s.RecordAssessment("z", AssessmentRecord{Mode: "advanced", CompletedAt: base.Add(2 * time.Hour)})
	s.RecordAssessment("y", AssessmentRecord{Mode: "beginner", CompletedAt: base})
	s.RecordAssessment("x", AssessmentRecord{Mode: "intermediate", CompletedAt: base.Add(time.Hour)})

	h := s.History()
	want := []string{"beginner", "intermediate", "advanced"}
	for i, m := range want {
		if h[i].Mode != m {
			t.Errorf("History[%d].Mode = %s, want %s", i, h[i].Mode, m)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := New()
	s.CompleteLesson("a")
	s.RecordAssessment("k", AssessmentRecord{Mode: "beginner"})

	c := s.Clone()
	c.CompleteLesson("b")
	c.RecordAssessment("k2", AssessmentRecord{Mode: "expert"})

	if len(s.Lessons.Completed) != 1 || len(s.Assessments) != 1 {
		t.Error("mutating clone changed original")
	}
}

func TestDecodeBrowserExport(t *testing.T) {
	doc := `{
	  "lessons": {"completed": ["lesson-offside", "lesson-positions"]},
	  "streak": 4,
	  "points": 120,
	  "assessments": {
	    "beginner_1700000000": {
	      "results": {"tier": 1, "passed": true, "unlocksNext": true, "nextTier": "intermediate", "percentage": 88},
	      "completedAt": "2026-01-02T15:04:05Z",
	      "mode": "beginner"
	    }
	  }
	}`
	s, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rec, ok := s.Assessments["beginner_1700000000"]
	if !ok {
		t.Fatal("missing assessment record")
	}
	if !rec.Results.UnlocksNext || rec.Results.NextTier != "intermediate" {
		t.Errorf("results = %+v", rec.Results)
	}
	if s.Streak != 4 || len(s.Lessons.Completed) != 2 {
		t.Errorf("snapshot = %+v", s)
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"nextTier": "intermediate"`) {
		t.Errorf("encoded output missing nextTier: %s", buf.String())
	}
}

func TestDecodeEmptyObject(t *testing.T) {
	s, err := Decode(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.Assessments == nil {
		t.Error("Assessments should be initialized")
	}
}
