package questionbank

import (
	"strings"
	"testing"
)

func TestDefaultBankIsValid(t *testing.T) {
	b := Default()
	if b.Len() != 52 {
		t.Fatalf("Len = %d, want 52", b.Len())
	}
	if err := Validate(b.All()); err != nil {
		t.Fatalf("default bank invalid: %v", err)
	}
}

func TestDefaultBankComposition(t *testing.T) {
	want := map[Difficulty]int{
		DifficultyEasy:   4,
		DifficultyMedium: 4,
		DifficultyHard:   5,
	}
	comp := Default().Composition()
	if len(comp) != 12 {
		t.Fatalf("composition rows = %d, want 12", len(comp))
	}
	for _, c := range comp {
		if c.Questions != want[c.Difficulty] {
			t.Errorf("%s/%s = %d, want %d", c.Category, c.Difficulty, c.Questions, want[c.Difficulty])
		}
	}
}

func TestDefaultBankCategoriesInDisplayOrder(t *testing.T) {
	got := Default().Categories()
	want := AllCategories()
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestByID(t *testing.T) {
	b := Default()
	q, ok := b.ByID("br-e1")
	if !ok {
		t.Fatal("expected br-e1 to exist")
	}
	if q.Category != CategoryBasicRules {
		t.Errorf("category = %s, want %s", q.Category, CategoryBasicRules)
	}
	if _, ok := b.ByID("nope"); ok {
		t.Error("expected unknown ID lookup to fail")
	}
}

func TestBankIsolatedFromCallerSlices(t *testing.T) {
	qs := []Question{validQuestion("a")}
	b, err := New(qs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	qs[0].Options[0] = "mutated"

	got, _ := b.ByID("a")
	if got.Options[0] == "mutated" {
		t.Error("bank shares option storage with caller")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr string
	}{
		{"correct out of range", func(q *Question) { q.Correct = 4 }, "out of range"},
		{"negative correct", func(q *Question) { q.Correct = -1 }, "out of range"},
		{"zero points", func(q *Question) { q.Points = 0 }, "points must be positive"},
		{"one option", func(q *Question) { q.Options = []string{"only"}; q.Correct = 0 }, "at least 2 options"},
		{"bad category", func(q *Question) { q.Category = "refereeing" }, "unknown category"},
		{"bad difficulty", func(q *Question) { q.Difficulty = "expert" }, "unknown difficulty"},
		{"empty text", func(q *Question) { q.Text = "  " }, "empty question text"},
		{"missing id", func(q *Question) { q.ID = "" }, "missing id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion("x")
			tt.mutate(&q)
			err := Validate([]Question{q})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	err := Validate([]Question{validQuestion("dup"), validQuestion("dup")})
	if err == nil || !strings.Contains(err.Error(), "duplicate question ID") {
		t.Fatalf("expected duplicate ID error, got %v", err)
	}
}

func TestDifficultyStepping(t *testing.T) {
	tests := []struct {
		in         Difficulty
		next, prev Difficulty
	}{
		{DifficultyEasy, DifficultyMedium, DifficultyEasy},
		{DifficultyMedium, DifficultyHard, DifficultyEasy},
		{DifficultyHard, DifficultyHard, DifficultyMedium},
	}
	for _, tt := range tests {
		if got := tt.in.Next(); got != tt.next {
			t.Errorf("%s.Next() = %s, want %s", tt.in, got, tt.next)
		}
		if got := tt.in.Prev(); got != tt.prev {
			t.Errorf("%s.Prev() = %s, want %s", tt.in, got, tt.prev)
		}
	}
}

func TestIsCorrectRejectsTimeoutSentinel(t *testing.T) {
	q := validQuestion("a")
	if q.IsCorrect(-1) {
		t.Error("timeout sentinel must never be correct")
	}
	if !q.IsCorrect(q.Correct) {
		t.Error("correct index should be correct")
	}
}

func validQuestion(id string) Question {
	return Question{
		ID:         id,
		Category:   CategoryStrategy,
		Difficulty: DifficultyMedium,
		Text:       "What is pressing?",
		Options:    []string{"a", "b", "c", "d"},
		Correct:    1,
		Points:     10,
	}
}
