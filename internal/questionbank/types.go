package questionbank

// Category groups questions by football topic.
type Category string

const (
	CategoryBasicRules Category = "basic-rules"
	CategoryPositions  Category = "positions"
	CategoryStrategy   Category = "strategy"
	CategoryHistory    Category = "history"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryBasicRules,
		CategoryPositions,
		CategoryStrategy,
		CategoryHistory,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryBasicRules, CategoryPositions, CategoryStrategy, CategoryHistory:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryBasicRules:
		return "Basic Rules"
	case CategoryPositions:
		return "Positions"
	case CategoryStrategy:
		return "Strategy"
	case CategoryHistory:
		return "History"
	default:
		return string(c)
	}
}

// Difficulty is the nominal difficulty label of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Next returns the next harder difficulty, saturating at hard.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return d
	}
}

// Prev returns the next easier difficulty, saturating at easy.
func (d Difficulty) Prev() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return d
	}
}

// Question is a single multiple-choice question. Questions are immutable
// once they are part of a Bank.
type Question struct {
	ID          string     `json:"id" yaml:"id"`
	Category    Category   `json:"category" yaml:"category"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Text        string     `json:"question" yaml:"question"`
	Options     []string   `json:"options" yaml:"options"`
	Correct     int        `json:"correct" yaml:"correct"`
	Explanation string     `json:"explanation" yaml:"explanation"`
	Points      int        `json:"points" yaml:"points"`
	Concepts    []string   `json:"concepts,omitempty" yaml:"concepts,omitempty"`
}

// IsCorrect reports whether selected is the correct option index.
// The timeout sentinel -1 is never correct.
func (q Question) IsCorrect(selected int) bool {
	return selected >= 0 && selected == q.Correct
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}
