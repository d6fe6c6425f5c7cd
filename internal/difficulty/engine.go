// Package difficulty scores individual questions on a 0.1–0.9 scale and
// tracks a learner ability estimate on the same scale, so the in-lesson
// quiz can pick the question that best matches the learner.
package difficulty

import (
	"math"
	"strings"
	"time"

	"github.com/abhisek/touchline/internal/progress"
	"github.com/abhisek/touchline/internal/questionbank"
)

const (
	// Min and Max bound every difficulty and ability value.
	Min = 0.1
	Max = 0.9

	baseline = 0.5
)

// Feature weights. They sum to 1.
const (
	weightConcept       = 0.3
	weightWords         = 0.1
	weightOptions       = 0.1
	weightPrerequisites = 0.2
	weightResponseTime  = 0.2
	weightSuccessRate   = 0.1
)

const (
	defaultWordCount   = 10
	defaultOptionCount = 4

	wordsForMax    = 30.0
	slowResponseMs = 30000.0
)

// LabelExpert is accepted as a concept label above hard. The seed bank never
// uses it but imported banks and lesson content may.
const LabelExpert questionbank.Difficulty = "expert"

var conceptComplexity = map[questionbank.Difficulty]float64{
	questionbank.DifficultyEasy:   0.2,
	questionbank.DifficultyMedium: 0.5,
	questionbank.DifficultyHard:   0.8,
	LabelExpert:                   1.0,
}

// Features are the static properties of a question used for scoring.
// Zero values fall back to neutral defaults: empty Text counts as 10 words,
// zero OptionCount as 4 options and an empty Label as medium.
type Features struct {
	Text        string
	OptionCount int
	Label       questionbank.Difficulty
	Concepts    []string
}

// FeaturesOf extracts scoring features from a bank question.
func FeaturesOf(q questionbank.Question) Features {
	return Features{
		Text:        q.Text,
		OptionCount: len(q.Options),
		Label:       q.Difficulty,
		Concepts:    q.Concepts,
	}
}

func (f Features) wordCount() int {
	words := len(strings.Fields(f.Text))
	if words == 0 {
		return defaultWordCount
	}
	return words
}

func (f Features) optionCount() int {
	if f.OptionCount == 0 {
		return defaultOptionCount
	}
	return f.OptionCount
}

func (f Features) complexity() float64 {
	label := f.Label
	if label == "" {
		label = questionbank.DifficultyMedium
	}
	if v, ok := conceptComplexity[label]; ok {
		return v
	}
	return baseline
}

// History is optional per-question performance data. Nil fields are not
// scored.
type History struct {
	AverageResponseTime *time.Duration
	SuccessRate         *float64
}

// CalculateDifficulty estimates how hard a question is for the learner.
// The result always lies in [Min, Max].
func CalculateDifficulty(f Features, p progress.Snapshot, h *History) float64 {
	score := baseline
	score += (f.complexity() - baseline) * weightConcept
	score += (min(float64(f.wordCount())/wordsForMax, 1) - baseline) * weightWords
	score += (min(float64(f.optionCount()-2)/4, 1) - baseline) * weightOptions
	score += (PrerequisitesMet(f.Concepts, p.Lessons.Completed) - baseline) * weightPrerequisites

	if h != nil {
		if h.AverageResponseTime != nil {
			ms := float64(h.AverageResponseTime.Milliseconds())
			score += (min(ms/slowResponseMs, 1) - baseline) * weightResponseTime
		}
		if h.SuccessRate != nil {
			score += (baseline - *h.SuccessRate) * weightSuccessRate
		}
	}

	return clamp(score)
}

// PrerequisitesMet returns the fraction of concepts that appear inside at
// least one completed lesson ID. Questions without concepts score 0.5.
func PrerequisitesMet(concepts, completedLessons []string) float64 {
	if len(concepts) == 0 {
		return baseline
	}
	met := 0
	for _, c := range concepts {
		for _, lesson := range completedLessons {
			if strings.Contains(lesson, c) {
				met++
				break
			}
		}
	}
	return float64(met) / float64(len(concepts))
}

// clamp bounds v to [Min, Max]. NaN maps to the neutral baseline.
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return baseline
	case v < Min:
		return Min
	case v > Max:
		return Max
	default:
		return v
	}
}
