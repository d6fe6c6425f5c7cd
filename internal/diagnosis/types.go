// Package diagnosis sorts an assessment's wrong answers into mistake
// categories using the learner's answer history.
package diagnosis

import (
	"github.com/abhisek/touchline/internal/assessment"
	"github.com/abhisek/touchline/internal/store"
)

// Category classifies a wrong answer.
type Category string

const (
	CategoryTimeout      Category = "timeout"
	CategorySpeedRush    Category = "speed-rush"
	CategoryCareless     Category = "careless"
	CategoryKnowledgeGap Category = "knowledge-gap"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryKnowledgeGap, CategoryCareless, CategorySpeedRush, CategoryTimeout}
}

// Label is the short name shown on the results screen.
func (c Category) Label() string {
	switch c {
	case CategoryTimeout:
		return "Ran out of time"
	case CategorySpeedRush:
		return "Rushed"
	case CategoryCareless:
		return "Slip"
	case CategoryKnowledgeGap:
		return "Still learning"
	default:
		return string(c)
	}
}

// Input is one wrong answer plus what came before it.
type Input struct {
	Response assessment.Response
	// Prior is the learner's history on the same question, excluding
	// Response itself. Zero when the question is new to them.
	Prior store.QuestionStat
}

// PriorAccuracy returns the share of earlier attempts answered correctly.
// ok is false below MinHistory attempts.
func (in *Input) PriorAccuracy() (acc float64, ok bool) {
	if in.Prior.Attempts < MinHistory {
		return 0, false
	}
	return float64(in.Prior.Correct) / float64(in.Prior.Attempts), true
}

// Result is the diagnosis for one wrong answer.
type Result struct {
	QuestionID string
	Category   Category
	Confidence float64 // 0.0–1.0
	Classifier string
}
