package difficulty

import "time"

// RecentWindow is how many of the latest outcomes callers pass to Adjust.
const RecentWindow = 5

// Outcome is one answered question as seen by the adjuster.
type Outcome struct {
	QuestionID   string
	Correct      bool
	ResponseTime time.Duration
}

// Adjuster nudges an ability estimate towards the level where the learner
// answers TargetAccuracy of questions correctly.
type Adjuster struct {
	TargetAccuracy float64
	AdjustmentRate float64
}

// DefaultAdjuster targets 75% accuracy with a 0.1 step.
func DefaultAdjuster() Adjuster {
	return Adjuster{TargetAccuracy: 0.75, AdjustmentRate: 0.1}
}

// Adjust returns the new estimate after the recent outcomes. An empty slice
// leaves current unchanged; any other result is clamped to [Min, Max].
func (a Adjuster) Adjust(current float64, recent []Outcome) float64 {
	if len(recent) == 0 {
		return current
	}
	delta := Accuracy(recent) - a.TargetAccuracy
	return clamp(current - delta*a.AdjustmentRate)
}

// Accuracy is the fraction of correct outcomes, 0 for none.
func Accuracy(outcomes []Outcome) float64 {
	if len(outcomes) == 0 {
		return 0
	}
	correct := 0
	for _, o := range outcomes {
		if o.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(outcomes))
}

// Recent returns at most the last RecentWindow outcomes.
func Recent(outcomes []Outcome) []Outcome {
	if len(outcomes) > RecentWindow {
		return outcomes[len(outcomes)-RecentWindow:]
	}
	return outcomes
}
