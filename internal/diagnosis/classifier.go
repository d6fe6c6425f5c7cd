package diagnosis

import "time"

const (
	// SpeedRushThreshold is the response time (exclusive) under which a
	// wrong answer counts as rushed.
	SpeedRushThreshold = 3 * time.Second

	// CarelessAccuracyThreshold is the prior accuracy (exclusive) above
	// which a wrong answer counts as a slip.
	CarelessAccuracyThreshold = 0.80

	// MinHistory is the number of earlier attempts needed before prior
	// accuracy is trusted.
	MinHistory = 2
)

// Classifier is a rule for wrong answers. It returns a category and a
// confidence, or ("", 0) when the rule does not apply.
type Classifier interface {
	Name() string
	Classify(in *Input) (Category, float64)
}

// DefaultClassifiers returns the rules in priority order.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		TimeoutClassifier{},
		SpeedRushClassifier{},
		CarelessClassifier{},
	}
}

// Classify runs classifiers in order and returns the first match. A wrong
// answer no rule explains is a knowledge gap.
func Classify(classifiers []Classifier, in *Input) Result {
	for _, c := range classifiers {
		if cat, conf := c.Classify(in); cat != "" {
			return Result{QuestionID: in.Response.QuestionID, Category: cat, Confidence: conf, Classifier: c.Name()}
		}
	}
	return Result{
		QuestionID: in.Response.QuestionID,
		Category:   CategoryKnowledgeGap,
		Confidence: 0.6,
		Classifier: "default",
	}
}

// TimeoutClassifier flags questions the countdown ran out on.
type TimeoutClassifier struct{}

func (TimeoutClassifier) Name() string { return "timeout" }

func (TimeoutClassifier) Classify(in *Input) (Category, float64) {
	if in.Response.TimedOut() {
		return CategoryTimeout, 1
	}
	return "", 0
}

// SpeedRushClassifier flags answers submitted too quickly to have read the
// question.
type SpeedRushClassifier struct{}

func (SpeedRushClassifier) Name() string { return "speed-rush" }

func (SpeedRushClassifier) Classify(in *Input) (Category, float64) {
	if in.Response.TimeSpent < SpeedRushThreshold {
		return CategorySpeedRush, 0.9
	}
	return "", 0
}

// CarelessClassifier flags misses on questions the learner usually gets
// right.
type CarelessClassifier struct{}

func (CarelessClassifier) Name() string { return "careless" }

func (CarelessClassifier) Classify(in *Input) (Category, float64) {
	if acc, ok := in.PriorAccuracy(); ok && acc > CarelessAccuracyThreshold {
		return CategoryCareless, 0.8
	}
	return "", 0
}
