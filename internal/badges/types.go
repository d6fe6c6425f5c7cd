package badges

// Type identifies the kind of achievement.
type Type string

const (
	TierPassed   Type = "tier-passed"
	PerfectScore Type = "perfect-score"
	Certificate  Type = "certificate"
	CategoryAce  Type = "category-ace"
	HotStreak    Type = "hot-streak"
	MaxLevel     Type = "max-level"
)

// AllTypes returns all badge types in display order.
func AllTypes() []Type {
	return []Type{TierPassed, Certificate, PerfectScore, CategoryAce, HotStreak, MaxLevel}
}

// DisplayName returns a human-readable label for the badge type.
func (t Type) DisplayName() string {
	switch t {
	case TierPassed:
		return "Tier Passed"
	case PerfectScore:
		return "Perfect Score"
	case Certificate:
		return "Certificate"
	case CategoryAce:
		return "Category Ace"
	case HotStreak:
		return "Hot Streak"
	case MaxLevel:
		return "Top of the Ladder"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge type.
func (t Type) Icon() string {
	switch t {
	case TierPassed:
		return "⚽"
	case PerfectScore:
		return "🎯"
	case Certificate:
		return "📜"
	case CategoryAce:
		return "⭐"
	case HotStreak:
		return "🔥"
	case MaxLevel:
		return "🏆"
	default:
		return "✦"
	}
}
