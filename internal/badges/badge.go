package badges

import "time"

// Award is a single badge earned.
type Award struct {
	Type      Type
	Rarity    Rarity
	Category  string // set for category-ace only
	SessionID string
	Reason    string // e.g. "Passed Intermediate Assessment"
	AwardedAt time.Time
}
