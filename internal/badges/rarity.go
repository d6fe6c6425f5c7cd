package badges

// Rarity represents how hard a badge was to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// TierRarity returns the rarity for passing the tier with the given
// 1-based ordinal.
func TierRarity(ordinal int) Rarity {
	switch {
	case ordinal >= 4:
		return RarityLegendary
	case ordinal == 3:
		return RarityEpic
	case ordinal == 2:
		return RarityRare
	default:
		return RarityCommon
	}
}

// StreakRarity returns the rarity for a given streak length.
func StreakRarity(length int) Rarity {
	switch {
	case length >= 20:
		return RarityLegendary
	case length >= 15:
		return RarityEpic
	case length >= 10:
		return RarityRare
	default:
		return RarityCommon
	}
}

// ScoreRarity returns the rarity for a certificate-level percentage.
func ScoreRarity(pct int) Rarity {
	switch {
	case pct >= 95:
		return RarityLegendary
	case pct >= 90:
		return RarityEpic
	default:
		return RarityRare
	}
}
