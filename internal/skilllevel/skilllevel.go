package skilllevel

// Level is a named skill band for an assessment percentage.
type Level struct {
	ID          string
	Name        string
	Description string
	Badge       string
	Min         int
	Max         int
	NextGoals   []string
}

// Contains reports whether pct falls within the band, inclusive.
func (l Level) Contains(pct int) bool {
	return pct >= l.Min && pct <= l.Max
}

var levels = []Level{
	{
		ID:          "beginner",
		Name:        "Beginner",
		Description: "You're just getting started. Learn the basic rules and positions first.",
		Badge:       "🌱",
		Min:         0,
		Max:         40,
		NextGoals: []string{
			"Learn how many players are on a team and what each one does",
			"Understand throw-ins, corners and goal kicks",
			"Watch a match and follow where the ball goes out of play",
		},
	},
	{
		ID:          "developing",
		Name:        "Developing",
		Description: "You know the basics. Time to understand why teams play the way they do.",
		Badge:       "⚽",
		Min:         41,
		Max:         60,
		NextGoals: []string{
			"Get comfortable with the offside rule",
			"Learn the common formations like 4-4-2 and 4-3-3",
			"Match each position to its main job",
		},
	},
	{
		ID:          "intermediate",
		Name:        "Intermediate",
		Description: "You read the game well. Start looking at tactics in detail.",
		Badge:       "🎯",
		Min:         61,
		Max:         75,
		NextGoals: []string{
			"Study pressing and counter-attacking styles",
			"Learn how wing-backs change a formation",
			"Explore famous World Cup moments",
		},
	},
	{
		ID:          "advanced",
		Name:        "Advanced",
		Description: "You think like a coach. Sharpen the finer tactical details.",
		Badge:       "🏅",
		Min:         76,
		Max:         89,
		NextGoals: []string{
			"Break down how a team builds from the back",
			"Compare a low block with a high press",
			"Learn the history behind Total Football and tiki-taka",
		},
	},
	{
		ID:          "expert",
		Name:        "Expert",
		Description: "Outstanding football knowledge. You could explain the game to anyone.",
		Badge:       "🏆",
		Min:         90,
		Max:         100,
		NextGoals: []string{
			"Analyse a full match and write your own tactical report",
			"Teach the offside rule to a friend",
			"Take the expert tier again and aim for a perfect score",
		},
	},
}

// All returns every band from lowest to highest.
func All() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// Classify maps a percentage to its band. Percentages outside 0-100 fall
// back to the beginner band.
func Classify(pct int) Level {
	for _, l := range levels {
		if l.Contains(pct) {
			return l
		}
	}
	return levels[0]
}

// ByID looks up a band by its ID.
func ByID(id string) (Level, bool) {
	for _, l := range levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}
