package badges

// MinStreak is the shortest run of correct answers that earns a badge.
const MinStreak = 5

// StreakMilestone rounds a streak down to the milestone it reached:
// 5, 10, 15, 20, then every 5. Below MinStreak it returns 0.
func StreakMilestone(length int) int {
	if length < MinStreak {
		return 0
	}
	return length / 5 * 5
}
