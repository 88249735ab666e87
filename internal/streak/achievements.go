package streak

import (
	"time"

	"github.com/bluestock/dailypuzzle/internal/store"
)

// Achievement IDs. Stable: they key the put-if-absent store writes.
const (
	AchievementStreak7      = "streak_7"
	AchievementStreak30     = "streak_30"
	AchievementDays100      = "days_100"
	AchievementPerfectScore = "perfect_score"
)

type rule struct {
	id          string
	name        string
	description string
	icon        string
	qualifies   func(Info, []store.Completion) bool
}

var rules = []rule{
	{
		id: AchievementStreak7, name: "🔥 Week Warrior",
		description: "7-day streak!", icon: "🔥",
		qualifies: func(s Info, _ []store.Completion) bool { return s.Current >= 7 },
	},
	{
		id: AchievementStreak30, name: "💫 Monthly Master",
		description: "30-day streak!", icon: "💫",
		qualifies: func(s Info, _ []store.Completion) bool { return s.Current >= 30 },
	},
	{
		id: AchievementDays100, name: "🏆 Century Club",
		description: "100 days completed!", icon: "🏆",
		qualifies: func(s Info, _ []store.Completion) bool { return s.TotalDays >= 100 },
	},
	{
		id: AchievementPerfectScore, name: "⭐ Perfectionist",
		description: "Perfect score!", icon: "⭐",
		qualifies: func(_ Info, history []store.Completion) bool {
			for _, c := range history {
				if c.Score >= 400 {
					return true
				}
			}
			return false
		},
	},
}

// CheckAchievements returns every achievement whose condition currently
// holds. It does not track what was already unlocked: callers filter
// known IDs, and the store's put-if-absent write guards the rest.
func CheckAchievements(info Info, history []store.Completion, now time.Time) []store.Achievement {
	var out []store.Achievement
	for _, r := range rules {
		if !r.qualifies(info, history) {
			continue
		}
		out = append(out, store.Achievement{
			ID:          r.id,
			Name:        r.name,
			Description: r.description,
			Icon:        r.icon,
			UnlockedAt:  now.UnixMilli(),
		})
	}
	return out
}
