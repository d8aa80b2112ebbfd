package model

// DayProgress is one bucket of the trailing weekly rollup.
// swagger:model DayProgress
type DayProgress struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	QuizzesTaken int     `json:"quizzesTaken"`
	AverageScore float64 `json:"averageScore"`
	XPEarned     int     `json:"xpEarned"`
}

// CategoryPerformance aggregates a user's attempts per quiz category.
// swagger:model CategoryPerformance
type CategoryPerformance struct {
	Category     string  `json:"category"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
}

// UserStats is the personal analytics summary.
// swagger:model UserStats
type UserStats struct {
	TotalAttempts int     `json:"totalAttempts"`
	AverageScore  float64 `json:"averageScore"`
	TotalXP       int     `json:"totalXp"`
	CurrentStreak int     `json:"currentStreak"`
	BestStreak    int     `json:"bestStreak"`
}

// LeaderboardEntry is one row of the XP leaderboard.
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	UserID  uint   `json:"userId"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	TotalXP int    `json:"totalXp"`
	Rank    int    `json:"rank"`
}
