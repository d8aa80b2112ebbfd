package repository

import (
	"fmt"
	"time"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/util"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// dayKey is a DATE(created_at) bucket key normalized to YYYY-MM-DD. The
// mysql driver hands DATE columns back as time.Time when parseTime is on;
// sqlite hands back text.
type dayKey string

func (d *dayKey) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = dayKey(v.Format(util.DateFormat))
	case []byte:
		*d = dayKey(v)
	case string:
		*d = dayKey(v)
	default:
		return fmt.Errorf("unsupported day column type %T", value)
	}
	return nil
}

// DailyAttemptRow is one raw per-day bucket of a user's attempts.
type DailyAttemptRow struct {
	Day          dayKey  `gorm:"column:day"`
	QuizzesTaken int     `gorm:"column:quizzes_taken"`
	AverageScore float64 `gorm:"column:average_score"`
	XPEarned     int     `gorm:"column:xp_earned"`
}

// DailyAttempts groups the user's attempts per calendar day between from
// (inclusive) and to (exclusive). Days without attempts are absent here;
// the service layer fills them with zero buckets.
func (r *AnalyticsRepository) DailyAttempts(userID uint, from, to time.Time) ([]DailyAttemptRow, error) {
	var rows []DailyAttemptRow
	err := r.DB.Model(&model.QuizAttempt{}).
		Select(`DATE(created_at) AS day,
			COUNT(*) AS quizzes_taken,
			COALESCE(AVG(percentage), 0) AS average_score,
			COALESCE(SUM(xp_earned), 0) AS xp_earned`).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Group("DATE(created_at)").
		Order("day asc").
		Scan(&rows).Error
	return rows, err
}

// CategoryPerformance joins attempts to quizzes and aggregates per quiz
// category for one user.
func (r *AnalyticsRepository) CategoryPerformance(userID uint) ([]model.CategoryPerformance, error) {
	var rows []model.CategoryPerformance
	err := r.DB.Model(&model.QuizAttempt{}).
		Select(`quizzes.category AS category,
			COUNT(*) AS attempts,
			COALESCE(AVG(quiz_attempts.percentage), 0) AS average_score`).
		Joins("INNER JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Where("quiz_attempts.user_id = ?", userID).
		Group("quizzes.category").
		Order("attempts desc").
		Scan(&rows).Error
	return rows, err
}

// UserStats aggregates lifetime attempt totals; streaks and XP come off the
// user row itself.
func (r *AnalyticsRepository) UserStats(userID uint) (*model.UserStats, error) {
	var stats model.UserStats

	err := r.DB.Model(&model.QuizAttempt{}).
		Select("COUNT(*) AS total_attempts, COALESCE(AVG(percentage), 0) AS average_score").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := r.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	stats.TotalXP = user.TotalXP
	stats.CurrentStreak = user.CurrentStreak
	stats.BestStreak = user.BestStreak

	return &stats, nil
}
