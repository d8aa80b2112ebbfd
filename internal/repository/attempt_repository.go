package repository

import (
	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/util"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// CreateWithProgress persists the attempt fact row and the user's updated
// XP and streak counters in one transaction, so a failed insert never
// leaves the counters ahead of the attempt history.
func (r *AttemptRepository) CreateWithProgress(attempt *model.QuizAttempt, totalXP, currentStreak, bestStreak int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		res := tx.Model(&model.User{}).
			Where("id = ?", attempt.UserID).
			Updates(map[string]interface{}{
				"total_xp":       totalXP,
				"current_streak": currentStreak,
				"best_streak":    bestStreak,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrUserNotFound
		}
		return nil
	})
}

func (r *AttemptRepository) ListByUser(userID uint, page, limit int) ([]model.QuizAttempt, int64, error) {
	var attempts []model.QuizAttempt
	var total int64

	query := r.DB.Model(&model.QuizAttempt{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&attempts).Error
	return attempts, total, err
}

// LatestByUser returns the most recent attempt, used for streak decisions.
func (r *AttemptRepository) LatestByUser(userID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}
