package repository

import (
	"errors"
	"time"

	"quizdeck_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Upsert writes the user's rating for a quiz. A second rating for the same
// pair overwrites the first in place, bumping updated_at; the unique index
// guarantees at most one row per (quiz, user).
func (r *RatingRepository) Upsert(rating *model.QuizRating) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "quiz_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     rating.Rating,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error
}

func (r *RatingRepository) FindByQuizAndUser(quizID, userID uint) (*model.QuizRating, error) {
	var rating model.QuizRating
	err := r.DB.Where("quiz_id = ? AND user_id = ?", quizID, userID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

// AverageForQuiz returns the arithmetic mean of all ratings for the quiz,
// 0 when no rating exists.
func (r *RatingRepository) AverageForQuiz(quizID uint) (float64, error) {
	var avg float64
	err := r.DB.Model(&model.QuizRating{}).
		Where("quiz_id = ?", quizID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *RatingRepository) CountForQuiz(quizID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizRating{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}
