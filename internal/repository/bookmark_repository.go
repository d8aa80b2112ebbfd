package repository

import (
	"errors"
	"time"

	"quizdeck_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

// Toggle flips bookmark presence for the (quiz, user) pair and reports the
// resulting state. Read and write run in one transaction. A racing toggle
// can still insert between the read and the write; the conflict clause
// turns that into "already bookmarked" instead of a duplicate-key failure.
func (r *BookmarkRepository) Toggle(quizID, userID uint) (bool, error) {
	var bookmarked bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.QuizBookmark
		err := tx.Where("quiz_id = ? AND user_id = ?", quizID, userID).First(&existing).Error
		if err == nil {
			bookmarked = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		bookmarked = true
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "quiz_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&model.QuizBookmark{QuizID: quizID, UserID: userID}).Error
	})
	return bookmarked, err
}

func (r *BookmarkRepository) Exists(quizID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.QuizBookmark{}).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Count(&count).Error
	return count > 0, err
}

// BookmarkedQuizRow is one entry of a user's bookmark list; unrated quizzes
// carry an average rating of 0.
type BookmarkedQuizRow struct {
	model.Quiz
	AverageRating float64   `json:"averageRating"`
	BookmarkedAt  time.Time `json:"bookmarkedAt"`
}

func (r *BookmarkRepository) ListByUser(userID uint) ([]BookmarkedQuizRow, error) {
	var rows []BookmarkedQuizRow
	err := r.DB.Model(&model.Quiz{}).
		Select(`quizzes.*, COALESCE(r.avg_rating, 0) AS average_rating, b.created_at AS bookmarked_at`).
		Joins(`INNER JOIN quiz_bookmarks b ON b.quiz_id = quizzes.id AND b.user_id = ?`, userID).
		Joins(`LEFT JOIN (SELECT quiz_id, AVG(rating) AS avg_rating FROM quiz_ratings GROUP BY quiz_id) r ON r.quiz_id = quizzes.id`).
		Order("b.created_at desc").
		Scan(&rows).Error
	return rows, err
}
