package repository

import (
	"errors"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/util"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// CreateWithQuestions inserts the quiz row and its question set in one
// transaction. Question order follows the slice order. Any failure rolls
// the whole write back.
func (r *QuizRepository) CreateWithQuestions(quiz *model.Quiz, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		if quiz.ID == 0 {
			return errors.New("quiz insert returned no row")
		}

		for i := range questions {
			questions[i].QuizID = quiz.ID
			questions[i].Order = i
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateWithQuestions replaces the quiz's scalar fields and its whole
// question set. Ownership is re-checked inside the transaction so a
// concurrent owner change cannot slip between check and write; a miss
// aborts with ErrQuizNotFound and leaves the store untouched.
func (r *QuizRepository) UpdateWithQuestions(quizID, ownerID uint, quiz *model.Quiz, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Quiz
		if err := tx.Where("id = ? AND user_id = ?", quizID, ownerID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuizNotFound
			}
			return err
		}

		res := tx.Model(&model.Quiz{}).
			Where("id = ? AND user_id = ?", quizID, ownerID).
			Updates(map[string]interface{}{
				"title":           quiz.Title,
				"description":     quiz.Description,
				"category":        quiz.Category,
				"difficulty":      quiz.Difficulty,
				"is_time_limited": quiz.IsTimeLimited,
				"time_limit":      quiz.TimeLimit,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrQuizNotFound
		}

		// Full replace: prior question identity is discarded on every edit.
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].ID = 0
			questions[i].QuizID = quizID
			questions[i].Order = i
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}

		quiz.ID = quizID
		return nil
	})
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.`order` asc")
	}).First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// QuizListRow is a catalog row: quiz scalars plus the caller-facing
// aggregates. Unrated quizzes report 0, never NULL.
type QuizListRow struct {
	model.Quiz
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
	QuestionCount int     `json:"questionCount"`
	IsBookmarked  bool    `json:"isBookmarked"`
}

func (r *QuizRepository) List(callerID uint, category string, page, limit int) ([]QuizListRow, int64, error) {
	var total int64
	countQuery := r.DB.Model(&model.Quiz{})
	if category != "" {
		countQuery = countQuery.Where("category = ?", category)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.DB.Model(&model.Quiz{}).
		Select(`quizzes.*,
			COALESCE(r.avg_rating, 0) AS average_rating,
			COALESCE(r.rating_count, 0) AS rating_count,
			COALESCE(q.question_count, 0) AS question_count,
			CASE WHEN b.id IS NULL THEN 0 ELSE 1 END AS is_bookmarked`).
		Joins(`LEFT JOIN (SELECT quiz_id, AVG(rating) AS avg_rating, COUNT(*) AS rating_count FROM quiz_ratings GROUP BY quiz_id) r ON r.quiz_id = quizzes.id`).
		Joins(`LEFT JOIN (SELECT quiz_id, COUNT(*) AS question_count FROM questions WHERE deleted_at IS NULL GROUP BY quiz_id) q ON q.quiz_id = quizzes.id`).
		Joins(`LEFT JOIN quiz_bookmarks b ON b.quiz_id = quizzes.id AND b.user_id = ?`, callerID)
	if category != "" {
		query = query.Where("quizzes.category = ?", category)
	}

	var rows []QuizListRow
	offset := (page - 1) * limit
	err := query.Order("quizzes.created_at desc").Offset(offset).Limit(limit).Scan(&rows).Error
	return rows, total, err
}

func (r *QuizRepository) ListByOwner(ownerID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("user_id = ?", ownerID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.`order` asc")
		}).
		Order("created_at desc").
		Find(&quizzes).Error
	return quizzes, err
}

// Delete removes the quiz and everything referencing it, owner only.
func (r *QuizRepository) Delete(quizID, ownerID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.Where("id = ? AND user_id = ?", quizID, ownerID).First(&quiz).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuizNotFound
			}
			return err
		}

		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizBookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizRating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, quizID).Error
	})
}
