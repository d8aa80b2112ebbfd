package service

import (
	"fmt"
	"testing"
	"time"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/pkg/database"
	"quizdeck_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Log = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedQuizWithQuestions creates a quiz whose every question has correct
// answer index 0.
func seedQuizWithQuestions(t *testing.T, db *gorm.DB, ownerID uint, difficulty model.Difficulty, questionCount int) *model.Quiz {
	t.Helper()

	quiz := &model.Quiz{
		Title:       "Seed Quiz",
		Description: "seeded",
		Category:    "general",
		Difficulty:  difficulty,
		UserID:      ownerID,
	}
	require.NoError(t, db.Create(quiz).Error)

	for i := 0; i < questionCount; i++ {
		q := &model.Question{
			QuizID:        quiz.ID,
			Title:         fmt.Sprintf("Question %d", i+1),
			Choices:       model.StringList{"right", "wrong"},
			CorrectAnswer: 0,
			Order:         i,
		}
		require.NoError(t, db.Create(q).Error)
	}
	return quiz
}

// seedAttemptAt writes an attempt with an explicit creation time, noon-based
// to stay clear of calendar day boundaries.
func seedAttemptAt(t *testing.T, db *gorm.DB, quizID, userID uint, createdAt time.Time, score, xp int, percentage float64) *model.QuizAttempt {
	t.Helper()

	attempt := &model.QuizAttempt{
		QuizID:      quizID,
		UserID:      userID,
		Score:       score,
		Percentage:  percentage,
		IsCompleted: true,
		XPEarned:    xp,
	}
	attempt.CreatedAt = createdAt
	require.NoError(t, db.Create(attempt).Error)
	return attempt
}

func noonDaysAgo(days int) time.Time {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -days)
}
