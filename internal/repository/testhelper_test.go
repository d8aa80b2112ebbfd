package repository

import (
	"fmt"
	"testing"

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

func seedQuiz(t *testing.T, db *gorm.DB, ownerID uint, category string) *model.Quiz {
	t.Helper()

	quiz := &model.Quiz{
		Title:       "Seed Quiz",
		Description: "seeded",
		Category:    category,
		Difficulty:  model.Beginner,
		UserID:      ownerID,
	}
	require.NoError(t, db.Create(quiz).Error)
	return quiz
}
