package repository

import (
	"errors"
	"testing"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sampleQuestions() []model.Question {
	return []model.Question{
		{Title: "What is 2+2?", Choices: model.StringList{"3", "4", "5"}, CorrectAnswer: 1},
		{Title: "Capital of France?", Choices: model.StringList{"Paris", "Lyon"}, CorrectAnswer: 0},
		{Title: "Largest planet?", Choices: model.StringList{"Mars", "Jupiter", "Venus", "Earth"}, CorrectAnswer: 1},
	}
}

func TestCreateWithQuestions_PersistsOrderedQuestions(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	owner := seedUser(t, db, "owner@example.com")

	input := sampleQuestions()
	quiz := &model.Quiz{
		Title:       "Arithmetic",
		Description: "basics",
		Category:    "math",
		Difficulty:  model.Beginner,
		UserID:      owner.ID,
	}

	require.NoError(t, repo.CreateWithQuestions(quiz, input))
	require.NotZero(t, quiz.ID)

	stored, err := repo.FindByID(quiz.ID)
	require.NoError(t, err)
	require.Len(t, stored.Questions, len(input))

	for i, q := range stored.Questions {
		assert.Equal(t, input[i].Title, q.Title)
		assert.Equal(t, input[i].Choices, q.Choices)
		assert.Equal(t, input[i].CorrectAnswer, q.CorrectAnswer)
		assert.Equal(t, i, q.Order)
		assert.Equal(t, quiz.ID, q.QuizID)
	}
}

func TestCreateWithQuestions_RollsBackOnQuestionInsertFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	owner := seedUser(t, db, "owner@example.com")

	forced := errors.New("forced question insert failure")
	err := db.Callback().Create().Before("gorm:create").Register("force_question_failure", func(tx *gorm.DB) {
		if tx.Statement.Table == "questions" {
			tx.AddError(forced)
		}
	})
	require.NoError(t, err)

	quiz := &model.Quiz{
		Title:       "Doomed",
		Description: "never lands",
		Category:    "math",
		Difficulty:  model.Beginner,
		UserID:      owner.ID,
	}
	require.ErrorIs(t, repo.CreateWithQuestions(quiz, sampleQuestions()), forced)

	// Full rollback: the quiz row from the same call must not persist.
	var count int64
	require.NoError(t, db.Model(&model.Quiz{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateWithQuestions_ReplacesQuestionSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	owner := seedUser(t, db, "owner@example.com")

	quiz := &model.Quiz{
		Title:       "Before",
		Description: "v1",
		Category:    "math",
		Difficulty:  model.Beginner,
		UserID:      owner.ID,
	}
	require.NoError(t, repo.CreateWithQuestions(quiz, sampleQuestions()))

	replacement := []model.Question{
		{Title: "Only question now", Choices: model.StringList{"yes", "no"}, CorrectAnswer: 0},
	}
	updated := &model.Quiz{
		Title:         "After",
		Description:   "v2",
		Category:      "science",
		Difficulty:    model.Advanced,
		IsTimeLimited: true,
		TimeLimit:     30,
	}
	require.NoError(t, repo.UpdateWithQuestions(quiz.ID, owner.ID, updated, replacement))

	stored, err := repo.FindByID(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", stored.Title)
	assert.Equal(t, "science", stored.Category)
	assert.Equal(t, model.Advanced, stored.Difficulty)
	assert.True(t, stored.IsTimeLimited)
	assert.Equal(t, 30, stored.TimeLimit)
	require.Len(t, stored.Questions, 1)
	assert.Equal(t, "Only question now", stored.Questions[0].Title)
}

func TestUpdateWithQuestions_NonOwnerLeavesStoreUnchanged(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	owner := seedUser(t, db, "owner@example.com")
	intruder := seedUser(t, db, "intruder@example.com")

	quiz := &model.Quiz{
		Title:       "Mine",
		Description: "original",
		Category:    "math",
		Difficulty:  model.Beginner,
		UserID:      owner.ID,
	}
	require.NoError(t, repo.CreateWithQuestions(quiz, sampleQuestions()))

	err := repo.UpdateWithQuestions(quiz.ID, intruder.ID, &model.Quiz{
		Title:       "Hijacked",
		Description: "nope",
		Category:    "hack",
		Difficulty:  model.Advanced,
	}, nil)
	require.ErrorIs(t, err, util.ErrQuizNotFound)

	stored, err := repo.FindByID(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", stored.Title)
	assert.Equal(t, owner.ID, stored.UserID)
	assert.Len(t, stored.Questions, len(sampleQuestions()))
}

func TestDelete_RemovesDependents(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	owner := seedUser(t, db, "owner@example.com")
	taker := seedUser(t, db, "taker@example.com")

	quiz := &model.Quiz{
		Title:       "Short lived",
		Description: "gone soon",
		Category:    "math",
		Difficulty:  model.Beginner,
		UserID:      owner.ID,
	}
	require.NoError(t, repo.CreateWithQuestions(quiz, sampleQuestions()))

	require.NoError(t, db.Create(&model.QuizAttempt{QuizID: quiz.ID, UserID: taker.ID, Score: 1}).Error)
	require.NoError(t, db.Create(&model.QuizBookmark{QuizID: quiz.ID, UserID: taker.ID}).Error)
	require.NoError(t, db.Create(&model.QuizRating{QuizID: quiz.ID, UserID: taker.ID, Rating: 4}).Error)

	require.NoError(t, repo.Delete(quiz.ID, owner.ID))

	_, err := repo.FindByID(quiz.ID)
	require.ErrorIs(t, err, util.ErrQuizNotFound)

	var questions, bookmarks, ratings int64
	require.NoError(t, db.Model(&model.Question{}).Where("quiz_id = ?", quiz.ID).Count(&questions).Error)
	require.NoError(t, db.Model(&model.QuizBookmark{}).Where("quiz_id = ?", quiz.ID).Count(&bookmarks).Error)
	require.NoError(t, db.Model(&model.QuizRating{}).Where("quiz_id = ?", quiz.ID).Count(&ratings).Error)
	assert.Zero(t, questions)
	assert.Zero(t, bookmarks)
	assert.Zero(t, ratings)
}

func TestDelete_NonOwnerRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	owner := seedUser(t, db, "owner@example.com")
	intruder := seedUser(t, db, "intruder@example.com")

	quiz := seedQuiz(t, db, owner.ID, "math")
	require.ErrorIs(t, repo.Delete(quiz.ID, intruder.ID), util.ErrQuizNotFound)

	_, err := repo.FindByID(quiz.ID)
	require.NoError(t, err)
}

func TestList_UnratedQuizReportsZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	owner := seedUser(t, db, "owner@example.com")
	rater := seedUser(t, db, "rater@example.com")

	unrated := seedQuiz(t, db, owner.ID, "math")
	rated := seedQuiz(t, db, owner.ID, "science")
	require.NoError(t, db.Create(&model.QuizRating{QuizID: rated.ID, UserID: rater.ID, Rating: 5}).Error)
	require.NoError(t, db.Create(&model.QuizRating{QuizID: rated.ID, UserID: owner.ID, Rating: 3}).Error)

	rows, total, err := repo.List(rater.ID, "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)

	byID := map[uint]QuizListRow{}
	for _, row := range rows {
		byID[row.Quiz.ID] = row
	}
	assert.Equal(t, 0.0, byID[unrated.ID].AverageRating)
	assert.InDelta(t, 4.0, byID[rated.ID].AverageRating, 0.001)
	assert.Equal(t, 2, byID[rated.ID].RatingCount)
}
