package service

import (
	"testing"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/repository"
	"quizdeck_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAttemptService(db *gorm.DB) *AttemptService {
	return NewAttemptService(
		repository.NewAttemptRepository(db),
		repository.NewQuizRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
}

func TestSubmitAttempt_GradesAndAwardsXP(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db)
	owner := seedUser(t, db, "owner@example.com")
	taker := seedUser(t, db, "taker@example.com")
	quiz := seedQuizWithQuestions(t, db, owner.ID, model.Intermediate, 4)

	attempt, err := svc.SubmitAttempt(quiz.ID, taker.ID, AttemptRequest{
		Answers:   []int{0, 0, 1, 0},
		TimeTaken: 95,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, attempt.Score)
	assert.InDelta(t, 75.0, attempt.Percentage, 0.001)
	assert.Equal(t, 3*xpPerCorrect*2, attempt.XPEarned)
	assert.Equal(t, 95, attempt.TimeTaken)
	assert.True(t, attempt.IsCompleted)

	var stored model.User
	require.NoError(t, db.First(&stored, taker.ID).Error)
	assert.Equal(t, attempt.XPEarned, stored.TotalXP)
	assert.Equal(t, 1, stored.CurrentStreak)
	assert.Equal(t, 1, stored.BestStreak)
}

func TestSubmitAttempt_PerfectScoreBonus(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db)
	owner := seedUser(t, db, "owner@example.com")
	taker := seedUser(t, db, "taker@example.com")
	quiz := seedQuizWithQuestions(t, db, owner.ID, model.Advanced, 2)

	attempt, err := svc.SubmitAttempt(quiz.ID, taker.ID, AttemptRequest{Answers: []int{0, 0}})
	require.NoError(t, err)

	assert.Equal(t, 2, attempt.Score)
	assert.InDelta(t, 100.0, attempt.Percentage, 0.001)
	assert.Equal(t, 2*xpPerCorrect*3+perfectBonus, attempt.XPEarned)
}

func TestSubmitAttempt_AnswerCountMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db)
	owner := seedUser(t, db, "owner@example.com")
	taker := seedUser(t, db, "taker@example.com")
	quiz := seedQuizWithQuestions(t, db, owner.ID, model.Beginner, 3)

	_, err := svc.SubmitAttempt(quiz.ID, taker.ID, AttemptRequest{Answers: []int{0}})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "answers", verrs[0].Field)

	var count int64
	require.NoError(t, db.Model(&model.QuizAttempt{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitAttempt_UnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db)
	taker := seedUser(t, db, "taker@example.com")

	_, err := svc.SubmitAttempt(9999, taker.ID, AttemptRequest{Answers: []int{0}})
	require.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestSubmitAttempt_AccumulatesXP(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db)
	owner := seedUser(t, db, "owner@example.com")
	taker := seedUser(t, db, "taker@example.com")
	quiz := seedQuizWithQuestions(t, db, owner.ID, model.Beginner, 1)

	first, err := svc.SubmitAttempt(quiz.ID, taker.ID, AttemptRequest{Answers: []int{0}})
	require.NoError(t, err)
	second, err := svc.SubmitAttempt(quiz.ID, taker.ID, AttemptRequest{Answers: []int{1}})
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, db.First(&stored, taker.ID).Error)
	assert.Equal(t, first.XPEarned+second.XPEarned, stored.TotalXP)
}

func TestSubmitAttempt_SameDayKeepsStreak(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db)
	owner := seedUser(t, db, "owner@example.com")
	taker := seedUser(t, db, "taker@example.com")
	quiz := seedQuizWithQuestions(t, db, owner.ID, model.Beginner, 1)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", taker.ID).
		Updates(map[string]interface{}{"current_streak": 3, "best_streak": 5}).Error)
	seedAttemptAt(t, db, quiz.ID, taker.ID, noonDaysAgo(0), 1, 10, 100)

	_, err := svc.SubmitAttempt(quiz.ID, taker.ID, AttemptRequest{Answers: []int{0}})
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, db.First(&stored, taker.ID).Error)
	assert.Equal(t, 3, stored.CurrentStreak)
	assert.Equal(t, 5, stored.BestStreak)
}

func TestSubmitAttempt_DayAfterExtendsStreak(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db)
	owner := seedUser(t, db, "owner@example.com")
	taker := seedUser(t, db, "taker@example.com")
	quiz := seedQuizWithQuestions(t, db, owner.ID, model.Beginner, 1)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", taker.ID).
		Updates(map[string]interface{}{"current_streak": 5, "best_streak": 5}).Error)
	seedAttemptAt(t, db, quiz.ID, taker.ID, noonDaysAgo(1), 1, 10, 100)

	_, err := svc.SubmitAttempt(quiz.ID, taker.ID, AttemptRequest{Answers: []int{0}})
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, db.First(&stored, taker.ID).Error)
	assert.Equal(t, 6, stored.CurrentStreak)
	assert.Equal(t, 6, stored.BestStreak)
}

func TestSubmitAttempt_GapResetsStreak(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db)
	owner := seedUser(t, db, "owner@example.com")
	taker := seedUser(t, db, "taker@example.com")
	quiz := seedQuizWithQuestions(t, db, owner.ID, model.Beginner, 1)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", taker.ID).
		Updates(map[string]interface{}{"current_streak": 7, "best_streak": 9}).Error)
	seedAttemptAt(t, db, quiz.ID, taker.ID, noonDaysAgo(3), 1, 10, 100)

	_, err := svc.SubmitAttempt(quiz.ID, taker.ID, AttemptRequest{Answers: []int{0}})
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, db.First(&stored, taker.ID).Error)
	assert.Equal(t, 1, stored.CurrentStreak)
	assert.Equal(t, 9, stored.BestStreak)
}
