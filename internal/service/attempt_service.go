package service

import (
	"context"
	"errors"
	"time"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/repository"
	"quizdeck_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	xpPerCorrect   = 10
	perfectBonus   = 20
	leaderboardKey = "leaderboard:top"
)

type AttemptService struct {
	AttemptRepo *repository.AttemptRepository
	QuizRepo    *repository.QuizRepository
	UserRepo    *repository.UserRepository
	Redis       *redis.Client
}

func NewAttemptService(attemptRepo *repository.AttemptRepository, quizRepo *repository.QuizRepository, userRepo *repository.UserRepository, rdb *redis.Client) *AttemptService {
	return &AttemptService{
		AttemptRepo: attemptRepo,
		QuizRepo:    quizRepo,
		UserRepo:    userRepo,
		Redis:       rdb,
	}
}

type AttemptRequest struct {
	Answers   []int `json:"answers"`
	TimeTaken int   `json:"timeTaken"` // Seconds
}

// SubmitAttempt grades the ordered answer indices against the quiz's stored
// questions, computes score and XP, and persists the attempt together with
// the user's streak and XP counters in one transaction.
func (s *AttemptService) SubmitAttempt(quizID, userID uint, req AttemptRequest) (*model.QuizAttempt, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	if len(req.Answers) != len(quiz.Questions) {
		return nil, ValidationErrors{{Field: "answers", Message: "one answer per question is required"}}
	}

	correct := 0
	for i, question := range quiz.Questions {
		if req.Answers[i] == question.CorrectAnswer {
			correct++
		}
	}

	percentage := 0.0
	if len(quiz.Questions) > 0 {
		percentage = float64(correct) / float64(len(quiz.Questions)) * 100
	}

	xp := correct * xpPerCorrect * difficultyMultiplier(quiz.Difficulty)
	if correct == len(quiz.Questions) {
		xp += perfectBonus
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	currentStreak, bestStreak := s.nextStreak(user)

	attempt := &model.QuizAttempt{
		QuizID:      quizID,
		UserID:      userID,
		Answers:     model.IntList(req.Answers),
		Score:       correct,
		Percentage:  percentage,
		IsCompleted: true,
		TimeTaken:   req.TimeTaken,
		XPEarned:    xp,
	}

	if err := s.AttemptRepo.CreateWithProgress(attempt, user.TotalXP+xp, currentStreak, bestStreak); err != nil {
		return nil, err
	}

	s.invalidateLeaderboard()

	return attempt, nil
}

func difficultyMultiplier(d model.Difficulty) int {
	switch d {
	case model.Advanced:
		return 3
	case model.Intermediate:
		return 2
	default:
		return 1
	}
}

// nextStreak decides the streak counters for a submission happening now:
// a second attempt on the same day keeps the streak, an attempt on the day
// after the last one extends it, anything else restarts at 1.
func (s *AttemptService) nextStreak(user *model.User) (current, best int) {
	current = 1

	last, err := s.AttemptRepo.LatestByUser(user.ID)
	if err == nil {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		lastDay := time.Date(last.CreatedAt.Year(), last.CreatedAt.Month(), last.CreatedAt.Day(), 0, 0, 0, 0, last.CreatedAt.Location())

		switch {
		case lastDay.Equal(today):
			current = user.CurrentStreak
			if current == 0 {
				current = 1
			}
		case lastDay.Equal(today.AddDate(0, 0, -1)):
			current = user.CurrentStreak + 1
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		// First attempt ever still earns a streak of 1; only log other
		// lookup failures.
		logger.Log.Warn("streak lookup failed", zap.Uint("userID", user.ID), zap.Error(err))
	}

	best = user.BestStreak
	if current > best {
		best = current
	}
	return current, best
}

func (s *AttemptService) ListAttempts(userID uint, page, limit int) ([]model.QuizAttempt, int64, error) {
	return s.AttemptRepo.ListByUser(userID, page, limit)
}

func (s *AttemptService) invalidateLeaderboard() {
	if s.Redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Redis.Del(ctx, leaderboardKey).Err(); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}
