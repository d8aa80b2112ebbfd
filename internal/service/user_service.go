package service

import (
	"context"
	"encoding/json"
	"time"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/repository"
	"quizdeck_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardSize = 20
	leaderboardTTL  = 5 * time.Minute
)

type UserService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewUserService(userRepo *repository.UserRepository, rdb *redis.Client) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Redis:    rdb,
	}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

type ProfileUpdateRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Avatar = req.Avatar
	user.Bio = req.Bio

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Leaderboard returns the top users by XP, served from redis when fresh.
// The cache key is dropped whenever an attempt submission changes XP.
func (s *UserService) Leaderboard() ([]model.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, leaderboardKey).Bytes()
		if err == nil {
			var entries []model.LeaderboardEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.UserRepo.TopByXP(leaderboardSize)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			if err := s.Redis.Set(ctx, leaderboardKey, payload, leaderboardTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return entries, nil
}
