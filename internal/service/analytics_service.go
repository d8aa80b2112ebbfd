package service

import (
	"time"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/repository"
	"quizdeck_backend/internal/util"
)

const weeklyWindowDays = 7

type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{AnalyticsRepo: analyticsRepo}
}

// WeeklyProgress rolls the user's attempts of the trailing seven calendar
// days (today inclusive, server-local time) into per-day buckets. Days
// without attempts appear with zero values rather than being omitted.
func (s *AnalyticsService) WeeklyProgress(userID uint) ([]model.DayProgress, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(weeklyWindowDays - 1))
	to := today.AddDate(0, 0, 1)

	rows, err := s.AnalyticsRepo.DailyAttempts(userID, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]repository.DailyAttemptRow, len(rows))
	for _, row := range rows {
		byDay[string(row.Day)] = row
	}

	progress := make([]model.DayProgress, weeklyWindowDays)
	for i := 0; i < weeklyWindowDays; i++ {
		day := from.AddDate(0, 0, i).Format(util.DateFormat)
		bucket := model.DayProgress{Date: day}
		if row, ok := byDay[day]; ok {
			bucket.QuizzesTaken = row.QuizzesTaken
			bucket.AverageScore = row.AverageScore
			bucket.XPEarned = row.XPEarned
		}
		progress[i] = bucket
	}

	return progress, nil
}

func (s *AnalyticsService) CategoryPerformance(userID uint) ([]model.CategoryPerformance, error) {
	return s.AnalyticsRepo.CategoryPerformance(userID)
}

func (s *AnalyticsService) UserStats(userID uint) (*model.UserStats, error) {
	return s.AnalyticsRepo.UserStats(userID)
}
