package controller

import (
	"quizdeck_backend/internal/service"
	"quizdeck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(svc *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: svc}
}

// @Summary Per-day progress for the trailing week
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId}/analytics/weekly [get]
func (c *AnalyticsController) WeeklyProgress(ctx *gin.Context) {
	userID, ok := authorizedUserID(ctx)
	if !ok {
		return
	}

	progress, err := c.Service.WeeklyProgress(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary Attempt counts and averages per quiz category
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId}/analytics/categories [get]
func (c *AnalyticsController) CategoryPerformance(ctx *gin.Context) {
	userID, ok := authorizedUserID(ctx)
	if !ok {
		return
	}

	performance, err := c.Service.CategoryPerformance(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, performance)
}

// @Summary Lifetime stats, streaks and XP
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId}/stats [get]
func (c *AnalyticsController) UserStats(ctx *gin.Context) {
	userID, ok := authorizedUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.Service.UserStats(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
