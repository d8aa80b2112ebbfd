package controller

import (
	"quizdeck_backend/internal/service"
	"quizdeck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service     *service.UserService
	QuizService *service.QuizService
}

func NewUserController(svc *service.UserService, quizSvc *service.QuizService) *UserController {
	return &UserController{Service: svc, QuizService: quizSvc}
}

// @Summary Update a user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Param body body service.ProfileUpdateRequest true "profile fields"
// @Success 200 {object} util.Response
// @Router /users/{userId}/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := authorizedUserID(ctx)
	if !ok {
		return
	}

	var req service.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.Service.UpdateProfile(userID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// @Summary Quizzes bookmarked by a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId}/bookmarks [get]
func (c *UserController) ListBookmarks(ctx *gin.Context) {
	userID, ok := authorizedUserID(ctx)
	if !ok {
		return
	}

	rows, err := c.QuizService.ListBookmarks(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary XP leaderboard
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /leaderboard [get]
func (c *UserController) Leaderboard(ctx *gin.Context) {
	entries, err := c.Service.Leaderboard()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
