package controller

import (
	"quizdeck_backend/internal/service"
	"quizdeck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	Service *service.AttemptService
}

func NewAttemptController(svc *service.AttemptService) *AttemptController {
	return &AttemptController{Service: svc}
}

// @Summary Submit a quiz attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body service.AttemptRequest true "ordered answer indices"
// @Success 201 {object} util.Response
// @Router /quizzes/{id}/attempts [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var req service.AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.Service.SubmitAttempt(quizID, claims.UserID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, attempt)
}

// @Summary Attempt history for a user
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId}/attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	userID, ok := authorizedUserID(ctx)
	if !ok {
		return
	}

	page, limit := pageParams(ctx)
	attempts, total, err := c.Service.ListAttempts(userID, page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  attempts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
