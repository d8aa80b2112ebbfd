package controller

import (
	"quizdeck_backend/internal/service"
	"quizdeck_backend/internal/util"
	"quizdeck_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary Create a quiz with its questions
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuizFormRequest true "quiz form"
// @Success 201 {object} util.Response
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.Service.CreateQuiz(claims.UserID, req)
	if err != nil {
		monitoring.QuizWriteCounter.WithLabelValues("create", "error").Inc()
		handleServiceError(ctx, err)
		return
	}

	monitoring.QuizWriteCounter.WithLabelValues("create", "ok").Inc()
	util.Created(ctx, gin.H{"id": id})
}

// @Summary Update a quiz, replacing its question set
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body service.QuizFormRequest true "quiz form"
// @Success 200 {object} util.Response
// @Router /quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
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

	var req service.QuizFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.Service.UpdateQuiz(quizID, claims.UserID, req)
	if err != nil {
		monitoring.QuizWriteCounter.WithLabelValues("update", "error").Inc()
		handleServiceError(ctx, err)
		return
	}

	monitoring.QuizWriteCounter.WithLabelValues("update", "ok").Inc()
	util.Success(ctx, gin.H{"id": id})
}

// @Summary List quizzes with ratings and bookmark flags
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param category query string false "filter by category"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := pageParams(ctx)
	rows, total, err := c.Service.ListQuizzes(claims.UserID, ctx.Query("category"), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  rows,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get one quiz with ordered questions
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.GetQuiz(quizID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary List the caller's own quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /quizzes/mine [get]
func (c *QuizController) ListOwnQuizzes(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.Service.ListOwnQuizzes(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}

// @Summary Delete a quiz and everything referencing it
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
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

	if err := c.Service.DeleteQuiz(quizID, claims.UserID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Toggle a bookmark on a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Router /quizzes/{id}/bookmark [post]
func (c *QuizController) ToggleBookmark(ctx *gin.Context) {
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

	bookmarked, err := c.Service.ToggleBookmark(quizID, claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"isBookmarked": bookmarked})
}

type rateRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// @Summary Rate a quiz (upsert, one rating per user)
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body rateRequest true "rating"
// @Success 200 {object} util.Response
// @Router /quizzes/{id}/rating [put]
func (c *QuizController) RateQuiz(ctx *gin.Context) {
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

	var req rateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	average, err := c.Service.RateQuiz(quizID, claims.UserID, req.Rating)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"averageRating": average})
}
