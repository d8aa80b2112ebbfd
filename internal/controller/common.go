package controller

import (
	"errors"
	"net/http"
	"strconv"

	"quizdeck_backend/internal/service"
	"quizdeck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps service errors onto the response envelope.
// Expected conditions keep their own status; anything unrecognized is
// logged and hidden behind a generic 500.
func handleServiceError(ctx *gin.Context, err error) {
	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		ctx.JSON(http.StatusBadRequest, util.Response{
			Code:    http.StatusBadRequest,
			Message: "validation failed",
			Data:    verrs,
		})
	case errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrUnauthorized),
		errors.Is(err, util.ErrInvalidCredential):
		util.Unauthorized(ctx)
	case errors.Is(err, util.ErrForbidden):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// authorizedUserID confirms the route's userId matches the authenticated
// session and returns it. A missing session or a mismatch both answer 401;
// the caller must return immediately when ok is false.
func authorizedUserID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}

	claimed, err := util.ParseID(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return 0, false
	}

	if claimed != claims.UserID {
		util.Unauthorized(ctx)
		return 0, false
	}

	return claimed, true
}

func pageParams(ctx *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
