package controller

import (
	"quizdeck_backend/internal/service"
	"quizdeck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service     *service.AuthService
	UserService *service.UserService
}

func NewAuthController(svc *service.AuthService, userSvc *service.UserService) *AuthController {
	return &AuthController{Service: svc, UserService: userSvc}
}

// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "registration data"
// @Success 201 {object} util.Response
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Service.Register(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, resp)
}

// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Service.Login(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary Current user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}
