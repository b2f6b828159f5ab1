package controller

import (
	"hr_console/internal/service"
	"hr_console/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Login godoc
// @Summary Operator login
// @Description Exchange operator credentials for a console token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=service.LoginResponse}
// @Failure 401 {object} util.Response
// @Router /console/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AuthService.Login(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// Me godoc
// @Summary Current operator
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Operator}
// @Router /console/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetOperatorFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	op, err := c.AuthService.Current(claims.OperatorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, op)
}
