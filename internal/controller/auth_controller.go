package controller

import (
	"likebike_backend/internal/service"
	"likebike_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest carries the Kakao OAuth authorization code.
type LoginRequest struct {
	Code string `json:"code"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login exchanges a Kakao authorization code for a token pair, creating the
// user on first login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	access, refresh, err := c.AuthService.KakaoLogin(req.Code)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (c *AuthController) Refresh(ctx *gin.Context) {
	var req RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	access, err := c.AuthService.Refresh(req.RefreshToken)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"accessToken": access})
}

// Logout revokes the user's refresh tokens. Always succeeds: an invalid or
// missing token still logs the client out.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req LogoutRequest
	_ = ctx.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		c.AuthService.Logout(req.RefreshToken)
	}

	util.Success(ctx, gin.H{"success": true})
}
