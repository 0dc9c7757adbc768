package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hillcrest/college-backend/internal/app/models/dto"
	"github.com/hillcrest/college-backend/internal/app/services"
	"github.com/hillcrest/college-backend/internal/middleware"
)

// AuthController handles registration, login and session introspection
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid registration data", err.Error())
		return
	}

	response, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(response))
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid login data", err.Error())
		return
	}

	response, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}

// Me handles GET /auth/me. Requires a valid token; returns 404 when the
// token's subject no longer exists.
func (c *AuthController) Me(ctx *gin.Context) {
	userID, exists := ctx.Get(middleware.ContextUserID)
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.UserByID(ctx.Request.Context(), userID.(int64))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// Logout handles POST /auth/logout. There is no server-side revocation:
// the token stays valid until its natural expiry and the client simply
// discards it.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}
