package handler

import (
	"github.com/bondtrack/backend/internal/application/tenantapp"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *tenantapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *tenantapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid login payload")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == shared.ErrUnauthorized {
			h.Unauthorized(c, "Invalid username or password")
			return
		}
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{
		"tokens":   result.Tokens,
		"username": result.User.Username,
	})
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid refresh payload")
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	h.Success(c, gin.H{"tokens": tokens})
}
