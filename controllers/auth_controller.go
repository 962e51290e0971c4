package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/middleware"
	"github.com/kartikmaddali/aura-commerce-demo/services"
)

// AuthController exposes the auth endpoints. Credential issuance lives with
// the external identity provider; these handlers only describe that flow and
// echo the decoded identity.
type AuthController struct {
	permissions services.PermissionService
	logger      *zap.Logger
}

// NewAuthController creates an AuthController.
func NewAuthController(permissions services.PermissionService, logger *zap.Logger) *AuthController {
	return &AuthController{permissions: permissions, logger: logger}
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login is handled by the identity provider. Send the issued bearer token with each request.",
	})
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration is handled by the identity provider.",
	})
}

// Refresh handles POST /api/auth/refresh.
func (ac *AuthController) Refresh(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token refresh is handled by the identity provider.",
	})
}

// Logout handles POST /api/auth/logout.
func (ac *AuthController) Logout(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		ac.logger.Info("user logged out", zap.String("user_id", user.ID))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

// Profile handles GET /api/auth/profile, returning the decoded identity and
// its derived permissions.
func (ac *AuthController) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"permissions": ac.permissions.Derive(user),
	})
}
