package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/middleware"
	"github.com/kartikmaddali/aura-commerce-demo/services"
)

// UserController exposes profile and organization member endpoints.
type UserController struct {
	users  services.UserService
	logger *zap.Logger
}

// NewUserController creates a UserController.
func NewUserController(users services.UserService, logger *zap.Logger) *UserController {
	return &UserController{users: users, logger: logger}
}

// Profile handles GET /api/users/profile.
func (uc *UserController) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	profile, svcErr := uc.users.Profile(user)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// UpdateProfile handles PUT /api/users/profile.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	profile, svcErr := uc.users.UpdateProfile(user, &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// ListOrganizationUsers handles GET /api/users/b2b/organization.
func (uc *UserController) ListOrganizationUsers(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	members, pagination, svcErr := uc.users.ListOrganizationUsers(user, c.Query("role"), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":          members,
		"organizationId": user.OrganizationID,
		"pagination":     pagination,
	})
}

// CreateOrganizationUser handles POST /api/users/b2b.
func (uc *UserController) CreateOrganizationUser(c *gin.Context) {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req services.CreateOrganizationUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	member, svcErr := uc.users.CreateOrganizationUser(admin, &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	uc.logger.Info("organization user created",
		zap.String("created_by", admin.ID),
		zap.String("email", req.Email),
	)
	c.JSON(http.StatusCreated, gin.H{"user": member})
}
