package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/models"
)

// UpdateProfileRequest is the payload for PUT /api/users/profile.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// CreateOrganizationUserRequest is the payload for POST /api/users/b2b.
type CreateOrganizationUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

// UserService serves profile and organization member data. User records are
// owned by the external identity provider; this service only echoes and
// fabricates demo data.
type UserService interface {
	Profile(user *models.User) (*models.User, *apperrors.Error)
	UpdateProfile(user *models.User, req *UpdateProfileRequest) (*models.User, *apperrors.Error)
	ListOrganizationUsers(user *models.User, role string, page, limit int) ([]models.User, models.Pagination, *apperrors.Error)
	CreateOrganizationUser(admin *models.User, req *CreateOrganizationUserRequest) (*models.User, *apperrors.Error)
}

type userServiceImpl struct {
	logger *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(logger *zap.Logger) UserService {
	return &userServiceImpl{logger: logger}
}

// Profile returns the request identity as the profile.
func (s *userServiceImpl) Profile(user *models.User) (*models.User, *apperrors.Error) {
	return user, nil
}

// UpdateProfile applies the requested fields to the request identity. The
// change lasts only for this response; the provider record is untouched.
func (s *userServiceImpl) UpdateProfile(user *models.User, req *UpdateProfileRequest) (*models.User, *apperrors.Error) {
	updated := *user
	if req.FirstName != nil {
		updated.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		updated.LastName = *req.LastName
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}

	s.logger.Info("Profile updated", zap.String("user_id", user.ID))
	return &updated, nil
}

// ListOrganizationUsers returns mock members of the caller's organization.
func (s *userServiceImpl) ListOrganizationUsers(user *models.User, role string, page, limit int) ([]models.User, models.Pagination, *apperrors.Error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	members := []models.User{
		{
			ID:             "user_456",
			Email:          "buyer@acme.example.com",
			FirstName:      "Org",
			LastName:       "Buyer",
			Brand:          models.BrandAuraWholesale,
			Roles:          []string{"buyer"},
			OrganizationID: user.OrganizationID,
		},
		{
			ID:             "user_789",
			Email:          "admin@acme.example.com",
			FirstName:      "Org",
			LastName:       "Admin",
			Brand:          models.BrandAuraWholesale,
			Roles:          []string{"admin", "buyer"},
			OrganizationID: user.OrganizationID,
		},
	}

	if role != "" {
		filtered := members[:0]
		for _, m := range members {
			if m.HasRole(role) {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}

	pagination := models.Pagination{Page: page, Limit: limit, Total: len(members), TotalPages: 1}
	return members, pagination, nil
}

// CreateOrganizationUser fabricates a new member in the admin's organization.
func (s *userServiceImpl) CreateOrganizationUser(admin *models.User, req *CreateOrganizationUserRequest) (*models.User, *apperrors.Error) {
	member := &models.User{
		ID:             fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Brand:          models.BrandAuraWholesale,
		Roles:          []string{req.Role},
		OrganizationID: admin.OrganizationID,
	}

	s.logger.Info("Organization user created",
		zap.String("user_id", member.ID),
		zap.String("organization_id", admin.OrganizationID),
		zap.String("created_by", admin.ID),
	)
	return member, nil
}
