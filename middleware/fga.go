package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/models"
)

type policyKey struct {
	resource string
	action   string
}

// policies is the relationship table backing RequirePermission. Pairs not
// listed here are denied.
var policies = map[policyKey]func(*models.User) bool{
	{"orders", "read"}: func(u *models.User) bool {
		return true
	},
	{"orders", "write"}: func(u *models.User) bool {
		return u.HasRole("admin")
	},
	{"users", "write"}: func(u *models.User) bool {
		return u.HasRole("admin")
	},
	{"vip-lounge", "read"}: func(u *models.User) bool {
		return u.IsPremium || u.HasRole("premium-member")
	},
}

// CheckPermission evaluates the policy table for a resource/action pair.
// Unknown pairs are denied.
func CheckPermission(user *models.User, resource, action string) bool {
	rule, ok := policies[policyKey{resource, action}]
	if !ok {
		return false
	}
	return rule(user)
}

// RequirePermission aborts with 403 unless the identity may perform the
// given action on the resource.
func RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apperrors.Abort(c, apperrors.ErrMissingToken.WithMessage("Authentication required"))
			return
		}
		if !CheckPermission(user, resource, action) {
			zap.L().Warn("permission denied",
				zap.String("user_id", user.ID),
				zap.String("resource", resource),
				zap.String("action", action),
			)
			apperrors.Abort(c, apperrors.NewForbidden(
				fmt.Sprintf("Permission denied: %s:%s", action, resource)))
			return
		}
		c.Next()
	}
}
