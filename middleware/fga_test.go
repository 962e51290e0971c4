package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kartikmaddali/aura-commerce-demo/middleware"
	"github.com/kartikmaddali/aura-commerce-demo/models"
)

func TestCheckPermissionPolicyTable(t *testing.T) {
	admin := &models.User{ID: "user_1", Roles: []string{"admin"}}
	customer := &models.User{ID: "user_2", Roles: []string{"customer"}}
	premiumFlag := &models.User{ID: "user_3", Roles: []string{"customer"}, IsPremium: true}
	premiumRole := &models.User{ID: "user_4", Roles: []string{"premium-member"}}

	tests := []struct {
		name     string
		user     *models.User
		resource string
		action   string
		want     bool
	}{
		{"orders read is open to everyone", customer, "orders", "read", true},
		{"orders write requires admin", customer, "orders", "write", false},
		{"orders write allowed for admin", admin, "orders", "write", true},
		{"users write requires admin", customer, "users", "write", false},
		{"users write allowed for admin", admin, "users", "write", true},
		{"vip lounge denied by default", customer, "vip-lounge", "read", false},
		{"vip lounge open to premium flag", premiumFlag, "vip-lounge", "read", true},
		{"vip lounge open to premium role", premiumRole, "vip-lounge", "read", true},
		{"unlisted resource denied", admin, "analytics", "read", false},
		{"unlisted action denied", admin, "orders", "delete", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.CheckPermission(tt.user, tt.resource, tt.action))
		})
	}
}

func TestRequirePermissionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	admin := &models.User{ID: "user_1", Roles: []string{"admin"}}
	customer := &models.User{ID: "user_2", Roles: []string{"customer"}}

	r := gin.New()
	r.PUT("/allowed", setIdentity(admin), middleware.RequirePermission("orders", "write"), okHandler)
	r.PUT("/denied", setIdentity(customer), middleware.RequirePermission("orders", "write"), okHandler)
	r.PUT("/anonymous", middleware.RequirePermission("orders", "write"), okHandler)

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPut, "/allowed", "").Code)

	w := doRequest(r, http.MethodPut, "/denied", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "write:orders")

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodPut, "/anonymous", "").Code)
}
