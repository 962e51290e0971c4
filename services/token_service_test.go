package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/kartikmaddali/aura-commerce-demo/models"
	"github.com/kartikmaddali/aura-commerce-demo/services"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestDecodeIdentityMissingToken(t *testing.T) {
	svc := services.NewTokenService(testSecret, zap.NewNop())

	_, err := svc.DecodeIdentity("")
	assert.NotNil(t, err)
	assert.Equal(t, 401, err.Status)
	assert.Equal(t, "missing_token", err.Code)
}

func TestDecodeIdentityMalformedToken(t *testing.T) {
	svc := services.NewTokenService(testSecret, zap.NewNop())

	_, err := svc.DecodeIdentity("not.a.jwt")
	assert.NotNil(t, err)
	assert.Equal(t, "invalid_token", err.Code)
}

func TestDecodeIdentityWrongSecret(t *testing.T) {
	svc := services.NewTokenService(testSecret, zap.NewNop())

	token := signToken(t, jwt.MapClaims{
		"sub": "user_123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "a-different-secret")

	_, err := svc.DecodeIdentity(token)
	assert.NotNil(t, err)
	assert.Equal(t, "invalid_token", err.Code)
}

func TestDecodeIdentityExpiredToken(t *testing.T) {
	svc := services.NewTokenService(testSecret, zap.NewNop())

	token := signToken(t, jwt.MapClaims{
		"sub": "user_123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	_, err := svc.DecodeIdentity(token)
	assert.NotNil(t, err)
	assert.Equal(t, "expired_token", err.Code)
}

func TestDecodeIdentityMissingSubject(t *testing.T) {
	svc := services.NewTokenService(testSecret, zap.NewNop())

	token := signToken(t, jwt.MapClaims{
		"email": "someone@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	_, err := svc.DecodeIdentity(token)
	assert.NotNil(t, err)
	assert.Equal(t, "invalid_token", err.Code)
}

func TestDecodeIdentityAppliesDefaults(t *testing.T) {
	svc := services.NewTokenService(testSecret, zap.NewNop())

	token := signToken(t, jwt.MapClaims{
		"sub":   "user_123",
		"email": "jane.doe@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	user, err := svc.DecodeIdentity(token)
	assert.Nil(t, err)
	assert.Equal(t, "user_123", user.ID)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "jane.doe", user.FirstName)
	assert.Equal(t, "User", user.LastName)
	assert.Equal(t, models.BrandLuxeLoom, user.Brand)
	assert.Equal(t, []string{"customer"}, user.Roles)
	assert.False(t, user.IsPremium)
	assert.Empty(t, user.OrganizationID)
}

func TestDecodeIdentityMapsNamespacedClaims(t *testing.T) {
	svc := services.NewTokenService(testSecret, zap.NewNop())

	token := signToken(t, jwt.MapClaims{
		"sub":   "user_456",
		"email": "buyer@acme.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"https://aura-commerce.com/brand":           "aura-wholesale",
		"https://aura-commerce.com/roles":           []string{"buyer", "admin"},
		"https://aura-commerce.com/organization_id": "org_acme",
		"https://aura-commerce.com/is_premium":      true,
	}, testSecret)

	user, err := svc.DecodeIdentity(token)
	assert.Nil(t, err)
	assert.Equal(t, models.BrandAuraWholesale, user.Brand)
	assert.Equal(t, []string{"buyer", "admin"}, user.Roles)
	assert.Equal(t, "org_acme", user.OrganizationID)
	assert.True(t, user.IsPremium)
}

func TestDecodeIdentityIgnoresUnknownBrand(t *testing.T) {
	svc := services.NewTokenService(testSecret, zap.NewNop())

	token := signToken(t, jwt.MapClaims{
		"sub": "user_789",
		"exp": time.Now().Add(time.Hour).Unix(),
		"https://aura-commerce.com/brand": "not-a-brand",
	}, testSecret)

	user, err := svc.DecodeIdentity(token)
	assert.Nil(t, err)
	assert.Equal(t, models.BrandLuxeLoom, user.Brand)
}
