package services

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/models"
)

// Namespaced claim keys set by the identity provider.
const (
	claimBrand          = "https://aura-commerce.com/brand"
	claimRoles          = "https://aura-commerce.com/roles"
	claimOrganizationID = "https://aura-commerce.com/organization_id"
	claimIsPremium      = "https://aura-commerce.com/is_premium"
)

// TokenService decodes bearer credentials into request identities. The
// identity provider is an external collaborator: this service only verifies
// and maps the claims bundle it issued.
type TokenService interface {
	DecodeIdentity(tokenString string) (*models.User, *apperrors.Error)
}

type tokenServiceImpl struct {
	secret []byte
	logger *zap.Logger
}

// NewTokenService creates a TokenService verifying HMAC-signed credentials
// with the given secret.
func NewTokenService(secret string, logger *zap.Logger) TokenService {
	return &tokenServiceImpl{secret: []byte(secret), logger: logger}
}

// DecodeIdentity parses and verifies a bearer credential and maps its claims
// to a User. Pure mapping; no side effects beyond diagnostic logging.
func (s *tokenServiceImpl) DecodeIdentity(tokenString string) (*models.User, *apperrors.Error) {
	if tokenString == "" {
		return nil, apperrors.ErrMissingToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrExpiredToken.Wrap(err)
		}
		s.logger.Debug("Token parse failed", zap.Error(err))
		return nil, apperrors.ErrInvalidToken.Wrap(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, apperrors.ErrInvalidToken.WithMessage("Token missing subject")
	}
	email, _ := claims["email"].(string)

	user := &models.User{
		ID:        sub,
		Email:     email,
		FirstName: localPart(email),
		LastName:  "User",
		Brand:     models.BrandLuxeLoom,
		Roles:     []string{"customer"},
	}

	if brand, ok := claims[claimBrand].(string); ok && models.Brand(brand).IsValid() {
		user.Brand = models.Brand(brand)
	}
	if roles := stringSlice(claims[claimRoles]); len(roles) > 0 {
		user.Roles = roles
	}
	if orgID, ok := claims[claimOrganizationID].(string); ok {
		user.OrganizationID = orgID
	}
	if premium, ok := claims[claimIsPremium].(bool); ok {
		user.IsPremium = premium
	}

	return user, nil
}

// localPart extracts the part of an email address before the '@'. The
// provider does not supply a display name, so this stands in for one.
func localPart(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}

// stringSlice converts a decoded JSON claim value to []string.
func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
