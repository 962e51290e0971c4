package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/models"
)

// Fixed expiry offsets for fabricated credentials.
const (
	agentTokenTTL  = 15 * time.Minute
	storedTokenTTL = time.Hour
	asyncAuthTTL   = 30 * time.Minute
)

// AIService is the mock shopping assistant. Replies are canned strings
// chosen by keyword rules; agent credentials and tokens are fabricated with
// fixed expiry offsets and never stored.
type AIService interface {
	Chat(user *models.User, req *models.ChatRequest) (*models.AIMessage, *apperrors.Error)
	Context(user *models.User) (*models.AIContext, *apperrors.Error)
	Recommendations(user *models.User, category string, limit int) ([]models.AIRecommendation, *apperrors.Error)
	AuthenticateAgent(user *models.User, req *models.AuthenticateAgentRequest) (*models.AIAgent, *apperrors.Error)
	IssueToken(user *models.User, tokenType string) (*models.StoredToken, *apperrors.Error)
	AuthorizeAsyncTask(user *models.User, req *models.AsyncAuthorizationRequest) (*models.AsyncAuthorization, *apperrors.Error)
	QueryDocuments(user *models.User, query string) (*models.FGAResponse, *apperrors.Error)
}

type aiServiceImpl struct {
	permissions PermissionService
	logger      *zap.Logger
}

// NewAIService creates an AIService deriving permissions through perms.
func NewAIService(permissions PermissionService, logger *zap.Logger) AIService {
	return &aiServiceImpl{permissions: permissions, logger: logger}
}

// Chat picks the reply from a fixed rule list evaluated in priority order;
// only the first matching rule fires.
func (s *aiServiceImpl) Chat(user *models.User, req *models.ChatRequest) (*models.AIMessage, *apperrors.Error) {
	perms := s.permissions.Derive(user)

	s.logger.Info("AI chat request",
		zap.String("user_id", user.ID),
		zap.String("brand", string(user.Brand)),
		zap.Strings("roles", user.Roles),
	)

	reply := s.cannedReply(user, req.Message)

	msg := &models.AIMessage{
		ID:        fmt.Sprintf("ai_%d", time.Now().UnixMilli()),
		Role:      "assistant",
		Content:   reply,
		Timestamp: time.Now().UTC(),
		Context: &models.AIChatCtx{
			UserContext: &models.AIUserContext{
				UserID:         user.ID,
				Brand:          user.Brand,
				Roles:          user.Roles,
				OrganizationID: user.OrganizationID,
				IsPremium:      user.IsPremium,
				Permissions:    perms,
			},
			MessageContext: req.Context,
		},
	}
	return msg, nil
}

func (s *aiServiceImpl) cannedReply(user *models.User, message string) string {
	m := strings.ToLower(message)

	switch {
	case strings.Contains(m, "order"):
		return "I can help you track your orders. Please provide your order number or I can show you recent orders."
	case strings.Contains(m, "discount") || strings.Contains(m, "sale"):
		if user.Brand.IsB2B() {
			return "As a B2B customer, you have access to our corporate discount program. I can help you find the best pricing for bulk orders."
		}
		return "I can help you find current sales and discounts. Would you like me to show you our latest offers?"
	case strings.Contains(m, "premium") || strings.Contains(m, "vip"):
		if user.Brand == models.BrandLuxeLoom && user.IsPremium {
			return "Welcome to the VIP Lounge! You have exclusive access to early product releases and special events."
		}
		return "I can help you learn about our premium membership benefits. Would you like to know more?"
	case strings.Contains(m, "document") || strings.Contains(m, "catalog"):
		return "I can look that up in our product documents and catalogs. What would you like me to find?"
	default:
		return "Thank you for your message! I'm here to help you with your shopping needs."
	}
}

// Context returns the derived assistant context for the user, with mock
// preference and activity data.
func (s *aiServiceImpl) Context(user *models.User) (*models.AIContext, *apperrors.Error) {
	return &models.AIContext{
		User:           user.ID,
		Brand:          user.Brand,
		Roles:          user.Roles,
		OrganizationID: user.OrganizationID,
		IsPremium:      user.IsPremium,
		Preferences: models.AIPreferences{
			Categories: []string{"clothing", "accessories"},
			PriceRange: "medium",
			Style:      "casual",
		},
		RecentActivity: models.AIRecentActivity{
			LastOrder:     "2024-01-15T10:00:00Z",
			WishlistItems: 5,
			TotalOrders:   12,
		},
		Permissions: s.permissions.Derive(user),
	}, nil
}

// Recommendations returns mock recommendations; limit bounds the result.
func (s *aiServiceImpl) Recommendations(user *models.User, category string, limit int) ([]models.AIRecommendation, *apperrors.Error) {
	if limit <= 0 {
		limit = 5
	}

	recs := []models.AIRecommendation{
		{
			ID:          "product_123",
			Name:        "Recommended Product",
			Description: "Based on your preferences",
			Price:       99.99,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			Reason:      "Similar to items you've viewed",
		},
	}
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// AuthenticateAgent fabricates an agent credential scoped to the caller's
// derived permissions.
func (s *aiServiceImpl) AuthenticateAgent(user *models.User, req *models.AuthenticateAgentRequest) (*models.AIAgent, *apperrors.Error) {
	now := time.Now().UTC()
	agent := &models.AIAgent{
		ID:          uuid.NewString(),
		Type:        req.AgentType,
		UserID:      user.ID,
		Action:      req.Action,
		Permissions: s.permissions.Derive(user),
		ExpiresAt:   now.Add(agentTokenTTL),
		Token:       fmt.Sprintf("agent_token_%s", uuid.NewString()),
	}

	s.logger.Info("Agent authenticated",
		zap.String("agent_id", agent.ID),
		zap.String("agent_type", agent.Type),
		zap.String("user_id", user.ID),
	)
	return agent, nil
}

// IssueToken fabricates a third-party token entry of the given type.
func (s *aiServiceImpl) IssueToken(user *models.User, tokenType string) (*models.StoredToken, *apperrors.Error) {
	switch tokenType {
	case "google", "github", "openai", "stripe":
	default:
		return nil, apperrors.NewValidation(fmt.Sprintf("Unknown token type '%s'", tokenType))
	}

	now := time.Now().UTC()
	return &models.StoredToken{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		TokenType:  tokenType,
		TokenValue: fmt.Sprintf("mock_%s_token_%s", tokenType, uuid.NewString()),
		CreatedAt:  now,
		ExpiresAt:  now.Add(storedTokenTTL),
	}, nil
}

// AuthorizeAsyncTask fabricates a grant for a background task with a fixed
// constraint block.
func (s *aiServiceImpl) AuthorizeAsyncTask(user *models.User, req *models.AsyncAuthorizationRequest) (*models.AsyncAuthorization, *apperrors.Error) {
	now := time.Now().UTC()
	return &models.AsyncAuthorization{
		AgentID:            uuid.NewString(),
		TaskType:           req.TaskType,
		Resources:          req.Resources,
		Permissions:        s.permissions.Derive(user),
		ExpiresAt:          now.Add(asyncAuthTTL),
		AuthorizationToken: fmt.Sprintf("async_auth_%s", uuid.NewString()),
		Constraints: models.TaskConstraints{
			MaxOrdersPerMinute:  10,
			MaxInventoryUpdates: 100,
			AllowedBrands:       []string{string(user.Brand)},
		},
	}, nil
}

// QueryDocuments filters the mock document set by the caller's access level
// and echoes the evaluation context.
func (s *aiServiceImpl) QueryDocuments(user *models.User, query string) (*models.FGAResponse, *apperrors.Error) {
	perms := s.permissions.Derive(user)
	docs := s.permissions.FilterDocuments(user, perms, mockDocuments(user))

	return &models.FGAResponse{
		Query:      query,
		Documents:  docs,
		TotalFound: len(docs),
		FGAContext: models.FGAContext{
			UserID:         user.ID,
			Roles:          user.Roles,
			OrganizationID: user.OrganizationID,
			Brand:          user.Brand,
			Permissions:    perms,
		},
	}, nil
}

// mockDocuments is the fixed knowledge-base sample subject to access-level
// filtering. The user and b2b entries are keyed to the caller so the demo
// shows owned documents passing the filter.
func mockDocuments(user *models.User) []models.AuthorizedDocument {
	return []models.AuthorizedDocument{
		{
			ID:          "doc-basic-001",
			Title:       "Shipping & Returns Policy",
			Content:     "Standard shipping takes 3-5 business days. Returns accepted within 30 days.",
			AccessLevel: models.DocAccessBasic,
		},
		{
			ID:          "doc-basic-002",
			Title:       "Size Guide",
			Content:     "Our size guide covers all brands. Measure twice, order once.",
			AccessLevel: models.DocAccessBasic,
		},
		{
			ID:          "doc-user-001",
			Title:       "Your Order History Summary",
			Content:     "A personalized summary of your recent orders and preferences.",
			AccessLevel: models.DocAccessUser,
			UserID:      user.ID,
		},
		{
			ID:             "doc-b2b-001",
			Title:          "Corporate Pricing Sheet",
			Content:        "Negotiated bulk pricing tiers for your organization.",
			AccessLevel:    models.DocAccessB2B,
			Brand:          models.BrandAuraWholesale,
			OrganizationID: user.OrganizationID,
		},
		{
			ID:          "doc-premium-001",
			Title:       "VIP Early Access Catalog",
			Content:     "Preview of next season's collection, exclusive to premium members.",
			AccessLevel: models.DocAccessPremium,
			Brand:       models.BrandLuxeLoom,
		},
	}
}
