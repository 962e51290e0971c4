package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/kartikmaddali/aura-commerce-demo/models"
	"github.com/kartikmaddali/aura-commerce-demo/services"
)

func newAssistant() services.AIService {
	return services.NewAIService(services.NewPermissionService(), zap.NewNop())
}

func chat(t *testing.T, svc services.AIService, user *models.User, message string) string {
	t.Helper()
	msg, err := svc.Chat(user, &models.ChatRequest{Message: message})
	assert.Nil(t, err)
	assert.Equal(t, "assistant", msg.Role)
	return msg.Content
}

func TestChatOrderRuleWinsOverDiscount(t *testing.T) {
	svc := newAssistant()
	user := &models.User{ID: "user_1", Brand: models.BrandUrbanMarket, Roles: []string{"customer"}}

	reply := chat(t, svc, user, "Is there a discount on my order?")
	assert.Contains(t, reply, "track your orders")
	assert.NotContains(t, reply, "discount")
}

func TestChatDiscountWordingPerBrand(t *testing.T) {
	svc := newAssistant()

	b2b := &models.User{ID: "user_1", Brand: models.BrandAuraWholesale, Roles: []string{"buyer"}}
	assert.Contains(t, chat(t, svc, b2b, "any discount today?"), "corporate discount program")

	retail := &models.User{ID: "user_2", Brand: models.BrandUrbanMarket, Roles: []string{"customer"}}
	assert.Contains(t, chat(t, svc, retail, "any SALE right now?"), "sales and discounts")
}

func TestChatVIPWordingRequiresPremiumLuxeLoom(t *testing.T) {
	svc := newAssistant()

	vip := &models.User{ID: "user_1", Brand: models.BrandLuxeLoom, Roles: []string{"premium-member"}, IsPremium: true}
	assert.Contains(t, chat(t, svc, vip, "tell me about VIP access"), "VIP Lounge")

	nonPremium := &models.User{ID: "user_2", Brand: models.BrandLuxeLoom, Roles: []string{"customer"}}
	assert.Contains(t, chat(t, svc, nonPremium, "tell me about VIP access"), "membership benefits")

	premiumWrongBrand := &models.User{ID: "user_3", Brand: models.BrandUrbanMarket, Roles: []string{"customer"}, IsPremium: true}
	assert.Contains(t, chat(t, svc, premiumWrongBrand, "premium please"), "membership benefits")
}

func TestChatDocumentAndFallbackRules(t *testing.T) {
	svc := newAssistant()
	user := &models.User{ID: "user_1", Brand: models.BrandLuxeLoom, Roles: []string{"customer"}}

	assert.Contains(t, chat(t, svc, user, "search the catalog for scarves"), "documents and catalogs")
	assert.Contains(t, chat(t, svc, user, "hello there"), "shopping needs")
}

func TestChatEchoesUserContext(t *testing.T) {
	svc := newAssistant()
	user := &models.User{
		ID:             "user_1",
		Brand:          models.BrandAuraWholesale,
		Roles:          []string{"buyer"},
		OrganizationID: "org_1",
	}

	msg, err := svc.Chat(user, &models.ChatRequest{Message: "hi"})
	assert.Nil(t, err)
	assert.NotNil(t, msg.Context)
	assert.NotNil(t, msg.Context.UserContext)
	assert.Equal(t, "user_1", msg.Context.UserContext.UserID)
	assert.Equal(t, "org_1", msg.Context.UserContext.OrganizationID)
	assert.Contains(t, msg.Context.UserContext.Permissions, services.PermReadCorporatePricing)
}

func TestContextIncludesDerivedPermissions(t *testing.T) {
	svc := newAssistant()
	user := &models.User{ID: "user_1", Brand: models.BrandLuxeLoom, Roles: []string{"admin"}}

	ctx, err := svc.Context(user)
	assert.Nil(t, err)
	assert.Equal(t, "user_1", ctx.User)
	assert.Contains(t, ctx.Permissions, services.PermWriteOrders)
	assert.NotEmpty(t, ctx.Preferences.Categories)
}

func TestRecommendationsHonorLimit(t *testing.T) {
	svc := newAssistant()
	user := &models.User{ID: "user_1", Brand: models.BrandUrbanMarket, Roles: []string{"customer"}}

	recs, err := svc.Recommendations(user, "clothing", 1)
	assert.Nil(t, err)
	assert.Len(t, recs, 1)

	recs, err = svc.Recommendations(user, "clothing", 0)
	assert.Nil(t, err)
	assert.NotEmpty(t, recs)
}

func TestAuthenticateAgentScopesPermissions(t *testing.T) {
	svc := newAssistant()
	user := &models.User{ID: "user_1", Brand: models.BrandLuxeLoom, Roles: []string{"customer"}}

	agent, err := svc.AuthenticateAgent(user, &models.AuthenticateAgentRequest{
		AgentType: "chatbot",
		Action:    "product_search",
	})
	assert.Nil(t, err)
	assert.Equal(t, "chatbot", agent.Type)
	assert.Equal(t, "user_1", agent.UserID)
	assert.Equal(t, []string{services.PermReadProducts, services.PermReadOrders}, agent.Permissions)
	assert.True(t, strings.HasPrefix(agent.Token, "agent_token_"))
}

func TestIssueTokenValidatesType(t *testing.T) {
	svc := newAssistant()
	user := &models.User{ID: "user_1", Brand: models.BrandLuxeLoom, Roles: []string{"customer"}}

	token, err := svc.IssueToken(user, "github")
	assert.Nil(t, err)
	assert.Equal(t, "github", token.TokenType)
	assert.True(t, token.ExpiresAt.After(token.CreatedAt))

	_, err = svc.IssueToken(user, "gitlab")
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Status)
	assert.Equal(t, "validation_error", err.Code)
}

func TestAuthorizeAsyncTaskConstrainsToCallerBrand(t *testing.T) {
	svc := newAssistant()
	user := &models.User{ID: "user_1", Brand: models.BrandAuraWholesale, Roles: []string{"admin"}}

	auth, err := svc.AuthorizeAsyncTask(user, &models.AsyncAuthorizationRequest{
		TaskType:  "order_processing",
		Resources: []string{"orders"},
	})
	assert.Nil(t, err)
	assert.Equal(t, "order_processing", auth.TaskType)
	assert.Equal(t, []string{"aura-wholesale"}, auth.Constraints.AllowedBrands)
	assert.True(t, strings.HasPrefix(auth.AuthorizationToken, "async_auth_"))
}

func TestQueryDocumentsFiltersByIdentity(t *testing.T) {
	svc := newAssistant()

	t.Run("plain customer", func(t *testing.T) {
		user := &models.User{ID: "user_1", Brand: models.BrandUrbanMarket, Roles: []string{"customer"}}
		resp, err := svc.QueryDocuments(user, "shipping")
		assert.Nil(t, err)
		assert.Equal(t, resp.TotalFound, len(resp.Documents))
		assert.Equal(t, []string{"doc-basic-001", "doc-basic-002", "doc-user-001"}, docIDs(resp.Documents))
	})

	t.Run("premium member also sees the vip catalog", func(t *testing.T) {
		user := &models.User{ID: "user_2", Brand: models.BrandLuxeLoom, Roles: []string{"premium-member"}, IsPremium: true}
		resp, err := svc.QueryDocuments(user, "catalog")
		assert.Nil(t, err)
		assert.Contains(t, docIDs(resp.Documents), "doc-premium-001")
	})

	t.Run("organization buyer sees the pricing sheet", func(t *testing.T) {
		user := &models.User{ID: "user_3", Brand: models.BrandAuraWholesale, Roles: []string{"buyer"}, OrganizationID: "org_1"}
		resp, err := svc.QueryDocuments(user, "pricing")
		assert.Nil(t, err)
		assert.Contains(t, docIDs(resp.Documents), "doc-b2b-001")
		assert.Equal(t, "org_1", resp.FGAContext.OrganizationID)
	})
}
