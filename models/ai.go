package models

import "time"

// AIMessage is a single assistant exchange returned by the chat endpoint.
type AIMessage struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"` // "user" or "assistant"
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
	Context   *AIChatCtx `json:"context,omitempty"`
}

// AIChatCtx echoes the identity and permission context a reply was built with.
type AIChatCtx struct {
	UserContext    *AIUserContext `json:"userContext,omitempty"`
	MessageContext map[string]any `json:"messageContext,omitempty"`
}

// AIUserContext is the identity slice exposed to the assistant.
type AIUserContext struct {
	UserID         string   `json:"userId"`
	Brand          Brand    `json:"brand"`
	Roles          []string `json:"roles"`
	OrganizationID string   `json:"organizationId,omitempty"`
	IsPremium      bool     `json:"isPremium"`
	Permissions    []string `json:"permissions"`
}

// AIContext is the derived context returned by GET /api/ai/context.
type AIContext struct {
	User           string           `json:"user"`
	Brand          Brand            `json:"brand"`
	Roles          []string         `json:"roles"`
	OrganizationID string           `json:"organizationId,omitempty"`
	IsPremium      bool             `json:"isPremium"`
	Preferences    AIPreferences    `json:"preferences"`
	RecentActivity AIRecentActivity `json:"recentActivity"`
	Permissions    []string         `json:"permissions"`
}

// AIPreferences is mock preference data.
type AIPreferences struct {
	Categories []string `json:"categories"`
	PriceRange string   `json:"priceRange"`
	Style      string   `json:"style"`
}

// AIRecentActivity is mock activity data.
type AIRecentActivity struct {
	LastOrder     string `json:"lastOrder"`
	WishlistItems int    `json:"wishlistItems"`
	TotalOrders   int    `json:"totalOrders"`
}

// AIRecommendation is a mock product recommendation.
type AIRecommendation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Reason      string  `json:"reason"`
}

// AIAgent is a fabricated agent credential for AI workflows. Tokens are mock
// values with a fixed expiry offset; nothing is stored.
type AIAgent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // chatbot, background-worker, recommendation-engine
	UserID      string    `json:"userId"`
	Action      string    `json:"action"`
	Permissions []string  `json:"permissions"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Token       string    `json:"token"`
}

// StoredToken is a fabricated third-party token entry.
type StoredToken struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	TokenType  string    `json:"tokenType"` // google, github, openai, stripe
	TokenValue string    `json:"tokenValue"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// AsyncAuthorization is a fabricated grant for a background task.
type AsyncAuthorization struct {
	AgentID            string          `json:"agentId"`
	TaskType           string          `json:"taskType"` // order_processing, inventory_update, recommendation_generation
	Resources          []string        `json:"resources"`
	Permissions        []string        `json:"permissions"`
	ExpiresAt          time.Time       `json:"expiresAt"`
	AuthorizationToken string          `json:"authorizationToken"`
	Constraints        TaskConstraints `json:"constraints"`
}

// TaskConstraints bounds what an authorized background task may do.
type TaskConstraints struct {
	MaxOrdersPerMinute  int      `json:"maxOrdersPerMinute"`
	MaxInventoryUpdates int      `json:"maxInventoryUpdates"`
	AllowedBrands       []string `json:"allowedBrands"`
}

// DocumentAccessLevel gates who may retrieve a document.
type DocumentAccessLevel string

const (
	DocAccessBasic   DocumentAccessLevel = "basic"   // everyone
	DocAccessUser    DocumentAccessLevel = "user"    // owning user only
	DocAccessB2B     DocumentAccessLevel = "b2b"     // same organization only
	DocAccessPremium DocumentAccessLevel = "premium" // requires read:vip_content
)

// AuthorizedDocument is a mock knowledge-base document subject to
// permission-aware retrieval.
type AuthorizedDocument struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Content        string              `json:"content"`
	AccessLevel    DocumentAccessLevel `json:"accessLevel"`
	Brand          Brand               `json:"brand,omitempty"`
	UserID         string              `json:"userId,omitempty"`
	OrganizationID string              `json:"organizationId,omitempty"`
}

// FGAContext echoes the identity a document query was evaluated against.
type FGAContext struct {
	UserID         string   `json:"userId"`
	Roles          []string `json:"roles"`
	OrganizationID string   `json:"organizationId,omitempty"`
	Brand          Brand    `json:"brand"`
	Permissions    []string `json:"permissions"`
}

// FGAResponse is the result of a permission-filtered document query.
type FGAResponse struct {
	Query      string               `json:"query"`
	Documents  []AuthorizedDocument `json:"documents"`
	TotalFound int                  `json:"totalFound"`
	FGAContext FGAContext           `json:"fgaContext"`
}

// ChatRequest is the payload for POST /api/ai/chat.
type ChatRequest struct {
	Message string         `json:"message" binding:"required"`
	Context map[string]any `json:"context"`
	AgentID string         `json:"agentId"`
}

// AuthenticateAgentRequest is the payload for POST /api/ai/authenticate-agent.
type AuthenticateAgentRequest struct {
	AgentType string `json:"agentType" binding:"required,oneof=chatbot background-worker recommendation-engine"`
	Action    string `json:"action" binding:"required"`
}

// TokenRequest is the payload for POST /api/ai/tokens.
type TokenRequest struct {
	TokenType string `json:"tokenType" binding:"required,oneof=google github openai stripe"`
}

// AsyncAuthorizationRequest is the payload for POST /api/ai/async-authorization.
type AsyncAuthorizationRequest struct {
	TaskType  string   `json:"taskType" binding:"required,oneof=order_processing inventory_update recommendation_generation"`
	Resources []string `json:"resources"`
}

// DocumentQueryRequest is the payload for POST /api/ai/documents.
type DocumentQueryRequest struct {
	Query string `json:"query" binding:"required"`
}
