package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kartikmaddali/aura-commerce-demo/models"
)

func postJSON(r *gin.Engine, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatRequiresAuthentication(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/ai/chat", "", `{"message":"hello"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChatValidatesPayload(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/ai/chat", "customer-token", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestChatReturnsAssistantMessage(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/ai/chat", "b2b-token", `{"message":"any discounts?"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message models.AIMessage `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "assistant", body.Message.Role)
	assert.Contains(t, body.Message.Content, "corporate discount program")
}

func TestAuthenticateAgentValidatesAgentType(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/ai/authenticate-agent", "customer-token", `{"agentType":"rogue","action":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/ai/authenticate-agent", "customer-token", `{"agentType":"chatbot","action":"product_search"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "agent_token_")
}

func TestTokenEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/ai/tokens", "customer-token", `{"tokenType":"openai"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "mock_openai_token_")

	w = postJSON(r, "/api/ai/tokens", "customer-token", `{"tokenType":"gitlab"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got := request(r, http.MethodGet, "/api/ai/tokens/stripe", "customer-token")
	assert.Equal(t, http.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), "mock_stripe_token_")

	got = request(r, http.MethodGet, "/api/ai/tokens/unknown", "customer-token")
	assert.Equal(t, http.StatusBadRequest, got.Code)
}

func TestDocumentQueryFiltersForCaller(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/ai/documents", "b2b-token", `{"query":"pricing"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body models.FGAResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pricing", body.Query)
	assert.Equal(t, body.TotalFound, len(body.Documents))

	ids := make([]string, 0, len(body.Documents))
	for _, d := range body.Documents {
		ids = append(ids, d.ID)
	}
	assert.Contains(t, ids, "doc-b2b-001")
	assert.NotContains(t, ids, "doc-premium-001")
}

func TestOrderB2BGuardChain(t *testing.T) {
	r := newTestRouter(t)

	// wholesale buyer reaches the organization listing
	w := request(r, http.MethodGet, "/api/orders/b2b/organization", "b2b-token")
	assert.Equal(t, http.StatusOK, w.Code)

	// retail customer is stopped by the brand guard
	w = request(r, http.MethodGet, "/api/orders/b2b/organization", "customer-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// wholesale buyer without the admin role cannot approve
	w = postJSON(r, "/api/orders/b2b/order_1/approve", "b2b-token", `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthProfileEchoesIdentityAndPermissions(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodGet, "/api/auth/profile", "b2b-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "read:corporate_pricing")

	w = request(r, http.MethodGet, "/api/auth/profile", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
