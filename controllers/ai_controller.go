package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/middleware"
	"github.com/kartikmaddali/aura-commerce-demo/models"
	"github.com/kartikmaddali/aura-commerce-demo/services"
)

// AIController exposes the mock assistant and AI platform endpoints.
type AIController struct {
	ai     services.AIService
	logger *zap.Logger
}

// NewAIController creates an AIController.
func NewAIController(ai services.AIService, logger *zap.Logger) *AIController {
	return &AIController{ai: ai, logger: logger}
}

// Chat handles POST /api/ai/chat.
func (ac *AIController) Chat(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	message, svcErr := ac.ai.Chat(user, &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Context handles GET /api/ai/context.
func (ac *AIController) Context(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	ctx, svcErr := ac.ai.Context(user)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"context": ctx})
}

// Recommendations handles GET /api/ai/recommendations?category=&limit=.
func (ac *AIController) Recommendations(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	category := c.Query("category")
	limit := queryInt(c, "limit", 5)

	recs, svcErr := ac.ai.Recommendations(user, category, limit)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recs,
		"total":           len(recs),
	})
}

// AuthenticateAgent handles POST /api/ai/authenticate-agent.
func (ac *AIController) AuthenticateAgent(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req models.AuthenticateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	agent, svcErr := ac.ai.AuthenticateAgent(user, &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	ac.logger.Info("agent authenticated",
		zap.String("agent_id", agent.ID),
		zap.String("agent_type", agent.Type),
		zap.String("user_id", user.ID),
	)
	c.JSON(http.StatusOK, gin.H{"agent": agent})
}

// IssueToken handles POST /api/ai/tokens.
func (ac *AIController) IssueToken(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	token, svcErr := ac.ai.IssueToken(user, req.TokenType)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// GetToken handles GET /api/ai/tokens/:type.
func (ac *AIController) GetToken(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	token, svcErr := ac.ai.IssueToken(user, c.Param("type"))
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AuthorizeAsyncTask handles POST /api/ai/async-authorization.
func (ac *AIController) AuthorizeAsyncTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req models.AsyncAuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	auth, svcErr := ac.ai.AuthorizeAsyncTask(user, &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	ac.logger.Info("async task authorized",
		zap.String("task_type", auth.TaskType),
		zap.String("user_id", user.ID),
	)
	c.JSON(http.StatusOK, gin.H{"authorization": auth})
}

// QueryDocuments handles POST /api/ai/documents.
func (ac *AIController) QueryDocuments(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req models.DocumentQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	resp, svcErr := ac.ai.QueryDocuments(user, req.Query)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, resp)
}
