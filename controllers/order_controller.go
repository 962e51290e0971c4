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

// OrderController exposes the mock order endpoints.
type OrderController struct {
	orders services.OrderService
	logger *zap.Logger
}

// NewOrderController creates an OrderController.
func NewOrderController(orders services.OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{orders: orders, logger: logger}
}

// List handles GET /api/orders.
func (oc *OrderController) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	orders, pagination, svcErr := oc.orders.List(user, c.Query("status"), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": pagination,
	})
}

// Get handles GET /api/orders/:id.
func (oc *OrderController) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	order, svcErr := oc.orders.Get(user, c.Param("id"))
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Create handles POST /api/orders.
func (oc *OrderController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	order, svcErr := oc.orders.Create(user, &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	oc.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", user.ID),
	)
	c.JSON(http.StatusCreated, order)
}

// Update handles PUT /api/orders/:id.
func (oc *OrderController) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	order, svcErr := oc.orders.Update(user, c.Param("id"), &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrganizationOrders handles GET /api/orders/b2b/organization.
func (oc *OrderController) ListOrganizationOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	orders, pagination, svcErr := oc.orders.ListOrganizationOrders(user, c.Query("status"), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":         orders,
		"organizationId": user.OrganizationID,
		"pagination":     pagination,
	})
}

// Approve handles POST /api/orders/b2b/:id/approve.
func (oc *OrderController) Approve(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	id := c.Param("id")
	if svcErr := oc.orders.Approve(user, id); svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	oc.logger.Info("order approved",
		zap.String("order_id", id),
		zap.String("approved_by", user.ID),
	)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order approved",
		"orderId": id,
	})
}

// Reject handles POST /api/orders/b2b/:id/reject.
func (oc *OrderController) Reject(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	var req models.RejectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	id := c.Param("id")
	if svcErr := oc.orders.Reject(user, id, req.Reason); svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order rejected",
		"orderId": id,
		"reason":  req.Reason,
	})
}
