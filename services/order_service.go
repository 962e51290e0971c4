package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/models"
)

// OrderService fabricates order data per request. Orders are demo
// placeholders; nothing is persisted.
type OrderService interface {
	List(user *models.User, status string, page, limit int) ([]models.Order, models.Pagination, *apperrors.Error)
	Get(user *models.User, id string) (*models.Order, *apperrors.Error)
	Create(user *models.User, req *models.CreateOrderRequest) (*models.Order, *apperrors.Error)
	Update(user *models.User, id string, req *models.UpdateOrderRequest) (*models.Order, *apperrors.Error)
	ListOrganizationOrders(user *models.User, status string, page, limit int) ([]models.Order, models.Pagination, *apperrors.Error)
	Approve(user *models.User, id string) *apperrors.Error
	Reject(user *models.User, id, reason string) *apperrors.Error
}

type orderServiceImpl struct {
	logger *zap.Logger
}

// NewOrderService creates an OrderService.
func NewOrderService(logger *zap.Logger) OrderService {
	return &orderServiceImpl{logger: logger}
}

// List returns the user's mock order history.
func (s *orderServiceImpl) List(user *models.User, status string, page, limit int) ([]models.Order, models.Pagination, *apperrors.Error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	orders := []models.Order{
		{
			ID:        "order_123",
			UserID:    user.ID,
			Items:     []models.OrderItem{},
			Status:    models.OrderStatusPending,
			Total:     299.99,
			CreatedAt: time.Now().UTC(),
		},
	}

	pagination := models.Pagination{Page: page, Limit: limit, Total: len(orders), TotalPages: 1}
	return orders, pagination, nil
}

// Get returns a single mock order.
func (s *orderServiceImpl) Get(user *models.User, id string) (*models.Order, *apperrors.Error) {
	return &models.Order{
		ID:        id,
		UserID:    user.ID,
		Items:     []models.OrderItem{},
		Status:    models.OrderStatusPending,
		Total:     299.99,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Create fabricates a new pending order from the request.
func (s *orderServiceImpl) Create(user *models.User, req *models.CreateOrderRequest) (*models.Order, *apperrors.Error) {
	now := time.Now().UTC()
	order := &models.Order{
		ID:             fmt.Sprintf("order_%d", now.UnixMilli()),
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		Items:          req.Items,
		Status:         models.OrderStatusPending,
		CreatedAt:      now,
	}

	s.logger.Info("Order created", zap.String("order_id", order.ID), zap.String("user_id", user.ID))
	return order, nil
}

// Update echoes the requested changes on a mock order.
func (s *orderServiceImpl) Update(user *models.User, id string, req *models.UpdateOrderRequest) (*models.Order, *apperrors.Error) {
	order := &models.Order{
		ID:        id,
		UserID:    user.ID,
		Items:     req.Items,
		Status:    models.OrderStatusPending,
		UpdatedAt: time.Now().UTC(),
	}
	if req.Status != nil {
		order.Status = *req.Status
	}

	s.logger.Info("Order updated", zap.String("order_id", id), zap.String("user_id", user.ID))
	return order, nil
}

// ListOrganizationOrders returns the mock order list for the caller's
// organization.
func (s *orderServiceImpl) ListOrganizationOrders(user *models.User, status string, page, limit int) ([]models.Order, models.Pagination, *apperrors.Error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	orders := []models.Order{
		{
			ID:             "order_123",
			UserID:         "user_456",
			OrganizationID: user.OrganizationID,
			Items:          []models.OrderItem{},
			Status:         models.OrderStatusPending,
			Total:          299.99,
			CreatedAt:      time.Now().UTC(),
		},
	}

	pagination := models.Pagination{Page: page, Limit: limit, Total: len(orders), TotalPages: 1}
	return orders, pagination, nil
}

// Approve marks an organization order approved.
func (s *orderServiceImpl) Approve(user *models.User, id string) *apperrors.Error {
	s.logger.Info("Order approved", zap.String("order_id", id), zap.String("admin_id", user.ID))
	return nil
}

// Reject marks an organization order rejected.
func (s *orderServiceImpl) Reject(user *models.User, id, reason string) *apperrors.Error {
	s.logger.Info("Order rejected",
		zap.String("order_id", id),
		zap.String("admin_id", user.ID),
		zap.String("reason", reason),
	)
	return nil
}
