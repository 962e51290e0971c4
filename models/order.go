package models

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRejected  OrderStatus = "rejected"
)

// Order is a demo order. Orders are fabricated per request and never stored.
type Order struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	OrganizationID string      `json:"organizationId,omitempty"` // B2B orders
	Items          []OrderItem `json:"items"`
	Status         OrderStatus `json:"status"`
	Total          float64     `json:"total"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt,omitempty"`
}

// OrderItem is a single line in an order.
type OrderItem struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// Address is a shipping or billing address.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
}

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	Items           []OrderItem `json:"items" binding:"required,min=1,dive"`
	ShippingAddress Address     `json:"shippingAddress" binding:"required"`
	BillingAddress  *Address    `json:"billingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
}

// UpdateOrderRequest is the payload for PUT /api/orders/:id.
type UpdateOrderRequest struct {
	Status *OrderStatus `json:"status"`
	Items  []OrderItem  `json:"items"`
}

// RejectOrderRequest is the payload for POST /api/orders/b2b/:id/reject.
type RejectOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}
