package models

import "github.com/google/uuid"

// OrderStatus is the fixed set of order states. Transitions are not
// constrained: PATCH may set any enumerated status from any other.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the enumerated statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one line of an order. Price is a snapshot of the product
// price at order-creation time, decoupled from later price changes.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// Order represents a placed order. TotalAmount is derived from the line
// items once, at creation; later updates take it from the caller.
type Order struct {
	Meta
	UserID      uuid.UUID   `json:"userId"`
	Products    []OrderItem `json:"products"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
}

// CreateOrderItem is one requested line in POST /orders. The price is not
// accepted from the caller; it is snapshotted from the product.
type CreateOrderItem struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gte=1"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	UserID   uuid.UUID         `json:"userId" binding:"required"`
	Products []CreateOrderItem `json:"products" binding:"required,min=1,dive"`
}

// ReplaceOrderItem is one line in PUT /orders/:id, price included: full
// replacement takes line prices as supplied.
type ReplaceOrderItem struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gte=1"`
	Price     float64   `json:"price" binding:"gte=0"`
}

// ReplaceOrderRequest is the payload for PUT /orders/:id. User and product
// ids are revalidated against their stores; stock is not re-checked and
// TotalAmount is not recomputed.
type ReplaceOrderRequest struct {
	UserID      uuid.UUID          `json:"userId" binding:"required"`
	Products    []ReplaceOrderItem `json:"products" binding:"required,min=1,dive"`
	TotalAmount *float64           `json:"totalAmount" binding:"required,gte=0"`
	Status      OrderStatus        `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// PatchOrderRequest is the payload for PATCH /orders/:id. Only non-nil
// fields are applied; TotalAmount is never re-derived.
type PatchOrderRequest struct {
	UserID      *uuid.UUID   `json:"userId"`
	Products    *[]OrderItem `json:"products" binding:"omitempty,min=1,dive"`
	TotalAmount *float64     `json:"totalAmount" binding:"omitempty,gte=0"`
	Status      *OrderStatus `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
}

// OrderFilters holds the list query filters for orders. Amount bounds are
// inclusive and apply to TotalAmount.
type OrderFilters struct {
	UserID    *uuid.UUID
	Status    string
	MinAmount *float64
	MaxAmount *float64
}
