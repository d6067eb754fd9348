package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	MenuItemID          string `json:"menuItemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

type Order struct {
	ID            string      `json:"id"`
	RoomID        string      `json:"roomId,omitempty"`
	TableNumber   string      `json:"tableNumber,omitempty"`
	Items         []OrderItem `json:"items"`
	Status        OrderStatus `json:"status"`
	TotalAmount   float64     `json:"totalAmount"`
	OrderTime     time.Time   `json:"orderTime"`
	EstimatedTime *time.Time  `json:"estimatedTime,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderCancelled:
		return true
	}
	return false
}

// NextOrderStatus returns the next step in the kitchen chain
// pending -> preparing -> ready -> served. Served and cancelled orders have
// no next step.
func NextOrderStatus(s OrderStatus) (OrderStatus, bool) {
	switch s {
	case OrderPending:
		return OrderPreparing, true
	case OrderPreparing:
		return OrderReady, true
	case OrderReady:
		return OrderServed, true
	}
	return "", false
}

// Cancellable reports whether an order may still be cancelled, which is any
// state short of served.
func (o Order) Cancellable() bool {
	return o.Status == OrderPending || o.Status == OrderPreparing || o.Status == OrderReady
}
