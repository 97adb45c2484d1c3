package models

import "github.com/shopspring/decimal"

// OrderStatus is the lifecycle state of an order. Transitions are
// admin-driven and intentionally unconstrained (any status may be set
// to any other).
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusInPreparation  OrderStatus = "IN_PREPARATION"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCanceled       OrderStatus = "CANCELED"
)

// AllOrderStatuses lists every status an admin can set.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInPreparation,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// DisplayName returns the human-readable label for a status.
func (s OrderStatus) DisplayName() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusInPreparation:
		return "In preparation"
	case OrderStatusOutForDelivery:
		return "Out for delivery"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCanceled:
		return "Canceled"
	default:
		return string(s)
	}
}

// Order represents an order header. Lines live in OrderLine and are
// created atomically with the header.
type Order struct {
	ID                int             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            int             `gorm:"not null;index" json:"user_id"`
	PlacedAt          int64           `gorm:"not null" json:"placed_at"` // epoch millis
	PreferredDelivery string          `gorm:"not null" json:"preferred_delivery"`
	Status            OrderStatus     `gorm:"not null;default:'PENDING'" json:"status"`
	Total             decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderLine is a point-in-time snapshot of a purchased product.
// Immutable once the order exists; later product price changes do not
// touch it.
type OrderLine struct {
	ID           int             `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      int             `gorm:"not null;index" json:"order_id"`
	ProductID    int             `gorm:"not null" json:"product_id"`
	ProductName  string          `gorm:"not null" json:"product_name"`
	ProductPrice decimal.Decimal `gorm:"type:numeric;not null" json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Message      string          `json:"message"`
}

// TableName specifies the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_lines"
}
