package models

import "github.com/shopspring/decimal"

// CartItem represents one line in a user's cart. Product name, price and
// image are denormalized snapshots taken when the item was added.
// Two lines may share a product id as long as their personalization
// messages differ; identical (product, message) pairs merge by quantity.
type CartItem struct {
	ID           int             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int             `gorm:"not null;index" json:"user_id"`
	ProductID    int             `gorm:"not null;index" json:"product_id"`
	ProductName  string          `gorm:"not null" json:"product_name"`
	ProductPrice decimal.Decimal `gorm:"type:numeric;not null" json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `gorm:"not null" json:"quantity"` // always > 0 while the row exists
	Message      string          `json:"message"`                  // trimmed; "" is the canonical no-message value
}

// TableName specifies the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}
