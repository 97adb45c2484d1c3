package models

import "github.com/shopspring/decimal"

// Product represents a catalog product
type Product struct {
	ID            int             `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID    int             `gorm:"not null;index" json:"category_id"` // not enforced referentially; orphans are tolerated
	Code          string          `gorm:"not null" json:"code"`
	Name          string          `gorm:"not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	Stock         int             `gorm:"not null" json:"stock"`
	CriticalStock int             `gorm:"not null" json:"critical_stock"`
	Blocked       bool            `gorm:"not null;default:false" json:"blocked"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
