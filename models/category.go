package models

// Category represents a catalog category
type Category struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Image   string `json:"image"`
	Blocked bool   `gorm:"not null;default:false" json:"blocked"` // hidden from the public catalog, still visible to admins
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
