package models

// UserRole identifies what a user is allowed to do in the storefront.
type UserRole string

const (
	RoleSuperAdmin    UserRole = "SUPER_ADMIN"
	RoleAdministrator UserRole = "ADMINISTRATOR"
	RoleSalesperson   UserRole = "SALESPERSON"
	RoleCustomer      UserRole = "CUSTOMER"
)

// User represents a storefront account. PasswordHash is a local-only
// bcrypt hash used for offline login; it is never sent over the wire
// and the remote record never carries it.
type User struct {
	ID           int      `gorm:"primaryKey;autoIncrement" json:"id"`
	NationalID   string   `gorm:"uniqueIndex;not null" json:"national_id"`
	Name         string   `gorm:"not null" json:"name"`
	Surname      string   `gorm:"not null" json:"surname"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	BirthDate    string   `json:"birth_date"`
	Role         UserRole `gorm:"not null;default:'CUSTOMER'" json:"role"`
	Region       string   `json:"region"`
	Comune       string   `json:"comune"`
	Address      string   `json:"address"`
	PasswordHash string   `json:"-"`
	AgeDiscount  bool     `gorm:"not null;default:false" json:"age_discount"`
	PromoCode    bool     `gorm:"not null;default:false" json:"promo_code"`
	PartnerInst  bool     `gorm:"not null;default:false" json:"partner_inst"`
	PhotoURL     string   `json:"photo_url"`
	Blocked      bool     `gorm:"not null;default:false" json:"blocked"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
