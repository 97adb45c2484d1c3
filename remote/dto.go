package remote

import "github.com/shopspring/decimal"

// Wire representations of the storefront entities. Server-assigned ids
// are pointers on outbound payloads so a zero id is simply absent.
// The user record never carries a password on the wire; the create and
// update payload takes an optional plaintext one.

// CategoryDTO is the wire form of a catalog category.
type CategoryDTO struct {
	ID      *int   `json:"id,omitempty"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Blocked bool   `json:"blocked"`
}

// ProductDTO is the wire form of a catalog product.
type ProductDTO struct {
	ID            *int            `json:"id,omitempty"`
	CategoryID    int             `json:"category_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	Stock         int             `json:"stock"`
	CriticalStock int             `json:"critical_stock"`
	Blocked       bool            `json:"blocked"`
}

// CartItemDTO is the wire form of a cart line.
type CartItemDTO struct {
	ID           int             `json:"id"`
	UserID       int             `json:"user_id"`
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `json:"quantity"`
	Message      string          `json:"message"`
}

// CartItemPayload adds a product to a cart. Message is nil for the
// canonical "no message".
type CartItemPayload struct {
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `json:"quantity"`
	Message      *string         `json:"message,omitempty"`
}

// UpdateQuantityPayload changes a cart line quantity.
type UpdateQuantityPayload struct {
	Quantity int `json:"quantity"`
}

// UpdateMessagePayload changes a cart line personalization message.
type UpdateMessagePayload struct {
	Message *string `json:"message"`
}

// OrderDTO is the wire form of an order, lines included.
type OrderDTO struct {
	ID                int             `json:"id"`
	UserID            int             `json:"user_id"`
	PlacedAt          int64           `json:"placed_at"`
	PreferredDelivery string          `json:"preferred_delivery"`
	Status            string          `json:"status"`
	Total             decimal.Decimal `json:"total"`
	Lines             []OrderLineDTO  `json:"lines"`
}

// OrderLineDTO is the wire form of an order line.
type OrderLineDTO struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"order_id"`
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `json:"quantity"`
	Message      string          `json:"message"`
}

// CreateOrderPayload asks the backend to create an order from the
// current cart snapshot.
type CreateOrderPayload struct {
	UserID            int                `json:"user_id"`
	PreferredDelivery string             `json:"preferred_delivery"`
	Lines             []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is one requested order line.
type OrderLineRequest struct {
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `json:"quantity"`
	Message      string          `json:"message"`
}

// UpdateOrderStatusPayload changes an order status.
type UpdateOrderStatusPayload struct {
	Status string `json:"status"`
}

// UserDTO is the wire form of a user account. No password field, by
// design.
type UserDTO struct {
	ID          int    `json:"id"`
	NationalID  string `json:"national_id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	BirthDate   string `json:"birth_date"`
	Role        string `json:"role"`
	Region      string `json:"region"`
	Comune      string `json:"comune"`
	Address     string `json:"address"`
	AgeDiscount bool   `json:"age_discount"`
	PromoCode   bool   `json:"promo_code"`
	PartnerInst bool   `json:"partner_inst"`
	PhotoURL    string `json:"photo_url"`
	Blocked     bool   `json:"blocked"`
}

// UserPayload creates or updates a user. Password is only set on
// registration.
type UserPayload struct {
	ID          *int    `json:"id,omitempty"`
	NationalID  string  `json:"national_id"`
	Name        string  `json:"name"`
	Surname     string  `json:"surname"`
	Email       string  `json:"email"`
	BirthDate   string  `json:"birth_date"`
	Role        string  `json:"role"`
	Region      string  `json:"region"`
	Comune      string  `json:"comune"`
	Address     string  `json:"address"`
	Password    *string `json:"password,omitempty"`
	AgeDiscount bool    `json:"age_discount"`
	PromoCode   bool    `json:"promo_code"`
	PartnerInst bool    `json:"partner_inst"`
	PhotoURL    string  `json:"photo_url"`
	Blocked     bool    `json:"blocked"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is a successful login.
type LoginResponse struct {
	User    UserDTO `json:"user"`
	Message string  `json:"message"`
}

// UploadResponse is the durable URL of an uploaded image.
type UploadResponse struct {
	URL string `json:"url"`
}
