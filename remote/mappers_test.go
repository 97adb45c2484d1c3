package remote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delsur-bakery/delsur-store/models"
)

func TestUserMappingDropsPasswordHash(t *testing.T) {
	user := models.User{
		ID:           7,
		NationalID:   "12.345.678-9",
		Name:         "Ana",
		Surname:      "Rojas",
		Email:        "ana@delsur.cl",
		Role:         models.RoleCustomer,
		PasswordHash: "$2a$10$something",
		AgeDiscount:  true,
	}

	dto := UserToDTO(user)
	back := UserFromDTO(dto, user.PasswordHash)

	assert.Equal(t, user, back)

	// And without a stored hash the field stays empty.
	assert.Empty(t, UserFromDTO(dto, "").PasswordHash)
}

func TestUserToPayloadOmitsIDWhenZero(t *testing.T) {
	payload := UserToPayload(models.User{Email: "new@delsur.cl"}, nil)
	assert.Nil(t, payload.ID)
	assert.Nil(t, payload.Password)

	pw := "plaintext"
	payload = UserToPayload(models.User{ID: 3, Email: "new@delsur.cl"}, &pw)
	require.NotNil(t, payload.ID)
	assert.Equal(t, 3, *payload.ID)
	require.NotNil(t, payload.Password)
	assert.Equal(t, "plaintext", *payload.Password)
}

func TestCategoryToDTOOmitsZeroID(t *testing.T) {
	dto := CategoryToDTO(models.Category{Name: "Cakes"})
	assert.Nil(t, dto.ID)

	dto = CategoryToDTO(models.Category{ID: 4, Name: "Cakes"})
	require.NotNil(t, dto.ID)
	assert.Equal(t, 4, *dto.ID)
}

func TestProductRoundTrip(t *testing.T) {
	product := models.Product{
		ID:            12,
		CategoryID:    3,
		Code:          "TOR-001",
		Name:          "Torta tres leches",
		Price:         decimal.RequireFromString("15990"),
		Description:   "20 personas",
		Image:         "https://cdn.test/torta.png",
		Stock:         4,
		CriticalStock: 2,
		Blocked:       false,
	}

	back := ProductFromDTO(ProductToDTO(product))
	assert.Equal(t, product.ID, back.ID)
	assert.Equal(t, product.Code, back.Code)
	assert.True(t, product.Price.Equal(back.Price))
	assert.Equal(t, product.CriticalStock, back.CriticalStock)
}

func TestOrderFromDTOSplitsHeaderAndLines(t *testing.T) {
	dto := OrderDTO{
		ID:                9,
		UserID:            7,
		PlacedAt:          1756500000000,
		PreferredDelivery: "2026-09-05",
		Status:            "PENDING",
		Total:             decimal.RequireFromString("21980"),
		Lines: []OrderLineDTO{
			{ID: 1, OrderID: 9, ProductID: 12, Quantity: 2, ProductPrice: decimal.RequireFromString("10990")},
		},
	}

	order, lines := OrderFromDTO(dto)
	assert.Equal(t, 9, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, lines, 1)
	assert.Equal(t, 9, lines[0].OrderID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestOrderLineToRequestCarriesSnapshot(t *testing.T) {
	item := models.CartItem{
		ProductID:    12,
		ProductName:  "Torta",
		ProductPrice: decimal.RequireFromString("10990"),
		ProductImage: "https://cdn.test/torta.png",
		Quantity:     2,
		Message:      "Feliz cumple",
	}

	line := OrderLineToRequest(item)
	assert.Equal(t, item.ProductID, line.ProductID)
	assert.Equal(t, item.ProductName, line.ProductName)
	assert.True(t, item.ProductPrice.Equal(line.ProductPrice))
	assert.Equal(t, item.Message, line.Message)
}
