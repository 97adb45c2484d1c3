// Package pricing centralizes the discount logic applied on top of the
// cart subtotal.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/delsur-bakery/delsur-store/models"
)

var (
	ageDiscountRate     = decimal.RequireFromString("0.10")
	promoDiscountRate   = decimal.RequireFromString("0.50")
	partnerDiscountRate = decimal.RequireFromString("0.15")
	maxCombinedRate     = decimal.RequireFromString("0.70")
)

// Summary is the result of pricing a cart: exact decimal values, no
// rounding applied. Currency formatting is a presentation concern.
type Summary struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// HasDiscount reports whether any discount was applied.
func (s Summary) HasDiscount() bool {
	return s.Discount.IsPositive()
}

// FormatCurrency renders a money value with no decimal places.
func FormatCurrency(v decimal.Decimal) string {
	return v.StringFixed(0)
}

// Calculate prices a cart for a user. A nil user is a guest checkout
// and gets no discount. Discount flags add up independently and the
// combined rate is capped at 0.70, so all three flags together yield
// 0.70, not 0.75. A non-positive subtotal short-circuits to all zeros.
func Calculate(items []models.CartItem, user *models.User) Summary {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.ProductPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !subtotal.IsPositive() {
		return Summary{Subtotal: decimal.Zero, Discount: decimal.Zero, Total: decimal.Zero}
	}

	rate := decimal.Zero
	if user != nil {
		if user.AgeDiscount {
			rate = rate.Add(ageDiscountRate)
		}
		if user.PromoCode {
			rate = rate.Add(promoDiscountRate)
		}
		if user.PartnerInst {
			rate = rate.Add(partnerDiscountRate)
		}
		if rate.GreaterThan(maxCombinedRate) {
			rate = maxCombinedRate
		}
	}

	discount := subtotal.Mul(rate)
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Summary{Subtotal: subtotal, Discount: discount, Total: total}
}
