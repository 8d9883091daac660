package services

import "github.com/shopspring/decimal"

// Totals is the checkout money breakdown. Derived, never stored: callers
// recompute it on every read so a cart or discount mutation can never leave
// a stale total behind. All arithmetic is exact decimal; rounding to two
// places happens only when formatting for display.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}

// CalcTotals derives the payable amount from the cart and discount state.
// Delivery is always free.
func CalcTotals(cart *Cart, discount *Discount) Totals {
	subtotal := cart.TotalPrice()
	discountAmount := subtotal.Mul(discount.Rate())
	deliveryFee := decimal.Zero
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		DeliveryFee:    deliveryFee,
		FinalTotal:     subtotal.Sub(discountAmount).Add(deliveryFee),
	}
}

// FormatUSD renders an amount as "$X.YZ", rounding half away from zero.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
