package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalcTotals_NoDiscount(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
	cart.AddItem(menuItem("3", "Crispy Fries", "3.99"))
	discount := NewDiscount("WELCOME20", 20)

	totals := CalcTotals(cart, discount)

	if want := decimal.RequireFromString("12.98"); !totals.Subtotal.Equal(want) {
		t.Errorf("Subtotal = %s, want %s", totals.Subtotal, want)
	}
	if !totals.DiscountAmount.IsZero() {
		t.Errorf("DiscountAmount = %s, want 0", totals.DiscountAmount)
	}
	if !totals.DeliveryFee.IsZero() {
		t.Errorf("DeliveryFee = %s, want 0 (delivery is always free)", totals.DeliveryFee)
	}
	if !totals.FinalTotal.Equal(totals.Subtotal) {
		t.Errorf("FinalTotal = %s, want %s", totals.FinalTotal, totals.Subtotal)
	}
}

// The exact arithmetic the storefront shows: 8.99 + 3.99 = 12.98, 20% off is
// an exact 2.596 before rounding, and only the display string rounds.
func TestCalcTotals_DiscountExactArithmetic(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
	cart.AddItem(menuItem("3", "Crispy Fries", "3.99"))
	discount := NewDiscount("WELCOME20", 20)
	if err := discount.ApplyCode("WELCOME20"); err != nil {
		t.Fatalf("ApplyCode: %v", err)
	}

	totals := CalcTotals(cart, discount)

	if want := decimal.RequireFromString("2.596"); !totals.DiscountAmount.Equal(want) {
		t.Errorf("DiscountAmount = %s, want exact %s", totals.DiscountAmount, want)
	}
	if want := decimal.RequireFromString("10.384"); !totals.FinalTotal.Equal(want) {
		t.Errorf("FinalTotal = %s, want exact %s", totals.FinalTotal, want)
	}
	if got := FormatUSD(totals.FinalTotal); got != "$10.38" {
		t.Errorf("FormatUSD(FinalTotal) = %s, want $10.38", got)
	}
}

func TestCalcTotals_FinalTotalInvariant(t *testing.T) {
	carts := []func() *Cart{
		func() *Cart { return NewCart() },
		func() *Cart {
			c := NewCart()
			c.AddItem(menuItem("6", "Classic Cola", "2.49"))
			return c
		},
		func() *Cart {
			c := NewCart()
			c.AddItem(menuItem("2", "Double Bacon Burger", "12.99"))
			c.UpdateQuantity("2", 13)
			c.AddItem(menuItem("8", "Chocolate Sundae", "5.49"))
			return c
		},
	}

	for i, build := range carts {
		for _, applied := range []bool{false, true} {
			cart := build()
			discount := NewDiscount("WELCOME20", 20)
			if applied {
				if err := discount.ApplyCode("WELCOME20"); err != nil {
					t.Fatalf("ApplyCode: %v", err)
				}
			}

			totals := CalcTotals(cart, discount)
			want := totals.Subtotal.Sub(totals.DiscountAmount)
			if !totals.FinalTotal.Equal(want) {
				t.Errorf("cart %d applied=%v: FinalTotal = %s, want subtotal-discount = %s",
					i, applied, totals.FinalTotal, want)
			}
			if totals.FinalTotal.IsNegative() {
				t.Errorf("cart %d applied=%v: FinalTotal %s is negative", i, applied, totals.FinalTotal)
			}
		}
	}
}

// Totals must always reflect the live cart; nothing may be cached across a
// mutation.
func TestCalcTotals_RecomputedAfterMutation(t *testing.T) {
	cart := NewCart()
	discount := NewDiscount("WELCOME20", 20)

	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
	before := CalcTotals(cart, discount)

	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
	after := CalcTotals(cart, discount)

	if want := decimal.RequireFromString("8.99"); !before.Subtotal.Equal(want) {
		t.Errorf("before = %s, want %s", before.Subtotal, want)
	}
	if want := decimal.RequireFromString("17.98"); !after.Subtotal.Equal(want) {
		t.Errorf("after = %s, want %s", after.Subtotal, want)
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"12.98", "$12.98"},
		{"10.384", "$10.38"},
		{"10.385", "$10.39"},
		{"2.596", "$2.60"},
	}
	for _, tt := range tests {
		got := FormatUSD(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("FormatUSD(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
