package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"munchking-store/models"
)

func menuItem(id, name string, price string) models.MenuItem {
	return models.MenuItem{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: models.CategoryBurgers,
	}
}

func TestCart_RepeatAddAccumulates(t *testing.T) {
	cart := NewCart()
	burger := menuItem("1", "Classic Cheeseburger", "8.99")

	const n = 5
	for i := 0; i < n; i++ {
		cart.AddItem(burger)
	}

	if got := cart.TotalItems(); got != n {
		t.Errorf("TotalItems() = %d, want %d", got, n)
	}
	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single line, got %d", len(items))
	}
	if items[0].Quantity != n {
		t.Errorf("line quantity = %d, want %d", items[0].Quantity, n)
	}
	want := decimal.RequireFromString("44.95")
	if !cart.TotalPrice().Equal(want) {
		t.Errorf("TotalPrice() = %s, want %s", cart.TotalPrice(), want)
	}
}

func TestCart_AddKeepsInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
	cart.AddItem(menuItem("3", "Crispy Fries", "3.99"))
	cart.AddItem(menuItem("6", "Classic Cola", "2.49"))
	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))

	items := cart.Items()
	wantOrder := []string{"1", "3", "6"}
	if len(items) != len(wantOrder) {
		t.Fatalf("expected %d lines, got %d", len(wantOrder), len(items))
	}
	for i, id := range wantOrder {
		if items[i].ID != id {
			t.Errorf("line %d id = %s, want %s", i, items[i].ID, id)
		}
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{"positive sets quantity", 7, 1, 7},
		{"zero removes line", 0, 0, 0},
		{"negative removes line", -3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
			cart.UpdateQuantity("1", tt.quantity)

			items := cart.Items()
			if len(items) != tt.wantLines {
				t.Fatalf("lines = %d, want %d", len(items), tt.wantLines)
			}
			if tt.wantLines > 0 && items[0].Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", items[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestCart_UpdateQuantityUnknownIDIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
	cart.UpdateQuantity("nope", 3)

	if got := cart.TotalItems(); got != 1 {
		t.Errorf("TotalItems() = %d, want 1 (cart unchanged)", got)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
	cart.AddItem(menuItem("3", "Crispy Fries", "3.99"))

	cart.RemoveItem("1")
	items := cart.Items()
	if len(items) != 1 || items[0].ID != "3" {
		t.Fatalf("expected only item 3 to remain, got %+v", items)
	}

	// removing a missing id leaves the cart unchanged
	cart.RemoveItem("1")
	if got := cart.TotalItems(); got != 1 {
		t.Errorf("TotalItems() after no-op remove = %d, want 1", got)
	}
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))
	cart.AddItem(menuItem("3", "Crispy Fries", "3.99"))
	cart.UpdateQuantity("3", 4)

	cart.Clear()

	if got := cart.TotalItems(); got != 0 {
		t.Errorf("TotalItems() = %d, want 0", got)
	}
	if !cart.TotalPrice().IsZero() {
		t.Errorf("TotalPrice() = %s, want 0", cart.TotalPrice())
	}
}

func TestCart_ItemsReturnsSnapshot(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("1", "Classic Cheeseburger", "8.99"))

	snapshot := cart.Items()
	snapshot[0].Quantity = 99

	if got := cart.TotalItems(); got != 1 {
		t.Errorf("mutating the snapshot changed the cart: TotalItems() = %d", got)
	}
}
