package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"` // "burgers", "sides", "drinks", "desserts"
	Popular     bool            `json:"popular,omitempty"`
}

const (
	CategoryBurgers  = "burgers"
	CategorySides    = "sides"
	CategoryDrinks   = "drinks"
	CategoryDesserts = "desserts"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryBurgers, CategorySides, CategoryDrinks, CategoryDesserts:
		return true
	}
	return false
}
