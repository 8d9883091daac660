package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"munchking-store/models"
)

// Embed the menu into the binary so the service has no runtime data
// dependency; the menu is fixed and read-only for the life of the process.
//
//go:embed menu.json
var menuJSON []byte

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Categories is the display ordering for the menu filter, "all" included.
var Categories = []Category{
	{ID: "all", Name: "All Items", Icon: "🍽️"},
	{ID: models.CategoryBurgers, Name: "Burgers", Icon: "🍔"},
	{ID: models.CategorySides, Name: "Sides", Icon: "🍟"},
	{ID: models.CategoryDrinks, Name: "Drinks", Icon: "🥤"},
	{ID: models.CategoryDesserts, Name: "Desserts", Icon: "🍨"},
}

type Catalog struct {
	items []models.MenuItem
	byID  map[string]models.MenuItem
}

// Load parses the embedded menu once at startup.
func Load() (*Catalog, error) {
	var items []models.MenuItem
	if err := json.Unmarshal(menuJSON, &items); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}

	byID := make(map[string]models.MenuItem, len(items))
	for _, it := range items {
		if it.ID == "" || it.Name == "" {
			return nil, fmt.Errorf("menu item missing id or name: %+v", it)
		}
		if !models.ValidCategory(it.Category) {
			return nil, fmt.Errorf("menu item %s: invalid category %q", it.ID, it.Category)
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("menu item %s: negative price", it.ID)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate menu item id %s", it.ID)
		}
		byID[it.ID] = it
	}
	return &Catalog{items: items, byID: byID}, nil
}

func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Get(id string) (models.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// ByCategory returns items in menu order; "all" or "" returns everything.
func (c *Catalog) ByCategory(category string) []models.MenuItem {
	if category == "" || category == "all" {
		return c.Items()
	}
	var out []models.MenuItem
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Popular returns the items flagged for the deals section.
func (c *Catalog) Popular() []models.MenuItem {
	var out []models.MenuItem
	for _, it := range c.items {
		if it.Popular {
			out = append(out, it)
		}
	}
	return out
}
