package handlers

import (
	"net/http"

	"munchking-store/catalog"
	"munchking-store/models"
	"munchking-store/services"
)

// API holds what the endpoint handlers need: the fixed catalog and the
// session store. Per-shopper state arrives via the session middleware.
type API struct {
	Catalog *catalog.Catalog
	Store   *services.SessionStore
}

func New(c *catalog.Catalog, store *services.SessionStore) *API {
	return &API{Catalog: c, Store: store}
}

// ListMenu serves the menu, optionally filtered with ?category=.
func (a *API) ListMenu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && category != "all" && !models.ValidCategory(category) {
		respondError(w, http.StatusBadRequest, "unknown category")
		return
	}

	items := a.Catalog.ByCategory(category)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":      items,
		"categories": catalog.Categories,
	})
}

// PopularItems serves the deals section: items flagged as popular.
func (a *API) PopularItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": a.Catalog.Popular(),
	})
}
