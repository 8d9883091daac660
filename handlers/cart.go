package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"munchking-store/middlewares"
	"munchking-store/services"
)

type cartView struct {
	Items      []services.CartLine `json:"items"`
	TotalItems int                 `json:"total_items"`
	TotalPrice string              `json:"total_price"`
}

func viewCart(cart *services.Cart) cartView {
	return cartView{
		Items:      cart.Items(),
		TotalItems: cart.TotalItems(),
		TotalPrice: services.FormatUSD(cart.TotalPrice()),
	}
}

// GetCart returns the session's cart snapshot.
func (a *API) GetCart(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}
	respondJSON(w, http.StatusOK, viewCart(session.Cart))
}

// AddCartItem adds one unit of a menu item to the cart.
func (a *API) AddCartItem(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		respondError(w, http.StatusBadRequest, "item id is required")
		return
	}

	item, ok := a.Catalog.Get(req.ID)
	if !ok {
		respondError(w, http.StatusNotFound, "no such menu item")
		return
	}

	session.Cart.AddItem(item)
	logrus.WithFields(logrus.Fields{"session": session.ID, "item": item.ID}).Debug("item added to cart")
	respondJSON(w, http.StatusOK, viewCart(session.Cart))
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func (a *API) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.Cart.UpdateQuantity(mux.Vars(r)["id"], req.Quantity)
	respondJSON(w, http.StatusOK, viewCart(session.Cart))
}

// RemoveCartItem deletes a line outright.
func (a *API) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	session.Cart.RemoveItem(mux.Vars(r)["id"])
	respondJSON(w, http.StatusOK, viewCart(session.Cart))
}

// ClearCart empties the whole cart.
func (a *API) ClearCart(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	session.Cart.Clear()
	respondJSON(w, http.StatusOK, viewCart(session.Cart))
}
