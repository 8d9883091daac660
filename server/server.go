package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"munchking-store/handlers"
	"munchking-store/middlewares"
	"munchking-store/services"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 1 * time.Minute
)

func SetupRoutes(api *handlers.API, store *services.SessionStore, sessionSecret []byte) *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	router.HandleFunc("/menu", api.ListMenu).Methods("GET")
	router.HandleFunc("/menu/popular", api.PopularItems).Methods("GET")

	// Everything stateful rides on the shopper's session.
	shop := router.PathPrefix("/").Subrouter()
	shop.Use(middlewares.SessionMiddleware(store, sessionSecret))

	shop.HandleFunc("/cart", api.GetCart).Methods("GET")
	shop.HandleFunc("/cart", api.ClearCart).Methods("DELETE")
	shop.HandleFunc("/cart/items", api.AddCartItem).Methods("POST")
	shop.HandleFunc("/cart/items/{id}", api.UpdateCartItem).Methods("PATCH")
	shop.HandleFunc("/cart/items/{id}", api.RemoveCartItem).Methods("DELETE")

	shop.HandleFunc("/checkout", api.CheckoutStatus).Methods("GET")
	shop.HandleFunc("/checkout/totals", api.GetTotals).Methods("GET")
	shop.HandleFunc("/checkout/discount", api.ApplyDiscount).Methods("POST")
	shop.HandleFunc("/checkout/submit", api.SubmitOrder).Methods("POST")
	shop.HandleFunc("/checkout/reset", api.ResetCheckout).Methods("POST")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(addr string) error {
	svr.server = &http.Server{
		Addr:              addr,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
