package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/storefront/internal/auth"
)

// NewRouter builds the HTTP surface. Storefront reads and writes are
// public; catalog, order-status and inbox mutations are admin-only.
func NewRouter(h *Handlers, jwtService *auth.JWTService) http.Handler {
	r := mux.NewRouter()
	r.Use(logRequests)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Storefront
	r.HandleFunc("/api/products", h.GetProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", h.GetProduct).Methods(http.MethodGet)

	r.HandleFunc("/api/cart", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/api/cart", h.ClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/api/cart/items", h.AddToCart).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/items/{productId}", h.UpdateCartItem).Methods(http.MethodPut)
	r.HandleFunc("/api/cart/items/{productId}", h.RemoveFromCart).Methods(http.MethodDelete)

	r.HandleFunc("/api/orders", h.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/{id}", h.GetOrder).Methods(http.MethodGet)

	r.HandleFunc("/api/newsletter/subscribe", h.Subscribe).Methods(http.MethodPost)
	r.HandleFunc("/api/newsletter/unsubscribe", h.Unsubscribe).Methods(http.MethodPost)
	r.HandleFunc("/api/contact", h.SendMessage).Methods(http.MethodPost)

	r.HandleFunc("/api/payment", h.ProcessPayment).Methods(http.MethodPost)

	r.HandleFunc("/api/admin/login", h.AdminLogin).Methods(http.MethodPost)

	// Admin
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(auth.RequireAdmin(jwtService))
	admin.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", h.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", h.DeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/orders", h.GetOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", h.UpdateOrderStatus).Methods(http.MethodPut)
	admin.HandleFunc("/newsletter", h.GetSubscribers).Methods(http.MethodGet)
	admin.HandleFunc("/contact", h.GetMessages).Methods(http.MethodGet)
	admin.HandleFunc("/contact/{id}/status", h.UpdateMessageStatus).Methods(http.MethodPut)

	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			log.Printf("[API] %s %s", r.Method, r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}
