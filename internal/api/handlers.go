package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/model"
	"github.com/example/storefront/internal/service"
)

// Handlers is the thin HTTP layer over the domain services. All
// fallback behavior lives in the services; handlers only decode, call
// and respond.
type Handlers struct {
	products   *service.ProductService
	cart       *service.CartService
	orders     *service.OrderService
	newsletter *service.NewsletterService
	contact    *service.ContactService
	payment    *service.PaymentService

	jwtService *auth.JWTService
	adminEmail string
	adminHash  string
}

// Config wires the handler dependencies
type Config struct {
	Products   *service.ProductService
	Cart       *service.CartService
	Orders     *service.OrderService
	Newsletter *service.NewsletterService
	Contact    *service.ContactService
	Payment    *service.PaymentService

	JWTService *auth.JWTService
	AdminEmail string
	AdminHash  string
}

func NewHandlers(cfg Config) *Handlers {
	return &Handlers{
		products:   cfg.Products,
		cart:       cfg.Cart,
		orders:     cfg.Orders,
		newsletter: cfg.Newsletter,
		contact:    cfg.Contact,
		payment:    cfg.Payment,
		jwtService: cfg.JWTService,
		adminEmail: cfg.AdminEmail,
		adminHash:  cfg.AdminHash,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Health reports liveness; the local fallback path means the storefront
// is serviceable even when the remote backend is not
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Products

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("featured") == "true":
		respondJSON(w, http.StatusOK, h.products.GetFeaturedProducts(r.Context()))
	case q.Get("category") != "":
		respondJSON(w, http.StatusOK, h.products.GetProductsByCategory(r.Context(), q.Get("category")))
	default:
		respondJSON(w, http.StatusOK, h.products.GetAllProducts(r.Context()))
	}
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, ok := h.products.GetProductByID(r.Context(), id)
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, h.products.CreateProduct(r.Context(), p))
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, ok := h.products.UpdateProduct(r.Context(), id, p)
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.products.DeleteProduct(r.Context(), id) {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// Cart

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cart.GetCart(r.Context()))
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var item model.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if item.ProductID == "" || item.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "product_id and a positive quantity are required")
		return
	}
	cart, err := h.cart.AddToCart(r.Context(), item)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

type updateCartRequest struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	cart, err := h.cart.UpdateCartItem(r.Context(), productID, req.Size, req.Color, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	q := r.URL.Query()
	cart, err := h.cart.RemoveFromCart(r.Context(), productID, q.Get("size"), q.Get("color"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.ClearCart(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}

// Orders

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(order.Items) == 0 {
		respondError(w, http.StatusBadRequest, "order requires at least one item")
		return
	}
	created, err := h.orders.CreateOrder(r.Context(), order)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.orders.GetOrders(r.Context()))
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	order, ok := h.orders.GetOrderByID(r.Context(), id)
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, ok := h.orders.UpdateOrderStatus(r.Context(), id, req.Status)
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Newsletter

type emailRequest struct {
	Email string `json:"email"`
}

func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	sub, err := h.newsletter.Subscribe(r.Context(), req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, sub)
}

func (h *Handlers) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	sub, _ := h.newsletter.Unsubscribe(r.Context(), req.Email)
	respondJSON(w, http.StatusOK, sub)
}

func (h *Handlers) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.newsletter.GetSubscribers(r.Context()))
}

// Contact

func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var msg model.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg.Email == "" || msg.Message == "" {
		respondError(w, http.StatusBadRequest, "email and message are required")
		return
	}
	created, err := h.contact.SendMessage(r.Context(), msg)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetMessages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.contact.GetMessages(r.Context()))
}

func (h *Handlers) UpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, ok := h.contact.UpdateMessageStatus(r.Context(), id, req.Status)
	if !ok {
		respondError(w, http.StatusNotFound, "message not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Payment

func (h *Handlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		result model.PaymentResult
		err    error
	)
	switch req.Command {
	case model.PaymentCommandPayment, "":
		result, err = h.payment.ProcessPayment(r.Context(), req.Data)
	case model.PaymentCommandCreateSubscription:
		result, err = h.payment.CreateSubscription(r.Context(), req.Data)
	case model.PaymentCommandVerify:
		result, err = h.payment.Verify(r.Context(), req.Data)
	default:
		respondError(w, http.StatusBadRequest, "unknown payment command")
		return
	}

	if err != nil {
		var payErr *service.PaymentError
		if errors.As(err, &payErr) && errors.Is(err, service.ErrPaymentUnavailable) {
			respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Admin auth

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin checks the configured admin credential and issues a token
func (h *Handlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email != h.adminEmail || !auth.CheckPassword(req.Password, h.adminHash) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_at": expiresAt,
	})
}
