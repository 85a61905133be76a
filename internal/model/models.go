package model

import "time"

// Product is a catalog product as both backends expose it
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"`
	Images        []string  `json:"images"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Sizes         []string  `json:"sizes"`
	Colors        []string  `json:"colors"`
	InStock       bool      `json:"in_stock"`
	StockQuantity int       `json:"stock_quantity,omitempty"`
	Featured      bool      `json:"featured"`
	New           bool      `json:"new"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CartItem represents one line in the cart
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Image     string  `json:"image,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}

// Key identifies a cart line by product and variant
func (i CartItem) Key() string {
	return i.ProductID + "|" + i.Size + "|" + i.Color
}

// Cart is the aggregate view returned to callers regardless of which
// backend served it
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// NewCart wraps a flat item list into the aggregate view
func NewCart(id string, items []CartItem) Cart {
	if items == nil {
		items = []CartItem{}
	}
	c := Cart{ID: id, Items: items}
	for _, item := range items {
		c.Total += item.Price * float64(item.Quantity)
		c.ItemCount += item.Quantity
	}
	return c
}

// Address holds the structured shipping contact fields
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a frozen snapshot of product/variant/price/quantity at
// purchase time; never re-derived from live Product state
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// Order is a placed order; after creation only Status is mutated
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	Status          string      `json:"status"`
	Total           float64     `json:"total"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// NewsletterSubscription is keyed by email; re-subscribing flips
// Subscribed back rather than duplicating
type NewsletterSubscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Subscribed   bool      `json:"subscribed"`
	SubscribedAt time.Time `json:"subscribed_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Contact message statuses
const (
	MessageStatusNew     = "new"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// ContactMessage is an append-mostly contact form record
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Payment commands accepted by the payment endpoint
const (
	PaymentCommandPayment            = "payment"
	PaymentCommandCreateSubscription = "create_subscription"
	PaymentCommandVerify             = "verify"
)

// PaymentRequest is the command-oriented payment call payload
type PaymentRequest struct {
	Command string         `json:"command"`
	Data    map[string]any `json:"data"`
}

// PaymentResult is the provider response; Status is the success flag
type PaymentResult struct {
	Status        bool           `json:"status"`
	TransactionID string         `json:"transaction_id,omitempty"`
	Error         string         `json:"error,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
}
