package localstore

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/example/storefront/internal/model"
)

// Store is the in-process stand-in data source used when the remote
// backend is disabled or unreachable. Collections are seeded from
// embedded fixtures at construction; the cart alone is backed by a
// persisted JSON blob. All operations are synchronous; lookups report
// misses with a false second return instead of an error.
type Store struct {
	mu          sync.RWMutex
	products    []model.Product
	orders      []model.Order
	subscribers []model.NewsletterSubscription
	messages    []model.ContactMessage

	cart *cartFile
	ids  *idGenerator
	now  func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the store clock, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store seeded with fixture data. cartPath is where the
// cart blob lives; empty keeps the cart in memory.
func New(cartPath string, opts ...Option) (*Store, error) {
	s := &Store{
		cart: newCartFile(cartPath),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids = newIDGenerator(s.now)

	products, err := seedProducts(s.now())
	if err != nil {
		return nil, fmt.Errorf("seeding store: %w", err)
	}
	s.products = products
	return s, nil
}

// Reset restores the seeded state and drops the persisted cart
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := seedProducts(s.now())
	if err != nil {
		return err
	}
	s.products = products
	s.orders = nil
	s.subscribers = nil
	s.messages = nil
	return s.cart.Clear()
}

// Products

func (s *Store) GetProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product(nil), s.products...)
}

func (s *Store) GetProductByID(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (s *Store) GetFeaturedProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) GetProductsByCategory(category string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) CreateProduct(p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.ID = s.ids.Next("product")
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append(s.products, p)
	return p
}

func (s *Store) UpdateProduct(id string, update model.Product) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			update.ID = p.ID
			update.CreatedAt = p.CreatedAt
			update.UpdatedAt = s.now()
			s.products[i] = update
			return update, true
		}
	}
	return model.Product{}, false
}

func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// Cart

func (s *Store) GetCart() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Load()
}

// SaveCart rewrites the whole persisted cart
func (s *Store) SaveCart(items []model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Save(items)
}

// AddCartItem merges the item into the cart by variant key, summing
// quantities for an existing line
func (s *Store) AddCartItem(item model.CartItem) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Load()
	merged := false
	for i, existing := range items {
		if existing.Key() == item.Key() {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		if item.ID == "" {
			item.ID = s.ids.Next("cart")
		}
		items = append(items, item)
	}
	return items, s.cart.Save(items)
}

// UpdateCartItem sets the quantity for the line matching key, removing
// the line when quantity drops to zero or below
func (s *Store) UpdateCartItem(key string, quantity int) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Load()
	out := items[:0]
	for _, item := range items {
		if item.Key() == key {
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		out = append(out, item)
	}
	return out, s.cart.Save(out)
}

// RemoveCartItem deletes the line matching key
func (s *Store) RemoveCartItem(key string) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Load()
	out := items[:0]
	for _, item := range items {
		if item.Key() == key {
			continue
		}
		out = append(out, item)
	}
	return out, s.cart.Save(out)
}

// ClearCart removes the persisted cart entirely
func (s *Store) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clear()
}

// Orders

func (s *Store) GetOrders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Order(nil), s.orders...)
}

func (s *Store) GetOrderByID(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// CreateOrder stamps identity, order number, pending status and
// timestamps onto the submitted order
func (s *Store) CreateOrder(order model.Order) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	order.ID = s.ids.Next("order")
	order.OrderNumber = fmt.Sprintf("ORD-%s", strings.ToUpper(strings.TrimPrefix(order.ID, "order_")))
	order.Status = model.OrderStatusPending
	order.CreatedAt = now
	order.UpdatedAt = now
	s.orders = append(s.orders, order)
	return order
}

// UpdateOrderStatus overwrites the order status; last write wins
func (s *Store) UpdateOrderStatus(id, status string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = s.now()
			return s.orders[i], true
		}
	}
	return model.Order{}, false
}

// Newsletter

// Subscribe upserts by email: an existing record is flipped back to
// subscribed instead of duplicated
func (s *Store) Subscribe(email string) model.NewsletterSubscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i, sub := range s.subscribers {
		if strings.EqualFold(sub.Email, email) {
			s.subscribers[i].Subscribed = true
			s.subscribers[i].UpdatedAt = now
			return s.subscribers[i]
		}
	}

	sub := model.NewsletterSubscription{
		ID:           s.ids.Next("sub"),
		Email:        email,
		Subscribed:   true,
		SubscribedAt: now,
		UpdatedAt:    now,
	}
	s.subscribers = append(s.subscribers, sub)
	return sub
}

// Unsubscribe flips the record off; unknown emails are a no-op
func (s *Store) Unsubscribe(email string) (model.NewsletterSubscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if strings.EqualFold(sub.Email, email) {
			s.subscribers[i].Subscribed = false
			s.subscribers[i].UpdatedAt = s.now()
			return s.subscribers[i], true
		}
	}
	return model.NewsletterSubscription{}, false
}

func (s *Store) GetSubscribers() []model.NewsletterSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.NewsletterSubscription(nil), s.subscribers...)
}

// Contact

func (s *Store) CreateMessage(msg model.ContactMessage) model.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	msg.ID = s.ids.Next("msg")
	msg.Status = model.MessageStatusNew
	msg.CreatedAt = now
	msg.UpdatedAt = now
	s.messages = append(s.messages, msg)
	return msg
}

func (s *Store) GetMessages() []model.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ContactMessage(nil), s.messages...)
}

func (s *Store) UpdateMessageStatus(id, status string) (model.ContactMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.messages {
		if m.ID == id {
			s.messages[i].Status = status
			s.messages[i].UpdatedAt = s.now()
			return s.messages[i], true
		}
	}
	return model.ContactMessage{}, false
}
