package service

import (
	"context"

	"github.com/example/storefront/internal/email"
	"github.com/example/storefront/internal/localstore"
	"github.com/example/storefront/internal/model"
)

// OrderService creates and reads orders. Order creation on the remote
// path is followed by a best-effort confirmation email; the email and
// the order write are deliberately not atomic.
type OrderService struct {
	remote Remote
	local  *localstore.Store
	router *Router
	mailer email.Sender
}

func NewOrderService(remote Remote, local *localstore.Store, router *Router, mailer email.Sender) *OrderService {
	return &OrderService{remote: remote, local: local, router: router, mailer: mailer}
}

func (s *OrderService) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	if s.router.UseRemote(ctx) {
		var created model.Order
		err := s.remote.Post(ctx, "/api/orders", order, &created)
		if err == nil {
			notify("order confirmation", func() error {
				return s.mailer.SendOrderConfirmation(created.ShippingAddress.Email, created)
			})
			return created, nil
		}
		s.router.fellBack("CreateOrder", err)
	}
	return s.local.CreateOrder(order), nil
}

func (s *OrderService) GetOrders(ctx context.Context) []model.Order {
	if s.router.UseRemote(ctx) {
		var orders []model.Order
		err := s.remote.Get(ctx, "/api/orders", &orders)
		if err == nil {
			return orders
		}
		s.router.fellBack("GetOrders", err)
	}
	return s.local.GetOrders()
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (model.Order, bool) {
	if s.router.UseRemote(ctx) {
		var order model.Order
		err := s.remote.Get(ctx, "/api/orders/"+id, &order)
		if err == nil {
			return order, true
		}
		s.router.fellBack("GetOrderByID", err)
	}
	return s.local.GetOrderByID(id)
}

// UpdateOrderStatus overwrites the order status; last write wins with
// no optimistic concurrency
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id, status string) (model.Order, bool) {
	if s.router.UseRemote(ctx) {
		var updated model.Order
		err := s.remote.Put(ctx, "/api/orders/"+id+"/status", map[string]string{"status": status}, &updated)
		if err == nil {
			return updated, true
		}
		s.router.fellBack("UpdateOrderStatus", err)
	}
	return s.local.UpdateOrderStatus(id, status)
}
