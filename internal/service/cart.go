package service

import (
	"context"

	"github.com/example/storefront/internal/localstore"
	"github.com/example/storefront/internal/model"
)

// localCartID identifies the cart aggregate when served locally
const localCartID = "local"

// CartService keeps the client-held cart consistent across the two
// backends. Mutations are read-modify-write over a per-call snapshot:
// the current cart is fetched (itself routed remote-or-local), the new
// item list derived, and the whole list written back. There is no
// compare-and-swap; concurrent calls are last-write-wins.
type CartService struct {
	remote Remote
	local  *localstore.Store
	router *Router
}

func NewCartService(remote Remote, local *localstore.Store, router *Router) *CartService {
	return &CartService{remote: remote, local: local, router: router}
}

func (s *CartService) GetCart(ctx context.Context) model.Cart {
	if s.router.UseRemote(ctx) {
		var cart model.Cart
		err := s.remote.Get(ctx, "/api/cart", &cart)
		if err == nil {
			if cart.Items == nil {
				cart.Items = []model.CartItem{}
			}
			return cart
		}
		s.router.fellBack("GetCart", err)
	}
	return model.NewCart(localCartID, s.local.GetCart())
}

func (s *CartService) AddToCart(ctx context.Context, item model.CartItem) (model.Cart, error) {
	if s.router.UseRemote(ctx) {
		var cart model.Cart
		err := s.remote.Post(ctx, "/api/cart/items", item, &cart)
		if err == nil {
			return cart, nil
		}
		s.router.fellBack("AddToCart", err)
	}
	items, err := s.local.AddCartItem(item)
	if err != nil {
		return model.Cart{}, err
	}
	return model.NewCart(localCartID, items), nil
}

// UpdateCartItem sets the quantity of the line matching the product and
// variant. Quantity zero or below removes the line, making it
// equivalent to RemoveFromCart.
func (s *CartService) UpdateCartItem(ctx context.Context, productID, size, color string, quantity int) (model.Cart, error) {
	current := s.GetCart(ctx)
	key := variantKey(productID, size, color)

	items := make([]model.CartItem, 0, len(current.Items))
	for _, item := range current.Items {
		if item.Key() == key {
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	return s.writeCart(ctx, items)
}

// RemoveFromCart drops the line matching the product and variant
func (s *CartService) RemoveFromCart(ctx context.Context, productID, size, color string) (model.Cart, error) {
	current := s.GetCart(ctx)
	key := variantKey(productID, size, color)

	items := make([]model.CartItem, 0, len(current.Items))
	for _, item := range current.Items {
		if item.Key() == key {
			continue
		}
		items = append(items, item)
	}
	return s.writeCart(ctx, items)
}

func (s *CartService) ClearCart(ctx context.Context) error {
	if s.router.UseRemote(ctx) {
		err := s.remote.Delete(ctx, "/api/cart", nil)
		if err == nil {
			return nil
		}
		s.router.fellBack("ClearCart", err)
	}
	return s.local.ClearCart()
}

// writeCart persists the derived item list wholesale, remote first when
// available, local otherwise
func (s *CartService) writeCart(ctx context.Context, items []model.CartItem) (model.Cart, error) {
	if s.router.UseRemote(ctx) {
		var cart model.Cart
		err := s.remote.Put(ctx, "/api/cart", map[string]any{"items": items}, &cart)
		if err == nil {
			return cart, nil
		}
		s.router.fellBack("writeCart", err)
	}
	if err := s.local.SaveCart(items); err != nil {
		return model.Cart{}, err
	}
	return model.NewCart(localCartID, items), nil
}

func variantKey(productID, size, color string) string {
	return model.CartItem{ProductID: productID, Size: size, Color: color}.Key()
}
