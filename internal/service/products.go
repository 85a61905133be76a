package service

import (
	"context"

	"github.com/example/storefront/internal/localstore"
	"github.com/example/storefront/internal/model"
)

// ProductService serves catalog reads and the admin CRUD surface
type ProductService struct {
	remote Remote
	local  *localstore.Store
	router *Router
}

func NewProductService(remote Remote, local *localstore.Store, router *Router) *ProductService {
	return &ProductService{remote: remote, local: local, router: router}
}

func (s *ProductService) GetAllProducts(ctx context.Context) []model.Product {
	if s.router.UseRemote(ctx) {
		var products []model.Product
		err := s.remote.Get(ctx, "/api/products", &products)
		if err == nil {
			return products
		}
		s.router.fellBack("GetAllProducts", err)
	}
	return s.local.GetProducts()
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (model.Product, bool) {
	if s.router.UseRemote(ctx) {
		var product model.Product
		err := s.remote.Get(ctx, "/api/products/"+id, &product)
		if err == nil {
			return product, true
		}
		s.router.fellBack("GetProductByID", err)
	}
	return s.local.GetProductByID(id)
}

func (s *ProductService) GetFeaturedProducts(ctx context.Context) []model.Product {
	if s.router.UseRemote(ctx) {
		var products []model.Product
		err := s.remote.Get(ctx, "/api/products?featured=true", &products)
		if err == nil {
			return products
		}
		s.router.fellBack("GetFeaturedProducts", err)
	}
	return s.local.GetFeaturedProducts()
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) []model.Product {
	if s.router.UseRemote(ctx) {
		var products []model.Product
		err := s.remote.Get(ctx, "/api/products?category="+category, &products)
		if err == nil {
			return products
		}
		s.router.fellBack("GetProductsByCategory", err)
	}
	return s.local.GetProductsByCategory(category)
}

// Admin operations

func (s *ProductService) CreateProduct(ctx context.Context, p model.Product) model.Product {
	if s.router.UseRemote(ctx) {
		var created model.Product
		err := s.remote.Post(ctx, "/api/products", p, &created)
		if err == nil {
			return created
		}
		s.router.fellBack("CreateProduct", err)
	}
	return s.local.CreateProduct(p)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, p model.Product) (model.Product, bool) {
	if s.router.UseRemote(ctx) {
		var updated model.Product
		err := s.remote.Put(ctx, "/api/products/"+id, p, &updated)
		if err == nil {
			return updated, true
		}
		s.router.fellBack("UpdateProduct", err)
	}
	return s.local.UpdateProduct(id, p)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) bool {
	if s.router.UseRemote(ctx) {
		err := s.remote.Delete(ctx, "/api/products/"+id, nil)
		if err == nil {
			return true
		}
		s.router.fellBack("DeleteProduct", err)
	}
	return s.local.DeleteProduct(id)
}
