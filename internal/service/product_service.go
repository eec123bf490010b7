package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
)

// ProductService is the sellable-product catalog with stock tracking.
type ProductService struct {
	mu       sync.Mutex
	products []model.Product
}

func NewProductService() *ProductService {
	return &ProductService{}
}

type CreateProductInput struct {
	Name        string
	Category    string
	Price       model.Cents
	Stock       int
	SKU         string
	Description string
	ImageURL    string
}

func (s *ProductService) Create(in CreateProductInput) (*model.Product, error) {
	if in.Name == "" {
		return nil, errs.Validationf("product name is required")
	}
	if in.Price < 0 {
		return nil, errs.Validationf("price cannot be negative")
	}
	p := model.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		SKU:         in.SKU,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	return &p, nil
}

type UpdateProductInput struct {
	Name        *string
	Category    *string
	Price       *model.Cents
	Stock       *int
	SKU         *string
	Description *string
	ImageURL    *string
}

func (s *ProductService) Update(id string, in UpdateProductInput) (*model.Product, error) {
	if in.Name != nil && *in.Name == "" {
		return nil, errs.Validationf("product name cannot be cleared")
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, errs.Validationf("price cannot be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.SKU != nil {
			p.SKU = *in.SKU
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.ImageURL != nil {
			p.ImageURL = *in.ImageURL
		}
		out := *p
		return &out, nil
	}
	return nil, errs.NotFoundf("product %s", id)
}

// AdjustStock applies a delta to the stock count: negative for sales,
// positive for restock. The result is not clamped at zero — negative stock is
// permitted and left for the caller to reconcile.
func (s *ProductService) AdjustStock(id string, delta int) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock += delta
			out := s.products[i]
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("product %s", id)
}

func (s *ProductService) GetByID(id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			out := s.products[i]
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("product %s", id)
}

func (s *ProductService) Exists(id string) bool {
	_, err := s.GetByID(id)
	return err == nil
}

func (s *ProductService) List() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// CountLowStock is a dashboard read: products with stock below threshold.
func (s *ProductService) CountLowStock(threshold int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.products {
		if s.products[i].Stock < threshold {
			n++
		}
	}
	return n
}
