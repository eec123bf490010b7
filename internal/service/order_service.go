package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/money"
)

// OrderService holds the shopping cart and the order list. The cart is a
// single working set with one entry per product; creating an order snapshots
// it and clears it.
type OrderService struct {
	clients  ClientLookup
	products ProductLookup

	mu     sync.Mutex
	cart   []model.CartItem
	orders []model.Order
}

func NewOrderService(clients ClientLookup, products ProductLookup) *OrderService {
	return &OrderService{clients: clients, products: products}
}

// AddToCart puts (productID, quantity) into the cart. Re-adding a product
// replaces its quantity rather than summing it; the replaced entry moves to
// the end of the cart.
func (s *OrderService) AddToCart(productID string, quantity int) error {
	if quantity <= 0 {
		return errs.Validationf("quantity must be positive")
	}
	if !s.products.Exists(productID) {
		return errs.Referencef("product %s", productID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = append(kept, model.CartItem{ProductID: productID, Quantity: quantity})
	return nil
}

func (s *OrderService) RemoveFromCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.cart {
		if item.ProductID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return nil
		}
	}
	return errs.NotFoundf("cart entry for product %s", productID)
}

func (s *OrderService) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

func (s *OrderService) Cart() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CreateOrder snapshots the current cart as a pending order and clears the
// cart. The caller supplies the grand total it showed the customer; the store
// recomputes subtotal + 20% tax from the cart against the product catalog and
// rejects a mismatch instead of trusting the caller's arithmetic.
func (s *OrderService) CreateOrder(clientID string, total model.Cents) (*model.Order, error) {
	if clientID == "" {
		return nil, errs.Validationf("client id is required")
	}
	if !s.clients.Exists(clientID) {
		return nil, errs.Referencef("client %s", clientID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]money.Line, 0, len(s.cart))
	for _, item := range s.cart {
		p, err := s.products.GetByID(item.ProductID)
		if err != nil {
			return nil, errs.Referencef("product %s", item.ProductID)
		}
		lines = append(lines, money.Line{Quantity: item.Quantity, UnitPrice: p.Price})
	}
	if want := money.GrandTotal(money.Subtotal(lines)); total != want {
		return nil, errs.Validationf("total mismatch: got %d cents, cart computes to %d", total, want)
	}

	o := model.Order{
		ID:        uuid.NewString(),
		Items:     append([]model.CartItem(nil), s.cart...),
		Total:     total,
		Status:    model.OrderStatusPending,
		ClientID:  clientID,
		CreatedAt: time.Now().UTC(),
	}
	s.orders = append(s.orders, o)
	s.cart = nil
	out := o
	out.Items = append([]model.CartItem(nil), o.Items...)
	return &out, nil
}

// UpdateStatus overwrites the order status. Any valid status may be written;
// there is no transition graph.
func (s *OrderService) UpdateStatus(id string, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, errs.Validationf("invalid order status %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			out := s.orders[i]
			out.Items = append([]model.CartItem(nil), s.orders[i].Items...)
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("order %s", id)
}

func (s *OrderService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return errs.NotFoundf("order %s", id)
}

func (s *OrderService) GetByID(id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			out := s.orders[i]
			out.Items = append([]model.CartItem(nil), s.orders[i].Items...)
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("order %s", id)
}

// List returns orders in insertion order, optionally filtered by status.
func (s *OrderService) List(status model.OrderStatus) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for i := range s.orders {
		if status != "" && s.orders[i].Status != status {
			continue
		}
		o := s.orders[i]
		o.Items = append([]model.CartItem(nil), s.orders[i].Items...)
		out = append(out, o)
	}
	return out
}
