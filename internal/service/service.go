// Package service implements the in-process stores behind the repair-shop
// core: clients, the device catalog, tickets, products, orders with the
// shopping cart, and invoices. Each store owns its entities exclusively and
// guards them with its own mutex; cross-entity links are resolved by id
// lookup against the owning store, never held as live pointers.
package service

import "github.com/psds-microservice/repairshop-service/internal/model"

// ClientLookup is what ticket, order and invoice creation need from the
// client registry: an existence check for reference validation.
type ClientLookup interface {
	Exists(id string) bool
}

// ProductLookup resolves cart product references for order total
// recomputation and receipt building.
type ProductLookup interface {
	Exists(id string) bool
	GetByID(id string) (*model.Product, error)
}

// trackingAttempts bounds regeneration when a freshly generated tracking
// number is already taken.
const trackingAttempts = 5
