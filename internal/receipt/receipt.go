// Package receipt flattens an order or invoice into the view the printable
// renderers consume: customer block, joined line items, totals, payment info.
// Rendering itself is out of scope; the join is the core's responsibility.
package receipt

import (
	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/money"
)

type ClientSource interface {
	GetByID(id string) (*model.Client, error)
}

type ProductSource interface {
	GetByID(id string) (*model.Product, error)
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type Item struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	SKU      string      `json:"sku,omitempty"`
	Quantity int         `json:"quantity"`
	Price    model.Cents `json:"price_cents"`
}

type Receipt struct {
	Number        string      `json:"number"`
	Date          string      `json:"date"`
	Customer      *Customer   `json:"customer,omitempty"`
	Items         []Item      `json:"items"`
	Subtotal      model.Cents `json:"subtotal_cents"`
	Tax           model.Cents `json:"tax_cents"`
	Total         model.Cents `json:"total_cents"`
	PaymentMethod string      `json:"payment_method"`
	PaymentStatus string      `json:"payment_status"`
}

// FromOrder joins an order with the client registry and product catalog.
// A cart line whose product has since vanished keeps its quantity with a
// placeholder name and zero price, matching what the shop floor expects on a
// reprint. The stored order total is carried as-is; subtotal and tax are
// derived from the joined lines.
func FromOrder(o *model.Order, clients ClientSource, products ProductSource) *Receipt {
	items := make([]Item, 0, len(o.Items))
	lines := make([]money.Line, 0, len(o.Items))
	for _, ci := range o.Items {
		it := Item{ID: ci.ProductID, Name: "Unknown Product", Quantity: ci.Quantity}
		if p, err := products.GetByID(ci.ProductID); err == nil {
			it.Name = p.Name
			it.SKU = p.SKU
			it.Price = p.Price
		}
		items = append(items, it)
		lines = append(lines, money.Line{Quantity: it.Quantity, UnitPrice: it.Price})
	}
	subtotal := money.Subtotal(lines)
	return &Receipt{
		Number:        "ORD-" + o.ID,
		Date:          o.CreatedAt.Format("2006-01-02"),
		Customer:      lookupCustomer(clients, o.ClientID),
		Items:         items,
		Subtotal:      subtotal,
		Tax:           money.Tax(subtotal),
		Total:         o.Total,
		PaymentMethod: "Cash",
		PaymentStatus: "Paid",
	}
}

// FromInvoice flattens an invoice; its items already carry names and prices,
// so only the customer block needs a join.
func FromInvoice(inv *model.Invoice, clients ClientSource) *Receipt {
	items := make([]Item, 0, len(inv.Items))
	for _, ii := range inv.Items {
		items = append(items, Item{ID: ii.ID, Name: ii.Name, Quantity: ii.Quantity, Price: ii.Price})
	}
	status := "Pending"
	if inv.Status == model.InvoiceStatusCompleted {
		status = "Paid"
	}
	return &Receipt{
		Number:        inv.InvoiceNumber,
		Date:          inv.Date.Format("2006-01-02"),
		Customer:      lookupCustomer(clients, inv.ClientID),
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		PaymentMethod: "Cash",
		PaymentStatus: status,
	}
}

func lookupCustomer(clients ClientSource, id string) *Customer {
	c, err := clients.GetByID(id)
	if err != nil {
		return nil
	}
	return &Customer{Name: c.Name, Email: c.Email, Address: c.Address, Phone: c.Phone}
}
