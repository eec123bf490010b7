package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/money"
	"github.com/psds-microservice/repairshop-service/internal/tracking"
)

// InvoiceService is the invoice ledger. Invoice numbers come from the same
// tracking scheme as ticket numbers; totals are recomputed from the line
// items rather than taken from the caller.
type InvoiceService struct {
	clients ClientLookup

	mu       sync.Mutex
	invoices []model.Invoice
}

func NewInvoiceService(clients ClientLookup) *InvoiceService {
	return &InvoiceService{clients: clients}
}

type InvoiceItemInput struct {
	ID       string
	Name     string
	Quantity int
	Price    model.Cents
}

type CreateInvoiceInput struct {
	Date     time.Time
	ClientID string
	Items    []InvoiceItemInput
	Status   model.InvoiceStatus
}

func (s *InvoiceService) Create(in CreateInvoiceInput) (*model.Invoice, error) {
	items, subtotal, err := buildInvoiceItems(in.Items)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = model.InvoiceStatusPending
	}
	if !model.ValidInvoiceStatus(status) {
		return nil, errs.Validationf("invalid invoice status %q", status)
	}
	if in.ClientID == "" {
		return nil, errs.Validationf("client id is required")
	}
	if !s.clients.Exists(in.ClientID) {
		return nil, errs.Referencef("client %s", in.ClientID)
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	number, err := s.nextNumberLocked()
	if err != nil {
		return nil, err
	}
	inv := model.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: number,
		Date:          date,
		ClientID:      in.ClientID,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           money.Tax(subtotal),
		Total:         money.GrandTotal(subtotal),
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
	s.invoices = append(s.invoices, inv)
	out := inv
	out.Items = append([]model.InvoiceItem(nil), inv.Items...)
	return &out, nil
}

func (s *InvoiceService) nextNumberLocked() (string, error) {
	for range trackingAttempts {
		n := tracking.Number(time.Now())
		taken := false
		for i := range s.invoices {
			if s.invoices[i].InvoiceNumber == n {
				taken = true
				break
			}
		}
		if !taken {
			return n, nil
		}
	}
	return "", errs.Collisionf("invoice number space exhausted after %d attempts", trackingAttempts)
}

type UpdateInvoiceInput struct {
	Date     *time.Time
	ClientID *string
	Items    *[]InvoiceItemInput
	Status   *model.InvoiceStatus
}

// Update merges into an existing invoice. Replacing the items recomputes
// subtotal, tax and total.
func (s *InvoiceService) Update(id string, in UpdateInvoiceInput) (*model.Invoice, error) {
	if in.Status != nil && !model.ValidInvoiceStatus(*in.Status) {
		return nil, errs.Validationf("invalid invoice status %q", *in.Status)
	}
	if in.ClientID != nil && !s.clients.Exists(*in.ClientID) {
		return nil, errs.Referencef("client %s", *in.ClientID)
	}
	var newItems []model.InvoiceItem
	var newSubtotal model.Cents
	if in.Items != nil {
		var err error
		newItems, newSubtotal, err = buildInvoiceItems(*in.Items)
		if err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}
		inv := &s.invoices[i]
		if in.Date != nil {
			inv.Date = *in.Date
		}
		if in.ClientID != nil {
			inv.ClientID = *in.ClientID
		}
		if in.Items != nil {
			inv.Items = newItems
			inv.Subtotal = newSubtotal
			inv.Tax = money.Tax(newSubtotal)
			inv.Total = money.GrandTotal(newSubtotal)
		}
		if in.Status != nil {
			inv.Status = *in.Status
		}
		out := *inv
		out.Items = append([]model.InvoiceItem(nil), inv.Items...)
		return &out, nil
	}
	return nil, errs.NotFoundf("invoice %s", id)
}

// UpdateStatus overwrites the status field only.
func (s *InvoiceService) UpdateStatus(id string, status model.InvoiceStatus) (*model.Invoice, error) {
	if !model.ValidInvoiceStatus(status) {
		return nil, errs.Validationf("invalid invoice status %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices[i].Status = status
			out := s.invoices[i]
			out.Items = append([]model.InvoiceItem(nil), s.invoices[i].Items...)
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("invoice %s", id)
}

func (s *InvoiceService) GetByID(id string) (*model.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			out := s.invoices[i]
			out.Items = append([]model.InvoiceItem(nil), s.invoices[i].Items...)
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("invoice %s", id)
}

func (s *InvoiceService) List() []model.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Invoice, 0, len(s.invoices))
	for i := range s.invoices {
		inv := s.invoices[i]
		inv.Items = append([]model.InvoiceItem(nil), s.invoices[i].Items...)
		out = append(out, inv)
	}
	return out
}

func buildInvoiceItems(in []InvoiceItemInput) ([]model.InvoiceItem, model.Cents, error) {
	if len(in) == 0 {
		return nil, 0, errs.Validationf("invoice needs at least one item")
	}
	items := make([]model.InvoiceItem, 0, len(in))
	lines := make([]money.Line, 0, len(in))
	for _, it := range in {
		if it.Name == "" {
			return nil, 0, errs.Validationf("item name is required")
		}
		if it.Quantity <= 0 {
			return nil, 0, errs.Validationf("item quantity must be positive")
		}
		if it.Price <= 0 {
			return nil, 0, errs.Validationf("item unit price must be positive")
		}
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, model.InvoiceItem{ID: id, Name: it.Name, Quantity: it.Quantity, Price: it.Price})
		lines = append(lines, money.Line{Quantity: it.Quantity, UnitPrice: it.Price})
	}
	return items, money.Subtotal(lines), nil
}
