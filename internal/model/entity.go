package model

import "time"

// Cents is a monetary amount in integer minor units. All money in the core is
// carried as cents; conversion to display units happens at presentation
// boundaries only.
type Cents int64

type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusCompleted  TicketStatus = "completed"
)

// ValidTicketStatus reports whether s is one of the known ticket statuses.
// There is no transition graph: any valid status may be written directly.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusPending, TicketStatusInProgress, TicketStatusCompleted:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReadyForPickup,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusCompleted InvoiceStatus = "completed"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusCompleted, InvoiceStatusCancelled:
		return true
	}
	return false
}

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DeviceModel is a device model entry in the catalog. BrandID is the brand's
// display string, not a separate stable identifier: renaming a brand rewrites
// BrandID on every model referencing it.
type DeviceModel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BrandID string `json:"brand_id"`
}

// Catalog is the controlled vocabulary used to classify tickets. Device types,
// brands and tasks are plain string sets; models reference brands by value.
type Catalog struct {
	DeviceTypes []string      `json:"device_types"`
	Brands      []string      `json:"brands"`
	Models      []DeviceModel `json:"models"`
	Tasks       []string      `json:"tasks"`
}

// Ticket is one repair job. DeviceType/Brand/Model are denormalized strings
// out of the catalog; catalog renames and deletes do not touch them.
type Ticket struct {
	ID           string       `json:"id"`
	TicketNumber string       `json:"ticket_number"`
	ClientID     string       `json:"client_id"`
	DeviceType   string       `json:"device_type"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Tasks        []string     `json:"tasks"`
	Issue        string       `json:"issue,omitempty"`
	Status       TicketStatus `json:"status"`
	Cost         Cents        `json:"cost_cents"`
	TechnicianID string       `json:"technician_id,omitempty"`
	Passcode     string       `json:"passcode,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Price       Cents  `json:"price_cents"`
	Stock       int    `json:"stock"`
	SKU         string `json:"sku,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// CartItem is one cart line. The cart keeps a single entry per product;
// re-adding a product replaces its quantity.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order is a point-of-sale transaction. Items are copied from the cart at
// creation time; Total is fixed at creation.
type Order struct {
	ID        string      `json:"id"`
	Items     []CartItem  `json:"items"`
	Total     Cents       `json:"total_cents"`
	Status    OrderStatus `json:"status"`
	ClientID  string      `json:"client_id"`
	CreatedAt time.Time   `json:"created_at"`
}

type InvoiceItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    Cents  `json:"price_cents"`
}

type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	Date          time.Time     `json:"date"`
	ClientID      string        `json:"client_id"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      Cents         `json:"subtotal_cents"`
	Tax           Cents         `json:"tax_cents"`
	Total         Cents         `json:"total_cents"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
