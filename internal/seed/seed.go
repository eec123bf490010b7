// Package seed loads the demo dataset: a handful of clients, the default
// device taxonomy, sample tickets, products, orders and invoices. Everything
// goes through the regular store operations so tracking numbers, totals and
// timestamps come out the same way real traffic produces them.
package seed

import (
	"fmt"

	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/money"
	"github.com/psds-microservice/repairshop-service/internal/service"
)

type Stores struct {
	Clients  *service.ClientService
	Catalog  *service.CatalogService
	Tickets  *service.TicketService
	Products *service.ProductService
	Orders   *service.OrderService
	Invoices *service.InvoiceService
}

func Load(s Stores) error {
	for _, t := range []string{"Mobile", "Tablet", "PC", "Console"} {
		if err := s.Catalog.AddDeviceType(t); err != nil {
			return err
		}
	}
	for _, b := range []string{"Apple", "Samsung", "Huawei"} {
		if err := s.Catalog.AddBrand(b); err != nil {
			return err
		}
	}
	if _, err := s.Catalog.AddModel("iPhone 14", "Apple"); err != nil {
		return err
	}
	if _, err := s.Catalog.AddModel("Galaxy S23", "Samsung"); err != nil {
		return err
	}
	for _, t := range []string{"Battery", "Screen", "Motherboard", "Software", "Camera", "Speaker"} {
		if err := s.Catalog.AddTask(t); err != nil {
			return err
		}
	}

	clients := []service.CreateClientInput{
		{Name: "John Doe", Email: "john.doe@example.com", Phone: "123-456-7890", Address: "123 Main St"},
		{Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "987-654-3210", Address: "456 Elm St"},
		{Name: "Robert Jones", Email: "robert.jones@example.com", Phone: "555-123-4567", Address: "789 Oak St"},
	}
	clientIDs := make([]string, 0, len(clients))
	for _, in := range clients {
		c, err := s.Clients.Create(in)
		if err != nil {
			return fmt.Errorf("seed client: %w", err)
		}
		clientIDs = append(clientIDs, c.ID)
	}

	tickets := []service.CreateTicketInput{
		{
			ClientID: clientIDs[0], DeviceType: "Mobile", Brand: "Apple", Model: "iPhone 14",
			Tasks: []string{"Screen Replacement"}, Issue: "Cracked screen",
			Status: model.TicketStatusInProgress, Cost: 15000, TechnicianID: "1",
		},
		{
			ClientID: clientIDs[1], DeviceType: "Tablet", Brand: "Samsung", Model: "Galaxy Tab S8",
			Tasks: []string{"Battery Replacement"}, Issue: "Battery draining quickly",
			Status: model.TicketStatusPending, Cost: 10000, TechnicianID: "2",
		},
		{
			ClientID: clientIDs[2], DeviceType: "PC", Brand: "Dell", Model: "XPS 13",
			Tasks: []string{"Software Installation"}, Issue: "Operating system not booting",
			Status: model.TicketStatusCompleted, Cost: 5000, TechnicianID: "1",
		},
	}
	for _, in := range tickets {
		if _, err := s.Tickets.Create(in); err != nil {
			return fmt.Errorf("seed ticket: %w", err)
		}
	}

	products := []service.CreateProductInput{
		{Name: "iPhone 14", Category: "Phones", Price: 99900, Stock: 10, SKU: "IP14-128",
			Description: "The latest iPhone with a stunning display and powerful camera."},
		{Name: "Samsung Galaxy Tab S8", Category: "Tablets", Price: 79900, Stock: 5, SKU: "SGT-S8",
			Description: "A powerful tablet for work and play."},
		{Name: "Dell XPS 13", Category: "Laptops", Price: 129900, Stock: 8, SKU: "DXPS13",
			Description: "A lightweight and powerful laptop for professionals."},
	}
	productIDs := make([]string, 0, len(products))
	for _, in := range products {
		p, err := s.Products.Create(in)
		if err != nil {
			return fmt.Errorf("seed product: %w", err)
		}
		productIDs = append(productIDs, p.ID)
	}

	sampleOrders := []struct {
		client string
		items  map[string]int
	}{
		{clientIDs[0], map[string]int{productIDs[0]: 1}},
		{clientIDs[1], map[string]int{productIDs[1]: 1}},
		{clientIDs[0], map[string]int{productIDs[0]: 2, productIDs[1]: 1}},
	}
	for _, so := range sampleOrders {
		var lines []money.Line
		for pid, qty := range so.items {
			if err := s.Orders.AddToCart(pid, qty); err != nil {
				return fmt.Errorf("seed cart: %w", err)
			}
			p, err := s.Products.GetByID(pid)
			if err != nil {
				return err
			}
			lines = append(lines, money.Line{Quantity: qty, UnitPrice: p.Price})
		}
		total := money.GrandTotal(money.Subtotal(lines))
		if _, err := s.Orders.CreateOrder(so.client, total); err != nil {
			return fmt.Errorf("seed order: %w", err)
		}
	}

	invoices := []service.CreateInvoiceInput{
		{
			ClientID: clientIDs[0],
			Items: []service.InvoiceItemInput{
				{Name: "Product 1", Quantity: 1, Price: 10000},
				{Name: "Product 2", Quantity: 2, Price: 5000},
			},
		},
		{
			ClientID: clientIDs[1],
			Items: []service.InvoiceItemInput{
				{Name: "Product 3", Quantity: 1, Price: 20000},
			},
			Status: model.InvoiceStatusCompleted,
		},
	}
	for _, in := range invoices {
		if _, err := s.Invoices.Create(in); err != nil {
			return fmt.Errorf("seed invoice: %w", err)
		}
	}
	return nil
}
