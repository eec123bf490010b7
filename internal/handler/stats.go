package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/service"
)

// lowStockThreshold is the dashboard's cutoff for flagging products that
// need restocking.
const lowStockThreshold = 5

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	tickets  *service.TicketService
	products *service.ProductService
}

func NewStatsHandler(tickets *service.TicketService, products *service.ProductService) *StatsHandler {
	return &StatsHandler{tickets: tickets, products: products}
}

func (h *StatsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pending_tickets":    h.tickets.CountByStatus(model.TicketStatusPending),
		"completed_tickets":  h.tickets.CountByStatus(model.TicketStatusCompleted),
		"low_stock_products": h.products.CountLowStock(lowStockThreshold),
	})
}
