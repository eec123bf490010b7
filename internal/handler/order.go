package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/repairshop-service/internal/kafka"
	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/receipt"
	"github.com/psds-microservice/repairshop-service/internal/service"
)

type OrderHandler struct {
	svc      *service.OrderService
	clients  *service.ClientService
	products *service.ProductService
	producer kafka.EventProducer
}

func NewOrderHandler(svc *service.OrderService, clients *service.ClientService, products *service.ProductService, producer kafka.EventProducer) *OrderHandler {
	return &OrderHandler{svc: svc, clients: clients, products: products, producer: producer}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (h *OrderHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := h.svc.AddToCart(req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": h.svc.Cart()})
}

func (h *OrderHandler) RemoveFromCart(c *gin.Context) {
	if err := h.svc.RemoveFromCart(c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": h.svc.Cart()})
}

func (h *OrderHandler) ClearCart(c *gin.Context) {
	h.svc.ClearCart()
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": h.svc.Cart()})
}

type createOrderRequest struct {
	ClientID   string `json:"client_id" binding:"required"`
	TotalCents int64  `json:"total_cents" binding:"required"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	o, err := h.svc.CreateOrder(req.ClientID, model.Cents(req.TotalCents))
	if err != nil {
		respondError(c, err)
		return
	}
	h.produce("order.created", o)
	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) List(c *gin.Context) {
	status := model.OrderStatus(c.Query("status"))
	if status != "" && !model.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}
	items := h.svc.List(status)
	c.JSON(http.StatusOK, gin.H{
		"orders": items,
		"total":  len(items),
	})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	o, err := h.svc.UpdateStatus(c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	h.produce("order.status_changed", o)
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.Remove(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Receipt returns the flattened printable view of an order: customer block,
// joined line items, derived subtotal and tax, stored total.
func (h *OrderHandler) Receipt(c *gin.Context) {
	o, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt.FromOrder(o, h.clients, h.products))
}

func (h *OrderHandler) produce(event string, o *model.Order) {
	if h.producer == nil {
		return
	}
	payload := map[string]interface{}{
		"order_id":    o.ID,
		"client_id":   o.ClientID,
		"status":      string(o.Status),
		"total_cents": int64(o.Total),
		"items":       len(o.Items),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.producer.ProduceEvent(ctx, event, payload)
	}()
}
