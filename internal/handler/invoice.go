package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/receipt"
	"github.com/psds-microservice/repairshop-service/internal/service"
)

type InvoiceHandler struct {
	svc     *service.InvoiceService
	clients *service.ClientService
}

func NewInvoiceHandler(svc *service.InvoiceService, clients *service.ClientService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, clients: clients}
}

type invoiceItemRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required"`
}

type createInvoiceRequest struct {
	Date     string               `json:"date"`
	ClientID string               `json:"client_id" binding:"required"`
	Items    []invoiceItemRequest `json:"items" binding:"required"`
	Status   string               `json:"status"`
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC3339"})
			return
		}
	}
	inv, err := h.svc.Create(service.CreateInvoiceInput{
		Date:     date,
		ClientID: req.ClientID,
		Items:    toItemInputs(req.Items),
		Status:   model.InvoiceStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices := h.svc.List()
	c.JSON(http.StatusOK, gin.H{
		"invoices": invoices,
		"total":    len(invoices),
	})
}

type updateInvoiceRequest struct {
	Date     *string               `json:"date,omitempty"`
	ClientID *string               `json:"client_id,omitempty"`
	Items    *[]invoiceItemRequest `json:"items,omitempty"`
	Status   *string               `json:"status,omitempty"`
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	var in service.UpdateInvoiceInput
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC3339"})
			return
		}
		in.Date = &date
	}
	in.ClientID = req.ClientID
	if req.Items != nil {
		items := toItemInputs(*req.Items)
		in.Items = &items
	}
	if req.Status != nil {
		s := model.InvoiceStatus(*req.Status)
		in.Status = &s
	}
	inv, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

type updateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	var req updateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	inv, err := h.svc.UpdateStatus(c.Param("id"), model.InvoiceStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Receipt returns the flattened printable view of an invoice.
func (h *InvoiceHandler) Receipt(c *gin.Context) {
	inv, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt.FromInvoice(inv, h.clients))
}

func toItemInputs(items []invoiceItemRequest) []service.InvoiceItemInput {
	out := make([]service.InvoiceItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, service.InvoiceItemInput{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    model.Cents(it.PriceCents),
		})
	}
	return out
}
