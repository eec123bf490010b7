package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/repairshop-service/internal/kafka"
	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/searchindex"
	"github.com/psds-microservice/repairshop-service/internal/service"
)

type TicketHandler struct {
	svc      *service.TicketService
	search   *searchindex.Client
	producer kafka.EventProducer
}

func NewTicketHandler(svc *service.TicketService, search *searchindex.Client, producer kafka.EventProducer) *TicketHandler {
	return &TicketHandler{svc: svc, search: search, producer: producer}
}

type createTicketRequest struct {
	ClientID     string   `json:"client_id" binding:"required"`
	DeviceType   string   `json:"device_type" binding:"required"`
	Brand        string   `json:"brand" binding:"required"`
	Model        string   `json:"model" binding:"required"`
	Tasks        []string `json:"tasks"`
	Issue        string   `json:"issue"`
	Status       string   `json:"status"`
	CostCents    int64    `json:"cost_cents"`
	TechnicianID string   `json:"technician_id"`
	Passcode     string   `json:"passcode"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	t, err := h.svc.Create(service.CreateTicketInput{
		ClientID:     req.ClientID,
		DeviceType:   req.DeviceType,
		Brand:        req.Brand,
		Model:        req.Model,
		Tasks:        req.Tasks,
		Issue:        req.Issue,
		Status:       model.TicketStatus(req.Status),
		Cost:         model.Cents(req.CostCents),
		TechnicianID: req.TechnicianID,
		Passcode:     req.Passcode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.search.IndexTicketAsync(t)
	h.produce("ticket.created", t)
	// The ticket number is the customer's receipt of creation; surface it
	// next to the full record.
	c.JSON(http.StatusCreated, gin.H{
		"ticket_number": t.TicketNumber,
		"ticket":        t,
	})
}

func (h *TicketHandler) Get(c *gin.Context) {
	t, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) List(c *gin.Context) {
	status := model.TicketStatus(c.Query("status"))
	if status != "" && !model.ValidTicketStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}
	items := h.svc.List(status)
	c.JSON(http.StatusOK, gin.H{
		"tickets": items,
		"total":   len(items),
	})
}

type updateTicketRequest struct {
	ClientID     *string   `json:"client_id,omitempty"`
	DeviceType   *string   `json:"device_type,omitempty"`
	Brand        *string   `json:"brand,omitempty"`
	Model        *string   `json:"model,omitempty"`
	Tasks        *[]string `json:"tasks,omitempty"`
	Issue        *string   `json:"issue,omitempty"`
	Status       *string   `json:"status,omitempty"`
	CostCents    *int64    `json:"cost_cents,omitempty"`
	TechnicianID *string   `json:"technician_id,omitempty"`
	Passcode     *string   `json:"passcode,omitempty"`
}

func (h *TicketHandler) Update(c *gin.Context) {
	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	in := service.UpdateTicketInput{
		ClientID:     req.ClientID,
		DeviceType:   req.DeviceType,
		Brand:        req.Brand,
		Model:        req.Model,
		Tasks:        req.Tasks,
		Issue:        req.Issue,
		TechnicianID: req.TechnicianID,
		Passcode:     req.Passcode,
	}
	if req.Status != nil {
		s := model.TicketStatus(*req.Status)
		in.Status = &s
	}
	if req.CostCents != nil {
		cost := model.Cents(*req.CostCents)
		in.Cost = &cost
	}
	t, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	h.search.IndexTicketAsync(t)
	h.produce("ticket.updated", t)
	c.JSON(http.StatusOK, t)
}

// PopularTasks returns the top repair tasks by frequency, used by the intake
// form to pre-populate quick-select options.
func (h *TicketHandler) PopularTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": h.svc.PopularTasks()})
}

// produce fires a lifecycle event without blocking the response; the event
// should go out even if the request context is cancelled, but with a timeout.
func (h *TicketHandler) produce(event string, t *model.Ticket) {
	if h.producer == nil {
		return
	}
	payload := map[string]interface{}{
		"ticket_id":     t.ID,
		"ticket_number": t.TicketNumber,
		"client_id":     t.ClientID,
		"device_type":   t.DeviceType,
		"brand":         t.Brand,
		"model":         t.Model,
		"status":        string(t.Status),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.producer.ProduceEvent(ctx, event, payload)
	}()
}
