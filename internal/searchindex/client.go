package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/psds-microservice/repairshop-service/internal/model"
)

// Client pushes tickets to the search service for indexing so the front desk
// can find a repair by tracking number, device or issue text. Best-effort: it
// never blocks or fails the API call that triggered it.
type Client struct {
	baseURL    string
	log        *zap.Logger
	httpClient *http.Client
}

// NewClient returns a client. With an empty baseURL all calls are no-ops.
func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		log:     log,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// IndexTicketPayload is the body of POST /search/index/ticket.
type IndexTicketPayload struct {
	TicketID     string `json:"ticket_id"`
	TicketNumber string `json:"ticket_number"`
	ClientID     string `json:"client_id"`
	DeviceType   string `json:"device_type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Issue        string `json:"issue"`
	Status       string `json:"status"`
}

func (c *Client) IndexTicket(ctx context.Context, t *model.Ticket) {
	if c.baseURL == "" {
		return
	}
	payload := IndexTicketPayload{
		TicketID:     t.ID,
		TicketNumber: t.TicketNumber,
		ClientID:     t.ClientID,
		DeviceType:   t.DeviceType,
		Brand:        t.Brand,
		Model:        t.Model,
		Issue:        t.Issue,
		Status:       string(t.Status),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Warn("searchindex: marshal", zap.Error(err))
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search/index/ticket", bytes.NewReader(body))
	if err != nil {
		c.log.Warn("searchindex: new request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("searchindex: request", zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("searchindex: unexpected status",
			zap.Int("status", resp.StatusCode), zap.String("ticket_id", t.ID))
	}
}

// IndexTicketAsync runs IndexTicket in its own goroutine so the API response
// is never delayed by indexing.
func (c *Client) IndexTicketAsync(t *model.Ticket) {
	if c.baseURL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.IndexTicket(ctx, t)
	}()
}
