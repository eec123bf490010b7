package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
	"github.com/psds-microservice/repairshop-service/internal/tracking"
)

// popularTaskLimit caps the popular-tasks query; the intake form shows six
// quick-select buttons.
const popularTaskLimit = 6

// TicketService tracks repair tickets. Creation validates the client
// reference against the registry and assigns a tracking number; the number,
// not the internal id, is the caller-visible receipt of creation.
type TicketService struct {
	clients ClientLookup

	mu      sync.Mutex
	tickets []model.Ticket
}

func NewTicketService(clients ClientLookup) *TicketService {
	return &TicketService{clients: clients}
}

type CreateTicketInput struct {
	ClientID     string
	DeviceType   string
	Brand        string
	Model        string
	Tasks        []string
	Issue        string
	Status       model.TicketStatus
	Cost         model.Cents
	TechnicianID string
	Passcode     string
}

func (s *TicketService) Create(in CreateTicketInput) (*model.Ticket, error) {
	if in.DeviceType == "" || in.Brand == "" || in.Model == "" {
		return nil, errs.Validationf("device type, brand and model are required")
	}
	if in.Cost < 0 {
		return nil, errs.Validationf("cost cannot be negative")
	}
	status := in.Status
	if status == "" {
		status = model.TicketStatusPending
	}
	if !model.ValidTicketStatus(status) {
		return nil, errs.Validationf("invalid ticket status %q", status)
	}
	if in.ClientID == "" {
		return nil, errs.Validationf("client id is required")
	}
	if !s.clients.Exists(in.ClientID) {
		return nil, errs.Referencef("client %s", in.ClientID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	number, err := s.nextNumberLocked()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t := model.Ticket{
		ID:           uuid.NewString(),
		TicketNumber: number,
		ClientID:     in.ClientID,
		DeviceType:   in.DeviceType,
		Brand:        in.Brand,
		Model:        in.Model,
		Tasks:        append([]string(nil), in.Tasks...),
		Issue:        in.Issue,
		Status:       status,
		Cost:         in.Cost,
		TechnicianID: in.TechnicianID,
		Passcode:     in.Passcode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.tickets = append(s.tickets, t)
	out := t
	out.Tasks = append([]string(nil), t.Tasks...)
	return &out, nil
}

// nextNumberLocked generates a tracking number that is not yet in use,
// retrying a bounded number of times. Generation and the uniqueness check sit
// inside the store's critical section, so two concurrent creates cannot race
// into the same number.
func (s *TicketService) nextNumberLocked() (string, error) {
	for range trackingAttempts {
		n := tracking.Number(time.Now())
		taken := false
		for i := range s.tickets {
			if s.tickets[i].TicketNumber == n {
				taken = true
				break
			}
		}
		if !taken {
			return n, nil
		}
	}
	return "", errs.Collisionf("ticket number space exhausted after %d attempts", trackingAttempts)
}

// UpdateTicketInput merges into an existing ticket; nil fields are left
// untouched. Any update refreshes UpdatedAt regardless of which fields
// changed.
type UpdateTicketInput struct {
	ClientID     *string
	DeviceType   *string
	Brand        *string
	Model        *string
	Tasks        *[]string
	Issue        *string
	Status       *model.TicketStatus
	Cost         *model.Cents
	TechnicianID *string
	Passcode     *string
}

func (s *TicketService) Update(id string, in UpdateTicketInput) (*model.Ticket, error) {
	if in.Status != nil && !model.ValidTicketStatus(*in.Status) {
		return nil, errs.Validationf("invalid ticket status %q", *in.Status)
	}
	if in.Cost != nil && *in.Cost < 0 {
		return nil, errs.Validationf("cost cannot be negative")
	}
	if in.ClientID != nil && !s.clients.Exists(*in.ClientID) {
		return nil, errs.Referencef("client %s", *in.ClientID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID != id {
			continue
		}
		t := &s.tickets[i]
		if in.ClientID != nil {
			t.ClientID = *in.ClientID
		}
		if in.DeviceType != nil {
			t.DeviceType = *in.DeviceType
		}
		if in.Brand != nil {
			t.Brand = *in.Brand
		}
		if in.Model != nil {
			t.Model = *in.Model
		}
		if in.Tasks != nil {
			t.Tasks = append([]string(nil), (*in.Tasks)...)
		}
		if in.Issue != nil {
			t.Issue = *in.Issue
		}
		if in.Status != nil {
			t.Status = *in.Status
		}
		if in.Cost != nil {
			t.Cost = *in.Cost
		}
		if in.TechnicianID != nil {
			t.TechnicianID = *in.TechnicianID
		}
		if in.Passcode != nil {
			t.Passcode = *in.Passcode
		}
		t.UpdatedAt = time.Now().UTC()
		out := *t
		out.Tasks = append([]string(nil), t.Tasks...)
		return &out, nil
	}
	return nil, errs.NotFoundf("ticket %s", id)
}

func (s *TicketService) GetByID(id string) (*model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			out := s.tickets[i]
			out.Tasks = append([]string(nil), s.tickets[i].Tasks...)
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("ticket %s", id)
}

// List returns tickets in insertion order, optionally filtered by status
// (empty status means all).
func (s *TicketService) List(status model.TicketStatus) []model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Ticket, 0, len(s.tickets))
	for i := range s.tickets {
		if status != "" && s.tickets[i].Status != status {
			continue
		}
		t := s.tickets[i]
		t.Tasks = append([]string(nil), s.tickets[i].Tasks...)
		out = append(out, t)
	}
	return out
}

// PopularTasks counts task frequency across all tickets and returns the top
// six by descending count. Ties keep the order in which tasks were first seen
// during the scan.
func (s *TicketService) PopularTasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int)
	var seen []string
	for i := range s.tickets {
		for _, task := range s.tickets[i].Tasks {
			if _, ok := counts[task]; !ok {
				seen = append(seen, task)
			}
			counts[task]++
		}
	}
	sort.SliceStable(seen, func(a, b int) bool {
		return counts[seen[a]] > counts[seen[b]]
	})
	if len(seen) > popularTaskLimit {
		seen = seen[:popularTaskLimit]
	}
	return seen
}

// CountByStatus is a dashboard read: how many tickets currently carry the
// given status.
func (s *TicketService) CountByStatus(status model.TicketStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.tickets {
		if s.tickets[i].Status == status {
			n++
		}
	}
	return n
}
