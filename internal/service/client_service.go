package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
)

// ClientService is the client registry. Clients are never deleted; records
// keep their insertion order.
type ClientService struct {
	mu      sync.Mutex
	clients []model.Client
}

func NewClientService() *ClientService {
	return &ClientService{}
}

type CreateClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (s *ClientService) Create(in CreateClientInput) (*model.Client, error) {
	if in.Name == "" {
		return nil, errs.Validationf("client name is required")
	}
	if in.Phone == "" {
		return nil, errs.Validationf("client phone is required")
	}
	c := model.Client{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.clients = append(s.clients, c)
	s.mu.Unlock()
	return &c, nil
}

// UpdateClientInput merges into an existing record; nil fields are left
// untouched.
type UpdateClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (s *ClientService) Update(id string, in UpdateClientInput) (*model.Client, error) {
	if in.Name != nil && *in.Name == "" {
		return nil, errs.Validationf("client name cannot be cleared")
	}
	if in.Phone != nil && *in.Phone == "" {
		return nil, errs.Validationf("client phone cannot be cleared")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		c := &s.clients[i]
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Email != nil {
			c.Email = *in.Email
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		if in.Address != nil {
			c.Address = *in.Address
		}
		out := *c
		return &out, nil
	}
	return nil, errs.NotFoundf("client %s", id)
}

func (s *ClientService) GetByID(id string) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			out := s.clients[i]
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("client %s", id)
}

func (s *ClientService) Exists(id string) bool {
	_, err := s.GetByID(id)
	return err == nil
}

func (s *ClientService) List() []model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Client, len(s.clients))
	copy(out, s.clients)
	return out
}
