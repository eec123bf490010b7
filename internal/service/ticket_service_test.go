package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
)

type stubClients struct {
	ids map[string]bool
}

func (s stubClients) Exists(id string) bool { return s.ids[id] }

func newStubClients(ids ...string) stubClients {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return stubClients{ids: m}
}

func TestTicketCreateAssignsTrackingNumber(t *testing.T) {
	svc := NewTicketService(newStubClients("c1"))

	ticket, err := svc.Create(CreateTicketInput{
		ClientID:   "c1",
		DeviceType: "Mobile",
		Brand:      "Apple",
		Model:      "iPhone 14",
		Tasks:      []string{"Screen Replacement"},
		Issue:      "Cracked screen",
		Cost:       15000,
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[a-z]{3}\d{4}$`), ticket.TicketNumber)
	assert.Equal(t, model.TicketStatusPending, ticket.Status, "status defaults to pending")
	assert.Equal(t, ticket.CreatedAt, ticket.UpdatedAt)
	assert.False(t, ticket.CreatedAt.IsZero())
}

func TestTicketCreateRejectsUnknownClient(t *testing.T) {
	svc := NewTicketService(newStubClients())
	_, err := svc.Create(CreateTicketInput{
		ClientID:   "ghost",
		DeviceType: "Mobile",
		Brand:      "Apple",
		Model:      "iPhone 14",
	})
	assert.ErrorIs(t, err, errs.ErrReference)
}

func TestTicketCreateValidation(t *testing.T) {
	svc := NewTicketService(newStubClients("c1"))

	_, err := svc.Create(CreateTicketInput{ClientID: "c1", Brand: "Apple", Model: "iPhone 14"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(CreateTicketInput{ClientID: "c1", DeviceType: "Mobile", Brand: "Apple", Model: "iPhone 14", Cost: -1})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(CreateTicketInput{ClientID: "c1", DeviceType: "Mobile", Brand: "Apple", Model: "iPhone 14", Status: "done"})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestTicketUpdateBumpsUpdatedAt(t *testing.T) {
	svc := NewTicketService(newStubClients("c1"))
	ticket, err := svc.Create(CreateTicketInput{
		ClientID:   "c1",
		DeviceType: "Mobile",
		Brand:      "Apple",
		Model:      "iPhone 14",
	})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	status := model.TicketStatusInProgress
	updated, err := svc.Update(ticket.ID, UpdateTicketInput{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.TicketStatusInProgress, updated.Status)
	assert.True(t, updated.UpdatedAt.After(ticket.UpdatedAt))
	assert.Equal(t, ticket.CreatedAt, updated.CreatedAt)
}

func TestTicketUpdateRejectsInvalidStatus(t *testing.T) {
	svc := NewTicketService(newStubClients("c1"))
	ticket, err := svc.Create(CreateTicketInput{ClientID: "c1", DeviceType: "Mobile", Brand: "Apple", Model: "iPhone 14"})
	require.NoError(t, err)

	bad := model.TicketStatus("shipped")
	_, err = svc.Update(ticket.ID, UpdateTicketInput{Status: &bad})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestTicketListFiltersByStatus(t *testing.T) {
	svc := NewTicketService(newStubClients("c1"))
	for _, status := range []model.TicketStatus{model.TicketStatusPending, model.TicketStatusCompleted, model.TicketStatusPending} {
		_, err := svc.Create(CreateTicketInput{
			ClientID:   "c1",
			DeviceType: "Mobile",
			Brand:      "Apple",
			Model:      "iPhone 14",
			Status:     status,
		})
		require.NoError(t, err)
	}

	assert.Len(t, svc.List(""), 3)
	assert.Len(t, svc.List(model.TicketStatusPending), 2)
	assert.Len(t, svc.List(model.TicketStatusCompleted), 1)
	assert.Equal(t, 2, svc.CountByStatus(model.TicketStatusPending))
}

func TestPopularTasksOrderAndLimit(t *testing.T) {
	svc := NewTicketService(newStubClients("c1"))
	add := func(tasks ...string) {
		_, err := svc.Create(CreateTicketInput{
			ClientID:   "c1",
			DeviceType: "Mobile",
			Brand:      "Apple",
			Model:      "iPhone 14",
			Tasks:      tasks,
		})
		require.NoError(t, err)
	}
	add("Screen", "Battery")
	add("Screen", "Camera")
	add("Screen", "Battery", "Charging Port")
	add("Water Damage", "Speaker", "Microphone", "Back Glass")

	top := svc.PopularTasks()
	require.Len(t, top, 6, "capped at six even with eight distinct tasks")
	assert.Equal(t, "Screen", top[0])
	assert.Equal(t, "Battery", top[1])
	// Remaining tasks all count 1; ties keep first-seen order.
	assert.Equal(t, []string{"Camera", "Charging Port", "Water Damage", "Speaker"}, top[2:])
}

func TestTicketGetByIDNotFound(t *testing.T) {
	svc := NewTicketService(newStubClients("c1"))
	_, err := svc.GetByID("missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
