package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/repairshop-service/internal/errs"
)

func TestClientCreateAndLookup(t *testing.T) {
	svc := NewClientService()

	c, err := svc.Create(CreateClientInput{
		Name:    "John Doe",
		Email:   "john.doe@example.com",
		Phone:   "123-456-7890",
		Address: "123 Main St",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	got, err := svc.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, *c, *got)
}

func TestClientCreateValidation(t *testing.T) {
	svc := NewClientService()

	_, err := svc.Create(CreateClientInput{Phone: "123"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(CreateClientInput{Name: "Jane"})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestClientUpdateMergesFields(t *testing.T) {
	svc := NewClientService()
	c, err := svc.Create(CreateClientInput{Name: "Jane Smith", Phone: "987-654-3210"})
	require.NoError(t, err)

	email := "jane.smith@example.com"
	updated, err := svc.Update(c.ID, UpdateClientInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "jane.smith@example.com", updated.Email)
	assert.Equal(t, "Jane Smith", updated.Name, "untouched fields survive the merge")
	assert.Equal(t, "987-654-3210", updated.Phone)
}

func TestClientUpdateNotFound(t *testing.T) {
	svc := NewClientService()
	name := "x"
	_, err := svc.Update("missing", UpdateClientInput{Name: &name})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestClientListInsertionOrder(t *testing.T) {
	svc := NewClientService()
	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(CreateClientInput{Name: name, Phone: "1"})
		require.NoError(t, err)
	}
	list := svc.List()
	require.Len(t, list, 3)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "C", list[2].Name)
}
