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

func TestInvoiceCreateComputesTotals(t *testing.T) {
	svc := NewInvoiceService(newStubClients("c1"))

	inv, err := svc.Create(CreateInvoiceInput{
		ClientID: "c1",
		Items: []InvoiceItemInput{
			{Name: "Screen Replacement", Quantity: 2, Price: 1000},
			{Name: "Diagnostic", Quantity: 1, Price: 2500},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[a-z]{3}\d{4}$`), inv.InvoiceNumber)
	assert.Equal(t, model.Cents(4500), inv.Subtotal)
	assert.Equal(t, model.Cents(900), inv.Tax)
	assert.Equal(t, model.Cents(5400), inv.Total)
	assert.Equal(t, model.InvoiceStatusPending, inv.Status)
	assert.False(t, inv.Date.IsZero(), "date defaults to now")
	require.Len(t, inv.Items, 2)
	assert.NotEmpty(t, inv.Items[0].ID, "items get ids assigned")
}

func TestInvoiceCreateValidation(t *testing.T) {
	svc := NewInvoiceService(newStubClients("c1"))

	_, err := svc.Create(CreateInvoiceInput{ClientID: "c1"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(CreateInvoiceInput{ClientID: "c1", Items: []InvoiceItemInput{{Quantity: 1, Price: 100}}})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(CreateInvoiceInput{ClientID: "c1", Items: []InvoiceItemInput{{Name: "X", Quantity: 0, Price: 100}}})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(CreateInvoiceInput{ClientID: "c1", Items: []InvoiceItemInput{{Name: "X", Quantity: 1, Price: 0}}})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(CreateInvoiceInput{
		ClientID: "ghost",
		Items:    []InvoiceItemInput{{Name: "X", Quantity: 1, Price: 100}},
	})
	assert.ErrorIs(t, err, errs.ErrReference)
}

func TestInvoiceUpdateRecomputesTotals(t *testing.T) {
	svc := NewInvoiceService(newStubClients("c1"))
	inv, err := svc.Create(CreateInvoiceInput{
		ClientID: "c1",
		Items:    []InvoiceItemInput{{Name: "Battery", Quantity: 1, Price: 3000}},
	})
	require.NoError(t, err)

	items := []InvoiceItemInput{{Name: "Battery", Quantity: 2, Price: 3000}}
	updated, err := svc.Update(inv.ID, UpdateInvoiceInput{Items: &items})
	require.NoError(t, err)

	assert.Equal(t, model.Cents(6000), updated.Subtotal)
	assert.Equal(t, model.Cents(1200), updated.Tax)
	assert.Equal(t, model.Cents(7200), updated.Total)
	assert.Equal(t, inv.InvoiceNumber, updated.InvoiceNumber, "number survives updates")
}

func TestInvoiceUpdateMergesFields(t *testing.T) {
	svc := NewInvoiceService(newStubClients("c1", "c2"))
	inv, err := svc.Create(CreateInvoiceInput{
		ClientID: "c1",
		Items:    []InvoiceItemInput{{Name: "Battery", Quantity: 1, Price: 3000}},
	})
	require.NoError(t, err)

	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	client := "c2"
	updated, err := svc.Update(inv.ID, UpdateInvoiceInput{Date: &date, ClientID: &client})
	require.NoError(t, err)
	assert.Equal(t, date, updated.Date)
	assert.Equal(t, "c2", updated.ClientID)
	assert.Equal(t, inv.Total, updated.Total, "totals untouched when items are not replaced")
}

func TestInvoiceUpdateStatus(t *testing.T) {
	svc := NewInvoiceService(newStubClients("c1"))
	inv, err := svc.Create(CreateInvoiceInput{
		ClientID: "c1",
		Items:    []InvoiceItemInput{{Name: "Battery", Quantity: 1, Price: 3000}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(inv.ID, model.InvoiceStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(inv.ID, "void")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.UpdateStatus("missing", model.InvoiceStatusCompleted)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestInvoiceList(t *testing.T) {
	svc := NewInvoiceService(newStubClients("c1"))
	for i := 0; i < 2; i++ {
		_, err := svc.Create(CreateInvoiceInput{
			ClientID: "c1",
			Items:    []InvoiceItemInput{{Name: "Battery", Quantity: 1, Price: 3000}},
		})
		require.NoError(t, err)
	}
	assert.Len(t, svc.List(), 2)
}
