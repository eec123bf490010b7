package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
)

func TestProductCreateAndLookup(t *testing.T) {
	svc := NewProductService()
	p, err := svc.Create(CreateProductInput{Name: "Phone Case", Category: "Accessories", Price: 1999, Stock: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)
	assert.True(t, svc.Exists(p.ID))
	assert.False(t, svc.Exists("nope"))
}

func TestProductCreateValidation(t *testing.T) {
	svc := NewProductService()

	_, err := svc.Create(CreateProductInput{Price: 100})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(CreateProductInput{Name: "Cable", Price: -1})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestAdjustStockAllowsNegative(t *testing.T) {
	svc := NewProductService()
	p, err := svc.Create(CreateProductInput{Name: "Screen Protector", Price: 999, Stock: 5})
	require.NoError(t, err)

	after, err := svc.AdjustStock(p.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Stock)

	after, err = svc.AdjustStock(p.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, -8, after.Stock, "stock is not clamped at zero")
}

func TestAdjustStockNotFound(t *testing.T) {
	svc := NewProductService()
	_, err := svc.AdjustStock("missing", 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProductUpdateMergesFields(t *testing.T) {
	svc := NewProductService()
	p, err := svc.Create(CreateProductInput{Name: "Charger", Price: 2500, Stock: 4})
	require.NoError(t, err)

	price := model.Cents(2999)
	updated, err := svc.Update(p.ID, UpdateProductInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, model.Cents(2999), updated.Price)
	assert.Equal(t, "Charger", updated.Name)
	assert.Equal(t, 4, updated.Stock)
}

func TestCountLowStock(t *testing.T) {
	svc := NewProductService()
	for _, stock := range []int{0, 3, 5, 12} {
		_, err := svc.Create(CreateProductInput{Name: "P", Price: 100, Stock: stock})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, svc.CountLowStock(5))
}
