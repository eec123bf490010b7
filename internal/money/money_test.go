package money

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psds-microservice/repairshop-service/internal/model"
)

func TestTotals(t *testing.T) {
	// 2 x $10.00 + 1 x $25.00 = $45.00, 20% tax $9.00, total $54.00.
	lines := []Line{
		{Quantity: 2, UnitPrice: 1000},
		{Quantity: 1, UnitPrice: 2500},
	}
	subtotal := Subtotal(lines)
	assert.Equal(t, model.Cents(4500), subtotal)
	assert.Equal(t, model.Cents(900), Tax(subtotal))
	assert.Equal(t, model.Cents(5400), GrandTotal(subtotal))
}

func TestTotalsStableUnderRecomputation(t *testing.T) {
	lines := []Line{
		{Quantity: 2, UnitPrice: 1000},
		{Quantity: 1, UnitPrice: 2500},
	}
	for i := 0; i < 1000; i++ {
		subtotal := Subtotal(lines)
		assert.Equal(t, model.Cents(4500), subtotal)
		assert.Equal(t, model.Cents(900), Tax(subtotal))
		assert.Equal(t, model.Cents(5400), GrandTotal(subtotal))
	}
}

func TestTaxRoundsFractionalCents(t *testing.T) {
	// 20% of 4501 cents is 900.2 cents; whole-cent rounding applies.
	assert.Equal(t, model.Cents(900), Tax(4501))
	// 20% of 4503 cents is 900.6 cents.
	assert.Equal(t, model.Cents(901), Tax(4503))
}

func TestSubtotalEmpty(t *testing.T) {
	assert.Equal(t, model.Cents(0), Subtotal(nil))
	assert.Equal(t, model.Cents(0), GrandTotal(0))
}
