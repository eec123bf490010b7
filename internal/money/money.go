// Package money implements order and invoice total arithmetic on integer
// cents. The tax computation goes through shopspring/decimal so repeated
// recomputation cannot drift the way float math would.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/psds-microservice/repairshop-service/internal/model"
)

// TaxRate is the fixed VAT rate applied to order and invoice subtotals.
var TaxRate = decimal.New(20, -2) // 0.20

// Line is a (quantity, unit price) pair; orders and invoices both reduce to
// this shape for total computation.
type Line struct {
	Quantity  int
	UnitPrice model.Cents
}

// Subtotal is the sum of quantity x unit price over all lines.
func Subtotal(lines []Line) model.Cents {
	var sum model.Cents
	for _, l := range lines {
		sum += model.Cents(int64(l.Quantity) * int64(l.UnitPrice))
	}
	return sum
}

// Tax applies TaxRate to a subtotal, rounding half away from zero to whole
// cents.
func Tax(subtotal model.Cents) model.Cents {
	t := decimal.NewFromInt(int64(subtotal)).Mul(TaxRate).Round(0)
	return model.Cents(t.IntPart())
}

// GrandTotal is subtotal plus tax.
func GrandTotal(subtotal model.Cents) model.Cents {
	return subtotal + Tax(subtotal)
}
