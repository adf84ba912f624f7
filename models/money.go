package models

import "github.com/shopspring/decimal"

// MoneyPlaces is the scale of every stored amount.
const MoneyPlaces = 2

var (
	// MaxPrice fits NUMERIC(10,2).
	MaxPrice = decimal.RequireFromString("99999999.99")
	// MaxTotal fits NUMERIC(12,2).
	MaxTotal = decimal.RequireFromString("9999999999.99")
)

// RoundMoney rounds d to the stored scale.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// IsCents reports whether d has no digits below the stored scale.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(RoundMoney(d))
}

// RoundAmounts brings the lines to the stored scale and recomputes Total
// from them, so the total always matches the lines that are kept.
func (o *Order) RoundAmounts() {
	items := make(OrderItems, len(o.Items))
	for i, item := range o.Items {
		item.Price = RoundMoney(item.Price)
		items[i] = item
	}
	o.Items = items
	o.Total = SumItems(items)
}
