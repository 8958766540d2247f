package domain

import "github.com/shopspring/decimal"

// PriceScale matches the price column, decimal(10,2).
const PriceScale = 2

// Price is a decimal written to JSON as a bare number with PriceScale
// fraction digits, e.g. 12.50. It reads numbers and quoted strings.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.StringFixed(PriceScale)), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}

func (p Price) String() string {
	return p.StringFixed(PriceScale)
}
