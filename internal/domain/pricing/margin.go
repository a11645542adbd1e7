package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidMarginType = errors.New("invalid margin type")

// MarginType selects how a margin adjusts a base price
type MarginType string

const (
	// MarkUp adds a percentage of the base price
	MarkUp MarginType = "MARKUP"
	// MarkDown subtracts a percentage of the base price
	MarkDown MarginType = "MARKDOWN"
	// Fixed overrides the price with an absolute value
	Fixed MarginType = "FIXED"
)

// IsValid reports whether t is a known margin type
func (t MarginType) IsValid() bool {
	switch t {
	case MarkUp, MarkDown, Fixed:
		return true
	}
	return false
}

// Margin is one markup/markdown/fixed adjustment. It is stored as JSONB and
// decoded at the storage boundary; business logic only sees the typed form.
type Margin struct {
	Type  MarginType `json:"type"`
	Value float64    `json:"value"`
}

// Validate checks the margin payload
func (m Margin) Validate() error {
	if !m.Type.IsValid() {
		return ErrInvalidMarginType
	}
	return nil
}

// Apply computes the adjusted price for a base amount
func (m Margin) Apply(base decimal.Decimal) decimal.Decimal {
	value := decimal.NewFromFloat(m.Value)
	switch m.Type {
	case MarkUp:
		return base.Add(base.Mul(value).Div(decimal.NewFromInt(100)))
	case MarkDown:
		return base.Sub(base.Mul(value).Div(decimal.NewFromInt(100)))
	case Fixed:
		return value
	}
	return base
}

// MarginSet carries the three independently optional distribution tiers
type MarginSet struct {
	SuperStockist *Margin `json:"super_stockist,omitempty"`
	Distributor   *Margin `json:"distributor,omitempty"`
	Retailer      *Margin `json:"retailer,omitempty"`
}

// Validate checks every supplied tier
func (s MarginSet) Validate() error {
	for _, m := range []*Margin{s.SuperStockist, s.Distributor, s.Retailer} {
		if m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether no tier is supplied
func (s MarginSet) IsEmpty() bool {
	return s.SuperStockist == nil && s.Distributor == nil && s.Retailer == nil
}

// Patch overwrites only the tiers supplied in other, leaving the rest
// untouched. This is the update semantics of add-or-update margin calls.
func (s *MarginSet) Patch(other MarginSet) {
	if other.SuperStockist != nil {
		s.SuperStockist = other.SuperStockist
	}
	if other.Distributor != nil {
		s.Distributor = other.Distributor
	}
	if other.Retailer != nil {
		s.Retailer = other.Retailer
	}
}
