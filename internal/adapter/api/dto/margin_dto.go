package dto

import (
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
)

// MarginRequest is one markup/markdown/fixed adjustment
type MarginRequest struct {
	Type  string  `json:"type" binding:"required"`
	Value float64 `json:"value"`
}

// MarginSetRequest carries the three optional distribution tiers. Absent
// tiers stay untouched on update.
type MarginSetRequest struct {
	SuperStockist *MarginRequest `json:"super_stockist,omitempty"`
	Distributor   *MarginRequest `json:"distributor,omitempty"`
	Retailer      *MarginRequest `json:"retailer,omitempty"`
}

// ToMarginSet converts the request tiers into the domain value object
func (r MarginSetRequest) ToMarginSet() (pricing.MarginSet, error) {
	var set pricing.MarginSet
	if r.SuperStockist != nil {
		set.SuperStockist = &pricing.Margin{Type: pricing.MarginType(r.SuperStockist.Type), Value: r.SuperStockist.Value}
	}
	if r.Distributor != nil {
		set.Distributor = &pricing.Margin{Type: pricing.MarginType(r.Distributor.Type), Value: r.Distributor.Value}
	}
	if r.Retailer != nil {
		set.Retailer = &pricing.Margin{Type: pricing.MarginType(r.Retailer.Type), Value: r.Retailer.Value}
	}
	if err := set.Validate(); err != nil {
		return pricing.MarginSet{}, err
	}
	return set, nil
}
