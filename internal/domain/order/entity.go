package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

// Type distinguishes how an order was placed
type Type string

const (
	TypePrimary   Type = "PRIMARY"
	TypeSecondary Type = "SECONDARY"
)

// Order carries server-computed amounts; no amount is ever client-supplied.
type Order struct {
	ID             string          `json:"id"`
	RetailerID     string          `json:"retailer_id"`
	MemberID       string          `json:"member_id"`
	BaseAmount     decimal.Decimal `json:"base_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	IGSTAmount     decimal.Decimal `json:"igst_amount"`
	CGSTAmount     decimal.Decimal `json:"cgst_amount"`
	SGSTAmount     decimal.Decimal `json:"sgst_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	OrderType      Type            `json:"order_type"`
	OrderStatus    Status          `json:"order_status"`
	IsActive       bool            `json:"is_active"`
	Items          []Item          `json:"items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Item is one order line. Product ids are unique within an order.
type Item struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemRequest is a requested (product, quantity) pair before persistence
type ItemRequest struct {
	ProductID string
	Quantity  int
}

// ValidateItems rejects empty item lists, non-positive quantities and
// duplicate product ids before any write happens.
func ValidateItems(items []ItemRequest) error {
	if len(items) == 0 {
		return domainerr.NewValidation("items", "order must contain at least one item")
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return domainerr.NewValidation("items", "item product_id must not be empty")
		}
		if item.Quantity <= 0 {
			return domainerr.NewValidation("items", "quantity for product %s must be positive", item.ProductID)
		}
		if _, dup := seen[item.ProductID]; dup {
			return domainerr.NewValidation("items", "duplicate product %s in order", item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}

// NewOrder creates a DRAFT order with the given computed amounts
func NewOrder(retailerID, memberID string, orderType Type, amounts Amounts, items []ItemRequest) *Order {
	now := time.Now()
	o := &Order{
		ID:             uuid.New().String(),
		RetailerID:     retailerID,
		MemberID:       memberID,
		BaseAmount:     amounts.Base,
		DiscountAmount: amounts.Discount,
		NetAmount:      amounts.Net,
		IGSTAmount:     amounts.IGST,
		CGSTAmount:     amounts.CGST,
		SGSTAmount:     amounts.SGST,
		TotalAmount:    amounts.Total,
		OrderType:      orderType,
		OrderStatus:    StatusDraft,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, item := range items {
		o.Items = append(o.Items, Item{
			ID:        uuid.New().String(),
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return o
}

// ApplyAmounts overwrites the stored amounts after a recomputation
func (o *Order) ApplyAmounts(amounts Amounts) {
	o.BaseAmount = amounts.Base
	o.DiscountAmount = amounts.Discount
	o.NetAmount = amounts.Net
	o.IGSTAmount = amounts.IGST
	o.CGSTAmount = amounts.CGST
	o.SGSTAmount = amounts.SGST
	o.TotalAmount = amounts.Total
	o.UpdatedAt = time.Now()
}
