package order

import (
	"context"
	"time"
)

// Filter narrows order listings.
type Filter struct {
	RetailerID *string
	MemberID   *string
	Status     *Status
	From       *time.Time
	To         *time.Time
}

// Detail is the joined read view of an order
type Detail struct {
	Order        Order        `json:"order"`
	RetailerName string       `json:"retailer_name"`
	MemberName   string       `json:"member_name"`
	Items        []ItemDetail `json:"items"`
}

// ItemDetail is an order line joined with its product
type ItemDetail struct {
	Item
	ProductName string `json:"product_name"`
	ProductCode string `json:"product_code"`
}

// Repository defines persistence operations for orders
type Repository interface {
	// Create persists the order and all its items in one transaction
	Create(ctx context.Context, o *Order) error

	// FindByID fetches an active order with its items
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindDetail fetches the joined retailer/member/product view
	FindDetail(ctx context.Context, id string) (*Detail, error)

	// List returns a page of orders matching the filter
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Order, error)

	// Count returns the total matching the filter
	Count(ctx context.Context, filter Filter) (int, error)

	// UpsertItems applies item upserts and the recomputed amounts in one
	// transaction. Items absent from the request stay untouched; the caller
	// computes amounts from the complete post-upsert item set returned by
	// CurrentItemsAfterUpsert semantics inside the transaction.
	UpsertItems(ctx context.Context, orderID string, items []ItemRequest, recompute func(all []ItemRequest) (Amounts, error)) (*Order, error)

	// UpdateStatus moves the order through the status machine
	UpdateStatus(ctx context.Context, id string, next Status) (*Order, error)

	// Deactivate soft-deletes an order
	Deactivate(ctx context.Context, id string) error
}
