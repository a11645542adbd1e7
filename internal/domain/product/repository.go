package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
)

// Update carries the optional fields of a product PATCH. Nil means untouched.
type Update struct {
	Name       *string
	Code       *string
	BrandID    *string
	CategoryID *string
	GSTRate    *decimal.Decimal
	UOM        *string
}

// PricePatch carries the optional sub-fields of an upsert-price call
type PricePatch struct {
	MRP              *decimal.Decimal
	Margins          pricing.MarginSet
	MinOrderQuantity *int
}

// VisibilityPatch carries the channel gates of an upsert-visibility call
type VisibilityPatch struct {
	ForGeneral *bool
	ForModern  *bool
	ForHoreca  *bool
	ForTypeA   *bool
	ForTypeB   *bool
	ForTypeC   *bool
}

// Repository defines persistence operations for products
type Repository interface {
	Create(ctx context.Context, p *Product, prices []*Price, visibilities []*Visibility) error
	FindByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, limit, offset int) ([]*Product, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id string, update Update) (*Product, error)
	Delete(ctx context.Context, id string) error

	// UpsertPrice patches the active (product, area) price row or inserts a
	// new one when no active row exists
	UpsertPrice(ctx context.Context, productID string, areaID *string, patch PricePatch) (*Price, error)

	// RemovePrice soft-deactivates the exact (product, area) price row
	RemovePrice(ctx context.Context, productID string, areaID *string) error

	// ListPrices returns the active price rows of a product
	ListPrices(ctx context.Context, productID string) ([]*Price, error)

	// UpsertVisibility patches the active (product, area) visibility row or
	// inserts a new one
	UpsertVisibility(ctx context.Context, productID string, areaID *string, patch VisibilityPatch) (*Visibility, error)

	// RemoveVisibility soft-deactivates the exact (product, area) row
	RemoveVisibility(ctx context.Context, productID string, areaID *string) error

	// ListVisibility returns the active visibility rows of a product
	ListVisibility(ctx context.Context, productID string) ([]*Visibility, error)

	// ResolvePrice runs the area-priority fallback: the active price row whose
	// area matches the chain, most specific level first, then the global row.
	// No match at all is a pricing error (NotFoundError on the price).
	ResolvePrice(ctx context.Context, productID string, chain area.Chain) (*ResolvedPrice, error)
}
