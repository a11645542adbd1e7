package brand

import (
	"context"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
)

// Update carries the optional fields of a brand PATCH. Nil means untouched.
type Update struct {
	Name       *string
	Code       *string
	ForGeneral *bool
	ForModern  *bool
	ForHoreca  *bool
	Logo       *string
}

// MarginPatch carries the optional sub-fields of an add-or-update margin call
type MarginPatch struct {
	Name    *string
	Margins pricing.MarginSet
}

// Repository defines persistence operations for brands
type Repository interface {
	// Create persists a brand together with any initial visibility and margin
	// rows in a single transaction
	Create(ctx context.Context, b *Brand, visibilities []*Visibility, margins []*Margin) error

	// FindByID fetches an active brand by id
	FindByID(ctx context.Context, id string) (*Brand, error)

	// List returns a page of active brands
	List(ctx context.Context, limit, offset int) ([]*Brand, error)

	// Count returns the total number of active brands
	Count(ctx context.Context) (int, error)

	// Update patches the supplied fields of a brand
	Update(ctx context.Context, id string, update Update) (*Brand, error)

	// Delete soft-deletes a brand
	Delete(ctx context.Context, id string) error

	// AddVisibility inserts or reactivates the (brand, area) visibility row
	AddVisibility(ctx context.Context, v *Visibility) error

	// RemoveVisibility soft-deactivates the exact (brand, area) pair
	RemoveVisibility(ctx context.Context, brandID string, areaID *string) error

	// ListVisibility returns the active visibility rows of a brand
	ListVisibility(ctx context.Context, brandID string) ([]*Visibility, error)

	// AddOrUpdateMargin patches the active (brand, area) margin row or inserts
	// a new one when no active row exists
	AddOrUpdateMargin(ctx context.Context, brandID string, areaID *string, patch MarginPatch) (*Margin, error)

	// RemoveMargin soft-deactivates the exact (brand, area) margin row
	RemoveMargin(ctx context.Context, brandID string, areaID *string) error

	// ListMargins returns the active margin rows of a brand
	ListMargins(ctx context.Context, brandID string) ([]*Margin, error)
}

// CategoryRepository defines persistence operations for brand categories
type CategoryRepository interface {
	Create(ctx context.Context, c *Category, visibilities []*CategoryVisibility, margins []*CategoryMargin) error
	FindByID(ctx context.Context, id string) (*Category, error)
	ListByBrand(ctx context.Context, brandID string, limit, offset int) ([]*Category, error)
	CountByBrand(ctx context.Context, brandID string) (int, error)
	Update(ctx context.Context, id string, update Update) (*Category, error)
	Delete(ctx context.Context, id string) error

	AddVisibility(ctx context.Context, v *CategoryVisibility) error
	RemoveVisibility(ctx context.Context, categoryID string, areaID *string) error
	ListVisibility(ctx context.Context, categoryID string) ([]*CategoryVisibility, error)

	AddOrUpdateMargin(ctx context.Context, categoryID string, areaID *string, patch MarginPatch) (*CategoryMargin, error)
	RemoveMargin(ctx context.Context, categoryID string, areaID *string) error
	ListMargins(ctx context.Context, categoryID string) ([]*CategoryMargin, error)
}
