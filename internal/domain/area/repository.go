package area

import (
	"context"
)

// Filter narrows area listings.
type Filter struct {
	Type     *Type
	IsActive *bool
}

// Update carries the optional fields of an area PATCH. Nil means untouched.
type Update struct {
	Name     *string
	Type     *Type
	NationID *string
	ZoneID   *string
	RegionID *string
	AreaID   *string
}

// Repository defines persistence operations for areas
type Repository interface {
	// Create persists a hierarchy-validated area
	Create(ctx context.Context, a *Area) error

	// FindByID fetches an active area by id
	FindByID(ctx context.Context, id string) (*Area, error)

	// List returns a page of areas matching the filter
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Area, error)

	// Count returns the total number of areas matching the filter
	Count(ctx context.Context, filter Filter) (int, error)

	// ListChildren returns the active children of a parent at the next level
	// down (zones of a nation, regions of a zone, ...)
	ListChildren(ctx context.Context, parentField, parentID string, childType Type) ([]*Area, error)

	// Update persists the re-validated state of an area
	Update(ctx context.Context, a *Area) error

	// Deactivate soft-deletes an area
	Deactivate(ctx context.Context, id string) error
}
